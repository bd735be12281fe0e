package combat

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
)

// Kill is a number of monsters of one type
type Kill struct {
	Monster dungeon.DungeonFace
	Count   int
}

// Assignment records one companion's work
type Assignment struct {
	Companion dungeon.Companion
	// As is the face the companion fought as, which differs from its own
	// face when a substitution was used
	As    dungeon.PartyFace
	Kills []Kill
}

// String renders the assignment for the combat log
func (a Assignment) String() string {
	parts := make([]string, 0, len(a.Kills))
	for _, k := range a.Kills {
		parts = append(parts, fmt.Sprintf("%d %s", k.Count, k.Monster))
	}

	who := a.Companion.Label
	if a.As != "" && a.As != a.Companion.Face {
		who = fmt.Sprintf("%s as %s", who, a.As)
	}
	return fmt.Sprintf("%s defeated %s", who, strings.Join(parts, " and "))
}

// Defeated is the number of monsters the assignment removed
func (a Assignment) Defeated() int {
	n := 0
	for _, k := range a.Kills {
		n += k.Count
	}
	return n
}

// Plan is the result of matching companions against a horde
type Plan struct {
	Assignments []Assignment
	Remaining   Horde
}

// Clears reports whether the plan defeats every monster
func (p *Plan) Clears() bool {
	return p.Remaining.Total() == 0
}

// Spent lists the companions the plan uses
func (p *Plan) Spent() []dungeon.Companion {
	spent := make([]dungeon.Companion, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		spent = append(spent, a.Companion)
	}
	return spent
}

// Log renders every assignment
func (p *Plan) Log() []string {
	lines := make([]string, 0, len(p.Assignments))
	for _, a := range p.Assignments {
		lines = append(lines, a.String())
	}
	return lines
}

// NewPlan matches companions against monsters in three passes:
//
//  1. In companion order, every non-Champion companion that wipes out a type
//     with monsters left takes that whole type. A substituting companion tries
//     its own face first, then its alternates.
//  2. Every Champion takes the largest type left, plus ChampionBonus single
//     monsters from the largest other type.
//  3. Every companion still unused defeats one monster of the largest type.
//
// The result depends only on the order of the inputs. Planning stops as soon
// as no monsters remain, so later companions are left unspent.
func NewPlan(monsters []dungeon.DungeonFace, companions []dungeon.Companion, spec dungeon.Specialty) *Plan {
	horde := NewHorde(monsters)
	plan := &Plan{Remaining: horde}
	used := make([]bool, len(companions))

	// unbounded specialists
	for i, c := range companions {
		if horde.Total() == 0 {
			return plan
		}
		if c.Face == dungeon.Champion || !c.Face.IsCompanion() {
			continue
		}
		for _, as := range spec.Interpretations(c.Face) {
			target, ok := unboundedTarget(as, horde)
			if !ok {
				continue
			}
			n := horde.take(target, Unbounded)
			plan.Assignments = append(plan.Assignments, Assignment{
				Companion: c,
				As:        as,
				Kills:     []Kill{{Monster: target, Count: n}},
			})
			used[i] = true
			break
		}
	}

	// champions
	for i, c := range companions {
		if horde.Total() == 0 {
			return plan
		}
		if used[i] || c.Face != dungeon.Champion {
			continue
		}
		plan.Assignments = append(plan.Assignments, championSweep(c, horde, spec.ChampionBonus))
		used[i] = true
	}

	// single kills
	for i, c := range companions {
		if horde.Total() == 0 {
			return plan
		}
		if used[i] || !c.Face.IsCompanion() {
			continue
		}
		target, ok := horde.Largest()
		if !ok {
			return plan
		}
		n := horde.take(target, 1)
		plan.Assignments = append(plan.Assignments, Assignment{
			Companion: c,
			As:        c.Face,
			Kills:     []Kill{{Monster: target, Count: n}},
		})
		used[i] = true
	}

	return plan
}

// CanClear reports whether the companions defeat every monster. It never
// changes its inputs.
func CanClear(monsters []dungeon.DungeonFace, companions []dungeon.Companion, spec dungeon.Specialty) bool {
	return NewPlan(monsters, companions, spec).Clears()
}

// unboundedTarget finds the first type, in tie-break order, that face wipes
// out and that still has monsters
func unboundedTarget(face dungeon.PartyFace, horde Horde) (dungeon.DungeonFace, bool) {
	for _, monster := range dungeon.MonsterFaces {
		if horde[monster] > 0 && Capacity(face, monster) == Unbounded {
			return monster, true
		}
	}
	return "", false
}

// championSweep clears the largest type and then takes bonus single kills
// from the largest other types
func championSweep(c dungeon.Companion, horde Horde, bonus int) Assignment {
	a := Assignment{Companion: c, As: dungeon.Champion}

	primary, ok := horde.Largest()
	if !ok {
		return a
	}
	a.Kills = append(a.Kills, Kill{Monster: primary, Count: horde.take(primary, Unbounded)})

	for range bonus {
		extra, ok := horde.Largest(primary)
		if !ok {
			break
		}
		a.Kills = appendKill(a.Kills, extra, horde.take(extra, 1))
	}

	return a
}

func appendKill(kills []Kill, monster dungeon.DungeonFace, n int) []Kill {
	for i := range kills {
		if kills[i].Monster == monster {
			kills[i].Count += n
			return kills
		}
	}
	return append(kills, Kill{Monster: monster, Count: n})
}
