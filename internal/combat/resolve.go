package combat

import (
	"log/slog"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

// PlanFor builds the automatic plan for the current table
func PlanFor(s *state.State) *Plan {
	return NewPlan(s.Dungeon, s.Companions(), s.Hero.Specialty())
}

// ApplyClear defeats every monster using the automatic plan. It fails with
// FailedPrecondition, changing nothing, when the plan leaves monsters.
func ApplyClear(s *state.State) (*Plan, error) {
	plan := PlanFor(s)
	if !plan.Clears() {
		return plan, errors.FailedPreconditionf("the party cannot defeat %d remaining monsters",
			plan.Remaining.Total())
	}

	for _, a := range plan.Assignments {
		for _, k := range a.Kills {
			s.RemoveDungeon(k.Monster, k.Count)
		}
	}
	if err := s.SpendCompanions(plan.Spent()); err != nil {
		return nil, errors.Wrap(err, "failed to spend companions")
	}

	slog.Info("Monsters cleared",
		"companions", len(plan.Assignments),
		"log", plan.Log())

	return plan, nil
}

// Targets lists the monster types on the table that a companion fighting as
// face can attack
func Targets(s *state.State, face dungeon.PartyFace) []dungeon.DungeonFace {
	horde := NewHorde(s.Dungeon)
	var targets []dungeon.DungeonFace
	for _, monster := range dungeon.MonsterFaces {
		if horde[monster] > 0 && Capacity(face, monster) != 0 {
			targets = append(targets, monster)
		}
	}
	return targets
}

// BonusTargets lists the types a Champion may take its bonus kill from after
// attacking target
func BonusTargets(s *state.State, target dungeon.DungeonFace) []dungeon.DungeonFace {
	horde := NewHorde(s.Dungeon)
	var targets []dungeon.DungeonFace
	for _, monster := range dungeon.MonsterFaces {
		if monster != target && horde[monster] > 0 {
			targets = append(targets, monster)
		}
	}
	return targets
}

// Attack is a companion spent by hand
type Attack struct {
	Companion dungeon.Companion
	As        dungeon.PartyFace
	Target    dungeon.DungeonFace
	// Bonus lists the types a Champion takes its extra kills from
	Bonus []dungeon.DungeonFace
}

// Defeat spends one companion against the chosen monsters. Nothing changes
// when the attack is not allowed.
func Defeat(s *state.State, attack Attack) (*Assignment, error) {
	spec := s.Hero.Specialty()
	if !contains(spec.Interpretations(attack.Companion.Face), attack.As) {
		return nil, errors.InvalidArgumentf("%s cannot fight as %s", attack.Companion.Label, attack.As)
	}

	horde := NewHorde(s.Dungeon)
	if horde[attack.Target] == 0 {
		return nil, errors.FailedPreconditionf("there is no %s to attack", attack.Target)
	}
	capacity := Capacity(attack.As, attack.Target)
	if capacity == 0 {
		return nil, errors.FailedPreconditionf("%s cannot defeat %s", attack.As, attack.Target)
	}

	bonus := attack.Bonus
	if attack.As != dungeon.Champion {
		bonus = nil
	}
	if len(bonus) > spec.ChampionBonus {
		return nil, errors.InvalidArgumentf("only %d bonus kills allowed", spec.ChampionBonus)
	}
	for _, extra := range bonus {
		if extra == attack.Target {
			return nil, errors.InvalidArgument("the bonus kill must be a different monster type")
		}
	}

	assignment := &Assignment{
		Companion: attack.Companion,
		As:        attack.As,
		Kills:     []Kill{{Monster: attack.Target, Count: horde.take(attack.Target, capacity)}},
	}
	for _, extra := range bonus {
		if n := horde.take(extra, 1); n > 0 {
			assignment.Kills = appendKill(assignment.Kills, extra, n)
		}
	}

	for _, k := range assignment.Kills {
		s.RemoveDungeon(k.Monster, k.Count)
	}
	if err := s.SpendCompanions([]dungeon.Companion{attack.Companion}); err != nil {
		return nil, errors.Wrap(err, "failed to spend companion")
	}

	slog.Info("Companion attacked", "result", assignment.String())

	return assignment, nil
}

// OpenChests spends one companion on the chests in the dungeon pool and
// returns how many it opened. Thieves and Champions open every chest, anyone
// else opens one. The caller draws a treasure per opened chest.
func OpenChests(s *state.State, c dungeon.Companion, as dungeon.PartyFace) (int, error) {
	if !contains(s.Hero.Specialty().Interpretations(c.Face), as) {
		return 0, errors.InvalidArgumentf("%s cannot open chests as %s", c.Label, as)
	}
	chests := s.CountDungeon(dungeon.Chest)
	if chests == 0 {
		return 0, errors.FailedPrecondition("there are no chests to open")
	}

	capacity := ChestCapacity(as)
	if capacity == 0 {
		return 0, errors.FailedPreconditionf("%s cannot open chests", as)
	}
	if capacity == Unbounded {
		capacity = chests
	}

	opened := s.RemoveDungeon(dungeon.Chest, capacity)
	if err := s.SpendCompanions([]dungeon.Companion{c}); err != nil {
		return 0, errors.Wrap(err, "failed to spend companion")
	}

	return opened, nil
}
