package delve

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/KirkDiggler/dice-delve/internal/combat"
	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
)

// Option keys offered to the ChoiceProvider. Dice, companions and treasures
// are keyed by a letter and their position: "p0", "d2", "c1", "t3".
const (
	keyAttack   = "attack"
	keyScroll   = "scroll"
	keyTreasure = "treasure"
	keyUltimate = "ultimate"
	keyFight    = "fight"
	keyOpen     = "open"
	keyQuaff    = "quaff"
	keyDone     = "done"
	keyBattle   = "battle"
	keyFlee     = "flee"
	keyRetire   = "retire"
	keySeek     = "seek"
	keyRoll     = "roll"
	keyNone     = "none"
	keyBack     = "back"
)

func partyKey(i int) string     { return "p" + strconv.Itoa(i) }
func dungeonKey(i int) string   { return "d" + strconv.Itoa(i) }
func companionKey(i int) string { return "c" + strconv.Itoa(i) }
func treasureKey(i int) string  { return "t" + strconv.Itoa(i) }

// indexOf returns the position encoded in a positional key
func indexOf(key string) int {
	if len(key) < 2 {
		return -1
	}
	idx, err := strconv.Atoi(key[1:])
	if err != nil {
		return -1
	}
	return idx
}

// attack spends one companion chosen by the player
func (r *run) attack(ctx context.Context) error {
	c, as, ok, err := r.pickCompanion(ctx, "Who attacks?")
	if err != nil || !ok {
		return err
	}

	targets := combat.Targets(r.s, as)
	if len(targets) == 0 {
		return errors.FailedPreconditionf("%s has nothing to attack", c.Label)
	}

	target := targets[0]
	if len(targets) > 1 {
		options := make([]Option, 0, len(targets)+1)
		for _, t := range targets {
			options = append(options, Option{Key: t.String(), Label: attackLabel(as, t, r.s.CountDungeon(t))})
		}
		options = append(options, Option{Key: keyBack, Label: "Back"})

		key, err := r.choose(ctx, "Attack which monsters?", options)
		if err != nil || key == keyBack {
			return err
		}
		target = dungeon.DungeonFace(key)
	}

	var bonus []dungeon.DungeonFace
	if as == dungeon.Champion && r.s.Hero.Specialty().ChampionBonus > 0 {
		extras := combat.BonusTargets(r.s, target)
		if len(extras) > 0 {
			options := make([]Option, 0, len(extras)+1)
			for _, t := range extras {
				options = append(options, Option{Key: t.String(), Label: "Also defeat one " + t.String()})
			}
			options = append(options, Option{Key: keyNone, Label: "No extra monster"})

			key, err := r.choose(ctx, "Choose the extra monster", options)
			if err != nil {
				return err
			}
			if key != keyNone {
				bonus = append(bonus, dungeon.DungeonFace(key))
			}
		}
	}

	assignment, err := combat.Defeat(r.s, combat.Attack{Companion: c, As: as, Target: target, Bonus: bonus})
	if err != nil {
		return err
	}
	r.render(ctx, r.record.Phase, assignment.String())

	return nil
}

func attackLabel(as dungeon.PartyFace, target dungeon.DungeonFace, count int) string {
	if combat.Capacity(as, target) == combat.Unbounded {
		return fmt.Sprintf("All %d %s", count, target)
	}
	return fmt.Sprintf("One %s", target)
}

// pickCompanion asks for a companion and, when the hero allows a
// substitution, the face it acts as. ok is false when the player backs out.
func (r *run) pickCompanion(ctx context.Context, title string) (dungeon.Companion, dungeon.PartyFace, bool, error) {
	companions := r.s.Companions()
	if len(companions) == 0 {
		return dungeon.Companion{}, "", false, errors.FailedPrecondition("the party has no companions left")
	}

	options := make([]Option, 0, len(companions)+1)
	for i, c := range companions {
		options = append(options, Option{Key: companionKey(i), Label: c.Label})
	}
	options = append(options, Option{Key: keyBack, Label: "Back"})

	key, err := r.choose(ctx, title, options)
	if err != nil || key == keyBack {
		return dungeon.Companion{}, "", false, err
	}
	c := companions[indexOf(key)]

	faces := r.s.Hero.Specialty().Interpretations(c.Face)
	if len(faces) == 1 {
		return c, c.Face, true, nil
	}

	options = make([]Option, 0, len(faces)+1)
	for _, f := range faces {
		options = append(options, Option{Key: f.String(), Label: "As " + f.String()})
	}
	options = append(options, Option{Key: keyBack, Label: "Back"})

	key, err = r.choose(ctx, fmt.Sprintf("Use %s as", c.Label), options)
	if err != nil || key == keyBack {
		return dungeon.Companion{}, "", false, err
	}

	return c, dungeon.PartyFace(key), true, nil
}

// scrollDie rerolls dice chosen by the player and spends a Scroll from the
// party. Dungeon dice are only offered while withDungeon is set.
func (r *run) scrollDie(ctx context.Context, withDungeon bool) error {
	scroll := r.s.FindParty(dungeon.Scroll)
	if scroll < 0 {
		return errors.FailedPrecondition("the party has no Scroll")
	}

	party, dice, ok, err := r.selectReroll(ctx, withDungeon, scroll)
	if err != nil || !ok {
		return err
	}
	if err := r.reroll(party, dice); err != nil {
		return err
	}
	if _, err := r.s.SpendParty(scroll); err != nil {
		return err
	}

	r.render(ctx, r.record.Phase, fmt.Sprintf("The Scroll rerolled %d dice", len(party)+len(dice)))

	return nil
}

// selectReroll lets the player toggle dice until they roll or back out.
// The party die at skip is never offered.
func (r *run) selectReroll(ctx context.Context, withDungeon bool, skip int) ([]int, []int, bool, error) {
	selected := make(map[string]bool)

	for {
		var options []Option
		if withDungeon {
			for i, face := range r.s.Dungeon {
				key := dungeonKey(i)
				options = append(options, Option{Key: key, Label: toggleLabel(selected[key], "Dungeon", face.String())})
			}
		}
		for i, face := range r.s.Party {
			if i == skip {
				continue
			}
			key := partyKey(i)
			options = append(options, Option{Key: key, Label: toggleLabel(selected[key], "Party", face.String())})
		}
		if len(options) == 0 {
			return nil, nil, false, errors.FailedPrecondition("there are no dice to reroll")
		}
		options = append(options,
			Option{Key: keyRoll, Label: "Reroll the selected dice"},
			Option{Key: keyBack, Label: "Back"},
		)

		key, err := r.choose(ctx, "Choose dice to reroll", options)
		if err != nil {
			return nil, nil, false, err
		}

		switch key {
		case keyBack:
			return nil, nil, false, nil
		case keyRoll:
			var party, dice []int
			for k := range selected {
				if k[0] == 'p' {
					party = append(party, indexOf(k))
				} else {
					dice = append(dice, indexOf(k))
				}
			}
			if len(party)+len(dice) == 0 {
				r.render(ctx, r.record.Phase, "Select at least one die")
				continue
			}
			return party, dice, true, nil
		default:
			if selected[key] {
				delete(selected, key)
			} else {
				selected[key] = true
			}
		}
	}
}

func toggleLabel(on bool, pool, face string) string {
	mark := "[ ]"
	if on {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s %s", mark, pool, face)
}

// reroll rolls party dice in place and replaces dungeon dice
func (r *run) reroll(party, dice []int) error {
	if err := r.s.RerollParty(party); err != nil {
		return err
	}
	if err := r.s.RerollDungeon(dice); err != nil {
		return err
	}

	slog.Debug("Dice rerolled",
		"party", r.s.Party,
		"dungeon", r.s.Dungeon,
		"lair", len(r.s.Lair))

	return nil
}

// treasure offers the inventory and uses the chosen token
func (r *run) treasure(ctx context.Context) (*ending, error) {
	inventory := r.s.Treasure.Inventory()
	if len(inventory) == 0 {
		return nil, errors.FailedPrecondition("the inventory is empty")
	}

	options := make([]Option, 0, len(inventory)+1)
	for i, token := range inventory {
		label := token.Name()
		if info, ok := token.Type.Info(); ok {
			label = fmt.Sprintf("%s: %s", token.Name(), info.Description)
		}
		options = append(options, Option{Key: treasureKey(i), Label: label})
	}
	options = append(options, Option{Key: keyBack, Label: "Back"})

	key, err := r.choose(ctx, "Use which treasure?", options)
	if err != nil || key == keyBack {
		return nil, err
	}

	return r.useTreasure(ctx, indexOf(key))
}

// useTreasure applies a token's effect and returns it to the supply. Nothing
// is consumed when the effect cannot apply.
func (r *run) useTreasure(ctx context.Context, idx int) (*ending, error) {
	token, err := r.s.Treasure.Get(idx)
	if err != nil {
		return nil, err
	}

	var message string
	switch token.Type {
	case dungeon.DragonScale:
		return nil, errors.FailedPrecondition("Dragon Scales only count at the end of the game")
	case dungeon.ScrollTreasure:
		withDungeon := r.record.Phase == dungeon.PhaseMonster || r.record.Phase == dungeon.PhaseLoot
		party, dice, ok, err := r.selectReroll(ctx, withDungeon, -1)
		if err != nil || !ok {
			return nil, err
		}
		if err := r.reroll(party, dice); err != nil {
			return nil, err
		}
		message = fmt.Sprintf("The Scroll rerolled %d dice", len(party)+len(dice))
	case dungeon.RingOfInvisibility:
		if len(r.s.Lair) == 0 {
			return nil, errors.FailedPrecondition("the dragon's lair is empty")
		}
		message = fmt.Sprintf("The party sneaks past %d dragon dice", r.s.ClearLair())
	case dungeon.Elixir:
		if len(r.s.Graveyard) == 0 {
			return nil, errors.FailedPrecondition("there is no one in the graveyard to revive")
		}
		face, err := r.chooseFace(ctx, "Choose the face of the revived die")
		if err != nil {
			return nil, err
		}
		if err := r.s.Revive(face); err != nil {
			return nil, err
		}
		message = fmt.Sprintf("A %s returns from the graveyard", face)
	case dungeon.DragonBait:
		if r.s.MonsterCount() == 0 {
			return nil, errors.FailedPrecondition("there are no monsters to lure")
		}
		message = fmt.Sprintf("%d monsters turned into dragons", r.s.MonstersToLair())
	case dungeon.TownPortal:
		if _, err := r.s.Treasure.Use(idx); err != nil {
			return nil, err
		}
		slog.Info("Town Portal used", "delve_id", r.record.ID, "level", r.s.Level)
		return &ending{outcome: dungeon.OutcomeRetired, reward: r.s.Level}, nil
	default:
		if face, ok := token.Type.CompanionFace(); ok {
			return nil, errors.FailedPreconditionf("%s fights as a %s, choose it as a companion", token.Name(), face)
		}
		return nil, errors.Internalf("unknown treasure %q", token.Type)
	}

	if _, err := r.s.Treasure.Use(idx); err != nil {
		return nil, err
	}

	slog.Info("Treasure used", "delve_id", r.record.ID, "treasure", token.Name())
	r.render(ctx, r.record.Phase, message)

	return nil, nil
}

// ultimate fires the hero's ultimate ability
func (r *run) ultimate(ctx context.Context) error {
	name := r.s.Hero.UltimateName()
	if err := r.s.Hero.UseUltimate(r.s); err != nil {
		return err
	}

	slog.Info("Ultimate used", "delve_id", r.record.ID, "hero", r.s.Hero.Name(), "ultimate", name)
	r.render(ctx, r.record.Phase, fmt.Sprintf("%s used %s", r.s.Hero.Name(), name))

	return nil
}

// chooseFace asks for a party face without a way back
func (r *run) chooseFace(ctx context.Context, title string) (dungeon.PartyFace, error) {
	options := make([]Option, 0, len(dungeon.PartyFaces))
	for _, f := range dungeon.PartyFaces {
		options = append(options, Option{Key: f.String(), Label: f.String()})
	}

	key, err := r.choose(ctx, title, options)
	if err != nil {
		return "", err
	}
	return dungeon.PartyFace(key), nil
}

// drawTreasure draws one token and describes what was found
func (r *run) drawTreasure() (string, error) {
	token, ok, err := r.s.DrawTreasure()
	if err != nil {
		return "", err
	}
	if !ok {
		return "The treasure supply is empty: +1 experience", nil
	}
	return "Found " + token.Name(), nil
}

func endMessage(result *Result) string {
	switch result.Outcome {
	case dungeon.OutcomeFailure:
		return fmt.Sprintf("The delve failed on level %d. No experience gained", result.Level)
	case dungeon.OutcomeLegendary:
		return fmt.Sprintf("Legendary! The party conquered level %d and gained %d experience",
			result.Level, result.ExperienceGained)
	default:
		return fmt.Sprintf("The party retired on level %d with %d experience",
			result.Level, result.ExperienceGained)
	}
}
