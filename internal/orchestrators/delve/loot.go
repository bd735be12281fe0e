package delve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/dice-delve/internal/combat"
	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
)

// loot lets the player open chests and quaff potions. Whatever is left is
// discarded when the phase ends.
func (r *run) loot(ctx context.Context) (*ending, error) {
	r.enter(ctx, dungeon.PhaseLoot)

	if r.s.Hero.Specialty().ChestsBecomePotions {
		if n := r.s.ReplaceDungeon(dungeon.Chest, dungeon.Potion); n > 0 {
			r.render(ctx, dungeon.PhaseLoot, fmt.Sprintf("%d chests became potions", n))
		}
	}

	for r.s.LootCount() > 0 {
		var options []Option
		if r.s.CountDungeon(dungeon.Chest) > 0 && len(r.s.Companions()) > 0 {
			options = append(options, Option{Key: keyOpen, Label: "Open chests"})
		}
		if r.s.CountDungeon(dungeon.Potion) > 0 && len(r.s.Party) > 0 {
			options = append(options, Option{Key: keyQuaff, Label: "Quaff potions"})
		}
		if r.s.FindParty(dungeon.Scroll) >= 0 {
			options = append(options, Option{Key: keyScroll, Label: "Reroll dice with a Scroll"})
		}
		if r.s.Treasure.InventorySize() > 0 {
			options = append(options, Option{Key: keyTreasure, Label: "Use a treasure"})
		}
		if !r.s.Hero.Exhausted() {
			options = append(options, Option{Key: keyUltimate, Label: "Ultimate: " + r.s.Hero.UltimateName()})
		}
		if len(options) == 0 {
			break
		}
		options = append(options, Option{Key: keyDone, Label: "Leave the loot"})

		key, err := r.choose(ctx, fmt.Sprintf("%d loot dice", r.s.LootCount()), options)
		if err != nil {
			return nil, err
		}
		if key == keyDone {
			break
		}

		var end *ending
		switch key {
		case keyOpen:
			err = r.openChests(ctx)
		case keyQuaff:
			err = r.quaff(ctx)
		case keyScroll:
			err = r.scrollDie(ctx, true)
		case keyTreasure:
			end, err = r.treasure(ctx)
		case keyUltimate:
			err = r.ultimate(ctx)
		}
		if err := r.refuse(ctx, err); err != nil {
			return nil, err
		}
		if end != nil {
			return end, nil
		}
	}

	chests := r.s.RemoveDungeon(dungeon.Chest, len(r.s.Dungeon))
	potions := r.s.RemoveDungeon(dungeon.Potion, len(r.s.Dungeon))
	if chests+potions > 0 {
		slog.Debug("Unused loot discarded", "chests", chests, "potions", potions)
	}

	return nil, nil
}

// openChests spends one companion on the chests and draws a treasure for
// each one opened
func (r *run) openChests(ctx context.Context) error {
	c, as, ok, err := r.pickCompanion(ctx, "Who opens the chests?")
	if err != nil || !ok {
		return err
	}

	opened, err := combat.OpenChests(r.s, c, as)
	if err != nil {
		return err
	}

	lines := []string{fmt.Sprintf("%s opened %d chests", c.Label, opened)}
	for range opened {
		line, err := r.drawTreasure()
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	r.render(ctx, dungeon.PhaseLoot, strings.Join(lines, "\n"))

	return nil
}

// quaff spends one party die to drink the potions. Each potion revives one
// graveyard die with a face the player picks.
func (r *run) quaff(ctx context.Context) error {
	if len(r.s.Graveyard) == 0 {
		return errors.FailedPrecondition("there is no one in the graveyard to revive")
	}

	options := make([]Option, 0, len(r.s.Party)+1)
	for i, face := range r.s.Party {
		options = append(options, Option{Key: partyKey(i), Label: face.String()})
	}
	options = append(options, Option{Key: keyBack, Label: "Back"})

	key, err := r.choose(ctx, "Who drinks the potions?", options)
	if err != nil || key == keyBack {
		return err
	}

	drinker, err := r.s.SpendParty(indexOf(key))
	if err != nil {
		return err
	}

	revives := min(r.s.CountDungeon(dungeon.Potion), len(r.s.Graveyard))
	revived := make([]string, 0, revives)
	for range revives {
		face, err := r.chooseFace(ctx, "Choose the face of the revived die")
		if err != nil {
			return err
		}
		if err := r.s.Revive(face); err != nil {
			return err
		}
		r.s.RemoveDungeon(dungeon.Potion, 1)
		revived = append(revived, face.String())
	}

	slog.Info("Potions quaffed",
		"delve_id", r.record.ID,
		"drinker", drinker,
		"revived", revived)

	r.render(ctx, dungeon.PhaseLoot, fmt.Sprintf("%s drank %d potions: %s",
		drinker, revives, strings.Join(revived, ", ")))

	return nil
}
