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

// dragon runs the fight once the lair is full enough to wake the dragon.
// Fleeing ends the delve as a failure.
func (r *run) dragon(ctx context.Context) (*ending, error) {
	if !r.s.DragonAwake() {
		return nil, nil
	}
	r.enter(ctx, dungeon.PhaseDragon)

	for r.s.DragonAwake() {
		var options []Option
		if _, ok := combat.DragonTeam(r.s.Companions(), dungeon.DragonTeamSize); ok {
			options = append(options, Option{
				Key:   keyBattle,
				Label: fmt.Sprintf("Battle the dragon with %d different companions", dungeon.DragonTeamSize),
			})
		}
		if r.s.FindParty(dungeon.Scroll) >= 0 {
			options = append(options, Option{Key: keyScroll, Label: "Reroll party dice with a Scroll"})
		}
		if r.s.Treasure.InventorySize() > 0 {
			options = append(options, Option{Key: keyTreasure, Label: "Use a treasure"})
		}
		if !r.s.Hero.Exhausted() {
			options = append(options, Option{Key: keyUltimate, Label: "Ultimate: " + r.s.Hero.UltimateName()})
		}
		options = append(options, Option{Key: keyFlee, Label: "Flee the dungeon"})

		key, err := r.choose(ctx, fmt.Sprintf("The dragon wakes! %d dice in the lair", len(r.s.Lair)), options)
		if err != nil {
			return nil, err
		}

		var end *ending
		switch key {
		case keyBattle:
			err = r.battle(ctx)
		case keyScroll:
			err = r.scrollDie(ctx, false)
		case keyTreasure:
			end, err = r.treasure(ctx)
		case keyUltimate:
			err = r.ultimate(ctx)
		case keyFlee:
			slog.Info("Party fled the dragon", "delve_id", r.record.ID, "level", r.s.Level)
			r.render(ctx, dungeon.PhaseDragon, "The party flees the dragon and leaves the dungeon empty handed")
			return &ending{outcome: dungeon.OutcomeFailure}, nil
		}
		if err := r.refuse(ctx, err); err != nil {
			return nil, err
		}
		if end != nil {
			return end, nil
		}
	}

	return nil, nil
}

// battle picks the dragon fighters one at a time and slays the dragon.
// Champions and Scrolls never fight it. Backing out before the team is
// complete spends nothing.
func (r *run) battle(ctx context.Context) error {
	companions := r.s.Companions()

	var team []dungeon.Companion
	for len(team) < dungeon.DragonTeamSize {
		candidates := combat.DragonCandidates(team, companions, dungeon.DragonTeamSize)
		if len(candidates) == 0 {
			return errors.FailedPreconditionf("the party does not have %d different companions",
				dungeon.DragonTeamSize)
		}

		options := make([]Option, 0, len(candidates)+1)
		for i, c := range candidates {
			options = append(options, Option{Key: companionKey(i), Label: c.Label})
		}
		options = append(options, Option{Key: keyBack, Label: "Back"})

		key, err := r.choose(ctx, fmt.Sprintf("Choose dragon fighter %d of %d", len(team)+1, dungeon.DragonTeamSize), options)
		if err != nil || key == keyBack {
			return err
		}
		team = append(team, candidates[indexOf(key)])
	}

	if err := combat.SlayDragon(r.s, team); err != nil {
		return err
	}

	r.s.Experience += dungeon.DragonBonusXP
	lines := []string{fmt.Sprintf("The dragon is slain! +%d experience", dungeon.DragonBonusXP)}
	line, err := r.drawTreasure()
	if err != nil {
		return err
	}
	lines = append(lines, line)
	r.render(ctx, dungeon.PhaseDragon, strings.Join(lines, "\n"))

	return nil
}
