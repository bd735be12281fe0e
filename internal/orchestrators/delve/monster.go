package delve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/dice-delve/internal/combat"
	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
)

// monster lets the player act while monsters remain, then clears the rest
// automatically or fails the delve
func (r *run) monster(ctx context.Context) (*ending, error) {
	r.enter(ctx, dungeon.PhaseMonster)

	for r.s.MonsterCount() > 0 {
		var options []Option
		if len(r.s.Companions()) > 0 {
			options = append(options, Option{Key: keyAttack, Label: "Attack with a companion"})
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
		options = append(options, Option{Key: keyFight, Label: "Let the party fight the rest"})

		key, err := r.choose(ctx, fmt.Sprintf("%d monsters block the way", r.s.MonsterCount()), options)
		if err != nil {
			return nil, err
		}

		var end *ending
		switch key {
		case keyAttack:
			err = r.attack(ctx)
		case keyScroll:
			err = r.scrollDie(ctx, true)
		case keyTreasure:
			end, err = r.treasure(ctx)
		case keyUltimate:
			err = r.ultimate(ctx)
		case keyFight:
			return r.clearMonsters(ctx)
		}
		if err := r.refuse(ctx, err); err != nil {
			return nil, err
		}
		if end != nil {
			return end, nil
		}
	}

	return r.clearMonsters(ctx)
}

// clearMonsters resolves every remaining monster with the automatic plan
func (r *run) clearMonsters(ctx context.Context) (*ending, error) {
	if r.s.MonsterCount() == 0 {
		return nil, nil
	}

	plan := combat.PlanFor(r.s)
	if !plan.Clears() {
		slog.Info("Party overwhelmed",
			"delve_id", r.record.ID,
			"level", r.s.Level,
			"remaining", plan.Remaining.Total())
		r.render(ctx, dungeon.PhaseMonster, fmt.Sprintf("The party cannot defeat %d monsters and flees the dungeon",
			plan.Remaining.Total()))
		return &ending{outcome: dungeon.OutcomeFailure}, nil
	}

	plan, err := combat.ApplyClear(r.s)
	if err != nil {
		return nil, err
	}
	r.render(ctx, dungeon.PhaseMonster, strings.Join(plan.Log(), "\n"))

	return nil, nil
}
