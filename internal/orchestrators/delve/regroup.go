package delve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
)

// regroup either ends the delve or opens the next level. A nil ending means
// the party seeks glory.
func (r *run) regroup(ctx context.Context) (*ending, error) {
	r.enter(ctx, dungeon.PhaseRegroup)

	if r.s.Level >= r.s.Rules.MaxLevel {
		slog.Info("Party became legendary", "delve_id", r.record.ID, "level", r.s.Level)
		return &ending{outcome: dungeon.OutcomeLegendary, reward: r.s.Rules.LegendaryBonusXP}, nil
	}

	for {
		var options []Option
		if r.s.FindParty(dungeon.Scroll) >= 0 {
			options = append(options, Option{Key: keyScroll, Label: "Reroll party dice with a Scroll"})
		}
		if r.s.Treasure.InventorySize() > 0 {
			options = append(options, Option{Key: keyTreasure, Label: "Use a treasure"})
		}
		options = append(options,
			Option{Key: keyRetire, Label: fmt.Sprintf("Retire to the tavern (+%d experience)", r.s.Level)},
			Option{Key: keySeek, Label: fmt.Sprintf("Seek glory on level %d", r.s.Level+1)},
		)

		key, err := r.choose(ctx, "Regroup", options)
		if err != nil {
			return nil, err
		}

		switch key {
		case keyScroll:
			if err := r.refuse(ctx, r.scrollDie(ctx, false)); err != nil {
				return nil, err
			}
		case keyTreasure:
			end, err := r.treasure(ctx)
			if err := r.refuse(ctx, err); err != nil {
				return nil, err
			}
			if end != nil {
				return end, nil
			}
		case keyRetire:
			return &ending{outcome: dungeon.OutcomeRetired, reward: r.s.Level}, nil
		case keySeek:
			return nil, r.seekGlory(ctx)
		}
	}
}

// seekGlory descends one level and rolls its dungeon dice
func (r *run) seekGlory(ctx context.Context) error {
	r.s.Level++
	r.s.Dungeon = nil

	n := min(r.s.Level, r.s.Rules.DungeonDice-len(r.s.Lair))
	if err := r.s.RollDungeon(n); err != nil {
		return err
	}

	slog.Info("Seeking glory",
		"delve_id", r.record.ID,
		"level", r.s.Level,
		"dungeon", r.s.Dungeon,
		"lair", len(r.s.Lair))

	r.render(ctx, dungeon.PhaseRegroup, fmt.Sprintf("Level %d", r.s.Level))

	return nil
}
