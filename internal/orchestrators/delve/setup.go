package delve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
)

// setup forms a fresh party and opens the first level
func (r *run) setup(ctx context.Context) error {
	r.s.BeginDelve()
	r.record.Delve = r.s.Delve
	r.record.Level = r.s.Level

	party, err := r.s.Dice.RollParty(r.s.Rules.PartyDice)
	if err != nil {
		return errors.Wrap(err, "failed to roll party")
	}
	r.s.Party = party
	r.s.Hero.Refresh()

	if err := r.s.RollDungeon(1); err != nil {
		return err
	}
	if err := r.s.Hero.Formation(r.s); err != nil {
		return errors.Wrap(err, "formation failed")
	}

	slog.Info("Delve started",
		"delve_id", r.record.ID,
		"delve", r.s.Delve,
		"hero", r.s.Hero.Name(),
		"party", party)

	r.publish(ctx, EventDelveStarted)
	r.enter(ctx, dungeon.PhaseSetup)
	r.render(ctx, dungeon.PhaseSetup, fmt.Sprintf("Delve %d of %d begins", r.s.Delve, r.s.Rules.Delves))

	return nil
}
