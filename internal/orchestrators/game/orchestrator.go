// Package game runs the outer loop: a fixed number of delves, hero
// promotion between them and the final score.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/orchestrators/delve"
	"github.com/KirkDiggler/dice-delve/internal/pkg/clock"
	"github.com/KirkDiggler/dice-delve/internal/pkg/idgen"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

var _ core.Entity = (*Record)(nil)

// Config holds the dependencies for the game orchestrator
type Config struct {
	Delves      delve.Service
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Delves == nil {
		vb.RequiredField("Delves")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	delves delve.Service
	bus    events.EventBus
	idGen  idgen.Generator
	clock  clock.Clock
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		delves: cfg.Delves,
		bus:    cfg.EventBus,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
	}, nil
}

// PlayGame runs the configured number of delves and scores the game
func (o *orchestrator) PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	st := input.State
	record := &Record{
		ID:   o.idGen.Generate(),
		Hero: st.Hero.Name(),
		Rank: st.Hero.Rank(),
	}
	summary := &Summary{
		GameID:    record.ID,
		StartedAt: o.clock.Now(),
	}

	slog.Info("Game started",
		"game_id", record.ID,
		"hero", record.Hero,
		"delves", st.Rules.Delves)

	for i := range st.Rules.Delves {
		out, err := o.delves.RunDelve(ctx, &delve.RunDelveInput{
			DelveID: fmt.Sprintf("%s_delve_%d", record.ID, i+1),
			State:   st,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "delve %d failed", i+1)
		}
		summary.Delves = append(summary.Delves, out.Result)

		if st.Hero.Promote(st.Experience) {
			record.Hero = st.Hero.Name()
			record.Rank = st.Hero.Rank()

			slog.Info("Hero promoted",
				"game_id", record.ID,
				"hero", record.Hero,
				"experience", st.Experience)

			o.publish(ctx, events.NewGameEvent(EventHeroPromoted, st.Hero, record), record)
		}
	}

	summary.Score = FinalScore(st)
	summary.Hero = st.Hero.Name()
	summary.Rank = st.Hero.Rank()
	summary.DragonsSlain = st.DragonsSlain
	summary.EndedAt = o.clock.Now()
	record.Score = summary.Score.Total

	slog.Info("Game ended",
		"game_id", record.ID,
		"experience", summary.Score.Experience,
		"treasure", summary.Score.Treasure,
		"hero_bonus", summary.Score.HeroBonus,
		"score", summary.Score.Total,
		"duration", summary.EndedAt.Sub(summary.StartedAt))

	o.publish(ctx, events.NewGameEvent(EventGameEnded, record, nil), record)

	return &PlayGameOutput{Summary: summary}, nil
}

// FinalScore adds experience, the treasure end-game value and the hero's
// end-game bonus
func FinalScore(st *state.State) Score {
	score := Score{
		Experience: st.Experience,
		Treasure:   st.Treasure.Score(),
		HeroBonus:  st.Hero.EndGameBonus(st),
	}
	score.Total = score.Experience + score.Treasure + score.HeroBonus
	return score
}

func (o *orchestrator) publish(ctx context.Context, e events.Event, record *Record) {
	if err := o.bus.Publish(ctx, e); err != nil {
		slog.Warn("Failed to publish event",
			"event", e.Type(),
			"game_id", record.ID,
			"error", err)
	}
}
