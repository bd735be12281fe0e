// Package delve runs a single delve: Setup, Monster, Loot, an optional Dragon
// fight and Regroup, until the party fails, retires or becomes legendary.
package delve

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

var _ core.Entity = (*Record)(nil)

// Config holds the dependencies for the delve orchestrator
type Config struct {
	Choices  ChoiceProvider
	Display  Display
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Choices == nil {
		vb.RequiredField("Choices")
	}
	if c.Display == nil {
		vb.RequiredField("Display")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	choices ChoiceProvider
	display Display
	bus     events.EventBus
}

// NewOrchestrator creates a new delve orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		choices: cfg.Choices,
		display: cfg.Display,
		bus:     cfg.EventBus,
	}, nil
}

// ending is a terminal outcome together with the experience it pays
type ending struct {
	outcome dungeon.Outcome
	reward  int
}

// run is the working state of one delve
type run struct {
	*orchestrator
	s       *state.State
	record  *Record
	startXP int
}

// RunDelve plays one delve to completion
func (o *orchestrator) RunDelve(ctx context.Context, input *RunDelveInput) (*RunDelveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("DelveID", input.DelveID, vb)
	if input.State == nil {
		vb.RequiredField("State")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	r := &run{
		orchestrator: o,
		s:            input.State,
		record:       &Record{ID: input.DelveID},
		startXP:      input.State.Experience,
	}

	end, err := r.play(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "delve %s failed", input.DelveID)
	}

	switch end.outcome {
	case dungeon.OutcomeFailure:
		r.s.Experience = r.startXP
	default:
		r.s.Experience += end.reward
	}

	result := &Result{
		DelveID:          input.DelveID,
		Outcome:          end.outcome,
		Level:            r.s.Level,
		ExperienceGained: r.s.Experience - r.startXP,
		Experience:       r.s.Experience,
		Treasure:         r.s.Treasure.InventorySize(),
		DragonsSlain:     r.s.DragonsSlain,
	}

	r.record.Outcome = end.outcome
	r.record.Phase = dungeon.PhaseEnded
	r.publish(ctx, EventDelveEnded)
	r.render(ctx, dungeon.PhaseEnded, endMessage(result))

	slog.Info("Delve ended",
		"delve_id", input.DelveID,
		"outcome", result.Outcome,
		"level", result.Level,
		"experience_gained", result.ExperienceGained,
		"experience", result.Experience)

	return &RunDelveOutput{Result: result}, nil
}

// play walks the phase machine until a phase ends the delve
func (r *run) play(ctx context.Context) (*ending, error) {
	if err := r.setup(ctx); err != nil {
		return nil, errors.Wrap(err, "setup failed")
	}

	phases := []func(context.Context) (*ending, error){r.monster, r.loot, r.dragon, r.regroup}
	for {
		for _, phase := range phases {
			end, err := phase(ctx)
			if err != nil || end != nil {
				return end, err
			}
			if err := r.s.CheckConservation(); err != nil {
				return nil, err
			}
		}
	}
}

// enter records a phase change
func (r *run) enter(ctx context.Context, phase dungeon.Phase) {
	r.record.Phase = phase
	r.record.Level = r.s.Level
	r.record.Delve = r.s.Delve

	slog.Debug("Phase entered",
		"delve_id", r.record.ID,
		"phase", phase,
		"level", r.s.Level)

	r.publish(ctx, EventDelvePhase)
	r.render(ctx, phase, "")
}

// choose asks until the player picks one of the options
func (r *run) choose(ctx context.Context, title string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", errors.Internalf("no options for %q", title)
	}

	prompt := &Prompt{Phase: r.record.Phase, Title: title}
	for {
		if err := ctx.Err(); err != nil {
			return "", errors.WrapWithCode(err, errors.CodeCanceled, "delve interrupted")
		}

		key, err := r.choices.Choose(ctx, prompt, options)
		if err != nil {
			return "", errors.Wrap(err, "failed to get choice")
		}

		if slices.ContainsFunc(options, func(o Option) bool { return o.Key == key }) {
			return key, nil
		}

		slog.Debug("Choice rejected", "title", title, "key", key)
	}
}

// render shows the table with an optional message
func (r *run) render(ctx context.Context, phase dungeon.Phase, message string) {
	r.display.Render(ctx, r.s.Snapshot(phase, message))
}

// refuse turns a rejected action into a message and keeps going. Any
// other error is returned.
func (r *run) refuse(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if !errors.IsRecoverable(err) {
		return err
	}

	slog.Debug("Action refused", "phase", r.record.Phase, "reason", errors.GetMessage(err))
	r.render(ctx, r.record.Phase, errors.GetMessage(err))

	return nil
}

// publish sends a delve event. A failing subscriber never stops the game.
func (r *run) publish(ctx context.Context, eventType string) {
	event := events.NewGameEvent(eventType, r.record, nil)
	if err := r.bus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"event", eventType,
			"delve_id", r.record.ID,
			"error", err)
	}
}
