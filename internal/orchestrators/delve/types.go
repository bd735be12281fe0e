package delve

import (
	"context"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

//go:generate mockgen -destination=mock/mock_collaborators.go -package=delvemock github.com/KirkDiggler/dice-delve/internal/orchestrators/delve ChoiceProvider,Display,Service

// Event types published on the bus
const (
	EventDelveStarted = "delve.started"
	EventDelvePhase   = "delve.phase"
	EventDelveEnded   = "delve.ended"
)

// Service runs delves
type Service interface {
	// RunDelve plays one delve from Setup to its outcome
	RunDelve(ctx context.Context, input *RunDelveInput) (*RunDelveOutput, error)
}

// Option is one entry of a closed menu
type Option struct {
	Key   string
	Label string
}

// Prompt describes what the player is being asked
type Prompt struct {
	Phase dungeon.Phase
	Title string
	// Details carries extra lines such as the hero's specialty
	Details []string
}

// ChoiceProvider gets a decision from the player. The engine asks again
// whenever the returned key is not one of the offered options.
type ChoiceProvider interface {
	Choose(ctx context.Context, prompt *Prompt, options []Option) (string, error)
}

// Display shows the table to the player. It must not change the snapshot's
// source.
type Display interface {
	Render(ctx context.Context, snapshot *state.Snapshot)
}

// RunDelveInput is the request for RunDelve
type RunDelveInput struct {
	DelveID string
	State   *state.State
}

// RunDelveOutput is the response for RunDelve
type RunDelveOutput struct {
	Result *Result
}

// Result is how a delve ended and what it paid
type Result struct {
	DelveID          string
	Outcome          dungeon.Outcome
	Level            int
	ExperienceGained int
	Experience       int
	Treasure         int
	DragonsSlain     int
}

// Record identifies a delve on the event bus. Subscribers read the details
// from the event source.
type Record struct {
	ID      string
	Delve   int
	Phase   dungeon.Phase
	Level   int
	Outcome dungeon.Outcome
}

// GetID returns the delve ID
func (r *Record) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *Record) GetType() string {
	return "delve"
}
