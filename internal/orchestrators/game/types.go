package game

import (
	"context"
	"time"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/orchestrators/delve"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

// Event types published on the bus
const (
	EventHeroPromoted = "hero.promoted"
	EventGameEnded    = "game.ended"
)

// Service plays whole games
type Service interface {
	// PlayGame runs every delve of a game and scores it
	PlayGame(ctx context.Context, input *PlayGameInput) (*PlayGameOutput, error)
}

// PlayGameInput is the request for PlayGame
type PlayGameInput struct {
	State *state.State
}

// PlayGameOutput is the response for PlayGame
type PlayGameOutput struct {
	Summary *Summary
}

// Score breaks the final score down by source
type Score struct {
	Experience int
	Treasure   int
	HeroBonus  int
	Total      int
}

// Summary is the record of a finished game
type Summary struct {
	GameID       string
	Hero         string
	Rank         dungeon.Rank
	Delves       []*delve.Result
	DragonsSlain int
	Score        Score
	StartedAt    time.Time
	EndedAt      time.Time
}

// Record identifies a game on the event bus
type Record struct {
	ID    string
	Hero  string
	Rank  dungeon.Rank
	Score int
}

// GetID returns the game ID
func (r *Record) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *Record) GetType() string {
	return "game"
}
