// Package hero implements the selectable hero cards
package hero

import (
	"log/slog"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

// rankText holds the card text for one rank
type rankText struct {
	name         string
	specialty    string
	ultimateName string
	ultimate     string
}

// card carries what every hero shares: both sides of the card, the current
// rank and the exhaustion flag
type card struct {
	id        string
	novice    rankText
	expert    rankText
	rank      dungeon.Rank
	exhausted bool
}

func newCard(id string, novice, expert rankText) card {
	return card{
		id:     id,
		novice: novice,
		expert: expert,
		rank:   dungeon.RankNovice,
	}
}

func (c *card) side() rankText {
	if c.rank == dungeon.RankExpert {
		return c.expert
	}
	return c.novice
}

// GetID returns the hero key
func (c *card) GetID() string {
	return c.id
}

// GetType returns the entity type for rpg-toolkit
func (c *card) GetType() string {
	return "hero"
}

// Name is the name printed on the current side of the card
func (c *card) Name() string {
	return c.side().name
}

// Rank returns the current rank
func (c *card) Rank() dungeon.Rank {
	return c.rank
}

// SpecialtyText describes the passive ability
func (c *card) SpecialtyText() string {
	return c.side().specialty
}

// UltimateName is the name of the ultimate ability
func (c *card) UltimateName() string {
	return c.side().ultimateName
}

// UltimateText describes the ultimate ability
func (c *card) UltimateText() string {
	return c.side().ultimate
}

// Exhausted reports whether the ultimate has been used
func (c *card) Exhausted() bool {
	return c.exhausted
}

// Refresh makes the ultimate available again
func (c *card) Refresh() {
	if c.exhausted {
		slog.Debug("Hero refreshed", "hero", c.Name())
	}
	c.exhausted = false
}

// Promote flips the card to its Expert side once experience reaches the
// threshold. Experts stay Experts.
func (c *card) Promote(experience int) bool {
	if c.rank != dungeon.RankNovice || experience < dungeon.PromotionXP {
		return false
	}

	before := c.Name()
	c.rank = dungeon.RankExpert
	slog.Info("Hero promoted",
		"from", before,
		"to", c.Name(),
		"experience", experience)

	return true
}

// Formation does nothing unless a hero overrides it
func (c *card) Formation(_ *state.State) error {
	return nil
}

// EndGameBonus is zero unless a hero overrides it
func (c *card) EndGameBonus(_ *state.State) int {
	return 0
}

// ready fails when the ultimate is already spent
func (c *card) ready() error {
	if c.exhausted {
		return errors.FailedPreconditionf("%s is exhausted", c.Name()).
			WithMeta("ultimate", c.UltimateName())
	}
	return nil
}

// exhaust marks the ultimate as used
func (c *card) exhaust() {
	c.exhausted = true
	slog.Info("Ultimate used",
		"hero", c.Name(),
		"ultimate", c.UltimateName())
}
