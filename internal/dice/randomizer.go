// Package dice turns raw d6 rolls into party and dungeon faces
package dice

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
)

const faceCount = 6

// Config holds the dependencies for the randomizer
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Randomizer samples die faces uniformly with replacement. It is the only
// source of randomness in a game.
type Randomizer struct {
	roller dice.Roller
}

// NewRandomizer creates a randomizer over the given roller
func NewRandomizer(cfg *Config) (*Randomizer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Randomizer{roller: cfg.Roller}, nil
}

// RollParty rolls n white dice
func (r *Randomizer) RollParty(n int) ([]dungeon.PartyFace, error) {
	if n <= 0 {
		return nil, nil
	}

	rolls, err := r.roller.RollN(n, faceCount)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %d party dice", n)
	}

	faces := make([]dungeon.PartyFace, 0, len(rolls))
	for _, roll := range rolls {
		face, ok := dungeon.PartyFaceFromRoll(roll)
		if !ok {
			return nil, errors.Internalf("roller returned %d for a d6", roll)
		}
		faces = append(faces, face)
	}

	return faces, nil
}

// RollPartyDie rolls a single white die
func (r *Randomizer) RollPartyDie() (dungeon.PartyFace, error) {
	faces, err := r.RollParty(1)
	if err != nil {
		return "", err
	}
	return faces[0], nil
}

// RollDungeon rolls n black dice. Every Dragon rolled is appended to lair and
// left out of the result, so fewer than n faces may come back.
func (r *Randomizer) RollDungeon(n int, lair *[]dungeon.DungeonFace) ([]dungeon.DungeonFace, error) {
	if n <= 0 {
		return nil, nil
	}
	if lair == nil {
		return nil, errors.InvalidArgument("lair is required")
	}

	rolls, err := r.roller.RollN(n, faceCount)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %d dungeon dice", n)
	}

	faces := make([]dungeon.DungeonFace, 0, len(rolls))
	for _, roll := range rolls {
		face, ok := dungeon.DungeonFaceFromRoll(roll)
		if !ok {
			return nil, errors.Internalf("roller returned %d for a d6", roll)
		}
		if face == dungeon.Dragon {
			*lair = append(*lair, face)
			continue
		}
		faces = append(faces, face)
	}

	if diverted := n - len(faces); diverted > 0 {
		slog.Debug("Dragons diverted to the lair",
			"rolled", n,
			"dragons", diverted,
			"lair_size", len(*lair))
	}

	return faces, nil
}

// Pick returns a uniform index in [0, n)
func (r *Randomizer) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("cannot pick from %d items", n)
	}

	roll, err := r.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to pick")
	}
	if roll < 1 || roll > n {
		return 0, errors.Internalf("roller returned %d for a d%d", roll, n)
	}

	return roll - 1, nil
}
