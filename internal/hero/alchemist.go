package hero

import (
	"log/slog"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

var _ state.Hero = (*Alchemist)(nil)

// Alchemist turns every chest into a potion when loot is revealed
type Alchemist struct {
	card
}

// NewAlchemist returns a Novice Alchemist
func NewAlchemist() *Alchemist {
	return &Alchemist{card: newCard(KeyAlchemist,
		rankText{
			name:         "Alchemist",
			specialty:    "All Chests become Potions.",
			ultimateName: "Healing Salve",
			ultimate:     "Revive 1 Party die from the Graveyard and roll it.",
		},
		rankText{
			name:         "Thaumaturge",
			specialty:    "All Chests become Potions.",
			ultimateName: "Transformation Potion",
			ultimate:     "Revive 2 Party dice from the Graveyard and roll them.",
		},
	)}
}

// Specialty converts chests to potions
func (h *Alchemist) Specialty() dungeon.Specialty {
	return dungeon.Specialty{ChestsBecomePotions: true}
}

// revives is how many dice the ultimate brings back
func (h *Alchemist) revives() int {
	if h.rank == dungeon.RankExpert {
		return 2
	}
	return 1
}

// UseUltimate revives graveyard dice with freshly rolled faces
func (h *Alchemist) UseUltimate(s *state.State) error {
	if err := h.ready(); err != nil {
		return err
	}
	if len(s.Graveyard) == 0 {
		return errors.FailedPrecondition("there are no dice in the graveyard")
	}

	n := min(h.revives(), len(s.Graveyard))
	faces, err := s.Dice.RollParty(n)
	if err != nil {
		return errors.Wrap(err, "failed to roll revived dice")
	}
	for _, face := range faces {
		if err := s.Revive(face); err != nil {
			return errors.Wrap(err, "failed to revive die")
		}
	}

	h.exhaust()
	slog.Info("Dice revived", "hero", h.Name(), "faces", faces)

	return nil
}
