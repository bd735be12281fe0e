package hero

import (
	"log/slog"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

var _ state.Hero = (*Minstrel)(nil)

// Minstrel lets Thieves and Mages stand in for each other. The Bard side
// also gives every Champion one extra kill.
type Minstrel struct {
	card
}

// NewMinstrel returns a Novice Minstrel
func NewMinstrel() *Minstrel {
	return &Minstrel{card: newCard(KeyMinstrel,
		rankText{
			name:         "Minstrel",
			specialty:    "Thieves may be used as Mages and Mages may be used as Thieves.",
			ultimateName: "Song of Silence",
			ultimate:     "Discard all dice from the Dragon's Lair.",
		},
		rankText{
			name: "Bard",
			specialty: "Thieves may be used as Mages and Mages may be used as Thieves. " +
				"Champions defeat 1 extra monster.",
			ultimateName: "Song of Silence",
			ultimate:     "Discard all dice from the Dragon's Lair.",
		},
	)}
}

// Specialty swaps Thief and Mage, plus the Champion bonus for a Bard
func (h *Minstrel) Specialty() dungeon.Specialty {
	spec := dungeon.Specialty{
		Substitutes: map[dungeon.PartyFace][]dungeon.PartyFace{
			dungeon.Thief: {dungeon.Mage},
			dungeon.Mage:  {dungeon.Thief},
		},
	}
	if h.rank == dungeon.RankExpert {
		spec.ChampionBonus = 1
	}
	return spec
}

// UseUltimate empties the lair. The dragon does not count as slain.
func (h *Minstrel) UseUltimate(s *state.State) error {
	if err := h.ready(); err != nil {
		return err
	}
	if len(s.Lair) == 0 {
		return errors.FailedPrecondition("there are no dragons in the lair")
	}

	discarded := s.ClearLair()
	h.exhaust()
	slog.Info("Lair discarded", "hero", h.Name(), "dragons", discarded)

	return nil
}
