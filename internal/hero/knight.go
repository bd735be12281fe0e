package hero

import (
	"log/slog"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

var _ state.Hero = (*Knight)(nil)

// Knight turns Scrolls into Champions when the party forms. The Dragon
// Slayer side also starts each delve with a treasure and earns extra
// experience for every dragon slain.
type Knight struct {
	card
}

// NewKnight returns a Novice Knight
func NewKnight() *Knight {
	return &Knight{card: newCard(KeyKnight,
		rankText{
			name:         "Knight",
			specialty:    "When forming the party, all Scrolls become Champions.",
			ultimateName: "Battlecry",
			ultimate:     "Transform all monsters into Dragons and move them to the Dragon's Lair.",
		},
		rankText{
			name: "Dragon Slayer",
			specialty: "When forming the party, all Scrolls become Champions and you draw a treasure. " +
				"Each dragon slain is worth 1 extra experience at the end of the game.",
			ultimateName: "Battlecry",
			ultimate:     "Transform all monsters into Dragons and move them to the Dragon's Lair.",
		},
	)}
}

// Specialty has no combat modifiers; the Knight works at formation
func (h *Knight) Specialty() dungeon.Specialty {
	return dungeon.Specialty{}
}

// Formation promotes Scrolls to Champions
func (h *Knight) Formation(s *state.State) error {
	converted := 0
	for i, face := range s.Party {
		if face == dungeon.Scroll {
			s.Party[i] = dungeon.Champion
			converted++
		}
	}
	if converted > 0 {
		slog.Info("Scrolls rallied as Champions", "hero", h.Name(), "count", converted)
	}

	if h.rank != dungeon.RankExpert {
		return nil
	}

	token, ok, err := s.DrawTreasure()
	if err != nil {
		return errors.Wrap(err, "failed to draw formation treasure")
	}
	if ok {
		slog.Info("Formation treasure drawn", "hero", h.Name(), "treasure", token.Name())
	}

	return nil
}

// UseUltimate sends every monster to the lair as a dragon
func (h *Knight) UseUltimate(s *state.State) error {
	if err := h.ready(); err != nil {
		return err
	}
	if s.MonsterCount() == 0 {
		return errors.FailedPrecondition("there are no monsters to rally against")
	}

	moved := s.MonstersToLair()
	h.exhaust()
	slog.Info("Monsters driven into the lair", "hero", h.Name(), "count", moved)

	return nil
}

// EndGameBonus pays a Dragon Slayer one experience per dragon slain
func (h *Knight) EndGameBonus(s *state.State) int {
	if h.rank != dungeon.RankExpert {
		return 0
	}
	return s.DragonsSlain
}
