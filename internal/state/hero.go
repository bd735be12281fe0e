package state

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
)

//go:generate mockgen -destination=mock/mock_hero.go -package=statemock github.com/KirkDiggler/dice-delve/internal/state Hero

// Hero is the selected hero card. Implementations differ only in their
// specialty, ultimate and hooks; the engine never switches on the concrete
// hero. A hero is the source of its own events on the bus.
type Hero interface {
	core.Entity

	Name() string
	Rank() dungeon.Rank
	Specialty() dungeon.Specialty
	SpecialtyText() string
	UltimateName() string
	UltimateText() string

	// Exhausted reports whether the ultimate has been spent
	Exhausted() bool
	Refresh()

	// Promote moves a Novice to Expert once experience reaches the
	// promotion threshold. It reports whether the rank changed.
	Promote(experience int) bool

	// UseUltimate applies the ultimate to the state. It returns a
	// FailedPrecondition error, leaving both the state and the exhaustion
	// flag untouched, when the hero is exhausted or nothing would change.
	UseUltimate(s *State) error

	// Formation runs once per delve after the party is rolled
	Formation(s *State) error

	// EndGameBonus is extra experience added to the final score
	EndGameBonus(s *State) int
}
