package state

import (
	"slices"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
)

// HeroView is the read-only face of the hero card
type HeroView struct {
	Name          string
	Rank          dungeon.Rank
	SpecialtyText string
	UltimateName  string
	UltimateText  string
	Exhausted     bool
}

// Snapshot is a copy of the table for display. Changing it never changes
// the state.
type Snapshot struct {
	Phase   dungeon.Phase
	Message string

	Level        int
	MaxLevel     int
	Delve        int
	Delves       int
	Experience   int
	DragonsSlain int

	Party     []dungeon.PartyFace
	Graveyard []dungeon.PartyFace
	Dungeon   []dungeon.DungeonFace
	Lair      []dungeon.DungeonFace

	Inventory  []dungeon.Token
	SupplySize int

	Hero HeroView
}

// Snapshot copies the current table
func (s *State) Snapshot(phase dungeon.Phase, message string) *Snapshot {
	return &Snapshot{
		Phase:        phase,
		Message:      message,
		Level:        s.Level,
		MaxLevel:     s.Rules.MaxLevel,
		Delve:        s.Delve,
		Delves:       s.Rules.Delves,
		Experience:   s.Experience,
		DragonsSlain: s.DragonsSlain,
		Party:        slices.Clone(s.Party),
		Graveyard:    slices.Clone(s.Graveyard),
		Dungeon:      slices.Clone(s.Dungeon),
		Lair:         slices.Clone(s.Lair),
		Inventory:    s.Treasure.Inventory(),
		SupplySize:   s.Treasure.SupplySize(),
		Hero: HeroView{
			Name:          s.Hero.Name(),
			Rank:          s.Hero.Rank(),
			SpecialtyText: s.Hero.SpecialtyText(),
			UltimateName:  s.Hero.UltimateName(),
			UltimateText:  s.Hero.UltimateText(),
			Exhausted:     s.Hero.Exhausted(),
		},
	}
}
