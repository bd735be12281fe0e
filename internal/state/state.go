// Package state holds the pools and counters of one game session
package state

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/dice-delve/internal/dice"
	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/treasure"
)

// Config holds the dependencies of a game state
type Config struct {
	Hero     Hero
	Treasure *treasure.Hoard
	Dice     *dice.Randomizer
	Rules    dungeon.Rules
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Hero == nil {
		vb.RequiredField("Hero")
	}
	if c.Treasure == nil {
		vb.RequiredField("Treasure")
	}
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	errors.ValidatePositive("Rules.PartyDice", c.Rules.PartyDice, vb)
	errors.ValidatePositive("Rules.DungeonDice", c.Rules.DungeonDice, vb)
	errors.ValidatePositive("Rules.MaxLevel", c.Rules.MaxLevel, vb)
	errors.ValidatePositive("Rules.Delves", c.Rules.Delves, vb)
	errors.ValidatePositive("Rules.DragonThreshold", c.Rules.DragonThreshold, vb)

	return vb.Build()
}

// State is the whole table. Party and Graveyard always hold
// Rules.PartyDice dice between them once a delve has been set up.
type State struct {
	Party     []dungeon.PartyFace
	Graveyard []dungeon.PartyFace
	Dungeon   []dungeon.DungeonFace
	Lair      []dungeon.DungeonFace

	Level        int
	Delve        int
	Experience   int
	DragonsSlain int

	Hero     Hero
	Treasure *treasure.Hoard
	Dice     *dice.Randomizer
	Rules    dungeon.Rules
}

// New creates the state for a new game
func New(cfg *Config) (*State, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &State{
		Level:    1,
		Hero:     cfg.Hero,
		Treasure: cfg.Treasure,
		Dice:     cfg.Dice,
		Rules:    cfg.Rules,
	}, nil
}

// BeginDelve empties every pool, resets the level and advances the delve
// counter
func (s *State) BeginDelve() {
	s.Party = nil
	s.Graveyard = nil
	s.Dungeon = nil
	s.Lair = nil
	s.Level = 1
	s.Delve++
}

// SpendParty moves the party die at idx to the graveyard
func (s *State) SpendParty(idx int) (dungeon.PartyFace, error) {
	if idx < 0 || idx >= len(s.Party) {
		return "", errors.OutOfRangef("no party die at position %d", idx+1).
			WithMeta("index", idx)
	}

	face := s.Party[idx]
	s.Party = slices.Delete(s.Party, idx, idx+1)
	s.Graveyard = append(s.Graveyard, face)

	return face, nil
}

// FindParty returns the index of the first party die showing face, or -1
func (s *State) FindParty(face dungeon.PartyFace) int {
	return slices.Index(s.Party, face)
}

// CountParty returns how many party dice show face
func (s *State) CountParty(face dungeon.PartyFace) int {
	n := 0
	for _, f := range s.Party {
		if f == face {
			n++
		}
	}
	return n
}

// Revive returns one graveyard die to the party showing face
func (s *State) Revive(face dungeon.PartyFace) error {
	if len(s.Graveyard) == 0 {
		return errors.FailedPrecondition("the graveyard is empty")
	}
	if !slices.Contains(dungeon.PartyFaces, face) {
		return errors.InvalidArgumentf("%q is not a party face", face)
	}

	s.Graveyard = s.Graveyard[:len(s.Graveyard)-1]
	s.Party = append(s.Party, face)

	return nil
}

// RerollParty rolls the party dice at the given indices again in place
func (s *State) RerollParty(indices []int) error {
	indices = unique(indices)
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.Party) {
			return errors.OutOfRangef("no party die at position %d", idx+1)
		}
	}

	for _, idx := range indices {
		face, err := s.Dice.RollPartyDie()
		if err != nil {
			return errors.Wrap(err, "failed to reroll party die")
		}
		s.Party[idx] = face
	}

	return nil
}

// RerollDungeon rolls the dungeon dice at the given indices again. Dragons
// rolled this way go to the lair.
func (s *State) RerollDungeon(indices []int) error {
	indices = unique(indices)
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.Dungeon) {
			return errors.OutOfRangef("no dungeon die at position %d", idx+1)
		}
	}

	faces, err := s.Dice.RollDungeon(len(indices), &s.Lair)
	if err != nil {
		return errors.Wrap(err, "failed to reroll dungeon dice")
	}

	s.Dungeon = removeIndices(s.Dungeon, indices)
	s.Dungeon = append(s.Dungeon, faces...)

	return nil
}

// RollDungeon adds up to n new dice to the dungeon pool, never more than the
// dice left outside the lair
func (s *State) RollDungeon(n int) error {
	free := s.Rules.DungeonDice - len(s.Lair) - len(s.Dungeon)
	n = min(n, free)
	if n <= 0 {
		return nil
	}

	faces, err := s.Dice.RollDungeon(n, &s.Lair)
	if err != nil {
		return errors.Wrap(err, "failed to roll dungeon dice")
	}
	s.Dungeon = append(s.Dungeon, faces...)

	return nil
}

// CountDungeon returns how many dungeon dice show face
func (s *State) CountDungeon(face dungeon.DungeonFace) int {
	n := 0
	for _, f := range s.Dungeon {
		if f == face {
			n++
		}
	}
	return n
}

// RemoveDungeon removes up to n dice showing face and returns how many were
// removed
func (s *State) RemoveDungeon(face dungeon.DungeonFace, n int) int {
	removed := 0
	kept := s.Dungeon[:0]
	for _, f := range s.Dungeon {
		if f == face && removed < n {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	s.Dungeon = kept
	return removed
}

// ReplaceDungeon turns every die showing from into to and returns the count
func (s *State) ReplaceDungeon(from, to dungeon.DungeonFace) int {
	n := 0
	for i, f := range s.Dungeon {
		if f == from {
			s.Dungeon[i] = to
			n++
		}
	}
	return n
}

// MonsterCount is the number of monsters in the dungeon pool
func (s *State) MonsterCount() int {
	n := 0
	for _, f := range s.Dungeon {
		if f.IsMonster() {
			n++
		}
	}
	return n
}

// LootCount is the number of chests and potions in the dungeon pool
func (s *State) LootCount() int {
	n := 0
	for _, f := range s.Dungeon {
		if f.IsLoot() {
			n++
		}
	}
	return n
}

// MonstersToLair turns every monster into a dragon in the lair and returns
// how many moved
func (s *State) MonstersToLair() int {
	moved := 0
	kept := s.Dungeon[:0]
	for _, f := range s.Dungeon {
		if f.IsMonster() {
			s.Lair = append(s.Lair, dungeon.Dragon)
			moved++
			continue
		}
		kept = append(kept, f)
	}
	s.Dungeon = kept
	return moved
}

// ClearLair returns every lair die to the supply and reports how many there
// were
func (s *State) ClearLair() int {
	n := len(s.Lair)
	s.Lair = nil
	return n
}

// DragonAwake reports whether the lair is large enough for a dragon fight
func (s *State) DragonAwake() bool {
	return len(s.Lair) >= s.Rules.DragonThreshold
}

// DrawTreasure draws one token. An empty supply pays one experience instead,
// in which case ok is false. Any other failure is returned untouched.
func (s *State) DrawTreasure() (token dungeon.Token, ok bool, err error) {
	if s.Treasure.SupplySize() == 0 {
		s.Experience++
		slog.Info("Treasure supply empty, awarding experience instead",
			"experience", s.Experience)
		return dungeon.Token{}, false, nil
	}

	token, err = s.Treasure.Draw()
	if err != nil {
		return dungeon.Token{}, false, err
	}
	return token, true, nil
}

// Companions lists every resource that can fight: party dice first, in
// pool order, then companion treasures in inventory order
func (s *State) Companions() []dungeon.Companion {
	var companions []dungeon.Companion
	for i, face := range s.Party {
		if !face.IsCompanion() {
			continue
		}
		companions = append(companions, dungeon.Companion{
			Face:   face,
			Origin: dungeon.OriginParty,
			Slot:   i,
			Label:  face.String(),
		})
	}
	for _, held := range s.Treasure.Companions() {
		face, _ := held.Token.Type.CompanionFace()
		companions = append(companions, dungeon.Companion{
			Face:   face,
			Origin: dungeon.OriginTreasure,
			Slot:   held.Index,
			Label:  fmt.Sprintf("%s (%s)", held.Token.Name(), face),
		})
	}
	return companions
}

// SpendCompanions sends party companions to the graveyard and returns
// treasure companions to the supply. Slots must come from a single
// Companions call.
func (s *State) SpendCompanions(companions []dungeon.Companion) error {
	var partySlots, treasureSlots []int
	for _, c := range companions {
		switch c.Origin {
		case dungeon.OriginParty:
			partySlots = append(partySlots, c.Slot)
		case dungeon.OriginTreasure:
			treasureSlots = append(treasureSlots, c.Slot)
		default:
			return errors.Internalf("companion %q has unknown origin %q", c.Label, c.Origin)
		}
	}

	slices.Sort(partySlots)
	slices.Reverse(partySlots)
	for _, slot := range partySlots {
		if _, err := s.SpendParty(slot); err != nil {
			return errors.Wrap(err, "failed to spend party companion")
		}
	}

	slices.Sort(treasureSlots)
	slices.Reverse(treasureSlots)
	for _, slot := range treasureSlots {
		if _, err := s.Treasure.Use(slot); err != nil {
			return errors.Wrap(err, "failed to spend treasure companion")
		}
	}

	return nil
}

// CheckConservation verifies that no party die has been lost or created
func (s *State) CheckConservation() error {
	if total := len(s.Party) + len(s.Graveyard); total != s.Rules.PartyDice {
		return errors.Internalf("party dice out of balance: %d active + %d graveyard != %d",
			len(s.Party), len(s.Graveyard), s.Rules.PartyDice)
	}
	return nil
}

func removeIndices[T any](pool []T, indices []int) []T {
	drop := make(map[int]bool, len(indices))
	for _, idx := range indices {
		drop[idx] = true
	}

	kept := make([]T, 0, len(pool))
	for i, v := range pool {
		if !drop[i] {
			kept = append(kept, v)
		}
	}
	return kept
}

func unique(indices []int) []int {
	out := slices.Clone(indices)
	slices.Sort(out)
	return slices.Compact(out)
}
