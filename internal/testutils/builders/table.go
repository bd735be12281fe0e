// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/dice-delve/internal/dice"
	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/state"
	"github.com/KirkDiggler/dice-delve/internal/treasure"
)

// DefaultRolls is how many rolls a table gets when none are given
const DefaultRolls = 40

// TableBuilder provides a fluent interface for building test tables
type TableBuilder struct {
	hero    state.Hero
	rolls   []int
	rules   dungeon.Rules
	party   []dungeon.PartyFace
	dungeon []dungeon.DungeonFace
	lair    []dungeon.DungeonFace
	level   int
	xp      int
	seated  bool
}

// NewTableBuilder creates a builder whose rolls are all ones, so every
// treasure draw takes the first token of the supply
func NewTableBuilder(h state.Hero) *TableBuilder {
	return &TableBuilder{
		hero:  h,
		rolls: Ones(DefaultRolls),
		rules: dungeon.DefaultRules(),
		level: 1,
	}
}

// WithRolls replaces the roll sequence
func (b *TableBuilder) WithRolls(rolls ...int) *TableBuilder {
	b.rolls = rolls
	return b
}

// WithRules sets the table limits
func (b *TableBuilder) WithRules(rules dungeon.Rules) *TableBuilder {
	b.rules = rules
	return b
}

// WithParty seats the party. The rest of the dice go to the graveyard as
// Scrolls.
func (b *TableBuilder) WithParty(faces ...dungeon.PartyFace) *TableBuilder {
	b.party = faces
	b.seated = true
	return b
}

// WithDungeon sets the dungeon dice on the table
func (b *TableBuilder) WithDungeon(faces ...dungeon.DungeonFace) *TableBuilder {
	b.dungeon = faces
	return b
}

// WithLair puts n dragons in the lair
func (b *TableBuilder) WithLair(n int) *TableBuilder {
	b.lair = make([]dungeon.DungeonFace, n)
	for i := range b.lair {
		b.lair[i] = dungeon.Dragon
	}
	return b
}

// WithLevel sets the dungeon level
func (b *TableBuilder) WithLevel(level int) *TableBuilder {
	b.level = level
	return b
}

// WithExperience sets the experience already earned
func (b *TableBuilder) WithExperience(xp int) *TableBuilder {
	b.xp = xp
	return b
}

// Build creates the state and begins its first delve
func (b *TableBuilder) Build() (*state.State, error) {
	randomizer, err := dice.NewRandomizer(&dice.Config{Roller: dice.NewSequenceRoller(b.rolls...)})
	if err != nil {
		return nil, err
	}
	hoard, err := treasure.NewHoard(&treasure.Config{Picker: randomizer})
	if err != nil {
		return nil, err
	}

	st, err := state.New(&state.Config{
		Hero:     b.hero,
		Treasure: hoard,
		Dice:     randomizer,
		Rules:    b.rules,
	})
	if err != nil {
		return nil, err
	}
	st.BeginDelve()

	st.Level = b.level
	st.Experience = b.xp
	st.Dungeon = append(st.Dungeon, b.dungeon...)
	st.Lair = append(st.Lair, b.lair...)
	if b.seated {
		st.Party = append(st.Party, b.party...)
		for range b.rules.PartyDice - len(b.party) {
			st.Graveyard = append(st.Graveyard, dungeon.Scroll)
		}
	}
	return st, nil
}

// Ones returns n rolls of 1
func Ones(n int) []int {
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = 1
	}
	return rolls
}
