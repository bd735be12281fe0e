package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dice-delve/internal/combat"
	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
)

func TestDragonTeam(t *testing.T) {
	sword := dungeon.Companion{Face: dungeon.Fighter, Origin: dungeon.OriginTreasure, Slot: 0, Label: "Vorpal Sword"}

	testCases := []struct {
		name       string
		companions []dungeon.Companion
		expected   bool
	}{
		{
			name:       "three distinct faces",
			companions: party(dungeon.Fighter, dungeon.Cleric, dungeon.Thief),
			expected:   true,
		},
		{
			name: "two distinct faces never win",
			companions: party(dungeon.Fighter, dungeon.Fighter, dungeon.Fighter,
				dungeon.Mage, dungeon.Mage, dungeon.Mage),
			expected: false,
		},
		{
			name:       "scrolls do not count",
			companions: party(dungeon.Fighter, dungeon.Cleric, dungeon.Scroll),
			expected:   false,
		},
		{
			name:       "champions do not count",
			companions: party(dungeon.Fighter, dungeon.Cleric, dungeon.Champion),
			expected:   false,
		},
		{
			name:       "thieves cannot stand in for a mage",
			companions: party(dungeon.Thief, dungeon.Thief, dungeon.Fighter),
			expected:   false,
		},
		{
			name:       "treasure fights as its face",
			companions: append(party(dungeon.Cleric, dungeon.Mage), sword),
			expected:   true,
		},
		{
			name:       "treasure does not add a new face",
			companions: append(party(dungeon.Fighter, dungeon.Mage), sword),
			expected:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			team, ok := combat.DragonTeam(tc.companions, dungeon.DragonTeamSize)
			assert.Equal(t, tc.expected, ok)
			if !ok {
				assert.Nil(t, team)
				return
			}
			require.Len(t, team, dungeon.DragonTeamSize)
			seen := map[dungeon.PartyFace]bool{}
			for _, c := range team {
				assert.True(t, combat.DragonFighter(c))
				assert.False(t, seen[c.Face], "face %s used twice", c.Face)
				seen[c.Face] = true
			}
		})
	}
}

func TestDragonCandidates(t *testing.T) {
	companions := party(dungeon.Fighter, dungeon.Fighter, dungeon.Cleric, dungeon.Champion, dungeon.Mage)

	first := combat.DragonCandidates(nil, companions, dungeon.DragonTeamSize)
	assert.Len(t, first, 4)

	chosen := []dungeon.Companion{companions[0]}
	second := combat.DragonCandidates(chosen, companions, dungeon.DragonTeamSize)
	require.Len(t, second, 2)
	for _, c := range second {
		assert.NotEqual(t, dungeon.Fighter, c.Face)
		assert.NotEqual(t, dungeon.Champion, c.Face)
	}

	short := party(dungeon.Fighter, dungeon.Cleric, dungeon.Champion)
	assert.Empty(t, combat.DragonCandidates(nil, short, dungeon.DragonTeamSize))
}

func (s *ResolveTestSuite) TestSlayDragon() {
	s.setParty(dungeon.Fighter, dungeon.Cleric, dungeon.Mage, dungeon.Fighter)
	s.state.Lair = []dungeon.DungeonFace{dungeon.Dragon, dungeon.Dragon, dungeon.Dragon}

	team, ok := combat.DragonTeam(s.state.Companions(), dungeon.DragonTeamSize)
	s.Require().True(ok)

	s.Require().NoError(combat.SlayDragon(s.state, team))
	s.Assert().Empty(s.state.Lair)
	s.Assert().Equal(1, s.state.DragonsSlain)
	s.Assert().Equal([]dungeon.PartyFace{dungeon.Fighter}, s.state.Party)
	s.Assert().NoError(s.state.CheckConservation())
}

func (s *ResolveTestSuite) TestSlayDragonRejectsDuplicates() {
	s.setParty(dungeon.Fighter, dungeon.Fighter, dungeon.Mage)
	s.state.Lair = []dungeon.DungeonFace{dungeon.Dragon, dungeon.Dragon, dungeon.Dragon}
	c := s.state.Companions()

	err := combat.SlayDragon(s.state, []dungeon.Companion{c[0], c[1], c[2]})
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Len(s.state.Lair, 3)
	s.Assert().Len(s.state.Party, 3)
}

func (s *ResolveTestSuite) TestSlayDragonAsleep() {
	s.setParty(dungeon.Fighter, dungeon.Cleric, dungeon.Mage)
	s.state.Lair = []dungeon.DungeonFace{dungeon.Dragon, dungeon.Dragon}

	team, ok := combat.DragonTeam(s.state.Companions(), dungeon.DragonTeamSize)
	s.Require().True(ok)

	err := combat.SlayDragon(s.state, team)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *ResolveTestSuite) TestSlayDragonRejectsChampion() {
	s.setParty(dungeon.Fighter, dungeon.Cleric, dungeon.Champion)
	s.state.Lair = []dungeon.DungeonFace{dungeon.Dragon, dungeon.Dragon, dungeon.Dragon}

	err := combat.SlayDragon(s.state, s.state.Companions())
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Len(s.state.Lair, 3)
	s.Assert().Len(s.state.Party, 3)
}
