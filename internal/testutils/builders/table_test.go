package builders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/hero"
	"github.com/KirkDiggler/dice-delve/internal/testutils/builders"
)

func TestTableBuilderDefaults(t *testing.T) {
	st, err := builders.NewTableBuilder(hero.NewKnight()).Build()
	require.NoError(t, err)

	assert.Equal(t, 1, st.Delve)
	assert.Equal(t, 1, st.Level)
	assert.Empty(t, st.Party)
	assert.Empty(t, st.Graveyard)
	assert.Equal(t, dungeon.TreasureSupplySize(), st.Treasure.SupplySize())
}

func TestTableBuilderSeatsParty(t *testing.T) {
	st, err := builders.NewTableBuilder(hero.NewKnight()).
		WithParty(dungeon.Fighter, dungeon.Mage).
		WithDungeon(dungeon.Goblin, dungeon.Chest).
		WithLair(2).
		WithLevel(4).
		WithExperience(3).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []dungeon.PartyFace{dungeon.Fighter, dungeon.Mage}, st.Party)
	assert.Len(t, st.Graveyard, dungeon.PartyDice-2)
	assert.Equal(t, []dungeon.DungeonFace{dungeon.Goblin, dungeon.Chest}, st.Dungeon)
	assert.Equal(t, []dungeon.DungeonFace{dungeon.Dragon, dungeon.Dragon}, st.Lair)
	assert.Equal(t, 4, st.Level)
	assert.Equal(t, 3, st.Experience)
	require.NoError(t, st.CheckConservation())
}

func TestTableBuilderRejectsBadRules(t *testing.T) {
	_, err := builders.NewTableBuilder(hero.NewKnight()).
		WithRules(dungeon.Rules{}).
		Build()
	assert.Error(t, err)
}
