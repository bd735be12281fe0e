package dungeon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
)

func TestFaceFromRoll(t *testing.T) {
	face, ok := dungeon.PartyFaceFromRoll(5)
	assert.True(t, ok)
	assert.Equal(t, dungeon.Champion, face)

	dface, ok := dungeon.DungeonFaceFromRoll(4)
	assert.True(t, ok)
	assert.Equal(t, dungeon.Dragon, dface)

	_, ok = dungeon.PartyFaceFromRoll(0)
	assert.False(t, ok)
	_, ok = dungeon.DungeonFaceFromRoll(7)
	assert.False(t, ok)
}

func TestFaceClassification(t *testing.T) {
	for _, face := range dungeon.MonsterFaces {
		assert.True(t, face.IsMonster(), face)
		assert.False(t, face.IsLoot(), face)
	}
	assert.False(t, dungeon.Dragon.IsMonster())
	assert.True(t, dungeon.Chest.IsLoot())
	assert.True(t, dungeon.Potion.IsLoot())

	assert.True(t, dungeon.Champion.IsCompanion())
	assert.False(t, dungeon.Scroll.IsCompanion())
}

func TestTreasureCatalog(t *testing.T) {
	assert.Equal(t, 36, dungeon.TreasureSupplySize())
	assert.Len(t, dungeon.TreasureCatalog, 10)

	face, ok := dungeon.ThievesTools.CompanionFace()
	assert.True(t, ok)
	assert.Equal(t, dungeon.Thief, face)

	_, ok = dungeon.ScrollTreasure.CompanionFace()
	assert.False(t, ok)

	info, ok := dungeon.DragonScale.Info()
	assert.True(t, ok)
	assert.Equal(t, 6, info.Count)
}

func TestSpecialtyInterpretations(t *testing.T) {
	swap := dungeon.Specialty{Substitutes: map[dungeon.PartyFace][]dungeon.PartyFace{
		dungeon.Thief: {dungeon.Mage},
		dungeon.Mage:  {dungeon.Thief},
	}}

	assert.Equal(t, []dungeon.PartyFace{dungeon.Thief, dungeon.Mage}, swap.Interpretations(dungeon.Thief))
	assert.Equal(t, []dungeon.PartyFace{dungeon.Fighter}, swap.Interpretations(dungeon.Fighter))
	assert.Equal(t, []dungeon.PartyFace{dungeon.Cleric}, dungeon.Specialty{}.Interpretations(dungeon.Cleric))
}

func TestDefaultRules(t *testing.T) {
	rules := dungeon.DefaultRules()
	assert.Equal(t, 7, rules.PartyDice)
	assert.Equal(t, 10, rules.MaxLevel)
	assert.Equal(t, 3, rules.Delves)
	assert.Equal(t, 3, rules.DragonThreshold)
}
