package state_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dice-delve/internal/dice"
	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/state"
	statemock "github.com/KirkDiggler/dice-delve/internal/state/mock"
	"github.com/KirkDiggler/dice-delve/internal/treasure"
)

type StateTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockHero *statemock.MockHero
	roller   *dice.SequenceRoller
	state    *state.State
}

func TestStateSuite(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}

func (s *StateTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockHero = statemock.NewMockHero(s.ctrl)
	s.state = s.newState()
}

// newState builds a state whose dice replay the given d6 results
func (s *StateTestSuite) newState(rolls ...int) *state.State {
	s.roller = dice.NewSequenceRoller(rolls...)
	randomizer, err := dice.NewRandomizer(&dice.Config{Roller: s.roller})
	s.Require().NoError(err)

	hoard, err := treasure.NewHoard(&treasure.Config{Picker: randomizer})
	s.Require().NoError(err)

	st, err := state.New(&state.Config{
		Hero:     s.mockHero,
		Treasure: hoard,
		Dice:     randomizer,
		Rules:    dungeon.DefaultRules(),
	})
	s.Require().NoError(err)
	st.BeginDelve()
	return st
}

func (s *StateTestSuite) TestNewValidatesConfig() {
	_, err := state.New(&state.Config{Rules: dungeon.Rules{}})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(meta, "Hero")
	s.Assert().Contains(meta, "Rules.PartyDice")
}

func (s *StateTestSuite) TestBeginDelve() {
	s.state.Party = []dungeon.PartyFace{dungeon.Fighter}
	s.state.Lair = []dungeon.DungeonFace{dungeon.Dragon}
	s.state.Level = 6

	s.state.BeginDelve()

	s.Assert().Empty(s.state.Party)
	s.Assert().Empty(s.state.Lair)
	s.Assert().Equal(1, s.state.Level)
	s.Assert().Equal(2, s.state.Delve)
}

func (s *StateTestSuite) TestSpendAndReviveConserveDice() {
	s.state.Party = []dungeon.PartyFace{
		dungeon.Fighter, dungeon.Cleric, dungeon.Mage, dungeon.Thief,
		dungeon.Champion, dungeon.Scroll, dungeon.Fighter,
	}
	s.Require().NoError(s.state.CheckConservation())

	face, err := s.state.SpendParty(1)
	s.Require().NoError(err)
	s.Assert().Equal(dungeon.Cleric, face)
	s.Assert().NoError(s.state.CheckConservation())

	s.Require().NoError(s.state.Revive(dungeon.Champion))
	s.Assert().Empty(s.state.Graveyard)
	s.Assert().Equal(2, s.state.CountParty(dungeon.Champion))
	s.Assert().NoError(s.state.CheckConservation())
}

func (s *StateTestSuite) TestSpendPartyOutOfRange() {
	_, err := s.state.SpendParty(0)
	s.Assert().True(errors.IsOutOfRange(err))
}

func (s *StateTestSuite) TestReviveEmptyGraveyard() {
	err := s.state.Revive(dungeon.Fighter)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Empty(s.state.Party)
}

func (s *StateTestSuite) TestReviveRejectsDungeonFace() {
	s.state.Graveyard = []dungeon.PartyFace{dungeon.Mage}

	err := s.state.Revive(dungeon.PartyFace("Goblin"))
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Len(s.state.Graveyard, 1)
}

func (s *StateTestSuite) TestRollDungeonRespectsLair() {
	st := s.newState(1, 2, 4, 5)
	st.Lair = []dungeon.DungeonFace{dungeon.Dragon, dungeon.Dragon, dungeon.Dragon}

	// 7 dice minus 3 in the lair leaves room for 4
	s.Require().NoError(st.RollDungeon(6))
	s.Assert().Equal([]dungeon.DungeonFace{dungeon.Goblin, dungeon.Skeleton, dungeon.Chest}, st.Dungeon)
	s.Assert().Len(st.Lair, 4)
	s.Assert().Equal(0, s.roller.Remaining())
}

func (s *StateTestSuite) TestRerollDungeon() {
	st := s.newState(4, 6)
	st.Dungeon = []dungeon.DungeonFace{dungeon.Goblin, dungeon.Ooze, dungeon.Chest}

	s.Require().NoError(st.RerollDungeon([]int{0, 2, 2}))
	s.Assert().Equal([]dungeon.DungeonFace{dungeon.Ooze, dungeon.Potion}, st.Dungeon)
	s.Assert().Equal([]dungeon.DungeonFace{dungeon.Dragon}, st.Lair)
}

func (s *StateTestSuite) TestRerollOutOfRangeChangesNothing() {
	st := s.newState(1)
	st.Dungeon = []dungeon.DungeonFace{dungeon.Goblin}

	err := st.RerollDungeon([]int{0, 3})
	s.Assert().True(errors.IsOutOfRange(err))
	s.Assert().Equal([]dungeon.DungeonFace{dungeon.Goblin}, st.Dungeon)
	s.Assert().Equal(1, s.roller.Remaining())
}

func (s *StateTestSuite) TestRerollParty() {
	st := s.newState(5)
	st.Party = []dungeon.PartyFace{dungeon.Scroll, dungeon.Fighter}

	s.Require().NoError(st.RerollParty([]int{1}))
	s.Assert().Equal([]dungeon.PartyFace{dungeon.Scroll, dungeon.Champion}, st.Party)
}

func (s *StateTestSuite) TestMonstersToLair() {
	s.state.Dungeon = []dungeon.DungeonFace{dungeon.Goblin, dungeon.Chest, dungeon.Ooze, dungeon.Potion}

	s.Assert().Equal(2, s.state.MonstersToLair())
	s.Assert().Equal([]dungeon.DungeonFace{dungeon.Chest, dungeon.Potion}, s.state.Dungeon)
	s.Assert().Len(s.state.Lair, 2)
	s.Assert().Equal(0, s.state.MonsterCount())
	s.Assert().Equal(2, s.state.LootCount())
}

func (s *StateTestSuite) TestRemoveAndReplaceDungeon() {
	s.state.Dungeon = []dungeon.DungeonFace{dungeon.Chest, dungeon.Goblin, dungeon.Chest, dungeon.Chest}

	s.Assert().Equal(2, s.state.RemoveDungeon(dungeon.Chest, 2))
	s.Assert().Equal([]dungeon.DungeonFace{dungeon.Goblin, dungeon.Chest}, s.state.Dungeon)

	s.Assert().Equal(1, s.state.ReplaceDungeon(dungeon.Chest, dungeon.Potion))
	s.Assert().Equal(1, s.state.CountDungeon(dungeon.Potion))
}

func (s *StateTestSuite) TestDragonAwake() {
	s.state.Lair = []dungeon.DungeonFace{dungeon.Dragon, dungeon.Dragon}
	s.Assert().False(s.state.DragonAwake())

	s.state.Lair = append(s.state.Lair, dungeon.Dragon)
	s.Assert().True(s.state.DragonAwake())

	s.Assert().Equal(3, s.state.ClearLair())
	s.Assert().False(s.state.DragonAwake())
}

func (s *StateTestSuite) TestDrawTreasureFallsBackToExperience() {
	// every pick takes the first token until the supply is gone
	st := s.newState(make36()...)
	for range 36 {
		_, ok, err := st.DrawTreasure()
		s.Require().NoError(err)
		s.Require().True(ok)
	}

	_, ok, err := st.DrawTreasure()
	s.Require().NoError(err)
	s.Assert().False(ok)
	s.Assert().Equal(1, st.Experience)
}

func (s *StateTestSuite) TestDrawTreasureRollerFailureIsNotAnEmptySupply() {
	// no rolls left, so the pick fails while the supply is still full
	st := s.newState()

	_, ok, err := st.DrawTreasure()
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))
	s.Assert().False(ok)
	s.Assert().Equal(0, st.Experience)
	s.Assert().Equal(dungeon.TreasureSupplySize(), st.Treasure.SupplySize())
	s.Assert().Equal(0, st.Treasure.InventorySize())
}

func (s *StateTestSuite) TestCompanionsListPartyBeforeTreasure() {
	st := s.newState(1) // draws the first Vorpal Sword
	_, ok, err := st.DrawTreasure()
	s.Require().NoError(err)
	s.Require().True(ok)

	st.Party = []dungeon.PartyFace{dungeon.Scroll, dungeon.Thief, dungeon.Champion}

	companions := st.Companions()
	s.Require().Len(companions, 3)
	s.Assert().Equal(dungeon.Companion{
		Face: dungeon.Thief, Origin: dungeon.OriginParty, Slot: 1, Label: "Thief",
	}, companions[0])
	s.Assert().Equal(dungeon.Champion, companions[1].Face)
	s.Assert().Equal(dungeon.Companion{
		Face: dungeon.Fighter, Origin: dungeon.OriginTreasure, Slot: 0, Label: "Vorpal Sword (Fighter)",
	}, companions[2])
}

func (s *StateTestSuite) TestSpendCompanions() {
	st := s.newState(1)
	_, _, err := st.DrawTreasure()
	s.Require().NoError(err)

	st.Party = []dungeon.PartyFace{dungeon.Fighter, dungeon.Cleric, dungeon.Mage}
	companions := st.Companions()

	s.Require().NoError(st.SpendCompanions([]dungeon.Companion{companions[0], companions[2], companions[3]}))
	s.Assert().Equal([]dungeon.PartyFace{dungeon.Cleric}, st.Party)
	s.Assert().ElementsMatch([]dungeon.PartyFace{dungeon.Fighter, dungeon.Mage}, st.Graveyard)
	s.Assert().Equal(0, st.Treasure.InventorySize())
	s.Assert().Equal(36, st.Treasure.SupplySize())
}

func (s *StateTestSuite) TestSnapshotIsACopy() {
	s.mockHero.EXPECT().Name().Return("Minstrel")
	s.mockHero.EXPECT().Rank().Return(dungeon.RankNovice)
	s.mockHero.EXPECT().SpecialtyText().Return("swap")
	s.mockHero.EXPECT().UltimateName().Return("Song")
	s.mockHero.EXPECT().UltimateText().Return("clear the lair")
	s.mockHero.EXPECT().Exhausted().Return(false)

	s.state.Party = []dungeon.PartyFace{dungeon.Fighter}
	snap := s.state.Snapshot(dungeon.PhaseMonster, "hello")
	snap.Party[0] = dungeon.Scroll

	s.Assert().Equal(dungeon.Fighter, s.state.Party[0])
	s.Assert().Equal(dungeon.PhaseMonster, snap.Phase)
	s.Assert().Equal("Minstrel", snap.Hero.Name)
	s.Assert().Equal(36, snap.SupplySize)
	s.Assert().Equal(3, snap.Delves)
}

func make36() []int {
	rolls := make([]int, 36)
	for i := range rolls {
		rolls[i] = 1
	}
	return rolls
}
