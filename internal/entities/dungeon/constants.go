// Package dungeon holds the closed vocabularies of the delve: die faces,
// treasure types, hero ranks, phases and outcomes.
package dungeon

// PartyFace is a face of a white party die
type PartyFace string

// Party die faces, in d6 order
const (
	Fighter  PartyFace = "Fighter"
	Cleric   PartyFace = "Cleric"
	Mage     PartyFace = "Mage"
	Thief    PartyFace = "Thief"
	Champion PartyFace = "Champion"
	Scroll   PartyFace = "Scroll"
)

// DungeonFace is a face of a black dungeon die
type DungeonFace string

// Dungeon die faces, in d6 order
const (
	Goblin   DungeonFace = "Goblin"
	Skeleton DungeonFace = "Skeleton"
	Ooze     DungeonFace = "Ooze"
	Dragon   DungeonFace = "Dragon"
	Chest    DungeonFace = "Chest"
	Potion   DungeonFace = "Potion"
)

// Table limits
const (
	PartyDice        = 7
	DungeonDice      = 7
	MaxLevel         = 10
	MaxDelves        = 3
	DragonThreshold  = 3
	DragonTeamSize   = 3
	PromotionXP      = 5
	LegendaryBonusXP = 10
	DragonBonusXP    = 1
)

// PartyFaces lists every party face in die order
var PartyFaces = []PartyFace{Fighter, Cleric, Mage, Thief, Champion, Scroll}

// DungeonFaces lists every dungeon face in die order
var DungeonFaces = []DungeonFace{Goblin, Skeleton, Ooze, Dragon, Chest, Potion}

// MonsterFaces lists the monster faces. The order is the tie-break order used
// whenever two monster groups have the same size.
var MonsterFaces = []DungeonFace{Goblin, Skeleton, Ooze}

// CompanionFaces lists the faces that can fight
var CompanionFaces = []PartyFace{Fighter, Cleric, Mage, Thief, Champion}

// IsMonster reports whether the face is a Goblin, Skeleton or Ooze
func (f DungeonFace) IsMonster() bool {
	return f == Goblin || f == Skeleton || f == Ooze
}

// IsLoot reports whether the face is a Chest or Potion
func (f DungeonFace) IsLoot() bool {
	return f == Chest || f == Potion
}

// IsCompanion reports whether the face can defeat monsters
func (f PartyFace) IsCompanion() bool {
	return f != Scroll && f != ""
}

// String returns the face name
func (f PartyFace) String() string {
	return string(f)
}

// String returns the face name
func (f DungeonFace) String() string {
	return string(f)
}

// PartyFaceFromRoll maps a d6 result to a party face
func PartyFaceFromRoll(n int) (PartyFace, bool) {
	if n < 1 || n > len(PartyFaces) {
		return "", false
	}
	return PartyFaces[n-1], true
}

// DungeonFaceFromRoll maps a d6 result to a dungeon face
func DungeonFaceFromRoll(n int) (DungeonFace, bool) {
	if n < 1 || n > len(DungeonFaces) {
		return "", false
	}
	return DungeonFaces[n-1], true
}
