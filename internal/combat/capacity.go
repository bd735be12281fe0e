// Package combat decides which companions defeat which monsters, which
// companions open chests, and whether a party can face the dragon.
package combat

import (
	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
)

// Unbounded is the capacity of a companion that defeats every remaining
// unit of a type
const Unbounded = -1

// specialists maps each specialist to the monster it wipes out
var specialists = map[dungeon.PartyFace]dungeon.DungeonFace{
	dungeon.Fighter: dungeon.Goblin,
	dungeon.Cleric:  dungeon.Skeleton,
	dungeon.Mage:    dungeon.Ooze,
}

// Capacity is how many monsters of a type one companion of the given face
// defeats: 0, 1 or Unbounded
func Capacity(face dungeon.PartyFace, monster dungeon.DungeonFace) int {
	if !monster.IsMonster() || !face.IsCompanion() {
		return 0
	}
	if face == dungeon.Champion {
		return Unbounded
	}
	if specialists[face] == monster {
		return Unbounded
	}
	return 1
}

// ChestCapacity is how many chests one companion opens
func ChestCapacity(face dungeon.PartyFace) int {
	switch {
	case face == dungeon.Thief, face == dungeon.Champion:
		return Unbounded
	case face.IsCompanion():
		return 1
	default:
		return 0
	}
}

// Horde counts monsters by type
type Horde map[dungeon.DungeonFace]int

// NewHorde counts the monsters in a dungeon pool, ignoring loot
func NewHorde(pool []dungeon.DungeonFace) Horde {
	h := Horde{}
	for _, face := range pool {
		if face.IsMonster() {
			h[face]++
		}
	}
	return h
}

// Total is the number of monsters left
func (h Horde) Total() int {
	n := 0
	for _, count := range h {
		n += count
	}
	return n
}

// Largest returns the type with the most monsters, breaking ties in
// Goblin, Skeleton, Ooze order. Types listed in skip are ignored.
func (h Horde) Largest(skip ...dungeon.DungeonFace) (dungeon.DungeonFace, bool) {
	var best dungeon.DungeonFace
	bestCount := 0
	for _, face := range dungeon.MonsterFaces {
		if contains(skip, face) {
			continue
		}
		if h[face] > bestCount {
			best, bestCount = face, h[face]
		}
	}
	return best, bestCount > 0
}

// take removes up to n monsters of a type (Unbounded removes all) and
// returns how many were removed
func (h Horde) take(face dungeon.DungeonFace, n int) int {
	have := h[face]
	if n == Unbounded || n > have {
		n = have
	}
	h[face] = have - n
	return n
}

func (h Horde) clone() Horde {
	c := make(Horde, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
