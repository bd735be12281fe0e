package combat

import (
	"log/slog"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

// DragonFighter reports whether the companion may face the dragon. Scrolls
// and Champions never can, and substitutions do not apply.
func DragonFighter(c dungeon.Companion) bool {
	return c.Face.IsCompanion() && c.Face != dungeon.Champion
}

// DragonTeam returns the first size companions of mutually distinct faces,
// in companion order.
func DragonTeam(companions []dungeon.Companion, size int) ([]dungeon.Companion, bool) {
	var team []dungeon.Companion
	for _, c := range companions {
		if len(team) == size {
			break
		}
		if DragonFighter(c) && !faceTaken(team, c.Face) {
			team = append(team, c)
		}
	}
	if len(team) != size {
		return nil, false
	}
	return team, true
}

// DragonCandidates lists the companions that can join chosen. It is empty
// when the remaining faces cannot complete a team of size.
func DragonCandidates(chosen []dungeon.Companion, companions []dungeon.Companion, size int) []dungeon.Companion {
	var candidates []dungeon.Companion
	faces := map[dungeon.PartyFace]bool{}
	for _, c := range companions {
		if !DragonFighter(c) || picked(chosen, c) || faceTaken(chosen, c.Face) {
			continue
		}
		candidates = append(candidates, c)
		faces[c.Face] = true
	}
	if len(chosen)+len(faces) < size {
		return nil
	}
	return candidates
}

// SlayDragon spends the team, empties the lair and counts the kill. The
// caller pays out the reward.
func SlayDragon(s *state.State, team []dungeon.Companion) error {
	size := dungeon.DragonTeamSize
	if !s.DragonAwake() {
		return errors.FailedPrecondition("the dragon has not woken")
	}
	if len(team) != size {
		return errors.InvalidArgumentf("the dragon must be fought by exactly %d companions", size)
	}

	for i, c := range team {
		if !DragonFighter(c) {
			return errors.InvalidArgumentf("%s cannot fight the dragon", c.Label)
		}
		if faceTaken(team[:i], c.Face) || picked(team[:i], c) {
			return errors.InvalidArgument("dragon fighters must all be different")
		}
	}

	if err := s.SpendCompanions(team); err != nil {
		return errors.Wrap(err, "failed to spend dragon fighters")
	}
	dragons := s.ClearLair()
	s.DragonsSlain++

	slog.Info("Dragon slain",
		"dragons", dragons,
		"dragons_slain", s.DragonsSlain)

	return nil
}

func picked(chosen []dungeon.Companion, c dungeon.Companion) bool {
	for _, p := range chosen {
		if p.Origin == c.Origin && p.Slot == c.Slot {
			return true
		}
	}
	return false
}

func faceTaken(chosen []dungeon.Companion, face dungeon.PartyFace) bool {
	for _, p := range chosen {
		if p.Face == face {
			return true
		}
	}
	return false
}
