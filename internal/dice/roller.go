package dice

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dice-delve/internal/errors"
)

var (
	_ dice.Roller = (*SeededRoller)(nil)
	_ dice.Roller = (*SequenceRoller)(nil)
)

// SeededRoller is a reproducible roller backed by a PCG source
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededRoller creates a roller whose rolls are fully determined by seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}

	rolls := make([]int, count)
	for i := range rolls {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
	}

	return rolls, nil
}

// SequenceRoller replays a fixed list of results. Each value is reduced into
// the requested die size, so 4 on a d6 is a 4 and 9 on a d6 is a 3. It fails
// with ResourceExhausted once the list runs out.
type SequenceRoller struct {
	values []int
	next   int
}

// NewSequenceRoller creates a roller that returns values in order
func NewSequenceRoller(values ...int) *SequenceRoller {
	return &SequenceRoller{values: values}
}

// Roll returns the next value
func (r *SequenceRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	if r.next >= len(r.values) {
		return 0, errors.ResourceExhaustedf("sequence of %d rolls used up", len(r.values))
	}

	v := r.values[r.next]
	r.next++

	return (v-1)%size + 1, nil
}

// RollN returns the next count values
func (r *SequenceRoller) RollN(count, size int) ([]int, error) {
	rolls := make([]int, count)
	for i := range rolls {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
	}
	return rolls, nil
}

// Remaining reports how many values are left
func (r *SequenceRoller) Remaining() int {
	return len(r.values) - r.next
}
