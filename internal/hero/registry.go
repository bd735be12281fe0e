package hero

import (
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

// Hero keys accepted by New
const (
	KeyMinstrel  = "minstrel"
	KeyAlchemist = "alchemist"
	KeyKnight    = "knight"
)

var constructors = map[string]func() state.Hero{
	KeyMinstrel:  func() state.Hero { return NewMinstrel() },
	KeyAlchemist: func() state.Hero { return NewAlchemist() },
	KeyKnight:    func() state.Hero { return NewKnight() },
}

// Keys lists the hero keys in menu order
func Keys() []string {
	return []string{KeyMinstrel, KeyAlchemist, KeyKnight}
}

// New returns a fresh Novice hero for key
func New(key string) (state.Hero, error) {
	ctor, ok := constructors[key]
	if !ok {
		return nil, errors.NotFoundf("unknown hero %q", key).
			WithMeta("known", Keys())
	}
	return ctor(), nil
}
