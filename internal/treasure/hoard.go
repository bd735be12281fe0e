// Package treasure tracks the treasure tokens of one game: the shared supply
// and the tokens the player holds.
package treasure

import (
	"log/slog"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
)

//go:generate mockgen -destination=mock/mock_picker.go -package=treasuremock github.com/KirkDiggler/dice-delve/internal/treasure Picker

// Picker chooses a uniform index in [0, n)
type Picker interface {
	Pick(n int) (int, error)
}

// Config holds the dependencies for a hoard
type Config struct {
	Picker Picker
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Picker == nil {
		vb.RequiredField("Picker")
	}

	return vb.Build()
}

// Held is an inventory token together with its inventory index
type Held struct {
	Index int
	Token dungeon.Token
}

// Hoard owns every treasure token. A token is always in exactly one of the
// supply or the inventory.
type Hoard struct {
	picker    Picker
	supply    []dungeon.Token
	inventory []dungeon.Token
}

// NewHoard creates a hoard with a full supply and an empty inventory
func NewHoard(cfg *Config) (*Hoard, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	supply := make([]dungeon.Token, 0, dungeon.TreasureSupplySize())
	for _, info := range dungeon.TreasureCatalog {
		for range info.Count {
			supply = append(supply, dungeon.Token{Type: info.Type})
		}
	}

	return &Hoard{
		picker: cfg.Picker,
		supply: supply,
	}, nil
}

// Draw moves a uniformly chosen token from the supply into the inventory.
// It returns ResourceExhausted when the supply is empty.
func (h *Hoard) Draw() (dungeon.Token, error) {
	if len(h.supply) == 0 {
		return dungeon.Token{}, errors.ResourceExhausted("treasure supply is empty")
	}

	idx, err := h.picker.Pick(len(h.supply))
	if err != nil {
		return dungeon.Token{}, errors.Wrap(err, "failed to draw treasure")
	}
	if idx < 0 || idx >= len(h.supply) {
		return dungeon.Token{}, errors.Internalf("picker returned %d for %d tokens", idx, len(h.supply))
	}

	token := h.supply[idx]
	h.supply = append(h.supply[:idx], h.supply[idx+1:]...)
	h.inventory = append(h.inventory, token)

	slog.Debug("Treasure drawn",
		"treasure", token.Name(),
		"supply", len(h.supply),
		"inventory", len(h.inventory))

	return token, nil
}

// Get returns the inventory token at idx without removing it
func (h *Hoard) Get(idx int) (dungeon.Token, error) {
	if idx < 0 || idx >= len(h.inventory) {
		return dungeon.Token{}, errors.OutOfRangef("no treasure at position %d", idx+1).
			WithMeta("index", idx)
	}
	return h.inventory[idx], nil
}

// Use removes the inventory token at idx and returns it to the supply. Any
// effect of the token must already have been applied.
func (h *Hoard) Use(idx int) (dungeon.Token, error) {
	token, err := h.Get(idx)
	if err != nil {
		return dungeon.Token{}, err
	}

	h.inventory = append(h.inventory[:idx], h.inventory[idx+1:]...)
	h.supply = append(h.supply, token)

	return token, nil
}

// Find returns the index of the first held token of type t, or -1
func (h *Hoard) Find(t dungeon.TreasureType) int {
	for i, token := range h.inventory {
		if token.Type == t {
			return i
		}
	}
	return -1
}

// Count returns how many tokens of type t are held
func (h *Hoard) Count(t dungeon.TreasureType) int {
	n := 0
	for _, token := range h.inventory {
		if token.Type == t {
			n++
		}
	}
	return n
}

// Companions lists the held tokens that can stand in for a party die
func (h *Hoard) Companions() []Held {
	var held []Held
	for i, token := range h.inventory {
		if _, ok := token.Type.CompanionFace(); ok {
			held = append(held, Held{Index: i, Token: token})
		}
	}
	return held
}

// Inventory returns a copy of the held tokens
func (h *Hoard) Inventory() []dungeon.Token {
	return append([]dungeon.Token(nil), h.inventory...)
}

// InventorySize is the number of held tokens
func (h *Hoard) InventorySize() int {
	return len(h.inventory)
}

// SupplySize is the number of tokens left to draw
func (h *Hoard) SupplySize() int {
	return len(h.supply)
}

// Score is the end-game value of the inventory
func (h *Hoard) Score() int {
	return Score(h.inventory)
}

// Score values a set of tokens: one each, except Dragon Scales which are
// worth 2 per complete pair and Town Portals which are worth 2 each.
func Score(tokens []dungeon.Token) int {
	scales, portals, others := 0, 0, 0
	for _, token := range tokens {
		switch token.Type {
		case dungeon.DragonScale:
			scales++
		case dungeon.TownPortal:
			portals++
		default:
			others++
		}
	}

	return (scales/2)*2 + portals*2 + others
}
