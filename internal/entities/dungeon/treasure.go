package dungeon

// TreasureType identifies one of the ten treasure token kinds
type TreasureType string

// Treasure types
const (
	VorpalSword        TreasureType = "Vorpal Sword"
	Talisman           TreasureType = "Talisman"
	ScepterOfPower     TreasureType = "Scepter of Power"
	ThievesTools       TreasureType = "Thieves' Tools"
	ScrollTreasure     TreasureType = "Scroll"
	RingOfInvisibility TreasureType = "Ring of Invisibility"
	DragonScale        TreasureType = "Dragon Scale"
	Elixir             TreasureType = "Elixir"
	DragonBait         TreasureType = "Dragon Bait"
	TownPortal         TreasureType = "Town Portal"
)

// TreasureInfo describes how a treasure type behaves
type TreasureInfo struct {
	Type        TreasureType
	Count       int
	Description string
	// CompanionFace is set when the token can stand in for a party die
	CompanionFace PartyFace
}

// TreasureCatalog lists every treasure type with its supply count, in the
// order the supply is built.
var TreasureCatalog = []TreasureInfo{
	{Type: VorpalSword, Count: 3, Description: "Use as one Fighter", CompanionFace: Fighter},
	{Type: Talisman, Count: 3, Description: "Use as one Cleric", CompanionFace: Cleric},
	{Type: ScepterOfPower, Count: 3, Description: "Use as one Mage", CompanionFace: Mage},
	{Type: ThievesTools, Count: 3, Description: "Use as one Thief", CompanionFace: Thief},
	{Type: ScrollTreasure, Count: 3, Description: "Use as one Scroll die"},
	{
		Type:  RingOfInvisibility,
		Count: 4,
		Description: "Return all dice in the Dragon's Lair to the supply. " +
			"This does not count as defeating the dragon",
	},
	{
		Type:        DragonScale,
		Count:       6,
		Description: "Each pair of Dragon Scales is worth 2 extra experience at the end of the game",
	},
	{Type: Elixir, Count: 3, Description: "Revive 1 party die from the graveyard and choose its face"},
	{Type: DragonBait, Count: 4, Description: "Transform all monsters into dragons and move them to the Dragon's Lair"},
	{
		Type:  TownPortal,
		Count: 4,
		Description: "Collect experience equal to the level and end the delve. " +
			"Worth 2 experience at the end of the game if unused",
	},
}

// Info returns the catalogue entry for the treasure type
func (t TreasureType) Info() (TreasureInfo, bool) {
	for _, info := range TreasureCatalog {
		if info.Type == t {
			return info, true
		}
	}
	return TreasureInfo{}, false
}

// CompanionFace returns the party face the token acts as, if any
func (t TreasureType) CompanionFace() (PartyFace, bool) {
	info, ok := t.Info()
	if !ok || info.CompanionFace == "" {
		return "", false
	}
	return info.CompanionFace, true
}

// TreasureSupplySize is the number of tokens in a fresh supply
func TreasureSupplySize() int {
	total := 0
	for _, info := range TreasureCatalog {
		total += info.Count
	}
	return total
}

// Token is a single treasure token
type Token struct {
	Type TreasureType
}

// Name returns the display name of the token
func (t Token) Name() string {
	return string(t.Type)
}
