package dungeon

// Rank is the lifecycle stage of a hero card
type Rank string

// Hero ranks
const (
	RankNovice Rank = "Novice"
	RankExpert Rank = "Expert"
)

// Specialty is the passive rule fragment a hero contributes to combat and loot
type Specialty struct {
	// Substitutes maps a face to the faces it may also be used as
	Substitutes map[PartyFace][]PartyFace
	// ChampionBonus is the number of extra monsters a Champion defeats from
	// another group in the same activation
	ChampionBonus int
	// ChestsBecomePotions converts every chest to a potion when loot begins
	ChestsBecomePotions bool
}

// Interpretations returns the faces a companion may be used as, base face first
func (s Specialty) Interpretations(face PartyFace) []PartyFace {
	faces := []PartyFace{face}
	for _, alt := range s.Substitutes[face] {
		if alt != face {
			faces = append(faces, alt)
		}
	}
	return faces
}

// Origin says where a companion comes from
type Origin string

// Companion origins
const (
	OriginParty    Origin = "party"
	OriginTreasure Origin = "treasure"
)

// Companion is any resource that can defeat monsters or open loot. Slot is the
// index in the active party or the treasure inventory at the moment the
// companion list was built.
type Companion struct {
	Face   PartyFace
	Origin Origin
	Slot   int
	Label  string
}

// Outcome is how a delve ended
type Outcome string

// Delve outcomes
const (
	OutcomeFailure   Outcome = "Failure"
	OutcomeRetired   Outcome = "Retired"
	OutcomeLegendary Outcome = "Legendary"
)

// Phase is a state of the delve state machine
type Phase string

// Delve phases
const (
	PhaseSetup   Phase = "Setup"
	PhaseMonster Phase = "Monster"
	PhaseLoot    Phase = "Loot"
	PhaseDragon  Phase = "Dragon"
	PhaseRegroup Phase = "Regroup"
	PhaseEnded   Phase = "Ended"
)
