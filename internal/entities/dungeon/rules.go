package dungeon

// Rules are the tunable table limits of a game
type Rules struct {
	PartyDice        int `yaml:"party_dice" env:"PARTY_DICE"`
	DungeonDice      int `yaml:"dungeon_dice" env:"DUNGEON_DICE"`
	MaxLevel         int `yaml:"max_level" env:"MAX_LEVEL"`
	Delves           int `yaml:"delves" env:"DELVES"`
	DragonThreshold  int `yaml:"dragon_threshold" env:"DRAGON_THRESHOLD"`
	LegendaryBonusXP int `yaml:"legendary_bonus_xp" env:"LEGENDARY_BONUS_XP"`
}

// DefaultRules returns the standard table: seven dice a side, ten levels,
// three delves.
func DefaultRules() Rules {
	return Rules{
		PartyDice:        PartyDice,
		DungeonDice:      DungeonDice,
		MaxLevel:         MaxLevel,
		Delves:           MaxDelves,
		DragonThreshold:  DragonThreshold,
		LegendaryBonusXP: LegendaryBonusXP,
	}
}
