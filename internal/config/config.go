// Package config loads game settings: defaults, then an optional YAML file,
// then DELVE_* environment variables. Command line flags are applied last by
// the CLI.
package config

import (
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/hero"
	"github.com/KirkDiggler/dice-delve/internal/logger"
)

// EnvPrefix prefixes every environment variable the game reads
const EnvPrefix = "DELVE_"

// Config is the full game configuration
type Config struct {
	Game    GameConfig    `yaml:"game" envPrefix:"GAME_"`
	Rules   dungeon.Rules `yaml:"rules" envPrefix:"RULES_"`
	Logging logger.Config `yaml:"logging" envPrefix:"LOG_"`
}

// GameConfig holds the player's table choices
type GameConfig struct {
	// Hero is a hero key, see hero.Keys
	Hero string `yaml:"hero" env:"HERO"`
	// Seed makes every roll reproducible. Zero means a random game.
	Seed uint64 `yaml:"seed" env:"SEED"`
	// Color turns terminal colours on
	Color bool `yaml:"color" env:"COLOR"`
}

// DefaultConfig returns the standard game
func DefaultConfig() *Config {
	return &Config{
		Game: GameConfig{
			Hero:  hero.KeyKnight,
			Color: true,
		},
		Rules:   dungeon.DefaultRules(),
		Logging: logger.DefaultConfig(),
	}
}

// Load builds the configuration from path and the process environment. An
// empty path or a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	return load(path, env.Options{Prefix: EnvPrefix})
}

func load(path string, opts env.Options) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file").
				WithMeta("path", path)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file").
					WithMeta("path", path)
			}
		}
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if !slices.Contains(hero.Keys(), c.Game.Hero) {
		vb.Fieldf("Game.Hero", "unknown hero %q", c.Game.Hero)
	}

	errors.ValidatePositive("Rules.PartyDice", c.Rules.PartyDice, vb)
	errors.ValidatePositive("Rules.DungeonDice", c.Rules.DungeonDice, vb)
	errors.ValidatePositive("Rules.MaxLevel", c.Rules.MaxLevel, vb)
	errors.ValidatePositive("Rules.Delves", c.Rules.Delves, vb)
	errors.ValidateRange("Rules.DragonThreshold", c.Rules.DragonThreshold, 1, c.Rules.DungeonDice, vb)
	if c.Rules.LegendaryBonusXP < 0 {
		vb.InvalidField("Rules.LegendaryBonusXP", "must not be negative")
	}

	if err := vb.Build(); err != nil {
		return err
	}

	return c.Logging.Validate()
}
