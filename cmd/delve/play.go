package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dice-delve/internal/config"
	"github.com/KirkDiggler/dice-delve/internal/dice"
	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/hero"
	"github.com/KirkDiggler/dice-delve/internal/logger"
	"github.com/KirkDiggler/dice-delve/internal/orchestrators/delve"
	"github.com/KirkDiggler/dice-delve/internal/orchestrators/game"
	"github.com/KirkDiggler/dice-delve/internal/pkg/clock"
	"github.com/KirkDiggler/dice-delve/internal/pkg/idgen"
	"github.com/KirkDiggler/dice-delve/internal/state"
	"github.com/KirkDiggler/dice-delve/internal/terminal"
	"github.com/KirkDiggler/dice-delve/internal/treasure"
)

var (
	configPath string
	heroKey    string
	seed       uint64
	noColor    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of three delves",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	playCmd.Flags().StringVar(&heroKey, "hero", "", "Hero to play (see `delve heroes`)")
	playCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible game")
	playCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colours")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("hero") {
		cfg.Game.Hero = heroKey
	}
	if cmd.Flags().Changed("seed") {
		cfg.Game.Seed = seed
	}
	if noColor {
		cfg.Game.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	closer, err := logger.Initialize(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term, err := terminal.New(&terminal.Config{
		In:    cmd.InOrStdin(),
		Out:   cmd.OutOrStdout(),
		Color: cfg.Game.Color,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create terminal")
	}

	st, games, err := build(cfg, term)
	if err != nil {
		return err
	}

	out, err := games.PlayGame(ctx, &game.PlayGameInput{State: st})
	if errors.IsCanceled(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "\nThe party goes home.")
		return nil
	}
	if err != nil {
		return err
	}

	term.Summary(out.Summary)

	return nil
}

// build wires the game for cfg
func build(cfg *config.Config, term *terminal.Terminal) (*state.State, game.Service, error) {
	var roller toolkitdice.Roller = toolkitdice.DefaultRoller
	var ids idgen.Generator = idgen.NewUUID("game")
	if cfg.Game.Seed != 0 {
		roller = dice.NewSeededRoller(cfg.Game.Seed)
		ids = idgen.NewSequential("game")
	}

	randomizer, err := dice.NewRandomizer(&dice.Config{Roller: roller})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create randomizer")
	}

	hoard, err := treasure.NewHoard(&treasure.Config{Picker: randomizer})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create treasure hoard")
	}

	h, err := hero.New(cfg.Game.Hero)
	if err != nil {
		return nil, nil, err
	}

	st, err := state.New(&state.Config{
		Hero:     h,
		Treasure: hoard,
		Dice:     randomizer,
		Rules:    cfg.Rules,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create game state")
	}

	bus := events.NewBus()
	bus.SubscribeFunc(game.EventHeroPromoted, 0, func(ctx context.Context, e events.Event) error {
		if h, ok := e.Source().(state.Hero); ok {
			term.Render(ctx, st.Snapshot(dungeon.PhaseEnded, fmt.Sprintf("Your hero is now the %s!", h.Name())))
		}
		return nil
	})
	bus.SubscribeFunc(delve.EventDelveEnded, 0, func(_ context.Context, e events.Event) error {
		if record, ok := e.Source().(*delve.Record); ok {
			slog.Debug("Delve record", "delve_id", record.ID, "outcome", record.Outcome, "level", record.Level)
		}
		return nil
	})

	delves, err := delve.NewOrchestrator(&delve.Config{
		Choices:  term,
		Display:  term,
		EventBus: bus,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create delve orchestrator")
	}

	games, err := game.NewOrchestrator(&game.Config{
		Delves:      delves,
		EventBus:    bus,
		IDGenerator: ids,
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create game orchestrator")
	}

	return st, games, nil
}
