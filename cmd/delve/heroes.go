package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/hero"
)

var heroesCmd = &cobra.Command{
	Use:   "heroes",
	Short: "List the heroes you can play",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, key := range hero.Keys() {
			h, err := hero.New(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s (--hero %s)\n", h.Name(), key)
			fmt.Fprintf(out, "  Specialty: %s\n", h.SpecialtyText())
			fmt.Fprintf(out, "  Ultimate:  %s. %s\n", h.UltimateName(), h.UltimateText())
			fmt.Fprintf(out, "  Promotes at %d experience\n\n", dungeon.PromotionXP)
		}
		return nil
	},
}
