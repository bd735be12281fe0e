// Package main is the entry point for the dice delve game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "delve",
	Short: "Dice Delve dungeon crawl",
	Long:  `Dice Delve is a solitaire dungeon crawl played with party dice, dungeon dice and treasure tokens.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(heroesCmd)
}
