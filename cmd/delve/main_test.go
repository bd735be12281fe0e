package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeroesListsEveryHero(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"heroes"})

	require.NoError(t, rootCmd.Execute())

	for _, name := range []string{"Minstrel", "Alchemist", "Knight"} {
		assert.Contains(t, out.String(), name)
	}
	assert.Contains(t, out.String(), "--hero knight")
}

func TestPlaySeededGameUntilInputRunsOut(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(strings.Repeat("1\n", 500)))
	rootCmd.SetArgs([]string{"play", "--seed", "42", "--hero", "minstrel", "--no-color"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "== Delve 1/3 | Level 1/10 | Setup ==")
	assert.Contains(t, out.String(), "Minstrel (Novice)")
}

func TestPlayRejectsUnknownHero(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"play", "--hero", "wizard"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown hero")
}
