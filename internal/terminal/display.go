package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/KirkDiggler/dice-delve/internal/entities/dungeon"
	"github.com/KirkDiggler/dice-delve/internal/orchestrators/game"
	"github.com/KirkDiggler/dice-delve/internal/state"
)

type palette struct {
	title   *color.Color
	key     *color.Color
	warn    *color.Color
	party   *color.Color
	dead    *color.Color
	monster *color.Color
	loot    *color.Color
	dragon  *color.Color
	gold    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title:   color.New(color.FgCyan, color.Bold),
		key:     color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		party:   color.New(color.FgGreen),
		dead:    color.New(color.FgHiBlack),
		monster: color.New(color.FgRed),
		loot:    color.New(color.FgYellow),
		dragon:  color.New(color.FgMagenta, color.Bold),
		gold:    color.New(color.FgHiYellow),
	}
	for _, c := range []*color.Color{p.title, p.key, p.warn, p.party, p.dead, p.monster, p.loot, p.dragon, p.gold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Render prints the message, if any, followed by the table
func (t *Terminal) Render(_ context.Context, snap *state.Snapshot) {
	fmt.Fprintln(t.out)
	if snap.Message != "" {
		for _, line := range strings.Split(snap.Message, "\n") {
			t.palette.warn.Fprintf(t.out, "* %s\n", line)
		}
	}

	t.palette.title.Fprintf(t.out, "== Delve %d/%d | Level %d/%d | %s ==\n",
		snap.Delve, snap.Delves, snap.Level, snap.MaxLevel, snap.Phase)

	status := "ready"
	if snap.Hero.Exhausted {
		status = "exhausted"
	}
	fmt.Fprintf(t.out, "Hero:       %s (%s), %s is %s\n", snap.Hero.Name, snap.Hero.Rank, snap.Hero.UltimateName, status)
	fmt.Fprintf(t.out, "Party:      %s\n", t.party(snap.Party, t.palette.party))
	fmt.Fprintf(t.out, "Graveyard:  %s\n", t.party(snap.Graveyard, t.palette.dead))
	fmt.Fprintf(t.out, "Dungeon:    %s\n", t.dungeon(snap.Dungeon))
	fmt.Fprintf(t.out, "Lair:       %s\n", t.dungeon(snap.Lair))

	names := make([]string, 0, len(snap.Inventory))
	for _, token := range snap.Inventory {
		names = append(names, t.palette.gold.Sprint(token.Name()))
	}
	fmt.Fprintf(t.out, "Treasure:   %s (supply %d)\n", list(names), snap.SupplySize)
	fmt.Fprintf(t.out, "Experience: %d   Dragons slain: %d\n", snap.Experience, snap.DragonsSlain)
}

func (t *Terminal) party(faces []dungeon.PartyFace, c *color.Color) string {
	names := make([]string, 0, len(faces))
	for _, f := range faces {
		names = append(names, c.Sprint(f.String()))
	}
	return list(names)
}

func (t *Terminal) dungeon(faces []dungeon.DungeonFace) string {
	names := make([]string, 0, len(faces))
	for _, f := range faces {
		c := t.palette.loot
		switch {
		case f.IsMonster():
			c = t.palette.monster
		case f == dungeon.Dragon:
			c = t.palette.dragon
		}
		names = append(names, c.Sprint(f.String()))
	}
	return list(names)
}

func list(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// Summary prints the final score of a game
func (t *Terminal) Summary(summary *game.Summary) {
	fmt.Fprintln(t.out)
	t.palette.title.Fprintf(t.out, "== %s the %s ==\n", summary.Hero, summary.Rank)
	for i, r := range summary.Delves {
		fmt.Fprintf(t.out, "Delve %d: %-9s level %2d  +%d experience\n", i+1, r.Outcome, r.Level, r.ExperienceGained)
	}
	fmt.Fprintf(t.out, "Experience:    %d\n", summary.Score.Experience)
	fmt.Fprintf(t.out, "Treasure:      %d\n", summary.Score.Treasure)
	fmt.Fprintf(t.out, "Hero bonus:    %d\n", summary.Score.HeroBonus)
	fmt.Fprintf(t.out, "Dragons slain: %d\n", summary.DragonsSlain)
	t.palette.gold.Fprintf(t.out, "Final score:   %d\n", summary.Score.Total)
}
