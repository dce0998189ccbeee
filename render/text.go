// Package render draws the board as plain text.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"clisk/game"
)

const reset = "\x1b[0m"

var palette = []string{"\x1b[31m", "\x1b[34m", "\x1b[32m", "\x1b[33m", "\x1b[35m", "\x1b[36m"}

// Text writes a territory table and per-player tallies. Owners are colored
// when Color is set.
type Text struct {
	out    io.Writer
	Color  bool
	colors map[string]string
}

var _ game.Drawer = (*Text)(nil)

func NewText(out io.Writer, color bool) *Text {
	return &Text{out: out, Color: color, colors: make(map[string]string)}
}

func (t *Text) Draw(s game.Snapshot) {
	fmt.Fprintf(t.out, "--- %s\n", s.Board)

	tw := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TERRITORY\tOWNER\tTROOPS")
	for _, ts := range s.Territories {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", ts.Name, t.paint(ts.Owner), ts.Troops)
	}
	tw.Flush()

	for _, p := range s.Players {
		fmt.Fprintf(t.out, "Player %s: territories: %d, troops: %d, regions: %d (+%d), largest group: %d\n",
			t.paint(p.Player), p.Territories, p.Troops, p.Regions, p.RegionBonus, p.LargestGroup)
	}
	fmt.Fprintln(t.out, "---")
}

func (t *Text) paint(owner string) string {
	if !t.Color || owner == "" {
		return owner
	}
	c, ok := t.colors[owner]
	if !ok {
		c = palette[len(t.colors)%len(palette)]
		t.colors[owner] = c
	}
	return c + owner + reset
}
