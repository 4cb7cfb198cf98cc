// Package diagram draws a chain topology as a vertical text diagram, with
// the link from the last node back into the loop drawn as a bracket on the
// right.
package diagram

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/goloop/internal/chain"
)

// Config controls diagram rendering.
type Config struct {
	UseAscii bool
}

// DefaultConfig returns a config that draws with Unicode box characters.
func DefaultConfig() *Config {
	return &Config{}
}

type glyphs struct {
	link, arrow string // connector between consecutive nodes
	entry, exit string // loop bracket ends
	bar         string // loop bracket side
	selfL       string // self loop corners and rule
	selfH       string
	selfR       string
	none        string
}

var (
	unicodeGlyphs = glyphs{
		link:  "│",
		arrow: "▼",
		entry: "◄─┐",
		exit:  "──┘",
		bar:   "│",
		selfL: "└",
		selfH: "─",
		selfR: "┘",
		none:  "none",
	}
	asciiGlyphs = glyphs{
		link:  "|",
		arrow: "v",
		entry: "<-+",
		exit:  "--+",
		bar:   "|",
		selfL: "+",
		selfH: "-",
		selfR: "+",
		none:  "none",
	}
)

// Render draws topo one node per line. label formats node values; nil uses
// fmt.Sprint. If cfg is nil, DefaultConfig is used.
func Render(topo *chain.Topology, label func(any) string, cfg *Config) (string, error) {
	if topo == nil || topo.Len() == 0 {
		return "", errors.New("nothing to draw: empty topology")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if label == nil {
		label = func(v any) string { return fmt.Sprint(v) }
	}
	g := unicodeGlyphs
	if cfg.UseAscii {
		g = asciiGlyphs
	}

	labels := make([]string, len(topo.Nodes))
	width := runewidth.StringWidth(g.link)
	for i, n := range topo.Nodes {
		labels[i] = label(n.Value)
		if w := runewidth.StringWidth(labels[i]); w > width {
			width = w
		}
	}

	last := len(topo.Nodes) - 1
	entry := -1
	if topo.Cyclic() {
		entry = topo.TailLen
	}
	inLoop := func(i int) bool { return entry >= 0 && i >= entry && i < last }

	var lines []string
	row := func(left, right string) {
		if right == "" {
			lines = append(lines, strings.TrimRight(left, " "))
			return
		}
		lines = append(lines, runewidth.FillRight(left, width)+" "+right)
	}

	for i, name := range labels {
		switch {
		case i == entry && i == last:
			row(name, g.entry)
			row(g.selfL+strings.Repeat(g.selfH, width+2)+g.selfR, "")
		case i == entry:
			row(name, g.entry)
		case i == last && entry >= 0:
			row(name, g.exit)
		case entry >= 0 && i > entry:
			row(name, "  "+g.bar)
		default:
			row(name, "")
		}

		if i == last {
			break
		}
		bar := ""
		if inLoop(i) {
			bar = "  " + g.bar
		}
		row(g.link, bar)
		row(g.arrow, bar)
	}

	if entry < 0 {
		row(g.link, "")
		row(g.arrow, "")
		row(g.none, "")
	}

	return strings.Join(lines, "\n") + "\n", nil
}
