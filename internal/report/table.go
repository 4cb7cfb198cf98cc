// Package report renders harness results and listings as terminal tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// Cell is one table cell. Style is applied after padding so escape codes
// never count towards column width.
type Cell struct {
	Text  string
	Style color.Style
}

// Plain returns an unstyled cell.
func Plain(text string) Cell {
	return Cell{Text: text}
}

// Plainf returns an unstyled cell with formatted text.
func Plainf(format string, args ...any) Cell {
	return Cell{Text: fmt.Sprintf(format, args...)}
}

// Styled returns a cell rendered with style when color is enabled.
func Styled(style color.Style, text string) Cell {
	return Cell{Text: text, Style: style}
}

// Table is a simple left-aligned text table.
type Table struct {
	headers []string
	rows    [][]Cell
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Missing cells render empty; extra cells are dropped.
func (t *Table) AddRow(cells ...Cell) {
	row := make([]Cell, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, c := range row {
			if w := runewidth.StringWidth(c.Text); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render writes the table to w. useColor controls cell styling.
func (t *Table) Render(w io.Writer, useColor bool) {
	widths := t.widths()

	header := make([]string, len(t.headers))
	rule := make([]string, len(t.headers))
	for i, h := range t.headers {
		header[i] = runewidth.FillRight(h, widths[i])
		rule[i] = strings.Repeat("-", widths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(header, "  "), " "))
	fmt.Fprintln(w, strings.Join(rule, "  "))

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, c := range row {
			text := c.Text
			if i < len(row)-1 {
				text = runewidth.FillRight(text, widths[i])
			}
			if useColor && len(c.Style) > 0 {
				text = c.Style.Sprint(text)
			}
			cells[i] = text
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}
}
