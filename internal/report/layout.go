package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Header prints a title framed by rules.
func Header(w io.Writer, format string, args ...interface{}) {
	title := fmt.Sprintf(format, args...)
	width := runewidth.StringWidth(title) + 4
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// Section prints a section title with an underline.
func Section(w io.Writer, title string) {
	fmt.Fprintf(w, "[%s]\n", title)
	fmt.Fprintln(w, strings.Repeat("-", runewidth.StringWidth(title)+2))
}

// SideBySide prints two blocks of text next to each other with at least
// padding spaces between them. Widths are measured in terminal cells so
// box drawing and CJK text line up.
func SideBySide(w io.Writer, leftContent string, rightLines []string, padding int) {
	leftLines := strings.Split(strings.TrimRight(leftContent, "\n"), "\n")

	leftWidth := 0
	for _, line := range leftLines {
		if lw := runewidth.StringWidth(line); lw > leftWidth {
			leftWidth = lw
		}
	}

	rows := len(leftLines)
	if len(rightLines) > rows {
		rows = len(rightLines)
	}

	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(leftLines) {
			left = leftLines[i]
		}
		if i < len(rightLines) {
			right = rightLines[i]
		}
		if right == "" {
			fmt.Fprintln(w, strings.TrimRight(left, " "))
			continue
		}
		fmt.Fprintf(w, "%s%s%s\n", runewidth.FillRight(left, leftWidth), strings.Repeat(" ", padding), right)
	}
}
