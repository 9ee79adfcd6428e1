package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Pad renders values as one line: offset leading spaces, then each value
// left-justified to its column width, separated by a single space. Values
// wider than their column are left intact, so such a line will not align.
func Pad(values []string, offset int, widths ColumnWidths) string {
	var b strings.Builder
	if offset > 0 {
		b.WriteString(strings.Repeat(" ", offset))
	}
	for i, value := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		width := 0
		if i < len(widths) {
			width = widths[i]
		}
		b.WriteString(runewidth.FillRight(value, width))
	}
	return b.String()
}

// Underline returns a line of the same display width as line with every
// non-space character replaced by dashes.
func Underline(line string) string {
	var b strings.Builder
	for _, r := range line {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		b.WriteString(strings.Repeat("-", runewidth.RuneWidth(r)))
	}
	return b.String()
}
