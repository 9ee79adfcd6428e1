package grid

import "github.com/mattn/go-runewidth"

const (
	borderWidth = 2

	listIndent    = 4
	checkboxWidth = 4
)

// ColumnWidths holds one display width per column.
type ColumnWidths []int

// SelectionOffset is the number of leading cells reserved for the list's
// cursor indent and, when selection is enabled, its checkbox glyph.
func SelectionOffset(selection bool) int {
	if selection {
		return listIndent + checkboxWidth
	}
	return listIndent
}

// UsableWidth is the room left for row content on a terminal of the given
// width after borders, one separator per column and the selection offset.
func UsableWidth(terminalWidth, columnCount int, selection bool) int {
	return terminalWidth - borderWidth - columnCount - SelectionOffset(selection)
}

// DisplayWidth measures s in terminal cells.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ComputeWidths derives column widths from the headers and the first
// sampleLimit columns of every row, then narrows the widest column one cell
// at a time until the total is below usableWidth. Ties go to the lowest
// column index. Widths stop shrinking at zero.
func ComputeWidths(headers []string, rows []Row, sampleLimit, usableWidth int) ColumnWidths {
	widths := make(ColumnWidths, len(headers))
	for i, header := range headers {
		widths[i] = DisplayWidth(header)
	}

	sampled := sampleLimit
	if sampled > len(widths) {
		sampled = len(widths)
	}
	for _, row := range rows {
		for i := 0; i < sampled && i < len(row); i++ {
			if w := DisplayWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	sum := widths.Sum()
	for sum >= usableWidth {
		widest := widths.widest()
		if widest < 0 || widths[widest] == 0 {
			break
		}
		widths[widest]--
		sum--
	}
	return widths
}

// Sum returns the total of all widths.
func (w ColumnWidths) Sum() int {
	total := 0
	for _, width := range w {
		total += width
	}
	return total
}

// Degenerate reports whether the layout could not honour the usable width:
// the budget is no larger than the column count, or a column was squeezed
// to nothing.
func (w ColumnWidths) Degenerate(usableWidth int) bool {
	if usableWidth <= len(w) || w.Sum() >= usableWidth {
		return true
	}
	for _, width := range w {
		if width == 0 {
			return true
		}
	}
	return false
}

func (w ColumnWidths) widest() int {
	idx := -1
	for i, width := range w {
		if idx < 0 || width > w[idx] {
			idx = i
		}
	}
	return idx
}
