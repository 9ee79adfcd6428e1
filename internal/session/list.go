package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
)

type rowItem struct {
	row *grid.GridRow
}

func (i rowItem) FilterValue() string { return i.row.Display }

func rowItems(rows []*grid.GridRow) []list.Item {
	items := make([]list.Item, len(rows))
	for i, row := range rows {
		items[i] = rowItem{row: row}
	}
	return items
}

// rowDelegate draws a pre-rendered grid line, overwriting its reserved
// leading cells with the cursor and, when marking is enabled, a checkbox.
type rowDelegate struct {
	styles     styles
	selectable bool
	offset     int
}

func (d rowDelegate) Height() int { return 1 }

func (d rowDelegate) Spacing() int { return 0 }

func (d rowDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(rowItem)
	if !ok {
		return
	}
	selected := index == m.Index()
	line := d.affordance(ri.row, selected) + trimOffset(ri.row.Display, d.offset)
	if width := m.Width(); width > 0 {
		line = runewidth.Truncate(line, width, "")
	}

	style := d.styles.row
	switch {
	case selected:
		style = d.styles.rowSel
	case ri.row.Marked():
		style = d.styles.rowMark
	}
	fmt.Fprint(w, style.Render(line))
}

func (d rowDelegate) affordance(row *grid.GridRow, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	prefix := "  " + cursor
	if d.selectable {
		if row.Marked() {
			prefix += "[x] "
		} else {
			prefix += "[ ] "
		}
	}
	return runewidth.FillRight(prefix, d.offset)
}

func trimOffset(display string, offset int) string {
	if offset > len(display) {
		return ""
	}
	return display[offset:]
}

func newRowList(s styles, selectable bool, width, height int) list.Model {
	delegate := rowDelegate{
		styles:     s,
		selectable: selectable,
		offset:     grid.SelectionOffset(selectable),
	}
	m := list.New(nil, delegate, width, height)
	m.SetShowTitle(false)
	m.SetShowStatusBar(false)
	m.SetFilteringEnabled(false)
	m.SetShowFilter(false)
	m.SetShowHelp(false)
	m.SetShowPagination(false)
	m.DisableQuitKeybindings()
	m.KeyMap.ShowFullHelp.SetEnabled(false)
	m.KeyMap.CloseFullHelp.SetEnabled(false)
	return m
}
