package grid

// GridRow is a formatted dataset row. The registry hands out pointers and
// never replaces them, so a mark set through any filtered view is visible
// through every other view.
type GridRow struct {
	OriginalIndex int
	Display       string
	Cells         []string

	marked bool
}

// Marked reports whether the row is currently selected.
func (r *GridRow) Marked() bool {
	return r != nil && r.marked
}

// Registry is the unfiltered, ordered source of truth for rows and marks.
type Registry struct {
	rows       []*GridRow
	selectable bool
	marked     int
}

// NewRegistry formats every dataset row with the computed widths. Rows are
// padded with the selection offset so the list can draw its cursor and
// checkbox over the leading cells.
func NewRegistry(ds *Dataset, widths ColumnWidths, selectable bool) *Registry {
	offset := SelectionOffset(selectable)
	reg := &Registry{
		rows:       make([]*GridRow, ds.Len()),
		selectable: selectable,
	}
	for i := 0; i < ds.Len(); i++ {
		cells := make([]string, len(ds.Columns))
		for col := range ds.Columns {
			cells[col] = ds.Value(i, col)
		}
		reg.rows[i] = &GridRow{
			OriginalIndex: i,
			Display:       Pad(cells, offset, widths),
			Cells:         cells,
		}
	}
	return reg
}

// Rows returns every row in dataset order. The slice is fresh; the rows are not.
func (r *Registry) Rows() []*GridRow {
	return append([]*GridRow(nil), r.rows...)
}

func (r *Registry) Len() int {
	return len(r.rows)
}

// Row returns the row with the given original index, or nil.
func (r *Registry) Row(originalIndex int) *GridRow {
	if originalIndex < 0 || originalIndex >= len(r.rows) {
		return nil
	}
	return r.rows[originalIndex]
}

// Selectable reports whether rows may be marked.
func (r *Registry) Selectable() bool {
	return r.selectable
}

// ToggleMark flips the mark on row and returns its new state. It does
// nothing when selection is disabled or the row belongs elsewhere.
func (r *Registry) ToggleMark(row *GridRow) bool {
	if !r.owns(row) {
		return row.Marked()
	}
	r.set(row, !row.marked)
	return row.marked
}

// SetMarked sets the mark on row.
func (r *Registry) SetMarked(row *GridRow, marked bool) {
	if r.owns(row) {
		r.set(row, marked)
	}
}

// MarkAll marks each of rows; typically the current filtered view.
func (r *Registry) MarkAll(rows []*GridRow) {
	for _, row := range rows {
		r.SetMarked(row, true)
	}
}

// UnmarkAll clears every mark, including rows hidden by a filter.
func (r *Registry) UnmarkAll() {
	for _, row := range r.rows {
		r.set(row, false)
	}
}

// MarkedCount reports how many rows are marked.
func (r *Registry) MarkedCount() int {
	return r.marked
}

// MarkedOriginalIndices returns the original indices of all marked rows in
// ascending order, whatever view is currently displayed.
func (r *Registry) MarkedOriginalIndices() []int {
	indices := make([]int, 0, r.marked)
	for _, row := range r.rows {
		if row.marked {
			indices = append(indices, row.OriginalIndex)
		}
	}
	return indices
}

func (r *Registry) owns(row *GridRow) bool {
	if !r.selectable || row == nil {
		return false
	}
	return r.Row(row.OriginalIndex) == row
}

func (r *Registry) set(row *GridRow, marked bool) {
	if row.marked == marked {
		return
	}
	row.marked = marked
	if marked {
		r.marked++
	} else {
		r.marked--
	}
}
