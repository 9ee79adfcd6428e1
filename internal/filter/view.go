package filter

import (
	"strings"

	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
)

// View is the currently displayed projection of a registry. It is either
// unfiltered or filtered by the last text that applied cleanly; a rejected
// filter leaves it where it was.
type View struct {
	source  []*grid.GridRow
	columns []string
	eval    Evaluator

	rows []*grid.GridRow
	text string
	err  error
}

// NewView starts unfiltered over source.
func NewView(source []*grid.GridRow, columns []string, eval Evaluator) *View {
	return &View{
		source:  source,
		columns: columns,
		eval:    eval,
		rows:    source,
	}
}

// Set attempts to move the view to text. On error the previous rows and
// text are kept and Err reports the failure until the next successful Set.
func (v *View) Set(text string) error {
	rows, err := Apply(v.source, text, v.columns, v.eval)
	if err != nil {
		v.err = err
		return err
	}
	v.rows = rows
	v.text = strings.TrimSpace(text)
	v.err = nil
	return nil
}

// Reset returns to the unfiltered state.
func (v *View) Reset() {
	v.rows = v.source
	v.text = ""
	v.err = nil
}

// Rows returns the rows currently in view.
func (v *View) Rows() []*grid.GridRow { return v.rows }

// Text is the filter text the view currently reflects; empty when unfiltered.
func (v *View) Text() string { return v.text }

// Filtered reports whether a non-empty filter is applied.
func (v *View) Filtered() bool { return v.text != "" }

// Err is the error from the most recent rejected Set, if any.
func (v *View) Err() error { return v.err }
