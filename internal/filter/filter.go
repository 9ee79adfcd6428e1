// Package filter narrows a set of grid rows with a user-supplied predicate
// while keeping row identity intact.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
)

// ErrSyntax matches every *SyntaxError via errors.Is.
var ErrSyntax = errors.New("filter syntax error")

// SyntaxError reports filter text that the evaluator could not parse or
// evaluate.
type SyntaxError struct {
	Text string
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("invalid filter %q", e.Text)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// Predicate reports whether a row's cells satisfy a compiled filter.
type Predicate func(cells []string) (bool, error)

// Evaluator compiles filter text for a dataset with the given column labels.
type Evaluator interface {
	Compile(text string, columns []string) (Predicate, error)
}

// Apply returns the rows, in order and by identity, that satisfy text. Empty
// text matches everything. Compile and evaluation failures come back as a
// *SyntaxError; a filter that matches nothing is not an error. A nil
// evaluator means ExprEvaluator.
func Apply(rows []*grid.GridRow, text string, columns []string, ev Evaluator) ([]*grid.GridRow, error) {
	if strings.TrimSpace(text) == "" {
		return rows, nil
	}
	if ev == nil {
		ev = ExprEvaluator{}
	}
	pred, err := ev.Compile(text, columns)
	if err != nil {
		return nil, asSyntaxError(text, err)
	}
	out := make([]*grid.GridRow, 0, len(rows))
	for _, row := range rows {
		ok, err := pred(row.Cells)
		if err != nil {
			return nil, asSyntaxError(text, err)
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func asSyntaxError(text string, err error) error {
	var syn *SyntaxError
	if errors.As(err, &syn) {
		return syn
	}
	return &SyntaxError{Text: text, Msg: firstLine(err.Error()), Err: err}
}

// Evaluator messages can carry a multi-line source excerpt; the status line
// only has room for the first line.
func firstLine(msg string) string {
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		return strings.TrimSpace(msg[:idx])
	}
	return msg
}
