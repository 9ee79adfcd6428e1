// Package grid lays out a tabular dataset as fixed-width display lines and
// tracks which rows the user has marked.
package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedRow is returned when a row does not carry one cell per column.
var ErrMalformedRow = errors.New("malformed row")

// Column describes one column of a dataset. Columns are identified by
// position; labels may repeat.
type Column struct {
	Label string
}

// Row holds the display values of one record, in column order.
type Row []string

// Dataset is the immutable table handed to a session.
type Dataset struct {
	Columns []Column
	Rows    []Row
}

// NewDataset builds a dataset from header labels and rows, failing fast when
// a row is missing (or has extra) cells.
func NewDataset(labels []string, rows []Row) (*Dataset, error) {
	columns := make([]Column, len(labels))
	for i, label := range labels {
		columns[i] = Column{Label: label}
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), len(columns), ErrMalformedRow)
		}
	}
	return &Dataset{Columns: columns, Rows: rows}, nil
}

// Labels returns the column labels in declared order.
func (d *Dataset) Labels() []string {
	if d == nil {
		return nil
	}
	labels := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		labels[i] = col.Label
	}
	return labels
}

// Value returns the display value of the given cell.
func (d *Dataset) Value(row, col int) string {
	return d.Rows[row][col]
}

// Len reports the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}
