package source

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
)

// FromDelimited reads a header line followed by records. Short records are
// padded with empty cells and long ones are rejected.
func FromDelimited(r io.Reader, comma rune) (*grid.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows []grid.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", len(rows)+1, err)
		}
		if len(record) < len(header) {
			record = append(record, make([]string, len(header)-len(record))...)
		}
		rows = append(rows, grid.Row(record))
	}
	return grid.NewDataset(header, rows)
}
