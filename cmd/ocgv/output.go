package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
)

// writeSelected writes the header and the rows at the given original
// indices as CSV.
func writeSelected(w io.Writer, ds *grid.Dataset, indices []int) error {
	out := csv.NewWriter(w)
	if err := out.Write(ds.Labels()); err != nil {
		return err
	}
	for _, idx := range indices {
		if idx < 0 || idx >= ds.Len() {
			return fmt.Errorf("selected row %d out of range", idx)
		}
		if err := out.Write(ds.Rows[idx]); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

func printTable(w io.Writer, ds *grid.Dataset) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader(ds.Labels())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, row := range ds.Rows {
		table.Append(row)
	}
	table.Render()
	return nil
}
