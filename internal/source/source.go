// Package source builds grid datasets from files, pipes and SQLite queries.
package source

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
)

// ErrEmpty is returned when the input carries no header.
var ErrEmpty = errors.New("no columns in input")

// ErrMultipleDocuments is returned when a JSON or YAML input holds more than
// one top-level value. One object per line is the jsonl format.
var ErrMultipleDocuments = errors.New("input holds more than one document (use the jsonl format for one record per line)")

type Format string

const (
	FormatCSV   Format = "csv"
	FormatTSV   Format = "tsv"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// ParseFormat resolves an explicit format name, falling back to the file
// extension of path and finally to CSV.
func ParseFormat(name, path string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".tsv", ".tab":
			return FormatTSV, nil
		case ".json":
			return FormatJSON, nil
		case ".jsonl", ".ndjson":
			return FormatJSONL, nil
		case ".yaml", ".yml":
			return FormatYAML, nil
		default:
			return FormatCSV, nil
		}
	}
	switch Format(name) {
	case FormatCSV, FormatTSV, FormatJSON, FormatJSONL, FormatYAML:
		return Format(name), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q", name)
}

// Read decodes r in the given format.
func Read(r io.Reader, format Format) (*grid.Dataset, error) {
	switch format {
	case FormatTSV:
		return FromDelimited(r, '\t')
	case FormatJSON, FormatYAML:
		return FromDocument(r)
	case FormatJSONL:
		return FromJSONLines(r)
	default:
		return FromDelimited(r, ',')
	}
}
