package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
)

// maxLineBytes bounds a single JSON Lines record.
const maxLineBytes = 4 << 20

// FromDocument reads a JSON or YAML sequence of mappings. Columns follow the
// order in which keys are first seen; records lacking a key get an empty
// cell. Nested values are rendered back to flow-style YAML. Input holding
// more than one document is rejected rather than read in part.
func FromDocument(r io.Reader) (*grid.Dataset, error) {
	dec := yaml.NewDecoder(r)
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrMultipleDocuments
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var records []*yaml.Node
	switch root.Kind {
	case yaml.SequenceNode:
		records = root.Content
	case yaml.MappingNode:
		records = []*yaml.Node{root}
	default:
		return nil, fmt.Errorf("decode document: expected a list of records, got %s", kindName(root.Kind))
	}

	return fromRecords(records)
}

// FromJSONLines reads one JSON object per line. Blank lines are skipped.
func FromJSONLines(r io.Reader) (*grid.Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var records []*yaml.Node
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(doc.Content) == 0 {
			continue
		}
		rec := doc.Content[0]
		if rec.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: expected an object, got %s", line, kindName(rec.Kind))
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return fromRecords(records)
}

func fromRecords(records []*yaml.Node) (*grid.Dataset, error) {
	var labels []string
	index := map[string]int{}
	values := make([]map[int]string, 0, len(records))
	for n, rec := range records {
		if rec.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("record %d: expected a mapping, got %s", n, kindName(rec.Kind))
		}
		cells := map[int]string{}
		for i := 0; i+1 < len(rec.Content); i += 2 {
			key := rec.Content[i].Value
			col, ok := index[key]
			if !ok {
				col = len(labels)
				index[key] = col
				labels = append(labels, key)
			}
			cells[col] = scalarText(rec.Content[i+1])
		}
		values = append(values, cells)
	}
	if len(labels) == 0 {
		return nil, ErrEmpty
	}

	rows := make([]grid.Row, len(values))
	for i, cells := range values {
		row := make(grid.Row, len(labels))
		for col, v := range cells {
			row[col] = v
		}
		rows[i] = row
	}
	return grid.NewDataset(labels, rows)
}

func scalarText(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return ""
		}
		return n.Value
	case yaml.AliasNode:
		if n.Alias != nil {
			return scalarText(n.Alias)
		}
		return ""
	}
	flow := *n
	flow.Style = yaml.FlowStyle
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
