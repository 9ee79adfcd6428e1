package session

import (
	"fmt"
	"strings"

	"github.com/SteveL-MSFT/GraphicalTools/internal/eventlog"
	"github.com/SteveL-MSFT/GraphicalTools/internal/filter"
	"github.com/SteveL-MSFT/GraphicalTools/internal/markdown"
)

// OutputMode decides whether and how marked rows are handed back.
type OutputMode int

const (
	OutputNone OutputMode = iota
	OutputSingle
	OutputMultiple
)

// ParseOutputMode accepts none, single or multiple (case-insensitive).
func ParseOutputMode(value string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return OutputNone, nil
	case "single":
		return OutputSingle, nil
	case "multiple", "multi":
		return OutputMultiple, nil
	}
	return OutputNone, fmt.Errorf("unknown output mode %q (want none, single or multiple)", value)
}

// PassThrough reports whether marked rows are returned to the caller.
func (m OutputMode) PassThrough() bool {
	return m != OutputNone
}

func (m OutputMode) String() string {
	switch m {
	case OutputSingle:
		return "single"
	case OutputMultiple:
		return "multiple"
	default:
		return "none"
	}
}

type Options struct {
	Title      string
	OutputMode OutputMode

	// Filter is applied on start. An invalid filter is reported in the
	// status line and the grid starts unfiltered.
	Filter     string
	FilterMode filter.Mode
	// Evaluator overrides FilterMode when set.
	Evaluator filter.Evaluator

	// SampleLimit is how many leading columns of each row are measured when
	// sizing columns. Zero or less keeps every column at its header width.
	SampleLimit int

	// MinUI hides the title bar, the filter line and the help line.
	MinUI bool
	Theme markdown.Theme

	Events *eventlog.Logger
}

func (o Options) evaluator() filter.Evaluator {
	if o.Evaluator != nil {
		return o.Evaluator
	}
	return filter.NewEvaluator(o.FilterMode)
}

func (o Options) title() string {
	if t := strings.TrimSpace(o.Title); t != "" {
		return t
	}
	return "Out-GridView"
}
