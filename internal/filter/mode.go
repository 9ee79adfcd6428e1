package filter

import (
	"fmt"
	"strings"
)

// Mode selects the filter grammar.
type Mode string

const (
	ModeExpr  Mode = "expr"
	ModeRegex Mode = "regex"
	ModeFuzzy Mode = "fuzzy"
)

// ParseMode accepts a mode name, case-insensitively. Empty means ModeExpr.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeExpr:
		return ModeExpr, nil
	case ModeRegex:
		return ModeRegex, nil
	case ModeFuzzy:
		return ModeFuzzy, nil
	}
	return "", fmt.Errorf("unknown filter mode %q (want expr, regex or fuzzy)", value)
}

// NewEvaluator returns the evaluator for mode, defaulting to expressions.
func NewEvaluator(mode Mode) Evaluator {
	switch mode {
	case ModeRegex:
		return RegexEvaluator{}
	case ModeFuzzy:
		return FuzzyEvaluator{}
	default:
		return ExprEvaluator{}
	}
}

// Hint is a short example of the mode's syntax for the filter prompt.
func (m Mode) Hint() string {
	switch m {
	case ModeRegex:
		return `regex, e.g. ^al|bob`
	case ModeFuzzy:
		return `fuzzy text`
	default:
		return `expression, e.g. Age > 10 && Name startsWith "A"`
	}
}
