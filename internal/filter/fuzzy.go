package filter

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FuzzyEvaluator keeps rows whose joined cells contain the filter text as a
// fuzzy subsequence. Any text compiles.
type FuzzyEvaluator struct{}

func (FuzzyEvaluator) Compile(text string, _ []string) (Predicate, error) {
	pattern := strings.TrimSpace(text)
	return func(cells []string) (bool, error) {
		matches := fuzzy.Find(pattern, []string{strings.Join(cells, " ")})
		return len(matches) > 0, nil
	}, nil
}
