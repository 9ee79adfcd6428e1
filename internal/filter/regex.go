package filter

import (
	"time"

	"github.com/dlclark/regexp2"
)

const regexMatchTimeout = 250 * time.Millisecond

// RegexEvaluator matches a case-insensitive .NET-style regular expression
// against each cell; a row is kept when any cell matches.
type RegexEvaluator struct{}

func (RegexEvaluator) Compile(text string, _ []string) (Predicate, error) {
	re, err := regexp2.Compile(text, regexp2.IgnoreCase)
	if err != nil {
		return nil, &SyntaxError{Text: text, Msg: err.Error(), Err: err}
	}
	re.MatchTimeout = regexMatchTimeout
	return func(cells []string) (bool, error) {
		for _, cell := range cells {
			ok, err := re.MatchString(cell)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}, nil
}
