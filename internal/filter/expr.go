package filter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/expr-lang/expr"
)

// ExprEvaluator treats filter text as an expr-lang boolean expression over
// the row's columns, e.g. `Age > 10 && Name startsWith "A"`.
//
// Every column label is a string variable. Labels that are not valid
// identifiers are also reachable through an alias with the offending
// characters replaced by underscores ("First Name" -> First_Name).
// Comparisons and arithmetic are numeric when both operands read as numbers
// and textual otherwise, so `Age > 10` and `Zip == "02134"` both behave.
// Unknown names and non-boolean expressions are rejected when compiling; a
// row whose cells do not fit the expression simply does not match.
type ExprEvaluator struct{}

func (ExprEvaluator) Compile(text string, columns []string) (Predicate, error) {
	bindings := columnBindings(columns)
	env := make(map[string]interface{}, len(bindings))
	for _, b := range bindings {
		env[b.name] = ""
	}

	options := append([]expr.Option{expr.Env(env), expr.AsBool()}, operatorOptions()...)
	program, err := expr.Compile(text, options...)
	if err != nil {
		return nil, &SyntaxError{Text: text, Msg: firstLine(err.Error()), Err: err}
	}

	return func(cells []string) (bool, error) {
		env := make(map[string]interface{}, len(bindings))
		for _, b := range bindings {
			value := ""
			if b.col < len(cells) {
				value = cells[b.col]
			}
			env[b.name] = value
		}
		out, err := expr.Run(program, env)
		if err != nil {
			// Typically a cell that is not a number in arithmetic.
			return false, nil
		}
		ok, isBool := out.(bool)
		if !isBool {
			return false, fmt.Errorf("filter must evaluate to true or false, got %T", out)
		}
		return ok, nil
	}, nil
}

type binding struct {
	name string
	col  int
}

// columnBindings names every column by its label and by its identifier
// alias. The first column wins when names repeat.
func columnBindings(columns []string) []binding {
	seen := make(map[string]bool, len(columns)*2)
	out := make([]binding, 0, len(columns)*2)
	add := func(name string, col int) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, binding{name: name, col: col})
	}
	for i, label := range columns {
		add(label, i)
	}
	for i, label := range columns {
		add(identifier(label), i)
	}
	return out
}

var (
	mixedPairs = []interface{}{
		new(func(string, int) bool),
		new(func(string, float64) bool),
		new(func(int, string) bool),
		new(func(float64, string) bool),
	}
	orderPairs = append([]interface{}{new(func(string, string) bool)}, mixedPairs...)

	mixedArith = []interface{}{
		new(func(string, int) float64),
		new(func(string, float64) float64),
		new(func(int, string) float64),
		new(func(float64, string) float64),
	}
	textArith = append([]interface{}{new(func(string, string) float64)}, mixedArith...)
)

// operatorOptions routes comparisons and arithmetic that involve a cell
// through number-aware helpers. String equality between two cells or a cell
// and a quoted literal stays exact.
func operatorOptions() []expr.Option {
	type overload struct {
		op, fn string
		impl   func(params ...interface{}) (interface{}, error)
		types  []interface{}
	}
	overloads := []overload{
		{"<", "cellLess", ordered(func(c int) bool { return c < 0 }), orderPairs},
		{"<=", "cellLessEqual", ordered(func(c int) bool { return c <= 0 }), orderPairs},
		{">", "cellGreater", ordered(func(c int) bool { return c > 0 }), orderPairs},
		{">=", "cellGreaterEqual", ordered(func(c int) bool { return c >= 0 }), orderPairs},
		{"==", "cellEqual", equal(true), mixedPairs},
		{"!=", "cellNotEqual", equal(false), mixedPairs},
		{"+", "cellAdd", arith(func(a, b float64) float64 { return a + b }), mixedArith},
		{"-", "cellSub", arith(func(a, b float64) float64 { return a - b }), textArith},
		{"*", "cellMul", arith(func(a, b float64) float64 { return a * b }), textArith},
		{"/", "cellDiv", arith(func(a, b float64) float64 { return a / b }), textArith},
	}
	options := make([]expr.Option, 0, len(overloads)*2)
	for _, o := range overloads {
		options = append(options, expr.Function(o.fn, o.impl, o.types...))
	}
	for _, o := range overloads {
		options = append(options, expr.Operator(o.op, o.fn))
	}
	return options
}

func ordered(test func(int) bool) func(params ...interface{}) (interface{}, error) {
	return func(params ...interface{}) (interface{}, error) {
		c, ok := compare(params[0], params[1])
		return ok && test(c), nil
	}
}

func equal(want bool) func(params ...interface{}) (interface{}, error) {
	return func(params ...interface{}) (interface{}, error) {
		a, aok := number(params[0])
		b, bok := number(params[1])
		return (aok && bok && a == b) == want, nil
	}
}

func arith(op func(a, b float64) float64) func(params ...interface{}) (interface{}, error) {
	return func(params ...interface{}) (interface{}, error) {
		a, aok := number(params[0])
		b, bok := number(params[1])
		if !aok || !bok {
			return nil, fmt.Errorf("cannot compute with %q and %q", fmt.Sprint(params[0]), fmt.Sprint(params[1]))
		}
		return op(a, b), nil
	}
}

// compare orders two operands numerically when both read as numbers and
// lexically when both are strings. Anything else cannot be ordered.
func compare(x, y interface{}) (int, bool) {
	a, aok := number(x)
	b, bok := number(y)
	if aok && bok {
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		}
		return 0, true
	}
	xs, xok := x.(string)
	ys, yok := y.(string)
	if xok && yok {
		return strings.Compare(xs, ys), true
	}
	return 0, false
}

func number(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	case string:
		trimmed := strings.TrimSpace(v)
		if strings.IndexFunc(trimmed, unicode.IsDigit) < 0 {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		return f, err == nil
	}
	return 0, false
}

func identifier(label string) string {
	var b strings.Builder
	for i, r := range label {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
