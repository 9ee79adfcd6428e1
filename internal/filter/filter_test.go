package filter

import (
	"errors"
	"testing"

	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
)

func sampleRegistry(t *testing.T) (*grid.Registry, []string) {
	t.Helper()
	ds, err := grid.NewDataset([]string{"Name", "Age"}, []grid.Row{
		{"Alice", "30"},
		{"Bob", "7"},
		{"Carol", "41"},
	})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	widths := grid.ComputeWidths(ds.Labels(), ds.Rows, 10, 40)
	return grid.NewRegistry(ds, widths, true), ds.Labels()
}

func names(rows []*grid.GridRow) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Cells[0]
	}
	return out
}

func equalNames(got []*grid.GridRow, want ...string) bool {
	have := names(got)
	if len(have) != len(want) {
		return false
	}
	for i := range want {
		if have[i] != want[i] {
			return false
		}
	}
	return true
}

func TestApplyEmptyMatchesAll(t *testing.T) {
	reg, cols := sampleRegistry(t)
	rows := reg.Rows()
	for _, text := range []string{"", "   "} {
		got, err := Apply(rows, text, cols, ExprEvaluator{})
		if err != nil {
			t.Fatalf("Apply(%q): %v", text, err)
		}
		if len(got) != len(rows) {
			t.Fatalf("Apply(%q): expected %d rows, got %d", text, len(rows), len(got))
		}
		for i := range rows {
			if got[i] != rows[i] {
				t.Fatalf("Apply(%q): row %d replaced", text, i)
			}
		}
	}
}

func TestApplyExprNumericComparison(t *testing.T) {
	reg, cols := sampleRegistry(t)
	rows := reg.Rows()

	got, err := Apply(rows, "Age > 10", cols, ExprEvaluator{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !equalNames(got, "Alice", "Carol") {
		t.Fatalf("unexpected rows %v", names(got))
	}
	if got[0] != rows[0] || got[1] != rows[2] {
		t.Fatalf("filter must return the registry's rows, not copies")
	}
}

func TestApplyExprStringOperators(t *testing.T) {
	reg, cols := sampleRegistry(t)
	tests := []struct {
		text string
		want []string
	}{
		{`Name == "Bob"`, []string{"Bob"}},
		{`Name startsWith "C" || Age < 10`, []string{"Bob", "Carol"}},
		{`Name contains "zz"`, nil},
	}
	for _, tt := range tests {
		got, err := Apply(reg.Rows(), tt.text, cols, ExprEvaluator{})
		if err != nil {
			t.Fatalf("Apply(%q): %v", tt.text, err)
		}
		if !equalNames(got, tt.want...) {
			t.Errorf("Apply(%q): got %v, want %v", tt.text, names(got), tt.want)
		}
	}
}

func TestApplyNoMatchIsNotAnError(t *testing.T) {
	reg, cols := sampleRegistry(t)
	got, err := Apply(reg.Rows(), "Age > 1000", cols, ExprEvaluator{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}

func TestApplyMalformedIsSyntaxError(t *testing.T) {
	reg, cols := sampleRegistry(t)
	for _, text := range []string{"Age >", `Name == "x`, `Age + 1`} {
		_, err := Apply(reg.Rows(), text, cols, ExprEvaluator{})
		if !errors.Is(err, ErrSyntax) {
			t.Fatalf("Apply(%q): expected syntax error, got %v", text, err)
		}
		var syn *SyntaxError
		if !errors.As(err, &syn) || syn.Text != text || syn.Error() == "" {
			t.Fatalf("Apply(%q): expected *SyntaxError with text, got %#v", text, err)
		}
	}
}

func TestApplyDoesNotTouchMarks(t *testing.T) {
	reg, cols := sampleRegistry(t)
	reg.ToggleMark(reg.Row(1))
	if _, err := Apply(reg.Rows(), "Age > 10", cols, ExprEvaluator{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := Apply(reg.Rows(), "Age >", cols, ExprEvaluator{}); err == nil {
		t.Fatalf("expected error")
	}
	if got := reg.MarkedOriginalIndices(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("marks changed: %v", got)
	}
}

func TestExprLabelAliases(t *testing.T) {
	ds, err := grid.NewDataset([]string{"First Name", "2fa"}, []grid.Row{{"Ann", "yes"}, {"Ben", "no"}})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	reg := grid.NewRegistry(ds, grid.ColumnWidths{10, 3}, false)
	got, err := Apply(reg.Rows(), `First_Name == "Ben" || _2fa == "yes"`, ds.Labels(), ExprEvaluator{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !equalNames(got, "Ann", "Ben") {
		t.Fatalf("unexpected rows %v", names(got))
	}
}

func TestRegexEvaluator(t *testing.T) {
	reg, cols := sampleRegistry(t)
	got, err := Apply(reg.Rows(), "^al|^b", cols, RegexEvaluator{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !equalNames(got, "Alice", "Bob") {
		t.Fatalf("unexpected rows %v", names(got))
	}

	got, err = Apply(reg.Rows(), `^4\d$`, cols, RegexEvaluator{})
	if err != nil || !equalNames(got, "Carol") {
		t.Fatalf("expected Carol by age, got %v (%v)", names(got), err)
	}

	if _, err := Apply(reg.Rows(), "(unclosed", cols, RegexEvaluator{}); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
}

func TestFuzzyEvaluator(t *testing.T) {
	reg, cols := sampleRegistry(t)
	got, err := Apply(reg.Rows(), "crl", cols, FuzzyEvaluator{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !equalNames(got, "Carol") {
		t.Fatalf("unexpected rows %v", names(got))
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeExpr, "EXPR": ModeExpr, "regex": ModeRegex, " fuzzy ": ModeFuzzy} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseMode("sql"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
	if _, ok := NewEvaluator(ModeRegex).(RegexEvaluator); !ok {
		t.Errorf("expected regex evaluator")
	}
}

func registryOf(t *testing.T, labels []string, rows ...grid.Row) *grid.Registry {
	t.Helper()
	ds, err := grid.NewDataset(labels, rows)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	widths := grid.ComputeWidths(ds.Labels(), ds.Rows, 10, 60)
	return grid.NewRegistry(ds, widths, false)
}

func TestExprSkipsCellsThatAreNotNumbers(t *testing.T) {
	reg := registryOf(t, []string{"Name", "Age"},
		grid.Row{"Alice", "30"},
		grid.Row{"Bob", ""},
		grid.Row{"Carol", "n/a"},
		grid.Row{"Dan", "12"},
	)
	tests := []struct {
		text string
		want []string
	}{
		{"Age > 10", []string{"Alice", "Dan"}},
		{"Age <= 12", []string{"Dan"}},
		{"Age == 30", []string{"Alice"}},
		{"Age != 30", []string{"Bob", "Carol", "Dan"}},
		{"Age * 2 > 50", []string{"Alice"}},
		{`Age == ""`, []string{"Bob"}},
	}
	for _, tt := range tests {
		got, err := Apply(reg.Rows(), tt.text, []string{"Name", "Age"}, ExprEvaluator{})
		if err != nil {
			t.Fatalf("Apply(%q): %v", tt.text, err)
		}
		if !equalNames(got, tt.want...) {
			t.Errorf("Apply(%q): got %v, want %v", tt.text, names(got), tt.want)
		}
	}
}

func TestExprLeadingZerosStayText(t *testing.T) {
	reg := registryOf(t, []string{"Name", "Zip"},
		grid.Row{"Alice", "02134"},
		grid.Row{"Bob", "10001"},
	)
	tests := []struct {
		text string
		want []string
	}{
		{`Zip == "02134"`, []string{"Alice"}},
		{`Zip contains "21"`, []string{"Alice"}},
		{`Zip startsWith "0"`, []string{"Alice"}},
		{`Zip == 2134`, []string{"Alice"}},
		{`Zip > 5000`, []string{"Bob"}},
		{`Zip < "5000"`, []string{"Alice"}},
	}
	for _, tt := range tests {
		got, err := Apply(reg.Rows(), tt.text, []string{"Name", "Zip"}, ExprEvaluator{})
		if err != nil {
			t.Fatalf("Apply(%q): %v", tt.text, err)
		}
		if !equalNames(got, tt.want...) {
			t.Errorf("Apply(%q): got %v, want %v", tt.text, names(got), tt.want)
		}
	}
}

func TestExprRejectsUnknownNamesAndNonBooleans(t *testing.T) {
	reg, cols := sampleRegistry(t)
	for _, text := range []string{"Missing > 10", `Missing == "x"`, "Name", `Name + "x"`} {
		if _, err := Apply(reg.Rows(), text, cols, ExprEvaluator{}); !errors.Is(err, ErrSyntax) {
			t.Errorf("Apply(%q): expected syntax error, got %v", text, err)
		}
	}
}

func TestApplyNilEvaluatorUsesExpr(t *testing.T) {
	reg, cols := sampleRegistry(t)
	got, err := Apply(reg.Rows(), "Age < 10", cols, nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !equalNames(got, "Bob") {
		t.Fatalf("unexpected rows %v", names(got))
	}
}
