package filter

import (
	"errors"
	"testing"
)

func TestViewTransitions(t *testing.T) {
	reg, cols := sampleRegistry(t)
	v := NewView(reg.Rows(), cols, ExprEvaluator{})

	if v.Filtered() || len(v.Rows()) != 3 {
		t.Fatalf("expected unfiltered view of 3 rows")
	}

	if err := v.Set("Age > 10"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !v.Filtered() || v.Text() != "Age > 10" || !equalNames(v.Rows(), "Alice", "Carol") {
		t.Fatalf("unexpected filtered state %q %v", v.Text(), names(v.Rows()))
	}

	err := v.Set("Age >")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if v.Text() != "Age > 10" || !equalNames(v.Rows(), "Alice", "Carol") {
		t.Fatalf("rejected filter must roll back, got %q %v", v.Text(), names(v.Rows()))
	}
	if v.Err() == nil {
		t.Fatalf("expected Err to report the rejected filter")
	}

	if err := v.Set(""); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	if v.Filtered() || v.Err() != nil || len(v.Rows()) != 3 {
		t.Fatalf("expected unfiltered view after clearing")
	}
}

func TestViewRollbackFromUnfiltered(t *testing.T) {
	reg, cols := sampleRegistry(t)
	v := NewView(reg.Rows(), cols, ExprEvaluator{})
	if err := v.Set("Age >"); err == nil {
		t.Fatalf("expected error")
	}
	if v.Filtered() || len(v.Rows()) != 3 {
		t.Fatalf("view must stay unfiltered")
	}
}

func TestMarksSurviveFilterCycles(t *testing.T) {
	reg, cols := sampleRegistry(t)
	v := NewView(reg.Rows(), cols, ExprEvaluator{})

	if err := v.Set(`Name == "Carol"`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	reg.ToggleMark(v.Rows()[0])

	for _, text := range []string{"Age < 10", "", "Age >", `Name != "Carol"`, ""} {
		_ = v.Set(text)
	}
	if got := reg.MarkedOriginalIndices(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected [2], got %v", got)
	}
	if !v.Rows()[2].Marked() {
		t.Fatalf("mark must be visible through the unfiltered view")
	}

	v.Reset()
	if v.Filtered() || len(v.Rows()) != 3 {
		t.Fatalf("Reset must restore all rows")
	}
}
