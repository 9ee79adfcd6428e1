package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SteveL-MSFT/GraphicalTools/internal/config"
	"github.com/SteveL-MSFT/GraphicalTools/internal/filter"
	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
	"github.com/SteveL-MSFT/GraphicalTools/internal/session"
)

func sampleDataset(t *testing.T) *grid.Dataset {
	t.Helper()
	ds, err := grid.NewDataset([]string{"Name", "Note"}, []grid.Row{
		{"Alice", "likes, commas"},
		{"Bob", "plain"},
		{"Carol", "x"},
	})
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}

func TestParseFlags(t *testing.T) {
	f, err := parseFlags([]string{"-passthru", "-filter", "Age > 3", "-sample", "5", "people.csv"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !f.passThru || f.filter != "Age > 3" || f.sample != 5 || f.input != "people.csv" {
		t.Fatalf("unexpected flags %+v", f)
	}
	if _, err := parseFlags([]string{"a.csv", "b.csv"}); err == nil {
		t.Fatalf("expected error for two inputs")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		mode   session.OutputMode
		filter filter.Mode
		sample int
	}{
		{name: "defaults", mode: session.OutputNone, filter: filter.ModeExpr, sample: config.DefaultSampleLimit},
		{name: "passthru", args: []string{"-passthru"}, mode: session.OutputMultiple, filter: filter.ModeExpr, sample: config.DefaultSampleLimit},
		{name: "mode wins over passthru", args: []string{"-passthru", "-mode", "single"}, mode: session.OutputSingle, filter: filter.ModeExpr, sample: config.DefaultSampleLimit},
		{name: "regex and sample", args: []string{"-filter-mode", "regex", "-sample", "-1"}, mode: session.OutputNone, filter: filter.ModeRegex, sample: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			cfg := config.Default()
			merge(cfg, f)
			opts, err := sessionOptions(cfg, f)
			if err != nil {
				t.Fatalf("sessionOptions: %v", err)
			}
			if opts.OutputMode != tt.mode || opts.FilterMode != tt.filter || opts.SampleLimit != tt.sample {
				t.Fatalf("got mode=%v filter=%v sample=%d", opts.OutputMode, opts.FilterMode, opts.SampleLimit)
			}
		})
	}
}

func TestSessionOptionsRejectsUnknownMode(t *testing.T) {
	cfg := config.Default()
	cfg.OutputMode = "everything"
	if _, err := sessionOptions(cfg, cliFlags{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWriteSelected(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSelected(&buf, sampleDataset(t), []int{0, 2}); err != nil {
		t.Fatalf("writeSelected: %v", err)
	}
	want := "Name,Note\nAlice,\"likes, commas\"\nCarol,x\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
	if err := writeSelected(&bytes.Buffer{}, sampleDataset(t), []int{3}); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	if err := printTable(&buf, sampleDataset(t)); err != nil {
		t.Fatalf("printTable: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Name", "Note", "Alice", "likes, commas", "Carol"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestStaticTableFallback(t *testing.T) {
	tests := []struct {
		name        string
		print       bool
		interactive bool
		want        bool
	}{
		{"terminal", false, true, false},
		{"no terminal", false, false, true},
		{"print flag", true, true, true},
	}
	for _, tt := range tests {
		if got := staticTable(cliFlags{print: tt.print}, tt.interactive); got != tt.want {
			t.Errorf("%s: staticTable = %v, want %v", tt.name, got, tt.want)
		}
	}
}
