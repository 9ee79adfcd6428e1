package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/SteveL-MSFT/GraphicalTools/internal/config"
	"github.com/SteveL-MSFT/GraphicalTools/internal/eventlog"
	"github.com/SteveL-MSFT/GraphicalTools/internal/filter"
	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
	"github.com/SteveL-MSFT/GraphicalTools/internal/markdown"
	"github.com/SteveL-MSFT/GraphicalTools/internal/session"
	"github.com/SteveL-MSFT/GraphicalTools/internal/source"
)

var errNoInput = errors.New("no input: pass a file, pipe data on stdin or use -sqlite")

type cliFlags struct {
	title       string
	mode        string
	passThru    bool
	filter      string
	filterMode  string
	format      string
	sqlitePath  string
	query       string
	sample      int
	minUI       bool
	configPath  string
	writeConfig bool
	events      string
	theme       string
	print       bool
	input       string
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("ocgv", flag.ContinueOnError)
	fs.StringVar(&f.title, "title", "", "window title")
	fs.StringVar(&f.mode, "mode", "", "output mode: none, single or multiple")
	fs.BoolVar(&f.passThru, "passthru", false, "same as -mode multiple")
	fs.StringVar(&f.filter, "filter", "", "initial filter")
	fs.StringVar(&f.filterMode, "filter-mode", "", "filter syntax: expr, regex or fuzzy")
	fs.StringVar(&f.format, "format", "", "input format: csv, tsv, json, jsonl or yaml (default from extension)")
	fs.StringVar(&f.sqlitePath, "sqlite", "", "read rows from this SQLite database")
	fs.StringVar(&f.query, "query", "", "query to run against -sqlite")
	fs.IntVar(&f.sample, "sample", 0, "columns measured per row when sizing (default from config)")
	fs.BoolVar(&f.minUI, "minui", false, "hide the title, filter and help lines")
	fs.StringVar(&f.configPath, "config", "", "config file path")
	fs.BoolVar(&f.writeConfig, "write-config", false, "write the effective settings to the config file and exit")
	fs.StringVar(&f.events, "events", "", "append session events as JSON lines to this file")
	fs.StringVar(&f.theme, "theme", "", "row detail theme: auto, light or dark")
	fs.BoolVar(&f.print, "print", false, "print a static table instead of the interactive grid")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 1 {
		return f, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	f.input = fs.Arg(0)
	return f, nil
}

// merge applies flags over the loaded config.
func merge(cfg *config.Config, f cliFlags) {
	if f.sample != 0 {
		cfg.SampleLimit = f.sample
	}
	if f.filterMode != "" {
		cfg.FilterMode = f.filterMode
	}
	if f.passThru {
		cfg.OutputMode = session.OutputMultiple.String()
	}
	if f.mode != "" {
		cfg.OutputMode = f.mode
	}
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.events != "" {
		cfg.EventLog = f.events
	}
	if f.minUI {
		cfg.MinUI = true
	}
}

func sessionOptions(cfg *config.Config, f cliFlags) (session.Options, error) {
	mode, err := session.ParseOutputMode(cfg.OutputMode)
	if err != nil {
		return session.Options{}, err
	}
	filterMode, err := filter.ParseMode(cfg.FilterMode)
	if err != nil {
		return session.Options{}, err
	}
	return session.Options{
		Title:       f.title,
		OutputMode:  mode,
		Filter:      f.filter,
		FilterMode:  filterMode,
		SampleLimit: cfg.SampleLimit,
		MinUI:       cfg.MinUI,
		Theme:       markdown.ThemeFromString(cfg.Theme),
	}, nil
}

func loadDataset(ctx context.Context, f cliFlags, stdin *os.File) (*grid.Dataset, error) {
	if f.sqlitePath != "" {
		if strings.TrimSpace(f.query) == "" {
			return nil, errors.New("-sqlite needs -query")
		}
		return source.FromSQLite(ctx, f.sqlitePath, f.query)
	}
	format, err := source.ParseFormat(f.format, f.input)
	if err != nil {
		return nil, err
	}
	var r io.Reader = stdin
	if f.input != "" && f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	} else if term.IsTerminal(int(stdin.Fd())) {
		return nil, errNoInput
	}
	return source.Read(r, format)
}

// staticTable reports whether to print instead of opening the grid. The grid
// needs stdout or stderr on a terminal; keys are read from the tty even when
// stdin carries the data.
func staticTable(f cliFlags, interactive bool) bool {
	return f.print || !interactive
}

func run(ctx context.Context, f cliFlags) error {
	cfg, cfgPath, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	merge(cfg, f)
	if f.writeConfig {
		if err := config.Save(cfg, cfgPath); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintln(os.Stderr, "wrote", cfgPath)
		return nil
	}

	opts, err := sessionOptions(cfg, f)
	if err != nil {
		return err
	}
	ds, err := loadDataset(ctx, f, os.Stdin)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	if staticTable(f, session.Interactive()) {
		return printTable(os.Stdout, ds)
	}

	opts.Events = eventlog.New(cfg.EventLog)
	selected, err := session.Run(ctx, ds, opts)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return nil
	}
	return writeSelected(os.Stdout, ds, selected)
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, f); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
