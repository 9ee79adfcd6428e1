package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Run shows ds until the user accepts or cancels and returns the original
// indices of the rows they marked. Cancelling ctx ends the session as if
// the user had cancelled.
func Run(ctx context.Context, ds *grid.Dataset, opts Options) ([]int, error) {
	out := terminalOutput()
	width, height := terminalSize(out)

	m, err := New(ds, opts, width, height)
	if err != nil {
		return nil, err
	}

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(out),
	}
	// The dataset may have arrived on stdin; keys then come from the tty.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			m.finish(false)
			return m.Harvest(), ctx.Err()
		}
		return nil, fmt.Errorf("run grid view: %w", err)
	}
	if fm, ok := final.(*Model); ok {
		m = fm
	}
	return m.Harvest(), nil
}

// terminalOutput draws on stdout unless it is redirected, in which case the
// grid goes to stderr so the selected rows can be piped.
func terminalOutput() *os.File {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return os.Stdout
	}
	return os.Stderr
}

func terminalSize(f *os.File) (int, int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return width, height
}

// Interactive reports whether a terminal is available to draw on.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) || term.IsTerminal(int(os.Stderr.Fd()))
}
