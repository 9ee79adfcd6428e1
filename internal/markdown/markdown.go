// Package markdown renders row details through glamour.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func ThemeFromString(value string) Theme {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return ThemeDark
	case "light":
		return ThemeLight
	default:
		return ThemeAuto
	}
}

// Renderer caches a glamour renderer per theme and wrap width.
type Renderer struct {
	mu       sync.Mutex
	theme    Theme
	wordWrap int
	renderer *glamour.TermRenderer
	err      error
}

func NewRenderer(theme Theme) *Renderer {
	if theme == "" {
		theme = ThemeAuto
	}
	return &Renderer{theme: theme, wordWrap: 80}
}

// SetWordWrap changes the wrap width; the renderer is rebuilt lazily.
func (r *Renderer) SetWordWrap(width int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if width < 0 {
		width = 0
	}
	if r.wordWrap != width {
		r.wordWrap = width
		r.renderer = nil
		r.err = nil
	}
}

// Render returns terminal output for content, or content itself when
// glamour is unavailable.
func (r *Renderer) Render(content string) string {
	renderer := r.ensure()
	if renderer == nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

func (r *Renderer) ensure() *glamour.TermRenderer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.renderer != nil && r.err == nil {
		return r.renderer
	}
	options := []glamour.TermRendererOption{glamour.WithWordWrap(r.wordWrap)}
	switch r.theme {
	case ThemeLight:
		options = append(options, glamour.WithStandardStyle("light"))
	case ThemeDark:
		options = append(options, glamour.WithStandardStyle("dark"))
	default:
		options = append(options, glamour.WithAutoStyle())
	}
	r.renderer, r.err = glamour.NewTermRenderer(options...)
	if r.err != nil {
		return nil
	}
	return r.renderer
}

// RowDetail formats one row as a two-column markdown table of column
// labels and values.
func RowDetail(title string, labels, cells []string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "## %s\n\n", escape(title))
	}
	b.WriteString("| Column | Value |\n|---|---|\n")
	for i, label := range labels {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		fmt.Fprintf(&b, "| %s | %s |\n", escape(label), escape(value))
	}
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
