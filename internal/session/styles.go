package session

import "github.com/charmbracelet/lipgloss"

var palette = struct {
	text      lipgloss.AdaptiveColor
	textMuted lipgloss.AdaptiveColor
	border    lipgloss.AdaptiveColor
	selection lipgloss.AdaptiveColor
	marked    lipgloss.AdaptiveColor
	errorText lipgloss.AdaptiveColor
	warnText  lipgloss.AdaptiveColor
}{
	text:      lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
	textMuted: lipgloss.AdaptiveColor{Light: "244", Dark: "245"},
	border:    lipgloss.AdaptiveColor{Light: "250", Dark: "240"},
	selection: lipgloss.AdaptiveColor{Light: "153", Dark: "24"},
	marked:    lipgloss.AdaptiveColor{Light: "28", Dark: "114"},
	errorText: lipgloss.AdaptiveColor{Light: "160", Dark: "203"},
	warnText:  lipgloss.AdaptiveColor{Light: "130", Dark: "214"},
}

type styles struct {
	topBar                lipgloss.Style
	filterPrompt          lipgloss.Style
	statusInfo, statusErr lipgloss.Style
	statusWarn            lipgloss.Style
	panel, panelFocused   lipgloss.Style
	header, underline     lipgloss.Style
	row, rowSel, rowMark  lipgloss.Style
	detail                lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	return styles{
		topBar:       base.Copy().Bold(true).Padding(0, 1),
		filterPrompt: base.Copy().Bold(true),
		statusInfo:   base.Copy().Foreground(palette.textMuted).Padding(0, 1),
		statusErr:    base.Copy().Foreground(palette.errorText).Padding(0, 1),
		statusWarn:   base.Copy().Foreground(palette.warnText).Padding(0, 1),
		panel:        base.Copy().BorderStyle(lipgloss.NormalBorder()).BorderForeground(palette.border),
		panelFocused: base.Copy().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(palette.border),
		header:       base.Copy().Bold(true).Foreground(palette.text),
		underline:    base.Copy().Foreground(palette.textMuted),
		row:          base.Copy().Foreground(palette.text),
		rowSel:       base.Copy().Foreground(palette.text).Background(palette.selection),
		rowMark:      base.Copy().Foreground(palette.marked),
		detail:       base.Copy().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
