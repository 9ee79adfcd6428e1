package session

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	accept      key.Binding
	cancel      key.Binding
	switchFocus key.Binding
	toggleMark  key.Binding
	markAll     key.Binding
	clearMarks  key.Binding
	copyRow     key.Binding
	detail      key.Binding
	closeDetail key.Binding
	up          key.Binding
	down        key.Binding
	toggleHelp  key.Binding
}

func newKeyMap(mode OutputMode) keyMap {
	k := keyMap{
		accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "close"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		switchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "filter/list"),
		),
		toggleMark: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark row"),
		),
		markAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "mark all shown"),
		),
		clearMarks: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "clear marks"),
		),
		copyRow: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy row"),
		),
		detail: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "row detail"),
		),
		closeDetail: key.NewBinding(
			key.WithKeys("esc", "ctrl+o", "q"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "pgup"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "pgdown"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
	if mode.PassThrough() {
		k.accept.SetHelp("enter", "accept")
	} else {
		k.toggleMark.SetEnabled(false)
		k.markAll.SetEnabled(false)
		k.clearMarks.SetEnabled(false)
	}
	if mode == OutputSingle {
		k.toggleMark.SetHelp("space", "select row")
		k.markAll.SetEnabled(false)
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.switchFocus,
		k.toggleMark,
		k.accept,
		k.cancel,
		k.toggleHelp,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.switchFocus, k.accept, k.cancel},
		{k.toggleMark, k.markAll, k.clearMarks},
		{k.copyRow, k.detail, k.toggleHelp},
	}
}
