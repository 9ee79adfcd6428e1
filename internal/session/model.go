// Package session runs the interactive grid: it sizes and renders the rows,
// wires the filter line to the row view and hands back the marked rows.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/SteveL-MSFT/GraphicalTools/internal/filter"
	"github.com/SteveL-MSFT/GraphicalTools/internal/grid"
	"github.com/SteveL-MSFT/GraphicalTools/internal/markdown"
)

// ErrNoDataset is returned by New when no dataset is supplied.
var ErrNoDataset = errors.New("no dataset")

type focusArea int

const (
	focusFilter focusArea = iota
	focusList
)

type Model struct {
	opts   Options
	ds     *grid.Dataset
	labels []string

	widths     grid.ColumnWidths
	usable     int
	degenerate bool
	header     string
	underline  string

	registry *grid.Registry
	view     *filter.View

	input  textinput.Model
	list   list.Model
	keys   keyMap
	help   help.Model
	styles styles

	md         *markdown.Renderer
	detail     viewport.Model
	showDetail bool

	focus  focusArea
	width  int
	height int

	status    string
	statusErr bool

	copy func(string) error

	accepted  bool
	cancelled bool
}

// New sizes the columns for a terminal of the given width, renders the
// header and every row, and applies the initial filter.
func New(ds *grid.Dataset, opts Options, width, height int) (*Model, error) {
	if ds == nil {
		return nil, ErrNoDataset
	}
	passThrough := opts.OutputMode.PassThrough()
	labels := ds.Labels()

	usable := grid.UsableWidth(width, len(labels), passThrough)
	widths := grid.ComputeWidths(labels, ds.Rows, opts.SampleLimit, usable)
	header := grid.Pad(labels, grid.SelectionOffset(passThrough), widths)

	s := newStyles()
	m := &Model{
		opts:       opts,
		ds:         ds,
		labels:     labels,
		widths:     widths,
		usable:     usable,
		degenerate: widths.Degenerate(usable),
		header:     header,
		underline:  grid.Underline(header),
		registry:   grid.NewRegistry(ds, widths, passThrough),
		keys:       newKeyMap(opts.OutputMode),
		help:       help.New(),
		styles:     s,
		md:         markdown.NewRenderer(opts.Theme),
		width:      width,
		height:     height,
		copy:       clipboard.WriteAll,
	}
	m.view = filter.NewView(m.registry.Rows(), labels, opts.evaluator())

	m.input = textinput.New()
	m.input.Prompt = "Filter: "
	m.input.PromptStyle = s.filterPrompt
	m.input.Placeholder = opts.FilterMode.Hint()
	m.input.CharLimit = 1024

	m.list = newRowList(s, passThrough, 0, 0)
	m.detail = viewport.New(0, 0)

	if opts.MinUI {
		m.focusList()
	} else {
		m.focusFilter()
	}
	m.layout()

	opts.Events.Emit("session_start", map[string]string{
		"rows":        strconv.Itoa(ds.Len()),
		"columns":     strconv.Itoa(len(labels)),
		"output_mode": opts.OutputMode.String(),
		"width":       strconv.Itoa(width),
	})
	if m.degenerate {
		opts.Events.Emit("layout_degenerate", map[string]string{
			"usable_width": strconv.Itoa(usable),
			"widths":       fmt.Sprint([]int(widths)),
		})
	}

	m.setItems(m.view.Rows())
	if strings.TrimSpace(opts.Filter) != "" {
		m.input.SetValue(opts.Filter)
		m.input.CursorEnd()
	}
	m.applyFilter(opts.Filter)
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	if m.focus == focusFilter {
		return textinput.Blink
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.focus == focusFilter {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showDetail {
		if key.Matches(msg, m.keys.closeDetail) {
			m.showDetail = false
			return nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.cancel):
		m.finish(false)
		return tea.Quit
	case key.Matches(msg, m.keys.accept):
		m.finish(true)
		return tea.Quit
	case key.Matches(msg, m.keys.switchFocus):
		if m.opts.MinUI {
			return nil
		}
		if m.focus == focusFilter {
			m.focusList()
			return nil
		}
		m.focusFilter()
		return textinput.Blink
	case key.Matches(msg, m.keys.markAll):
		m.registry.MarkAll(m.view.Rows())
		m.refreshStatus()
		return nil
	case key.Matches(msg, m.keys.clearMarks):
		m.registry.UnmarkAll()
		m.refreshStatus()
		return nil
	case key.Matches(msg, m.keys.copyRow):
		m.copyHighlighted()
		return nil
	case key.Matches(msg, m.keys.detail):
		m.openDetail()
		return nil
	}

	if m.focus == focusList {
		switch {
		case key.Matches(msg, m.keys.toggleMark):
			m.toggleHighlighted()
			return nil
		case key.Matches(msg, m.keys.toggleHelp):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			return nil
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd
	}

	// Filter focused: arrows still move through the rows while typing.
	if key.Matches(msg, m.keys.up) || key.Matches(msg, m.keys.down) {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd
	}
	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != prev {
		m.applyFilter(value)
	}
	return cmd
}

// applyFilter attempts to move the view to text. A rejected filter keeps
// the rows on screen and turns the status line red.
func (m *Model) applyFilter(text string) {
	if err := m.view.Set(text); err != nil {
		m.setStatus(err.Error(), true)
		m.opts.Events.Emit("filter_rejected", map[string]string{
			"filter": text,
			"error":  err.Error(),
		})
		return
	}
	m.setItems(m.view.Rows())
	m.refreshStatus()
	if m.view.Filtered() {
		m.opts.Events.Emit("filter_applied", map[string]string{
			"filter":  m.view.Text(),
			"matches": strconv.Itoa(len(m.view.Rows())),
		})
	}
}

// setItems swaps the list contents, keeping the highlighted row when it
// survives the new filter.
func (m *Model) setItems(rows []*grid.GridRow) {
	current := m.highlighted()
	m.list.SetItems(rowItems(rows))
	target := 0
	for i, row := range rows {
		if row == current {
			target = i
			break
		}
	}
	if len(rows) > 0 {
		m.list.Select(target)
	}
}

func (m *Model) highlighted() *grid.GridRow {
	if item, ok := m.list.SelectedItem().(rowItem); ok {
		return item.row
	}
	return nil
}

func (m *Model) toggleHighlighted() {
	row := m.highlighted()
	if row == nil {
		return
	}
	if m.opts.OutputMode == OutputSingle && !row.Marked() {
		m.registry.UnmarkAll()
	}
	m.registry.ToggleMark(row)
	m.refreshStatus()
}

func (m *Model) copyHighlighted() {
	row := m.highlighted()
	if row == nil {
		return
	}
	if err := m.copy(strings.Join(row.Cells, "\t")); err != nil {
		m.setStatus("Clipboard unavailable", true)
		m.opts.Events.Emit("clipboard_failed", map[string]string{"error": err.Error()})
		return
	}
	m.setStatus(fmt.Sprintf("Row %d copied", row.OriginalIndex+1), false)
}

func (m *Model) openDetail() {
	row := m.highlighted()
	if row == nil {
		return
	}
	m.md.SetWordWrap(m.detail.Width - 4)
	content := markdown.RowDetail(fmt.Sprintf("Row %d", row.OriginalIndex+1), m.labels, row.Cells)
	m.detail.SetContent(m.md.Render(content))
	m.detail.GotoTop()
	m.showDetail = true
}

// finish ends the session. In single mode accepting with nothing marked
// selects the highlighted row.
func (m *Model) finish(accepted bool) {
	m.accepted = accepted
	m.cancelled = !accepted
	if accepted && m.opts.OutputMode == OutputSingle && m.registry.MarkedCount() == 0 {
		if row := m.highlighted(); row != nil {
			m.registry.SetMarked(row, true)
		}
	}
	m.opts.Events.Emit("session_end", map[string]string{
		"accepted": strconv.FormatBool(accepted),
		"filter":   m.view.Text(),
		"selected": strconv.Itoa(len(m.Harvest())),
	})
}

// Harvest returns the original indices of the marked rows, or nothing when
// the session was cancelled or rows are not passed through.
func (m *Model) Harvest() []int {
	if m.cancelled || !m.opts.OutputMode.PassThrough() {
		return []int{}
	}
	return m.registry.MarkedOriginalIndices()
}

// Cancelled reports whether the session ended without being accepted.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

func (m *Model) focusFilter() {
	m.focus = focusFilter
	m.input.Focus()
}

func (m *Model) focusList() {
	m.focus = focusList
	m.input.Blur()
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m *Model) refreshStatus() {
	if err := m.view.Err(); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	parts := []string{fmt.Sprintf("%d of %d rows", len(m.view.Rows()), m.registry.Len())}
	if m.registry.Selectable() {
		parts = append(parts, fmt.Sprintf("%d marked", m.registry.MarkedCount()))
	}
	m.setStatus(strings.Join(parts, " • "), false)
}

func (m *Model) chromeHeight() int {
	h := 1 // status
	if !m.opts.MinUI {
		h += 2 // title, filter
		h += lipgloss.Height(m.help.View(m.keys))
	}
	return h
}

func (m *Model) layout() {
	inner := m.width - 2
	if inner < 0 {
		inner = 0
	}
	m.help.Width = m.width
	m.input.Width = inner - runewidth.StringWidth(m.input.Prompt) - 1

	listHeight := m.height - m.chromeHeight() - 2 - 2
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(inner, listHeight)

	m.detail.Width = inner
	m.detail.Height = m.height - 2
	if m.detail.Height < 1 {
		m.detail.Height = 1
	}
}

func (m *Model) View() string {
	if m.showDetail {
		return m.styles.detail.Width(m.detail.Width).Render(m.detail.View())
	}

	var b strings.Builder
	inner := m.width - 2
	if inner < 0 {
		inner = 0
	}

	if !m.opts.MinUI {
		b.WriteString(m.styles.topBar.Render(m.opts.title()))
		b.WriteRune('\n')
		b.WriteString(m.input.View())
		b.WriteRune('\n')
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.header.Render(runewidth.Truncate(m.header, inner, "")),
		m.styles.underline.Render(runewidth.Truncate(m.underline, inner, "")),
		m.list.View(),
	)
	panel := m.styles.panel
	if m.focus == focusList {
		panel = m.styles.panelFocused
	}
	b.WriteString(panel.Width(inner).Render(body))
	b.WriteRune('\n')

	b.WriteString(m.renderStatus())
	if !m.opts.MinUI {
		b.WriteRune('\n')
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m *Model) renderStatus() string {
	segments := []string{}
	if m.statusErr {
		segments = append(segments, m.styles.statusErr.Render(m.status))
	} else if m.status != "" {
		segments = append(segments, m.styles.statusInfo.Render(m.status))
	}
	if m.degenerate {
		segments = append(segments, m.styles.statusWarn.Render("terminal too narrow for all columns"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}
