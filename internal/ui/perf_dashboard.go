package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"benchdash/internal/perf"
	"benchdash/internal/state"
	"benchdash/internal/web"
)

type perfKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Refresh key.Binding
	Kind    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func (k perfKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Refresh, k.Kind, k.Quit}
}

func (k perfKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Refresh, k.Kind, k.Dismiss, k.Quit},
	}
}

var perfKeys = perfKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle series"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Kind: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next kind"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "dismiss notification"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}

type perfLoadedMsg struct {
	payload *perf.Payload
}

type perfErrMsg struct {
	err error
}

type uiTickMsg time.Time

// PerfModel is the perf dashboard TUI state.
type PerfModel struct {
	keys    perfKeyMap
	help    help.Model
	spinner spinner.Model

	client  *web.Client
	project string
	kind    perf.Kind

	payload *perf.Payload
	active  []bool
	cursor  int

	notifications *state.NotificationHolder
	title         *state.Title

	width   int
	height  int
	loading bool
}

// NewPerfModel creates a perf dashboard for one project.
func NewPerfModel(client *web.Client, project string, kind perf.Kind, notifications *state.NotificationHolder, title *state.Title) PerfModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return PerfModel{
		keys:          perfKeys,
		help:          help.New(),
		spinner:       s,
		client:        client,
		project:       project,
		kind:          kind,
		notifications: notifications,
		title:         title,
		loading:       true,
	}
}

func (m PerfModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd(), uiTick())
}

func (m PerfModel) fetchCmd() tea.Cmd {
	client, project, kind := m.client, m.project, m.kind
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		payload, err := client.Perf(ctx, project, string(kind))
		if err != nil {
			return perfErrMsg{err: err}
		}
		return perfLoadedMsg{payload: payload}
	}
}

// uiTick drives periodic redraws so notification expiry shows up
// without user input.
func uiTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return uiTickMsg(t)
	})
}

func (m PerfModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case uiTickMsg:
		return m, uiTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case perfLoadedMsg:
		m.loading = false
		m.payload = msg.payload
		if len(m.active) != len(msg.payload.PerfData) {
			m.active = make([]bool, len(msg.payload.PerfData))
			for i := range m.active {
				m.active[i] = true
			}
		}
		if m.cursor >= len(m.active) {
			m.cursor = 0
		}
		m.title.Set(fmt.Sprintf("%s · %s", m.project, m.kind))
		return m, nil

	case perfErrMsg:
		m.loading = false
		m.notifications.Show(state.StatusError, fmt.Sprintf("Failed to fetch perf report: %v", msg.err))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.active)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.active) {
				m.active[m.cursor] = !m.active[m.cursor]
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
		case key.Matches(msg, m.keys.Kind):
			m.kind = nextKind(m.kind)
			m.loading = true
			m.active = nil
			return m, tea.Batch(m.spinner.Tick, m.fetchCmd())
		case key.Matches(msg, m.keys.Dismiss):
			m.notifications.Dismiss()
		}
		return m, nil
	}

	return m, nil
}

func (m PerfModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title.Get()))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " fetching perf report...")
	} else {
		marks, axisLabel := perf.Project(m.payload, m.active)
		b.WriteString(chartStyle.Render(renderChart(marks, axisLabel, m.chartWidth())))
		b.WriteString("\n")
		b.WriteString(seriesStyle.Render(m.seriesView()))
	}

	if n, ok := m.notifications.Current(); ok {
		b.WriteString("\n")
		b.WriteString(notificationStyle(n.Status).Render(n.Text))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return appStyle.Render(b.String())
}

func (m PerfModel) chartWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width - 8
}

// seriesView lists all series with their palette color and active
// state; the cursor row is bold.
func (m PerfModel) seriesView() string {
	if m.payload == nil || len(m.payload.PerfData) == 0 {
		return "no series in this report"
	}

	var b strings.Builder
	for i, series := range m.payload.PerfData {
		dot := lipgloss.NewStyle().
			Foreground(lipgloss.Color(perf.Palette[i%len(perf.Palette)])).
			Render("●")

		label := series.Benchmark
		if label == "" {
			label = fmt.Sprintf("series %d", i)
		}

		line := fmt.Sprintf("%s %s", dot, label)
		if i < len(m.active) && !m.active[i] {
			line = fmt.Sprintf("%s %s", dot, inactiveStyle.Render(label))
		}
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func notificationStyle(status state.Status) lipgloss.Style {
	switch status {
	case state.StatusError:
		return notifyErrorStyle
	case state.StatusAlert:
		return notifyAlertStyle
	default:
		return notifyOKStyle
	}
}

func nextKind(k perf.Kind) perf.Kind {
	for i, kind := range perf.Kinds {
		if kind == k {
			return perf.Kinds[(i+1)%len(perf.Kinds)]
		}
	}
	return perf.Kinds[0]
}

// StartPerfDashboard runs the perf dashboard TUI until quit.
func StartPerfDashboard(client *web.Client, project string, kind perf.Kind, notifications *state.NotificationHolder, title *state.Title) error {
	model := NewPerfModel(client, project, kind, notifications, title)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
