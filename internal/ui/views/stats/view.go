package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsdto "ptrack/internal/modules/stats/dto"
	"ptrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type StatsPort interface {
	Overview(ctx context.Context) (statsdto.OverviewOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type OverviewLoadedMsg struct {
	Overview statsdto.OverviewOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     StatsPort
	overview statsdto.OverviewOutput
	body     viewport.Model
	spinner  spinner.Model
	loading  bool
	errText  string
	width    int
	height   int
}

func New(port StatsPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Sapphire)

	return Model{
		port:    port,
		body:    vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadOverviewCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 2

	case OverviewLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.overview = msg.Overview
		m.body.SetContent(m.renderOverview())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Reload()
		}
		var vCmd tea.Cmd
		m.body, vCmd = m.body.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Crunching stats…")
	}
	if m.errText != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Hot.Render("stats: "+m.errText))
	}
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(m.body.View())
}

// Reload re-fetches the overview.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadOverviewCmd(), m.spinner.Tick)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderOverview() string {
	o := m.overview
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Overview") + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %d\n", theme.Muted.Render("sessions:  "), o.TotalSessions))
	sb.WriteString(fmt.Sprintf("%s %d\n", theme.Muted.Render("completed: "), o.TotalCompleted))
	sb.WriteString(fmt.Sprintf("%s %d / %d\n", theme.Muted.Render("answers:   "), o.TotalCorrect, o.TotalAnswered))
	sb.WriteString(fmt.Sprintf("%s %d%%\n", theme.Muted.Render("accuracy:  "), o.Accuracy))
	sb.WriteString(fmt.Sprintf("%s %d day(s)\n", theme.Muted.Render("streak:    "), o.CurrentStreak))

	if len(o.Programs) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Per program") + "\n")
		for _, p := range o.Programs {
			sb.WriteString(fmt.Sprintf("%s\n", theme.Hot.Render(p.ProgramName)))
			sb.WriteString(fmt.Sprintf("  sessions=%d done=%d correct=%d/%d accuracy=%d%%\n",
				p.Sessions, p.Completed, p.Correct, p.Answered, p.Accuracy))
		}
	}

	sb.WriteString("\n" + theme.Muted.Render("r: refresh  ↑/↓: scroll"))
	return sb.String()
}

func (m Model) loadOverviewCmd() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.port.Overview(context.Background())
		return OverviewLoadedMsg{Overview: overview, Err: err}
	}
}
