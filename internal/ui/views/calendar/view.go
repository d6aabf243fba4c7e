package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calendardto "ptrack/internal/modules/calendar/dto"
	"ptrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CalendarPort interface {
	Month(ctx context.Context, year, month int, selected string) (calendardto.MonthOutput, error)
	Day(ctx context.Context, date string) ([]calendardto.DaySessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type MonthLoadedMsg struct {
	Month calendardto.MonthOutput
	Err   error
}

type DayLoadedMsg struct {
	Date     string
	Sessions []calendardto.DaySessionOutput
	Err      error
}

// ─── styles ──────────────────────────────────────────────────────────────────

var (
	cellStyle = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)

	cellToday    = cellStyle.Foreground(theme.Peach).Bold(true)
	cellSelected = cellStyle.Background(theme.Lavender).Foreground(theme.Base).Bold(true)
	cellData     = cellStyle.Foreground(theme.Green)
	cellPlain    = cellStyle.Foreground(theme.Text)

	headerCell = cellStyle.Foreground(theme.Subtext0)
)

var weekdayHeader = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     CalendarPort
	month    calendardto.MonthOutput
	selected time.Time
	sessions []calendardto.DaySessionOutput
	detail   viewport.Model
	spinner  spinner.Model
	loading  bool
	errText  string
	width    int
	height   int
}

func New(port CalendarPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Green)

	return Model{
		port:     port,
		detail:   vp,
		spinner:  sp,
		selected: time.Now().UTC().Truncate(24 * time.Hour),
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadMonthCmd(0, 0), m.loadDayCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case MonthLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.month = msg.Month

	case DayLoadedMsg:
		if msg.Err == nil && msg.Date == m.selectedDate() {
			m.sessions = msg.Sessions
			m.detail.SetContent(m.renderDay())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			return m.moveSelection(-1)
		case "right", "l":
			return m.moveSelection(1)
		case "up", "k":
			return m.moveSelection(-7)
		case "down", "j":
			return m.moveSelection(7)
		case "p":
			return m.shiftMonth(-1)
		case "n":
			return m.shiftMonth(1)
		case "t":
			return m.GoToDate(time.Now().UTC())
		default:
			var vCmd tea.Cmd
			m.detail, vCmd = m.detail.Update(msg)
			cmds = append(cmds, vCmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading calendar…")
	}
	if m.errText != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Hot.Render("calendar: "+m.errText))
	}

	gridW := 5*7 + 2
	detailW := m.width - gridW

	grid := lipgloss.NewStyle().
		Width(gridW).
		Height(m.height).
		Padding(1).
		Render(m.renderGrid())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, grid, detailPane)
}

// SelectedDate returns the selected day as yyyy-mm-dd.
func (m Model) SelectedDate() string { return m.selectedDate() }

// GoToDate moves the selection and reloads month and day data.
func (m Model) GoToDate(date time.Time) (Model, tea.Cmd) {
	m.selected = date
	return m, tea.Batch(m.loadMonthCmd(date.Year(), int(date.Month())), m.loadDayCmd())
}

// Reload re-fetches the visible month and the selected day.
func (m *Model) Reload() tea.Cmd {
	year, month := m.month.Year, m.month.Month
	return tea.Batch(m.loadMonthCmd(year, month), m.loadDayCmd())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	gridW := 5*7 + 2
	m.detail.Width = m.width - gridW - 2
	m.detail.Height = m.height - 2
}

func (m Model) selectedDate() string { return m.selected.Format("2006-01-02") }

func (m Model) moveSelection(days int) (Model, tea.Cmd) {
	next := m.selected.AddDate(0, 0, days)
	moved := next.Year() != m.month.Year || int(next.Month()) != m.month.Month
	m.selected = next
	if moved {
		return m, tea.Batch(m.loadMonthCmd(next.Year(), int(next.Month())), m.loadDayCmd())
	}
	return m, tea.Batch(m.loadMonthCmd(m.month.Year, m.month.Month), m.loadDayCmd())
}

func (m Model) shiftMonth(delta int) (Model, tea.Cmd) {
	first := time.Date(m.month.Year, time.Month(m.month.Month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, delta, 0)
	m.selected = next
	return m, tea.Batch(m.loadMonthCmd(next.Year(), int(next.Month())), m.loadDayCmd())
}

func (m Model) renderGrid() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.month.Label) + "\n\n")

	for _, label := range weekdayHeader {
		sb.WriteString(headerCell.Render(label))
	}
	sb.WriteString("\n")

	// Leading blanks so day 1 lands under its weekday column.
	col := 0
	if len(m.month.Days) > 0 {
		first, err := time.Parse("2006-01-02", m.month.Days[0].Date)
		if err == nil {
			col = (int(first.Weekday()) + 6) % 7
			sb.WriteString(strings.Repeat(cellStyle.Render(" "), col))
		}
	}

	for _, day := range m.month.Days {
		text := fmt.Sprintf("%d", day.Number)
		if day.HasData {
			text += "·"
		}
		style := cellPlain
		switch {
		case day.Date == m.selectedDate():
			style = cellSelected
		case day.Today:
			style = cellToday
		case day.HasData:
			style = cellData
		}
		sb.WriteString(style.Render(text))
		col++
		if col%7 == 0 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n\n" + theme.Muted.Render("←↑↓→: move  n/p: month  t: today"))
	return sb.String()
}

func (m Model) renderDay() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.selectedDate()) + "\n\n")
	if len(m.sessions) == 0 {
		sb.WriteString(theme.Muted.Render("No sessions logged on this day."))
		return sb.String()
	}
	for _, s := range m.sessions {
		state := "open"
		if s.Completed {
			state = "done"
		}
		sb.WriteString(fmt.Sprintf("%s\n", theme.Hot.Render(s.ProgramName)))
		sb.WriteString(fmt.Sprintf("  %d/%d correct  %d%%  %s\n", s.Correct, s.Total, s.Percent, theme.Muted.Render(state)))
	}
	return sb.String()
}

func (m Model) loadMonthCmd(year, month int) tea.Cmd {
	selected := m.selectedDate()
	return func() tea.Msg {
		out, err := m.port.Month(context.Background(), year, month, selected)
		return MonthLoadedMsg{Month: out, Err: err}
	}
}

func (m Model) loadDayCmd() tea.Cmd {
	date := m.selectedDate()
	return func() tea.Msg {
		sessions, err := m.port.Day(context.Background(), date)
		return DayLoadedMsg{Date: date, Sessions: sessions, Err: err}
	}
}
