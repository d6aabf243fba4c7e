package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calendardto "ptrack/internal/modules/calendar/dto"
	reportdto "ptrack/internal/modules/report/dto"
	sessiondto "ptrack/internal/modules/session/dto"
	trackerdto "ptrack/internal/modules/tracker/dto"
	apperrors "ptrack/internal/platform/errors"
	"ptrack/internal/ui/components"
	"ptrack/internal/ui/theme"
	calendarview "ptrack/internal/ui/views/calendar"
	pluginsview "ptrack/internal/ui/views/plugins"
	programsview "ptrack/internal/ui/views/programs"
	statsview "ptrack/internal/ui/views/stats"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type trackerPort interface {
	ListPrograms(ctx context.Context) ([]trackerdto.CardOutput, error)
	GetProgram(ctx context.Context, id string) (trackerdto.ProgramDetailOutput, error)
	CreateProgram(ctx context.Context, name string, totalQuestions int) (trackerdto.ProgramOutput, error)
	DeletePrograms(ctx context.Context, ids []string) (trackerdto.DeleteProgramsOutput, error)
}

type sessionPort interface {
	Start(ctx context.Context, programID string) (sessiondto.StartOutput, error)
	Answer(ctx context.Context, correct bool) (sessiondto.AnswerOutput, error)
	Save(ctx context.Context) (sessiondto.SaveOutput, error)
	Cancel(ctx context.Context) (sessiondto.CancelOutput, error)
	Complete(ctx context.Context) (sessiondto.CompleteOutput, error)
	Status(ctx context.Context) (sessiondto.StatusOutput, error)
}

type calendarPort interface {
	Month(ctx context.Context, year, month int, selected string) (calendardto.MonthOutput, error)
	Day(ctx context.Context, date string) ([]calendardto.DaySessionOutput, error)
}

type pluginPort interface {
	ListCommands(ctx context.Context, pluginName string) ([]reportdto.CommandInfo, error)
	Execute(ctx context.Context, input reportdto.ExecuteInput) (reportdto.ExecuteOutput, error)
	Report(ctx context.Context, input reportdto.ExecuteInput) (reportdto.ExecuteOutput, error)
	PrepareTTY(ctx context.Context, input reportdto.TTYPrepareInput) (reportdto.TTYPrepareOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabPrograms tabID = iota
	tabCalendar
	tabStats
	tabPlugins
	tabCount
)

var tabLabels = [tabCount]string{
	"Programs", "Calendar", "Stats", "Plugins",
}

// ─── async messages ───────────────────────────────────────────────────────────

type statusLoadedMsg struct {
	status sessiondto.StatusOutput
	err    error
}

type sessionStartedMsg struct {
	out sessiondto.StartOutput
	err error
}

type answerRecordedMsg struct {
	out sessiondto.AnswerOutput
	err error
}

type sessionSavedMsg struct {
	out sessiondto.SaveOutput
	err error
}

type sessionCancelledMsg struct {
	out sessiondto.CancelOutput
	err error
}

type sessionCompletedMsg struct {
	out sessiondto.CompleteOutput
	err error
}

type pluginTTYReadyMsg struct {
	plan reportdto.TTYPrepareOutput
	err  error
}

type pluginTTYDoneMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Session key.Binding
	Correct key.Binding
	Wrong   key.Binding
	Add     key.Binding
	Delete  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Session: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		Correct: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "correct")),
		Wrong:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wrong")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add program")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete programs")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Session, k.Add, k.Delete},
		{k.Correct, k.Wrong},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the session
// drawer, the global help overlay, and the command palette. All business
// logic is delegated to port interfaces; all rendering is delegated to
// sub-views.
type Model struct {
	dataDir     string
	displayName string

	// ports used at this orchestration level only
	session sessionPort
	plugin  pluginPort

	// sub-views (one per tab)
	progView   programsview.Model
	calView    calendarview.Model
	statView   statsview.Model
	pluginView pluginsview.Model

	// global UI state
	activeTab  tabID
	keys       keyMap
	help       help.Model
	showHelp   bool
	palette    components.Palette
	drawer     sessiondto.StatusOutput
	drawerOpen bool
	hasActive  bool
	status     string
	width      int
	height     int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	dataDir, displayName string,
	tracker trackerPort,
	session sessionPort,
	calendar calendarPort,
	stats statsview.StatsPort,
	plugin pluginPort,
) Model {
	var pluginV pluginsview.Model
	if plugin != nil {
		pluginV = pluginsview.New(pluginPortBridge{p: plugin}, dataDir)
	} else {
		pluginV = pluginsview.New(nil, dataDir)
	}

	return Model{
		dataDir:     dataDir,
		displayName: displayName,
		session:     session,
		plugin:      plugin,
		progView:    programsview.New(trackerPortBridge{p: tracker}),
		calView:     calendarview.New(calendarPortBridge{p: calendar}),
		statView:    statsview.New(stats),
		pluginView:  pluginV,
		activeTab:   tabPrograms,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.progView.Init(),
		m.calView.Init(),
		m.statView.Init(),
		m.loadStatusCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case statusLoadedMsg:
		if msg.err != nil {
			if !errors.Is(msg.err, apperrors.ErrNoActiveSession) {
				m.status = "active session check: " + msg.err.Error()
			}
			m.hasActive = false
			m.drawerOpen = false
		} else {
			m.hasActive = true
			m.drawer = msg.status
			m.drawerOpen = true
			m.status = "session recovered: " + msg.status.ProgramName
			m.pluginView.SetContext(msg.status.ProgramID, msg.status.SessionID)
		}

	case sessionStartedMsg:
		if msg.err != nil {
			m.status = "session start failed: " + msg.err.Error()
		} else {
			m.hasActive = true
			m.drawerOpen = true
			m.drawer = sessiondto.StatusOutput{
				SessionID:   msg.out.SessionID,
				ProgramID:   msg.out.ProgramID,
				ProgramName: msg.out.ProgramName,
				StartedAt:   msg.out.StartedAt,
				Correct:     msg.out.Correct,
				Answered:    msg.out.Answered,
				Total:       msg.out.Total,
			}
			if msg.out.Resumed {
				m.status = "session resumed: " + msg.out.ProgramName
			} else {
				m.status = "session started: " + msg.out.ProgramName
			}
			m.pluginView.SetContext(msg.out.ProgramID, msg.out.SessionID)
		}

	case answerRecordedMsg:
		if msg.err != nil {
			m.status = "answer failed: " + msg.err.Error()
		} else {
			m.drawer.Correct = msg.out.Correct
			m.drawer.Answered = msg.out.Answered
			m.drawer.Total = msg.out.Total
			m.drawer.Percent = msg.out.Percent
			if msg.out.Completed {
				m.hasActive = false
				m.drawerOpen = false
				m.status = fmt.Sprintf("session complete: %d/%d (%d%%)", msg.out.Correct, msg.out.Total, msg.out.Percent)
				m.pluginView.SetContext("", "")
				cmds = append(cmds, m.progView.Reload())
			}
		}

	case sessionSavedMsg:
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.hasActive = false
			m.drawerOpen = false
			m.status = fmt.Sprintf("saved: %d/%d", msg.out.Correct, msg.out.Answered)
			m.pluginView.SetContext("", "")
			cmds = append(cmds, m.progView.Reload())
		}

	case sessionCancelledMsg:
		if msg.err != nil {
			m.status = "cancel failed: " + msg.err.Error()
		} else {
			m.hasActive = false
			m.drawerOpen = false
			m.status = "session cancelled"
			m.pluginView.SetContext("", "")
			cmds = append(cmds, m.progView.Reload())
		}

	case sessionCompletedMsg:
		if msg.err != nil {
			m.status = "complete failed: " + msg.err.Error()
		} else {
			m.hasActive = false
			m.drawerOpen = false
			m.status = fmt.Sprintf("session complete: %d/%d (%d%%)", msg.out.Correct, msg.out.Total, msg.out.Percent)
			m.pluginView.SetContext("", "")
			cmds = append(cmds, m.progView.Reload())
		}

	case pluginTTYReadyMsg:
		if msg.err != nil {
			m.status = "plugin tty prepare: " + msg.err.Error()
			return m, nil
		}
		if len(msg.plan.Argv) == 0 {
			m.status = "plugin tty: empty argv"
			return m, nil
		}
		cmd := osexec.Command(msg.plan.Argv[0], msg.plan.Argv[1:]...)
		if msg.plan.Cwd != "" {
			cmd.Dir = msg.plan.Cwd
		}
		env := os.Environ()
		for k, v := range msg.plan.Env {
			env = append(env, k+"="+v)
		}
		cmd.Env = env
		m.status = "plugin tty running"
		return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
			return pluginTTYDoneMsg{err: err}
		})

	case pluginTTYDoneMsg:
		if msg.err != nil {
			m.status = "plugin tty error: " + msg.err.Error()
		} else {
			m.status = "plugin tty completed"
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when it is capturing input (filter, form).
		if m.subViewCapturing() {
			break
		}

		// The session drawer owns its keys while open.
		if m.drawerOpen && m.hasActive {
			switch msg.String() {
			case "c":
				return m, m.answerCmd(true)
			case "w":
				return m, m.answerCmd(false)
			case "S":
				return m, m.saveCmd()
			case "X":
				return m, m.cancelCmd()
			case "F":
				return m, m.completeCmd()
			case "esc":
				m.drawerOpen = false
				m.status = "drawer hidden (session still active)"
				return m, nil
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "s":
			if m.activeTab == tabPrograms {
				if m.hasActive {
					m.drawerOpen = true
					return m, nil
				}
				if id, ok := m.progView.SelectedProgramID(); ok {
					cmds = append(cmds, m.startSessionCmd(id))
				}
			}
		case "o":
			if m.hasActive {
				m.drawerOpen = !m.drawerOpen
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabPrograms:
		m.progView, tabCmd = m.progView.Update(msg)
	case tabCalendar:
		m.calView, tabCmd = m.calView.Update(msg)
	case tabStats:
		m.statView, tabCmd = m.statView.Update(msg)
	case tabPlugins:
		m.pluginView, tabCmd = m.pluginView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	var drawer string
	drawerH := 0
	if m.drawerOpen && m.hasActive {
		drawer = m.renderDrawer()
		drawerH = lipgloss.Height(drawer)
	}

	contentH := m.height - tabBarH - statusBarH - drawerH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	if drawer != "" {
		return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, drawer, statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabPrograms:
		return m.progView.View()
	case tabCalendar:
		return m.calView.View()
	case tabStats:
		return m.statView.View()
	case tabPlugins:
		return m.pluginView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	left := "ptrack  " + strings.Join(parts, sep)
	right := theme.Title.Render(components.Greeting(time.Now(), m.displayName))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasActive {
		left = theme.Hot.Render("● "+m.drawer.ProgramName) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) renderDrawer() string {
	d := m.drawer
	filled := 0
	if d.Total > 0 {
		filled = d.Answered * 20 / d.Total
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	line := fmt.Sprintf("%s  %s  %d/%d answered  %d correct  %d%%",
		theme.Hot.Render(d.ProgramName), bar, d.Answered, d.Total, d.Correct, d.Percent)
	hint := theme.Muted.Render("c:correct  w:wrong  S:save  X:cancel  F:finish  esc:hide")
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Peach).
		Background(theme.Mantle).
		Width(m.width - 2).
		Padding(0, 1).
		Render(line + "\n" + hint)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	selected, _ := m.progView.SelectedProgramID()

	switch parts[0] {
	case "session:start":
		if selected == "" {
			m.status = "no program selected"
			return m, nil
		}
		return m, m.startSessionCmd(selected)

	case "session:answer":
		if len(parts) < 2 || (parts[1] != "correct" && parts[1] != "wrong") {
			m.status = "usage: session:answer <correct|wrong>"
			return m, nil
		}
		return m, m.answerCmd(parts[1] == "correct")

	case "session:save":
		return m, m.saveCmd()

	case "session:cancel":
		return m, m.cancelCmd()

	case "session:complete":
		return m, m.completeCmd()

	case "session:status":
		return m, m.loadStatusCmd()

	case "calendar:goto":
		if len(parts) < 2 {
			m.status = "usage: calendar:goto <yyyy-mm-dd>"
			return m, nil
		}
		date, err := time.Parse("2006-01-02", parts[1])
		if err != nil {
			m.status = "invalid date: " + parts[1]
			return m, nil
		}
		m.activeTab = tabCalendar
		var cmd tea.Cmd
		m.calView, cmd = m.calView.GoToDate(date)
		return m, cmd

	case "calendar:today":
		m.activeTab = tabCalendar
		var cmd tea.Cmd
		m.calView, cmd = m.calView.GoToDate(time.Now().UTC())
		return m, cmd

	case "stats:refresh":
		m.activeTab = tabStats
		return m, m.statView.Reload()

	case "plugin:exec":
		if len(parts) < 3 {
			m.status = "usage: plugin:exec <plugin> <command> [json]"
			return m, nil
		}
		prefix := parts[0] + " " + parts[1] + " " + parts[2]
		inputJSON := strings.TrimSpace(strings.TrimPrefix(input, prefix))
		m.activeTab = tabPlugins
		return m, m.pluginView.ExecCommand(parts[1], parts[2], inputJSON)

	case "plugin:report":
		if len(parts) < 3 {
			m.status = "usage: plugin:report <plugin> <command> [json]"
			return m, nil
		}
		prefix := parts[0] + " " + parts[1] + " " + parts[2]
		inputJSON := strings.TrimSpace(strings.TrimPrefix(input, prefix))
		m.activeTab = tabPlugins
		return m, m.pluginView.RunReport(parts[1], parts[2], inputJSON)

	case "plugin:commands":
		m.activeTab = tabPlugins
		m.status = "switched to Plugins tab"
		return m, nil

	case "plugin:tty":
		if len(parts) < 3 {
			m.status = "usage: plugin:tty <plugin> <command> [json]"
			return m, nil
		}
		prefix := parts[0] + " " + parts[1] + " " + parts[2]
		inputJSON := strings.TrimSpace(strings.TrimPrefix(input, prefix))
		return m, m.preparePluginTTYCmd(reportdto.TTYPrepareInput{
			PluginName: parts[1],
			CommandID:  parts[2],
			InputJSON:  inputJSON,
			ProgramID:  selected,
			SessionID:  m.drawer.SessionID,
			DataDir:    m.dataDir,
			Cwd:        m.dataDir,
		})

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab wants exclusive key
// input, in which case global key bindings must yield to allow free typing.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabPrograms:
		return m.progView.Capturing()
	case tabPlugins:
		return m.pluginView.Capturing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.progView, _ = m.progView.Update(sz)
	m.calView, _ = m.calView.Update(sz)
	m.statView, _ = m.statView.Update(sz)
	m.pluginView, _ = m.pluginView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadStatusCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.session.Status(context.Background())
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m Model) startSessionCmd(programID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Start(context.Background(), programID)
		return sessionStartedMsg{out: out, err: err}
	}
}

func (m Model) answerCmd(correct bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Answer(context.Background(), correct)
		return answerRecordedMsg{out: out, err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Save(context.Background())
		return sessionSavedMsg{out: out, err: err}
	}
}

func (m Model) cancelCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Cancel(context.Background())
		return sessionCancelledMsg{out: out, err: err}
	}
}

func (m Model) completeCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Complete(context.Background())
		return sessionCompletedMsg{out: out, err: err}
	}
}

func (m Model) preparePluginTTYCmd(input reportdto.TTYPrepareInput) tea.Cmd {
	return func() tea.Msg {
		if m.plugin == nil {
			return pluginTTYReadyMsg{err: fmt.Errorf("plugin adapter not configured")}
		}
		plan, err := m.plugin.PrepareTTY(context.Background(), input)
		return pluginTTYReadyMsg{plan: plan, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type trackerPortBridge struct{ p trackerPort }

func (b trackerPortBridge) ListPrograms(ctx context.Context) ([]trackerdto.CardOutput, error) {
	return b.p.ListPrograms(ctx)
}
func (b trackerPortBridge) GetProgram(ctx context.Context, id string) (trackerdto.ProgramDetailOutput, error) {
	return b.p.GetProgram(ctx, id)
}
func (b trackerPortBridge) CreateProgram(ctx context.Context, name string, total int) (trackerdto.ProgramOutput, error) {
	return b.p.CreateProgram(ctx, name, total)
}
func (b trackerPortBridge) DeletePrograms(ctx context.Context, ids []string) (trackerdto.DeleteProgramsOutput, error) {
	return b.p.DeletePrograms(ctx, ids)
}

type calendarPortBridge struct{ p calendarPort }

func (b calendarPortBridge) Month(ctx context.Context, year, month int, selected string) (calendardto.MonthOutput, error) {
	return b.p.Month(ctx, year, month, selected)
}
func (b calendarPortBridge) Day(ctx context.Context, date string) ([]calendardto.DaySessionOutput, error) {
	return b.p.Day(ctx, date)
}

type pluginPortBridge struct{ p pluginPort }

func (b pluginPortBridge) ListCommands(ctx context.Context, name string) ([]reportdto.CommandInfo, error) {
	return b.p.ListCommands(ctx, name)
}
func (b pluginPortBridge) Execute(ctx context.Context, input reportdto.ExecuteInput) (reportdto.ExecuteOutput, error) {
	return b.p.Execute(ctx, input)
}
func (b pluginPortBridge) Report(ctx context.Context, input reportdto.ExecuteInput) (reportdto.ExecuteOutput, error) {
	return b.p.Report(ctx, input)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
