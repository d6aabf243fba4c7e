package programs

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trackerdto "ptrack/internal/modules/tracker/dto"
	"ptrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProgramsPort interface {
	ListPrograms(ctx context.Context) ([]trackerdto.CardOutput, error)
	GetProgram(ctx context.Context, id string) (trackerdto.ProgramDetailOutput, error)
	CreateProgram(ctx context.Context, name string, totalQuestions int) (trackerdto.ProgramOutput, error)
	DeletePrograms(ctx context.Context, ids []string) (trackerdto.DeleteProgramsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ProgramsLoadedMsg struct {
	Cards []trackerdto.CardOutput
	Err   error
}

type DetailLoadedMsg struct {
	Detail trackerdto.ProgramDetailOutput
	Err    error
}

type CreatedMsg struct {
	Program trackerdto.ProgramOutput
	Err     error
}

type DeletedMsg struct {
	Removed int
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type cardItem struct {
	card   trackerdto.CardOutput
	marked bool
}

func (i cardItem) Title() string {
	if i.marked {
		return "✗ " + i.card.Name
	}
	return i.card.Name
}

func (i cardItem) Description() string {
	return fmt.Sprintf("%d/%d  %d%%  %s", i.card.Correct, i.card.TotalQuestions, i.card.Percent, i.card.Label)
}

func (i cardItem) FilterValue() string { return i.card.Name }

// ─── mode ────────────────────────────────────────────────────────────────────

type mode int

const (
	modeBrowse mode = iota
	modeAdd         // add-program form is open
	modeDelete      // marking programs for deletion
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       ProgramsPort
	mode       mode
	list       list.Model
	detail     trackerdto.ProgramDetailOutput
	preview    viewport.Model
	spinner    spinner.Model
	nameInput  textinput.Model
	totalInput textinput.Model
	formFocus  int
	formErr    string
	marked     map[string]bool
	loading    bool
	width      int
	height     int
}

func New(port ProgramsPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Programs"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	name := textinput.New()
	name.Placeholder = "program name"
	name.CharLimit = 120

	total := textinput.New()
	total.Placeholder = "total questions"
	total.CharLimit = 6

	return Model{
		port:       port,
		list:       l,
		preview:    vp,
		spinner:    sp,
		nameInput:  name,
		totalInput: total,
		marked:     map[string]bool{},
		loading:    true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadProgramsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case ProgramsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Programs — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Cards))
		for i, c := range msg.Cards {
			items[i] = cardItem{card: c, marked: m.marked[c.ID]}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Cards) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Cards[0].ID))
		} else {
			m.detail = trackerdto.ProgramDetailOutput{}
			m.preview.SetContent(m.renderDetail())
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
		}

	case CreatedMsg:
		m.loading = false
		if msg.Err != nil {
			m.formErr = msg.Err.Error()
			m.mode = modeAdd
			return m, nil
		}
		m.mode = modeBrowse
		m.loading = true
		cmds = append(cmds, m.loadProgramsCmd(), m.spinner.Tick)

	case DeletedMsg:
		m.loading = false
		if msg.Err == nil {
			m.marked = map[string]bool{}
			m.mode = modeBrowse
		}
		m.loading = true
		cmds = append(cmds, m.loadProgramsCmd(), m.spinner.Tick)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateForm(msg)
		case modeDelete:
			return m.updateDelete(msg)
		default:
			switch msg.String() {
			case "a":
				if m.list.FilterState() != list.Filtering {
					return m.openForm()
				}
			case "d":
				if m.list.FilterState() != list.Filtering {
					m.mode = modeDelete
					return m, nil
				}
			}
		}
	}

	if !m.loading && m.mode == modeBrowse {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(cardItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.card.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading programs…")
	}

	if m.mode == modeAdd {
		return m.viewForm()
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedProgramID returns the current selection's program ID, if any.
func (m Model) SelectedProgramID() (string, bool) {
	if item, ok := m.list.SelectedItem().(cardItem); ok {
		return item.card.ID, true
	}
	return "", false
}

// SelectedProgramName returns the current selection's name.
func (m Model) SelectedProgramName() string {
	if item, ok := m.list.SelectedItem().(cardItem); ok {
		return item.card.Name
	}
	return ""
}

// Capturing reports whether the view wants exclusive key input: the
// list's search filter or the add-program form. The app model checks
// this to avoid consuming global keys.
func (m Model) Capturing() bool {
	return m.mode == modeAdd || m.list.FilterState() == list.Filtering
}

// Reload re-fetches the card list, keeping the current selection marks.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadProgramsCmd(), m.spinner.Tick)
}

// ─── add form ────────────────────────────────────────────────────────────────

func (m Model) openForm() (Model, tea.Cmd) {
	m.mode = modeAdd
	m.formFocus = 0
	m.formErr = ""
	m.nameInput.SetValue("")
	m.totalInput.SetValue("")
	m.totalInput.Blur()
	return m, m.nameInput.Focus()
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.nameInput.Blur()
		m.totalInput.Blur()
		return m, nil
	case "tab", "shift+tab":
		m.formFocus = 1 - m.formFocus
		if m.formFocus == 0 {
			m.totalInput.Blur()
			return m, m.nameInput.Focus()
		}
		m.nameInput.Blur()
		return m, m.totalInput.Focus()
	case "enter":
		if m.formFocus == 0 {
			m.formFocus = 1
			m.nameInput.Blur()
			return m, m.totalInput.Focus()
		}
		name := strings.TrimSpace(m.nameInput.Value())
		total, err := strconv.Atoi(strings.TrimSpace(m.totalInput.Value()))
		if err != nil {
			m.formErr = "total questions must be a number"
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.createCmd(name, total), m.spinner.Tick)
	}
	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.totalInput, cmd = m.totalInput.Update(msg)
	}
	return m, cmd
}

func (m Model) viewForm() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("New Program") + "\n\n")
	sb.WriteString(theme.Muted.Render("name:  ") + m.nameInput.View() + "\n")
	sb.WriteString(theme.Muted.Render("total: ") + m.totalInput.View() + "\n\n")
	sb.WriteString(theme.Muted.Render("enter: next/create  tab: switch field  esc: cancel"))
	if m.formErr != "" {
		sb.WriteString("\n\n" + theme.Hot.Render(m.formErr))
	}
	form := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Lavender).
		Background(theme.Mantle).
		Padding(1, 2).
		Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
}

// ─── delete mode ─────────────────────────────────────────────────────────────

func (m Model) updateDelete(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.marked = map[string]bool{}
		return m, m.refreshMarks()
	case " ":
		if item, ok := m.list.SelectedItem().(cardItem); ok {
			id := item.card.ID
			if m.marked[id] {
				delete(m.marked, id)
			} else {
				m.marked[id] = true
			}
		}
		return m, m.refreshMarks()
	case "enter":
		if len(m.marked) == 0 {
			m.mode = modeBrowse
			return m, nil
		}
		ids := make([]string, 0, len(m.marked))
		for id := range m.marked {
			ids = append(ids, id)
		}
		m.loading = true
		return m, tea.Batch(m.deleteCmd(ids), m.spinner.Tick)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// refreshMarks re-applies the deletion marks onto the visible items.
func (m *Model) refreshMarks() tea.Cmd {
	items := m.list.Items()
	next := make([]list.Item, len(items))
	for i, it := range items {
		card := it.(cardItem).card
		next[i] = cardItem{card: card, marked: m.marked[card.ID]}
	}
	return m.list.SetItems(next)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("No programs yet. Press a to add one.")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Name) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:      ") + d.ID + "\n")
	sb.WriteString(theme.Muted.Render("total:   ") + strconv.Itoa(d.TotalQuestions) + "\n")
	sb.WriteString(theme.Muted.Render("color:   ") + d.Color + "\n")
	sb.WriteString(theme.Muted.Render("created: ") + d.CreatedAt.Format("2006-01-02") + "\n")
	if len(d.Sessions) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Sessions") + "\n")
		for _, s := range d.Sessions {
			state := "open"
			if s.CompletedAt != nil {
				state = "done"
			}
			sb.WriteString(fmt.Sprintf("%s  %d/%d  %d%%  %s\n", s.Date, s.Correct, s.Total, s.Percent, theme.Muted.Render(state)))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("s: start session  a: add  d: delete"))
	return sb.String()
}

func (m Model) loadProgramsCmd() tea.Cmd {
	return func() tea.Msg {
		cards, err := m.port.ListPrograms(context.Background())
		return ProgramsLoadedMsg{Cards: cards, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.GetProgram(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}

func (m Model) createCmd(name string, total int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.CreateProgram(context.Background(), name, total)
		return CreatedMsg{Program: out, Err: err}
	}
}

func (m Model) deleteCmd(ids []string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.DeletePrograms(context.Background(), ids)
		return DeletedMsg{Removed: out.Removed, Err: err}
	}
}
