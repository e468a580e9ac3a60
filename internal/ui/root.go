package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/maren/tack/internal/app"
	"github.com/maren/tack/internal/ui/theme"
	"github.com/maren/tack/internal/ui/views"
)

// RootModel is the top-level bubbletea model. It owns the active view
// and routes messages to the board and notes screens.
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	currentView View
	boardView   views.KanbanView
	notesView   views.NotesView

	showHelp  bool
	statusMsg string
	errorMsg  string
}

// NewRootModel creates the root model
func NewRootModel(a *app.App, startView View) RootModel {
	autosaveDelay := time.Duration(a.Config.AutosaveDelayMs) * time.Millisecond

	return RootModel{
		app:         a,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: startView,
		boardView:   views.NewKanbanView(a.Store, a.Notifier, autosaveDelay),
		notesView:   views.NewNotesView(a.Store),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return tea.Batch(
		m.boardView.Init(),
		m.notesView.Init(),
	)
}

// inputActive reports whether the focused view is capturing text input,
// in which case global keybindings must not fire.
func (m RootModel) inputActive() bool {
	switch m.currentView {
	case ViewNotes:
		return m.notesView.IsInputMode()
	default:
		return m.boardView.IsInputMode()
	}
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Header and footer take 3 lines
		viewHeight := msg.Height - 3
		m.boardView = m.boardView.SetSize(msg.Width, viewHeight)
		m.notesView = m.notesView.SetSize(msg.Width, viewHeight)
		return m, nil

	case SwitchViewMsg:
		m.currentView = msg.View
		return m, nil

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case ThemeChangedMsg:
		m.statusMsg = "Theme: " + msg.ThemeName
		return m, nil

	case tea.KeyMsg:
		m.errorMsg = ""
		m.statusMsg = ""

		if !m.inputActive() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit

			case key.Matches(msg, m.keys.BoardView):
				m.currentView = ViewBoard
				return m, nil

			case key.Matches(msg, m.keys.NotesView):
				m.currentView = ViewNotes
				return m, nil

			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				return m, nil

			case key.Matches(msg, m.keys.ThemeCycle):
				return m, m.cycleTheme()
			}
		}

		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
	}

	return m.routeToView(msg)
}

// routeToView forwards a message to the active view
func (m RootModel) routeToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var updated tea.Model

	switch m.currentView {
	case ViewNotes:
		updated, cmd = m.notesView.Update(msg)
		m.notesView = updated.(views.NotesView)
	default:
		updated, cmd = m.boardView.Update(msg)
		m.boardView = updated.(views.KanbanView)
	}

	return m, cmd
}

// cycleTheme switches to the next available theme
func (m RootModel) cycleTheme() tea.Cmd {
	available := theme.Available()
	for i, t := range available {
		if t.Name == theme.Current.Theme.Name {
			next := available[(i+1)%len(available)]
			theme.SetTheme(next)
			return func() tea.Msg {
				return ThemeChangedMsg{ThemeName: next.Name}
			}
		}
	}
	return nil
}

// View renders the application
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starting tack..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	switch m.currentView {
	case ViewNotes:
		body = m.notesView.View()
	default:
		body = m.boardView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderHeader renders the tab bar
func (m RootModel) renderHeader() string {
	t := theme.Current.Theme

	activeTab := lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Padding(0, 2)
	inactiveTab := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 2)

	var tabs []string
	for _, view := range []View{ViewBoard, ViewNotes} {
		label := fmt.Sprintf("%d %s", int(view)+1, view.String())
		if view == m.currentView {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, inactiveTab.Render(label))
		}
	}

	title := lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true).
		Padding(0, 1).
		Render("tack")

	return lipgloss.JoinHorizontal(lipgloss.Center, title, lipgloss.JoinHorizontal(lipgloss.Center, tabs...))
}

// renderFooter renders the status line
func (m RootModel) renderFooter() string {
	t := theme.Current.Theme

	if m.errorMsg != "" {
		return lipgloss.NewStyle().
			Foreground(t.Error).
			Padding(0, 1).
			Render("✗ " + m.errorMsg)
	}

	if m.statusMsg != "" {
		return lipgloss.NewStyle().
			Foreground(t.Success).
			Padding(0, 1).
			Render(m.statusMsg)
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// renderHelp renders the full-screen help overlay
func (m RootModel) renderHelp() string {
	t := theme.Current.Theme

	title := lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		MarginBottom(1).
		Render("tack — keybindings")

	body := m.help.FullHelpView(m.keys.FullHelp())

	hint := lipgloss.NewStyle().
		Foreground(t.Subtle).
		MarginTop(1).
		Render("press any key to close")

	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body, hint))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
