package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/maren/tack/internal/board"
	"github.com/maren/tack/internal/model"
	"github.com/maren/tack/internal/store"
	"github.com/maren/tack/internal/ui/theme"
)

// Local message types for the notes view
type notesLoadedMsg struct {
	notes []model.Note
	// Notes referenced from board tasks, by note ID
	linkCounts map[string]int
	err        error
}

type noteWrittenMsg struct{ err error }

// NotesMode represents the current input mode
type NotesMode int

const (
	NotesModeList NotesMode = iota
	NotesModeTitle
	NotesModeBody
	NotesModeConfirmDelete
)

// NotesView renders the notes list alongside an editor pane
type NotesView struct {
	store  *store.Store
	width  int
	height int

	notes      []model.Note
	linkCounts map[string]int
	cursor     int
	scroll     int

	mode       NotesMode
	titleInput textinput.Model
	bodyInput  textarea.Model

	// Empty while composing a new note
	editingID string

	statusMsg string
	loadErr   error
}

// NewNotesView creates a new notes view
func NewNotesView(database *store.Store) NotesView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Note title..."
	ti.CharLimit = 256

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.ShowLineNumbers = false

	return NotesView{
		store:      database,
		titleInput: ti,
		bodyInput:  ta,
	}
}

// Init initializes the notes view
func (v NotesView) Init() tea.Cmd {
	return v.loadNotes()
}

// SetSize sets the view dimensions
func (v NotesView) SetSize(width, height int) NotesView {
	v.width = width
	v.height = height
	v.titleInput.Width = v.editorWidth() - 4
	v.bodyInput.SetWidth(v.editorWidth() - 4)
	v.bodyInput.SetHeight(height - 8)
	return v
}

func (v NotesView) listWidth() int {
	w := v.width / 3
	if w < 24 {
		w = 24
	}
	return w
}

func (v NotesView) editorWidth() int {
	return v.width - v.listWidth() - 4
}

// loadNotes reads all notes plus, for each, how many board tasks link to it
func (v NotesView) loadNotes() tea.Cmd {
	return func() tea.Msg {
		notes, err := v.store.ListNotes()
		if err != nil {
			return notesLoadedMsg{err: err}
		}

		linkCounts := make(map[string]int)
		if doc, err := v.store.LoadBoard(); err == nil {
			for _, col := range board.Decode(doc) {
				for _, task := range col.Tasks {
					for _, noteID := range task.LinkedNoteIDs {
						linkCounts[noteID]++
					}
				}
			}
		}

		return notesLoadedMsg{notes: notes, linkCounts: linkCounts}
	}
}

// currentNote returns the note under the cursor, or nil
func (v *NotesView) currentNote() *model.Note {
	if len(v.notes) == 0 || v.cursor >= len(v.notes) {
		return nil
	}
	return &v.notes[v.cursor]
}

// Update handles messages
func (v NotesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		if msg.err != nil {
			v.loadErr = msg.err
			return v, nil
		}
		v.loadErr = nil
		v.notes = msg.notes
		v.linkCounts = msg.linkCounts
		if v.cursor >= len(v.notes) && len(v.notes) > 0 {
			v.cursor = len(v.notes) - 1
		}
		return v, nil

	case noteWrittenMsg:
		if msg.err != nil {
			v.statusMsg = fmt.Sprintf("Save failed: %v", msg.err)
			return v, nil
		}
		return v, v.loadNotes()

	case tea.KeyMsg:
		switch v.mode {
		case NotesModeTitle:
			return v.handleTitleMode(msg)
		case NotesModeBody:
			return v.handleBodyMode(msg)
		case NotesModeConfirmDelete:
			return v.handleConfirmDeleteMode(msg)
		default:
			return v.handleListMode(msg)
		}
	}

	return v, nil
}

// handleListMode handles keys in list mode
func (v NotesView) handleListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.notes)-1 {
			v.cursor++
			v.ensureCursorVisible()
		}
		return v, nil

	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
			v.ensureCursorVisible()
		}
		return v, nil

	case "g":
		v.cursor = 0
		v.scroll = 0
		return v, nil

	case "G":
		if len(v.notes) > 0 {
			v.cursor = len(v.notes) - 1
			v.ensureCursorVisible()
		}
		return v, nil

	case "a":
		v.mode = NotesModeTitle
		v.editingID = ""
		v.titleInput.SetValue("")
		v.bodyInput.SetValue("")
		v.titleInput.Focus()
		return v, nil

	case "enter":
		if note := v.currentNote(); note != nil {
			v.mode = NotesModeTitle
			v.editingID = note.ID
			v.titleInput.SetValue(note.Title)
			v.bodyInput.SetValue(note.Body)
			v.titleInput.Focus()
			v.titleInput.CursorEnd()
		}
		return v, nil

	case "d":
		if v.currentNote() != nil {
			v.mode = NotesModeConfirmDelete
		}
		return v, nil
	}

	return v, nil
}

// handleTitleMode handles keys while editing the title
func (v NotesView) handleTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "tab":
		if strings.TrimSpace(v.titleInput.Value()) == "" {
			v.statusMsg = "Title cannot be empty"
			return v, nil
		}
		v.mode = NotesModeBody
		v.titleInput.Blur()
		return v, v.bodyInput.Focus()
	case "esc":
		return v.leaveEditor()
	}

	var cmd tea.Cmd
	v.titleInput, cmd = v.titleInput.Update(msg)
	return v, cmd
}

// handleBodyMode handles keys while editing the body
func (v NotesView) handleBodyMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v.leaveEditor()
	case "ctrl+s":
		return v.saveNote()
	case "shift+tab":
		v.mode = NotesModeTitle
		v.bodyInput.Blur()
		v.titleInput.Focus()
		return v, nil
	}

	var cmd tea.Cmd
	v.bodyInput, cmd = v.bodyInput.Update(msg)
	return v, cmd
}

// handleConfirmDeleteMode handles keys in delete confirmation mode
func (v NotesView) handleConfirmDeleteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = NotesModeList
		note := v.currentNote()
		if note == nil {
			return v, nil
		}
		id := note.ID
		return v, func() tea.Msg {
			if err := v.store.DeleteNote(id); err != nil {
				return noteWrittenMsg{err: err}
			}
			return noteWrittenMsg{}
		}
	case "n", "N", "esc":
		v.mode = NotesModeList
		return v, nil
	}
	return v, nil
}

// leaveEditor saves the draft if it has a title, then returns to the list
func (v NotesView) leaveEditor() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(v.titleInput.Value()) == "" {
		v.mode = NotesModeList
		v.titleInput.Blur()
		v.bodyInput.Blur()
		return v, nil
	}
	return v.saveNote()
}

// saveNote persists the editor contents
func (v NotesView) saveNote() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(v.titleInput.Value())
	if title == "" {
		v.statusMsg = "Title cannot be empty"
		return v, nil
	}
	body := v.bodyInput.Value()
	id := v.editingID

	v.mode = NotesModeList
	v.titleInput.Blur()
	v.bodyInput.Blur()
	v.editingID = ""

	return v, func() tea.Msg {
		var err error
		if id == "" {
			_, err = v.store.CreateNote(title, body)
		} else {
			err = v.store.UpdateNote(id, title, body)
		}
		return noteWrittenMsg{err: err}
	}
}

// ensureCursorVisible adjusts scroll to keep cursor in view
func (v *NotesView) ensureCursorVisible() {
	visible := v.height - 6
	if visible < 1 {
		visible = 1
	}
	if v.cursor >= v.scroll+visible {
		v.scroll = v.cursor - visible + 1
	}
	if v.cursor < v.scroll {
		v.scroll = v.cursor
	}
}

// View renders the notes view
func (v NotesView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	if v.loadErr != nil {
		return lipgloss.NewStyle().Foreground(t.Error).Render(fmt.Sprintf("Could not load notes: %v", v.loadErr))
	}

	list := v.renderList()
	editor := v.renderEditor()
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, editor)

	return lipgloss.JoinVertical(lipgloss.Left, body, v.renderFooter())
}

// renderList renders the left-hand note list
func (v NotesView) renderList() string {
	t := theme.Current.Theme

	listStyle := lipgloss.NewStyle().
		Width(v.listWidth()).
		Height(v.height - 3).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	if v.mode == NotesModeList {
		listStyle = listStyle.BorderForeground(t.Primary)
	}

	if len(v.notes) == 0 {
		return listStyle.Render(lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Render("No notes yet. Press 'a' to add one."))
	}

	visible := v.height - 6
	if visible < 1 {
		visible = 1
	}
	end := v.scroll + visible
	if end > len(v.notes) {
		end = len(v.notes)
	}

	var lines []string
	for i := v.scroll; i < end; i++ {
		note := v.notes[i]
		title := note.Title
		maxLen := v.listWidth() - 6
		if len(title) > maxLen && maxLen > 3 {
			title = title[:maxLen-3] + "..."
		}

		line := fmt.Sprintf("  %s", title)
		style := lipgloss.NewStyle().Foreground(t.Foreground)
		if i == v.cursor {
			line = fmt.Sprintf("> %s", title)
			style = style.Background(t.Highlight).Bold(true)
		}
		lines = append(lines, style.Width(v.listWidth()-2).Render(line))
	}

	return listStyle.Render(strings.Join(lines, "\n"))
}

// renderEditor renders the right-hand editor or preview pane
func (v NotesView) renderEditor() string {
	t := theme.Current.Theme

	editorStyle := lipgloss.NewStyle().
		Width(v.editorWidth()).
		Height(v.height - 3).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	if v.mode == NotesModeTitle || v.mode == NotesModeBody {
		editorStyle = editorStyle.BorderForeground(t.Primary)

		titleStyle := lipgloss.NewStyle().Foreground(t.Subtle)
		if v.mode == NotesModeTitle {
			titleStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
		}

		return editorStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Title: ")+v.titleInput.View(),
			"",
			v.bodyInput.View(),
		))
	}

	note := v.currentNote()
	if note == nil {
		return editorStyle.Render(lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Render("Select a note to preview it."))
	}

	header := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(note.Title)
	metaText := "Updated " + note.UpdatedAt.Format("2006-01-02 15:04")
	if count := v.linkCounts[note.ID]; count > 0 {
		metaText += fmt.Sprintf(" • linked from %d task(s)", count)
	}
	meta := lipgloss.NewStyle().Foreground(t.Subtle).Render(metaText)

	return editorStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, meta, "", note.Body))
}

// renderFooter renders the mode-dependent footer line
func (v NotesView) renderFooter() string {
	t := theme.Current.Theme

	if v.mode == NotesModeConfirmDelete {
		title := ""
		if note := v.currentNote(); note != nil {
			title = note.Title
		}
		return lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true).
			Render(fmt.Sprintf("Delete '%s'? (y/n)", title))
	}

	if v.statusMsg != "" {
		return lipgloss.NewStyle().Foreground(t.Info).Render(v.statusMsg)
	}

	var hints string
	switch v.mode {
	case NotesModeTitle:
		hints = "enter/tab: edit body • esc: save and close"
	case NotesModeBody:
		hints = "ctrl+s: save • shift+tab: edit title • esc: save and close"
	default:
		hints = "j/k: nav • a: add • enter: edit • d: delete"
	}
	return lipgloss.NewStyle().Foreground(t.Subtle).Render(hints)
}

// IsInputMode returns whether the view is in input mode
func (v NotesView) IsInputMode() bool {
	return v.mode == NotesModeTitle || v.mode == NotesModeBody
}
