package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/maren/tack/internal/board"
	"github.com/maren/tack/internal/model"
	"github.com/maren/tack/internal/notify"
	"github.com/maren/tack/internal/store"
	"github.com/maren/tack/internal/ui/theme"
)

// How often to remind about a work timer left running
const timerReminderInterval = 30 * time.Minute

// Local message types for the kanban view
type boardLoadedMsg struct{ state BoardState }

type boardSavedMsg struct{ err error }

// autosaveMsg fires after the debounce delay; seq guards against saving
// stale snapshots when more edits arrived in the meantime.
type autosaveMsg struct{ seq int }

type timerCheckMsg struct{}

// KanbanMode represents the current input mode
type KanbanMode int

const (
	KanbanModeNormal KanbanMode = iota
	KanbanModeAdd
	KanbanModeEdit
	KanbanModeSearch
	KanbanModeConfirmDelete
	KanbanModeWIPLimit
)

// KanbanView renders the board and owns the in-memory column model.
// Every mutation edits the columns directly and schedules a debounced
// save of the encoded document.
type KanbanView struct {
	store         *store.Store
	notifier      *notify.Notifier
	autosaveDelay time.Duration
	width         int
	height        int

	state BoardState

	// Navigation state
	currentColumn int
	cursorRow     int
	columnScroll  map[int]int

	// Input mode
	mode      KanbanMode
	textInput textinput.Model

	editTaskID   string
	deleteTaskID string

	searchFilter string
	statusMsg    string

	dirtySeq int
}

// NewKanbanView creates a new kanban view
func NewKanbanView(database *store.Store, notifier *notify.Notifier, autosaveDelay time.Duration) KanbanView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	return KanbanView{
		store:         database,
		notifier:      notifier,
		autosaveDelay: autosaveDelay,
		state:         BoardIdle{},
		textInput:     ti,
		columnScroll:  make(map[int]int),
	}
}

// Init initializes the kanban view
func (v KanbanView) Init() tea.Cmd {
	return v.loadBoard()
}

// SetSize sets the view dimensions
func (v KanbanView) SetSize(width, height int) KanbanView {
	v.width = width
	v.height = height
	return v
}

// loadBoard reads the persisted document and decodes it into columns.
// Decode never fails, so load errors can only come from the store.
func (v KanbanView) loadBoard() tea.Cmd {
	return func() tea.Msg {
		text, err := v.store.LoadBoard()
		if err != nil {
			return boardLoadedMsg{state: BoardFailed{Err: err}}
		}
		columns := board.Decode(text)
		if len(columns) == 0 {
			columns = model.DefaultColumns()
		}
		return boardLoadedMsg{state: BoardReady{Columns: columns}}
	}
}

// columns returns the live column model, or nil when the board is not ready
func (v *KanbanView) columns() []model.KanbanColumn {
	if ready, ok := v.state.(BoardReady); ok {
		return ready.Columns
	}
	return nil
}

// markDirty bumps the edit sequence and schedules a debounced autosave
func (v *KanbanView) markDirty() tea.Cmd {
	v.dirtySeq++
	seq := v.dirtySeq
	return tea.Tick(v.autosaveDelay, func(time.Time) tea.Msg {
		return autosaveMsg{seq: seq}
	})
}

// notifyDueTasks sends reminders for open tasks due within the hour
func (v KanbanView) notifyDueTasks(columns []model.KanbanColumn) tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		for _, col := range columns {
			for _, task := range col.Tasks {
				if task.IsCompleted || task.DueDate == nil {
					continue
				}
				if dueIn := task.DueDate.Sub(now); dueIn < time.Hour {
					v.notifier.SendDueReminder(task.Title, dueIn)
				}
			}
		}
		return nil
	}
}

// notifyRunningTimers reminds about work timers left running
func (v KanbanView) notifyRunningTimers() tea.Cmd {
	columns := v.columns()
	return func() tea.Msg {
		for _, col := range columns {
			for _, task := range col.Tasks {
				if task.Timer == nil || task.Timer.IsPaused {
					continue
				}
				if elapsed := task.Timer.Elapsed(); elapsed >= timerReminderInterval {
					v.notifier.SendTimerRunning(task.Title, elapsed)
				}
			}
		}
		return nil
	}
}

func scheduleTimerCheck() tea.Cmd {
	return tea.Tick(timerReminderInterval, func(time.Time) tea.Msg {
		return timerCheckMsg{}
	})
}

// saveBoard encodes the current snapshot synchronously, then writes it
// in a command so the UI never blocks on the database.
func (v KanbanView) saveBoard() tea.Cmd {
	text := board.Encode(v.columns())
	return func() tea.Msg {
		return boardSavedMsg{err: v.store.SaveBoard(text)}
	}
}

// Update handles messages
func (v KanbanView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		v.state = msg.state
		v.currentColumn = 0
		v.cursorRow = 0
		v.columnScroll = make(map[int]int)
		if ready, ok := msg.state.(BoardReady); ok {
			return v, tea.Batch(v.notifyDueTasks(ready.Columns), scheduleTimerCheck())
		}
		return v, nil

	case timerCheckMsg:
		return v, tea.Batch(v.notifyRunningTimers(), scheduleTimerCheck())

	case boardSavedMsg:
		if msg.err != nil {
			v.statusMsg = fmt.Sprintf("Save failed: %v", msg.err)
		}
		return v, nil

	case autosaveMsg:
		// Only the latest edit's tick saves; earlier ticks are stale.
		if msg.seq == v.dirtySeq && v.columns() != nil {
			return v, v.saveBoard()
		}
		return v, nil

	case tea.KeyMsg:
		if _, ok := v.state.(BoardReady); !ok {
			return v, nil
		}
		switch v.mode {
		case KanbanModeAdd:
			return v.handleAddMode(msg)
		case KanbanModeEdit:
			return v.handleEditMode(msg)
		case KanbanModeSearch:
			return v.handleSearchMode(msg)
		case KanbanModeConfirmDelete:
			return v.handleConfirmDeleteMode(msg)
		case KanbanModeWIPLimit:
			return v.handleWIPLimitMode(msg)
		default:
			return v.handleNormalMode(msg)
		}
	}

	if v.mode == KanbanModeAdd || v.mode == KanbanModeEdit || v.mode == KanbanModeSearch || v.mode == KanbanModeWIPLimit {
		var cmd tea.Cmd
		v.textInput, cmd = v.textInput.Update(msg)
		return v, cmd
	}

	return v, nil
}

// handleNormalMode handles keys in normal mode
func (v KanbanView) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := v.columns()

	switch msg.String() {
	// Column navigation
	case "h", "left":
		if v.currentColumn > 0 {
			v.currentColumn--
			v.clampCursor()
		}
		return v, nil

	case "l", "right":
		if v.currentColumn < len(cols)-1 {
			v.currentColumn++
			v.clampCursor()
		}
		return v, nil

	// Row navigation
	case "j", "down":
		col := v.filteredTasks(v.currentColumn)
		if v.cursorRow < len(col)-1 {
			v.cursorRow++
			v.ensureCursorVisible()
		}
		return v, nil

	case "k", "up":
		if v.cursorRow > 0 {
			v.cursorRow--
			v.ensureCursorVisible()
		}
		return v, nil

	case "g":
		v.cursorRow = 0
		v.columnScroll[v.currentColumn] = 0
		return v, nil

	case "G":
		col := v.filteredTasks(v.currentColumn)
		if len(col) > 0 {
			v.cursorRow = len(col) - 1
			v.ensureCursorVisible()
		}
		return v, nil

	// Move task between columns
	case "H":
		return v.moveTask(-1)

	case "L":
		return v.moveTask(1)

	// Reorder within column
	case "K":
		return v.reorderTask(-1)

	case "J":
		return v.reorderTask(1)

	// Toggle done
	case "tab":
		return v.toggleCurrentTask()

	// Add task
	case "a":
		v.mode = KanbanModeAdd
		v.textInput.SetValue("")
		v.textInput.Placeholder = "New task..."
		v.textInput.Focus()
		return v, nil

	// Edit task title
	case "enter":
		if task := v.currentTask(); task != nil {
			v.mode = KanbanModeEdit
			v.editTaskID = task.ID
			v.textInput.SetValue(task.Title)
			v.textInput.Placeholder = ""
			v.textInput.Focus()
			v.textInput.CursorEnd()
		}
		return v, nil

	// Delete task
	case "d":
		if task := v.currentTask(); task != nil {
			v.deleteTaskID = task.ID
			v.mode = KanbanModeConfirmDelete
		}
		return v, nil

	// Cycle priority
	case "p":
		return v.cyclePriority()

	// Toggle work timer
	case "s":
		return v.toggleTimer()

	// Collapse column
	case "c":
		cols[v.currentColumn].Collapsed = !cols[v.currentColumn].Collapsed
		return v, v.markDirty()

	// Set WIP limit
	case "W":
		v.mode = KanbanModeWIPLimit
		v.textInput.SetValue("")
		if limit := cols[v.currentColumn].WIPLimit; limit != nil {
			v.textInput.SetValue(strconv.Itoa(*limit))
		}
		v.textInput.Placeholder = "WIP limit (empty to clear)"
		v.textInput.Focus()
		return v, nil

	// Search
	case "/":
		v.mode = KanbanModeSearch
		v.textInput.SetValue(v.searchFilter)
		v.textInput.Placeholder = "Search..."
		v.textInput.Focus()
		return v, nil

	// Clear filters
	case "esc":
		if v.searchFilter != "" {
			v.searchFilter = ""
			v.statusMsg = "Filter cleared"
		}
		return v, nil
	}

	return v, nil
}

// handleAddMode handles keys in add mode
func (v KanbanView) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(v.textInput.Value())
		if title != "" {
			v.mode = KanbanModeNormal
			v.textInput.Blur()
			return v.createTask(title)
		}
		return v, nil
	case "esc":
		v.mode = KanbanModeNormal
		v.textInput.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

// handleEditMode handles keys in edit mode
func (v KanbanView) handleEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(v.textInput.Value())
		if title != "" && v.editTaskID != "" {
			v.mode = KanbanModeNormal
			v.textInput.Blur()
			taskID := v.editTaskID
			v.editTaskID = ""
			if task := v.findTask(taskID); task != nil {
				task.Title = title
				task.UpdatedAt = time.Now()
				return v, v.markDirty()
			}
		}
		return v, nil
	case "esc":
		v.mode = KanbanModeNormal
		v.textInput.Blur()
		v.editTaskID = ""
		return v, nil
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

// handleSearchMode handles keys in search mode
func (v KanbanView) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		v.searchFilter = strings.TrimSpace(v.textInput.Value())
		v.mode = KanbanModeNormal
		v.textInput.Blur()
		v.cursorRow = 0
		v.columnScroll = make(map[int]int)
		return v, nil
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

// handleConfirmDeleteMode handles keys in delete confirmation mode
func (v KanbanView) handleConfirmDeleteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = KanbanModeNormal
		taskID := v.deleteTaskID
		v.deleteTaskID = ""
		return v.deleteTask(taskID)
	case "n", "N", "esc":
		v.mode = KanbanModeNormal
		v.deleteTaskID = ""
		return v, nil
	}
	return v, nil
}

// handleWIPLimitMode handles keys when entering a WIP limit
func (v KanbanView) handleWIPLimitMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.mode = KanbanModeNormal
		v.textInput.Blur()
		cols := v.columns()
		value := strings.TrimSpace(v.textInput.Value())
		if value == "" {
			cols[v.currentColumn].WIPLimit = nil
			return v, v.markDirty()
		}
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 1 {
			v.statusMsg = "WIP limit must be a positive number"
			return v, nil
		}
		cols[v.currentColumn].WIPLimit = &limit
		return v, v.markDirty()
	case "esc":
		v.mode = KanbanModeNormal
		v.textInput.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.textInput, cmd = v.textInput.Update(msg)
	return v, cmd
}

// currentTask returns the task under the cursor, or nil
func (v *KanbanView) currentTask() *model.Task {
	col := v.filteredTasks(v.currentColumn)
	if len(col) == 0 || v.cursorRow >= len(col) {
		return nil
	}
	return v.findTask(col[v.cursorRow].ID)
}

// findTask looks a task up by ID across all columns
func (v *KanbanView) findTask(id string) *model.Task {
	cols := v.columns()
	for i := range cols {
		for j := range cols[i].Tasks {
			if cols[i].Tasks[j].ID == id {
				return &cols[i].Tasks[j]
			}
		}
	}
	return nil
}

// renumber rewrites task order fields to match slice positions
func renumber(tasks []model.Task) {
	for i := range tasks {
		tasks[i].Order = i
	}
}

// clampCursor ensures cursor is valid for current column
func (v *KanbanView) clampCursor() {
	col := v.filteredTasks(v.currentColumn)
	if v.cursorRow >= len(col) {
		if len(col) > 0 {
			v.cursorRow = len(col) - 1
		} else {
			v.cursorRow = 0
		}
	}
	if v.cursorRow < 0 {
		v.cursorRow = 0
	}
	v.ensureCursorVisible()
}

// ensureCursorVisible adjusts scroll to keep cursor in view
func (v *KanbanView) ensureCursorVisible() {
	visibleItems := v.visibleItemCount()
	if visibleItems <= 0 {
		visibleItems = 5
	}

	col := v.currentColumn

	if v.cursorRow >= v.columnScroll[col]+visibleItems {
		v.columnScroll[col] = v.cursorRow - visibleItems + 1
	}

	if v.cursorRow < v.columnScroll[col] {
		v.columnScroll[col] = v.cursorRow
	}
}

// visibleItemCount returns how many items fit in the column height
func (v *KanbanView) visibleItemCount() int {
	// Header row, borders and scroll indicators eat 7 lines
	availableHeight := v.height - 7
	if availableHeight < 1 {
		return 1
	}
	return availableHeight
}

// moveTask moves the current task to an adjacent column
func (v KanbanView) moveTask(direction int) (tea.Model, tea.Cmd) {
	cols := v.columns()
	task := v.currentTask()
	if task == nil {
		return v, nil
	}

	target := v.currentColumn + direction
	if target < 0 || target >= len(cols) {
		return v, nil
	}

	src := &cols[v.currentColumn]
	dst := &cols[target]

	if dst.AtWIPLimit() {
		v.statusMsg = fmt.Sprintf("%s is at its WIP limit", dst.Title())
		return v, nil
	}

	idx := taskIndex(src.Tasks, task.ID)
	if idx < 0 {
		return v, nil
	}
	moved := src.Tasks[idx]
	src.Tasks = append(src.Tasks[:idx], src.Tasks[idx+1:]...)

	moved.Status = dst.Status
	moved.UpdatedAt = time.Now()
	if dst.Status == model.StatusDone && !moved.IsCompleted {
		now := time.Now()
		moved.IsCompleted = true
		moved.CompletedAt = &now
	}
	dst.Tasks = append(dst.Tasks, moved)

	renumber(src.Tasks)
	renumber(dst.Tasks)

	v.currentColumn = target
	v.cursorRow = len(v.filteredTasks(target)) - 1
	v.clampCursor()
	return v, v.markDirty()
}

// reorderTask moves the current task up or down within its column
func (v KanbanView) reorderTask(direction int) (tea.Model, tea.Cmd) {
	cols := v.columns()
	task := v.currentTask()
	if task == nil {
		return v, nil
	}

	tasks := cols[v.currentColumn].Tasks
	idx := taskIndex(tasks, task.ID)
	swap := idx + direction
	if idx < 0 || swap < 0 || swap >= len(tasks) {
		return v, nil
	}

	tasks[idx], tasks[swap] = tasks[swap], tasks[idx]
	tasks[idx].UpdatedAt = time.Now()
	tasks[swap].UpdatedAt = time.Now()
	renumber(tasks)

	if v.searchFilter == "" {
		v.cursorRow = swap
		v.ensureCursorVisible()
	}
	return v, v.markDirty()
}

// toggleCurrentTask toggles the done flag of the current task
func (v KanbanView) toggleCurrentTask() (tea.Model, tea.Cmd) {
	task := v.currentTask()
	if task == nil {
		return v, nil
	}

	task.IsCompleted = !task.IsCompleted
	task.UpdatedAt = time.Now()
	if task.IsCompleted {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	return v, v.markDirty()
}

// createTask creates a new task at the bottom of the current column
func (v KanbanView) createTask(title string) (tea.Model, tea.Cmd) {
	cols := v.columns()
	col := &cols[v.currentColumn]

	now := time.Now()
	task := model.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    col.Status,
		Priority:  model.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
		Order:     len(col.Tasks),
	}
	if err := task.Validate(); err != nil {
		v.statusMsg = err.Error()
		return v, nil
	}

	col.Tasks = append(col.Tasks, task)
	return v, v.markDirty()
}

// deleteTask removes a task from the board
func (v KanbanView) deleteTask(taskID string) (tea.Model, tea.Cmd) {
	cols := v.columns()
	for i := range cols {
		idx := taskIndex(cols[i].Tasks, taskID)
		if idx < 0 {
			continue
		}
		cols[i].Tasks = append(cols[i].Tasks[:idx], cols[i].Tasks[idx+1:]...)
		renumber(cols[i].Tasks)
		v.clampCursor()
		return v, v.markDirty()
	}
	return v, nil
}

// cyclePriority cycles the priority of the current task
func (v KanbanView) cyclePriority() (tea.Model, tea.Cmd) {
	task := v.currentTask()
	if task == nil {
		return v, nil
	}

	switch task.Priority {
	case model.PriorityLow:
		task.Priority = model.PriorityMedium
	case model.PriorityMedium:
		task.Priority = model.PriorityHigh
	case model.PriorityHigh:
		task.Priority = model.PriorityUrgent
	case model.PriorityUrgent:
		task.Priority = model.PriorityLow
	default:
		task.Priority = model.PriorityMedium
	}
	task.UpdatedAt = time.Now()
	return v, v.markDirty()
}

// toggleTimer starts, pauses or resumes the work timer on the current task
func (v KanbanView) toggleTimer() (tea.Model, tea.Cmd) {
	task := v.currentTask()
	if task == nil {
		return v, nil
	}

	now := time.Now()
	switch {
	case task.Timer == nil:
		task.Timer = &model.Timer{StartedAt: now}
		v.statusMsg = "Timer started"
	case task.Timer.IsPaused:
		task.Timer.StartedAt = now
		task.Timer.IsPaused = false
		v.statusMsg = "Timer resumed"
	default:
		task.Timer.PausedDuration = task.Timer.Elapsed()
		task.Timer.IsPaused = true
		v.statusMsg = "Timer paused"
	}
	task.UpdatedAt = now
	return v, v.markDirty()
}

func taskIndex(tasks []model.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// filteredTasks returns tasks for a column after applying the search filter
func (v *KanbanView) filteredTasks(colIndex int) []model.Task {
	cols := v.columns()
	if colIndex < 0 || colIndex >= len(cols) {
		return nil
	}
	tasks := cols[colIndex].Tasks
	if v.searchFilter == "" {
		return tasks
	}

	var filtered []model.Task
	searchLower := strings.ToLower(v.searchFilter)
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Title), searchLower) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// View renders the kanban board
func (v KanbanView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme

	switch state := v.state.(type) {
	case BoardIdle, BoardLoading:
		return lipgloss.NewStyle().Foreground(t.Subtle).Render("Loading board...")
	case BoardFailed:
		return lipgloss.NewStyle().Foreground(t.Error).Render(fmt.Sprintf("Could not load board: %v", state.Err))
	}

	cols := v.columns()

	// Collapsed columns render as a narrow strip; the rest share the width
	expanded := 0
	for _, c := range cols {
		if !c.Collapsed {
			expanded++
		}
	}
	if expanded == 0 {
		expanded = 1
	}
	colWidth := (v.width - 4 - 4*(len(cols)-expanded)) / expanded
	if colWidth < 25 {
		colWidth = 25
	}

	var headers []string
	var rendered []string
	visibleItems := v.visibleItemCount()

	for i := range cols {
		col := &cols[i]
		isActive := i == v.currentColumn
		width := colWidth
		if col.Collapsed {
			width = 4
		}

		headers = append(headers, v.renderHeader(col, i, width, isActive))
		rendered = append(rendered, v.renderColumn(col, i, width, isActive, visibleItems))
	}

	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, headers...)
	columnsRow := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	footer := v.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, headerRow, columnsRow, footer)
}

// renderHeader renders one column header
func (v KanbanView) renderHeader(col *model.KanbanColumn, index, width int, active bool) string {
	t := theme.Current.Theme

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.StatusColor(col.Status)).
		Width(width).
		Align(lipgloss.Center)
	if active {
		style = style.Background(t.Highlight)
	}

	if col.Collapsed {
		return style.Render("▸")
	}

	tasks := v.filteredTasks(index)
	header := fmt.Sprintf("%s (%d)", col.Title(), len(tasks))
	if col.WIPLimit != nil {
		header = fmt.Sprintf("%s (%d/%d)", col.Title(), len(col.Tasks), *col.WIPLimit)
		if col.AtWIPLimit() {
			style = style.Foreground(t.Error)
		}
	}
	if v.searchFilter != "" && len(tasks) != len(col.Tasks) {
		header += " *"
	}
	return style.Render(header)
}

// renderColumn renders one column body
func (v KanbanView) renderColumn(col *model.KanbanColumn, index, width int, active bool, visibleItems int) string {
	t := theme.Current.Theme

	columnStyle := lipgloss.NewStyle().
		Width(width).
		Height(v.height - 3).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
	if active {
		columnStyle = columnStyle.BorderForeground(t.Primary)
	}

	if col.Collapsed {
		return columnStyle.Render(lipgloss.NewStyle().Foreground(t.Subtle).Render("…"))
	}

	tasks := v.filteredTasks(index)
	scrollOffset := v.columnScroll[index]

	startIdx := scrollOffset
	endIdx := scrollOffset + visibleItems
	if startIdx > len(tasks) {
		startIdx = len(tasks)
	}
	if endIdx > len(tasks) {
		endIdx = len(tasks)
	}

	var items []string
	if scrollOffset > 0 {
		items = append(items, lipgloss.NewStyle().
			Foreground(t.Subtle).
			Width(width-4).
			Align(lipgloss.Center).
			Render(fmt.Sprintf("↑ %d more", scrollOffset)))
	}

	for j := startIdx; j < endIdx; j++ {
		items = append(items, v.renderCard(tasks[j], width, active && j == v.cursorRow))
	}

	if endIdx < len(tasks) {
		items = append(items, lipgloss.NewStyle().
			Foreground(t.Subtle).
			Width(width-4).
			Align(lipgloss.Center).
			Render(fmt.Sprintf("↓ %d more", len(tasks)-endIdx)))
	}

	content := strings.Join(items, "\n")
	if len(tasks) == 0 {
		content = lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Render("(empty)")
	}

	return columnStyle.Render(content)
}

// renderCard renders a single task line
func (v KanbanView) renderCard(task model.Task, width int, selected bool) string {
	t := theme.Current.Theme

	cardStyle := lipgloss.NewStyle().
		Width(width - 4).
		Padding(0, 1).
		Foreground(t.Foreground)
	if selected {
		cardStyle = cardStyle.Background(t.Highlight)
	}

	priorityStyle := lipgloss.NewStyle().Foreground(t.PriorityColor(task.Priority))
	var priorityChar string
	switch task.Priority {
	case model.PriorityUrgent:
		priorityChar = priorityStyle.Render("!")
	case model.PriorityHigh:
		priorityChar = priorityStyle.Render("▲")
	case model.PriorityLow:
		priorityChar = priorityStyle.Render("▽")
	default:
		priorityChar = priorityStyle.Render("●")
	}

	// Subtask progress (done/total)
	var subtaskStr string
	subtaskLen := 0
	if done, total := task.SubtaskProgress(); total > 0 {
		style := lipgloss.NewStyle().Foreground(t.Subtle)
		if done == total {
			style = lipgloss.NewStyle().Foreground(t.Success)
		}
		plain := fmt.Sprintf(" (%d/%d)", done, total)
		subtaskStr = style.Render(plain)
		subtaskLen = len(plain)
	}

	// Tag dots
	var tagStr string
	for _, tag := range task.Tags {
		tagStr += lipgloss.NewStyle().Foreground(t.TagColor(tag.Color)).Render("●")
	}
	if tagStr != "" {
		tagStr = " " + tagStr
	}

	// Timer indicator
	var timerStr string
	if task.Timer != nil {
		if task.Timer.IsPaused {
			timerStr = lipgloss.NewStyle().Foreground(t.Subtle).Render(" ⏸")
		} else {
			timerStr = lipgloss.NewStyle().Foreground(t.Warning).Render(" ⏱")
		}
	}

	title := task.Title
	maxTitleLen := width - 10 - subtaskLen - 2*len(task.Tags)
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	titleStyle := lipgloss.NewStyle()
	if task.IsCompleted {
		titleStyle = titleStyle.Foreground(t.Subtle).Strikethrough(true)
	} else if task.IsOverdue() {
		titleStyle = titleStyle.Foreground(t.Error)
	}

	return cardStyle.Render(fmt.Sprintf("%s %s%s%s%s", priorityChar, titleStyle.Render(title), subtaskStr, tagStr, timerStr))
}

// renderFooter renders the mode-dependent footer line
func (v KanbanView) renderFooter() string {
	t := theme.Current.Theme

	inputStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1).
		Width(v.width - 4)

	switch v.mode {
	case KanbanModeAdd:
		return inputStyle.Render("Add task: " + v.textInput.View())
	case KanbanModeEdit:
		return inputStyle.Render("Edit: " + v.textInput.View())
	case KanbanModeSearch:
		return inputStyle.Render("Search: " + v.textInput.View())
	case KanbanModeWIPLimit:
		return inputStyle.Render("WIP limit: " + v.textInput.View())
	case KanbanModeConfirmDelete:
		taskTitle := ""
		if task := v.findTask(v.deleteTaskID); task != nil {
			taskTitle = task.Title
		}
		return lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true).
			Render(fmt.Sprintf("Delete '%s'? (y/n)", taskTitle))
	}

	if v.statusMsg != "" {
		return lipgloss.NewStyle().Foreground(t.Info).Render(v.statusMsg)
	}
	if v.searchFilter != "" {
		filter := lipgloss.NewStyle().Foreground(t.Info).Render("[Search: " + v.searchFilter + "] ")
		return filter + lipgloss.NewStyle().Foreground(t.Subtle).Render("esc: clear")
	}

	hints := "h/l: column • j/k: nav • H/L: move • J/K: reorder • a: add • d: del • s: timer • c: collapse • /: search"
	return lipgloss.NewStyle().Foreground(t.Subtle).Render(hints)
}

// IsInputMode returns whether the view is in input mode
func (v KanbanView) IsInputMode() bool {
	return v.mode != KanbanModeNormal
}
