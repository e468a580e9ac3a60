package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Status identifies the kanban column a task lives in
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Statuses returns all statuses in display order
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// ParseStatus resolves a stored status name. Unknown names fall back to
// StatusTodo so stale persisted data never blocks loading a board.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(s)
	}
	return StatusTodo
}

// Label returns the display name for the status
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return "To Do"
	}
}

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// ParsePriority resolves a stored priority name, falling back to medium
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s)
	}
	return PriorityMedium
}

// Timer tracks active work time on a task. PausedDuration accumulates
// time from earlier run segments; StartedAt marks the current segment.
type Timer struct {
	StartedAt      time.Time
	PausedDuration time.Duration
	IsPaused       bool
}

// Elapsed returns the total tracked time so far
func (t *Timer) Elapsed() time.Duration {
	if t.IsPaused {
		return t.PausedDuration
	}
	return t.PausedDuration + time.Since(t.StartedAt)
}

// Subtask is a checklist item nested under a task
type Subtask struct {
	ID    string
	Title string
	Done  bool
	Order int
}

// Task represents a card on the board
type Task struct {
	ID             string
	Title          string
	Description    string
	Status         Status
	Priority       Priority
	Tags           []Tag
	StoryPoints    *int
	Assignee       *string
	DueDate        *time.Time
	StartDate      *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Subtasks       []Subtask
	LinkedNoteIDs  []string
	Timer          *Timer
	IsActive       bool
	IsCompleted    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
	Order          int
}

// Validate checks user-entered fields before a task is accepted
func (t *Task) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.ID, validation.Required),
		validation.Field(&t.Title, validation.Required, validation.Length(1, 256)),
	)
}

// IsOverdue returns true if the task is past its due date
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil || t.IsCompleted {
		return false
	}
	return time.Now().After(*t.DueDate)
}

// IsDueToday returns true if the task is due today
func (t *Task) IsDueToday() bool {
	if t.DueDate == nil {
		return false
	}
	now := time.Now()
	return t.DueDate.Year() == now.Year() &&
		t.DueDate.YearDay() == now.YearDay()
}

// PriorityWeight returns a numeric weight for sorting by priority
func (t *Task) PriorityWeight() int {
	switch t.Priority {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// SubtaskProgress returns done and total subtask counts
func (t *Task) SubtaskProgress() (done, total int) {
	for _, st := range t.Subtasks {
		total++
		if st.Done {
			done++
		}
	}
	return done, total
}
