// Package board converts between the in-memory kanban model and the flat
// JSON document persisted by the store. The document keeps columns and
// tasks in two independent lists; a task references its column only
// through its status string.
package board

// boardDocument is the serialization shape. Fields never use omitempty:
// default values are always emitted so the document shape stays stable
// across versions, and unknown fields are ignored on read.
type boardDocument struct {
	Columns []columnRecord `json:"columns"`
	Tasks   []taskRecord   `json:"tasks"`
}

type columnRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Order     int    `json:"order"`
	Collapsed bool   `json:"collapsed"`
	WIPLimit  *int   `json:"wipLimit"`
}

// taskRecord mirrors model.Task with enums as string names, timestamps as
// epoch milliseconds and durations as millisecond counts.
type taskRecord struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	Tags                []tagRecord     `json:"tags"`
	StoryPoints         *int            `json:"storyPoints"`
	Assignee            *string         `json:"assignee"`
	DueDate             *int64          `json:"dueDate"`
	StartDate           *int64          `json:"startDate"`
	EstimatedHours      *float64        `json:"estimatedHours"`
	ActualHours         *float64        `json:"actualHours"`
	Subtasks            []subtaskRecord `json:"subtasks"`
	LinkedNoteIDs       []string        `json:"linkedNoteIds"`
	TimerStartedAt      *int64          `json:"timerStartedAt"`
	TimerPausedDuration int64           `json:"timerPausedDuration"`
	TimerIsPaused       bool            `json:"timerIsPaused"`
	IsActive            bool            `json:"isActive"`
	IsCompleted         bool            `json:"isCompleted"`
	CreatedAt           int64           `json:"createdAt"`
	UpdatedAt           int64           `json:"updatedAt"`
	CompletedAt         *int64          `json:"completedAt"`
	Order               int             `json:"order"`
}

type subtaskRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"isDone"`
	Order int    `json:"order"`
}

type tagRecord struct {
	Label string `json:"label"`
	Color string `json:"color"`
}
