package model

// KanbanColumn holds the ordered tasks for one status bucket
type KanbanColumn struct {
	Status    Status
	Tasks     []Task
	Collapsed bool
	WIPLimit  *int
}

// Title returns the column display name
func (c *KanbanColumn) Title() string {
	return c.Status.Label()
}

// AtWIPLimit returns true when the column holds its WIP limit or more
func (c *KanbanColumn) AtWIPLimit() bool {
	return c.WIPLimit != nil && len(c.Tasks) >= *c.WIPLimit
}

// DefaultColumns returns the empty board layout for a fresh database
func DefaultColumns() []KanbanColumn {
	cols := make([]KanbanColumn, 0, len(Statuses()))
	for _, s := range Statuses() {
		cols = append(cols, KanbanColumn{Status: s})
	}
	return cols
}
