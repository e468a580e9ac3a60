package model

import (
	"testing"
	"time"
)

func TestParseStatusFallsBackToTodo(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"TODO", StatusTodo},
		{"IN_PROGRESS", StatusInProgress},
		{"DONE", StatusDone},
		{"SHIPPED", StatusTodo},
		{"todo", StatusTodo},
		{"", StatusTodo},
	}

	for _, tt := range tests {
		if got := ParseStatus(tt.in); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePriorityFallsBackToMedium(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"LOW", PriorityLow},
		{"MEDIUM", PriorityMedium},
		{"HIGH", PriorityHigh},
		{"URGENT", PriorityUrgent},
		{"URGENT_MAX", PriorityMedium},
		{"high", PriorityMedium},
		{"", PriorityMedium},
	}

	for _, tt := range tests {
		if got := ParsePriority(tt.in); got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTagColorFallsBackToGray(t *testing.T) {
	if got := ParseTagColor("BLUE"); got != TagBlue {
		t.Errorf("ParseTagColor(BLUE) = %q, want %q", got, TagBlue)
	}
	if got := ParseTagColor("CHARTREUSE"); got != TagGray {
		t.Errorf("ParseTagColor(CHARTREUSE) = %q, want %q", got, TagGray)
	}
	if got := ParseTagColor(""); got != TagGray {
		t.Errorf("ParseTagColor(\"\") = %q, want %q", got, TagGray)
	}
}

func TestTimerElapsed(t *testing.T) {
	paused := &Timer{
		StartedAt:      time.Now().Add(-time.Hour),
		PausedDuration: 10 * time.Minute,
		IsPaused:       true,
	}
	if got := paused.Elapsed(); got != 10*time.Minute {
		t.Errorf("paused Elapsed() = %v, want %v", got, 10*time.Minute)
	}

	running := &Timer{
		StartedAt:      time.Now().Add(-5 * time.Minute),
		PausedDuration: 10 * time.Minute,
	}
	got := running.Elapsed()
	if got < 14*time.Minute || got > 16*time.Minute {
		t.Errorf("running Elapsed() = %v, want about %v", got, 15*time.Minute)
	}
}

func TestTaskValidate(t *testing.T) {
	valid := Task{ID: "t1", Title: "Write release notes"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid task: unexpected error %v", err)
	}

	missingTitle := Task{ID: "t2"}
	if err := missingTitle.Validate(); err == nil {
		t.Error("expected error for missing title")
	}

	missingID := Task{Title: "No id"}
	if err := missingID.Validate(); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestIsOverdue(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	overdue := Task{DueDate: &past}
	if !overdue.IsOverdue() {
		t.Error("task past its due date should be overdue")
	}

	completed := Task{DueDate: &past, IsCompleted: true}
	if completed.IsOverdue() {
		t.Error("completed task should not be overdue")
	}

	upcoming := Task{DueDate: &future}
	if upcoming.IsOverdue() {
		t.Error("task due in the future should not be overdue")
	}

	undated := Task{}
	if undated.IsOverdue() {
		t.Error("task without a due date should not be overdue")
	}
}

func TestIsDueToday(t *testing.T) {
	soon := time.Now().Add(time.Minute)
	nextWeek := time.Now().AddDate(0, 0, 7)

	today := Task{DueDate: &soon}
	if !today.IsDueToday() {
		t.Error("task due within the day should be due today")
	}

	later := Task{DueDate: &nextWeek}
	if later.IsDueToday() {
		t.Error("task due next week should not be due today")
	}
}

func TestSubtaskProgress(t *testing.T) {
	task := Task{
		Subtasks: []Subtask{
			{ID: "s1", Title: "One", Done: true},
			{ID: "s2", Title: "Two"},
			{ID: "s3", Title: "Three", Done: true},
		},
	}

	done, total := task.SubtaskProgress()
	if done != 2 || total != 3 {
		t.Errorf("SubtaskProgress() = (%d, %d), want (2, 3)", done, total)
	}

	empty := Task{}
	done, total = empty.SubtaskProgress()
	if done != 0 || total != 0 {
		t.Errorf("SubtaskProgress() on empty = (%d, %d), want (0, 0)", done, total)
	}
}

func TestAtWIPLimit(t *testing.T) {
	limit := 2
	col := KanbanColumn{
		Status:   StatusInProgress,
		WIPLimit: &limit,
		Tasks:    []Task{{ID: "a"}, {ID: "b"}},
	}
	if !col.AtWIPLimit() {
		t.Error("column holding its limit should report AtWIPLimit")
	}

	col.Tasks = col.Tasks[:1]
	if col.AtWIPLimit() {
		t.Error("column under its limit should not report AtWIPLimit")
	}

	unlimited := KanbanColumn{Status: StatusTodo, Tasks: make([]Task, 50)}
	if unlimited.AtWIPLimit() {
		t.Error("column without a limit should never report AtWIPLimit")
	}
}

func TestDefaultColumns(t *testing.T) {
	cols := DefaultColumns()
	if len(cols) != 3 {
		t.Fatalf("DefaultColumns() returned %d columns, want 3", len(cols))
	}

	want := []Status{StatusTodo, StatusInProgress, StatusDone}
	for i, col := range cols {
		if col.Status != want[i] {
			t.Errorf("column %d status = %q, want %q", i, col.Status, want[i])
		}
		if len(col.Tasks) != 0 {
			t.Errorf("column %d should start empty", i)
		}
	}
}
