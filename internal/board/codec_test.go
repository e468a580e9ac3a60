package board

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/maren/tack/internal/model"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

// millis returns a time with millisecond precision, which is what the
// document format preserves.
func millis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	due := millis(1700000000000)
	start := millis(1690000000000)
	completed := millis(1710000000000)

	taskA := model.Task{
		ID:          "task-a",
		Title:       "Write release notes",
		Description: "Cover the board rework",
		Status:      model.StatusTodo,
		Priority:    model.PriorityHigh,
		Tags: []model.Tag{
			{Label: "docs", Color: model.TagBlue},
			{Label: "release", Color: model.TagGreen},
		},
		StoryPoints:    intPtr(3),
		Assignee:       strPtr("maren"),
		DueDate:        &due,
		StartDate:      &start,
		EstimatedHours: floatPtr(2.5),
		ActualHours:    floatPtr(1.25),
		Subtasks: []model.Subtask{
			{ID: "sub-2", Title: "Proofread", Done: false, Order: 1},
			{ID: "sub-1", Title: "Draft", Done: true, Order: 0},
		},
		LinkedNoteIDs: []string{"note-1", "note-2"},
		Timer: &model.Timer{
			StartedAt:      millis(1705000000000),
			PausedDuration: 90 * time.Second,
			IsPaused:       true,
		},
		IsActive:  true,
		CreatedAt: millis(1680000000000),
		UpdatedAt: millis(1706000000000),
		Order:     0,
	}
	taskB := model.Task{
		ID:        "task-b",
		Title:     "Ship it",
		Status:    model.StatusTodo,
		Priority:  model.PriorityMedium,
		CreatedAt: millis(1681000000000),
		UpdatedAt: millis(1681000000000),
		Order:     1,
	}
	doneTask := model.Task{
		ID:          "task-c",
		Title:       "Set up repo",
		Status:      model.StatusDone,
		Priority:    model.PriorityLow,
		IsCompleted: true,
		CompletedAt: &completed,
		CreatedAt:   millis(1670000000000),
		UpdatedAt:   millis(1670000000000),
		Order:       0,
	}

	in := []model.KanbanColumn{
		{Status: model.StatusTodo, Tasks: []model.Task{taskA, taskB}, WIPLimit: intPtr(4)},
		{Status: model.StatusInProgress, Collapsed: true},
		{Status: model.StatusDone, Tasks: []model.Task{doneTask}},
	}

	out := Decode(Encode(in))

	if len(out) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(out))
	}
	if out[0].Status != model.StatusTodo || out[1].Status != model.StatusInProgress || out[2].Status != model.StatusDone {
		t.Fatalf("column order not preserved: %v %v %v", out[0].Status, out[1].Status, out[2].Status)
	}
	if out[0].WIPLimit == nil || *out[0].WIPLimit != 4 {
		t.Errorf("WIP limit lost: %v", out[0].WIPLimit)
	}
	if !out[1].Collapsed {
		t.Error("collapsed flag lost")
	}
	if len(out[0].Tasks) != 2 || len(out[1].Tasks) != 0 || len(out[2].Tasks) != 1 {
		t.Fatalf("task counts wrong: %d %d %d", len(out[0].Tasks), len(out[1].Tasks), len(out[2].Tasks))
	}

	got := out[0].Tasks[0]
	if got.ID != taskA.ID || got.Title != taskA.Title || got.Description != taskA.Description {
		t.Errorf("task identity fields lost: %+v", got)
	}
	if got.Priority != model.PriorityHigh {
		t.Errorf("priority = %v, want HIGH", got.Priority)
	}
	if !reflect.DeepEqual(got.Tags, taskA.Tags) {
		t.Errorf("tags = %+v, want %+v", got.Tags, taskA.Tags)
	}
	if got.StoryPoints == nil || *got.StoryPoints != 3 {
		t.Errorf("story points lost: %v", got.StoryPoints)
	}
	if got.Assignee == nil || *got.Assignee != "maren" {
		t.Errorf("assignee lost: %v", got.Assignee)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("due date = %v, want %v", got.DueDate, due)
	}
	if got.StartDate == nil || !got.StartDate.Equal(start) {
		t.Errorf("start date = %v, want %v", got.StartDate, start)
	}
	if got.EstimatedHours == nil || *got.EstimatedHours != 2.5 {
		t.Errorf("estimated hours lost: %v", got.EstimatedHours)
	}
	if got.ActualHours == nil || *got.ActualHours != 1.25 {
		t.Errorf("actual hours lost: %v", got.ActualHours)
	}
	if !reflect.DeepEqual(got.LinkedNoteIDs, taskA.LinkedNoteIDs) {
		t.Errorf("linked notes = %v, want %v", got.LinkedNoteIDs, taskA.LinkedNoteIDs)
	}
	if !got.IsActive {
		t.Error("active flag lost")
	}
	if !got.CreatedAt.Equal(taskA.CreatedAt) || !got.UpdatedAt.Equal(taskA.UpdatedAt) {
		t.Errorf("timestamps drifted: %v %v", got.CreatedAt, got.UpdatedAt)
	}

	// Subtasks come back sorted by their order field.
	if len(got.Subtasks) != 2 || got.Subtasks[0].ID != "sub-1" || got.Subtasks[1].ID != "sub-2" {
		t.Errorf("subtasks not ordered: %+v", got.Subtasks)
	}
	if !got.Subtasks[0].Done || got.Subtasks[1].Done {
		t.Errorf("subtask done flags lost: %+v", got.Subtasks)
	}

	if got.Timer == nil {
		t.Fatal("timer lost in round trip")
	}
	if !got.Timer.StartedAt.Equal(taskA.Timer.StartedAt) {
		t.Errorf("timer start = %v, want %v", got.Timer.StartedAt, taskA.Timer.StartedAt)
	}
	if got.Timer.PausedDuration != 90*time.Second {
		t.Errorf("paused duration = %v, want 90s", got.Timer.PausedDuration)
	}
	if !got.Timer.IsPaused {
		t.Error("paused flag lost")
	}

	gotDone := out[2].Tasks[0]
	if !gotDone.IsCompleted || gotDone.CompletedAt == nil || !gotDone.CompletedAt.Equal(completed) {
		t.Errorf("completion state lost: %+v", gotDone)
	}
	if gotDone.Timer != nil {
		t.Errorf("task without timer decoded with one: %+v", gotDone.Timer)
	}
}

func TestDecodeMalformedInput(t *testing.T) {
	for _, text := range []string{"", "not json at all", "[1,2,3]", `{"columns": 7}`} {
		cols := Decode(text)
		if len(cols) != 0 {
			t.Errorf("Decode(%q) = %d columns, want empty board", text, len(cols))
		}
	}
}

func TestDecodeUnknownStatusTaskDropped(t *testing.T) {
	text := `{
		"columns": [{"id":"todo","title":"To Do","status":"TODO","order":0,"collapsed":false,"wipLimit":null}],
		"tasks": [
			{"id":"t1","title":"kept","status":"TODO","priority":"MEDIUM","createdAt":0,"updatedAt":0,"order":0},
			{"id":"t2","title":"dropped","status":"NONEXISTENT","priority":"MEDIUM","createdAt":0,"updatedAt":0,"order":0}
		]
	}`
	cols := Decode(text)
	if len(cols) != 1 {
		t.Fatalf("expected 1 column, got %d", len(cols))
	}
	if len(cols[0].Tasks) != 1 || cols[0].Tasks[0].ID != "t1" {
		t.Fatalf("expected only t1 to survive, got %+v", cols[0].Tasks)
	}
}

func TestDecodeEnumFallbacks(t *testing.T) {
	text := `{
		"columns": [{"id":"x","title":"?","status":"SHIPPED","order":0,"collapsed":false,"wipLimit":null}],
		"tasks": [{
			"id":"t1","title":"odd","status":"SHIPPED","priority":"URGENT_MAX",
			"tags":[{"label":"weird","color":"CHARTREUSE"}],
			"createdAt":0,"updatedAt":0,"order":0
		}]
	}`
	cols := Decode(text)
	if len(cols) != 1 {
		t.Fatalf("expected 1 column, got %d", len(cols))
	}
	// Unknown column status resolves to the default status, but the task
	// still groups under it because grouping uses the raw string.
	if cols[0].Status != model.StatusTodo {
		t.Errorf("column status = %v, want fallback TODO", cols[0].Status)
	}
	if len(cols[0].Tasks) != 1 {
		t.Fatalf("task not grouped by raw status string: %+v", cols[0].Tasks)
	}
	task := cols[0].Tasks[0]
	if task.Priority != model.PriorityMedium {
		t.Errorf("priority = %v, want fallback MEDIUM", task.Priority)
	}
	if len(task.Tags) != 1 || task.Tags[0].Color != model.TagGray {
		t.Errorf("tag color = %+v, want fallback GRAY", task.Tags)
	}
}

func TestTimerAllOrNothing(t *testing.T) {
	t.Run("started at alone is sufficient", func(t *testing.T) {
		text := `{
			"columns": [{"id":"todo","title":"To Do","status":"TODO","order":0,"collapsed":false,"wipLimit":null}],
			"tasks": [{"id":"t1","title":"x","status":"TODO","priority":"LOW","timerStartedAt":1705000000000,"createdAt":0,"updatedAt":0,"order":0}]
		}`
		cols := Decode(text)
		timer := cols[0].Tasks[0].Timer
		if timer == nil {
			t.Fatal("expected a timer when timerStartedAt is present")
		}
		if timer.PausedDuration != 0 || timer.IsPaused {
			t.Errorf("timer defaults wrong: %+v", timer)
		}
	})

	t.Run("absent started at means no timer", func(t *testing.T) {
		text := `{
			"columns": [{"id":"todo","title":"To Do","status":"TODO","order":0,"collapsed":false,"wipLimit":null}],
			"tasks": [{"id":"t1","title":"x","status":"TODO","priority":"LOW","timerPausedDuration":5000,"timerIsPaused":true,"createdAt":0,"updatedAt":0,"order":0}]
		}`
		cols := Decode(text)
		if cols[0].Tasks[0].Timer != nil {
			t.Fatalf("expected no timer, got %+v", cols[0].Tasks[0].Timer)
		}
	})
}

func TestDecodeOrdersColumnsAndTasksByOrderField(t *testing.T) {
	// Columns and tasks appear reversed relative to their order fields.
	text := `{
		"columns": [
			{"id":"done","title":"Done","status":"DONE","order":1,"collapsed":false,"wipLimit":null},
			{"id":"todo","title":"To Do","status":"TODO","order":0,"collapsed":false,"wipLimit":null}
		],
		"tasks": [
			{"id":"b","title":"B","status":"TODO","priority":"MEDIUM","createdAt":0,"updatedAt":0,"order":1},
			{"id":"a","title":"A","status":"TODO","priority":"MEDIUM","createdAt":0,"updatedAt":0,"order":0}
		]
	}`
	cols := Decode(text)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	if cols[0].Status != model.StatusTodo || cols[1].Status != model.StatusDone {
		t.Fatalf("columns not sorted by order: %v, %v", cols[0].Status, cols[1].Status)
	}
	if cols[0].Tasks[0].ID != "a" || cols[0].Tasks[1].ID != "b" {
		t.Fatalf("tasks not sorted by order: %+v", cols[0].Tasks)
	}
}

// The two-columns-three-tasks scenario: a document holding DONE and TODO
// columns (reversed), two TODO tasks and one IN_PROGRESS task with no
// matching column.
func TestDecodeScenarioOrphanTaskAbsent(t *testing.T) {
	text := `{
		"columns": [
			{"id":"done","title":"Done","status":"DONE","order":1,"collapsed":false,"wipLimit":null},
			{"id":"todo","title":"To Do","status":"TODO","order":0,"collapsed":false,"wipLimit":null}
		],
		"tasks": [
			{"id":"task-a","title":"A","status":"TODO","priority":"MEDIUM","createdAt":0,"updatedAt":0,"order":0},
			{"id":"task-b","title":"B","status":"TODO","priority":"MEDIUM","createdAt":0,"updatedAt":0,"order":1},
			{"id":"orphan","title":"stuck","status":"IN_PROGRESS","priority":"MEDIUM","createdAt":0,"updatedAt":0,"order":0}
		]
	}`
	cols := Decode(text)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	if cols[0].Status != model.StatusTodo || cols[1].Status != model.StatusDone {
		t.Fatalf("wrong column order: %v, %v", cols[0].Status, cols[1].Status)
	}
	if len(cols[0].Tasks) != 2 || cols[0].Tasks[0].ID != "task-a" || cols[0].Tasks[1].ID != "task-b" {
		t.Fatalf("TODO column wrong: %+v", cols[0].Tasks)
	}
	if len(cols[1].Tasks) != 0 {
		t.Fatalf("DONE column should be empty: %+v", cols[1].Tasks)
	}
	for _, col := range cols {
		for _, task := range col.Tasks {
			if task.ID == "orphan" {
				t.Fatal("orphan task should be absent from every column")
			}
		}
	}
}

func TestEncodeEmitsDefaultValuedFields(t *testing.T) {
	text := Encode([]model.KanbanColumn{{
		Status: model.StatusTodo,
		Tasks:  []model.Task{{ID: "t1", Title: "bare", Priority: model.PriorityMedium}},
	}})

	if strings.Contains(text, "\n") {
		t.Error("encoding should be compact")
	}

	var raw struct {
		Columns []map[string]json.RawMessage `json:"columns"`
		Tasks   []map[string]json.RawMessage `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		t.Fatalf("encoded text is not valid JSON: %v", err)
	}
	if len(raw.Columns) != 1 || len(raw.Tasks) != 1 {
		t.Fatalf("unexpected document shape: %s", text)
	}

	for _, key := range []string{"wipLimit", "collapsed", "order"} {
		if _, ok := raw.Columns[0][key]; !ok {
			t.Errorf("column record missing %q", key)
		}
	}
	for _, key := range []string{
		"description", "tags", "subtasks", "linkedNoteIds", "storyPoints",
		"timerStartedAt", "timerPausedDuration", "timerIsPaused",
		"dueDate", "completedAt", "isActive", "isCompleted", "order",
	} {
		if _, ok := raw.Tasks[0][key]; !ok {
			t.Errorf("task record missing %q", key)
		}
	}
	if string(raw.Tasks[0]["tags"]) != "[]" {
		t.Errorf("empty tags should encode as [], got %s", raw.Tasks[0]["tags"])
	}
	if string(raw.Tasks[0]["timerStartedAt"]) != "null" {
		t.Errorf("absent timer should encode timerStartedAt as null, got %s", raw.Tasks[0]["timerStartedAt"])
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	text := `{
		"schemaVersion": 9,
		"columns": [{"id":"todo","title":"To Do","status":"TODO","order":0,"collapsed":false,"wipLimit":null,"legacyColor":"#fff"}],
		"tasks": [{"id":"t1","title":"x","status":"TODO","priority":"LOW","futureField":{"a":1},"createdAt":0,"updatedAt":0,"order":0}]
	}`
	cols := Decode(text)
	if len(cols) != 1 || len(cols[0].Tasks) != 1 {
		t.Fatalf("unknown fields should be ignored, got %+v", cols)
	}
}

func TestCodecDoesNotMutateInput(t *testing.T) {
	limit := 3
	in := []model.KanbanColumn{{
		Status:   model.StatusTodo,
		WIPLimit: &limit,
		Tasks: []model.Task{{
			ID: "t1", Title: "x", Priority: model.PriorityLow,
			Tags: []model.Tag{{Label: "a", Color: model.TagRed}},
		}},
	}}

	text := Encode(in)
	out := Decode(text)

	// Mutating the decoded board must not leak back into the input.
	*out[0].WIPLimit = 99
	out[0].Tasks[0].Tags[0].Label = "changed"
	if limit != 3 {
		t.Errorf("decode aliased the WIP limit: %d", limit)
	}
	if in[0].Tasks[0].Tags[0].Label != "a" {
		t.Errorf("input tags mutated: %+v", in[0].Tasks[0].Tags)
	}
}
