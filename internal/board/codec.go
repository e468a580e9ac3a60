package board

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/maren/tack/internal/model"
)

// emptyDocument is what Encode falls back to if marshaling ever failed;
// the document types contain nothing json.Marshal can reject.
const emptyDocument = `{"columns":[],"tasks":[]}`

// Encode flattens the columns into a board document and serializes it as
// compact JSON. Column order is the slice position; task order is each
// task's own Order field. Encode is total: it accepts every well-formed
// board and never fails.
func Encode(columns []model.KanbanColumn) string {
	doc := boardDocument{
		Columns: make([]columnRecord, 0, len(columns)),
		Tasks:   make([]taskRecord, 0),
	}

	for i, col := range columns {
		doc.Columns = append(doc.Columns, columnRecord{
			ID:        strings.ToLower(string(col.Status)),
			Title:     col.Status.Label(),
			Status:    string(col.Status),
			Order:     i,
			Collapsed: col.Collapsed,
			WIPLimit:  copyInt(col.WIPLimit),
		})
		for _, t := range col.Tasks {
			doc.Tasks = append(doc.Tasks, encodeTask(t, col.Status))
		}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return emptyDocument
	}
	return string(data)
}

// Decode parses a serialized board document and rebuilds the ordered
// column model. Decode never fails: unparseable input yields an empty
// board, unknown enum names fall back to their defaults, and tasks whose
// status matches no column are dropped.
func Decode(text string) []model.KanbanColumn {
	var doc boardDocument
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		doc = boardDocument{}
	}

	cols := append([]columnRecord(nil), doc.Columns...)
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].Order < cols[j].Order })

	out := make([]model.KanbanColumn, 0, len(cols))
	for _, cr := range cols {
		col := model.KanbanColumn{
			Status:    model.ParseStatus(cr.Status),
			Collapsed: cr.Collapsed,
			WIPLimit:  copyInt(cr.WIPLimit),
		}

		// Grouping is by the raw status string, not the parsed enum, so a
		// task only lands in the column it was saved under.
		var records []taskRecord
		for _, tr := range doc.Tasks {
			if tr.Status == cr.Status {
				records = append(records, tr)
			}
		}
		sort.SliceStable(records, func(i, j int) bool { return records[i].Order < records[j].Order })

		for _, tr := range records {
			col.Tasks = append(col.Tasks, decodeTask(tr, col.Status))
		}
		out = append(out, col)
	}
	return out
}

func encodeTask(t model.Task, status model.Status) taskRecord {
	rec := taskRecord{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(status),
		Priority:       string(t.Priority),
		Tags:           make([]tagRecord, 0, len(t.Tags)),
		StoryPoints:    copyInt(t.StoryPoints),
		Assignee:       copyString(t.Assignee),
		DueDate:        epochMillis(t.DueDate),
		StartDate:      epochMillis(t.StartDate),
		EstimatedHours: copyFloat(t.EstimatedHours),
		ActualHours:    copyFloat(t.ActualHours),
		Subtasks:       make([]subtaskRecord, 0, len(t.Subtasks)),
		LinkedNoteIDs:  append([]string{}, t.LinkedNoteIDs...),
		IsActive:       t.IsActive,
		IsCompleted:    t.IsCompleted,
		CreatedAt:      t.CreatedAt.UnixMilli(),
		UpdatedAt:      t.UpdatedAt.UnixMilli(),
		CompletedAt:    epochMillis(t.CompletedAt),
		Order:          t.Order,
	}

	for _, tag := range t.Tags {
		rec.Tags = append(rec.Tags, tagRecord{Label: tag.Label, Color: string(tag.Color)})
	}
	for _, st := range t.Subtasks {
		rec.Subtasks = append(rec.Subtasks, subtaskRecord{ID: st.ID, Title: st.Title, Done: st.Done, Order: st.Order})
	}
	if t.Timer != nil {
		ms := t.Timer.StartedAt.UnixMilli()
		rec.TimerStartedAt = &ms
		rec.TimerPausedDuration = t.Timer.PausedDuration.Milliseconds()
		rec.TimerIsPaused = t.Timer.IsPaused
	}
	return rec
}

func decodeTask(tr taskRecord, status model.Status) model.Task {
	t := model.Task{
		ID:             tr.ID,
		Title:          tr.Title,
		Description:    tr.Description,
		Status:         status,
		Priority:       model.ParsePriority(tr.Priority),
		StoryPoints:    copyInt(tr.StoryPoints),
		Assignee:       copyString(tr.Assignee),
		DueDate:        fromEpochMillis(tr.DueDate),
		StartDate:      fromEpochMillis(tr.StartDate),
		EstimatedHours: copyFloat(tr.EstimatedHours),
		ActualHours:    copyFloat(tr.ActualHours),
		LinkedNoteIDs:  append([]string(nil), tr.LinkedNoteIDs...),
		IsActive:       tr.IsActive,
		IsCompleted:    tr.IsCompleted,
		CreatedAt:      time.UnixMilli(tr.CreatedAt),
		UpdatedAt:      time.UnixMilli(tr.UpdatedAt),
		CompletedAt:    fromEpochMillis(tr.CompletedAt),
		Order:          tr.Order,
	}

	for _, tag := range tr.Tags {
		t.Tags = append(t.Tags, model.Tag{Label: tag.Label, Color: model.ParseTagColor(tag.Color)})
	}

	subs := append([]subtaskRecord(nil), tr.Subtasks...)
	sort.SliceStable(subs, func(i, j int) bool { return subs[i].Order < subs[j].Order })
	for _, st := range subs {
		t.Subtasks = append(t.Subtasks, model.Subtask{ID: st.ID, Title: st.Title, Done: st.Done, Order: st.Order})
	}

	// A timer exists if and only if timerStartedAt was saved; the other
	// two timer fields default to zero and false.
	if tr.TimerStartedAt != nil {
		t.Timer = &model.Timer{
			StartedAt:      time.UnixMilli(*tr.TimerStartedAt),
			PausedDuration: time.Duration(tr.TimerPausedDuration) * time.Millisecond,
			IsPaused:       tr.TimerIsPaused,
		}
	}
	return t
}

func epochMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func fromEpochMillis(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
