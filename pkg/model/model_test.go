package model

import (
	"errors"
	"testing"
)

func validTask() Task {
	return Task{ID: "1", Title: "Call doctor", Time: "09:00", Date: "2020-03-15", Category: "personal"}
}

func TestValidateTask(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*Task)
		wantErr bool
	}{
		"valid":           {mutate: func(*Task) {}},
		"empty time":      {mutate: func(t *Task) { t.Time = "" }},
		"missing title":   {mutate: func(t *Task) { t.Title = "" }, wantErr: true},
		"display date":    {mutate: func(t *Task) { t.Date = "15 Mar 2020" }, wantErr: true},
		"twelve hour":     {mutate: func(t *Task) { t.Time = "9:00 AM" }, wantErr: true},
		"missing id":      {mutate: func(t *Task) { t.ID = "" }, wantErr: true},
		"empty category":  {mutate: func(t *Task) { t.Category = "" }},
		"impossible date": {mutate: func(t *Task) { t.Date = "2020-02-30" }, wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			task := validTask()
			tc.mutate(&task)
			err := Validate(task)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("expected invalid error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCategoryPalette(t *testing.T) {
	c := Category{ID: "c1", Name: "Focus", Color: "bg-orange-400", CreatedAt: "2026-02-11"}
	if err := Validate(c); err == nil {
		t.Fatalf("expected palette error")
	}
	c.Color = ColorBlue
	if err := Validate(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTaskUpdateApply(t *testing.T) {
	task := validTask()
	got, err := TaskUpdate{Title: String("Call the doctor"), Completed: Bool(true)}.Apply(task)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.Title != "Call the doctor" || !got.Completed {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Date != task.Date || got.ID != task.ID {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	if _, err := (TaskUpdate{Date: String("tomorrow")}).Apply(task); !IsCode(err, CodeInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
}

func TestEventUpdateApply(t *testing.T) {
	e := Event{ID: "e1", Title: "Standup", StartTime: "09:30", Date: "2026-02-11"}
	got, err := EventUpdate{EndTime: String("10:00"), Participants: Int(4)}.Apply(e)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.EndTime != "10:00" || got.Participants != 4 {
		t.Fatalf("update not applied: %+v", got)
	}
	if _, err := (EventUpdate{Participants: Int(-1)}).Apply(e); err == nil {
		t.Fatalf("expected negative participants to be rejected")
	}
}

func TestParseColor(t *testing.T) {
	for _, raw := range []string{"bg-blue-400", "blue", " Blue "} {
		c, err := ParseColor(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if c != ColorBlue {
			t.Fatalf("parse %q: got %s", raw, c)
		}
	}
	if c, err := ParseColor(""); err != nil || c != DefaultColor {
		t.Fatalf("expected default color, got %s %v", c, err)
	}
	if _, err := ParseColor("orange"); err == nil {
		t.Fatalf("expected error for orange")
	}
}

func TestErrorCodesMatch(t *testing.T) {
	err := NotFound("task", "42")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found to match")
	}
	if errors.Is(err, ErrInvalid) {
		t.Fatalf("not found should not match invalid")
	}
	wrapped := WrapError(CodeStorageUnavailable, "save", errors.New("disk full"))
	if !errors.Is(wrapped, ErrStorageUnavailable) {
		t.Fatalf("expected storage unavailable to match")
	}
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	s := Snapshot{Tasks: []Task{validTask()}}
	c := s.Clone()
	c.Tasks[0].Title = "changed"
	if s.Tasks[0].Title == "changed" {
		t.Fatalf("clone shares backing array")
	}
	if c.Events == nil || c.Categories == nil || c.PinnedTasks == nil {
		t.Fatalf("clone should never return nil collections")
	}
}
