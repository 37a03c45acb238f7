package planner

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/store"
)

// recordingPersister keeps every saved snapshot in order.
type recordingPersister struct {
	mu      sync.Mutex
	initial model.Snapshot
	saves   []model.Snapshot
	saveErr error
}

func (r *recordingPersister) Load(context.Context) model.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n := len(r.saves); n > 0 {
		return r.saves[n-1].Clone()
	}
	return r.initial.Clone()
}

func (r *recordingPersister) Save(_ context.Context, snap model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves = append(r.saves, snap.Clone())
	return nil
}

func (r *recordingPersister) last() model.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves[len(r.saves)-1]
}

func (r *recordingPersister) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

var fixedNow = time.Date(2026, time.February, 11, 10, 0, 0, 0, time.Local)

func newEmptyStore(t *testing.T) (*Store, *recordingPersister) {
	t.Helper()
	p := &recordingPersister{}
	s := New(context.Background(), p,
		WithLogger(zaptest.NewLogger(t)),
		WithClock(func() time.Time { return fixedNow }),
		WithIDs(counterIDs()),
	)
	return s, p
}

func taskFields(title, date, category string) model.TaskFields {
	return model.TaskFields{Title: title, Date: date, Time: "09:00", Category: category}
}

func TestAddTaskAssignsUniqueIDAndNotCompleted(t *testing.T) {
	s, p := newEmptyStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		before := len(s.Tasks())
		task, err := s.AddTask(ctx, taskFields(fmt.Sprintf("task %d", i), "2026-02-11", "work"))
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if got := len(s.Tasks()); got != before+1 {
			t.Fatalf("expected %d tasks, got %d", before+1, got)
		}
		if task.Completed {
			t.Fatalf("new task must not be completed")
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %s", task.ID)
		}
		seen[task.ID] = true
	}
	if p.count() != 5 {
		t.Fatalf("expected 5 saves, got %d", p.count())
	}
	if !reflect.DeepEqual(p.last(), s.Snapshot()) {
		t.Fatalf("last save does not reflect state")
	}
}

func TestAddTaskRejectsInvalidFields(t *testing.T) {
	s, p := newEmptyStore(t)
	_, err := s.AddTask(context.Background(), model.TaskFields{Title: "x", Date: "15 Mar 2020"})
	if !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
	if len(s.Tasks()) != 0 || p.count() != 0 {
		t.Fatalf("invalid add must not change or save state")
	}
}

func TestGeneratedIDsSkipExisting(t *testing.T) {
	p := &recordingPersister{initial: model.Snapshot{Tasks: []model.Task{{ID: "id-1", Title: "old", Date: "2026-01-01"}}}}
	s := New(context.Background(), p, WithIDs(counterIDs()))
	task, err := s.AddTask(context.Background(), taskFields("new", "2026-01-02", ""))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.ID != "id-2" {
		t.Fatalf("expected id-2, got %s", task.ID)
	}
}

func TestTimestampIDsStrictlyIncrease(t *testing.T) {
	p := &recordingPersister{}
	s := New(context.Background(), p, WithClock(func() time.Time { return fixedNow }))
	a, _ := s.AddTask(context.Background(), taskFields("a", "2026-02-11", ""))
	b, _ := s.AddTask(context.Background(), taskFields("b", "2026-02-11", ""))
	if a.ID == b.ID {
		t.Fatalf("ids collided: %s", a.ID)
	}
	if want := fmt.Sprint(fixedNow.UnixMilli()); a.ID != want {
		t.Fatalf("expected timestamp id %s, got %s", want, a.ID)
	}
}

func TestTimestampIDsSkipPastStoredIDs(t *testing.T) {
	tests := map[string]model.Snapshot{
		"task":     {Tasks: []model.Task{{ID: "5000", Title: "a", Date: "2026-02-11"}}},
		"pinned":   {PinnedTasks: []model.Task{{ID: "5000", Title: "a", Date: "2026-02-11"}}},
		"event":    {Events: []model.Event{{ID: "5000", Title: "a", Date: "2026-02-11"}}},
		"category": {Categories: []model.Category{{ID: "5000", Name: "a", Color: model.ColorGreen}}},
	}
	for name, snap := range tests {
		t.Run(name, func(t *testing.T) {
			p := &recordingPersister{initial: snap}
			s := New(context.Background(), p, WithClock(func() time.Time { return time.UnixMilli(1000) }))
			task, err := s.AddTask(context.Background(), taskFields("b", "2026-02-11", ""))
			if err != nil {
				t.Fatalf("add: %v", err)
			}
			if task.ID != "5001" {
				t.Fatalf("expected id 5001, got %s", task.ID)
			}
		})
	}
}

func TestUpdateTask(t *testing.T) {
	s, _ := newEmptyStore(t)
	ctx := context.Background()
	task, _ := s.AddTask(ctx, taskFields("draft", "2026-02-11", "work"))

	got, err := s.UpdateTask(ctx, task.ID, model.TaskUpdate{Title: model.String("final")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "final" || got.Date != "2026-02-11" {
		t.Fatalf("unexpected task %+v", got)
	}
	if stored, _ := s.Task(task.ID); stored.Title != "final" {
		t.Fatalf("update not stored: %+v", stored)
	}

	if _, err := s.UpdateTask(ctx, task.ID, model.TaskUpdate{Time: model.String("25:00")}); !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
	if stored, _ := s.Task(task.ID); stored.Time != "09:00" {
		t.Fatalf("rejected update leaked into state: %+v", stored)
	}
}

func TestUnknownIDsAreNotFoundAndDoNotSave(t *testing.T) {
	s, p := newEmptyStore(t)
	ctx := context.Background()

	checks := map[string]error{
		"update task":  func() error { _, err := s.UpdateTask(ctx, "nope", model.TaskUpdate{}); return err }(),
		"delete task":  s.DeleteTask(ctx, "nope"),
		"toggle task":  func() error { _, err := s.ToggleTaskCompletion(ctx, "nope"); return err }(),
		"pin task":     s.PinTask(ctx, "nope"),
		"update event": func() error { _, err := s.UpdateEvent(ctx, "nope", model.EventUpdate{}); return err }(),
		"delete event": s.DeleteEvent(ctx, "nope"),
		"update cat":   func() error { _, err := s.UpdateCategory(ctx, "nope", model.CategoryUpdate{}); return err }(),
		"delete cat":   s.DeleteCategory(ctx, "nope"),
		"refresh pin":  s.RefreshPinned(ctx, "nope"),
	}
	for name, err := range checks {
		if !errors.Is(err, model.ErrNotFound) {
			t.Errorf("%s: expected not found, got %v", name, err)
		}
	}
	if err := s.UnpinTask(ctx, "nope"); err != nil {
		t.Fatalf("unpin of unknown id should be a no-op, got %v", err)
	}
	if p.count() != 0 {
		t.Fatalf("no-ops must not save, got %d saves", p.count())
	}
}

func TestToggleTaskCompletion(t *testing.T) {
	s, _ := newEmptyStore(t)
	ctx := context.Background()
	task, _ := s.AddTask(ctx, taskFields("a", "2026-02-11", ""))

	got, err := s.ToggleTaskCompletion(ctx, task.ID)
	if err != nil || !got.Completed {
		t.Fatalf("expected completed, got %+v %v", got, err)
	}
	got, _ = s.ToggleTaskCompletion(ctx, task.ID)
	if got.Completed {
		t.Fatalf("expected toggled back")
	}
}

func TestPinTaskIsIdempotent(t *testing.T) {
	s, p := newEmptyStore(t)
	ctx := context.Background()
	task, _ := s.AddTask(ctx, taskFields("a", "2026-02-11", ""))

	if err := s.PinTask(ctx, task.ID); err != nil {
		t.Fatalf("pin: %v", err)
	}
	saves := p.count()
	if err := s.PinTask(ctx, task.ID); err != nil {
		t.Fatalf("second pin: %v", err)
	}
	pinned := s.PinnedTasks()
	if len(pinned) != 1 || pinned[0].ID != task.ID {
		t.Fatalf("expected exactly one pinned copy, got %+v", pinned)
	}
	if p.count() != saves {
		t.Fatalf("second pin should not save")
	}
}

func TestPinnedCopyIsFrozenUntilRefreshed(t *testing.T) {
	s, _ := newEmptyStore(t)
	ctx := context.Background()
	task, _ := s.AddTask(ctx, taskFields("a", "2026-02-11", ""))
	_ = s.PinTask(ctx, task.ID)

	_, _ = s.UpdateTask(ctx, task.ID, model.TaskUpdate{Title: model.String("b")})
	if got := s.PinnedTasks()[0].Title; got != "a" {
		t.Fatalf("pinned copy should keep old title, got %q", got)
	}

	if err := s.RefreshPinned(ctx, task.ID); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := s.PinnedTasks()[0].Title; got != "b" {
		t.Fatalf("refresh should sync title, got %q", got)
	}
}

func TestUnpinTask(t *testing.T) {
	s, _ := newEmptyStore(t)
	ctx := context.Background()
	a, _ := s.AddTask(ctx, taskFields("a", "2026-02-11", ""))
	b, _ := s.AddTask(ctx, taskFields("b", "2026-02-11", ""))
	_ = s.PinTask(ctx, a.ID)
	_ = s.PinTask(ctx, b.ID)

	if err := s.UnpinTask(ctx, a.ID); err != nil {
		t.Fatalf("unpin: %v", err)
	}
	pinned := s.PinnedTasks()
	if len(pinned) != 1 || pinned[0].ID != b.ID {
		t.Fatalf("unexpected pinned %+v", pinned)
	}
	if len(s.Tasks()) != 2 {
		t.Fatalf("unpin must not delete the task")
	}
}

func TestDeleteTaskRemovesFromBothCollections(t *testing.T) {
	for _, pinned := range []bool{true, false} {
		t.Run(fmt.Sprintf("pinned=%v", pinned), func(t *testing.T) {
			s, p := newEmptyStore(t)
			ctx := context.Background()
			task, _ := s.AddTask(ctx, taskFields("a", "2026-02-11", ""))
			other, _ := s.AddTask(ctx, taskFields("b", "2026-02-11", ""))
			_ = s.PinTask(ctx, other.ID)
			if pinned {
				_ = s.PinTask(ctx, task.ID)
			}

			if err := s.DeleteTask(ctx, task.ID); err != nil {
				t.Fatalf("delete: %v", err)
			}
			snap := s.Snapshot()
			if model.FindTask(snap.Tasks, task.ID) >= 0 || model.FindTask(snap.PinnedTasks, task.ID) >= 0 {
				t.Fatalf("task still present: %+v", snap)
			}
			if model.FindTask(snap.PinnedTasks, other.ID) < 0 {
				t.Fatalf("other pinned task was removed")
			}
			if !reflect.DeepEqual(p.last(), snap) {
				t.Fatalf("persisted state differs from memory")
			}
		})
	}
}

func TestDeleteTaskRemovesOrphanedPin(t *testing.T) {
	p := &recordingPersister{initial: model.Snapshot{
		Tasks:       []model.Task{},
		PinnedTasks: []model.Task{{ID: "9", Title: "x", Date: "2020-03-15", Time: "09:00"}},
	}}
	s := New(context.Background(), p, WithLogger(zaptest.NewLogger(t)))

	if err := s.DeleteTask(context.Background(), "9"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := len(s.PinnedTasks()); got != 0 {
		t.Fatalf("expected the orphaned pin to be removed, got %d", got)
	}
	if p.count() != 1 || len(p.last().PinnedTasks) != 0 {
		t.Fatalf("removal was not persisted")
	}
	if err := s.DeleteTask(context.Background(), "9"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found once gone, got %v", err)
	}
}

func TestEventLifecycle(t *testing.T) {
	s, _ := newEmptyStore(t)
	ctx := context.Background()
	e, err := s.AddEvent(ctx, model.EventFields{Title: "Standup", StartTime: "09:30", Date: "2026-02-11", Participants: 3})
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	if _, err := s.AddEvent(ctx, model.EventFields{Title: "Bad", Date: "2026-02-11"}); !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected missing start time to be invalid, got %v", err)
	}

	got, err := s.UpdateEvent(ctx, e.ID, model.EventUpdate{EndTime: model.String("10:00")})
	if err != nil || got.EndTime != "10:00" {
		t.Fatalf("update event: %+v %v", got, err)
	}
	if !s.HasItemsOn(fixedNow) {
		t.Fatalf("expected the day to have items")
	}
	if err := s.DeleteEvent(ctx, e.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if len(s.Events()) != 0 || s.HasItemsOn(fixedNow) {
		t.Fatalf("event not deleted")
	}
}

func TestCategoryScenario(t *testing.T) {
	s, _ := newEmptyStore(t)
	ctx := context.Background()

	c, err := s.AddCategory(ctx, model.CategoryFields{Name: "Focus", Color: model.ColorBlue})
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	if c.CreatedAt != "2026-02-11" {
		t.Fatalf("expected createdAt today, got %s", c.CreatedAt)
	}
	if got := s.ActiveCategoriesCount(); got != 1 {
		t.Fatalf("expected 1 category, got %d", got)
	}
	if err := s.DeleteCategory(ctx, c.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}
	if got := s.ActiveCategoriesCount(); got != 0 {
		t.Fatalf("expected 0 categories, got %d", got)
	}
}

func TestAddCategoryRejectsUnknownColor(t *testing.T) {
	s, _ := newEmptyStore(t)
	if _, err := s.AddCategory(context.Background(), model.CategoryFields{Name: "x", Color: "bg-orange-400"}); !errors.Is(err, model.ErrInvalid) {
		t.Fatalf("expected invalid, got %v", err)
	}
}

func TestCategoryTaskCountJoinsByName(t *testing.T) {
	p := &recordingPersister{initial: model.Snapshot{
		Categories: []model.Category{{ID: "c1", Name: "work", Color: model.ColorBlue, CreatedAt: "2026-01-01"}},
		Tasks: []model.Task{
			{ID: "1", Title: "a", Date: "2026-01-01", Category: "work"},
			{ID: "2", Title: "b", Date: "2026-01-01", Category: "work"},
			{ID: "3", Title: "c", Date: "2026-01-01", Category: "personal"},
		},
	}}
	s := New(context.Background(), p)
	if got := s.CategoryTaskCount("c1"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := s.CategoryTaskCount("missing"); got != 0 {
		t.Fatalf("expected 0 for unknown category, got %d", got)
	}
}

func TestDeleteCategoryKeepsTaskLabels(t *testing.T) {
	s, _ := newEmptyStore(t)
	ctx := context.Background()
	c, _ := s.AddCategory(ctx, model.CategoryFields{Name: "work", Color: model.ColorRed})
	task, _ := s.AddTask(ctx, taskFields("a", "2026-02-11", "work"))
	_ = s.DeleteCategory(ctx, c.ID)
	if got, _ := s.Task(task.ID); got.Category != "work" {
		t.Fatalf("task label should survive category deletion, got %q", got.Category)
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	p := &recordingPersister{saveErr: model.WrapError(model.CodeStorageUnavailable, "write", errors.New("quota"))}
	s := New(context.Background(), p, WithLogger(zaptest.NewLogger(t)))
	task, err := s.AddTask(context.Background(), taskFields("a", "2026-02-11", ""))
	if err != nil {
		t.Fatalf("save failures must not fail the operation: %v", err)
	}
	if _, ok := s.Task(task.ID); !ok {
		t.Fatalf("task should remain in memory")
	}
	if !errors.Is(s.LastSaveError(), model.ErrStorageUnavailable) {
		t.Fatalf("expected last save error, got %v", s.LastSaveError())
	}
}

func TestSubscribersSeePostMutationState(t *testing.T) {
	s, _ := newEmptyStore(t)
	ctx := context.Background()

	var got []int
	cancel := s.Subscribe(func(snap model.Snapshot) {
		got = append(got, len(snap.Tasks))
	})
	_, _ = s.AddTask(ctx, taskFields("a", "2026-02-11", ""))
	_, _ = s.AddTask(ctx, taskFields("b", "2026-02-11", ""))
	cancel()
	_, _ = s.AddTask(ctx, taskFields("c", "2026-02-11", ""))

	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("unexpected notifications %v", got)
	}
}

func TestTasksOnMatchesISODate(t *testing.T) {
	s, _ := newEmptyStore(t)
	ctx := context.Background()
	_, _ = s.AddTask(ctx, taskFields("today", "2026-02-11", ""))
	_, _ = s.AddTask(ctx, taskFields("tomorrow", "2026-02-12", ""))

	got := s.TasksOn(fixedNow)
	if len(got) != 1 || got[0].Title != "today" {
		t.Fatalf("unexpected tasks %+v", got)
	}
	if s.HasItemsOn(fixedNow.AddDate(0, 0, 5)) {
		t.Fatalf("expected no items five days out")
	}
}

func TestGatewayRoundTripThroughPublicOperations(t *testing.T) {
	g := store.NewGateway(store.NewMemoryBackend(), store.WithLogger(zaptest.NewLogger(t)))
	ctx := context.Background()
	s := New(ctx, g, WithIDs(counterIDs()), WithClock(func() time.Time { return fixedNow }))

	task, _ := s.AddTask(ctx, taskFields("a", "2026-02-11", "work"))
	_ = s.PinTask(ctx, task.ID)
	_, _ = s.AddEvent(ctx, model.EventFields{Title: "Lunch", StartTime: "12:00", Date: "2026-02-11"})
	_, _ = s.AddCategory(ctx, model.CategoryFields{Name: "work", Color: model.ColorGreen})
	_ = s.DeleteTask(ctx, "1")

	reopened := New(ctx, g)
	if !reflect.DeepEqual(reopened.Snapshot(), s.Snapshot()) {
		t.Fatalf("reloaded state differs:\nwant %+v\ngot  %+v", s.Snapshot(), reopened.Snapshot())
	}
}

func TestReloadPicksUpExternalChanges(t *testing.T) {
	g := store.NewGateway(store.NewMemoryBackend())
	ctx := context.Background()
	a := New(ctx, g, WithIDs(counterIDs()))
	b := New(ctx, g)

	_, _ = a.AddTask(ctx, taskFields("from a", "2026-02-11", ""))
	notified := false
	b.Subscribe(func(model.Snapshot) { notified = true })
	b.Reload(ctx)

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Fatalf("reload did not pick up external write")
	}
	if !notified {
		t.Fatalf("reload should notify subscribers")
	}
}
