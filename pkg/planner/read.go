package planner

import (
	"time"

	"tableflip.dev/stepio/pkg/model"
)

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) Tasks() []model.Task {
	return s.Snapshot().Tasks
}

func (s *Store) Events() []model.Event {
	return s.Snapshot().Events
}

func (s *Store) PinnedTasks() []model.Task {
	return s.Snapshot().PinnedTasks
}

func (s *Store) Categories() []model.Category {
	return s.Snapshot().Categories
}

// Task returns the task with id.
func (s *Store) Task(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := model.FindTask(s.state.Tasks, id); i >= 0 {
		return s.state.Tasks[i], true
	}
	return model.Task{}, false
}

// Event returns the event with id.
func (s *Store) Event(id string) (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := model.FindEvent(s.state.Events, id); i >= 0 {
		return s.state.Events[i], true
	}
	return model.Event{}, false
}

// Category returns the category with id.
func (s *Store) Category(id string) (model.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := model.FindCategory(s.state.Categories, id); i >= 0 {
		return s.state.Categories[i], true
	}
	return model.Category{}, false
}

// TasksOn returns the tasks scheduled on the calendar day of day.
func (s *Store) TasksOn(day time.Time) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Task
	for _, t := range s.state.Tasks {
		if model.SameDate(t.Date, day) {
			out = append(out, t)
		}
	}
	return out
}

// EventsOn returns the events scheduled on the calendar day of day.
func (s *Store) EventsOn(day time.Time) []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Event
	for _, e := range s.state.Events {
		if model.SameDate(e.Date, day) {
			out = append(out, e)
		}
	}
	return out
}

// HasItemsOn reports whether any task or event falls on the day, which is
// what the calendar highlights.
func (s *Store) HasItemsOn(day time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.state.Tasks {
		if model.SameDate(t.Date, day) {
			return true
		}
	}
	for _, e := range s.state.Events {
		if model.SameDate(e.Date, day) {
			return true
		}
	}
	return false
}
