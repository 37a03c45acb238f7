package planner

import (
	"context"

	"tableflip.dev/stepio/pkg/model"
)

// AddTask appends a new, not yet completed task.
func (s *Store) AddTask(ctx context.Context, f model.TaskFields) (model.Task, error) {
	var created model.Task
	err := s.mutate(ctx, func(next *model.Snapshot) error {
		t := model.Task{
			ID: s.nextID(func(id string) bool {
				return model.FindTask(next.Tasks, id) >= 0 || model.FindTask(next.PinnedTasks, id) >= 0
			}),
			Title:       f.Title,
			Description: f.Description,
			Time:        f.Time,
			Date:        f.Date,
			Category:    f.Category,
			Icon:        f.Icon,
			Completed:   false,
		}
		if err := model.Validate(t); err != nil {
			return err
		}
		next.Tasks = append(next.Tasks, t)
		created = t
		return nil
	})
	return created, err
}

// UpdateTask merges u into the task with id. Pinned copies are not touched.
func (s *Store) UpdateTask(ctx context.Context, id string, u model.TaskUpdate) (model.Task, error) {
	var updated model.Task
	err := s.mutate(ctx, func(next *model.Snapshot) error {
		i := model.FindTask(next.Tasks, id)
		if i < 0 {
			return model.NotFound("task", id)
		}
		t, err := u.Apply(next.Tasks[i])
		if err != nil {
			return err
		}
		next.Tasks[i] = t
		updated = t
		return nil
	})
	return updated, err
}

// DeleteTask removes the task and its pinned copy. A pinned copy whose task
// is already gone is still removed; the id is unknown only when neither
// collection holds it.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.mutate(ctx, func(next *model.Snapshot) error {
		i := model.FindTask(next.Tasks, id)
		p := model.FindTask(next.PinnedTasks, id)
		if i < 0 && p < 0 {
			return model.NotFound("task", id)
		}
		if i >= 0 {
			next.Tasks = append(next.Tasks[:i], next.Tasks[i+1:]...)
		}
		next.PinnedTasks = removeTask(next.PinnedTasks, id)
		return nil
	})
}

// ToggleTaskCompletion flips the completed flag of the task.
func (s *Store) ToggleTaskCompletion(ctx context.Context, id string) (model.Task, error) {
	var toggled model.Task
	err := s.mutate(ctx, func(next *model.Snapshot) error {
		i := model.FindTask(next.Tasks, id)
		if i < 0 {
			return model.NotFound("task", id)
		}
		next.Tasks[i].Completed = !next.Tasks[i].Completed
		toggled = next.Tasks[i]
		return nil
	})
	return toggled, err
}

// PinTask appends a copy of the task's current fields to the pinned list.
// Pinning an already pinned task does nothing.
func (s *Store) PinTask(ctx context.Context, id string) error {
	return s.mutate(ctx, func(next *model.Snapshot) error {
		i := model.FindTask(next.Tasks, id)
		if i < 0 {
			return model.NotFound("task", id)
		}
		if model.FindTask(next.PinnedTasks, id) >= 0 {
			return errUnchanged
		}
		next.PinnedTasks = append(next.PinnedTasks, next.Tasks[i])
		return nil
	})
}

// UnpinTask drops the pinned copy with id, if there is one.
func (s *Store) UnpinTask(ctx context.Context, id string) error {
	return s.mutate(ctx, func(next *model.Snapshot) error {
		if model.FindTask(next.PinnedTasks, id) < 0 {
			return errUnchanged
		}
		next.PinnedTasks = removeTask(next.PinnedTasks, id)
		return nil
	})
}

// RefreshPinned overwrites the pinned copy of a task with the task's current
// fields, keeping its position in the pinned list.
func (s *Store) RefreshPinned(ctx context.Context, id string) error {
	return s.mutate(ctx, func(next *model.Snapshot) error {
		i := model.FindTask(next.Tasks, id)
		p := model.FindTask(next.PinnedTasks, id)
		if i < 0 || p < 0 {
			return model.NotFound("pinned task", id)
		}
		next.PinnedTasks[p] = next.Tasks[i]
		return nil
	})
}

func removeTask(tasks []model.Task, id string) []model.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
