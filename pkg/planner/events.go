package planner

import (
	"context"

	"tableflip.dev/stepio/pkg/model"
)

// AddEvent appends a new event.
func (s *Store) AddEvent(ctx context.Context, f model.EventFields) (model.Event, error) {
	var created model.Event
	err := s.mutate(ctx, func(next *model.Snapshot) error {
		e := model.Event{
			ID: s.nextID(func(id string) bool {
				return model.FindEvent(next.Events, id) >= 0
			}),
			Title:        f.Title,
			StartTime:    f.StartTime,
			EndTime:      f.EndTime,
			Date:         f.Date,
			Participants: f.Participants,
		}
		if err := model.Validate(e); err != nil {
			return err
		}
		next.Events = append(next.Events, e)
		created = e
		return nil
	})
	return created, err
}

// UpdateEvent merges u into the event with id.
func (s *Store) UpdateEvent(ctx context.Context, id string, u model.EventUpdate) (model.Event, error) {
	var updated model.Event
	err := s.mutate(ctx, func(next *model.Snapshot) error {
		i := model.FindEvent(next.Events, id)
		if i < 0 {
			return model.NotFound("event", id)
		}
		e, err := u.Apply(next.Events[i])
		if err != nil {
			return err
		}
		next.Events[i] = e
		updated = e
		return nil
	})
	return updated, err
}

// DeleteEvent removes the event with id.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	return s.mutate(ctx, func(next *model.Snapshot) error {
		i := model.FindEvent(next.Events, id)
		if i < 0 {
			return model.NotFound("event", id)
		}
		next.Events = append(next.Events[:i], next.Events[i+1:]...)
		return nil
	})
}
