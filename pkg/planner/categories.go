package planner

import (
	"context"

	"tableflip.dev/stepio/pkg/model"
)

// AddCategory appends a category created today.
func (s *Store) AddCategory(ctx context.Context, f model.CategoryFields) (model.Category, error) {
	var created model.Category
	err := s.mutate(ctx, func(next *model.Snapshot) error {
		c := model.Category{
			ID: s.nextID(func(id string) bool {
				return model.FindCategory(next.Categories, id) >= 0
			}),
			Name:      f.Name,
			Color:     f.Color,
			CreatedAt: model.FormatDate(s.now()),
		}
		if err := model.Validate(c); err != nil {
			return err
		}
		next.Categories = append(next.Categories, c)
		created = c
		return nil
	})
	return created, err
}

// UpdateCategory merges u into the category with id. Renaming does not
// rename the category label on tasks.
func (s *Store) UpdateCategory(ctx context.Context, id string, u model.CategoryUpdate) (model.Category, error) {
	var updated model.Category
	err := s.mutate(ctx, func(next *model.Snapshot) error {
		i := model.FindCategory(next.Categories, id)
		if i < 0 {
			return model.NotFound("category", id)
		}
		c, err := u.Apply(next.Categories[i])
		if err != nil {
			return err
		}
		next.Categories[i] = c
		updated = c
		return nil
	})
	return updated, err
}

// DeleteCategory removes the category. Tasks keep its name as their label.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.mutate(ctx, func(next *model.Snapshot) error {
		i := model.FindCategory(next.Categories, id)
		if i < 0 {
			return model.NotFound("category", id)
		}
		next.Categories = append(next.Categories[:i], next.Categories[i+1:]...)
		return nil
	})
}

// ActiveCategoriesCount returns the number of categories.
func (s *Store) ActiveCategoriesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Categories)
}

// CategoryTaskCount counts tasks whose category label equals the name of the
// category with categoryID. Unknown ids count zero.
func (s *Store) CategoryTaskCount(categoryID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := model.FindCategory(s.state.Categories, categoryID)
	if i < 0 {
		return 0
	}
	name := s.state.Categories[i].Name
	n := 0
	for _, t := range s.state.Tasks {
		if t.Category == name {
			n++
		}
	}
	return n
}
