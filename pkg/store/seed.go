package store

import "tableflip.dev/stepio/pkg/model"

// Seed returns the fixed dataset used when no valid appData exists.
func Seed() model.Snapshot {
	doctor := model.Task{
		ID:          "1",
		Title:       "Call doctor for tests",
		Description: "Ask for blood tests and GYM certificate.",
		Time:        "09:00",
		Date:        "2020-03-15",
		Category:    "personal",
		Completed:   true,
		Icon:        "👨‍⚕️",
	}
	bday := model.Task{
		ID:       "2",
		Title:    "Beatrice's bday",
		Date:     "2020-03-22",
		Category: "personal",
		Icon:     "🎂",
	}
	return model.Snapshot{
		Tasks:       []model.Task{doctor, bday},
		Events:      []model.Event{},
		PinnedTasks: []model.Task{doctor},
		Categories:  []model.Category{},
	}
}
