package model

// Snapshot is the complete persisted planner state, the appData slot.
type Snapshot struct {
	Tasks       []Task     `json:"tasks"`
	Events      []Event    `json:"events"`
	PinnedTasks []Task     `json:"pinnedTasks"`
	Categories  []Category `json:"categories"`
}

// Clone returns a deep copy whose collections are never nil.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Tasks:       append(make([]Task, 0, len(s.Tasks)), s.Tasks...),
		Events:      append(make([]Event, 0, len(s.Events)), s.Events...),
		PinnedTasks: append(make([]Task, 0, len(s.PinnedTasks)), s.PinnedTasks...),
		Categories:  append(make([]Category, 0, len(s.Categories)), s.Categories...),
	}
}

// FindTask returns the index of the task with id in tasks, or -1.
func FindTask(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// FindEvent returns the index of the event with id in events, or -1.
func FindEvent(events []Event, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCategory returns the index of the category with id in categories, or -1.
func FindCategory(categories []Category, id string) int {
	for i := range categories {
		if categories[i].ID == id {
			return i
		}
	}
	return -1
}
