// Package model defines the planner's entities, their wire shape, and the
// rules enforced whenever they are created or changed.
package model

// Task is a to-do item shown on the calendar for its Date.
type Task struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time" validate:"omitempty,clock"`
	Date        string `json:"date" validate:"required,isodate"`
	// Category holds a Category name, not its id.
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
	Icon      string `json:"icon"`
}

// Event is a calendar appointment. Events cannot be pinned.
type Event struct {
	ID           string `json:"id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	StartTime    string `json:"startTime" validate:"required,clock"`
	EndTime      string `json:"endTime,omitempty" validate:"omitempty,clock"`
	Date         string `json:"date" validate:"required,isodate"`
	Participants int    `json:"participants,omitempty" validate:"gte=0"`
}

// Category is a color-coded label tasks refer to by name.
type Category struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Color     Color  `json:"color" validate:"palette"`
	CreatedAt string `json:"createdAt" validate:"required,isodate"`
}

// User is the signed-in account as stored in the userData slot.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TaskFields are the caller-supplied fields of a new task.
type TaskFields struct {
	Title       string
	Description string
	Time        string
	Date        string
	Category    string
	Icon        string
}

// EventFields are the caller-supplied fields of a new event.
type EventFields struct {
	Title        string
	StartTime    string
	EndTime      string
	Date         string
	Participants int
}

// CategoryFields are the caller-supplied fields of a new category.
type CategoryFields struct {
	Name  string
	Color Color
}
