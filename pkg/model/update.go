package model

// TaskUpdate changes selected task fields. Nil fields are left alone.
type TaskUpdate struct {
	Title       *string
	Description *string
	Time        *string
	Date        *string
	Category    *string
	Completed   *bool
	Icon        *string
}

// Apply returns t with the update merged in, validated as a whole.
func (u TaskUpdate) Apply(t Task) (Task, error) {
	setString(&t.Title, u.Title)
	setString(&t.Description, u.Description)
	setString(&t.Time, u.Time)
	setString(&t.Date, u.Date)
	setString(&t.Category, u.Category)
	setString(&t.Icon, u.Icon)
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	if err := Validate(t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// EventUpdate changes selected event fields. Nil fields are left alone.
type EventUpdate struct {
	Title        *string
	StartTime    *string
	EndTime      *string
	Date         *string
	Participants *int
}

// Apply returns e with the update merged in, validated as a whole.
func (u EventUpdate) Apply(e Event) (Event, error) {
	setString(&e.Title, u.Title)
	setString(&e.StartTime, u.StartTime)
	setString(&e.EndTime, u.EndTime)
	setString(&e.Date, u.Date)
	if u.Participants != nil {
		e.Participants = *u.Participants
	}
	if err := Validate(e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// CategoryUpdate changes selected category fields. Nil fields are left alone.
type CategoryUpdate struct {
	Name  *string
	Color *Color
}

// Apply returns c with the update merged in, validated as a whole.
func (u CategoryUpdate) Apply(c Category) (Category, error) {
	setString(&c.Name, u.Name)
	if u.Color != nil {
		c.Color = *u.Color
	}
	if err := Validate(c); err != nil {
		return Category{}, err
	}
	return c, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// String returns a pointer to s, for building updates.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building updates.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for building updates.
func Int(i int) *int { return &i }
