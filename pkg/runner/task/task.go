// Package task runs the task commands.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/stepio/pkg/app"
	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/printers"
	"tableflip.dev/stepio/pkg/timeutil"
)

// Add creates a task and prints the tasks of its day.
type Add struct {
	App    *app.App
	Fields model.TaskFields
	Pin    bool
	ShowID bool
}

func (a *Add) Do(ctx context.Context) error {
	t, err := a.App.Planner.AddTask(ctx, a.Fields)
	if err != nil {
		return err
	}
	if a.Pin {
		if err := a.App.Planner.PinTask(ctx, t.ID); err != nil {
			return err
		}
	}
	day, _ := model.ParseDate(t.Date)
	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.Title(day.Format("Monday, January 2"))
	pp.Tasks(a.App.Planner.TasksOn(day)...)
	return a.App.Unsaved()
}

// Edit changes selected fields of a task. With Refresh the pinned copy is
// brought up to date too.
type Edit struct {
	App     *app.App
	ID      string
	Update  model.TaskUpdate
	Refresh bool
}

func (e *Edit) Do(ctx context.Context) error {
	t, err := e.App.Planner.UpdateTask(ctx, e.ID, e.Update)
	if err != nil {
		return err
	}
	if e.Refresh {
		if err := e.App.Planner.RefreshPinned(ctx, e.ID); err != nil {
			return err
		}
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Task(t)
	return e.App.Unsaved()
}

// Delete removes tasks, pinned copies included.
type Delete struct {
	App *app.App
	IDs []string
}

func (d *Delete) Do(ctx context.Context) error {
	for _, id := range d.IDs {
		if err := d.App.Planner.DeleteTask(ctx, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(color.Output, "Deleted task %s.\n", id)
	}
	return d.App.Unsaved()
}

// Done toggles completion.
type Done struct {
	App *app.App
	IDs []string
}

func (d *Done) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: true}
	for _, id := range d.IDs {
		t, err := d.App.Planner.ToggleTaskCompletion(ctx, id)
		if err != nil {
			return err
		}
		pp.Tasks(t)
	}
	return d.App.Unsaved()
}

// Pin copies tasks into the weekly pinned list, or removes them when Unpin
// is set.
type Pin struct {
	App   *app.App
	IDs   []string
	Unpin bool
}

func (p *Pin) Do(ctx context.Context) error {
	for _, id := range p.IDs {
		var err error
		if p.Unpin {
			err = p.App.Planner.UnpinTask(ctx, id)
		} else {
			err = p.App.Planner.PinTask(ctx, id)
		}
		if err != nil {
			return err
		}
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(p.App.Translator.T("Weekly Pinned"))
	pp.Tasks(p.App.Planner.PinnedTasks()...)
	return p.App.Unsaved()
}

// List prints tasks, filtered to a day when On is set.
type List struct {
	App       *app.App
	On        *time.Time
	Pinned    bool
	Completed *bool
	Category  string
	ShowID    bool
	JSON      bool
}

func (l *List) Do(_ context.Context) error {
	var tasks []model.Task
	title := l.App.Translator.T("Tasks")
	switch {
	case l.Pinned:
		tasks = l.App.Planner.PinnedTasks()
		title = l.App.Translator.T("Weekly Pinned")
	case l.On != nil:
		tasks = l.App.Planner.TasksOn(*l.On)
		title = l.On.Format("Monday, January 2")
	default:
		tasks = l.App.Planner.Tasks()
	}
	tasks = filter(tasks, func(t model.Task) bool {
		if l.Completed != nil && t.Completed != *l.Completed {
			return false
		}
		return l.Category == "" || t.Category == l.Category
	})

	if l.JSON {
		return printers.JSON(nil, tasks)
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount(title, len(tasks), "tasks")
	pp.Tasks(tasks...)
	return nil
}

// Show prints one task in full.
type Show struct {
	App  *app.App
	ID   string
	JSON bool
}

func (s *Show) Do(_ context.Context) error {
	t, ok := s.App.Planner.Task(s.ID)
	if !ok {
		return model.NotFound("task", s.ID)
	}
	if s.JSON {
		return printers.JSON(nil, t)
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Task(t)
	return nil
}

// Upcoming prints open tasks and events from today through Window.
type Upcoming struct {
	App    *app.App
	Window string
	ShowID bool
	JSON   bool
}

func (u *Upcoming) Do(_ context.Context) error {
	span, label, err := timeutil.ParseWindow(u.Window)
	if err != nil {
		return model.Invalid("bad --window", err)
	}
	type day struct {
		Date   string        `json:"date"`
		Tasks  []model.Task  `json:"tasks"`
		Events []model.Event `json:"events"`
	}
	var days []day
	for _, d := range timeutil.Days(time.Now(), span) {
		tasks := filter(u.App.Planner.TasksOn(d), func(t model.Task) bool { return !t.Completed })
		events := u.App.Planner.EventsOn(d)
		if len(tasks) == 0 && len(events) == 0 {
			continue
		}
		days = append(days, day{Date: model.FormatDate(d), Tasks: tasks, Events: events})
	}

	if u.JSON {
		if days == nil {
			days = []day{}
		}
		return printers.JSON(nil, days)
	}
	pp := printers.PrettyPrint{ShowID: u.ShowID}
	pp.Title("Upcoming " + label)
	if len(days) == 0 {
		pp.Tasks()
		return nil
	}
	for _, d := range days {
		on, _ := model.ParseDate(d.Date)
		_, _ = color.New(color.Bold).Fprintln(color.Output, on.Format("Mon Jan 2"))
		if len(d.Events) > 0 {
			pp.Events(d.Events...)
		}
		if len(d.Tasks) > 0 {
			pp.Tasks(d.Tasks...)
		}
	}
	return nil
}

func filter(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
