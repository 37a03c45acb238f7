// Package event runs the event commands.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/stepio/pkg/app"
	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/printers"
)

type Add struct {
	App    *app.App
	Fields model.EventFields
}

func (a *Add) Do(ctx context.Context) error {
	e, err := a.App.Planner.AddEvent(ctx, a.Fields)
	if err != nil {
		return err
	}
	day, _ := model.ParseDate(e.Date)
	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(day.Format("Monday, January 2"))
	pp.Events(a.App.Planner.EventsOn(day)...)
	return a.App.Unsaved()
}

type Edit struct {
	App    *app.App
	ID     string
	Update model.EventUpdate
}

func (e *Edit) Do(ctx context.Context) error {
	ev, err := e.App.Planner.UpdateEvent(ctx, e.ID, e.Update)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Events(ev)
	return e.App.Unsaved()
}

type Delete struct {
	App *app.App
	IDs []string
}

func (d *Delete) Do(ctx context.Context) error {
	for _, id := range d.IDs {
		if err := d.App.Planner.DeleteEvent(ctx, id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(color.Output, "Deleted event %s.\n", id)
	}
	return d.App.Unsaved()
}

// List prints events, filtered to a day when On is set.
type List struct {
	App    *app.App
	On     *time.Time
	ShowID bool
	JSON   bool
}

func (l *List) Do(_ context.Context) error {
	events := l.App.Planner.Events()
	title := l.App.Translator.T("Events")
	if l.On != nil {
		events = l.App.Planner.EventsOn(*l.On)
		title = l.On.Format("Monday, January 2")
	}
	if l.JSON {
		return printers.JSON(nil, events)
	}
	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount(title, len(events), "events")
	pp.Events(events...)
	return nil
}
