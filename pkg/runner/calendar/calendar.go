// Package calendar prints the month view and, with Watch, redraws it when
// the data directory changes.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/stepio/pkg/app"
	cal "tableflip.dev/stepio/pkg/calendar"
	"tableflip.dev/stepio/pkg/logging"
	"tableflip.dev/stepio/pkg/printers"
	"tableflip.dev/stepio/pkg/store"
)

type Calendar struct {
	App *app.App
	// On selects the day; the month shown is the one containing it.
	On     time.Time
	Agenda bool
	Watch  bool
	// Clear redraws in place between updates.
	Clear bool
}

func (c *Calendar) Do(ctx context.Context) error {
	if c.On.IsZero() {
		c.On = time.Now()
	}
	c.print()
	if !c.Watch {
		return nil
	}

	events, err := c.App.Gateway.Watch(ctx)
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Slot != "" && ev.Slot != store.SlotAppData {
				continue
			}
			logger.Debug("calendar: data changed, reloading", zap.String("slot", ev.Slot))
			c.App.Planner.Reload(ctx)
			c.print()
		}
	}
}

func (c *Calendar) print() {
	if c.Clear {
		_, _ = fmt.Fprint(color.Output, "\033[H\033[2J")
	}
	grid := cal.Month(c.On, c.On, time.Now(), c.App.Planner.HasItemsOn)
	pp := printers.PrettyPrint{}
	pp.Month(grid)

	pp.Title(c.On.Format("Monday, January 2"))
	pp.Events(c.App.Planner.EventsOn(c.On)...)
	pp.Tasks(c.App.Planner.TasksOn(c.On)...)

	if c.Agenda {
		pp.Title(grid.Month.Format("January 2006"))
		pp.Agenda(grid.Month, c.App.Planner.Snapshot())
	}
}
