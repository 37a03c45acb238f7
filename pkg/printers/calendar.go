package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/stepio/pkg/calendar"
	"tableflip.dev/stepio/pkg/model"
)

const weekWidth = len("11 12 13 14 15 16 17")

// Month prints a compact month grid. Days with items are bold, today is
// yellow and the selected day is inverted.
func (pp *PrettyPrint) Month(g calendar.Grid) {
	tf := color.New(color.FgWhite, color.Italic)
	head := g.Month.Format("January 2006")
	mid := (weekWidth - len(head)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), head)
	_, _ = color.New(color.Faint).Fprintln(pp.out(), strings.Join(calendar.Weekdays[:], " "))

	plain := color.New(color.Faint, color.FgWhite)
	items := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.FgBlack, color.BgYellow)
	selected := color.New(color.ReverseVideo)

	for w := 0; w < calendar.Cells/7; w++ {
		week := g.Week(w)
		if w > 0 && week[0].Blank {
			break
		}
		cells := make([]string, 0, 7)
		for _, c := range week {
			if c.Blank {
				cells = append(cells, "  ")
				continue
			}
			p := plain
			switch {
			case c.Today:
				p = today
			case c.Selected:
				p = selected
			case c.HasItems:
				p = items
			}
			cells = append(cells, p.Sprintf("%2d", c.Day))
		}
		_, _ = fmt.Fprintln(pp.out(), strings.Join(cells, " "))
	}
	pp.NewLine()
}

// Agenda prints every day of the month that has something on it.
func (pp *PrettyPrint) Agenda(month time.Time, snap model.Snapshot) {
	b := color.New(color.Bold)
	days := calendar.DaysIn(month)
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	found := false
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		key := model.FormatDate(day)
		var tasks []model.Task
		for _, t := range snap.Tasks {
			if t.Date == key {
				tasks = append(tasks, t)
			}
		}
		var events []model.Event
		for _, e := range snap.Events {
			if e.Date == key {
				events = append(events, e)
			}
		}
		if len(tasks) == 0 && len(events) == 0 {
			continue
		}
		found = true
		_, _ = b.Fprintln(pp.out(), day.Format("Mon Jan 2"))
		for _, e := range events {
			_, _ = fmt.Fprintf(pp.out(), "  ◆ %s %s\n", e.StartTime, e.Title)
		}
		for _, t := range tasks {
			_, _ = fmt.Fprintf(pp.out(), "  %s %s %s\n", check(t.Completed), clock(t.Time), t.Title)
		}
	}
	if !found {
		pp.none()
	}
}
