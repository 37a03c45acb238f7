// Package calendar lays out a month as a fixed six-week grid starting on
// Monday.
package calendar

import "time"

// Cells is the size of every grid: six weeks of seven days.
const Cells = 42

// Cell is one square of the grid. Blank cells fall outside the month and
// carry nothing else.
type Cell struct {
	Blank    bool
	Day      int
	Date     time.Time
	Selected bool
	Today    bool
	HasItems bool
}

// Grid is a laid-out month.
type Grid struct {
	Month time.Time
	Cells [Cells]Cell
}

// Weekdays are the column headings, Monday first.
var Weekdays = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Month lays out the month containing anchor. hasItems may be nil.
func Month(anchor, selected, today time.Time, hasItems func(time.Time) bool) Grid {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	lead := MondayOffset(first)
	days := DaysIn(first)

	g := Grid{Month: first}
	for i := range g.Cells {
		day := i - lead + 1
		if day < 1 || day > days {
			g.Cells[i] = Cell{Blank: true}
			continue
		}
		date := first.AddDate(0, 0, day-1)
		c := Cell{
			Day:      day,
			Date:     date,
			Selected: sameDay(date, selected),
			Today:    sameDay(date, today),
		}
		if hasItems != nil {
			c.HasItems = hasItems(date)
		}
		g.Cells[i] = c
	}
	return g
}

// Week returns row w (0-5) of the grid.
func (g Grid) Week(w int) []Cell {
	return g.Cells[w*7 : w*7+7]
}

// MondayOffset is how many blank cells precede the 1st: Monday is 0 and
// Sunday is 6.
func MondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// NextMonth moves to the same day next month, clamped to that month's end.
func NextMonth(t time.Time) time.Time { return addMonths(t, 1) }

// PrevMonth moves to the same day last month, clamped to that month's end.
func PrevMonth(t time.Time) time.Time { return addMonths(t, -1) }

func NextDay(t time.Time) time.Time { return t.AddDate(0, 0, 1) }

func PrevDay(t time.Time) time.Time { return t.AddDate(0, 0, -1) }

func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := DaysIn(first); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
