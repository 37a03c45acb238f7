package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/stepio/pkg/model"
)

// PrettyPrint writes colored listings for a terminal.
type PrettyPrint struct {
	ShowID bool
	// Width wraps descriptions. Zero means 80.
	Width int
	Out   io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, noun)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Tasks lists tasks one per row.
func (pp *PrettyPrint) Tasks(tasks ...model.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}
	faint := color.New(color.Faint)
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width() / 2)
	for _, t := range tasks {
		row := make([]interface{}, 0, 7)
		if pp.ShowID {
			row = append(row, y.Sprint(t.ID))
		}
		title := t.Title
		if t.Completed {
			title = done.Sprint(title)
		}
		row = append(row, check(t.Completed), t.Icon, title, clock(t.Time), t.Date, faint.Sprint(t.Category))
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Task shows one task with its wrapped description.
func (pp *PrettyPrint) Task(t model.Task) {
	b := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = fmt.Fprintf(pp.out(), "%s %s %s\n", check(t.Completed), t.Icon, b.Sprint(t.Title))
	if pp.ShowID {
		_, _ = faint.Fprintf(pp.out(), "    id:       %s\n", t.ID)
	}
	_, _ = fmt.Fprintf(pp.out(), "    date:     %s %s\n", t.Date, clock(t.Time))
	if t.Category != "" {
		_, _ = fmt.Fprintf(pp.out(), "    category: %s\n", t.Category)
	}
	if t.Description != "" {
		body := indent.String(wordwrap.String(t.Description, pp.width()-4), 4)
		_, _ = fmt.Fprintf(pp.out(), "\n%s\n", body)
	}
	pp.NewLine()
}

// Events lists events one per row.
func (pp *PrettyPrint) Events(events ...model.Event) {
	if len(events) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width() / 2)
	for _, e := range events {
		row := make([]interface{}, 0, 5)
		if pp.ShowID {
			row = append(row, y.Sprint(e.ID))
		}
		span := e.StartTime
		if e.EndTime != "" {
			span += "-" + e.EndTime
		}
		people := ""
		if e.Participants > 0 {
			people = faint.Sprintf("%d people", e.Participants)
		}
		row = append(row, span, e.Title, e.Date, people)
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Categories lists categories with a color swatch and how many tasks use
// each one.
func (pp *PrettyPrint) Categories(count func(model.Category) int, categories ...model.Category) {
	if len(categories) == 0 {
		pp.none()
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range categories {
		row := make([]interface{}, 0, 5)
		if pp.ShowID {
			row = append(row, y.Sprint(c.ID))
		}
		n := 0
		if count != nil {
			n = count(c)
		}
		row = append(row, Badge(c.Color, " "+c.Color.Name()+" "), c.Name, faint.Sprintf("%d tasks", n), faint.Sprint(c.CreatedAt))
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Palette prints every selectable category color.
func (pp *PrettyPrint) Palette() {
	parts := make([]string, 0, len(model.Palette()))
	for _, c := range model.Palette() {
		parts = append(parts, Badge(c, " "+c.Name()+" "))
	}
	_, _ = fmt.Fprintln(pp.out(), strings.Join(parts, " "))
}

// Mark is one symbol used in task listings.
type Mark struct {
	Symbol  string
	Meaning string
}

// Marks lists the symbols Tasks and Task print.
func Marks() []Mark {
	return []Mark{
		{check(false), "open"},
		{check(true), "completed"},
		{clock(""), "no time set"},
	}
}

func check(done bool) string {
	if done {
		return color.New(color.FgGreen).Sprint("✔")
	}
	return "□"
}

func clock(hhmm string) string {
	if hhmm == "" {
		return "--:--"
	}
	return hhmm
}
