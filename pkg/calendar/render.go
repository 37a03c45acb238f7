package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Options styles a rendered grid.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	ItemsStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions follows the web palette: today in yellow, days with items
// in amber text, the selection in grey.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ItemsStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		TodayStyle:    lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")).Bold(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("245")).Foreground(lipgloss.Color("0")),
		ShowHeader:    true,
	}
}

// Render draws the grid as text, one week per line. Trailing blank weeks are
// kept so the height never changes between months.
func Render(g Grid, opts Options) string {
	lines := make([]string, 0, 7)
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(strings.Join(Weekdays[:], " ")))
	}
	for w := 0; w < Cells/7; w++ {
		cells := make([]string, 0, 7)
		for _, c := range g.Week(w) {
			cells = append(cells, renderCell(c, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, opts Options) string {
	if c.Blank {
		return opts.EmptyStyle.Render("  ")
	}
	style := opts.EmptyStyle
	if c.HasItems {
		style = opts.ItemsStyle
	}
	switch {
	case c.Today && c.Selected:
		style = opts.SelectedStyle.Copy().Bold(true)
	case c.Today:
		style = opts.TodayStyle
	case c.Selected:
		style = opts.SelectedStyle
	}
	return style.Render(fmt.Sprintf("%2d", c.Day))
}
