package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/stepio/pkg/calendar"
	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/overlay"
	"tableflip.dev/stepio/pkg/timeutil"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	sideWidth     = 24
	pinnedPreview = 3
)

func (m Model) View() string {
	w, h := m.size()
	tr := m.app.Translator

	header := m.header(w)
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.panel(m.selected.Format("January, 2006"), m.calendarView(), sideWidth),
		m.panel(tr.T("Weekly Pinned"), m.pinnedView(), sideWidth),
		m.panel(tr.T("Categories"), m.categoriesView(), sideWidth),
	)
	rightWidth := w - sideWidth - 6
	if rightWidth < 20 {
		rightWidth = 20
	}
	right := m.panel(tr.T("Today's schedule"), m.scheduleView(rightWidth), rightWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	footer := m.footer()
	screen := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	ov := m.app.Overlay.State()
	switch {
	case ov.Modal.IsOpen:
		screen = overlay.Compose(screen, w, h, m.modalView(ov.Modal), overlay.Centered)
	case ov.BurgerMenu.IsOpen:
		screen = overlay.Compose(screen, w, h, m.menuView(ov.BurgerMenu.Type), overlay.PlacementFor(ov.BurgerMenu.Type))
	}
	return screen
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m Model) header(width int) string {
	brand := m.theme.Brand.Render(m.app.Translator.T("Step.io"))
	clock := m.theme.Clock.Render(timeutil.FormatClock(m.clock))
	date := m.theme.Date.Render(m.clock.Format("Monday, January 2"))
	left := lipgloss.JoinHorizontal(lipgloss.Top, brand, "   ", clock, "  ", date)

	who := ""
	if u := m.app.Session.State().User; u != nil {
		who = m.theme.Muted.Render(u.Name)
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(who)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + who
}

// panel frames body under a heading.
func (m Model) panel(title, body string, width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left, m.theme.Heading.Render(title), body)
	return m.theme.Panel.Copy().Width(width).Render(content)
}

func (m Model) calendarView() string {
	g := calendar.Month(m.selected, m.selected, m.now(), m.app.Planner.HasItemsOn)
	return calendar.Render(g, m.theme.Calendar)
}

func (m Model) pinnedView() string {
	pinned := m.app.Planner.PinnedTasks()
	if len(pinned) == 0 {
		return m.theme.Muted.Render(m.app.Translator.T("Add new weekly pin"))
	}
	lines := make([]string, 0, pinnedPreview+1)
	for i, t := range pinned {
		if i == pinnedPreview {
			break
		}
		lines = append(lines, m.taskLine(t, sideWidth-2, false))
	}
	lines = append(lines, m.theme.Muted.Render(m.app.Translator.T("View all")+" (v)"))
	return strings.Join(lines, "\n")
}

func (m Model) categoriesView() string {
	tr := m.app.Translator
	cats := m.app.Planner.Categories()
	if len(cats) == 0 {
		return m.theme.Muted.Render(tr.T("No categories yet"))
	}
	lines := []string{m.theme.Muted.Render(fmt.Sprintf("%d %s", m.app.Planner.ActiveCategoriesCount(), tr.T("active categories")))}
	for _, c := range cats {
		count := m.theme.Muted.Render(fmt.Sprintf("%d", m.app.Planner.CategoryTaskCount(c.ID)))
		name := truncate.StringWithTail(tr.T(c.Name), uint(sideWidth-8), "…")
		lines = append(lines, fmt.Sprintf("%s %s %s", Swatch(c.Color), name, count))
	}
	return strings.Join(lines, "\n")
}

func (m Model) scheduleView(width int) string {
	tr := m.app.Translator
	lines := []string{m.theme.Date.Render(m.selected.Format("Monday, January 2"))}

	for _, e := range m.app.Planner.EventsOn(m.selected) {
		span := e.StartTime
		if e.EndTime != "" {
			span += "-" + e.EndTime
		}
		lines = append(lines, truncate.StringWithTail(fmt.Sprintf("◆ %s %s", span, e.Title), uint(width-2), "…"))
	}

	tasks := m.dayTasks()
	if len(tasks) == 0 {
		lines = append(lines, m.theme.Muted.Render(tr.T("No tasks scheduled for today")))
	}
	for i, t := range tasks {
		lines = append(lines, m.taskLine(t, width-2, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) taskLine(t model.Task, width int, current bool) string {
	box := "□"
	if t.Completed {
		box = "✔"
	}
	when := t.Time
	if when == "" {
		when = "     "
	}
	marker := " "
	if current {
		marker = "›"
	}
	text := truncate.StringWithTail(fmt.Sprintf("%s%s %s %s %s", marker, box, when, t.Icon, t.Title), uint(width), "…")
	if t.Completed {
		return m.theme.Done.Render(text)
	}
	return text
}

func (m Model) footer() string {
	help := helpLine(Bindings())
	if m.status == "" {
		return m.theme.Help.Render(help)
	}
	return m.theme.Status.Render(m.status) + "  " + m.theme.Help.Render(help)
}

func (m Model) modalView(md overlay.Modal) string {
	tr := m.app.Translator
	var body string
	switch md.Type {
	case overlay.ViewAll:
		pinned := m.app.Planner.PinnedTasks()
		lines := make([]string, 0, len(pinned))
		for _, t := range pinned {
			lines = append(lines, m.taskLine(t, 48, false)+"  "+m.theme.Muted.Render(t.Date))
		}
		if len(lines) == 0 {
			lines = append(lines, m.theme.Muted.Render(tr.T("Add new weekly pin")))
		}
		body = strings.Join(lines, "\n")
	case overlay.Settings:
		s := m.app.Settings
		body = strings.Join([]string{
			fmt.Sprintf("%s: %s", tr.T("Language"), tr.Language()),
			fmt.Sprintf("data: %s (%s)", s.BasePath(), s.Driver()),
			fmt.Sprintf("clock: every %s", timeutil.FormatWindow(m.every)),
		}, "\n")
	case overlay.AddTask, overlay.EditTask:
		body = fmt.Sprintf("%s: %s▏\n%s: %s", tr.T("Task Title"), m.input, tr.T("Date"), model.FormatDate(m.selected))
	case overlay.AddCategory:
		body = fmt.Sprintf("%s: %s▏\n%s: %s", tr.T("Category Name"), m.input, tr.T("Color"), model.DefaultColor.Name())
	default:
		body = m.theme.Muted.Render("-")
	}
	hint := m.theme.Help.Render("esc " + strings.ToLower(tr.T("Close")))
	if inputModal(md.Type) {
		hint = m.theme.Help.Render("enter " + strings.ToLower(tr.T("Save")) + "  esc " + strings.ToLower(tr.T("Cancel")))
	}
	return m.theme.Modal.Render(lipgloss.JoinVertical(lipgloss.Left, m.theme.Heading.Render(md.Title), "", body, "", hint))
}

func (m Model) menuView(t overlay.MenuType) string {
	tr := m.app.Translator
	var lines []string
	switch t {
	case overlay.Profile:
		if u := m.app.Session.State().User; u != nil {
			lines = append(lines, m.theme.Heading.Render(u.Name), m.theme.Muted.Render(u.Email), "")
		}
		lines = append(lines, "o  "+tr.T("Logout"))
	default:
		lines = append(lines,
			m.theme.Heading.Render(tr.T("Menu")),
			"s  "+tr.T("Settings"),
			"v  "+tr.T("View all"),
			"L  "+tr.T("Language")+": "+tr.Language(),
		)
	}
	return m.theme.Menu.Render(strings.Join(lines, "\n"))
}
