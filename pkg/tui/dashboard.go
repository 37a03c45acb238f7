// Package tui is the interactive dashboard: clock, month calendar, the
// selected day's schedule, pinned tasks and categories.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tableflip.dev/stepio/pkg/app"
	"tableflip.dev/stepio/pkg/calendar"
	"tableflip.dev/stepio/pkg/model"
	"tableflip.dev/stepio/pkg/overlay"
	"tableflip.dev/stepio/pkg/store"
	"tableflip.dev/stepio/pkg/timeutil"
)

type clockMsg time.Time

// Model is the dashboard state. Domain data is always read from the
// planner so external edits show up after a reload.
type Model struct {
	ctx    context.Context
	app    *app.App
	theme  Theme
	logger *zap.Logger

	now      func() time.Time
	every    time.Duration
	clock    time.Time
	selected time.Time
	cursor   int

	// input is the single-line field of the add and edit modals.
	input string

	width  int
	height int
	status string

	start overlay.ModalType

	watcher     Watcher
	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// Option configures the dashboard.
type Option func(*Model)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithModal opens t as soon as the dashboard starts. Types outside
// StartModals are reported in the status line instead.
func WithModal(t overlay.ModalType) Option {
	return func(m *Model) { m.start = t }
}

// startTitles are the modals that need no selected item to open.
var startTitles = map[overlay.ModalType]string{
	overlay.AddTask:     "Add New Task",
	overlay.AddCategory: "Add New Category",
	overlay.ViewAll:     "All Pinned Tasks",
	overlay.Settings:    "Settings",
}

// StartModals lists the modals WithModal can open.
func StartModals() []overlay.ModalType {
	var out []overlay.ModalType
	for _, t := range overlay.ModalTypes() {
		if _, ok := startTitles[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// WithWatcher overrides the source of change events. Nil disables watching.
func WithWatcher(w Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// New builds the dashboard over a.
func New(ctx context.Context, a *app.App, opts ...Option) Model {
	m := Model{
		ctx:     ctx,
		app:     a,
		theme:   DefaultTheme(),
		logger:  a.Logger,
		now:     time.Now,
		every:   a.ClockEvery(),
		watcher: a.Gateway,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.clock = m.now()
	m.selected = m.clock
	if m.start != "" {
		m.openStart(m.start)
	}
	return m
}

func (m *Model) openStart(t overlay.ModalType) {
	title, ok := startTitles[t]
	switch {
	case !ok:
		m.status = fmt.Sprintf("%s cannot be opened at start", t)
	case inputModal(t):
		m.openInput(t, title, "", "")
	default:
		m.openModal(t, title)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), startWatchCmd(m.ctx, m.watcher))
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickDelay(), func(t time.Time) tea.Msg { return clockMsg(t) })
}

// tickDelay lands whole-minute intervals on the minute rollover so the
// header never lags the wall clock.
func (m Model) tickDelay() time.Duration {
	if m.every <= 0 || m.every%time.Minute != 0 {
		return m.every
	}
	return timeutil.UntilNextMinute(m.clock) + m.every - time.Minute
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case clockMsg:
		m.clock = time.Time(msg)
		if m.ctx.Err() == nil {
			cmds = append(cmds, m.tick())
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.status = "not watching: " + msg.err.Error()
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		if msg.event.Slot == "" || msg.event.Slot == store.SlotAppData {
			m.app.Planner.Reload(m.ctx)
			m.clampCursor()
			m.status = "reloaded"
		}
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.watcher))
		}
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ov := m.app.Overlay.State()
	key := msg.String()

	if key == "ctrl+c" {
		return m.quit()
	}
	if ov.Modal.IsOpen {
		return m.handleModalKey(ov.Modal.Type, msg)
	}
	if ov.BurgerMenu.IsOpen {
		return m.handleMenuKey(ov.BurgerMenu.Type, key)
	}

	switch key {
	case "q":
		return m.quit()
	case "left", "h":
		m.selectDay(calendar.PrevDay(m.selected))
	case "right", "l":
		m.selectDay(calendar.NextDay(m.selected))
	case "up":
		m.selectDay(calendar.PrevMonth(m.selected))
	case "down":
		m.selectDay(calendar.NextMonth(m.selected))
	case "t":
		m.selectDay(m.now())
	case "j":
		m.cursor++
		m.clampCursor()
	case "k":
		m.cursor--
		m.clampCursor()
	case "x", " ":
		m.toggleCurrent()
	case "P":
		m.pinCurrent()
	case "a":
		m.openInput(overlay.AddTask, "Add New Task", "", "")
	case "e":
		if t, ok := m.currentTask(); ok {
			m.openInput(overlay.EditTask, "Edit Task", t.ID, t.Title)
		}
	case "c":
		m.openInput(overlay.AddCategory, "Add New Category", "", "")
	case "v":
		m.openModal(overlay.ViewAll, "All Pinned Tasks")
	case "s":
		m.openModal(overlay.Settings, "Settings")
	case "m":
		m.openMenu(overlay.MainMenu)
	case "p":
		m.openMenu(overlay.Profile)
	}
	return nil
}

func (m *Model) handleModalKey(t overlay.ModalType, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeModal()
		return nil
	case tea.KeyEnter:
		if inputModal(t) {
			m.submit(t)
			return nil
		}
		m.closeModal()
		return nil
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
		return nil
	case tea.KeyRunes, tea.KeySpace:
		if inputModal(t) {
			if msg.Type == tea.KeySpace {
				m.input += " "
			} else {
				m.input += string(msg.Runes)
			}
			return nil
		}
	}
	if !inputModal(t) && msg.String() == "q" {
		m.closeModal()
	}
	return nil
}

func (m *Model) handleMenuKey(t overlay.MenuType, key string) tea.Cmd {
	switch key {
	case "esc", "q", "m", "p":
		m.app.Overlay.CloseBurgerMenu()
	case "s":
		m.app.Overlay.CloseBurgerMenu()
		m.openModal(overlay.Settings, "Settings")
	case "v":
		m.app.Overlay.CloseBurgerMenu()
		m.openModal(overlay.ViewAll, "All Pinned Tasks")
	case "L":
		m.toggleLanguage()
	case "o":
		if t == overlay.Profile {
			m.app.Session.Logout()
			m.status = "signed out"
			return m.quit()
		}
	}
	return nil
}

func inputModal(t overlay.ModalType) bool {
	return t == overlay.AddTask || t == overlay.EditTask || t == overlay.AddCategory
}

func (m *Model) openModal(t overlay.ModalType, title string) {
	if err := m.app.Overlay.OpenModal(t, m.app.Translator.T(title)); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) openInput(t overlay.ModalType, title, editing, value string) {
	m.app.Overlay.SetEditing(editing)
	m.input = value
	m.openModal(t, title)
}

func (m *Model) closeModal() {
	m.app.Overlay.CloseModal()
	m.app.Overlay.SetEditing("")
	m.input = ""
}

func (m *Model) openMenu(t overlay.MenuType) {
	if err := m.app.Overlay.OpenBurgerMenu(t); err != nil {
		m.status = err.Error()
	}
}

// submit applies the add or edit modal. Validation errors keep the modal
// open so the text can be fixed.
func (m *Model) submit(t overlay.ModalType) {
	ctx := m.ctx
	var err error
	switch t {
	case overlay.AddTask:
		_, err = m.app.Planner.AddTask(ctx, model.TaskFields{Title: m.input, Date: model.FormatDate(m.selected)})
	case overlay.EditTask:
		_, err = m.app.Planner.UpdateTask(ctx, m.app.Overlay.Editing(), model.TaskUpdate{Title: model.String(m.input)})
	case overlay.AddCategory:
		_, err = m.app.Planner.AddCategory(ctx, model.CategoryFields{Name: m.input, Color: model.DefaultColor})
	}
	if err != nil {
		m.status = err.Error()
		if errors.Is(err, model.ErrNotFound) {
			m.closeModal()
		}
		return
	}
	m.status = m.saveStatus()
	m.closeModal()
	m.clampCursor()
}

func (m *Model) selectDay(d time.Time) {
	m.selected = d
	m.cursor = 0
}

func (m *Model) dayTasks() []model.Task {
	return m.app.Planner.TasksOn(m.selected)
}

func (m *Model) currentTask() (model.Task, bool) {
	tasks := m.dayTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.dayTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) toggleCurrent() {
	t, ok := m.currentTask()
	if !ok {
		return
	}
	if _, err := m.app.Planner.ToggleTaskCompletion(m.ctx, t.ID); err != nil {
		m.status = err.Error()
		return
	}
	m.status = m.saveStatus()
}

func (m *Model) pinCurrent() {
	t, ok := m.currentTask()
	if !ok {
		return
	}
	if err := m.app.Planner.PinTask(m.ctx, t.ID); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("pinned %q", t.Title)
}

func (m *Model) toggleLanguage() {
	next := "id"
	if m.app.Translator.Language() == "id" {
		next = "en"
	}
	if err := m.app.Translator.SetLanguage(next); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) saveStatus() string {
	if err := m.app.Unsaved(); err != nil {
		return err.Error()
	}
	return "saved"
}

func (m *Model) quit() tea.Cmd {
	m.stopWatch()
	return tea.Quit
}

// Run starts the dashboard full screen until the user quits or ctx ends.
func Run(ctx context.Context, a *app.App, opts ...Option) error {
	p := tea.NewProgram(New(ctx, a, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
