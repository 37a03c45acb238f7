// Package overlay holds the ephemeral modal and burger-menu state shared by
// the presentation layer. Nothing here is persisted.
package overlay

import (
	"fmt"
	"sync"

	"tableflip.dev/stepio/pkg/model"
)

// ModalType names a modal dialog.
type ModalType string

const (
	AddTask      ModalType = "add-task"
	EditTask     ModalType = "edit-task"
	Settings     ModalType = "settings"
	ViewAll      ModalType = "view-all"
	AddCategory  ModalType = "add-category"
	EditCategory ModalType = "edit-category"
	MusicList    ModalType = "music-list"
	AddEvent     ModalType = "add-event"
	EditEvent    ModalType = "edit-event"
)

var modalTypes = []ModalType{AddTask, EditTask, Settings, ViewAll, AddCategory, EditCategory, MusicList, AddEvent, EditEvent}

// ModalTypes lists every known modal.
func ModalTypes() []ModalType {
	return append([]ModalType(nil), modalTypes...)
}

// Valid reports whether t is a known modal.
func (t ModalType) Valid() bool {
	for _, m := range modalTypes {
		if m == t {
			return true
		}
	}
	return false
}

// MenuType names a burger menu.
type MenuType string

const (
	Profile  MenuType = "profile"
	MainMenu MenuType = "main-menu"
)

func (t MenuType) Valid() bool {
	return t == Profile || t == MainMenu
}

// Modal is the modal dialog state. Closing keeps Type and Title so a closing
// animation can still render them.
type Modal struct {
	IsOpen bool
	Type   ModalType
	Title  string
}

// BurgerMenu is the slide-in menu state.
type BurgerMenu struct {
	IsOpen bool
	Type   MenuType
}

// State is a copy of everything the overlay tracks.
type State struct {
	Modal      Modal
	BurgerMenu BurgerMenu
	EditingID  string
}

// Store guards the overlay state. The zero value is ready to use with
// everything closed.
type Store struct {
	mu    sync.Mutex
	state State
}

// New returns a store with everything closed.
func New() *Store {
	return &Store{}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// OpenModal shows modal t with title.
func (s *Store) OpenModal(t ModalType, title string) error {
	if !t.Valid() {
		return model.Invalid(fmt.Sprintf("overlay: unknown modal %q", t), nil)
	}
	s.mu.Lock()
	s.state.Modal = Modal{IsOpen: true, Type: t, Title: title}
	s.mu.Unlock()
	return nil
}

func (s *Store) CloseModal() {
	s.mu.Lock()
	s.state.Modal.IsOpen = false
	s.mu.Unlock()
}

// OpenBurgerMenu shows menu t.
func (s *Store) OpenBurgerMenu(t MenuType) error {
	if !t.Valid() {
		return model.Invalid(fmt.Sprintf("overlay: unknown menu %q", t), nil)
	}
	s.mu.Lock()
	s.state.BurgerMenu = BurgerMenu{IsOpen: true, Type: t}
	s.mu.Unlock()
	return nil
}

func (s *Store) CloseBurgerMenu() {
	s.mu.Lock()
	s.state.BurgerMenu.IsOpen = false
	s.mu.Unlock()
}

// SetEditing records which entity an edit modal works on. An empty id clears it.
func (s *Store) SetEditing(id string) {
	s.mu.Lock()
	s.state.EditingID = id
	s.mu.Unlock()
}

func (s *Store) Editing() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.EditingID
}

// ParseModalType converts a tag such as "edit-task" into a ModalType.
func ParseModalType(raw string) (ModalType, error) {
	t := ModalType(raw)
	if !t.Valid() {
		return "", model.Invalid(fmt.Sprintf("overlay: unknown modal %q", raw), nil)
	}
	return t, nil
}
