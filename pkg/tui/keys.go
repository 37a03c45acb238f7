package tui

import "strings"

// Binding documents one dashboard key.
type Binding struct {
	Keys string
	Help string
}

// Bindings are the dashboard keys outside of modals and menus.
func Bindings() []Binding {
	return []Binding{
		{"←/→", "day"},
		{"↑/↓", "month"},
		{"t", "today"},
		{"j/k", "move"},
		{"x", "done"},
		{"P", "pin"},
		{"a", "add"},
		{"e", "edit"},
		{"c", "category"},
		{"v", "pinned"},
		{"s", "settings"},
		{"m", "menu"},
		{"p", "profile"},
		{"q", "quit"},
	}
}

// MenuBindings are the keys understood while a menu is open.
func MenuBindings() []Binding {
	return []Binding{
		{"s", "settings"},
		{"v", "all pinned tasks"},
		{"L", "switch language"},
		{"o", "logout (profile menu)"},
		{"esc", "close"},
	}
}

func helpLine(bs []Binding) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		parts = append(parts, b.Keys+" "+b.Help)
	}
	return strings.Join(parts, "  ")
}
