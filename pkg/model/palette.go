package model

import (
	"fmt"
	"strings"
)

// Color is a category color token from the fixed palette.
type Color string

const (
	ColorYellow Color = "bg-yellow-400"
	ColorBlue   Color = "bg-blue-400"
	ColorGreen  Color = "bg-green-400"
	ColorRed    Color = "bg-red-400"
	ColorPurple Color = "bg-purple-400"
	ColorPink   Color = "bg-pink-400"
	ColorIndigo Color = "bg-indigo-400"
	ColorGray   Color = "bg-gray-400"
)

// DefaultColor is used by forms that do not pick a color.
const DefaultColor = ColorYellow

var paletteHex = map[Color]string{
	ColorYellow: "#facc15",
	ColorBlue:   "#60a5fa",
	ColorGreen:  "#4ade80",
	ColorRed:    "#f87171",
	ColorPurple: "#c084fc",
	ColorPink:   "#f472b6",
	ColorIndigo: "#818cf8",
	ColorGray:   "#9ca3af",
}

// Palette returns every supported color in display order.
func Palette() []Color {
	return []Color{
		ColorYellow,
		ColorBlue,
		ColorGreen,
		ColorRed,
		ColorPurple,
		ColorPink,
		ColorIndigo,
		ColorGray,
	}
}

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	_, ok := paletteHex[c]
	return ok
}

// Hex returns the RGB value used when the color is rendered on a terminal.
func (c Color) Hex() string {
	return paletteHex[c]
}

// Name is the short human name, "blue" for bg-blue-400.
func (c Color) Name() string {
	s := strings.TrimPrefix(string(c), "bg-")
	if i := strings.LastIndex(s, "-"); i > 0 {
		s = s[:i]
	}
	return s
}

// ParseColor accepts either a palette token or its short name.
func ParseColor(raw string) (Color, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultColor, nil
	}
	for _, c := range Palette() {
		if string(c) == raw || c.Name() == raw {
			return c, nil
		}
	}
	return "", Invalid(fmt.Sprintf("color %q is not in the palette", raw), nil)
}
