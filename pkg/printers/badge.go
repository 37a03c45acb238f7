package printers

import (
	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/stepio/pkg/model"
)

var backgrounds = map[model.Color]color.Attribute{
	model.ColorYellow: color.BgYellow,
	model.ColorBlue:   color.BgHiBlue,
	model.ColorGreen:  color.BgGreen,
	model.ColorRed:    color.BgHiRed,
	model.ColorPurple: color.BgMagenta,
	model.ColorPink:   color.BgHiMagenta,
	model.ColorIndigo: color.BgBlue,
	model.ColorGray:   color.BgWhite,
}

// Badge paints text on the category color with a readable foreground.
func Badge(c model.Color, text string) string {
	bg, ok := backgrounds[c]
	if !ok {
		return text
	}
	fg := color.FgWhite
	if Light(c) {
		fg = color.FgBlack
	}
	return color.New(bg, fg).Sprint(text)
}

// Light reports whether dark text reads better on c than light text.
func Light(c model.Color) bool {
	cc, err := colorful.Hex(c.Hex())
	if err != nil {
		return false
	}
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return cc.DistanceCIE94(black) > cc.DistanceCIE94(white)
}
