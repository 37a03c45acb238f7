package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Placement positions a foreground block over a background.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Centered places the block in the middle of the screen.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// PlacementFor returns where a burger menu slides in: the main menu on the
// left, the profile menu on the right.
func PlacementFor(t MenuType) Placement {
	if t == Profile {
		return Placement{Horizontal: lipgloss.Right, Vertical: lipgloss.Top, MarginX: 1, MarginY: 1}
	}
	return Placement{Horizontal: lipgloss.Left, Vertical: lipgloss.Top, MarginX: 1, MarginY: 1}
}

// Compose draws foreground on top of a width x height background, keeping the
// background visible around it.
func Compose(background string, width, height int, foreground string, p Placement) string {
	bg := normalize(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bg, "\n")
	}

	fg := strings.Split(foreground, "\n")
	fgWidth := 0
	for _, line := range fg {
		if w := lipgloss.Width(line); w > fgWidth {
			fgWidth = w
		}
	}
	if fgWidth > width {
		fgWidth = width
	}
	fgHeight := len(fg)
	if fgHeight > height {
		fgHeight = height
	}

	x := offset(p.Horizontal, width, fgWidth, p.MarginX)
	y := offset(p.Vertical, height, fgHeight, p.MarginY)

	for row := 0; row < fgHeight; row++ {
		line := pad(fg[row], fgWidth)
		base := bg[y+row]
		bg[y+row] = cut(base, 0, x) + line + cut(base, x+fgWidth, width)
	}
	return strings.Join(bg, "\n")
}

func offset(pos lipgloss.Position, total, size, margin int) int {
	var o int
	switch {
	case pos <= lipgloss.Left:
		o = margin
	case pos >= lipgloss.Right:
		o = total - size - margin
	default:
		o = int(float64(total-size) * float64(pos))
	}
	if o > total-size {
		o = total - size
	}
	if o < 0 {
		o = 0
	}
	return o
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.PrintableRuneWidth(s)
	if w > width {
		return truncate.String(s, uint(width))
	}
	return s + strings.Repeat(" ", width-w)
}

// cut returns the cells [start, end) of a plain line. Styling inside the
// background is dropped for the covered rows.
func cut(s string, start, end int) string {
	if start >= end {
		return ""
	}
	var b strings.Builder
	seen := 0
	for _, r := range stripANSI(s) {
		rw := ansi.PrintableRuneWidth(string(r))
		if seen >= start && seen+rw <= end {
			b.WriteRune(r)
		}
		seen += rw
		if seen >= end {
			break
		}
	}
	return b.String()
}

func stripANSI(s string) string {
	var b strings.Builder
	inSeq := false
	for _, r := range s {
		switch {
		case r == ansi.Marker:
			inSeq = true
		case inSeq:
			if ansi.IsTerminator(r) {
				inSeq = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
