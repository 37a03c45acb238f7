package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/stepio/pkg/calendar"
	"tableflip.dev/stepio/pkg/model"
)

// Theme centralizes Lip Gloss styles for the dashboard.
type Theme struct {
	Brand    lipgloss.Style
	Clock    lipgloss.Style
	Date     lipgloss.Style
	Panel    lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style
	Done     lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
	Modal    lipgloss.Style
	Menu     lipgloss.Style
	Calendar calendar.Options
}

// DefaultTheme follows the web app: white cards, yellow accents.
func DefaultTheme() Theme {
	return Theme{
		Brand:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Clock:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Date:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Modal:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("220")).Padding(1, 2),
		Menu:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("244")).Padding(0, 1),
		Calendar: calendar.DefaultOptions(),
	}
}

// Swatch renders a category color chip.
func Swatch(c model.Color) string {
	hex := c.Hex()
	if hex == "" {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
