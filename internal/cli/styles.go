package cli

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// swatch renders a colored block for a hex value on capable terminals, or a
// plain placeholder otherwise.
func swatch(hex string) string {
	if !colorEnabled() {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func heading(text string) string {
	if !colorEnabled() {
		return text
	}
	return headingStyle.Render(text)
}

func muted(text string) string {
	if !colorEnabled() {
		return text
	}
	return mutedStyle.Render(text)
}
