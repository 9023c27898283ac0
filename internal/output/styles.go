package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, tools.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for "ok" statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for "outdated" statuses.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for "missing" and "failed" statuses.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles directory names and summaries.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// Tool status values shown by the doctor command.
const (
	StatusOK       = "ok"
	StatusOutdated = "outdated"
	StatusMissing  = "missing"
	StatusUnknown  = "unknown"
)

// StatusStyle returns the style for a tool status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusOK:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusOutdated:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusMissing:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	case StatusUnknown:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
