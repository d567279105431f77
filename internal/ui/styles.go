package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent = "86"  // Cyan/green - for headings, spinner
	ColorDanger = "196" // Red - for load failures
	ColorMuted  = "241" // Gray - for hints, empty state
	ColorText   = "252" // Light gray - for article titles
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Heading lipgloss.Style // Bold accent color - the list heading
	Item    lipgloss.Style // One article title
	Error   lipgloss.Style // Load failure status line
	Hint    lipgloss.Style // Help/hint text (muted color)
	Spinner lipgloss.Style
	Frame   lipgloss.Style // Root container
}{
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Item: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		PaddingLeft(2),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Frame: lipgloss.NewStyle().
		Padding(1, 2),
}
