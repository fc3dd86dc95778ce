// Package styles defines the shared lipgloss palette and text styles used
// by terminal output across the CLI.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colors pick a readable variant for light and dark terminals.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD75F"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD75F"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#005FD7", Dark: "#5FAFFF"}
	ColorPurple  = lipgloss.AdaptiveColor{Light: "#8700AF", Dark: "#AF87FF"}
	ColorYellow  = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFFF5F"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

var (
	Error   = lipgloss.NewStyle().Foreground(ColorError)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Info    = lipgloss.NewStyle().Foreground(ColorInfo)
	Command = lipgloss.NewStyle().Foreground(ColorPurple)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)
	Bold    = lipgloss.NewStyle().Bold(true)
)
