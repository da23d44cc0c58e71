package render

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("39")  // Blue
	mutedColor   = lipgloss.Color("241") // Gray
	errorColor   = lipgloss.Color("196") // Red
	noteColor    = lipgloss.Color("214") // Orange

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	keyStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	noteStyle  = lipgloss.NewStyle().Foreground(noteColor)
)
