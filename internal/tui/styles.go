package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the report explorer.
//
//nolint:gochecknoglobals // Styles are immutable after init.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	BarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	BoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// borderPadding accounts for box borders when sizing content to the terminal.
const borderPadding = 4
