package cmd

import "charm.land/lipgloss/v2"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)
