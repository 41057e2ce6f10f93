package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	approvedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pendingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
