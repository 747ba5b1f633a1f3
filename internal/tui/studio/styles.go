package studio

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	successColor = lipgloss.Color("42")
	errorColor   = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).MarginBottom(1)

	labelStyle        = lipgloss.NewStyle().Foreground(mutedColor).Width(12)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Width(12)
	valueStyle        = lipgloss.NewStyle().Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 2)

	focusedButtonStyle = buttonStyle.BorderForeground(accentColor).Bold(true)

	codeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginTop(1)
)
