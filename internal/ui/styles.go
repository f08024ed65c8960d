package ui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("228")). // Yellow
			Padding(0, 1)

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Grey

	chartStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple
			Padding(0, 1)

	seriesStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")). // Grey
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	notifyOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Padding(0, 1)

	notifyAlertStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")).
				Padding(0, 1)

	notifyErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true).
				Padding(0, 1)

	footerStyle = lipgloss.NewStyle().MarginTop(1)
)
