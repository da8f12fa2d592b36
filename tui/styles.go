package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7D56F4") // Purple
	colorSecondary = lipgloss.Color("#F4A956") // Orange
	colorText      = lipgloss.Color("#FAFAFA") // White/Light Gray
	colorSubtext   = lipgloss.Color("#777777") // Gray
	colorSuccess   = lipgloss.Color("#43BF6D") // Green
	colorError     = lipgloss.Color("#FF5F5F") // Red

	// Layout Styles
	styleWindow = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorPrimary).
			Align(lipgloss.Center)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorSubtext).
			Padding(0, 1)

	styleTitle = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorText).
			Padding(0, 1).
			Bold(true)

	styleAppTitle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Center)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Width(12)

	styleValue = lipgloss.NewStyle().
			Foreground(colorText)

	styleStateRunning = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Bold(true)

	styleStatePaused = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	styleStateAborted = lipgloss.NewStyle().
				Foreground(colorError).
				Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorSubtext)

	styleScreenTooSmall = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Align(lipgloss.Center, lipgloss.Center)
)
