package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     = lipgloss.Color("#cdd6f4")
	colorSubtext  = lipgloss.Color("#a6adc8")
	colorOverlay  = lipgloss.Color("#7f849c")
	colorBlue     = lipgloss.Color("#89b4fa")
	colorGreen    = lipgloss.Color("#a6e3a1")
	colorYellow   = lipgloss.Color("#f9e2af")
	colorSurface  = lipgloss.Color("#313244")
	colorLavender = lipgloss.Color("#b4befe")
)

var (
	titleStyle       = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	activeTabStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface).Bold(true).Padding(0, 1)
	tabStyle         = lipgloss.NewStyle().Foreground(colorOverlay).Padding(0, 1)
	levelStyle       = lipgloss.NewStyle().Foreground(colorSubtext)
	activeLevelStyle = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface).Padding(0, 1)
	lessonTitle      = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	objectiveStyle   = lipgloss.NewStyle().Foreground(colorOverlay).Italic(true)
	typeStyle        = lipgloss.NewStyle().Foreground(colorBlue).Width(9)
	helpStyle        = lipgloss.NewStyle().Foreground(colorOverlay)
	publishedBadge   = lipgloss.NewStyle().Foreground(colorGreen)
	draftBadge       = lipgloss.NewStyle().Foreground(colorYellow)
)
