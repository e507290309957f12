package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent    = lipgloss.Color("#C8102E")
	dimGray   = lipgloss.Color("#6B7280")
	lightGray = lipgloss.Color("#9CA3AF")
	white     = lipgloss.Color("#F9FAFB")
	red       = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(white).
			Background(accent).
			Bold(true).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimGray).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	itemTitleStyle = lipgloss.NewStyle().
			Foreground(white).
			Bold(true)

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(lightGray)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(red)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)
)
