package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by all screens.
const (
	accentColor = lipgloss.Color("205") // Pink, focus highlight
	dimColor    = lipgloss.Color("241")
	artColor    = lipgloss.Color("236") // Placeholder artwork fill
	bannerColor = lipgloss.Color("214") // Orange corner banner
)

var (
	// TitleStyle is used for screen titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")). // Purple
			MarginBottom(1)

	// SelectedItemStyle is used for highlighted/selected items.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")). // Light purple
				Bold(true)

	// NormalItemStyle is used for non-selected items.
	NormalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light gray

	// ErrorStyle is used for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// HelpStyle is used for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			MarginTop(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	headerTitleStyle = lipgloss.NewStyle().
				Bold(true)

	selectionStyle = lipgloss.NewStyle().
			Background(accentColor).
			Foreground(lipgloss.Color("0")).
			Padding(0, 1)
)
