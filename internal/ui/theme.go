package ui

import "charm.land/lipgloss/v2"

// Color palette — calm, reading-friendly.
var (
	accent  = lipgloss.Color("#0EA5E9") // Sky
	success = lipgloss.Color("#22C55E") // Green
	failure = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#E2E8F0") // Light slate
	textDim = lipgloss.Color("#64748B") // Slate
	border  = lipgloss.Color("#334155") // Dark slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	termStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(text)

	meaningStyle = lipgloss.NewStyle().
			Foreground(text)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(success)

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(failure)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	matchedStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Strikethrough(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 3)
)
