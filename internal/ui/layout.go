package ui

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

const (
	minWidth  = 60
	minHeight = 16
)

// tooSmall reports whether the terminal is below the minimum usable size.
func tooSmall(width, height int) bool {
	return width < minWidth || height < minHeight
}

// renderTooSmall renders the "terminal too small" message.
func renderTooSmall(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			minWidth, minHeight, width, height,
		))
}
