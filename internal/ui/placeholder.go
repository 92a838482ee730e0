package ui

import (
	"github.com/charmbracelet/lipgloss"

	"couchpotato/internal/nav"
)

// placeholderText is the fixed content of the non-Home tabs.
var placeholderText = map[nav.Tab]string{
	nav.TabSearch:    "Search is not available yet.",
	nav.TabFavorites: "No favorites yet.",
	nav.TabProfile:   "You are browsing as a guest.",
}

// renderPlaceholder draws the body of a non-Home tab.
func renderPlaceholder(t nav.Tab, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		Styles.Title.Render(t.String()),
		"",
		Styles.Empty.Render(placeholderText[t]),
	)
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
