package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"couchpotato/internal/nav"
)

var tabIcons = map[nav.Tab]string{
	nav.TabHome:      "⌂",
	nav.TabSearch:    "⌕",
	nav.TabFavorites: "♥",
	nav.TabProfile:   "☺",
}

// renderBottomBar draws the four tabs, the selected one in orange.
// focused adds a marker so h/l visibly act on the bar.
func renderBottomBar(selected nav.Tab, focused bool, width int) string {
	tabs := nav.Tabs()
	cells := make([]string, 0, len(tabs))
	for i, t := range tabs {
		label := tabIcons[t] + " " + t.String()
		if focused && t == selected {
			label = "[" + label + "]"
		}
		num := Styles.Muted.Render(string(rune('1' + i)))
		if t == selected {
			cells = append(cells, num+Styles.TabSelected.Render(label))
		} else {
			cells = append(cells, num+Styles.TabUnselected.Render(label))
		}
	}
	row := strings.Join(cells, "  ")
	if width > 0 {
		row = lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
	}
	return Styles.BottomBar.Width(max(width, lipgloss.Width(row))).Render(row)
}
