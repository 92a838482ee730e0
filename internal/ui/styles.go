package ui

import "github.com/charmbracelet/lipgloss"

// Palette. Hex values carry over from the mobile app's colours.
const (
	ColorBackground = "#0A3DA6" // Home background, detail top bar
	ColorSelected   = "#F26E23" // Selected bottom tab
	ColorAccent     = "#0F9BF2" // Section pill, unselected bottom tabs
	ColorStar       = "#F13A28" // Rating stars
	ColorText       = "#FFFFFF"
	ColorMuted      = "241"
	ColorDim        = "243"
	ColorDanger     = "196"
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title   lipgloss.Style // App header
	Header  lipgloss.Style // Blue band behind the section bar
	TopBar  lipgloss.Style // Detail screen back bar

	SectionActive   lipgloss.Style // Selected section pill
	SectionInactive lipgloss.Style
	FocusMarker     lipgloss.Style // Arrow in front of the focused bar

	TabSelected   lipgloss.Style
	TabUnselected lipgloss.Style
	BottomBar     lipgloss.Style

	ItemTitle         lipgloss.Style
	ItemTitleSelected lipgloss.Style
	ItemDesc          lipgloss.Style
	ItemDescSelected  lipgloss.Style

	Star        lipgloss.Style
	Poster      lipgloss.Style
	Placeholder lipgloss.Style
	Name        lipgloss.Style
	Description lipgloss.Style

	Box    lipgloss.Style // Overlay frame
	Muted  lipgloss.Style
	Hint   lipgloss.Style
	Status lipgloss.Style // Status line for lookup misses
	Empty  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSelected)),
	Header: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBackground)).
		Padding(0, 1),
	TopBar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBackground)).
		Foreground(lipgloss.Color(ColorText)).
		Bold(true).
		Padding(0, 1),
	SectionActive: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorAccent)).
		Foreground(lipgloss.Color(ColorText)).
		Bold(true).
		Padding(0, 2),
	SectionInactive: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBackground)).
		Foreground(lipgloss.Color("250")).
		Padding(0, 2),
	FocusMarker: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSelected)).
		Bold(true),
	TabSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSelected)).
		Bold(true).
		Padding(0, 1),
	TabUnselected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	BottomBar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(lipgloss.Color(ColorMuted)),
	ItemTitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 0, 2),
	ItemTitleSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSelected)).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorSelected)).
		Padding(0, 0, 0, 1),
	ItemDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 0, 0, 2),
	ItemDescSelected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorSelected)).
		Padding(0, 0, 0, 1),
	Star: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorStar)),
	Poster: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBackground)),
	Placeholder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Name: lipgloss.NewStyle().
		Bold(true),
	Description: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}
