// Package textutil measures and cuts text by terminal columns.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width is the number of terminal columns s occupies. s must not contain
// ANSI escapes; use lipgloss.Width for styled text.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most maxWidth columns, ending in Ellipsis when
// anything was dropped. Wide runes (CJK, emoji) count as two columns.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > avail {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + Ellipsis
}

// FirstLine returns s up to its first line break, trimmed of trailing space.
func FirstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimRight(line, " \t\r")
}

// Summary is the first line of s cut to maxWidth columns.
func Summary(s string, maxWidth int) string {
	return Truncate(FirstLine(s), maxWidth)
}
