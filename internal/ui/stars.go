package ui

import (
	"strings"

	"couchpotato/internal/catalog"
)

// renderStars draws n filled stars out of catalog.MaxRating.
func renderStars(n int) string {
	n = min(max(n, 0), catalog.MaxRating)
	return Styles.Star.Render(strings.Repeat("★", n) + strings.Repeat("☆", catalog.MaxRating-n))
}
