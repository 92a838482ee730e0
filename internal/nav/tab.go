package nav

import "fmt"

// Tab is a bottom navigation destination.
type Tab int

const (
	TabHome Tab = iota
	TabSearch
	TabFavorites
	TabProfile
)

// Tabs returns the bottom bar entries in display order.
func Tabs() []Tab {
	return []Tab{TabHome, TabSearch, TabFavorites, TabProfile}
}

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabSearch:
		return "Search"
	case TabFavorites:
		return "Favorites"
	case TabProfile:
		return "Profile"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// Valid reports whether t indexes an entry of Tabs.
func (t Tab) Valid() bool {
	return t >= TabHome && t <= TabProfile
}
