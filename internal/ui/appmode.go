package ui

import "couchpotato/internal/nav"

// AppMode is the screen the app is on. Keybindings are filtered by it.
type AppMode int

const (
	// ModeHome is the Home route with the Home tab: catalog content.
	ModeHome AppMode = iota
	// ModeTab is the Home route with Search, Favorites or Profile selected.
	ModeTab
	// ModeDetail is a Detail route.
	ModeDetail
)

func (m AppMode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeTab:
		return "Tab"
	case ModeDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// modeFor derives the mode from navigation state.
func modeFor(s nav.State) AppMode {
	if !s.Route.IsHome() {
		return ModeDetail
	}
	if s.Tab != nav.TabHome {
		return ModeTab
	}
	return ModeHome
}
