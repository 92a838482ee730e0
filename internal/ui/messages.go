package ui

import (
	"couchpotato/internal/catalog"
	"couchpotato/internal/nav"
	"couchpotato/internal/poster"
)

// SelectSectionMsg switches the home list to Section.
type SelectSectionMsg struct {
	Section catalog.Section
}

// SelectTabMsg selects a bottom tab.
type SelectTabMsg struct {
	Tab nav.Tab
}

// OpenDetailMsg asks the app to route to the detail of Name in Section.
type OpenDetailMsg struct {
	Section catalog.Section
	Name    string
}

// BackMsg returns from the detail screen to Home.
type BackMsg struct{}

// ShowHelpMsg opens the keybinding overlay.
type ShowHelpMsg struct{}

// PosterLoadedMsg carries a finished poster load back to the detail view.
type PosterLoadedMsg struct {
	Result poster.Result
}
