// Package ui is the Bubble Tea front end of the catalog browser.
//
// Core abstractions:
//   - View: a screen with its own Init/Update/View (Elm-style)
//   - AppModel: root model; owns the nav.Navigator and swaps views on route changes
//   - KeybindRegistry/KeyHandler: single keys and SPC leader sequences, filtered by AppMode
//   - FocusManager: rotates focus across the section bar, the list and the bottom bar
//   - OverlayStack: popups drawn over the current screen (keybinding help)
//
// All navigation state lives in nav.Navigator. Views emit messages; the
// AppModel applies them to the navigator and re-syncs the views.
package ui
