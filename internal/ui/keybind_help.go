package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSelected)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Muted
	m.Styles.ShortSeparator = Styles.Muted
	m.Styles.FullKey = m.Styles.ShortKey
	m.Styles.FullDesc = Styles.Muted
	m.Styles.FullSeparator = Styles.Muted
	return m
}

// RenderKeybindHelp produces the transient bar shown after SPC, listing the
// keys that can follow the pending sequence in mode.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, mode)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	prefix := keyHandler.CurrentSeq()
	if prefix == "" {
		prefix = keyHandler.LeaderSeq
	}
	content := Styles.Muted.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings)
	return Styles.Box.MarginTop(1).Render(content)
}

// HelpView is the "?" overlay: every binding available in one mode.
type HelpView struct {
	keyMap help.KeyMap
	mode   AppMode
	help   help.Model
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView builds the overlay for mode.
func NewHelpView(reg *KeybindRegistry, mode AppMode) *HelpView {
	h := newHelpModel()
	h.ShowAll = true
	return &HelpView{
		keyMap: NewKeyMap(reg, nil, mode),
		mode:   mode,
		help:   h,
	}
}

// Init implements View.
func (v *HelpView) Init() tea.Cmd { return nil }

// Update implements View. Dismissal is handled by the overlay stack.
func (v *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		v.help.Width = ws.Width - 4
	}
	return v, nil
}

// View implements View.
func (v *HelpView) View() string {
	title := Styles.Title.Render("Keys") + Styles.Muted.Render(" · "+v.mode.String())
	body := v.help.View(v.keyMap)
	if body == "" {
		body = Styles.Empty.Render("No keys bound")
	}
	hint := Styles.Hint.Render("esc/? close")
	return Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint))
}
