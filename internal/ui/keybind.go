package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = all modes
}

func (b binding) appliesTo(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC t 2" for
// SPC then t then 2. Single keys: "q", "m", "ctrl+c", "?".
//
// A sequence may be bound more than once with disjoint modes; lookup picks
// the binding for the current mode.
type KeybindRegistry struct {
	bindings map[string][]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string][]binding)}
}

// Bind registers a key sequence for all modes.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a help description for all modes.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key sequence limited to modes.
// A later binding replaces earlier ones whose modes overlap it.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	n := normalizeSeq(seq)
	nb := binding{cmd: cmd, desc: desc, modes: modes}
	kept := r.bindings[n][:0:0]
	for _, b := range r.bindings[n] {
		if !overlaps(b.modes, modes) {
			kept = append(kept, b)
		}
	}
	r.bindings[n] = append(kept, nb)
}

func overlaps(a, b []AppMode) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

// Lookup returns the command for a key sequence in mode, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	if b, ok := r.find(normalizeSeq(seq), mode); ok {
		return b.cmd
	}
	return nil
}

func (r *KeybindRegistry) find(seq string, mode AppMode) (binding, bool) {
	for _, b := range r.bindings[seq] {
		if b.cmd != nil && b.appliesTo(mode) {
			return b, true
		}
	}
	return binding{}, false
}

// HasPrefix reports whether a longer binding that applies to mode starts with seq.
func (r *KeybindRegistry) HasPrefix(seq string, mode AppMode) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if _, ok := r.find(k, mode); ok {
			return true
		}
	}
	return false
}

// Hints returns every sequence bound in mode with its description (or the
// sequence itself when it has none).
func (r *KeybindRegistry) Hints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for seq := range r.bindings {
		b, ok := r.find(seq, mode)
		if !ok {
			continue
		}
		if b.desc != "" {
			out[seq] = b.desc
		} else {
			out[seq] = seq
		}
	}
	return out
}

// submenuLabel names leader keys that open a further level.
var submenuLabel = map[string]string{
	"t": "Tab",
}

// LeaderHints returns the next keys after currentSeq ("" means after SPC)
// for mode. Keys that open a submenu show a generic label.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq := range r.bindings {
		if !strings.HasPrefix(seq, prefix) {
			continue
		}
		b, ok := r.find(seq, mode)
		if !ok {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		next := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			next = parts[0]
		}
		if r.HasPrefix(prefix+next, mode) {
			if label, ok := submenuLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
			continue
		}
		if b.desc != "" {
			out[next] = b.desc
		} else {
			out[next] = seq
		}
	}
	return out
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	if seq == " " {
		return "SPC"
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg in mode. Returns (consumed, cmd).
// Consumed keys must not be passed on to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	if s == "esc" {
		if h.LeaderWaiting {
			h.Reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.Lookup(seq, mode); c != nil {
			h.Reset()
			return true, c
		}
		// Stay in leader mode while a longer binding exists.
		if h.Registry.HasPrefix(seq, mode) {
			return true, nil
		}
		h.Reset()
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), mode); c != nil {
		return true, c
	}
	return false, nil
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// CurrentSeq is the pending leader sequence, or "".
func (h *KeyHandler) CurrentSeq() string {
	if len(h.Buffer) == 0 {
		return ""
	}
	return strings.Join(h.Buffer, " ")
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over the registry for one mode.
// ShortHelp follows the pending leader sequence; FullHelp lists the
// single-key bindings and the leader menu in two columns.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{
		registry:   registry,
		keyHandler: keyHandler,
		mode:       mode,
	}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	currentSeq := ""
	if km.keyHandler != nil {
		currentSeq = km.keyHandler.CurrentSeq()
	}
	hints := km.registry.LeaderHints(currentSeq, km.mode)
	if len(hints) == 0 {
		return nil
	}
	bindings := toBindings(hints)
	return append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	single := make(map[string]string)
	for seq, desc := range km.registry.Hints(km.mode) {
		if !strings.HasPrefix(seq, "SPC") {
			single[seq] = desc
		}
	}
	var cols [][]key.Binding
	if len(single) > 0 {
		cols = append(cols, toBindings(single))
	}
	if leader := km.registry.LeaderHints("", km.mode); len(leader) > 0 {
		lb := toBindings(leader)
		for i := range lb {
			k := lb[i].Help().Key
			lb[i].SetHelp("SPC "+k, lb[i].Help().Desc)
		}
		cols = append(cols, lb)
	}
	return cols
}

// toBindings sorts hints by key for stable display.
func toBindings(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}
