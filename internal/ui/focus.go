package ui

import "slices"

// FocusID names a focusable region of the home screen.
type FocusID string

const (
	FocusSections FocusID = "sections"
	FocusList     FocusID = "list"
	FocusTabs     FocusID = "tabs"
)

// FocusManager tracks and rotates focus across regions.
type FocusManager struct {
	Current  FocusID   // currently focused region
	Order    []FocusID // tab order for focus rotation
	OnChange func(from, to FocusID)
}

// NewFocusManager focuses the first region of order.
func NewFocusManager(order ...FocusID) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next region in order.
func (f *FocusManager) Next() FocusID {
	return f.step(1)
}

// Prev moves focus to the previous region in order.
func (f *FocusManager) Prev() FocusID {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) FocusID {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	n := len(f.Order)
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id FocusID) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// SetOrder replaces the rotation. Focus stays put when the current region
// is still present, otherwise it moves to fallback (or the first region).
func (f *FocusManager) SetOrder(order []FocusID, fallback FocusID) {
	f.Order = order
	if slices.Contains(order, f.Current) {
		return
	}
	if slices.Contains(order, fallback) {
		f.set(fallback)
		return
	}
	if len(order) > 0 {
		f.set(order[0])
		return
	}
	f.Current = ""
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id FocusID) bool {
	return f.Current == id
}

func (f *FocusManager) set(id FocusID) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
