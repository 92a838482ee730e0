package ui

import "testing"

func TestFocusManager_Rotate(t *testing.T) {
	var changes []string
	f := NewFocusManager(FocusSections, FocusList, FocusTabs)
	f.OnChange = func(from, to FocusID) { changes = append(changes, string(from)+">"+string(to)) }

	if f.Current != FocusSections {
		t.Fatalf("initial focus = %q", f.Current)
	}
	if got := f.Next(); got != FocusList {
		t.Errorf("Next = %q", got)
	}
	f.Next()
	if got := f.Next(); got != FocusSections {
		t.Errorf("Next should wrap, got %q", got)
	}
	if got := f.Prev(); got != FocusTabs {
		t.Errorf("Prev should wrap, got %q", got)
	}
	if len(changes) != 4 {
		t.Errorf("expected 4 change callbacks, got %v", changes)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := NewFocusManager(FocusList, FocusTabs)
	if f.SetFocus(FocusSections) {
		t.Error("SetFocus should reject ids outside the order")
	}
	if !f.SetFocus(FocusTabs) || !f.Is(FocusTabs) {
		t.Error("SetFocus(tabs) failed")
	}
}

func TestFocusManager_SetOrder(t *testing.T) {
	f := NewFocusManager(FocusSections, FocusList, FocusTabs)
	f.SetFocus(FocusList)

	f.SetOrder([]FocusID{FocusTabs}, FocusTabs)
	if f.Current != FocusTabs {
		t.Errorf("focus should move to fallback, got %q", f.Current)
	}

	f.SetOrder([]FocusID{FocusSections, FocusList, FocusTabs}, FocusList)
	if f.Current != FocusTabs {
		t.Errorf("focus should stay on a region still present, got %q", f.Current)
	}

	f.SetOrder(nil, FocusList)
	if f.Current != "" || f.Next() != "" {
		t.Errorf("empty order should clear focus, got %q", f.Current)
	}
}
