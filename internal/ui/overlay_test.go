package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type countingView struct {
	updates int
}

func (v *countingView) Init() tea.Cmd                   { return nil }
func (v *countingView) Update(tea.Msg) (View, tea.Cmd) { v.updates++; return v, nil }
func (v *countingView) View() string                    { return "overlay" }

func TestOverlayStack_HandleKey(t *testing.T) {
	var s OverlayStack
	if _, ok := s.HandleKey(keyMsg("x")); ok {
		t.Fatal("empty stack should not handle keys")
	}

	v := &countingView{}
	s.Push(Overlay{View: v, Dismiss: []string{"esc", "?"}})

	if _, ok := s.HandleKey(keyMsg("x")); !ok {
		t.Error("overlay should consume keys")
	}
	if v.updates != 1 {
		t.Errorf("non-dismiss key should reach the overlay, updates=%d", v.updates)
	}

	if _, ok := s.HandleKey(keyMsg("?")); !ok {
		t.Error("dismiss key should be consumed")
	}
	if s.Len() != 0 {
		t.Errorf("dismiss key should pop, len=%d", s.Len())
	}
}

func TestOverlayStack_PushPopPeek(t *testing.T) {
	var s OverlayStack
	a, b := &countingView{}, &countingView{}
	s.Push(Overlay{View: a, Dismiss: []string{"esc"}})
	s.Push(Overlay{View: b, Dismiss: []string{"esc"}})

	top, ok := s.Peek()
	if !ok || top.View != View(b) {
		t.Fatal("Peek should return the last pushed overlay")
	}
	s.Pop()
	top, _ = s.Peek()
	if top.View != View(a) {
		t.Error("Pop should expose the previous overlay")
	}
	s.Pop()
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack should report false")
	}
}
