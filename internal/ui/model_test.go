package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newTestModel() *Model {
	return NewModel(Options{
		Options:     testOptions(),
		Placeholder: "Select a fruit",
	})
}

func TestEscapeWhenClosedCancels(t *testing.T) {
	m := newTestModel()
	cmd := m.handleEscapeKey()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	msg := cmd()
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", msg)
	}
	if !m.Cancelled() {
		t.Fatalf("expected model marked cancelled")
	}
}

func TestEscapeWhenOpenClosesWithoutCancelling(t *testing.T) {
	m := newTestModel()
	m.Navigator().ToggleDropdown()
	cmd := m.handleEscapeKey()
	if cmd != nil {
		t.Fatalf("expected no command when closing the list")
	}
	if m.Cancelled() {
		t.Fatalf("expected model not cancelled")
	}
	if m.Navigator().CurrentState().Open {
		t.Fatalf("expected widget closed")
	}
}

func TestEnterCommitResultAndQuit(t *testing.T) {
	m := newTestModel()
	m.Navigator().ToggleDropdown()
	m.Navigator().SetFocusedIndex(2)
	cmd := m.routeCommitKey("Enter")
	if cmd == nil {
		t.Fatalf("expected quit command after commit")
	}
	value, committed := m.Result()
	if !committed || value != "orange" {
		t.Fatalf("expected committed orange, got %q (committed=%v)", value, committed)
	}
}

func TestEnterOnClosedWidgetOpensWithoutQuit(t *testing.T) {
	m := newTestModel()
	cmd := m.routeCommitKey("Enter")
	if cmd != nil {
		t.Fatalf("expected no quit on open")
	}
	st := m.Navigator().CurrentState()
	if !st.Open || st.FocusedIndex != 0 {
		t.Fatalf("expected open with focus 0, got open=%v focus=%d", st.Open, st.FocusedIndex)
	}
}

func TestViewClosedShowsPlaceholder(t *testing.T) {
	m := newTestModel()
	view := m.View()
	if !strings.Contains(view, "Select a fruit") {
		t.Fatalf("expected placeholder in view, got:\n%s", view)
	}
	if strings.Contains(view, "▌") {
		t.Fatalf("expected no option rows while closed, got:\n%s", view)
	}
}

func TestViewOpenListsOptions(t *testing.T) {
	m := newTestModel()
	m.Navigator().ToggleDropdown()
	view := m.View()
	for _, label := range []string{"Apple", "Banana", "Orange"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected %q in view, got:\n%s", label, view)
		}
	}
}

func TestViewShowsCommittedLabel(t *testing.T) {
	m := newTestModel()
	m.Navigator().SelectOption("banana")
	view := m.View()
	if !strings.Contains(view, "Banana") {
		t.Fatalf("expected committed label in view, got:\n%s", view)
	}
}

func TestViewStaleValueRendersRaw(t *testing.T) {
	m := newTestModel()
	m.Navigator().SelectOption("durian")
	view := m.View()
	if !strings.Contains(view, "durian") {
		t.Fatalf("expected raw stale value in view, got:\n%s", view)
	}
}

func TestViewNoMatchesMessage(t *testing.T) {
	m := newTestModel()
	m.Navigator().ToggleDropdown()
	m.setFilter("zzz")
	view := m.View()
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-matches message, got:\n%s", view)
	}
}

func TestBuildItemLinePadsToDisplayWidth(t *testing.T) {
	m := newTestModel()
	m.width = 12
	// Double-width runes: rune count and display width diverge.
	line := m.buildItemLine("日本語", true)
	if got := lipgloss.Width(line.text); got != 12 {
		t.Fatalf("expected row padded to display width 12, got %d", got)
	}
}

func TestOptionIndexAtRowHonorsViewport(t *testing.T) {
	m := NewModel(Options{Options: testOptions()})
	m.Navigator().ToggleDropdown()
	m.viewport.SetHeight(2)
	m.viewport.ScrollIntoView(3)

	st := m.Navigator().CurrentState()
	idx, ok := m.optionIndexAtRow(st, listRowOffset)
	if !ok || idx != 2 {
		t.Fatalf("expected first visible row to map to index 2, got %d (ok=%v)", idx, ok)
	}
	if _, ok := m.optionIndexAtRow(st, listRowOffset+5); ok {
		t.Fatalf("expected rows past the list to report false")
	}
	if _, ok := m.optionIndexAtRow(st, 0); ok {
		t.Fatalf("expected the select-box row to report false")
	}
}
