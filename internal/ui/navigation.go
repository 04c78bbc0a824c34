package ui

import (
	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg maps terminal keys onto the navigator's key strings. The
// widget core only understands Enter, Space, ArrowDown, ArrowUp, and Escape;
// everything else is either filter input or an application-level key.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return m.cancelCmd()
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.routeCommitKey(widget.KeyEnter)
	case "up":
		m.nav.HandleKeyNavigation(widget.KeyArrowUp)
		return nil
	case "down":
		m.nav.HandleKeyNavigation(widget.KeyArrowDown)
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	if keyMsg.Type == tea.KeySpace {
		return m.routeCommitKey(widget.KeySpace)
	}
	return nil
}

// routeCommitKey forwards Enter or Space to the state machine and watches
// for the open→closed transition that marks a committed selection.
func (m *Model) routeCommitKey(key string) tea.Cmd {
	before := m.nav.CurrentState()
	m.nav.HandleKeyNavigation(key)
	after := m.nav.CurrentState()
	if before.Open && !after.Open {
		return m.commitCmd(after.Value)
	}
	if !before.Open && after.Open {
		m.onOpened()
	}
	return nil
}

// handleEscapeKey closes the widget when it is open; when already closed it
// dismisses the whole popup without committing.
func (m *Model) handleEscapeKey() tea.Cmd {
	st := m.nav.CurrentState()
	if !st.Open {
		return m.cancelCmd()
	}
	m.nav.HandleKeyNavigation(widget.KeyEscape)
	m.resetFilter()
	return nil
}

// onOpened prepares adapter-side state after a closed→open transition.
func (m *Model) onOpened() {
	m.viewport.SetHeight(m.maxVisibleItems())
	if focus := m.nav.CurrentState().FocusedIndex; focus >= 0 {
		m.viewport.ScrollIntoView(focus)
	}
}

func (m *Model) commitCmd(value string) tea.Cmd {
	m.committed = true
	m.result = value
	m.resetFilter()
	events.App.Done(value, false)
	return tea.Quit
}

func (m *Model) cancelCmd() tea.Cmd {
	m.cancelled = true
	events.App.Done("", true)
	return tea.Quit
}

// handleMouseMsg drives hover-follow, wheel scrolling, and click selection.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	st := m.nav.CurrentState()
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if st.Open {
			m.viewport.ScrollBy(-3, len(st.Options))
		}
		return nil
	case tea.MouseButtonWheelDown:
		if st.Open {
			m.viewport.ScrollBy(3, len(st.Options))
		}
		return nil
	}
	switch ev.Action {
	case tea.MouseActionMotion:
		if idx, ok := m.optionIndexAtRow(st, ev.Y); ok && idx != st.FocusedIndex {
			m.nav.SetFocusedIndex(idx)
		}
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return nil
		}
		if !st.Open {
			if ev.Y == 0 {
				m.nav.ToggleDropdown()
				m.onOpened()
			}
			return nil
		}
		if idx, ok := m.optionIndexAtRow(st, ev.Y); ok {
			m.nav.SelectOption(st.Options[idx].Value)
			return m.commitCmd(m.nav.CurrentState().Value)
		}
	}
	return nil
}

// optionIndexAtRow translates a terminal row into an option index, honoring
// the viewport offset. Rows outside the rendered list report false.
func (m *Model) optionIndexAtRow(st widget.State, row int) (int, bool) {
	if !st.Open {
		return 0, false
	}
	start, end := m.viewport.Visible(len(st.Options))
	idx := start + (row - listRowOffset)
	if row < listRowOffset || idx < start || idx >= end {
		return 0, false
	}
	return idx, true
}
