package ui

import (
	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a freshly loaded option list. The store
// replaces options wholesale; the focused index is deliberately left as-is
// (wrap arithmetic adjusts to the new length on the next arrow key).
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
		events.Source.Error(evt.Err)
		return
	}
	m.errMsg = ""
	if optionsEqual(m.full, evt.Options) {
		return
	}
	m.full = widget.CloneOptions(evt.Options)
	visible := FilterOptions(m.full, m.filter)
	m.store.SetState(widget.OptionsPatch(visible))
	m.viewport.Clamp(len(visible))
	if len(visible) == 0 {
		m.setInfo("(no entries)")
	} else {
		m.forceClearInfo()
	}
	events.Source.Reloaded(len(evt.Options))
}

func optionsEqual(a, b []widget.Option) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
