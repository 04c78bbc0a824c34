package ui

import (
	"unicode"

	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleTextInput feeds printable keys into the type-ahead filter while the
// option list is open. Returns true when the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	st := m.nav.CurrentState()
	if !st.Open {
		return false, nil
	}
	switch msg.String() {
	case "ctrl+u":
		if m.filter == "" {
			return false, nil
		}
		m.resetFilter()
		m.errMsg = ""
		m.forceClearInfo()
		events.Filter.Cleared()
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.filter == "" {
			return false, nil
		}
		runes := []rune(m.filter)
		m.setFilter(string(runes[:len(runes)-1]))
		return true, nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				// the dedicated space handler owns spaces
				return false, nil
			}
		}
		m.setFilter(m.filter + string(msg.Runes))
		return true, nil
	case tea.KeySpace:
		// Space extends the filter only when one is already being typed;
		// otherwise it stays a commit key.
		if m.filter == "" {
			return false, nil
		}
		m.setFilter(m.filter + " ")
		return true, nil
	}
	return false, nil
}

// setFilter recomputes the visible subset and replaces the option list in
// the store. The widget core deliberately leaves the focused index alone on
// replacement, so the adapter re-focuses the best match itself.
func (m *Model) setFilter(query string) {
	m.filter = query
	filtered := FilterOptions(m.full, m.filter)
	m.store.SetState(widget.OptionsPatch(filtered))
	if len(filtered) == 0 {
		m.nav.SetFocusedIndex(-1)
	} else {
		m.nav.SetFocusedIndex(BestMatchIndex(filtered, m.filter))
	}
	m.viewport.Clamp(len(filtered))
	if focus := m.nav.CurrentState().FocusedIndex; focus >= 0 {
		m.viewport.ScrollIntoView(focus)
	}
	m.errMsg = ""
	m.forceClearInfo()
	events.Filter.Changed(m.filter, len(filtered))
}

// resetFilter clears the query and restores the full option list.
func (m *Model) resetFilter() {
	if m.filter == "" {
		return
	}
	m.filter = ""
	m.store.SetState(widget.OptionsPatch(m.full))
	m.viewport.Clamp(len(m.full))
	events.Filter.Cleared()
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if m.filter == "" {
		placeholder := render(styles.FilterPlaceholder, "type to filter")
		return prompt + placeholder
	}
	m.filterCursor.SetChar(" ")
	text := render(styles.Filter, m.filter)
	return prompt + text + m.filterCursor.View()
}
