package widget

import "github.com/atomicstack/popup-select/internal/logging/events"

// Keys recognized by HandleKeyNavigation. Anything else is ignored.
const (
	KeyEnter     = "Enter"
	KeySpace     = " "
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyEscape    = "Escape"
)

// Navigator is the widget's state machine. It reads and writes state only
// through the Store and requests scrolling only through the Scroller, so any
// concrete implementation (in-memory, test double, framework adapter)
// satisfies it. No operation panics for any input: unrecognized keys are
// ignored and missing options degrade to safe defaults.
type Navigator struct {
	store    Store
	scroller Scroller
}

// NewNavigator wires a navigator to its ports. A nil scroller is replaced
// with a no-op implementation.
func NewNavigator(store Store, scroller Scroller) *Navigator {
	if scroller == nil {
		scroller = NopScroller{}
	}
	return &Navigator{store: store, scroller: scroller}
}

// CurrentState returns the store's current state snapshot.
func (n *Navigator) CurrentState() State {
	return n.store.State()
}

// ToggleDropdown flips the open state. On closed→open the focus lands on the
// current value's option when present, otherwise the first option, otherwise
// -1 for an empty list. On open→closed the focused index is left alone.
func (n *Navigator) ToggleDropdown() {
	st := n.store.State()
	if st.Open {
		n.store.SetState(OpenPatch(false))
		events.Widget.Toggle(false, st.FocusedIndex)
		return
	}
	focus := openFocusIndex(st, false)
	open := true
	n.store.SetState(Patch{Open: &open, FocusedIndex: &focus})
	events.Widget.Toggle(true, focus)
}

// SelectOption commits the value and closes the widget. The value is stored
// as-is: callers are trusted to draw it from the current options, and an
// unknown value simply renders as "no selection" until the options catch up.
func (n *Navigator) SelectOption(value string) {
	open := false
	n.store.SetState(Patch{Value: &value, Open: &open})
	events.Widget.Select(value)
}

// SetFocusedIndex stores the index exactly as given. Hover-follow callers own
// index validity; keyboard navigation never routes through here.
func (n *Navigator) SetFocusedIndex(index int) {
	n.store.SetState(FocusPatch(index))
	events.Widget.Cursor(index)
}

// HandleKeyNavigation applies one key press to the state machine.
func (n *Navigator) HandleKeyNavigation(key string) {
	st := n.store.State()
	events.Widget.Key(key, st.Open)
	if !st.Open {
		n.handleClosedKey(st, key)
		return
	}
	n.handleOpenKey(st, key)
}

func (n *Navigator) handleClosedKey(st State, key string) {
	switch key {
	case KeyEnter, KeySpace, KeyArrowDown:
		n.openWithFocus(openFocusIndex(st, false))
	case KeyArrowUp:
		n.openWithFocus(openFocusIndex(st, true))
	}
}

func (n *Navigator) handleOpenKey(st State, key string) {
	switch key {
	case KeyEnter, KeySpace:
		if st.FocusedIndex >= 0 && st.FocusedIndex < len(st.Options) {
			n.SelectOption(st.Options[st.FocusedIndex].Value)
		}
	case KeyArrowDown:
		n.moveFocus(st, 1)
	case KeyArrowUp:
		n.moveFocus(st, -1)
	case KeyEscape:
		n.store.SetState(OpenPatch(false))
		events.Widget.Toggle(false, st.FocusedIndex)
	}
}

func (n *Navigator) openWithFocus(focus int) {
	open := true
	n.store.SetState(Patch{Open: &open, FocusedIndex: &focus})
	events.Widget.Toggle(true, focus)
}

// moveFocus wraps the focused index by delta and requests a scroll. An empty
// option list is a no-op so the wrap arithmetic never divides by zero.
func (n *Navigator) moveFocus(st State, delta int) {
	total := len(st.Options)
	if total == 0 {
		return
	}
	next := (st.FocusedIndex + delta + total) % total
	if next < 0 {
		next += total
	}
	n.store.SetState(FocusPatch(next))
	events.Widget.Cursor(next)
	n.scroller.ScrollIntoView(next)
}

// openFocusIndex computes the focus position for a closed→open transition:
// the current value's index when found, otherwise the first option (or the
// last when opening upward), otherwise -1 for an empty list.
func openFocusIndex(st State, fromEnd bool) int {
	if idx := IndexOfValue(st.Options, st.Value); idx >= 0 {
		return idx
	}
	if len(st.Options) == 0 {
		return -1
	}
	if fromEnd {
		return len(st.Options) - 1
	}
	return 0
}
