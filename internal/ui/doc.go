// Package ui contains the Bubble Tea program that renders the selection
// widget. The widget's state machine itself lives in internal/widget; this
// package is the presentation adapter around it.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Messages are routed through a typed handler registry so each tea.Msg is
//     handled by a focused function: key presses map terminal keys onto the
//     navigator's key strings, mouse events drive hover-follow and wheel
//     scrolling, and watcher events replace the option list.
//   - The model subscribes to the widget store at construction time and keeps
//     the latest state snapshot; View renders from that snapshot on every
//     notification.
//
// State ownership:
//   - Widget state lives exclusively in the store. The model never mutates
//     it directly; every intent goes through the navigator. The only state
//     owned here is presentational: the viewport offset (which implements
//     the widget's scroll port), the filter text, and terminal geometry.
package ui
