package widget

// Option represents a single selectable entry. Value is the identifier
// committed on selection; Label is the display text.
type Option struct {
	Value string
	Label string
}

// State is the full observable state of one widget instance.
type State struct {
	// Open reports whether the option list is visible.
	Open bool
	// FocusedIndex is the option highlighted for keyboard interaction;
	// -1 means no option is focused. Only meaningful while Open.
	FocusedIndex int
	// Value is the committed selection. Empty means no selection. A value
	// with no matching option degrades to "not found" on lookup.
	Value string
	// Options in display/navigation order. May be empty.
	Options []Option
}

// NewState builds the initial state for a widget instance: closed, nothing
// focused, with the supplied value and options.
func NewState(value string, options []Option) State {
	return State{
		Open:         false,
		FocusedIndex: -1,
		Value:        value,
		Options:      CloneOptions(options),
	}
}

// IndexOfValue returns the index of the option whose Value matches, or -1
// when the value is empty or absent.
func IndexOfValue(options []Option, value string) int {
	if value == "" {
		return -1
	}
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// CloneOptions produces a shallow copy of the provided options.
func CloneOptions(options []Option) []Option {
	if len(options) == 0 {
		return nil
	}
	dup := make([]Option, len(options))
	copy(dup, options)
	return dup
}
