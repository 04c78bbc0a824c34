package widget

// Scroller abstracts "bring this option into view" so the navigator never
// touches a rendering concern directly. Implementations are best-effort: an
// index with no visible element is a no-op, never an error.
type Scroller interface {
	ScrollIntoView(index int)
}

// ScrollerFunc adapts a plain function to the Scroller interface.
type ScrollerFunc func(index int)

func (f ScrollerFunc) ScrollIntoView(index int) {
	if f != nil {
		f(index)
	}
}

// NopScroller discards scroll requests. Useful as a default and in tests.
type NopScroller struct{}

func (NopScroller) ScrollIntoView(int) {}
