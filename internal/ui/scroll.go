package ui

// Viewport tracks which slice of the option list is visible. It implements
// widget.Scroller, so the navigator can request "bring this index into view"
// without knowing anything about terminal rendering.
type Viewport struct {
	offset int
	height int
}

// NewViewport returns a viewport with unbounded height (everything visible).
func NewViewport() *Viewport {
	return &Viewport{height: -1}
}

// SetHeight sets the number of visible rows. height <= 0 means unbounded.
func (v *Viewport) SetHeight(height int) {
	v.height = height
}

// Height returns the configured visible row count.
func (v *Viewport) Height() int {
	return v.height
}

// Offset returns the index of the first visible option.
func (v *Viewport) Offset() int {
	return v.offset
}

// ScrollIntoView adjusts the offset so the given index is visible. Indices
// outside any sensible range are clamped rather than rejected: the scroll
// port is best-effort and never fails.
func (v *Viewport) ScrollIntoView(index int) {
	if index < 0 {
		return
	}
	if v.height <= 0 {
		v.offset = 0
		return
	}
	if index < v.offset {
		v.offset = index
		return
	}
	if upper := v.offset + v.height - 1; index > upper {
		v.offset = index - v.height + 1
		if v.offset < 0 {
			v.offset = 0
		}
	}
}

// ScrollBy moves the offset by delta, clamped against the list length.
func (v *Viewport) ScrollBy(delta, total int) {
	v.offset += delta
	v.Clamp(total)
}

// Clamp keeps the offset within range for a list of the given length.
func (v *Viewport) Clamp(total int) {
	if v.height <= 0 {
		v.offset = 0
		return
	}
	maxOffset := total - v.height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// Visible returns the half-open range of indices to render for a list of the
// given length.
func (v *Viewport) Visible(total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	if v.height <= 0 {
		return 0, total
	}
	v.Clamp(total)
	start = v.offset
	end = start + v.height
	if end > total {
		end = total
	}
	return start, end
}
