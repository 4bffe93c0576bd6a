package state

// Viewport tracks the first visible entry of a list that may be taller (or
// wider) than the space available to draw it.
type Viewport struct {
	Offset int
}

// Visible reports whether index is inside the window starting at Offset.
func (v *Viewport) Visible(index, maxVisible int) bool {
	if maxVisible <= 0 {
		return true
	}
	return index >= v.Offset && index < v.Offset+maxVisible
}

// EnsureVisible adjusts Offset so cursor stays visible with at most
// maxVisible entries shown out of total.
func (v *Viewport) EnsureVisible(cursor, total, maxVisible int) {
	if total <= 0 || maxVisible <= 0 {
		v.Offset = 0
		return
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	if upper := v.Offset + maxVisible - 1; cursor > upper {
		v.Offset = cursor - maxVisible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
}
