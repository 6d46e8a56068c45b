package edit

// ScrollToCaret returns the horizontal scroll offset that keeps caretX
// visible in a box of width box showing content of width content. The offset
// only moves when the caret leaves the visible window, and is never negative.
func ScrollToCaret(offset, caretX, box, content float32) float32 {
	if caretX < offset {
		offset = caretX
	} else if caretX > offset+box {
		offset = caretX - box
	}
	offset = min(offset, content-box)
	return max(offset, 0)
}
