package edit

import "unicode/utf8"

// Range is a text selection expressed in rune offsets. Primary is the end that
// moves, Secondary the anchor. An empty range is a caret.
type Range struct {
	Primary   int
	Secondary int
}

// Caret returns an empty range at i.
func Caret(i int) Range { return Range{Primary: i, Secondary: i} }

// Span returns a range anchored at anchor with the moving end at caret.
func Span(anchor, caret int) Range { return Range{Primary: caret, Secondary: anchor} }

// IsEmpty reports whether r is a caret.
func (r Range) IsEmpty() bool { return r.Primary == r.Secondary }

// Sorted returns the start and end offsets of r.
func (r Range) Sorted() (start, end int) {
	if r.Primary < r.Secondary {
		return r.Primary, r.Secondary
	}
	return r.Secondary, r.Primary
}

// Single returns the caret offset when r is empty.
func (r Range) Single() (int, bool) {
	return r.Primary, r.IsEmpty()
}

// Collapse returns a caret at the primary end.
func (r Range) Collapse() Range { return Caret(r.Primary) }

// Clamp limits both ends of r to [0, n].
func (r Range) Clamp(n int) Range {
	return Range{Primary: clampIndex(r.Primary, n), Secondary: clampIndex(r.Secondary, n)}
}

// Slice returns the text covered by r.
func (r Range) Slice(text string) string {
	start, end := r.Sorted()
	bs, be := byteOffset(text, start), byteOffset(text, end)
	return text[bs:be]
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// byteOffset converts the rune offset i of s to a byte offset, clamped to len(s).
func byteOffset(s string, i int) int {
	if i <= 0 {
		return 0
	}
	n := 0
	for b := range s {
		if n == i {
			return b
		}
		n++
	}
	return len(s)
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
