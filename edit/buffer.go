package edit

import "strings"

// TabSize is the number of spaces one indentation level counts for.
const TabSize = 4

// Buffer is caller-owned editable text addressed in rune offsets.
type Buffer interface {
	String() string
	// Insert puts text at rune offset at and returns the number of runes inserted.
	Insert(at int, text string) int
	// Delete removes the runes in [start, end).
	Delete(start, end int)
	// Replace swaps the whole contents.
	Replace(text string)
}

// StringBuffer edits a string in place.
type StringBuffer struct {
	s *string
}

// NewStringBuffer returns a Buffer backed by *s.
func NewStringBuffer(s *string) *StringBuffer {
	return &StringBuffer{s: s}
}

func (b *StringBuffer) String() string { return *b.s }

func (b *StringBuffer) Insert(at int, text string) int {
	i := byteOffset(*b.s, at)
	*b.s = (*b.s)[:i] + text + (*b.s)[i:]
	return runeLen(text)
}

func (b *StringBuffer) Delete(start, end int) {
	if end < start {
		start, end = end, start
	}
	s, e := byteOffset(*b.s, start), byteOffset(*b.s, end)
	*b.s = (*b.s)[:s] + (*b.s)[e:]
}

func (b *StringBuffer) Replace(text string) { *b.s = text }

// Len returns the number of runes in b.
func Len(b Buffer) int { return runeLen(b.String()) }

// InsertAt inserts text at caret and returns the caret after the insertion.
// A positive limit caps the buffer length; text that does not fit is truncated.
func InsertAt(b Buffer, caret int, text string, limit int) int {
	if limit > 0 {
		room := limit - Len(b)
		if room <= 0 {
			return caret
		}
		text = text[:byteOffset(text, room)]
	}
	return caret + b.Insert(caret, text)
}

// DeleteSelected removes the text covered by r and returns the caret at its start.
func DeleteSelected(b Buffer, r Range) int {
	start, end := r.Clamp(Len(b)).Sorted()
	if start != end {
		b.Delete(start, end)
	}
	return start
}

// DeletePreviousChar removes the rune before caret.
func DeletePreviousChar(b Buffer, caret int) int {
	if caret <= 0 {
		return 0
	}
	b.Delete(caret-1, caret)
	return caret - 1
}

// DeleteNextChar removes the rune after caret.
func DeleteNextChar(b Buffer, caret int) int {
	return DeleteSelected(b, Span(caret, caret+1))
}

// DeletePreviousWord removes text back to the previous word boundary.
func DeletePreviousWord(b Buffer, caret int) int {
	start := PreviousWord(b.String(), caret)
	return DeleteSelected(b, Span(start, caret))
}

// DeleteNextWord removes text up to the next word boundary.
func DeleteNextWord(b Buffer, caret int) int {
	end := NextWord(b.String(), caret)
	return DeleteSelected(b, Span(caret, end))
}

// DeleteParagraphBefore removes from the start of the paragraph to the end
// of the selection. With a caret already at the paragraph start it joins the
// paragraph with the previous one.
func DeleteParagraphBefore(b Buffer, r Range) int {
	start, end := r.Sorted()
	start = ParagraphStart(b.String(), start)
	if start == end {
		return DeletePreviousChar(b, start)
	}
	return DeleteSelected(b, Span(start, end))
}

// DeleteParagraphAfter removes from the start of the selection to the end of
// the paragraph.
func DeleteParagraphAfter(b Buffer, r Range) int {
	start, end := r.Sorted()
	end = ParagraphEnd(b.String(), end)
	if start == end {
		return DeleteNextChar(b, start)
	}
	return DeleteSelected(b, Span(start, end))
}

// DecreaseIndentation removes one leading tab, or TabSize leading spaces, from
// the line containing caret.
func DecreaseIndentation(b Buffer, caret int) int {
	text := b.String()
	start := ParagraphStart(text, caret)
	rest := []rune(text[byteOffset(text, start):])

	n := 0
	switch {
	case len(rest) > 0 && rest[0] == '\t':
		n = 1
	case strings.TrimLeft(string(rest[:min(len(rest), TabSize)]), " ") == "":
		n = TabSize
	}
	if n == 0 {
		return caret
	}
	b.Delete(start, start+n)
	if caret == start {
		return caret
	}
	return max(start, caret-n)
}

// ParagraphStart returns the offset just after the newline preceding i.
func ParagraphStart(text string, i int) int {
	head := text[:byteOffset(text, i)]
	nl := strings.LastIndexByte(head, '\n')
	if nl < 0 {
		return 0
	}
	return runeLen(head[:nl+1])
}

// ParagraphEnd returns the offset of the newline at or after i, or the end of text.
func ParagraphEnd(text string, i int) int {
	bi := byteOffset(text, i)
	nl := strings.IndexByte(text[bi:], '\n')
	if nl < 0 {
		return runeLen(text)
	}
	return runeLen(text[:bi+nl])
}
