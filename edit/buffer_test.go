package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringBuffer(t *testing.T) {
	assert := assert.New(t)

	s := "héllo"
	b := NewStringBuffer(&s)
	assert.Equal(2, b.Insert(1, "ÿÿ"))
	assert.Equal("hÿÿéllo", s)

	b.Delete(3, 1)
	assert.Equal("héllo", s)
	b.Delete(4, 99)
	assert.Equal("héll", s)

	b.Replace("new")
	assert.Equal("new", b.String())
	assert.Equal(3, Len(b))
}

func TestRange(t *testing.T) {
	assert := assert.New(t)

	r := Span(5, 2)
	start, end := r.Sorted()
	assert.Equal(2, start)
	assert.Equal(5, end)
	assert.False(r.IsEmpty())
	assert.Equal(Caret(2), r.Collapse())
	assert.Equal("llo", r.Slice("hello world"))
	assert.Equal("", Caret(3).Slice("abc"))

	_, ok := r.Single()
	assert.False(ok)
	i, ok := Caret(4).Single()
	assert.True(ok)
	assert.Equal(4, i)
}

func TestInsertAt(t *testing.T) {
	assert := assert.New(t)

	s := "ab"
	b := NewStringBuffer(&s)
	assert.Equal(3, InsertAt(b, 1, "xy", 0))
	assert.Equal("axyb", s)

	assert.Equal(2, InsertAt(b, 1, "123", 5))
	assert.Equal("a1xyb", s)

	assert.Equal(2, InsertAt(b, 2, "zzz", 5))
	assert.Equal("a1xyb", s)
}

func TestDeleteHelpers(t *testing.T) {
	assert := assert.New(t)

	s := "one two\nthree"
	b := NewStringBuffer(&s)

	assert.Equal(0, DeletePreviousChar(b, 0))
	assert.Equal(13, len(s))

	assert.Equal(7, DeleteNextChar(b, 7))
	assert.Equal("one twothree", s)

	assert.Equal(4, DeletePreviousWord(b, 7))
	assert.Equal("one three", s)

	assert.Equal(0, DeleteNextWord(b, 0))
	assert.Equal(" three", s)

	assert.Equal(6, DeleteNextChar(b, 6), "deleting at the end is a no-op")
	assert.Equal(" three", s)
}

func TestDeleteParagraph(t *testing.T) {
	assert := assert.New(t)

	s := "ab\ncd\nef"
	b := NewStringBuffer(&s)

	assert.Equal(3, DeleteParagraphBefore(b, Caret(5)))
	assert.Equal("ab\n\nef", s)
	assert.Equal(2, DeleteParagraphBefore(b, Caret(3)), "at the paragraph start it joins lines")
	assert.Equal("ab\nef", s)

	assert.Equal(0, DeleteParagraphAfter(b, Caret(0)))
	assert.Equal("\nef", s)
	assert.Equal(0, DeleteParagraphAfter(b, Caret(0)))
	assert.Equal("ef", s)
}

func TestDecreaseIndentation(t *testing.T) {
	assert := assert.New(t)

	s := "x\n\tab"
	b := NewStringBuffer(&s)
	assert.Equal(3, DecreaseIndentation(b, 4))
	assert.Equal("x\nab", s)

	s = "x\n      ab"
	assert.Equal(4, DecreaseIndentation(b, 8))
	assert.Equal("x\n  ab", s)

	s = "x\n  ab"
	assert.Equal(5, DecreaseIndentation(b, 5))
	assert.Equal("x\n  ab", s)

	s = "\tab"
	assert.Equal(0, DecreaseIndentation(b, 0))
	assert.Equal("ab", s)
}

func TestParagraphBounds(t *testing.T) {
	assert := assert.New(t)
	text := "ab\nçd\n"
	assert.Equal(0, ParagraphStart(text, 2))
	assert.Equal(3, ParagraphStart(text, 3))
	assert.Equal(3, ParagraphStart(text, 5))
	assert.Equal(6, ParagraphStart(text, 6))
	assert.Equal(2, ParagraphEnd(text, 0))
	assert.Equal(5, ParagraphEnd(text, 3))
	assert.Equal(6, ParagraphEnd(text, 6))
}

func TestMask(t *testing.T) {
	assert.Equal(t, "******", Mask("secret"))
	assert.Equal(t, "***", Mask("日本語"))
	assert.Equal(t, "plain", MaskIf(false, "plain"))
}
