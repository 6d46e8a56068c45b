package edit

import (
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalley_Rows(t *testing.T) {
	assert := assert.New(t)

	g := Layout("ab\ncd", Params{Multiline: true, CellWidth: 10, LineHeight: 20})
	require.Len(t, g.Rows, 2)
	assert.Equal(5, g.End())
	assert.Equal(f32.Pt(20, 40), g.Size())

	assert.Equal(f32.Pt(10, 20), g.Pos(4))
	assert.Equal(3, g.RowBegin(4))
	assert.Equal(5, g.RowEnd(4))
	assert.Equal(2, g.RowEnd(0))
	assert.Equal(1, g.Up(4, 10))
	assert.Equal(4, g.Down(1, 10))
	assert.Equal(0, g.Up(1, 10))
	assert.Equal(5, g.Down(4, 10))

	assert.Equal(4, g.OffsetAt(f32.Pt(12, 25)))
	assert.Equal(5, g.OffsetAt(f32.Pt(500, 500)))
	assert.Equal(0, g.OffsetAt(f32.Pt(-5, -5)))
}

func TestGalley_EmptyText(t *testing.T) {
	g := Layout("", Params{})
	require.Len(t, g.Rows, 1)
	assert.Equal(t, 0, g.End())
	assert.Equal(t, f32.Pt(0, 0), g.Pos(0))
	assert.Equal(t, 0, g.OffsetAt(f32.Pt(3, 3)))
}

func TestGalley_Wrap(t *testing.T) {
	assert := assert.New(t)

	g := Layout("aaa bbb", Params{Multiline: true, WrapWidth: 4})
	require.Len(t, g.Rows, 2)
	assert.Equal(0, g.Rows[0].Start)
	assert.Equal(4, g.Rows[0].End)
	assert.Equal(4, g.Rows[1].Start)
	assert.Equal(7, g.Rows[1].End)
	assert.Equal(1, g.RowOf(4), "a soft wrap offset belongs to the next row")
	assert.Equal(3, g.RowEnd(1))
	assert.Equal(f32.Pt(4, 2), g.Size())

	single := Layout("aaa bbb", Params{WrapWidth: 4})
	assert.Len(single.Rows, 1)
}

func TestGalley_LongWordWraps(t *testing.T) {
	g := Layout("abcdef", Params{Multiline: true, WrapWidth: 2})
	require.Len(t, g.Rows, 3)
	assert.Equal(t, 2, g.Rows[1].Start)
	assert.Equal(t, f32.Pt(0, 1), g.Pos(2))
}

func TestGalley_CellWidths(t *testing.T) {
	assert := assert.New(t)

	g := Layout("世a\tb", Params{})
	assert.Equal(f32.Pt(2, 0), g.Pos(1))
	assert.Equal(f32.Pt(3, 0), g.Pos(2))
	assert.Equal(f32.Pt(7, 0), g.Pos(3))
	assert.Equal(float32(8), g.Size().X)
}

func TestGalley_Highlight(t *testing.T) {
	assert := assert.New(t)

	g := Layout("ab\ncd", Params{Multiline: true, CellWidth: 10, LineHeight: 20})
	assert.Nil(g.Highlight(Caret(1)))
	assert.Equal([]Rect{
		{Min: f32.Pt(10, 0), Max: f32.Pt(30, 20)},
		{Min: f32.Pt(0, 20), Max: f32.Pt(10, 40)},
	}, g.Highlight(Span(4, 1)))
	assert.Equal([]Rect{
		{Min: f32.Pt(0, 0), Max: f32.Pt(30, 20)},
	}, g.Highlight(Span(0, 3)))

	assert.Equal(Rect{Min: f32.Pt(15, 5), Max: f32.Pt(25, 25)},
		Rect{Min: f32.Pt(10, 0), Max: f32.Pt(20, 20)}.Add(f32.Pt(5, 5)))

	assert.Equal("ab", g.RowText(0))
	assert.Equal("cd", g.RowText(1))
}
