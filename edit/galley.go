package edit

import (
	"math"

	"gioui.org/f32"
	"github.com/mattn/go-runewidth"
)

// Params configures the monospace layout of a Galley.
type Params struct {
	// CellWidth is the advance of one monospace cell in pixels.
	CellWidth float32
	// LineHeight is the height of a row in pixels.
	LineHeight float32
	// WrapWidth breaks rows wider than it when Multiline is set. Zero disables wrapping.
	WrapWidth float32
	Multiline bool
}

// Row is one visual line of a Galley.
type Row struct {
	// Start and End are rune offsets; End excludes a trailing newline.
	Start, End int
	// Newline reports whether the row ends with a newline.
	Newline bool
	// xs holds the caret x for every offset in [Start, End].
	xs []float32
}

// Width returns the advance of the row contents.
func (r Row) Width() float32 { return r.xs[len(r.xs)-1] }

// Galley is text laid out into rows of monospace cells.
type Galley struct {
	Text   string
	Params Params
	Rows   []Row
	runes  int
}

// Layouter lays out text for the current widget configuration.
type Layouter func(text string) *Galley

// LayoutFunc returns a Layouter with fixed parameters.
func LayoutFunc(p Params) Layouter {
	return func(text string) *Galley { return Layout(text, p) }
}

// Layout breaks text into rows. Single-line layouts never wrap; newlines
// still start a new row so pasted multi-line text stays addressable.
func Layout(text string, p Params) *Galley {
	if p.CellWidth <= 0 {
		p.CellWidth = 1
	}
	if p.LineHeight <= 0 {
		p.LineHeight = 1
	}
	g := &Galley{Text: text, Params: p}
	wrap := p.Multiline && p.WrapWidth > 0

	row := Row{xs: []float32{0}}
	lastSpace := -1
	i := 0
	for _, r := range text {
		if r == '\n' {
			row.End = i
			row.Newline = true
			g.Rows = append(g.Rows, row)
			row = Row{Start: i + 1, xs: []float32{0}}
			lastSpace = -1
			i++
			continue
		}
		w := p.CellWidth * float32(cells(r))
		x := row.xs[len(row.xs)-1]
		if wrap && x+w > p.WrapWidth && i > row.Start {
			brk := i
			if lastSpace >= row.Start {
				brk = lastSpace + 1
			}
			g.Rows = append(g.Rows, Row{Start: row.Start, End: brk, xs: row.xs[:brk-row.Start+1]})
			carried := row.xs[brk-row.Start:]
			row = Row{Start: brk, xs: make([]float32, 0, len(carried)+1)}
			for _, cx := range carried {
				row.xs = append(row.xs, cx-carried[0])
			}
			lastSpace = -1
			x = row.xs[len(row.xs)-1]
		}
		if r == ' ' || r == '\t' {
			lastSpace = i
		}
		row.xs = append(row.xs, x+w)
		i++
	}
	row.End = i
	g.Rows = append(g.Rows, row)
	g.runes = i
	return g
}

func cells(r rune) int {
	if r == '\t' {
		return TabSize
	}
	return runewidth.RuneWidth(r)
}

// End returns the offset after the last rune.
func (g *Galley) End() int { return g.runes }

// Size returns the extent of the laid out text.
func (g *Galley) Size() f32.Point {
	var w float32
	for _, r := range g.Rows {
		w = max(w, r.Width())
	}
	return f32.Pt(w, float32(len(g.Rows))*g.Params.LineHeight)
}

// RowOf returns the index of the row holding the caret at offset i. An
// offset at a soft wrap belongs to the following row.
func (g *Galley) RowOf(i int) int {
	i = clampIndex(i, g.runes)
	for n, r := range g.Rows {
		if i < r.End || (i == r.End && (r.Newline || n == len(g.Rows)-1)) {
			if i >= r.Start {
				return n
			}
		}
	}
	return len(g.Rows) - 1
}

// Pos returns the top-left corner of the caret at offset i.
func (g *Galley) Pos(i int) f32.Point {
	i = clampIndex(i, g.runes)
	n := g.RowOf(i)
	r := g.Rows[n]
	return f32.Pt(r.xs[i-r.Start], float32(n)*g.Params.LineHeight)
}

// OffsetAt returns the offset closest to p.
func (g *Galley) OffsetAt(p f32.Point) int {
	n := int(math.Floor(float64(p.Y / g.Params.LineHeight)))
	n = clampIndex(n, len(g.Rows)-1)
	return g.offsetInRow(n, p.X)
}

func (g *Galley) offsetInRow(n int, x float32) int {
	r := g.Rows[n]
	best := 0
	for j, cx := range r.xs {
		if abs32(cx-x) < abs32(r.xs[best]-x) {
			best = j
		}
	}
	i := r.Start + best
	if i == r.End && !r.Newline && n < len(g.Rows)-1 && i > r.Start {
		// The end of a soft wrapped row would map to the next row.
		i--
	}
	return i
}

// RowBegin returns the first offset of the row holding i.
func (g *Galley) RowBegin(i int) int { return g.Rows[g.RowOf(i)].Start }

// RowEnd returns the last caret offset of the row holding i.
func (g *Galley) RowEnd(i int) int {
	n := g.RowOf(i)
	r := g.Rows[n]
	if !r.Newline && n < len(g.Rows)-1 && r.End > r.Start {
		return r.End - 1
	}
	return r.End
}

// Up returns the offset one row above i at horizontal position x, or the
// start of the text on the first row.
func (g *Galley) Up(i int, x float32) int {
	n := g.RowOf(i)
	if n == 0 {
		return 0
	}
	return g.offsetInRow(n-1, x)
}

// Down returns the offset one row below i at horizontal position x, or the
// end of the text on the last row.
func (g *Galley) Down(i int, x float32) int {
	n := g.RowOf(i)
	if n >= len(g.Rows)-1 {
		return g.runes
	}
	return g.offsetInRow(n+1, x)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// RowText returns the text of row n without its trailing newline.
func (g *Galley) RowText(n int) string {
	r := g.Rows[n]
	return Span(r.Start, r.End).Slice(g.Text)
}

// Rect is an axis aligned rectangle in galley coordinates.
type Rect struct {
	Min, Max f32.Point
}

// Add translates r by p.
func (r Rect) Add(p f32.Point) Rect {
	return Rect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Highlight returns one rectangle per row covered by the selection r. A
// selected newline is shown as one extra cell.
func (g *Galley) Highlight(r Range) []Rect {
	start, end := r.Clamp(g.runes).Sorted()
	if start == end {
		return nil
	}
	var rects []Rect
	for n, row := range g.Rows {
		if row.End < start || row.Start > end || (row.End == start && !row.Newline) {
			continue
		}
		if row.Start == end && n > 0 {
			break
		}
		a, b := max(start, row.Start), min(end, row.End)
		x0, x1 := row.xs[a-row.Start], row.xs[b-row.Start]
		if row.Newline && end > row.End {
			x1 += g.Params.CellWidth
		}
		y := float32(n) * g.Params.LineHeight
		rects = append(rects, Rect{Min: f32.Pt(x0, y), Max: f32.Pt(x1, y+g.Params.LineHeight)})
	}
	return rects
}
