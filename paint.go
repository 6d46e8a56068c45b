package m3

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// monoFont is the typeface text fields are laid out with.
var monoFont = font.Font{Typeface: "Go Mono"}

// fillRRect paints a rounded rectangle.
func fillRRect(ops *op.Ops, r image.Rectangle, radius int, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	paint.FillShape(ops, c, clip.UniformRRect(r, radius).Op(ops))
}

// strokeRRect outlines a rounded rectangle with the stroke centered on its edge.
func strokeRRect(ops *op.Ops, r image.Rectangle, radius int, width float32, c color.NRGBA) {
	if c.A == 0 || width <= 0 {
		return
	}
	paint.FillShape(ops, c, clip.Stroke{
		Path:  clip.UniformRRect(r, radius).Path(ops),
		Width: width,
	}.Op())
}

// drawLine strokes a straight line from p1 to p2.
func drawLine(ops *op.Ops, p1, p2 f32.Point, width float32, c color.NRGBA) {
	var path clip.Path
	path.Begin(ops)
	path.MoveTo(p1)
	path.LineTo(p2)

	defer clip.Stroke{Path: path.End(), Width: width}.Op().Push(ops).Pop()
	paint.ColorOp{Color: c}.Add(ops)
	paint.PaintOp{}.Add(ops)
}

// colorMaterial records a color op for text rendering.
func colorMaterial(ops *op.Ops, c color.NRGBA) op.CallOp {
	m := op.Record(ops)
	paint.ColorOp{Color: c}.Add(ops)
	return m.Stop()
}

// drawText lays out and paints a single line of text at the current offset.
func drawText(gtx C, shaper *text.Shaper, f font.Font, size unit.Sp, c color.NRGBA, txt string) D {
	gtx.Constraints.Min = image.Point{}
	return widget.Label{MaxLines: 1}.Layout(gtx, shaper, f, size, txt, colorMaterial(gtx.Ops, c))
}

// measureText returns the size of txt without painting it.
func measureText(gtx C, shaper *text.Shaper, f font.Font, size unit.Sp, txt string) image.Point {
	macro := op.Record(gtx.Ops)
	dims := drawText(gtx, shaper, f, size, color.NRGBA{}, txt)
	macro.Stop()
	return dims.Size
}

// center returns the offset that centers inner inside outer.
func center(outer, inner image.Point) image.Point {
	return outer.Sub(inner).Div(2)
}

// font returns the proportional font of labels.
func (t *Theme) font() font.Font {
	return font.Font{Typeface: t.Face}
}
