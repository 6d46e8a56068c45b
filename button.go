package m3

import (
	"image"
	"image/color"

	"gioui.org/io/semantic"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/esimov/m3/blend"
	m3color "github.com/esimov/m3/color"
)

// ButtonStyle holds the colors and metrics of a filled button.
type ButtonStyle struct {
	Container color.NRGBA
	Label     color.NRGBA

	Rounding        unit.Dp
	PressedRounding unit.Dp
	Padding         unit.Dp
	TextSize        unit.Sp

	DisabledContainer        color.NRGBA
	DisabledContainerOpacity float32
	DisabledLabel            color.NRGBA
	DisabledLabelOpacity     float32

	HoveredLayer        color.NRGBA
	HoveredLayerOpacity float32
	PressedLayer        color.NRGBA
	PressedLayerOpacity float32

	ErrorContainer color.NRGBA
	ErrorLabel     color.NRGBA
	ErrorLayer     color.NRGBA
}

// NewButtonStyle derives the filled button style from s.
func NewButtonStyle(s *m3color.Scheme) ButtonStyle {
	return ButtonStyle{
		Container:                s.NRGBA(m3color.Primary),
		Label:                    s.NRGBA(m3color.OnPrimary),
		Rounding:                 20,
		PressedRounding:          8,
		Padding:                  15,
		TextSize:                 14,
		DisabledContainer:        s.NRGBA(m3color.OnSurface),
		DisabledContainerOpacity: 0.1,
		DisabledLabel:            s.NRGBA(m3color.OnSurface),
		DisabledLabelOpacity:     0.38,
		HoveredLayer:             s.NRGBA(m3color.OnPrimary),
		HoveredLayerOpacity:      0.08,
		PressedLayer:             s.NRGBA(m3color.OnPrimary),
		PressedLayerOpacity:      0.1,
		ErrorContainer:           s.NRGBA(m3color.Error),
		ErrorLabel:               s.NRGBA(m3color.OnError),
		ErrorLayer:               s.NRGBA(m3color.OnError),
	}
}

// buttonLook is the resolved appearance of a button for one frame.
type buttonLook struct {
	container color.NRGBA
	label     color.NRGBA
	rounding  unit.Dp
}

// resolveButton picks the button colors. Disabled wins over pressed, which
// wins over hovered; the error flag swaps the enabled colors.
func resolveButton(st ButtonStyle, in interaction) buttonLook {
	look := buttonLook{container: st.Container, label: st.Label, rounding: st.Rounding}
	hovered, pressed := st.HoveredLayer, st.PressedLayer
	if in.err {
		look.container, look.label = st.ErrorContainer, st.ErrorLabel
		hovered, pressed = st.ErrorLayer, st.ErrorLayer
	}
	switch {
	case in.disabled:
		look.container = blend.Opacity(st.DisabledContainer, st.DisabledContainerOpacity)
		look.label = blend.Opacity(st.DisabledLabel, st.DisabledLabelOpacity)
	case in.pressed:
		look.container = blend.Lerp(look.container, pressed, st.PressedLayerOpacity)
		look.rounding = st.PressedRounding
	case in.hovered:
		look.container = blend.Lerp(look.container, hovered, st.HoveredLayerOpacity)
	}
	return look
}

// Button is a filled Material button.
type Button struct {
	Style     ButtonStyle
	Text      string
	Disabled  bool
	Error     bool
	Clickable *widget.Clickable
	th        *Theme
}

// Button returns a filled button bound to the click state c.
func (t *Theme) Button(c *widget.Clickable, label string) Button {
	return Button{
		Style:     NewButtonStyle(t.Scheme()),
		Text:      label,
		Clickable: c,
		th:        t,
	}
}

// Layout draws the button and reports clicks completed this frame. Clicks on
// a disabled button are drained and ignored.
func (b Button) Layout(gtx C) Response {
	clicked := b.Clickable.Clicked(gtx)
	if b.Disabled {
		clicked = false
		gtx = gtx.Disabled()
	}

	in := interaction{
		disabled: b.Disabled,
		hovered:  b.Clickable.Hovered(),
		pressed:  b.Clickable.Pressed(),
		err:      b.Error,
	}
	look := resolveButton(b.Style, in)

	textSize := measureText(gtx, b.th.Shaper, b.th.font(), b.Style.TextSize, b.Text)
	pad := gtx.Dp(b.Style.Padding)
	size := textSize.Add(image.Pt(2*pad, 2*pad))
	size = gtx.Constraints.Constrain(size)

	dims := b.Clickable.Layout(gtx, func(gtx C) D {
		semantic.Button.Add(gtx.Ops)
		semantic.DescriptionOp(b.Text).Add(gtx.Ops)
		semantic.EnabledOp(!b.Disabled).Add(gtx.Ops)

		r := image.Rectangle{Max: size}
		fillRRect(gtx.Ops, r, gtx.Dp(look.rounding), look.container)

		defer op.Offset(center(size, textSize)).Push(gtx.Ops).Pop()
		drawText(gtx, b.th.Shaper, b.th.font(), b.Style.TextSize, look.label, b.Text)
		return D{Size: size}
	})

	return Response{
		Dimensions: dims,
		Clicked:    clicked,
		Hovered:    in.hovered,
		Pressed:    in.pressed,
		Focused:    gtx.Focused(b.Clickable),
	}
}
