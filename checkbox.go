package m3

import (
	"image"
	"image/color"

	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/esimov/m3/blend"
	m3color "github.com/esimov/m3/color"
)

// checkIcon is the check mark drawn inside a selected box.
var checkIcon = mustIcon(widget.NewIcon(icons.NavigationCheck))

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

// CheckboxStyle holds the colors and metrics of a checkbox.
type CheckboxStyle struct {
	ContainerSize     unit.Dp
	ContainerRounding unit.Dp
	LayerSize         unit.Dp
	OutlineWidth      unit.Dp
	IconSize          unit.Dp
	Icon              *widget.Icon

	UnselectedOutline color.NRGBA
	SelectedContainer color.NRGBA
	SelectedIcon      color.NRGBA
	ErrorOutline      color.NRGBA
	ErrorContainer    color.NRGBA
	ErrorIcon         color.NRGBA

	Disabled        color.NRGBA
	DisabledOpacity float32
	DisabledIcon    color.NRGBA

	HoveredOutline         color.NRGBA
	HoveredSelectedLayer   color.NRGBA
	HoveredUnselectedLayer color.NRGBA
	HoveredErrorLayer      color.NRGBA
	HoveredLayerOpacity    float32

	PressedOutline         color.NRGBA
	PressedSelectedLayer   color.NRGBA
	PressedUnselectedLayer color.NRGBA
	PressedErrorLayer      color.NRGBA
	PressedLayerOpacity    float32
}

// NewCheckboxStyle derives the checkbox style from s.
func NewCheckboxStyle(s *m3color.Scheme) CheckboxStyle {
	return CheckboxStyle{
		ContainerSize:     18,
		ContainerRounding: 2,
		LayerSize:         40,
		OutlineWidth:      2,
		IconSize:          14,
		Icon:              checkIcon,

		UnselectedOutline: s.NRGBA(m3color.OnSurfaceVariant),
		SelectedContainer: s.NRGBA(m3color.Primary),
		SelectedIcon:      s.NRGBA(m3color.OnPrimary),
		ErrorOutline:      s.NRGBA(m3color.Error),
		ErrorContainer:    s.NRGBA(m3color.Error),
		ErrorIcon:         s.NRGBA(m3color.OnError),

		Disabled:        s.NRGBA(m3color.OnSurface),
		DisabledOpacity: 0.38,
		DisabledIcon:    s.NRGBA(m3color.Surface),

		HoveredOutline:         s.NRGBA(m3color.OnSurface),
		HoveredSelectedLayer:   s.NRGBA(m3color.Primary),
		HoveredUnselectedLayer: s.NRGBA(m3color.OnSurface),
		HoveredErrorLayer:      s.NRGBA(m3color.Error),
		HoveredLayerOpacity:    0.08,

		PressedOutline:         s.NRGBA(m3color.OnSurface),
		PressedSelectedLayer:   s.NRGBA(m3color.OnSurface),
		PressedUnselectedLayer: s.NRGBA(m3color.Primary),
		PressedErrorLayer:      s.NRGBA(m3color.Error),
		PressedLayerOpacity:    0.1,
	}
}

// checkboxLook is the resolved appearance of a checkbox for one frame.
// Transparent colors are not painted.
type checkboxLook struct {
	fill    color.NRGBA
	outline color.NRGBA
	icon    color.NRGBA
	layer   color.NRGBA
}

// resolveCheckbox picks the checkbox colors. Disabled wins over pressed,
// which wins over hovered; the error flag swaps colors inside each branch.
func resolveCheckbox(st CheckboxStyle, in interaction, checked bool) checkboxLook {
	var look checkboxLook
	if in.disabled {
		if checked {
			look.fill = blend.Opacity(st.Disabled, st.DisabledOpacity)
			look.icon = st.DisabledIcon
		} else {
			look.outline = blend.Opacity(st.Disabled, st.DisabledOpacity)
		}
		return look
	}

	switch {
	case checked && in.err:
		look.fill, look.icon = st.ErrorContainer, st.ErrorIcon
	case checked:
		look.fill, look.icon = st.SelectedContainer, st.SelectedIcon
	case in.err:
		look.outline = st.ErrorOutline
	default:
		look.outline = st.UnselectedOutline
	}

	switch {
	case in.pressed:
		layer := st.PressedUnselectedLayer
		if checked {
			layer = st.PressedSelectedLayer
		}
		if in.err {
			layer = st.PressedErrorLayer
		}
		look.layer = blend.Opacity(layer, st.PressedLayerOpacity)
		if !checked && !in.err {
			look.outline = st.PressedOutline
		}
	case in.hovered:
		layer := st.HoveredUnselectedLayer
		if checked {
			layer = st.HoveredSelectedLayer
		}
		if in.err {
			layer = st.HoveredErrorLayer
		}
		look.layer = blend.Opacity(layer, st.HoveredLayerOpacity)
		if !checked && !in.err {
			look.outline = st.HoveredOutline
		}
	}
	return look
}

// Checkbox toggles a caller-owned bool.
type Checkbox struct {
	Style     CheckboxStyle
	Checked   *bool
	Label     string
	Disabled  bool
	Error     bool
	Clickable *widget.Clickable
	th        *Theme
}

// Checkbox returns a checkbox bound to checked, with c holding its click state.
func (t *Theme) Checkbox(c *widget.Clickable, checked *bool, label string) Checkbox {
	return Checkbox{
		Style:     NewCheckboxStyle(t.Scheme()),
		Checked:   checked,
		Label:     label,
		Clickable: c,
		th:        t,
	}
}

// Layout toggles the value on a completed click, then draws the box with the
// new value.
func (cb Checkbox) Layout(gtx C) Response {
	var changed bool
	if cb.Clickable.Clicked(gtx) && !cb.Disabled {
		*cb.Checked = !*cb.Checked
		changed = true
	}
	if cb.Disabled {
		gtx = gtx.Disabled()
	}

	in := interaction{
		disabled: cb.Disabled,
		hovered:  cb.Clickable.Hovered(),
		pressed:  cb.Clickable.Pressed(),
		err:      cb.Error,
	}
	look := resolveCheckbox(cb.Style, in, *cb.Checked)

	layerSize := gtx.Dp(cb.Style.LayerSize)
	boxSize := gtx.Dp(cb.Style.ContainerSize)
	labelColor := cb.th.Visuals().Text
	if cb.Disabled {
		labelColor = blend.Opacity(labelColor, cb.Style.DisabledOpacity)
	}

	dims := cb.Clickable.Layout(gtx, func(gtx C) D {
		semantic.CheckBox.Add(gtx.Ops)
		semantic.SelectedOp(*cb.Checked).Add(gtx.Ops)
		semantic.EnabledOp(!cb.Disabled).Add(gtx.Ops)
		if cb.Label != "" {
			semantic.DescriptionOp(cb.Label).Add(gtx.Ops)
		}

		layer := image.Rectangle{Max: image.Pt(layerSize, layerSize)}
		fillRRect(gtx.Ops, layer, layerSize/2, look.layer)

		box := image.Rectangle{Max: image.Pt(boxSize, boxSize)}.Add(center(layer.Max, image.Pt(boxSize, boxSize)))
		radius := gtx.Dp(cb.Style.ContainerRounding)
		fillRRect(gtx.Ops, box, radius, look.fill)
		if look.outline.A > 0 {
			w := float32(gtx.Dp(cb.Style.OutlineWidth))
			inner := image.Rectangle{Min: box.Min.Add(image.Pt(int(w/2), int(w/2))), Max: box.Max.Sub(image.Pt(int(w/2), int(w/2)))}
			strokeRRect(gtx.Ops, inner, radius, w, look.outline)
		}

		if *cb.Checked && cb.Style.Icon != nil {
			iconSize := gtx.Dp(cb.Style.IconSize)
			st := op.Offset(box.Min.Add(center(box.Size(), image.Pt(iconSize, iconSize)))).Push(gtx.Ops)
			igtx := gtx
			igtx.Constraints = layout.Exact(image.Pt(iconSize, iconSize))
			cb.Style.Icon.Layout(igtx, look.icon)
			st.Pop()
		}

		size := layer.Max
		if cb.Label != "" {
			textSize := measureText(gtx, cb.th.Shaper, cb.th.font(), cb.th.TextSize, cb.Label)
			st := op.Offset(image.Pt(layerSize, (layerSize-textSize.Y)/2)).Push(gtx.Ops)
			drawText(gtx, cb.th.Shaper, cb.th.font(), cb.th.TextSize, labelColor, cb.Label)
			st.Pop()
			size.X += textSize.X
		}
		return D{Size: size}
	})

	return Response{
		Dimensions: dims,
		Clicked:    changed,
		Changed:    changed,
		Hovered:    in.hovered,
		Pressed:    in.pressed,
		Focused:    gtx.Focused(cb.Clickable),
	}
}
