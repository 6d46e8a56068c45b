package m3

import (
	"image/color"

	"gioui.org/unit"

	"github.com/esimov/m3/blend"
	m3color "github.com/esimov/m3/color"
)

// TextFieldStyle holds the colors and metrics of a text field.
type TextFieldStyle struct {
	Container         color.NRGBA
	ContainerRounding unit.Dp
	Outline           color.NRGBA
	OutlineWidth      unit.Dp
	Label             color.NRGBA
	LabelSize         unit.Sp
	Input             color.NRGBA
	InputSize         unit.Sp
	Padding           [2]unit.Dp

	DisabledContainer        color.NRGBA
	DisabledContainerOpacity float32
	DisabledLabel            color.NRGBA
	DisabledInput            color.NRGBA
	DisabledOpacity          float32
	DisabledOutline          color.NRGBA

	FocusedLabel   color.NRGBA
	FocusedInput   color.NRGBA
	FocusedOutline color.NRGBA

	ErrorContainer color.NRGBA
	ErrorLabel     color.NRGBA
	ErrorInput     color.NRGBA
	ErrorOutline   color.NRGBA

	Selection  color.NRGBA
	Caret      color.NRGBA
	CaretWidth unit.Dp

	// Width and Height override the size of the field when non-zero.
	Width  unit.Dp
	Height unit.Dp
}

// NewTextFieldStyle derives the text field style from s.
func NewTextFieldStyle(s *m3color.Scheme) TextFieldStyle {
	return TextFieldStyle{
		Container:         s.NRGBA(m3color.SurfaceContainerHighest),
		ContainerRounding: 8,
		Outline:           s.NRGBA(m3color.OnSurfaceVariant),
		OutlineWidth:      2,
		Label:             s.NRGBA(m3color.OnSurfaceVariant),
		LabelSize:         16,
		Input:             s.NRGBA(m3color.OnSurface),
		InputSize:         16,
		Padding:           [2]unit.Dp{16, 12},

		DisabledContainer:        s.NRGBA(m3color.OnSurface),
		DisabledContainerOpacity: 0.04,
		DisabledLabel:            s.NRGBA(m3color.OnSurfaceVariant),
		DisabledInput:            s.NRGBA(m3color.OnSurface),
		DisabledOpacity:          0.38,
		DisabledOutline:          s.NRGBA(m3color.OnSurfaceVariant),

		FocusedLabel:   s.NRGBA(m3color.OnSurfaceVariant),
		FocusedInput:   s.NRGBA(m3color.OnSurface),
		FocusedOutline: s.NRGBA(m3color.Primary),

		ErrorContainer: s.NRGBA(m3color.ErrorContainer),
		ErrorLabel:     s.NRGBA(m3color.Error),
		ErrorInput:     s.NRGBA(m3color.OnErrorContainer),
		ErrorOutline:   s.NRGBA(m3color.Error),

		Selection:  blend.Opacity(s.NRGBA(m3color.Primary), 0.4),
		Caret:      s.NRGBA(m3color.Primary),
		CaretWidth: 2,
	}
}

// textFieldLook is the resolved appearance of a text field for one frame.
type textFieldLook struct {
	container color.NRGBA
	outline   color.NRGBA
	label     color.NRGBA
	input     color.NRGBA
}

// resolveTextField picks the field colors. Disabled wins over error, which
// wins over focused.
func resolveTextField(st TextFieldStyle, disabled, err, focused bool) textFieldLook {
	switch {
	case disabled:
		return textFieldLook{
			container: blend.Opacity(st.DisabledContainer, st.DisabledContainerOpacity),
			outline:   st.DisabledOutline,
			label:     blend.Opacity(st.DisabledLabel, st.DisabledOpacity),
			input:     blend.Opacity(st.DisabledInput, st.DisabledOpacity),
		}
	case err:
		return textFieldLook{
			container: st.ErrorContainer,
			outline:   st.ErrorOutline,
			label:     st.ErrorLabel,
			input:     st.ErrorInput,
		}
	case focused:
		return textFieldLook{
			container: st.Container,
			outline:   st.FocusedOutline,
			label:     st.FocusedLabel,
			input:     st.FocusedInput,
		}
	}
	return textFieldLook{
		container: st.Container,
		outline:   st.Outline,
		label:     st.Label,
		input:     st.Input,
	}
}
