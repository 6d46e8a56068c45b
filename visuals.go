package m3

import (
	"image/color"

	"github.com/esimov/m3/blend"
	m3color "github.com/esimov/m3/color"
)

// Visuals are the default colors used for surfaces and text which are not
// drawn by a styled widget.
type Visuals struct {
	Dark bool

	WindowFill color.NRGBA
	FaintBg    color.NRGBA
	ExtremeBg  color.NRGBA
	CodeBg     color.NRGBA
	PanelFill  color.NRGBA
	WarnFg     color.NRGBA
	ErrorFg    color.NRGBA
	Text       color.NRGBA
	Hyperlink  color.NRGBA
	Selection  color.NRGBA
}

// NewVisuals maps the scheme roles onto the default color slots.
func NewVisuals(s *m3color.Scheme) Visuals {
	return Visuals{
		Dark:       s.Mode == m3color.Dark,
		WindowFill: s.NRGBA(m3color.Surface),
		FaintBg:    s.NRGBA(m3color.SurfaceContainer),
		ExtremeBg:  s.NRGBA(m3color.SurfaceVariant),
		CodeBg:     s.NRGBA(m3color.SurfaceDim),
		PanelFill:  s.NRGBA(m3color.SurfaceContainerHigh),
		WarnFg:     s.NRGBA(m3color.ErrorContainer),
		ErrorFg:    s.NRGBA(m3color.Error),
		Text:       s.NRGBA(m3color.OnSurface),
		Hyperlink:  s.NRGBA(m3color.Primary),
		Selection:  blend.Opacity(s.NRGBA(m3color.Primary), 0.4),
	}
}
