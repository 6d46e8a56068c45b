// Package blend implements the color compositing used to build Material
// state layers: a translucent overlay of a role color mixed with its backdrop.
// Besides the Porter-Duff source-over operation it provides the separable
// blend modes which the swatch sheet uses to preview state layers.
package blend

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/esimov/m3/utils"
)

// Mode is a separable blend mode.
type Mode string

const (
	Normal   Mode = "normal"
	Darken   Mode = "darken"
	Lighten  Mode = "lighten"
	Multiply Mode = "multiply"
	Screen   Mode = "screen"
	Overlay  Mode = "overlay"
)

var modes = []Mode{Normal, Darken, Lighten, Multiply, Screen, Overlay}

// ParseMode resolves one of the supported blend modes by name.
func ParseMode(s string) (Mode, error) {
	for _, m := range modes {
		if string(m) == s {
			return m, nil
		}
	}
	return Normal, fmt.Errorf("unsupported blend mode %q", s)
}

// Opacity scales the alpha channel of c by f, clamped to [0, 1].
func Opacity(c color.NRGBA, f float32) color.NRGBA {
	f = utils.Clamp(f, 0, 1)
	c.A = uint8(math.Round(float64(c.A) * float64(f)))
	return c
}

// Over composites src over dst (Porter-Duff source-over) and returns the
// non-premultiplied result.
func Over(src, dst color.NRGBA) color.NRGBA {
	as := float64(src.A) / 255
	ab := float64(dst.A) / 255

	an := as + ab*(1-as)
	if an == 0 {
		return color.NRGBA{}
	}
	mix := func(s, b uint8) uint8 {
		v := (as*float64(s)/255 + ab*float64(b)/255*(1-as)) / an
		return to8(v)
	}
	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: to8(an),
	}
}

// Layer paints the state layer color over base at the given opacity.
func Layer(base, layer color.NRGBA, opacity float32) color.NRGBA {
	return Over(Opacity(layer, opacity), base)
}

// Lerp interpolates linearly between a and b in gamma space; t is clamped to [0, 1].
func Lerp(a, b color.NRGBA, t float32) color.NRGBA {
	t = utils.Clamp(t, 0, 1)
	l := func(x, y uint8) uint8 {
		return to8((float64(x) + (float64(y)-float64(x))*float64(t)) / 255)
	}
	return color.NRGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

// Apply blends src onto dst with mode m, then composites the result over dst
// using the source alpha.
func Apply(m Mode, src, dst color.NRGBA) color.NRGBA {
	if m == Normal {
		return Over(src, dst)
	}
	var f func(s, b float64) float64
	switch m {
	case Darken:
		f = utils.Min[float64]
	case Lighten:
		f = utils.Max[float64]
	case Multiply:
		f = func(s, b float64) float64 { return s * b }
	case Screen:
		f = func(s, b float64) float64 { return 1 - (1-s)*(1-b) }
	case Overlay:
		f = func(s, b float64) float64 {
			if b <= 0.5 {
				return 2 * s * b
			}
			return 1 - 2*(1-s)*(1-b)
		}
	default:
		return Over(src, dst)
	}
	ch := func(s, b uint8) uint8 {
		return to8(f(float64(s)/255, float64(b)/255))
	}
	mixed := color.NRGBA{R: ch(src.R, dst.R), G: ch(src.G, dst.G), B: ch(src.B, dst.B), A: src.A}
	return Over(mixed, dst)
}

// Fill composites c over every pixel of dst inside r using mode m.
func Fill(dst *image.NRGBA, r image.Rectangle, c color.NRGBA, m Mode) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetNRGBA(x, y, Apply(m, c, dst.NRGBAAt(x, y)))
		}
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(utils.Clamp(v, 0, 1) * 255))
}
