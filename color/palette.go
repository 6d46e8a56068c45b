package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// gamutSteps is the number of bisection steps used to find the largest
// in-gamut chroma for a tone.
const gamutSteps = 24

// TonalPalette is a family of colors sharing hue and chroma, indexed by tone.
// Tone is the perceptual lightness L* in the [0, 100] range.
type TonalPalette struct {
	Hue    float64
	Chroma float64
}

// Tone returns the palette color at tone t. When the requested chroma is not
// representable in sRGB at this lightness, the chroma is reduced until it is,
// so every tone of every palette exists.
func (p TonalPalette) Tone(t float64) ARGB {
	switch {
	case t <= 0:
		return 0xff000000
	case t >= 100:
		return 0xffffffff
	}
	l := t / 100
	c := p.Chroma / 100
	if col := colorful.Hcl(p.Hue, c, l); col.IsValid() {
		return fromColorful(col)
	}

	lo, hi := 0.0, c
	for i := 0; i < gamutSteps; i++ {
		mid := (lo + hi) / 2
		if colorful.Hcl(p.Hue, mid, l).IsValid() {
			lo = mid
		} else {
			hi = mid
		}
	}
	return fromColorful(colorful.Hcl(p.Hue, lo, l))
}

// CorePalette groups the key palettes a scheme is built from.
type CorePalette struct {
	Primary        TonalPalette
	Secondary      TonalPalette
	Tertiary       TonalPalette
	Neutral        TonalPalette
	NeutralVariant TonalPalette
	Error          TonalPalette
}

// NewCorePalette builds the "tonal spot" palettes around the hue of the seed color.
func NewCorePalette(seed ARGB) CorePalette {
	hue, _, _ := seed.colorful().Hcl()
	return CorePalette{
		Primary:        TonalPalette{Hue: hue, Chroma: 36},
		Secondary:      TonalPalette{Hue: hue, Chroma: 16},
		Tertiary:       TonalPalette{Hue: math.Mod(hue+60, 360), Chroma: 24},
		Neutral:        TonalPalette{Hue: hue, Chroma: 6},
		NeutralVariant: TonalPalette{Hue: hue, Chroma: 8},
		Error:          TonalPalette{Hue: 25, Chroma: 84},
	}
}

// Lightness returns the L* of c in the [0, 100] range.
func Lightness(c ARGB) float64 {
	_, _, l := c.colorful().Hcl()
	return l * 100
}

// Hue returns the hue angle of c in degrees.
func Hue(c ARGB) float64 {
	h, _, _ := c.colorful().Hcl()
	return h
}

// RotateHue returns c with its hue rotated by deg degrees, keeping lightness and chroma.
func RotateHue(c ARGB, deg float64) ARGB {
	h, ch, l := c.colorful().Hcl()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	p := TonalPalette{Hue: h, Chroma: ch * 100}
	return p.Tone(l * 100)
}
