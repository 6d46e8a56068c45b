// Package color derives the Material 3 color roles used by the widgets
// from a single seed color.
package color

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ARGB is a packed 0xAARRGGBB color.
type ARGB uint32

// FromNRGBA packs a non-premultiplied color.
func FromNRGBA(c color.NRGBA) ARGB {
	return ARGB(uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// ParseARGB parses a color written as "#rrggbb", "#aarrggbb", "0xaarrggbb" or
// without any prefix. Six digit values are fully opaque.
func ParseARGB(s string) (ARGB, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")

	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return ARGB(v), nil
}

// MustParseARGB is like ParseARGB but panics on malformed input.
func MustParseARGB(s string) ARGB {
	c, err := ParseARGB(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns the alpha channel.
func (c ARGB) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c ARGB) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c ARGB) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c ARGB) Blue() uint8 { return uint8(c) }

// NRGBA converts the packed value to the non-premultiplied color type used by Gio.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// String formats opaque colors as "#rrggbb" and translucent ones as "#aarrggbb".
func (c ARGB) String() string {
	if c.Alpha() == 0xff {
		return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

// colorful converts c to the go-colorful representation, dropping the alpha channel.
func (c ARGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
}

func fromColorful(c colorful.Color) ARGB {
	r, g, b := c.Clamped().RGB255()
	return ARGB(0xff000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}
