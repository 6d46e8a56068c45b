package color

import (
	"fmt"
	"image/color"
	"strings"
)

// Mode selects between the light and dark scheme of a theme.
type Mode uint8

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode accepts "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("unknown color mode %q", s)
}

// Scheme is a total mapping from every Role to a color.
type Scheme struct {
	Mode   Mode
	colors [roleCount]ARGB
}

// Get returns the color of role r. Unknown roles map to transparent.
func (s *Scheme) Get(r Role) ARGB {
	if r >= roleCount {
		return 0
	}
	return s.colors[r]
}

// NRGBA returns the color of role r in the form Gio paints with.
func (s *Scheme) NRGBA(r Role) color.NRGBA {
	return s.Get(r).NRGBA()
}

// Roles returns every role of the scheme in declaration order.
func (s *Scheme) Roles() []Role { return Roles() }

// Schemes holds the light and dark variant derived from the same seed.
type Schemes struct {
	Seed  ARGB
	Light Scheme
	Dark  Scheme
}

// Select returns the scheme for mode m.
func (s *Schemes) Select(m Mode) *Scheme {
	if m == Dark {
		return &s.Dark
	}
	return &s.Light
}

type paletteKind uint8

const (
	primaryPalette paletteKind = iota
	secondaryPalette
	tertiaryPalette
	neutralPalette
	neutralVariantPalette
	errorPalette
)

func (p CorePalette) palette(k paletteKind) TonalPalette {
	switch k {
	case secondaryPalette:
		return p.Secondary
	case tertiaryPalette:
		return p.Tertiary
	case neutralPalette:
		return p.Neutral
	case neutralVariantPalette:
		return p.NeutralVariant
	case errorPalette:
		return p.Error
	}
	return p.Primary
}

type roleTone struct {
	palette     paletteKind
	light, dark float64
}

var roleTones = [roleCount]roleTone{
	Primary:            {primaryPalette, 40, 80},
	OnPrimary:          {primaryPalette, 100, 20},
	PrimaryContainer:   {primaryPalette, 90, 30},
	OnPrimaryContainer: {primaryPalette, 10, 90},
	InversePrimary:     {primaryPalette, 80, 40},
	SurfaceTint:        {primaryPalette, 40, 80},

	Secondary:            {secondaryPalette, 40, 80},
	OnSecondary:          {secondaryPalette, 100, 20},
	SecondaryContainer:   {secondaryPalette, 90, 30},
	OnSecondaryContainer: {secondaryPalette, 10, 90},

	Tertiary:            {tertiaryPalette, 40, 80},
	OnTertiary:          {tertiaryPalette, 100, 20},
	TertiaryContainer:   {tertiaryPalette, 90, 30},
	OnTertiaryContainer: {tertiaryPalette, 10, 90},

	Error:            {errorPalette, 40, 80},
	OnError:          {errorPalette, 100, 20},
	ErrorContainer:   {errorPalette, 90, 30},
	OnErrorContainer: {errorPalette, 10, 90},

	Background:              {neutralPalette, 98, 6},
	OnBackground:            {neutralPalette, 10, 90},
	Surface:                 {neutralPalette, 98, 6},
	OnSurface:               {neutralPalette, 10, 90},
	SurfaceDim:              {neutralPalette, 87, 6},
	SurfaceBright:           {neutralPalette, 98, 24},
	SurfaceContainerLowest:  {neutralPalette, 100, 4},
	SurfaceContainerLow:     {neutralPalette, 96, 10},
	SurfaceContainer:        {neutralPalette, 94, 12},
	SurfaceContainerHigh:    {neutralPalette, 92, 17},
	SurfaceContainerHighest: {neutralPalette, 90, 22},
	InverseSurface:          {neutralPalette, 20, 90},
	InverseOnSurface:        {neutralPalette, 95, 20},
	Shadow:                  {neutralPalette, 0, 0},
	Scrim:                   {neutralPalette, 0, 0},

	SurfaceVariant:   {neutralVariantPalette, 90, 30},
	OnSurfaceVariant: {neutralVariantPalette, 30, 80},
	Outline:          {neutralVariantPalette, 50, 60},
	OutlineVariant:   {neutralVariantPalette, 80, 30},
}

// Derive builds the light and dark schemes for seed. It is pure and total:
// every role of both schemes gets an opaque color.
func Derive(seed ARGB) Schemes {
	core := NewCorePalette(seed)
	s := Schemes{
		Seed:  seed,
		Light: Scheme{Mode: Light},
		Dark:  Scheme{Mode: Dark},
	}
	for r, t := range roleTones {
		p := core.palette(t.palette)
		s.Light.colors[r] = p.Tone(t.light)
		s.Dark.colors[r] = p.Tone(t.dark)
	}
	return s
}
