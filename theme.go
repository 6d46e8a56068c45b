package m3

import (
	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/widget/material"
	"github.com/rs/zerolog"

	"github.com/esimov/m3/color"
	"github.com/esimov/m3/edit"
)

// DefaultSeed is the Material baseline purple.
const DefaultSeed color.ARGB = 0xff6750a4

// Theme carries the derived color schemes down the widget tree. It embeds the
// Gio material theme so stock material widgets can be mixed in.
type Theme struct {
	*material.Theme

	schemes color.Schemes
	mode    color.Mode

	// OS selects the shortcut conventions of text fields.
	OS edit.OS
	// Clipboard overrides where text fields write copied text. Nil uses the
	// window clipboard.
	Clipboard edit.Clipboard
	// Store keeps the edit state of text fields between frames. Nil uses a
	// store owned by the theme.
	Store edit.Store
	Log   *zerolog.Logger

	memory edit.MemoryStore
	inputs map[edit.ID]*fieldInput
}

// NewTheme derives a theme from seed, shaping text with the Go fonts.
func NewTheme(seed color.ARGB, mode color.Mode) *Theme {
	th := &Theme{
		Theme:   material.NewTheme(),
		schemes: color.Derive(seed),
		mode:    mode,
		OS:      edit.HostOS(),
		memory:  edit.MemoryStore{},
		inputs:  map[edit.ID]*fieldInput{},
	}
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Apply()
	return th
}

// Scheme returns the scheme of the active mode.
func (t *Theme) Scheme() *color.Scheme { return t.schemes.Select(t.mode) }

// Schemes returns both schemes.
func (t *Theme) Schemes() color.Schemes { return t.schemes }

// Seed returns the color the schemes were derived from.
func (t *Theme) Seed() color.ARGB { return t.schemes.Seed }

// Mode returns the active color mode.
func (t *Theme) Mode() color.Mode { return t.mode }

// DarkMode reports whether the dark scheme is active.
func (t *Theme) DarkMode() bool { return t.mode == color.Dark }

// SetDarkMode switches between the light and dark scheme. The schemes
// themselves are not derived again.
func (t *Theme) SetDarkMode(dark bool) {
	t.mode = color.Light
	if dark {
		t.mode = color.Dark
	}
	t.Apply()
}

// SetSeed derives both schemes again from seed.
func (t *Theme) SetSeed(seed color.ARGB) {
	t.schemes = color.Derive(seed)
	t.Apply()
}

// Visuals returns the default colors of the active scheme.
func (t *Theme) Visuals() Visuals {
	return NewVisuals(t.Scheme())
}

// Apply pushes the visuals onto the embedded material palette.
func (t *Theme) Apply() {
	v := t.Visuals()
	t.Palette = material.Palette{
		Bg:         v.WindowFill,
		Fg:         v.Text,
		ContrastBg: v.Hyperlink,
		ContrastFg: t.Scheme().NRGBA(color.OnPrimary),
	}
}

func (t *Theme) store() edit.Store {
	if t.Store != nil {
		return t.Store
	}
	return t.memory
}

// input returns the gesture state of the text field id.
func (t *Theme) input(id edit.ID) *fieldInput {
	in, ok := t.inputs[id]
	if !ok {
		in = &fieldInput{id: id}
		t.inputs[id] = in
	}
	return in
}

func (t *Theme) logger() *zerolog.Logger {
	if t.Log != nil {
		return t.Log
	}
	nop := zerolog.Nop()
	return &nop
}
