package swatch

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/esimov/m3/blend"
	"github.com/esimov/m3/color"
)

func scheme() *color.Scheme {
	s := color.Derive(0xff6750a4)
	return s.Select(color.Light)
}

func TestSwatch_Render(t *testing.T) {
	assert := assert.New(t)
	s := scheme()

	img := Render(s, Options{Cell: 10, Columns: 4})
	n := len(s.Roles())
	rows := (n + 3) / 4
	assert.Equal(image.Rect(0, 0, 40, rows*10), img.Bounds())

	// Top left pixel of the second swatch holds the second role.
	assert.Equal(s.NRGBA(s.Roles()[1]), img.NRGBAAt(10, 0))
	// The strip at the bottom previews both state layers.
	c := s.NRGBA(s.Roles()[0])
	over := s.NRGBA(color.OnSurface)
	assert.Equal(blend.Layer(c, over, hoverOpacity), img.NRGBAAt(1, 9))
	assert.Equal(blend.Layer(c, over, pressOpacity), img.NRGBAAt(8, 9))
	// Cells past the last role keep the surface color.
	if n%4 != 0 {
		assert.Equal(s.NRGBA(color.Surface), img.NRGBAAt(39, rows*10-1))
	}
}

func TestSwatch_Scale(t *testing.T) {
	img := Render(scheme(), Options{Cell: 10, Columns: 4, Scale: 2})
	assert.Equal(t, 80, img.Bounds().Dx())
}

func TestSwatch_Labels(t *testing.T) {
	s := scheme()
	plain := Render(s, Options{Cell: 96, Columns: 6})
	labeled := Render(s, Options{Cell: 96, Columns: 6, Labels: true})
	assert.NotEqual(t, plain.Pix, labeled.Pix)
}

func TestSwatch_Encode(t *testing.T) {
	assert := assert.New(t)
	img := Render(scheme(), Options{Cell: 4, Columns: 8})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, ".PNG"))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(img.Bounds(), decoded.Bounds())

	assert.NoError(Encode(&buf, img, ".bmp"))
	assert.ErrorIs(Encode(&buf, img, ".tiff"), ErrFormat)
}

func TestSwatch_Save(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	img := Render(scheme(), Options{Cell: 4, Columns: 8})

	require.NoError(t, Save(img, filepath.Join(dir, "sheet")))
	_, err := os.Stat(filepath.Join(dir, "sheet.png"))
	assert.NoError(err)

	assert.ErrorIs(Save(img, filepath.Join(dir, "sheet.txt")), ErrFormat)
}
