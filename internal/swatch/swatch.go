// Package swatch renders the roles of a color scheme into an image sheet.
package swatch

import (
	"errors"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/esimov/m3/blend"
	"github.com/esimov/m3/color"
)

// ErrFormat is returned for output files with an unknown extension.
var ErrFormat = errors.New("unsupported image format")

// Layer opacities previewed under every swatch.
const (
	hoverOpacity = 0.08
	pressOpacity = 0.1
)

// Options configure the sheet geometry.
type Options struct {
	// Cell is the side of one swatch in pixels.
	Cell int
	// Columns is the number of swatches per row.
	Columns int
	// Scale resizes the finished sheet. Values <= 0 mean 1.
	Scale float64
	// Labels writes the role name on each swatch.
	Labels bool
}

// DefaultOptions are used by the command line tool.
var DefaultOptions = Options{Cell: 96, Columns: 6, Scale: 1, Labels: true}

// Render draws one swatch per role of s. The bottom strip of a swatch
// previews the hover and press state layers on top of the role color.
func Render(s *color.Scheme, opts Options) *image.NRGBA {
	if opts.Cell <= 0 {
		opts.Cell = DefaultOptions.Cell
	}
	if opts.Columns <= 0 {
		opts.Columns = DefaultOptions.Columns
	}
	roles := s.Roles()
	rows := (len(roles) + opts.Columns - 1) / opts.Columns
	img := imaging.New(opts.Cell*opts.Columns, opts.Cell*rows, s.NRGBA(color.Surface))

	overlay := s.NRGBA(color.OnSurface)
	for i, r := range roles {
		c := s.NRGBA(r)
		cell := image.Rect(0, 0, opts.Cell, opts.Cell).
			Add(image.Pt(i%opts.Columns*opts.Cell, i/opts.Columns*opts.Cell))
		blend.Fill(img, cell, c, blend.Normal)

		strip := cell
		strip.Min.Y = cell.Max.Y - opts.Cell/5
		half := strip
		half.Max.X = strip.Min.X + strip.Dx()/2
		blend.Fill(img, half, blend.Layer(c, overlay, hoverOpacity), blend.Normal)
		half = strip
		half.Min.X = strip.Min.X + strip.Dx()/2
		blend.Fill(img, half, blend.Layer(c, overlay, pressOpacity), blend.Normal)

		if opts.Labels {
			label(img, cell.Min.Add(image.Pt(4, 14)), r.String(), textColor(s.Get(r)))
			label(img, cell.Min.Add(image.Pt(4, 28)), s.Get(r).String(), textColor(s.Get(r)))
		}
	}

	if opts.Scale > 0 && opts.Scale != 1 {
		w := int(float64(img.Bounds().Dx()) * opts.Scale)
		img = imaging.Resize(img, w, 0, imaging.NearestNeighbor)
	}
	return img
}

// textColor picks black or white, whichever reads better on c.
func textColor(c color.ARGB) stdcolor.NRGBA {
	if color.Lightness(c) > 50 {
		return stdcolor.NRGBA{A: 0xff}
	}
	return stdcolor.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

func label(dst *image.NRGBA, dot image.Point, s string, c stdcolor.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(s)
}

// Encode writes img in the format named by ext. An empty extension means png.
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case "", ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w %q", ErrFormat, ext)
}

// Save writes img to path, picking the format from its extension.
func Save(img image.Image, path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".png"
		path += ext
	}
	if _, err := imaging.FormatFromExtension(ext); err != nil {
		return fmt.Errorf("%w %q", ErrFormat, ext)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating swatch file: %w", err)
	}
	if err := Encode(f, img, ext); err != nil {
		f.Close()
		return fmt.Errorf("encoding swatch: %w", err)
	}
	return f.Close()
}
