package m3

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	m3color "github.com/esimov/m3/color"
	"github.com/esimov/m3/edit"
)

const (
	maxScreenX = 1366
	maxScreenY = 768

	hueStep = 30
)

// Text field ids of the gallery.
const (
	fieldName edit.ID = iota + 1
	fieldPassword
	fieldCode
	fieldError
	fieldDisabled
	fieldNotes
)

// Gallery is a window showing every widget of the package under one theme.
type Gallery struct {
	cfg struct {
		window struct {
			w     float32
			h     float32
			title string
		}
		// maxLen limits the length of the bounded text field.
		maxLen   int
		fontSize unit.Sp
	}
	th *Theme

	list    widget.List
	buttons struct {
		primary, disabled, dark, hue widget.Clickable
	}
	boxes struct {
		plain, err, disabledOn, disabledOff widget.Clickable
	}
	checked struct {
		plain, err, disabledOn, disabledOff bool
	}
	text struct {
		name, password, code, err, disabled, notes string
	}
	clicks int
	status string
}

// GalleryOptions configure the gallery window.
type GalleryOptions struct {
	Width, Height int
	Title         string
	// MaxLen limits the length of the bounded text field. Zero means 10.
	MaxLen   int
	FontSize unit.Sp
}

// NewGallery prepares a gallery window drawn with th.
func NewGallery(th *Theme, opts GalleryOptions) *Gallery {
	g := &Gallery{th: th}
	g.list.Axis = layout.Vertical

	g.cfg.window.w, g.cfg.window.h = getWindowSize(float32(opts.Width), float32(opts.Height))
	g.cfg.window.title = opts.Title
	if g.cfg.window.title == "" {
		g.cfg.window.title = "Material widgets"
	}
	g.cfg.maxLen = opts.MaxLen
	if g.cfg.maxLen <= 0 {
		g.cfg.maxLen = 10
	}
	g.cfg.fontSize = opts.FontSize

	g.checked.disabledOn = true
	g.text.disabled = "read only"
	g.text.err = "not an email"
	g.status = "Press Esc to close the window."
	return g
}

// getWindowSize shrinks the requested size to the screen while keeping its
// aspect ratio.
func getWindowSize(w, h float32) (float32, float32) {
	if w <= 0 || h <= 0 {
		return 480, 720
	}
	if w > maxScreenX || h > maxScreenY {
		r := getRatio(w, h)
		w, h = w*r, h*r
	}
	return w, h
}

// getRatio returns the scale which fits a w x h box into the screen.
func getRatio(w, h float32) float32 {
	rw := float32(maxScreenX) / w
	rh := float32(maxScreenY) / h
	return float32(math.Min(float64(rw), float64(rh)))
}

// Run opens the window and blocks until it is closed. It must be called
// from a goroutine other than the one running app.Main.
func (g *Gallery) Run() error {
	w := new(app.Window)
	w.Option(
		app.Title(g.cfg.window.title),
		app.Size(unit.Dp(g.cfg.window.w), unit.Dp(g.cfg.window.h)),
	)

	log := g.th.logger()
	log.Info().
		Str("seed", g.th.Seed().String()).
		Str("mode", g.th.Mode().String()).
		Msg("gallery opened")

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			for {
				ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					w.Perform(system.ActionClose)
				}
			}
			g.draw(gtx)
			e.Frame(gtx.Ops)
		case app.DestroyEvent:
			log.Info().Int("clicks", g.clicks).Msg("gallery closed")
			return e.Err
		}
	}
}

// draw lays out one frame of the gallery.
func (g *Gallery) draw(gtx C) D {
	th := g.th
	paint.Fill(gtx.Ops, th.Visuals().WindowFill)

	section := func(title string) layout.Widget {
		return func(gtx C) D {
			l := material.Subtitle1(th.Theme, title)
			l.Color = th.Scheme().NRGBA(m3color.Primary)
			dims := layout.Inset{Top: 16, Bottom: 8}.Layout(gtx, l.Layout)
			y := float32(dims.Size.Y) - 2
			drawLine(gtx.Ops, f32.Pt(0, y), f32.Pt(float32(gtx.Constraints.Max.X), y), 1,
				th.Scheme().NRGBA(m3color.OutlineVariant))
			return dims
		}
	}
	row := func(children ...layout.Widget) layout.Widget {
		return func(gtx C) D {
			fl := make([]layout.FlexChild, 0, len(children))
			for _, c := range children {
				fl = append(fl, layout.Rigid(func(gtx C) D {
					return layout.Inset{Right: 12}.Layout(gtx, c)
				}))
			}
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx, fl...)
		}
	}
	spaced := func(w func(gtx C) Response) layout.Widget {
		return func(gtx C) D {
			return layout.Inset{Bottom: 8}.Layout(gtx, func(gtx C) D { return w(gtx).Dimensions })
		}
	}

	widgets := []layout.Widget{
		section("Buttons"),
		row(
			func(gtx C) D {
				r := th.Button(&g.buttons.primary, "Click me").Layout(gtx)
				if r.Clicked {
					g.clicks++
					g.status = fmt.Sprintf("Clicked %d times.", g.clicks)
				}
				return r.Dimensions
			},
			func(gtx C) D {
				b := th.Button(&g.buttons.disabled, "Disabled")
				b.Disabled = true
				return b.Layout(gtx).Dimensions
			},
			func(gtx C) D {
				label := "Dark mode"
				if th.DarkMode() {
					label = "Light mode"
				}
				r := th.Button(&g.buttons.dark, label).Layout(gtx)
				if r.Clicked {
					th.SetDarkMode(!th.DarkMode())
				}
				return r.Dimensions
			},
			func(gtx C) D {
				r := th.Button(&g.buttons.hue, "Rotate hue").Layout(gtx)
				if r.Clicked {
					th.SetSeed(m3color.RotateHue(th.Seed(), hueStep))
					g.status = "Seed " + th.Seed().String()
				}
				return r.Dimensions
			},
		),
		section("Checkboxes"),
		row(
			func(gtx C) D { return th.Checkbox(&g.boxes.plain, &g.checked.plain, "Checkbox").Layout(gtx).Dimensions },
			func(gtx C) D {
				cb := th.Checkbox(&g.boxes.err, &g.checked.err, "Error")
				cb.Error = true
				return cb.Layout(gtx).Dimensions
			},
			func(gtx C) D {
				cb := th.Checkbox(&g.boxes.disabledOn, &g.checked.disabledOn, "Disabled")
				cb.Disabled = true
				return cb.Layout(gtx).Dimensions
			},
			func(gtx C) D {
				cb := th.Checkbox(&g.boxes.disabledOff, &g.checked.disabledOff, "Disabled")
				cb.Disabled = true
				return cb.Layout(gtx).Dimensions
			},
		),
		section("Text fields"),
		spaced(func(gtx C) Response {
			r := g.field(fieldName, &g.text.name, "Name").Layout(gtx)
			if r.Submitted {
				g.status = "Hello, " + g.text.name + "!"
			}
			return r
		}),
		spaced(func(gtx C) Response {
			tf := g.field(fieldPassword, &g.text.password, "Password")
			tf.Password = true
			return tf.Layout(gtx)
		}),
		spaced(func(gtx C) Response {
			tf := g.field(fieldCode, &g.text.code, fmt.Sprintf("At most %d characters", g.cfg.maxLen))
			tf.MaxLen = g.cfg.maxLen
			return tf.Layout(gtx)
		}),
		spaced(func(gtx C) Response {
			tf := g.field(fieldError, &g.text.err, "Email")
			tf.Error = true
			return tf.Layout(gtx)
		}),
		spaced(func(gtx C) Response {
			tf := g.field(fieldDisabled, &g.text.disabled, "Disabled")
			tf.Disabled = true
			return tf.Layout(gtx)
		}),
		spaced(func(gtx C) Response {
			tf := g.field(fieldNotes, &g.text.notes, "Notes")
			tf.Multiline = true
			return tf.Layout(gtx)
		}),
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return material.List(th.Theme, &g.list).Layout(gtx, len(widgets), func(gtx C, i int) D {
				return layout.UniformInset(16).Layout(gtx, widgets[i])
			})
		}),
		layout.Rigid(func(gtx C) D {
			v := th.Visuals()
			return displayMessage(gtx, th, v.PanelFill, v.Text, g.status)
		}),
	)
}

func (g *Gallery) field(id edit.ID, text *string, label string) TextField {
	tf := g.th.TextField(id, text, label)
	if g.cfg.fontSize > 0 {
		tf.Style.InputSize = g.cfg.fontSize
		tf.Style.LabelSize = g.cfg.fontSize
	}
	return tf
}

// displayMessage shows msg on a full width status bar.
func displayMessage(gtx C, th *Theme, bg, fg color.NRGBA, msg string) D {
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(8).Layout(gtx, func(gtx C) D {
		l := material.Body2(th.Theme, msg)
		l.Color = fg
		return l.Layout(gtx)
	})
	call := macro.Stop()

	dims.Size.X = gtx.Constraints.Max.X
	fillRRect(gtx.Ops, image.Rectangle{Max: dims.Size}, 0, bg)
	call.Add(gtx.Ops)
	return dims
}
