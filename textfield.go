package m3

import (
	"image"
	"image/color"
	"io"
	"math"
	"strings"
	"time"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/io/clipboard"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/io/transfer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/esimov/m3/edit"
)

const (
	blinkPeriod = time.Second
	blinkPause  = 10 * time.Second

	defaultRows = 4
)

// caretVisible reports whether the caret is drawn at now given the time of
// the last interaction, and when the answer changes next. The caret stops
// blinking blinkPause after the last interaction; next is zero from then on.
func caretVisible(now, last time.Time) (bool, time.Time) {
	since := max(now.Sub(last), 0)
	if since >= blinkPause {
		return true, time.Time{}
	}
	half := blinkPeriod / 2
	phase := since / half
	next := last.Add((phase + 1) * half)
	if stop := last.Add(blinkPause); next.After(stop) {
		next = stop
	}
	return phase%2 == 0, next
}

// TextField is a Material filled text field editing a caller-owned string.
// Its edit state is kept in the theme store under ID.
type TextField struct {
	Style TextFieldStyle
	ID    edit.ID
	Text  *string
	// Label is shown while the field is empty and unfocused.
	Label     string
	Multiline bool
	Password  bool
	Disabled  bool
	Error     bool
	// MaxLen limits the text length in runes. Zero means unbounded.
	MaxLen int
	// Submit ends editing of a single-line field. The zero value is Enter.
	Submit edit.Shortcut
	// Rows is the number of visible rows of a multiline field.
	Rows int
	th   *Theme
}

// TextField returns a single-line text field bound to text.
func (t *Theme) TextField(id edit.ID, text *string, label string) TextField {
	return TextField{
		Style: NewTextFieldStyle(t.Scheme()),
		ID:    id,
		Text:  text,
		Label: label,
		Rows:  defaultRows,
		th:    t,
	}
}

// Inject queues input method events for the next layout of the field.
func (tf TextField) Inject(events ...edit.Event) {
	in := tf.th.input(tf.ID)
	in.pending = append(in.pending, events...)
}

// State returns the edit state of the field.
func (tf TextField) State() *edit.State {
	st := edit.LoadOrDefault(tf.th.store(), tf.ID)
	tf.th.store().Store(tf.ID, st)
	return st
}

// fieldMetrics are the pixel sizes of a text field for one frame.
type fieldMetrics struct {
	size       image.Point
	area       image.Rectangle
	cell       float32
	lineHeight float32
}

func (tf TextField) metrics(gtx C) fieldMetrics {
	var m fieldMetrics
	m.cell = float32(measureText(gtx, tf.th.Shaper, monoFont, tf.Style.InputSize, "0000000000").X) / 10
	m.lineHeight = float32(math.Ceil(float64(gtx.Sp(tf.Style.InputSize)) * 1.2))

	rows := 1
	if tf.Multiline {
		rows = max(tf.Rows, 1)
	}
	lines := int(m.lineHeight) * rows
	m.size = image.Pt(gtx.Constraints.Max.X, lines+gtx.Dp(16))
	if tf.Style.Width > 0 {
		m.size.X = gtx.Dp(tf.Style.Width)
	}
	if tf.Style.Height > 0 {
		m.size.Y = gtx.Dp(tf.Style.Height)
	}
	m.size = gtx.Constraints.Constrain(m.size)

	padX := gtx.Dp(tf.Style.Padding[0])
	inset := max((m.size.Y-lines)/2, 0)
	if tf.Multiline && tf.Style.Height > 0 {
		inset = gtx.Dp(tf.Style.Padding[1])
	}
	m.area = image.Rect(padX, inset, max(m.size.X-padX, padX), max(m.size.Y-inset, inset))
	return m
}

func (tf TextField) engine(gtx C, m fieldMetrics) *edit.Engine {
	cb := tf.th.Clipboard
	if cb == nil {
		cb = writeClipboard(gtx)
	}
	return &edit.Engine{
		OS:        tf.th.OS,
		Multiline: tf.Multiline,
		Password:  tf.Password,
		MaxLen:    tf.MaxLen,
		Submit:    tf.Submit,
		Clipboard: cb,
		Layout: edit.LayoutFunc(edit.Params{
			CellWidth:  m.cell,
			LineHeight: m.lineHeight,
			WrapWidth:  float32(m.area.Dx()),
			Multiline:  tf.Multiline,
		}),
		Log: tf.th.Log,
	}
}

// Layout processes the input of the field and paints it.
func (tf TextField) Layout(gtx C) Response {
	th := tf.th
	in := th.input(tf.ID)
	st := tf.State()
	buf := edit.NewStringBuffer(tf.Text)

	m := tf.metrics(gtx)
	eng := tf.engine(gtx, m)
	g := eng.Relayout(buf)
	origin := f32.Pt(float32(m.area.Min.X), float32(m.area.Min.Y)).Sub(st.Offset)

	var res Response
	focused := false
	if tf.Disabled {
		if gtx.Focused(in) {
			gtx.Execute(key.FocusCmd{})
		}
		if in.focused {
			st.Blur()
			in.focused = false
		}
		in.pending = nil
	} else {
		events, pressed, snippet := tf.events(gtx, in, origin)
		focused = gtx.Focused(in) || pressed
		if focused != in.focused {
			if focused {
				st.LastInteraction = gtx.Now
			} else {
				st.Blur()
			}
			in.focused = focused
		}
		if focused {
			out := eng.Process(st, buf, g, events, gtx.Now)
			g = out.Galley
			res.Changed = out.Changed
			if pressed {
				st.LastInteraction = gtx.Now
			}
			if out.SurrenderFocus {
				res.Submitted = true
				gtx.Execute(key.FocusCmd{})
				st.Blur()
				in.focused, focused = false, false
			} else {
				tf.scroll(st, g, m)
				origin = f32.Pt(float32(m.area.Min.X), float32(m.area.Min.Y)).Sub(st.Offset)
				if snippet || out.Changed || out.SelectionChanged {
					reportIME(gtx, in, g, out.Cursor, origin)
				}
			}
		}
	}

	tf.paint(gtx, in, st, g, m, origin, focused)

	if cur, ok := st.Cursor(); ok {
		res.Cursor = cur
	}
	res.Dimensions = D{Size: m.size}
	res.Focused = focused
	res.Hovered = in.click.Hovered()
	res.Pressed = in.click.Pressed()
	return res
}

// events collects the input of this frame. pressed reports a pointer press,
// snippet a request of the input method for the text around the caret.
func (tf TextField) events(gtx C, in *fieldInput, origin f32.Point) (events []edit.Event, pressed, snippet bool) {
	os := tf.th.OS
	events, pressed = in.pointerEvents(gtx, origin, os)
	if pressed {
		gtx.Execute(key.FocusCmd{Tag: in})
		gtx.Execute(key.SoftKeyboardCmd{Show: true})
	}

	filters := keyFilters(in, tf.Multiline, tf.Submit, os)
	for {
		ev, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		switch ev := ev.(type) {
		case key.FocusEvent:
			// Focus changes are picked up through gtx.Focused.
		case key.SnippetEvent:
			snippet = true
		case transfer.DataEvent:
			if ev.Type != mimeText {
				continue
			}
			rc := ev.Open()
			b, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				tf.th.logger().Warn().Err(err).Msg("clipboard read failed")
				continue
			}
			events = append(events, edit.PasteEvent{Text: string(b)})
		default:
			out, read := translate(ev, os)
			events = append(events, out...)
			if read {
				events = append(events, tf.paste(gtx, in)...)
			}
		}
	}

	events = append(events, in.pending...)
	in.pending = nil
	return events, pressed, snippet
}

// paste reads the theme clipboard when it can be read directly. Otherwise
// the window is asked and the text arrives later as a transfer.DataEvent.
func (tf TextField) paste(gtx C, in *fieldInput) []edit.Event {
	r, ok := tf.th.Clipboard.(edit.ClipboardReader)
	if !ok {
		gtx.Execute(clipboard.ReadCmd{Tag: in})
		return nil
	}
	text, err := r.ReadText()
	if err != nil {
		tf.th.logger().Warn().Err(err).Msg("clipboard read failed")
		return nil
	}
	return []edit.Event{edit.PasteEvent{Text: text}}
}

// scroll keeps the caret inside the text area.
func (tf TextField) scroll(st *edit.State, g *edit.Galley, m fieldMetrics) {
	cur, ok := st.Cursor()
	if !ok {
		return
	}
	caret := g.Pos(cur.Primary)
	content := g.Size()
	if tf.Multiline {
		box := float32(m.area.Dy())
		off := edit.ScrollToCaret(st.Offset.Y, caret.Y, box, content.Y)
		st.Offset = f32.Pt(0, edit.ScrollToCaret(off, caret.Y+m.lineHeight, box, content.Y))
		return
	}
	st.Offset = f32.Pt(edit.ScrollToCaret(st.Offset.X, caret.X, float32(m.area.Dx()), content.X), 0)
}

// reportIME tells the input method about the (masked) text and the selection.
func reportIME(gtx C, in *fieldInput, g *edit.Galley, cur edit.Range, origin f32.Point) {
	gtx.Execute(key.SnippetCmd{Tag: in, Snippet: key.Snippet{
		Range: key.Range{Start: 0, End: g.End()},
		Text:  g.Text,
	}})
	lh := g.Params.LineHeight
	p := origin.Add(g.Pos(cur.Primary))
	gtx.Execute(key.SelectionCmd{
		Tag:   in,
		Range: key.Range{Start: cur.Primary, End: cur.Secondary},
		Caret: key.Caret{
			Pos:     f32.Pt(p.X, p.Y+lh*0.8),
			Ascent:  lh * 0.8,
			Descent: lh * 0.2,
		},
	})
}

func (tf TextField) paint(gtx C, in *fieldInput, st *edit.State, g *edit.Galley, m fieldMetrics, origin f32.Point, focused bool) {
	look := resolveTextField(tf.Style, tf.Disabled, tf.Error, focused)
	rect := image.Rectangle{Max: m.size}
	radius := gtx.Dp(tf.Style.ContainerRounding)
	fillRRect(gtx.Ops, rect, radius, look.container)
	if w := gtx.Dp(tf.Style.OutlineWidth); w > 0 {
		inner := image.Rectangle{Min: rect.Min.Add(image.Pt(w/2, w/2)), Max: rect.Max.Sub(image.Pt(w/2, w/2))}
		strokeRRect(gtx.Ops, inner, radius, float32(w), look.outline)
	}

	area := clip.Rect(rect).Push(gtx.Ops)
	semantic.Editor.Add(gtx.Ops)
	semantic.EnabledOp(!tf.Disabled).Add(gtx.Ops)
	semantic.LabelOp(g.Text).Add(gtx.Ops)
	if tf.Label != "" {
		semantic.DescriptionOp(tf.Label).Add(gtx.Ops)
	}
	if !tf.Disabled {
		pointer.CursorText.Add(gtx.Ops)
		in.click.Add(gtx.Ops)
		in.drag.Add(gtx.Ops)
		event.Op(gtx.Ops, in)
		hint := key.HintAny
		if tf.Password {
			hint = key.HintPassword
		}
		key.InputHintOp{Tag: in, Hint: hint}.Add(gtx.Ops)
	}
	area.Pop()

	defer clip.Rect(m.area).Push(gtx.Ops).Pop()

	cur, hasCursor := st.Cursor()
	if focused && hasCursor {
		for _, r := range g.Highlight(cur) {
			r = r.Add(origin)
			sel := image.Rect(int(r.Min.X), int(r.Min.Y), int(math.Ceil(float64(r.Max.X))), int(math.Ceil(float64(r.Max.Y))))
			paint.FillShape(gtx.Ops, tf.Style.Selection, clip.Rect(sel).Op())
		}
	}

	if g.End() == 0 && !focused && tf.Label != "" {
		tf.drawRow(gtx, origin, tf.th.font(), tf.Style.LabelSize, look.label, tf.Label)
	}
	for n := range g.Rows {
		y := origin.Y + float32(n)*m.lineHeight
		if y+m.lineHeight < float32(m.area.Min.Y) || y > float32(m.area.Max.Y) {
			continue
		}
		row := strings.ReplaceAll(g.RowText(n), "\t", strings.Repeat(" ", edit.TabSize))
		if row != "" {
			tf.drawRow(gtx, f32.Pt(origin.X, y), monoFont, tf.Style.InputSize, look.input, row)
		}
	}

	if !focused || !hasCursor {
		return
	}
	visible, next := caretVisible(gtx.Now, st.LastInteraction)
	if !next.IsZero() {
		gtx.Execute(op.InvalidateCmd{At: next})
	}
	if visible {
		p := origin.Add(g.Pos(cur.Primary))
		w := gtx.Dp(tf.Style.CaretWidth)
		caret := image.Rect(int(p.X), int(p.Y), int(p.X)+w, int(p.Y+m.lineHeight))
		paint.FillShape(gtx.Ops, tf.Style.Caret, clip.Rect(caret).Op())
	}
}

// drawRow paints one row of text with its top left corner at p.
func (tf TextField) drawRow(gtx C, p f32.Point, f font.Font, size unit.Sp, c color.NRGBA, txt string) {
	gtx.Constraints.Max = image.Pt(math.MaxInt32/2, math.MaxInt32/2)
	defer op.Offset(image.Pt(int(math.Round(float64(p.X))), int(math.Round(float64(p.Y))))).Push(gtx.Ops).Pop()
	drawText(gtx, tf.th.Shaper, f, size, c, txt)
}
