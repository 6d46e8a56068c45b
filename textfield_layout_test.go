package m3

import (
	"image"
	"io"
	"strings"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/semantic"
	"gioui.org/io/transfer"
	"gioui.org/layout"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m3color "github.com/esimov/m3/color"
	"github.com/esimov/m3/edit"
)

// window drives widgets through a Gio input router, one frame at a time.
type window struct {
	r   *input.Router
	gtx layout.Context
}

func newWindow() *window {
	r := new(input.Router)
	return &window{
		r: r,
		gtx: layout.Context{
			Ops:         new(op.Ops),
			Constraints: layout.Constraints{Max: image.Pt(300, 200)},
			Source:      r.Source(),
			Now:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (w *window) frame(layout func(gtx C) Response) Response {
	w.gtx.Ops.Reset()
	res := layout(w.gtx)
	w.r.Frame(w.gtx.Ops)
	return res
}

func (w *window) click(at f32.Point) {
	w.r.Queue(
		pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: pointer.ButtonPrimary, Position: at},
		pointer.Event{Kind: pointer.Release, Source: pointer.Mouse, Position: at},
	)
}

func (w *window) press(name key.Name, mods key.Modifiers) {
	w.r.Queue(key.Event{Name: name, Modifiers: mods, State: key.Press})
}

func (w *window) labels() []string {
	var out []string
	for _, n := range w.r.AppendSemantics(nil) {
		if n.Desc.Label != "" {
			out = append(out, n.Desc.Label)
		}
	}
	return out
}

func (w *window) editor() (input.SemanticDesc, bool) {
	for _, n := range w.r.AppendSemantics(nil) {
		if n.Desc.Class == semantic.Editor {
			return n.Desc, true
		}
	}
	return input.SemanticDesc{}, false
}

func newFieldTheme() *Theme {
	th := NewTheme(DefaultSeed, m3color.Light)
	th.OS = edit.HostOS()
	return th
}

// focusField lays the field out once, clicks it and returns the response of
// the frame that handled the click.
func focusField(w *window, tf TextField) Response {
	w.frame(tf.Layout)
	w.click(f32.Pt(20, 10))
	return w.frame(tf.Layout)
}

func TestTextFieldLayout_FocusOnPress(t *testing.T) {
	assert := assert.New(t)
	th := newFieldTheme()
	w := newWindow()

	text := ""
	tf := th.TextField(1, &text, "Name")
	res := w.frame(tf.Layout)
	assert.False(res.Focused)

	w.click(f32.Pt(20, 10))
	res = w.frame(tf.Layout)
	assert.True(res.Focused)
	assert.Equal(edit.Caret(0), res.Cursor)
	assert.True(w.gtx.Focused(th.input(1)))

	w.r.Queue(key.EditEvent{Range: key.Range{Start: 0, End: 0}, Text: "hello"})
	res = w.frame(tf.Layout)
	assert.Equal("hello", text)
	assert.True(res.Changed)
	assert.Equal(edit.Caret(5), res.Cursor)
}

func TestTextFieldLayout_DisabledIgnoresInput(t *testing.T) {
	assert := assert.New(t)
	th := newFieldTheme()
	w := newWindow()

	text := "fixed"
	tf := th.TextField(1, &text, "Name")
	tf.Disabled = true
	res := focusField(w, tf)
	assert.False(res.Focused)

	w.r.Queue(key.EditEvent{Text: "x"})
	w.frame(tf.Layout)
	assert.Equal("fixed", text)
}

func TestTextFieldLayout_SubmitSurrendersFocus(t *testing.T) {
	assert := assert.New(t)
	th := newFieldTheme()
	w := newWindow()

	text := "hello"
	tf := th.TextField(1, &text, "Name")
	require.True(t, focusField(w, tf).Focused)

	w.press(key.NameReturn, 0)
	res := w.frame(tf.Layout)
	assert.True(res.Submitted)
	assert.False(res.Focused)
	assert.Equal("hello", text)

	res = w.frame(tf.Layout)
	assert.False(res.Focused)
	assert.False(res.Submitted)
}

func TestTextFieldLayout_CustomSubmitKey(t *testing.T) {
	for _, submit := range []struct {
		shortcut edit.Shortcut
		name     key.Name
		mods     key.Modifiers
	}{
		{edit.Shortcut{Key: edit.KeyEscape}, key.NameEscape, 0},
		{edit.Shortcut{Key: edit.KeyTab}, key.NameTab, 0},
		{edit.Shortcut{Key: edit.KeyEnter, Modifiers: edit.ModCommand}, key.NameReturn, key.ModShortcut},
	} {
		t.Run(string(submit.name), func(t *testing.T) {
			assert := assert.New(t)
			th := newFieldTheme()
			w := newWindow()

			text := "hello"
			tf := th.TextField(1, &text, "Name")
			tf.Submit = submit.shortcut
			require.True(t, focusField(w, tf).Focused)

			w.press(submit.name, submit.mods)
			res := w.frame(tf.Layout)
			assert.True(res.Submitted)
			assert.False(res.Focused)
		})
	}
}

func TestTextFieldLayout_CopyWritesClipboard(t *testing.T) {
	assert := assert.New(t)
	th := newFieldTheme()
	w := newWindow()

	text := "secret"
	tf := th.TextField(1, &text, "Name")
	focusField(w, tf)

	w.press("A", key.ModShortcut)
	w.press("C", key.ModShortcut)
	res := w.frame(tf.Layout)
	assert.Equal(edit.Span(0, 6), res.Cursor)

	mime, content, ok := w.r.WriteClipboard()
	assert.True(ok)
	assert.Equal(mimeText, mime)
	assert.Equal("secret", string(content))
}

func TestTextFieldLayout_PasswordNeverReachesClipboard(t *testing.T) {
	assert := assert.New(t)
	th := newFieldTheme()
	w := newWindow()

	text := "secret"
	tf := th.TextField(1, &text, "Password")
	tf.Password = true
	focusField(w, tf)

	w.press("A", key.ModShortcut)
	w.press("C", key.ModShortcut)
	w.frame(tf.Layout)
	_, _, ok := w.r.WriteClipboard()
	assert.False(ok)

	w.press("X", key.ModShortcut)
	w.frame(tf.Layout)
	_, _, ok = w.r.WriteClipboard()
	assert.False(ok)
	assert.Empty(text)
}

func TestTextFieldLayout_PasteFromWindow(t *testing.T) {
	assert := assert.New(t)
	th := newFieldTheme()
	w := newWindow()

	text := ""
	tf := th.TextField(1, &text, "Name")
	focusField(w, tf)

	w.press("V", key.ModShortcut)
	w.frame(tf.Layout)
	assert.True(w.r.ClipboardRequested())

	w.r.Queue(transfer.DataEvent{
		Type: mimeText,
		Open: func() io.ReadCloser { return io.NopCloser(strings.NewReader("pasted")) },
	})
	res := w.frame(tf.Layout)
	assert.Equal("pasted", text)
	assert.Equal(edit.Caret(6), res.Cursor)
}

func TestTextFieldLayout_PasteFromThemeClipboard(t *testing.T) {
	assert := assert.New(t)
	th := newFieldTheme()
	cb := &edit.MemoryClipboard{Text: "memo"}
	th.Clipboard = cb
	w := newWindow()

	text := "ab"
	tf := th.TextField(1, &text, "Name")
	focusField(w, tf)

	w.press("A", key.ModShortcut)
	w.press("V", key.ModShortcut)
	w.frame(tf.Layout)
	assert.Equal("memo", text)
	assert.False(w.r.ClipboardRequested())

	w.press("A", key.ModShortcut)
	w.press("X", key.ModShortcut)
	w.frame(tf.Layout)
	assert.Equal("memo", cb.Text)
	assert.Empty(text)
}

func TestTextFieldLayout_Placeholder(t *testing.T) {
	assert := assert.New(t)
	th := newFieldTheme()
	w := newWindow()

	text := ""
	tf := th.TextField(1, &text, "Your name")
	w.frame(tf.Layout)
	assert.Contains(w.labels(), "Your name")

	focusField(w, tf)
	w.frame(tf.Layout)
	assert.NotContains(w.labels(), "Your name")
}

func TestTextFieldLayout_PasswordSemantics(t *testing.T) {
	assert := assert.New(t)
	th := newFieldTheme()
	w := newWindow()

	text := "hunter2"
	tf := th.TextField(1, &text, "Password")
	tf.Password = true
	w.frame(tf.Layout)

	desc, ok := w.editor()
	require.True(t, ok)
	assert.Equal("*******", desc.Label)
	assert.Equal("Password", desc.Description)
}
