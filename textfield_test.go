package m3

import (
	"testing"
	"time"

	"gioui.org/io/key"
	"github.com/stretchr/testify/assert"

	m3color "github.com/esimov/m3/color"
	"github.com/esimov/m3/edit"
)

func TestTextField_CaretBlink(t *testing.T) {
	assert := assert.New(t)
	last := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	visible, next := caretVisible(last, last)
	assert.True(visible)
	assert.Equal(last.Add(500*time.Millisecond), next)

	visible, next = caretVisible(last.Add(700*time.Millisecond), last)
	assert.False(visible)
	assert.Equal(last.Add(time.Second), next)

	visible, _ = caretVisible(last.Add(1200*time.Millisecond), last)
	assert.True(visible)

	visible, next = caretVisible(last.Add(9800*time.Millisecond), last)
	assert.False(visible)
	assert.Equal(last.Add(10*time.Second), next)

	visible, next = caretVisible(last.Add(time.Minute), last)
	assert.True(visible)
	assert.True(next.IsZero())

	// A clock running behind the interaction shows a solid caret.
	visible, _ = caretVisible(last.Add(-time.Second), last)
	assert.True(visible)
}

func TestTextField_KeyMapping(t *testing.T) {
	assert := assert.New(t)

	k, ok := toKey(key.NameLeftArrow)
	assert.True(ok)
	assert.Equal(edit.KeyLeft, k)
	k, ok = toKey(key.NameDeleteBackward)
	assert.True(ok)
	assert.Equal(edit.KeyBackspace, k)
	k, ok = toKey(key.NameReturn)
	assert.True(ok)
	assert.Equal(edit.KeyEnter, k)
	k, ok = toKey("Z")
	assert.True(ok)
	assert.Equal(edit.KeyZ, k)
	_, ok = toKey(key.NameF1)
	assert.False(ok)
	_, ok = toKey("z")
	assert.False(ok)

	assert.Equal(edit.ModCtrl|edit.ModCommand, toModifiers(key.ModCtrl, edit.Linux))
	assert.Equal(edit.ModCtrl, toModifiers(key.ModCtrl, edit.MacOS))
	assert.Equal(edit.ModMacCmd|edit.ModCommand, toModifiers(key.ModCommand, edit.MacOS))
	assert.Equal(edit.ModShift|edit.ModAlt, toModifiers(key.ModShift|key.ModAlt, edit.Windows))
}

func TestTextField_Translate(t *testing.T) {
	assert := assert.New(t)

	out, read := translate(key.Event{Name: "C", Modifiers: key.ModCtrl, State: key.Press}, edit.Linux)
	assert.False(read)
	assert.Equal([]edit.Event{edit.CopyEvent{}}, out)

	out, _ = translate(key.Event{Name: "X", Modifiers: key.ModCommand, State: key.Press}, edit.MacOS)
	assert.Equal([]edit.Event{edit.CutEvent{}}, out)

	out, read = translate(key.Event{Name: "V", Modifiers: key.ModCtrl, State: key.Press}, edit.Linux)
	assert.True(read)
	assert.Empty(out)

	out, _ = translate(key.Event{Name: "Z", Modifiers: key.ModCtrl | key.ModShift, State: key.Press}, edit.Linux)
	assert.Equal([]edit.Event{edit.KeyEvent{Key: edit.KeyZ, Modifiers: edit.ModCtrl | edit.ModShift | edit.ModCommand}}, out)

	out, _ = translate(key.Event{Name: key.NameLeftArrow, State: key.Release}, edit.Linux)
	assert.Empty(out)

	out, _ = translate(key.EditEvent{Range: key.Range{Start: 1, End: 3}, Text: "x"}, edit.Linux)
	assert.Equal([]edit.Event{edit.SelectEvent{Range: edit.Span(1, 3)}, edit.TextEvent{Text: "x"}}, out)

	out, _ = translate(key.EditEvent{Range: key.Range{Start: 1, End: 3}}, edit.Linux)
	assert.Equal([]edit.Event{edit.SelectEvent{Range: edit.Span(1, 3)}, edit.KeyEvent{Key: edit.KeyBackspace}}, out)

	out, _ = translate(key.EditEvent{Range: key.Range{Start: 2, End: 2}}, edit.Linux)
	assert.Empty(out)

	out, _ = translate(key.SelectionEvent{Start: 4, End: 1}, edit.Linux)
	assert.Equal([]edit.Event{edit.SelectEvent{Range: edit.Range{Primary: 4, Secondary: 1}}}, out)
}

func TestTextField_Filters(t *testing.T) {
	assert := assert.New(t)
	in := new(fieldInput)

	has := func(name key.Name, multiline bool, submit edit.Shortcut) bool {
		for _, f := range keyFilters(in, multiline, submit, edit.Linux) {
			if kf, ok := f.(key.Filter); ok && kf.Name == name {
				return true
			}
		}
		return false
	}
	assert.False(has(key.NameTab, false, edit.Shortcut{}))
	assert.True(has(key.NameTab, true, edit.Shortcut{}))
	assert.False(has(key.NameEscape, false, edit.Shortcut{}))
	assert.True(has(key.NameEscape, false, edit.Shortcut{Key: edit.KeyEscape}))

	count := func(os edit.OS) int { return len(keyFilters(in, false, edit.Shortcut{}, os)) }
	assert.Equal(count(edit.Linux)+6, count(edit.MacOS))
}

func TestTheme_InjectAndState(t *testing.T) {
	assert := assert.New(t)
	th := NewTheme(DefaultSeed, m3color.Light)

	var text string
	tf := th.TextField(7, &text, "Name")
	tf.Inject(edit.ImeEnabled{}, edit.ImePreedit{Text: "ㅎ"})
	assert.Len(th.input(7).pending, 2)
	assert.Same(tf.State(), tf.State())

	store := edit.MemoryStore{}
	th.Store = store
	st := tf.State()
	loaded, ok := store.Load(7)
	assert.True(ok)
	assert.Same(st, loaded)
}
