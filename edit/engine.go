// Package edit implements the text editing state machine behind the text
// field widget: cursor and selection handling, buffer mutation, undo history
// and input method composition. It knows nothing about painting; the widget
// feeds it events once per frame and paints the returned galley.
package edit

import (
	"slices"
	"time"

	"github.com/rs/zerolog"
)

// Engine applies a frame's input events to a buffer. The zero value edits a
// single line with no length limit.
type Engine struct {
	OS        OS
	Multiline bool
	// Password masks the text in the galley and keeps it off the clipboard.
	Password bool
	// MaxLen limits the buffer length in runes. Zero means unbounded.
	MaxLen int
	// Submit ends single-line editing and inserts a newline in multiline
	// mode. The zero value means DefaultSubmit.
	Submit Shortcut
	// Clipboard receives copied text. Nil drops copies.
	Clipboard Clipboard
	// Layout lays out the displayed text after every mutation.
	Layout Layouter
	Log    *zerolog.Logger
}

// Result reports the outcome of Engine.Process.
type Result struct {
	// Changed reports whether the buffer was mutated.
	Changed bool
	// SelectionChanged reports whether the cursor moved.
	SelectionChanged bool
	Cursor           Range
	// SurrenderFocus is set when a single-line field was submitted.
	SurrenderFocus bool
	// Galley is the layout of the text after all events.
	Galley *Galley
}

var nopLogger = zerolog.Nop()

func (e *Engine) logger() *zerolog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return &nopLogger
}

func (e *Engine) submit() Shortcut {
	if e.Submit == (Shortcut{}) {
		return DefaultSubmit
	}
	return e.Submit
}

// Relayout lays out the displayed text of buf.
func (e *Engine) Relayout(buf Buffer) *Galley {
	text := MaskIf(e.Password, buf.String())
	if e.Layout == nil {
		return Layout(text, Params{Multiline: e.Multiline})
	}
	return e.Layout(text)
}

// Process folds events into buf and st. It must only be called while the
// field has focus. g is the layout of buf before the events; nil lays it out.
func (e *Engine) Process(st *State, buf Buffer, g *Galley, events []Event, now time.Time) Result {
	log := e.logger()
	if g == nil {
		g = e.Relayout(buf)
	}

	cur := Caret(g.End())
	if c, ok := st.Cursor(); ok {
		cur = c.Clamp(g.End())
	}
	prev := cur
	column, hasColumn := st.column, st.hasColumn

	undo := st.Undoer()
	// The history is fed before and after the events so that idle frames
	// still settle pending changes into undo points.
	undo.Feed(now, Snapshot{Cursor: cur, Text: buf.String()})

	if st.imeEnabled {
		events = slices.DeleteFunc(slices.Clone(events), func(ev Event) bool { return !imeCompatible(ev) })
		slices.SortStableFunc(events, func(a, b Event) int {
			switch ia, ib := isIme(a), isIme(b); {
			case ia && !ib:
				return -1
			case !ia && ib:
				return 1
			}
			return 0
		})
	}

	var res Result
loop:
	for _, ev := range events {
		if e.navigate(g, &cur, &column, &hasColumn, ev) {
			continue
		}

		var (
			next    Range
			mutated bool
		)
		switch ev := ev.(type) {
		case CopyEvent:
			if !cur.IsEmpty() {
				e.copy(cur.Slice(buf.String()))
			}
		case CutEvent:
			if !cur.IsEmpty() {
				e.copy(cur.Slice(buf.String()))
				next, mutated = Caret(DeleteSelected(buf, cur)), true
			}
		case PasteEvent:
			if ev.Text != "" {
				c := DeleteSelected(buf, cur)
				next, mutated = Caret(e.insert(buf, c, ev.Text)), true
			}
		case TextEvent:
			// Newlines arrive as Enter key presses.
			if ev.Text != "" && ev.Text != "\n" && ev.Text != "\r" {
				c := DeleteSelected(buf, cur)
				next, mutated = Caret(e.insert(buf, c, ev.Text)), true
			}
		case KeyEvent:
			m := ev.Modifiers
			switch {
			case ev.Key == KeyTab && e.Multiline:
				c := DeleteSelected(buf, cur)
				if m.Contain(ModShift) {
					c = DecreaseIndentation(buf, c)
				} else {
					c = e.insert(buf, c, "\t")
				}
				next, mutated = Caret(c), true
			case e.submit().Matches(ev.Key, m):
				if !e.Multiline {
					log.Debug().Msg("text field submitted")
					res.SurrenderFocus = true
					break loop
				}
				c := DeleteSelected(buf, cur)
				next, mutated = Caret(e.insert(buf, c, "\n")), true
			case (ev.Key == KeyY && m.MatchesLogically(ModCommand)) ||
				(ev.Key == KeyZ && m.MatchesLogically(ModShift|ModCommand)):
				if s, ok := undo.Redo(Snapshot{Cursor: cur, Text: buf.String()}); ok {
					log.Debug().Int("cursor", s.Cursor.Primary).Msg("redo")
					buf.Replace(s.Text)
					next, mutated = s.Cursor, true
				}
			case ev.Key == KeyZ && m.MatchesLogically(ModCommand):
				if s, ok := undo.Undo(Snapshot{Cursor: cur, Text: buf.String()}); ok {
					log.Debug().Int("cursor", s.Cursor.Primary).Msg("undo")
					buf.Replace(s.Text)
					next, mutated = s.Cursor, true
				}
			default:
				next, mutated = e.mutatingKey(buf, cur, ev)
			}
		case ImeEnabled:
			st.imeEnabled = true
			st.imeAnchor = cur
		case ImePreedit:
			if ev.Text != "\n" && ev.Text != "\r" {
				// An empty preedit clears the composition, e.g. after Backspace.
				c := DeleteSelected(buf, cur)
				start := c
				if ev.Text != "" {
					c = e.insert(buf, c, ev.Text)
				}
				st.imeAnchor = cur
				next, mutated = Span(start, c), true
			}
		case ImeCommit:
			if ev.Text != "\n" && ev.Text != "\r" {
				st.imeEnabled = false
				if ev.Text != "" && cur.Secondary == st.imeAnchor.Secondary {
					c := DeleteSelected(buf, cur)
					next = Caret(e.insert(buf, c, ev.Text))
				} else {
					log.Debug().Str("text", MaskIf(e.Password, ev.Text)).Msg("composition diverged, commit dropped")
					next = cur.Collapse()
				}
				mutated = true
			}
		case ImeDisabled:
			st.imeEnabled = false
		}

		if mutated {
			res.Changed = true
			hasColumn = false
			g = e.Relayout(buf)
			cur = next.Clamp(g.End())
		}
	}

	st.cursor, st.hasCursor = cur, true
	st.column, st.hasColumn = column, hasColumn
	undo.Feed(now, Snapshot{Cursor: cur, Text: buf.String()})

	res.SelectionChanged = cur != prev
	if res.Changed || res.SelectionChanged {
		st.LastInteraction = now
	}
	res.Cursor = cur
	res.Galley = g
	return res
}

func (e *Engine) copy(text string) {
	if e.Password {
		e.logger().Debug().Msg("clipboard write suppressed for password field")
		return
	}
	if e.Clipboard != nil {
		e.Clipboard.WriteText(text)
	}
}

func (e *Engine) insert(buf Buffer, at int, text string) int {
	c := InsertAt(buf, at, text, e.MaxLen)
	if n := runeLen(text); c-at < n {
		e.logger().Debug().Int("max_len", e.MaxLen).Int("dropped", n-(c-at)).Msg("insertion truncated")
	}
	return c
}

// navigate applies events that only move the cursor.
func (e *Engine) navigate(g *Galley, cur *Range, column *float32, hasColumn *bool, ev Event) bool {
	switch ev := ev.(type) {
	case SelectEvent:
		*cur = ev.Range.Clamp(g.End())
		*hasColumn = false
		return true
	case PointerEvent:
		at := g.OffsetAt(ev.Position)
		switch {
		case ev.Kind == PointerDrag:
			cur.Primary = at
		case ev.Clicks == 2:
			*cur = WordAt(g.Text, at)
		case ev.Clicks >= 3:
			*cur = Span(g.RowBegin(at), g.RowEnd(at))
		case ev.Modifiers.Contain(ModShift):
			cur.Primary = at
		default:
			*cur = Caret(at)
		}
		*hasColumn = false
		return true
	case KeyEvent:
		return e.onKeyPress(g, cur, column, hasColumn, ev.Key, ev.Modifiers)
	}
	return false
}

func (e *Engine) onKeyPress(g *Galley, cur *Range, column *float32, hasColumn *bool, k Key, m Modifiers) bool {
	switch k {
	case KeyA:
		if m.Contain(ModCommand) {
			*cur = Span(0, g.End())
			*hasColumn = false
			return true
		}
	case KeyLeft, KeyRight:
		if m.IsNone() && !cur.IsEmpty() {
			start, end := cur.Sorted()
			if k == KeyLeft {
				*cur = Caret(start)
			} else {
				*cur = Caret(end)
			}
			*hasColumn = false
			return true
		}
	}

	switch k {
	case KeyLeft, KeyRight, KeyUp, KeyDown, KeyHome, KeyEnd:
		e.moveCaret(g, cur, column, hasColumn, k, m)
		if !m.Contain(ModShift) {
			cur.Secondary = cur.Primary
		}
		return true
	case KeyP, KeyN, KeyB, KeyF, KeyA, KeyE:
		if e.OS == MacOS && m.Contain(ModCtrl) && !m.Contain(ModShift) {
			e.moveCaret(g, cur, column, hasColumn, k, m)
			cur.Secondary = cur.Primary
			return true
		}
	}
	return false
}

// moveCaret moves the primary end of cur for a navigation key.
func (e *Engine) moveCaret(g *Galley, cur *Range, column *float32, hasColumn *bool, k Key, m Modifiers) {
	i := cur.Primary
	vertical := func(up bool) int {
		if !*hasColumn {
			*column, *hasColumn = g.Pos(i).X, true
		}
		if up {
			return g.Up(i, *column)
		}
		return g.Down(i, *column)
	}
	keepColumn := false
	next := i

	if e.OS == MacOS && m.Contain(ModCtrl) && !m.Contain(ModShift) {
		switch k {
		case KeyA:
			next = g.RowBegin(i)
		case KeyE:
			next = g.RowEnd(i)
		case KeyP:
			next, keepColumn = vertical(true), true
		case KeyN:
			next, keepColumn = vertical(false), true
		case KeyB:
			next = max(i-1, 0)
		case KeyF:
			next = min(i+1, g.End())
		}
	} else {
		wordMod := m.Contain(ModAlt) || m.Contain(ModCtrl)
		switch k {
		case KeyLeft:
			switch {
			case wordMod:
				next = PreviousWord(g.Text, i)
			case m.Contain(ModMacCmd):
				next = g.RowBegin(i)
			default:
				next = max(i-1, 0)
			}
		case KeyRight:
			switch {
			case wordMod:
				next = NextWord(g.Text, i)
			case m.Contain(ModMacCmd):
				next = g.RowEnd(i)
			default:
				next = min(i+1, g.End())
			}
		case KeyUp:
			if m.Contain(ModCommand) {
				next = 0
			} else {
				next, keepColumn = vertical(true), true
			}
		case KeyDown:
			if m.Contain(ModCommand) {
				next = g.End()
			} else {
				next, keepColumn = vertical(false), true
			}
		case KeyHome:
			if m.Contain(ModCtrl) {
				next = 0
			} else {
				next = g.RowBegin(i)
			}
		case KeyEnd:
			if m.Contain(ModCtrl) {
				next = g.End()
			} else {
				next = g.RowEnd(i)
			}
		}
	}
	if !keepColumn {
		*hasColumn = false
	}
	cur.Primary = next
}

// mutatingKey handles deletion keys and returns the caret after the edit.
func (e *Engine) mutatingKey(buf Buffer, cur Range, k KeyEvent) (Range, bool) {
	m := k.Modifiers
	wordMod := m.Contain(ModAlt) || m.Contain(ModCtrl)
	var c int
	switch {
	case k.Key == KeyBackspace:
		switch {
		case m.Contain(ModMacCmd):
			c = DeleteParagraphBefore(buf, cur)
		case !cur.IsEmpty():
			c = DeleteSelected(buf, cur)
		case wordMod:
			c = DeletePreviousWord(buf, cur.Primary)
		default:
			c = DeletePreviousChar(buf, cur.Primary)
		}
	case k.Key == KeyDelete && (!m.Contain(ModShift) || deleteHonoursShift(e.OS)):
		switch {
		case m.Contain(ModMacCmd):
			c = DeleteParagraphAfter(buf, cur)
		case !cur.IsEmpty():
			c = DeleteSelected(buf, cur)
		case wordMod:
			c = DeleteNextWord(buf, cur.Primary)
		default:
			c = DeleteNextChar(buf, cur.Primary)
		}
	case k.Key == KeyH && m.Contain(ModCtrl):
		c = DeletePreviousChar(buf, cur.Primary)
	case k.Key == KeyK && m.Contain(ModCtrl):
		c = DeleteParagraphAfter(buf, cur)
	case k.Key == KeyU && m.Contain(ModCtrl):
		c = DeleteParagraphBefore(buf, cur)
	case k.Key == KeyW && m.Contain(ModCtrl):
		if cur.IsEmpty() {
			c = DeletePreviousWord(buf, cur.Primary)
		} else {
			c = DeleteSelected(buf, cur)
		}
	default:
		return Range{}, false
	}
	return Caret(c), true
}
