package m3

import (
	"io"
	"slices"
	"strings"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/clipboard"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/transfer"

	"github.com/esimov/m3/edit"
)

const mimeText = "application/text"

// fieldInput is the widget side state of a text field. Its address is the
// tag the field receives Gio events with.
type fieldInput struct {
	id      edit.ID
	click   gesture.Click
	drag    gesture.Drag
	pending []edit.Event
	// focused is the focus state seen by the previous frame.
	focused bool
}

var keyNames = map[key.Name]edit.Key{
	key.NameLeftArrow:      edit.KeyLeft,
	key.NameRightArrow:     edit.KeyRight,
	key.NameUpArrow:        edit.KeyUp,
	key.NameDownArrow:      edit.KeyDown,
	key.NameHome:           edit.KeyHome,
	key.NameEnd:            edit.KeyEnd,
	key.NameDeleteBackward: edit.KeyBackspace,
	key.NameDeleteForward:  edit.KeyDelete,
	key.NameReturn:         edit.KeyEnter,
	key.NameEnter:          edit.KeyEnter,
	key.NameTab:            edit.KeyTab,
	key.NameEscape:         edit.KeyEscape,
	key.NameSpace:          edit.KeySpace,
}

// toKey maps a Gio key name. Letters keep their upper case name.
func toKey(n key.Name) (edit.Key, bool) {
	if k, ok := keyNames[n]; ok {
		return k, true
	}
	if len(n) == 1 && n[0] >= 'A' && n[0] <= 'Z' {
		return edit.Key(n), true
	}
	return "", false
}

// gioNames returns the Gio key names producing k.
func gioNames(k edit.Key) []key.Name {
	var names []key.Name
	for n, ek := range keyNames {
		if ek == k {
			names = append(names, n)
		}
	}
	if len(names) == 0 && len(k) == 1 && k[0] >= 'A' && k[0] <= 'Z' {
		names = append(names, key.Name(k))
	}
	slices.Sort(names)
	return names
}

// gioModifiers is the inverse of toModifiers. The logical command modifier
// becomes the physical key it stands for on os.
func gioModifiers(m edit.Modifiers, os edit.OS) key.Modifiers {
	var out key.Modifiers
	if m.Contain(edit.ModCtrl) {
		out |= key.ModCtrl
	}
	if m.Contain(edit.ModAlt) {
		out |= key.ModAlt
	}
	if m.Contain(edit.ModShift) {
		out |= key.ModShift
	}
	if m.Contain(edit.ModMacCmd) {
		out |= key.ModCommand
	}
	if m.Contain(edit.ModCommand) {
		if os == edit.MacOS {
			out |= key.ModCommand
		} else {
			out |= key.ModCtrl
		}
	}
	return out
}

// submitFilters asks for the submit shortcut s. Alt and Shift may be held
// unless s requires them, as in edit.Shortcut.Matches.
func submitFilters(tag event.Tag, s edit.Shortcut, os edit.OS) []event.Filter {
	if s == (edit.Shortcut{}) {
		s = edit.DefaultSubmit
	}
	required := gioModifiers(s.Modifiers, os)
	optional := (key.ModAlt | key.ModShift) &^ required
	var filters []event.Filter
	for _, n := range gioNames(s.Key) {
		filters = append(filters, key.Filter{Focus: tag, Name: n, Required: required, Optional: optional})
	}
	return filters
}

// toModifiers maps Gio modifiers. Gio reports the macOS command key as
// ModCommand on every platform.
func toModifiers(m key.Modifiers, os edit.OS) edit.Modifiers {
	var out edit.Modifiers
	if m.Contain(key.ModCtrl) {
		out |= edit.ModCtrl
	}
	if m.Contain(key.ModAlt) {
		out |= edit.ModAlt
	}
	if m.Contain(key.ModShift) {
		out |= edit.ModShift
	}
	if m.Contain(key.ModCommand) {
		out |= edit.ModMacCmd
	}
	return out.Logical(os)
}

// keyFilters lists the keys a focused field asks Gio to deliver.
func keyFilters(tag event.Tag, multiline bool, submit edit.Shortcut, os edit.OS) []event.Filter {
	nav := key.ModShortcutAlt | key.ModShift
	filters := []event.Filter{
		key.FocusFilter{Target: tag},
		transfer.TargetFilter{Target: tag, Type: mimeText},
		key.Filter{Focus: tag, Name: key.NameEnter, Optional: key.ModShift | key.ModShortcut | key.ModAlt},
		key.Filter{Focus: tag, Name: key.NameReturn, Optional: key.ModShift | key.ModShortcut | key.ModAlt},
		key.Filter{Focus: tag, Name: key.NameLeftArrow, Optional: nav},
		key.Filter{Focus: tag, Name: key.NameRightArrow, Optional: nav},
		key.Filter{Focus: tag, Name: key.NameUpArrow, Optional: nav},
		key.Filter{Focus: tag, Name: key.NameDownArrow, Optional: nav},
		key.Filter{Focus: tag, Name: key.NameHome, Optional: key.ModShortcut | key.ModShift},
		key.Filter{Focus: tag, Name: key.NameEnd, Optional: key.ModShortcut | key.ModShift},
		key.Filter{Focus: tag, Name: key.NameDeleteBackward, Optional: nav},
		key.Filter{Focus: tag, Name: key.NameDeleteForward, Optional: nav},
		key.Filter{Focus: tag, Name: "A", Required: key.ModShortcut},
		key.Filter{Focus: tag, Name: "C", Required: key.ModShortcut},
		key.Filter{Focus: tag, Name: "V", Required: key.ModShortcut},
		key.Filter{Focus: tag, Name: "X", Required: key.ModShortcut},
		key.Filter{Focus: tag, Name: "Y", Required: key.ModShortcut},
		key.Filter{Focus: tag, Name: "Z", Required: key.ModShortcut, Optional: key.ModShift},
	}
	if multiline {
		filters = append(filters, key.Filter{Focus: tag, Name: key.NameTab, Optional: key.ModShift})
	}
	emacs := []key.Name{"H", "K", "U", "W"}
	if os == edit.MacOS {
		emacs = append(emacs, "A", "E", "B", "F", "N", "P")
	}
	for _, n := range emacs {
		filters = append(filters, key.Filter{Focus: tag, Name: n, Required: key.ModCtrl})
	}
	return append(filters, submitFilters(tag, submit, os)...)
}

// translate turns one Gio event into edit events. Paste requests are
// answered later by a transfer.DataEvent, so read reports whether the
// clipboard should be read.
func translate(ev event.Event, os edit.OS) (out []edit.Event, read bool) {
	switch ev := ev.(type) {
	case key.Event:
		if ev.State != key.Press {
			return nil, false
		}
		k, ok := toKey(ev.Name)
		if !ok {
			return nil, false
		}
		m := toModifiers(ev.Modifiers, os)
		if m.MatchesExact(edit.ModCommand) {
			switch k {
			case edit.KeyC:
				return []edit.Event{edit.CopyEvent{}}, false
			case edit.KeyX:
				return []edit.Event{edit.CutEvent{}}, false
			case edit.KeyV:
				return nil, true
			}
		}
		return []edit.Event{edit.KeyEvent{Key: k, Modifiers: m}}, false
	case key.EditEvent:
		sel := edit.Span(ev.Range.Start, ev.Range.End)
		switch {
		case ev.Text != "":
			return []edit.Event{edit.SelectEvent{Range: sel}, edit.TextEvent{Text: ev.Text}}, false
		case !sel.IsEmpty():
			return []edit.Event{edit.SelectEvent{Range: sel}, edit.KeyEvent{Key: edit.KeyBackspace}}, false
		}
	case key.SelectionEvent:
		// Gio puts the caret at Start and the anchor at End.
		return []edit.Event{edit.SelectEvent{Range: edit.Span(ev.End, ev.Start)}}, false
	}
	return nil, false
}

// writeClipboard returns a clipboard that hands copies to the window.
func writeClipboard(gtx C) edit.Clipboard {
	return edit.ClipboardFunc(func(s string) {
		gtx.Execute(clipboard.WriteCmd{Type: mimeText, Data: io.NopCloser(strings.NewReader(s))})
	})
}

// pointerEvents drains the gestures of in. origin is the galley origin in
// widget coordinates. pressed reports a press this frame.
func (in *fieldInput) pointerEvents(gtx C, origin f32.Point, os edit.OS) (out []edit.Event, pressed bool) {
	for {
		ev, ok := in.click.Update(gtx.Source)
		if !ok {
			break
		}
		if ev.Kind != gesture.KindPress {
			continue
		}
		pressed = true
		out = append(out, edit.PointerEvent{
			Kind:      edit.PointerPress,
			Position:  f32.Pt(float32(ev.Position.X), float32(ev.Position.Y)).Sub(origin),
			Clicks:    ev.NumClicks,
			Modifiers: toModifiers(ev.Modifiers, os),
		})
	}
	for {
		ev, ok := in.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		if ev.Kind != pointer.Drag {
			continue
		}
		out = append(out, edit.PointerEvent{
			Kind:      edit.PointerDrag,
			Position:  ev.Position.Sub(origin),
			Modifiers: toModifiers(ev.Modifiers, os),
		})
	}
	return out, pressed
}
