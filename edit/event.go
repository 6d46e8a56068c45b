package edit

import "gioui.org/f32"

// Event is an input event consumed by the Engine. The set of implementations
// is closed: KeyEvent, TextEvent, PasteEvent, CopyEvent, CutEvent,
// SelectEvent, PointerEvent and the Ime* events.
type Event interface {
	isEvent()
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key       Key
	Modifiers Modifiers
	// Repeat marks presses generated by holding the key down.
	Repeat bool
}

// TextEvent inserts typed text.
type TextEvent struct {
	Text string
}

// PasteEvent inserts clipboard contents.
type PasteEvent struct {
	Text string
}

// CopyEvent requests the selection on the clipboard.
type CopyEvent struct{}

// CutEvent requests the selection on the clipboard and removes it.
type CutEvent struct{}

// SelectEvent replaces the selection, as requested by an input method.
type SelectEvent struct {
	Range Range
}

// PointerKind distinguishes pointer presses from drags.
type PointerKind uint8

const (
	PointerPress PointerKind = iota
	PointerDrag
)

// PointerEvent is a press or drag inside the text area. Position is relative
// to the galley origin.
type PointerEvent struct {
	Kind      PointerKind
	Position  f32.Point
	Clicks    int
	Modifiers Modifiers
}

// ImeEnabled opens a composition session.
type ImeEnabled struct{}

// ImePreedit replaces the provisional composition text.
type ImePreedit struct {
	Text string
}

// ImeCommit ends a composition with its final text.
type ImeCommit struct {
	Text string
}

// ImeDisabled closes a composition without changing the text.
type ImeDisabled struct{}

func (KeyEvent) isEvent()     {}
func (TextEvent) isEvent()    {}
func (PasteEvent) isEvent()   {}
func (CopyEvent) isEvent()    {}
func (CutEvent) isEvent()     {}
func (SelectEvent) isEvent()  {}
func (PointerEvent) isEvent() {}
func (ImeEnabled) isEvent()   {}
func (ImePreedit) isEvent()   {}
func (ImeCommit) isEvent()    {}
func (ImeDisabled) isEvent()  {}

func isIme(e Event) bool {
	switch e.(type) {
	case ImeEnabled, ImePreedit, ImeCommit, ImeDisabled:
		return true
	}
	return false
}

// imeCompatible drops key events that corrupt an open composition.
func imeCompatible(e Event) bool {
	k, ok := e.(KeyEvent)
	if !ok {
		return true
	}
	return !k.Repeat && k.Key != KeyBackspace && !k.Key.isArrow()
}
