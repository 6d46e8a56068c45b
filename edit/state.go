package edit

import (
	"time"

	"gioui.org/f32"
)

// Snapshot is what the undo history records.
type Snapshot struct {
	Cursor Range
	Text   string
}

// Mode is the engine state of a text field.
type Mode uint8

const (
	// Idle fields have no focus and ignore input.
	Idle Mode = iota
	// Direct fields have focus and edit the buffer directly.
	Direct
	// Composing fields have an open input method composition.
	Composing
)

func (m Mode) String() string {
	switch m {
	case Direct:
		return "direct"
	case Composing:
		return "composing"
	}
	return "idle"
}

// State is the per-widget edit state kept between frames.
type State struct {
	cursor    Range
	hasCursor bool

	// column is the preferred caret x for vertical movement.
	column    float32
	hasColumn bool

	undo *Undoer[Snapshot]

	imeEnabled bool
	imeAnchor  Range

	// Offset is the scroll offset of the text inside the widget.
	Offset f32.Point
	// LastInteraction is the time of the last key press or click, used to
	// phase the caret blink.
	LastInteraction time.Time
}

// NewState returns an empty state without a cursor.
func NewState() *State {
	return &State{undo: NewUndoer[Snapshot]()}
}

// Cursor returns the selection, if the field was ever focused.
func (s *State) Cursor() (Range, bool) { return s.cursor, s.hasCursor }

// SetCursor replaces the selection.
func (s *State) SetCursor(r Range) {
	s.cursor = r
	s.hasCursor = true
	s.hasColumn = false
}

// Undoer returns the undo history owned by s.
func (s *State) Undoer() *Undoer[Snapshot] {
	if s.undo == nil {
		s.undo = NewUndoer[Snapshot]()
	}
	return s.undo
}

// ClearUndo drops the undo history.
func (s *State) ClearUndo() { s.undo = NewUndoer[Snapshot]() }

// Mode reports the engine state given whether the field has focus.
func (s *State) Mode(focused bool) Mode {
	switch {
	case !focused:
		return Idle
	case s.imeEnabled:
		return Composing
	}
	return Direct
}

// Blur handles a focus change. An open composition is closed and the
// selection collapses to its primary end.
func (s *State) Blur() {
	if !s.imeEnabled {
		return
	}
	s.imeEnabled = false
	if s.hasCursor {
		s.cursor = s.cursor.Collapse()
	}
}

// Clone returns a deep copy of s; the copies share no history.
func (s *State) Clone() *State {
	c := *s
	if s.undo != nil {
		c.undo = s.undo.Clone()
	}
	return &c
}

// ID identifies a widget across frames.
type ID uint64

// Store keeps edit states between frames.
type Store interface {
	Load(id ID) (*State, bool)
	Store(id ID, s *State)
}

// MemoryStore is a map backed Store. It is not safe for concurrent use.
type MemoryStore map[ID]*State

func (m MemoryStore) Load(id ID) (*State, bool) {
	s, ok := m[id]
	return s, ok
}

func (m MemoryStore) Store(id ID, s *State) { m[id] = s }

// LoadOrDefault returns the state stored for id, or a fresh one.
func LoadOrDefault(st Store, id ID) *State {
	if s, ok := st.Load(id); ok && s != nil {
		return s
	}
	return NewState()
}
