package edit

import "time"

// UndoSettings tunes how an Undoer coalesces states.
type UndoSettings struct {
	// MaxUndos bounds the number of stored undo points.
	MaxUndos int
	// StableTime is how long a state must stay unchanged before it becomes an undo point.
	StableTime time.Duration
	// AutoSaveInterval records an undo point while changes keep flowing.
	AutoSaveInterval time.Duration
}

// DefaultUndoSettings returns the settings used by text fields.
func DefaultUndoSettings() UndoSettings {
	return UndoSettings{
		MaxUndos:         100,
		StableTime:       time.Second,
		AutoSaveInterval: 30 * time.Second,
	}
}

type flux[S comparable] struct {
	start      time.Time
	lastChange time.Time
	latest     S
}

// Undoer is a linear undo/redo history. Feed it the current state every frame;
// it records a new undo point once a state has been stable for a while.
type Undoer[S comparable] struct {
	Settings UndoSettings

	undos []S
	redos []S
	flux  *flux[S]
}

// NewUndoer returns an empty history using DefaultUndoSettings.
func NewUndoer[S comparable]() *Undoer[S] {
	return &Undoer[S]{Settings: DefaultUndoSettings()}
}

func (u *Undoer[S]) last() (S, bool) {
	if len(u.undos) == 0 {
		var zero S
		return zero, false
	}
	return u.undos[len(u.undos)-1], true
}

// HasUndo reports whether Undo would change current.
func (u *Undoer[S]) HasUndo(current S) bool {
	switch len(u.undos) {
	case 0:
		return false
	case 1:
		return u.undos[0] != current
	}
	return true
}

// HasRedo reports whether Redo would change current.
func (u *Undoer[S]) HasRedo(current S) bool {
	last, ok := u.last()
	return len(u.redos) > 0 && ok && last == current
}

// InFlux reports whether changes are being collected for the next undo point.
func (u *Undoer[S]) InFlux() bool { return u.flux != nil }

// Undo returns the state to restore, or false when there is nothing to undo.
func (u *Undoer[S]) Undo(current S) (S, bool) {
	if !u.HasUndo(current) {
		var zero S
		return zero, false
	}
	u.flux = nil
	if last, _ := u.last(); last == current {
		u.redos = append(u.redos, last)
		u.undos = u.undos[:len(u.undos)-1]
	} else {
		u.redos = append(u.redos, current)
	}
	// The restored state stays on the undo stack so redo can compare against it.
	return u.last()
}

// Redo returns the state to restore after an Undo. Any change since the last
// undo invalidates the redo stack.
func (u *Undoer[S]) Redo(current S) (S, bool) {
	var zero S
	if last, ok := u.last(); ok && last != current {
		u.redos = u.redos[:0]
		return zero, false
	}
	if len(u.redos) == 0 {
		return zero, false
	}
	s := u.redos[len(u.redos)-1]
	u.redos = u.redos[:len(u.redos)-1]
	u.undos = append(u.undos, s)
	return s, true
}

// Add records current as an undo point immediately.
func (u *Undoer[S]) Add(current S) {
	if last, ok := u.last(); !ok || last != current {
		u.undos = append(u.undos, current)
	}
	if limit := u.Settings.MaxUndos; limit > 0 && len(u.undos) > limit {
		u.undos = append(u.undos[:0], u.undos[len(u.undos)-limit:]...)
	}
	u.flux = nil
}

// Feed updates the history with the state at time now.
func (u *Undoer[S]) Feed(now time.Time, current S) {
	last, ok := u.last()
	if !ok {
		u.Add(current)
		return
	}
	if last == current {
		u.flux = nil
		return
	}
	u.redos = u.redos[:0]
	if u.flux == nil {
		u.flux = &flux[S]{start: now, lastChange: now, latest: current}
		return
	}
	if u.flux.latest == current {
		if now.Sub(u.flux.lastChange) >= u.Settings.StableTime {
			u.Add(current)
		}
		return
	}
	if now.Sub(u.flux.start) >= u.Settings.AutoSaveInterval {
		u.Add(current)
		return
	}
	u.flux.lastChange = now
	u.flux.latest = current
}

// Clone returns an independent copy of the history.
func (u *Undoer[S]) Clone() *Undoer[S] {
	c := &Undoer[S]{
		Settings: u.Settings,
		undos:    append([]S(nil), u.undos...),
		redos:    append([]S(nil), u.redos...),
	}
	if u.flux != nil {
		f := *u.flux
		c.flux = &f
	}
	return c
}
