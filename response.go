package m3

import (
	"gioui.org/layout"

	"github.com/esimov/m3/edit"
)

// Response is what a widget reports after layout.
type Response struct {
	layout.Dimensions

	// Clicked reports a completed click this frame.
	Clicked bool
	// Changed reports that the widget value changed this frame.
	Changed bool
	// Submitted reports that a single-line text field was submitted.
	Submitted bool
	Hovered   bool
	Pressed   bool
	Focused   bool
	// Cursor is the selection of a text field after this frame.
	Cursor edit.Range
}

// interaction is the pointer state a widget resolves its colors from.
type interaction struct {
	disabled bool
	hovered  bool
	pressed  bool
	err      bool
}
