package edit

import (
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
)

// Clipboard receives text copied or cut from a field.
type Clipboard interface {
	WriteText(text string)
}

// ClipboardReader is a clipboard a field can paste from without asking the
// window for the contents.
type ClipboardReader interface {
	ReadText() (string, error)
}

// ClipboardFunc adapts a function to the Clipboard interface.
type ClipboardFunc func(text string)

func (f ClipboardFunc) WriteText(text string) { f(text) }

// MemoryClipboard keeps the last written text.
type MemoryClipboard struct {
	Text   string
	Writes int
}

func (c *MemoryClipboard) WriteText(text string) {
	c.Text = text
	c.Writes++
}

func (c *MemoryClipboard) ReadText() (string, error) { return c.Text, nil }

// SystemClipboard talks to the operating system clipboard directly instead
// of going through the window.
type SystemClipboard struct {
	Log *zerolog.Logger
}

func (c SystemClipboard) WriteText(text string) {
	if err := clipboard.WriteAll(text); err != nil && c.Log != nil {
		c.Log.Warn().Err(err).Msg("clipboard write failed")
	}
}

// ReadText returns the current clipboard contents.
func (c SystemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}

// Available reports whether a system clipboard utility was found.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}
