package edit

import (
	"runtime"
	"strings"
)

// OS selects the platform conventions used for shortcuts and word navigation.
type OS uint8

const (
	Linux OS = iota
	MacOS
	Windows
	Android
	IOS
	Web
)

// HostOS returns the conventions of the platform the program runs on.
func HostOS() OS {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	case "android":
		return Android
	case "ios":
		return IOS
	case "js", "wasip1":
		return Web
	}
	return Linux
}

func (os OS) String() string {
	switch os {
	case MacOS:
		return "macos"
	case Windows:
		return "windows"
	case Android:
		return "android"
	case IOS:
		return "ios"
	case Web:
		return "web"
	}
	return "linux"
}

// deleteHonoursShift reports whether Shift+Delete still deletes on os. Windows
// reserves Shift+Delete for cut, so the key press is left to the cut event.
func deleteHonoursShift(os OS) bool {
	return os != Windows
}

// Key names a physical or logical key. Letter keys are their upper case letter.
type Key string

const (
	KeyLeft      Key = "Left"
	KeyRight     Key = "Right"
	KeyUp        Key = "Up"
	KeyDown      Key = "Down"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
	KeyBackspace Key = "Backspace"
	KeyDelete    Key = "Delete"
	KeyEnter     Key = "Enter"
	KeyTab       Key = "Tab"
	KeyEscape    Key = "Escape"
	KeySpace     Key = "Space"

	KeyA Key = "A"
	KeyB Key = "B"
	KeyC Key = "C"
	KeyE Key = "E"
	KeyF Key = "F"
	KeyH Key = "H"
	KeyK Key = "K"
	KeyN Key = "N"
	KeyP Key = "P"
	KeyU Key = "U"
	KeyV Key = "V"
	KeyW Key = "W"
	KeyX Key = "X"
	KeyY Key = "Y"
	KeyZ Key = "Z"
)

func (k Key) isArrow() bool {
	switch k {
	case KeyLeft, KeyRight, KeyUp, KeyDown:
		return true
	}
	return false
}

// Modifiers is a set of modifier keys. Command is the logical shortcut
// modifier: MacCmd on macOS and Ctrl everywhere else.
type Modifiers uint8

const (
	ModAlt Modifiers = 1 << iota
	ModCtrl
	ModShift
	ModMacCmd
	ModCommand
)

// Contain reports whether all modifiers of o are in m.
func (m Modifiers) Contain(o Modifiers) bool { return m&o == o }

// IsNone reports whether no modifier is held.
func (m Modifiers) IsNone() bool { return m == 0 }

// Logical sets ModCommand from the physical modifiers according to os.
func (m Modifiers) Logical(os OS) Modifiers {
	if os == MacOS {
		if m.Contain(ModMacCmd) {
			m |= ModCommand
		}
	} else if m.Contain(ModCtrl) {
		m |= ModCommand
	}
	return m
}

// MatchesLogically reports whether m satisfies the shortcut pattern p. Alt and
// Shift are required when present in p but otherwise ignored; Ctrl and Command
// must agree with p.
func (m Modifiers) MatchesLogically(p Modifiers) bool {
	if p.Contain(ModAlt) && !m.Contain(ModAlt) {
		return false
	}
	if p.Contain(ModShift) && !m.Contain(ModShift) {
		return false
	}
	return m.cmdCtrlMatches(p)
}

// MatchesExact is like MatchesLogically but Alt and Shift must agree too.
func (m Modifiers) MatchesExact(p Modifiers) bool {
	if m.Contain(ModAlt) != p.Contain(ModAlt) || m.Contain(ModShift) != p.Contain(ModShift) {
		return false
	}
	return m.cmdCtrlMatches(p)
}

func (m Modifiers) cmdCtrlMatches(p Modifiers) bool {
	if p.Contain(ModMacCmd) {
		return m.Contain(ModMacCmd) && p.Contain(ModCtrl) == m.Contain(ModCtrl)
	}
	if !p.Contain(ModCtrl) && !p.Contain(ModCommand) {
		return !m.Contain(ModCtrl) && !m.Contain(ModCommand)
	}
	if p.Contain(ModCtrl) && !m.Contain(ModCtrl) {
		return false
	}
	if p.Contain(ModCommand) && !m.Contain(ModCommand) {
		return false
	}
	return true
}

func (m Modifiers) String() string {
	var parts []string
	for _, f := range []struct {
		mod  Modifiers
		name string
	}{
		{ModCtrl, "Ctrl"},
		{ModMacCmd, "Cmd"},
		{ModAlt, "Alt"},
		{ModShift, "Shift"},
		{ModCommand, "Short"},
	} {
		if m.Contain(f.mod) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "-")
}

// Shortcut is a key combined with a modifier pattern.
type Shortcut struct {
	Key       Key
	Modifiers Modifiers
}

// DefaultSubmit is the submit shortcut used when none is configured.
var DefaultSubmit = Shortcut{Key: KeyEnter}

// Matches reports whether a press of k with modifiers m triggers s.
func (s Shortcut) Matches(k Key, m Modifiers) bool {
	return k == s.Key && m.MatchesLogically(s.Modifiers)
}
