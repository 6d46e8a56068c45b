package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/esimov/m3/color"
)

// HueStep is the rotation applied to the seed by one key press, in degrees.
const HueStep = 15

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Left, k.Right}, {k.Toggle, k.Help, k.Quit}}
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous role")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next role")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "hue -15°")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "hue +15°")),
	Toggle: key.NewBinding(key.WithKeys("t", "tab"), key.WithHelp("t", "light/dark")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Browser is a bubbletea model listing the roles of a scheme derived from a
// seed that can be rotated around the hue wheel.
type Browser struct {
	schemes color.Schemes
	mode    color.Mode
	cursor  int
	roles   []color.Role

	view     viewport.Model
	help     help.Model
	quitting bool
}

// NewBrowser derives the schemes of seed and shows the one of mode.
func NewBrowser(seed color.ARGB, mode color.Mode) Browser {
	b := Browser{
		schemes: color.Derive(seed),
		mode:    mode,
		roles:   color.Roles(),
		view:    viewport.New(60, 20),
		help:    help.New(),
	}
	b.refresh()
	return b
}

// Seed returns the seed the shown schemes were derived from.
func (b Browser) Seed() color.ARGB { return b.schemes.Seed }

// Mode returns the shown mode.
func (b Browser) Mode() color.Mode { return b.mode }

// Selected returns the role under the cursor.
func (b Browser) Selected() color.Role { return b.roles[b.cursor] }

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.view.Width = msg.Width
		b.view.Height = max(msg.Height-4, 1)
		b.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			b.quitting = true
			return b, tea.Quit
		case key.Matches(msg, keys.Up):
			b.cursor = (b.cursor + len(b.roles) - 1) % len(b.roles)
		case key.Matches(msg, keys.Down):
			b.cursor = (b.cursor + 1) % len(b.roles)
		case key.Matches(msg, keys.Left):
			b.schemes = color.Derive(color.RotateHue(b.schemes.Seed, -HueStep))
		case key.Matches(msg, keys.Right):
			b.schemes = color.Derive(color.RotateHue(b.schemes.Seed, HueStep))
		case key.Matches(msg, keys.Toggle):
			if b.mode == color.Dark {
				b.mode = color.Light
			} else {
				b.mode = color.Dark
			}
		case key.Matches(msg, keys.Help):
			b.help.ShowAll = !b.help.ShowAll
		default:
			var cmd tea.Cmd
			b.view, cmd = b.view.Update(msg)
			return b, cmd
		}
	}
	b.refresh()
	return b, nil
}

// refresh renders the role list into the viewport and keeps the cursor row
// visible.
func (b *Browser) refresh() {
	s := b.schemes.Select(b.mode)
	lines := make([]string, len(b.roles))
	for i, r := range b.roles {
		prefix := "  "
		if i == b.cursor {
			prefix = cursorStyle.Render("> ")
		}
		lines[i] = prefix + row(s, r)
	}
	b.view.SetContent(strings.Join(lines, "\n"))

	switch {
	case b.cursor < b.view.YOffset:
		b.view.SetYOffset(b.cursor)
	case b.cursor >= b.view.YOffset+b.view.Height:
		b.view.SetYOffset(b.cursor - b.view.Height + 1)
	}
}

func (b Browser) View() string {
	if b.quitting {
		return ""
	}
	title := titleStyle.Render(fmt.Sprintf("seed %s · %s", b.schemes.Seed, b.mode))
	return title + "\n\n" + b.view.View() + "\n" + b.help.View(keys)
}
