package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/esimov/m3/color"
)

const seed color.ARGB = 0xff6750a4

func TestTableListsEveryRole(t *testing.T) {
	s := color.Derive(seed)
	out := Table(&s.Light)
	for _, r := range color.Roles() {
		require.Contains(t, out, r.String())
		require.Contains(t, out, s.Light.Get(r).String())
	}
	require.Contains(t, out, "light scheme")
}

func TestPlainIsOneLinePerRole(t *testing.T) {
	s := color.Derive(seed)
	lines := strings.Split(strings.TrimSuffix(Plain(&s.Dark), "\n"), "\n")
	require.Len(t, lines, len(color.Roles()))
	require.True(t, strings.HasPrefix(lines[0], "primary "))
	require.True(t, strings.HasSuffix(lines[0], s.Dark.Get(color.Primary).String()))
}

func TestDiff(t *testing.T) {
	a := color.Derive(seed)
	require.Equal(t, "No changes\n", Diff(&a.Light, &a.Light))
	require.Empty(t, Changed(&a.Light, &a.Light))

	b := color.Derive(color.RotateHue(seed, 120))
	changed := Changed(&a.Light, &b.Light)
	require.Contains(t, changed, color.Primary)

	out := Diff(&a.Light, &b.Light)
	require.Contains(t, out, "- primary")
	require.Contains(t, out, "+ primary")
	require.Equal(t, len(changed), strings.Count("\n"+out, "\n- "))
}

func TestBrowserNavigation(t *testing.T) {
	m := NewBrowser(seed, color.Light)
	require.Equal(t, color.Primary, m.Selected())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Browser)
	require.Equal(t, color.OnPrimary, m.Selected())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m = updated.(Browser)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Browser)
	roles := color.Roles()
	require.Equal(t, roles[len(roles)-1], m.Selected())
}

func TestBrowserModeAndHue(t *testing.T) {
	m := NewBrowser(seed, color.Light)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	m = updated.(Browser)
	require.Equal(t, color.Dark, m.Mode())
	require.Contains(t, m.View(), "dark")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Browser)
	require.NotEqual(t, seed, m.Seed())
	require.InDelta(t, color.Hue(color.RotateHue(seed, HueStep)), color.Hue(m.Seed()), 0.5)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Browser)
	require.InDelta(t, color.Hue(seed), color.Hue(m.Seed()), 3)
}

func TestBrowserQuit(t *testing.T) {
	m := NewBrowser(seed, color.Light)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, "", updated.(Browser).View())
}

func TestBrowserKeepsCursorVisible(t *testing.T) {
	m := NewBrowser(seed, color.Light)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	m = updated.(Browser)
	for i := 0; i < 10; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Browser)
	}
	require.Contains(t, m.view.View(), m.Selected().String())
}
