// Package tui renders color schemes in the terminal: a role table, a diff
// between two schemes and an interactive browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/esimov/m3/color"
)

// swatch paints a block in the role color. Terminals without color support
// get blanks.
func swatch(c color.ARGB) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(rgb(c))).
		Render(strings.Repeat(" ", swatchWidth))
}

// rgb drops the alpha channel; terminals cannot show it.
func rgb(c color.ARGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

// row renders one table line for role r of s.
func row(s *color.Scheme, r color.Role) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		roleStyle.Render(r.String()),
		hexStyle.Render(s.Get(r).String()),
		swatch(s.Get(r)),
	)
}

// Table renders every role of s with its hex value and a color swatch.
func Table(s *color.Scheme) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s scheme", s.Mode)))
	sb.WriteString("\n")
	for _, r := range s.Roles() {
		sb.WriteString(row(s, r))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Plain renders the roles of s as "role hex" lines, for pipes and files.
func Plain(s *color.Scheme) string {
	var sb strings.Builder
	for _, r := range s.Roles() {
		fmt.Fprintf(&sb, "%-26s %s\n", r, s.Get(r))
	}
	return sb.String()
}
