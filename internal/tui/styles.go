package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	roleStyle   = lipgloss.NewStyle().Width(28)
	hexStyle    = lipgloss.NewStyle().Width(11).Foreground(lipgloss.Color("244"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	faint       = lipgloss.NewStyle().Faint(true)

	diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	diffDelChar = diffDelLine.Underline(true)
	diffAddChar = diffAddLine.Underline(true)
)

// swatchWidth is the number of cells painted with a role color.
const swatchWidth = 6
