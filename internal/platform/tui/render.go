package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-dash/internal/core"
)

// Neon palette
var (
	neonCyan    = lipgloss.Color("#00f3ff")
	neonMagenta = lipgloss.Color("#ff00ff")
	neonRed     = lipgloss.Color("#ff2a2a")
	neonGreen   = lipgloss.Color("#39ff14")
	neonGray    = lipgloss.Color("#6c6c80")
	neonGrid    = lipgloss.Color("#3a1f5c")
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(neonCyan).Bold(true),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(neonMagenta),
	core.ColorRed:     lipgloss.NewStyle().Foreground(neonRed),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(neonGray),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(neonGreen),
	core.ColorGrid:    lipgloss.NewStyle().Foreground(neonGrid),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
