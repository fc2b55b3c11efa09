package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. The palette backgrounds are
// light, so ink colours are dark.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorInk:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorCactus:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorCloud:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorHurt:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// The screen's background colour, if any, is painted behind every cell.
func RenderScreen(s *core.Screen) string {
	var bg lipgloss.TerminalColor = lipgloss.NoColor{}
	if hex := s.Background(); hex != "" {
		bg = lipgloss.Color(hex)
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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
			sb.WriteString(style.Background(bg).Render(run.String()))
		}
	}
	return sb.String()
}
