package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quiz-breakout/internal/core"
)

type cellColors struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// A nil renderer uses the default one.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[cellColors]lipgloss.Style)
	styleFor := func(c cellColors) lipgloss.Style {
		if st, ok := styles[c]; ok {
			return st
		}
		st := r.NewStyle()
		if !c.fg.IsDefault() {
			st = st.Foreground(lipgloss.Color(c.fg.Hex()))
		}
		if !c.bg.IsDefault() {
			st = st.Background(lipgloss.Color(c.bg.Hex()))
		}
		styles[c] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			colors := cellColors{fg: cell.FG, bg: cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != colors.fg || cell.BG != colors.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(colors).Render(run.String()))
		}
	}
	return sb.String()
}
