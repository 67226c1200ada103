package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// maxCachedStyles bounds the style cache; box filtering yields many blends.
const maxCachedStyles = 4096

type cellColors struct {
	fg, bg core.Color
}

// ScreenRenderer converts a Screen buffer to a styled string.
// Styles are cached per color pair.
type ScreenRenderer struct {
	styles map[cellColors]lipgloss.Style
}

// NewScreenRenderer creates a renderer with an empty style cache.
func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{styles: make(map[cellColors]lipgloss.Style)}
}

func (r *ScreenRenderer) style(c cellColors) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	if len(r.styles) >= maxCachedStyles {
		clear(r.styles)
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.fg.Hex())).
		Background(lipgloss.Color(c.bg.Hex()))
	r.styles[c] = st
	return st
}

// Render converts s to a string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*8 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			colors := cellColors{start.Fg, start.Bg}

			// Collect consecutive cells with the same colors
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != colors.fg || cell.Bg != colors.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(colors).Render(run.String()))
		}
	}
	return sb.String()
}
