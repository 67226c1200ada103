package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// panelLayout is where a banner lands on screen.
type panelLayout struct {
	panel  core.Rect
	rows   []string // Content rows, inside the border
	button core.Rect
	label  string
}

func buttonLabel(text string) string {
	return "[ " + text + " ]"
}

// layoutBanner centers b on a cols x rows screen. The same layout is used
// for drawing and for mouse hit testing.
func layoutBanner(cols, rows int, b flappy.Banner) panelLayout {
	content := []string{"", b.Title, ""}
	content = append(content, b.Lines...)
	buttonRow := -1
	label := ""
	if b.Button != "" {
		label = buttonLabel(b.Button)
		content = append(content, "")
		buttonRow = len(content)
		content = append(content, label)
	}
	content = append(content, "")

	inner := 0
	for _, line := range content {
		inner = max(inner, lipgloss.Width(line))
	}
	w := inner + 6
	h := len(content) + 2

	l := panelLayout{
		panel: core.NewRect((cols-w)/2, (rows-h)/2, w, h),
		rows:  content,
		label: label,
	}
	if buttonRow >= 0 {
		lw := lipgloss.Width(label)
		l.button = core.NewRect(l.panel.X+(w-lw)/2, l.panel.Y+1+buttonRow, lw, 1)
	}
	return l
}

// drawBanner paints a framed panel with centered rows.
func drawBanner(s *core.Screen, l panelLayout, pal config.Palette) {
	s.DrawRect(l.panel, ' ')
	s.Paint(l.panel, pal.BirdBorder, pal.Ground)
	s.DrawBox(l.panel)

	for i, line := range l.rows {
		if line == "" {
			continue
		}
		x := l.panel.X + (l.panel.W-lipgloss.Width(line))/2
		s.DrawText(x, l.panel.Y+1+i, line)
	}

	if l.label != "" {
		s.Paint(l.button, pal.Cloud, pal.Pipe)
	}
}

// drawHUD puts the running score top center and the best score top right.
func drawHUD(s *core.Screen, score, best int, pal config.Palette) {
	label := fmt.Sprintf(" %d ", score)
	x := (s.Width() - len(label)) / 2
	s.DrawTextCentered(0, label)
	s.Paint(core.NewRect(x, 0, len(label), 1), pal.Cloud, pal.BirdBorder)

	bestLabel := fmt.Sprintf(" best %d ", best)
	bx := s.Width() - len(bestLabel) - 1
	if bx > x+len(label) {
		s.DrawText(bx, 0, bestLabel)
		s.Paint(core.NewRect(bx, 0, len(bestLabel), 1), pal.BirdBorder, pal.Ground)
	}
}

// tooSmallView explains why the game is not shown.
func tooSmallView(cols, rows, minCols, minRows int) string {
	msg := strings.Join([]string{
		"Terminal too small",
		"",
		fmt.Sprintf("current %dx%d, need at least %dx%d", cols, rows, minCols, minRows),
		"",
		"resize the window or press q to quit",
	}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(msg)

	return lipgloss.Place(max(cols, 1), max(rows, 1), lipgloss.Center, lipgloss.Center, box)
}
