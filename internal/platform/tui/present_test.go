package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/raster"
)

func TestPresentHalfBlocks(t *testing.T) {
	red := core.RGB(200, 0, 0)
	blue := core.RGB(0, 0, 200)

	c := raster.New(16, 16)
	c.Clear(red)
	c.FillRect(0, 8, 16, 8, blue)

	s := core.NewScreen(2, 1)
	Present(c.Image(), s, 8)

	for x := 0; x < 2; x++ {
		cell := s.GetCell(x, 0)
		if cell.Rune != halfBlock || cell.Fg != red || cell.Bg != blue {
			t.Errorf("cell %d = %+v, expected red over blue", x, cell)
		}
	}
}

func TestPresentAverages(t *testing.T) {
	c := raster.New(2, 4)
	c.Clear(core.RGB(0, 0, 0))
	c.FillRect(0, 0, 1, 2, core.RGB(200, 100, 40))

	s := core.NewScreen(1, 1)
	Present(c.Image(), s, 2)

	// Half of the top block is colored
	if got, want := s.GetCell(0, 0).Fg, core.RGB(100, 50, 20); got != want {
		t.Errorf("Fg = %v, expected %v", got, want)
	}
	if got := s.GetCell(0, 0).Bg; got != core.RGB(0, 0, 0) {
		t.Errorf("Bg = %v, expected black", got)
	}
}

func TestPresentOutsideImageIsBlack(t *testing.T) {
	c := raster.New(4, 4)
	c.Clear(core.RGB(255, 255, 255))

	s := core.NewScreen(4, 4)
	Present(c.Image(), s, 2)

	if got := s.GetCell(3, 3); got.Fg != (core.Color{}) || got.Bg != (core.Color{}) {
		t.Errorf("cell beyond image = %+v, expected black", got)
	}
}

func TestScreenRendererKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(1, 0, "hello")
	s.Paint(core.NewRect(1, 0, 5, 1), core.RGB(1, 2, 3), core.RGB(4, 5, 6))
	s.DrawText(0, 1, "world")

	out := NewScreenRenderer().Render(s)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("Render() lost text: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("Render() has %d newlines, expected 1", n)
	}
}

func TestLayoutBanner(t *testing.T) {
	b, _ := flappy.BannerFor(flappy.Snapshot{State: flappy.StateGameOver, Score: 12}, 40)
	l := layoutBanner(80, 24, b)

	if l.panel.X < 0 || l.panel.Right() > 80 || l.panel.Y < 0 || l.panel.Bottom() > 24 {
		t.Fatalf("panel %+v does not fit 80x24", l.panel)
	}
	if !l.panel.Contains(l.button.X, l.button.Y) || !l.panel.Contains(l.button.Right()-1, l.button.Y) {
		t.Errorf("button %+v outside panel %+v", l.button, l.panel)
	}

	s := core.NewScreen(80, 24)
	drawBanner(s, l, newTestModel(t).renderer.Palette())
	if row := s.Row(l.button.Y); !strings.Contains(row, "[ PLAY AGAIN ]") {
		t.Errorf("button row = %q", row)
	}
	if []rune(s.Row(l.button.Y))[l.button.X] != '[' {
		t.Errorf("button rect starts at %d, but the label does not", l.button.X)
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionFlap},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}
