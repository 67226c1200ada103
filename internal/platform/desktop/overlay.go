package desktop

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Debug font metrics.
const (
	glyphW = 6
	glyphH = 16
)

const (
	panelPadX   = 24
	panelPadY   = 16
	buttonPadX  = 12
	buttonPadY  = 4
	lineSpacing = 4
)

type textLine struct {
	text string
	x, y int
}

// bannerLayout is a banner placed in window pixels.
type bannerLayout struct {
	panel  image.Rectangle
	lines  []textLine
	button image.Rectangle // Empty when the banner has no button
	label  textLine
}

func textWidth(s string) int {
	return len([]rune(s)) * glyphW
}

// layoutBanner centers b in a w x h window. The button rectangle is used
// for both drawing and hit testing.
func layoutBanner(w, h int, b flappy.Banner) bannerLayout {
	texts := append([]string{b.Title, ""}, b.Lines...)

	inner := 0
	for _, t := range texts {
		inner = max(inner, textWidth(t))
	}
	bw := textWidth(b.Button) + 2*buttonPadX
	bh := glyphH + 2*buttonPadY
	if b.Button != "" {
		inner = max(inner, bw)
	}

	ph := len(texts)*(glyphH+lineSpacing) + 2*panelPadY
	if b.Button != "" {
		ph += bh + panelPadY
	}
	pw := inner + 2*panelPadX

	x0, y0 := (w-pw)/2, (h-ph)/2
	l := bannerLayout{panel: image.Rect(x0, y0, x0+pw, y0+ph)}

	y := y0 + panelPadY
	for _, t := range texts {
		if t != "" {
			l.lines = append(l.lines, textLine{text: t, x: x0 + (pw-textWidth(t))/2, y: y})
		}
		y += glyphH + lineSpacing
	}

	if b.Button != "" {
		y += panelPadY / 2
		bx := x0 + (pw-bw)/2
		l.button = image.Rect(bx, y, bx+bw, y+bh)
		l.label = textLine{text: b.Button, x: bx + buttonPadX, y: y + buttonPadY}
	}
	return l
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func drawBanner(dst *ebiten.Image, l bannerLayout, pal config.Palette) {
	fillRect(dst, l.panel, pal.Ground.RGBA())
	vector.StrokeRect(dst, float32(l.panel.Min.X), float32(l.panel.Min.Y),
		float32(l.panel.Dx()), float32(l.panel.Dy()), 3, pal.BirdBorder.RGBA(), false)

	for _, t := range l.lines {
		ebitenutil.DebugPrintAt(dst, t.text, t.x, t.y)
	}

	if !l.button.Empty() {
		fillRect(dst, l.button, pal.Pipe.RGBA())
		vector.StrokeRect(dst, float32(l.button.Min.X), float32(l.button.Min.Y),
			float32(l.button.Dx()), float32(l.button.Dy()), 2, pal.PipeBorder.RGBA(), false)
		ebitenutil.DebugPrintAt(dst, l.label.text, l.label.x, l.label.y)
	}
}

// drawHUD shows the running score top center and the best score top right.
func drawHUD(dst *ebiten.Image, score, best int, pal config.Palette) {
	w := dst.Bounds().Dx()

	label := fmt.Sprintf("%d", score)
	x := (w - textWidth(label)) / 2
	fillRect(dst, image.Rect(x-6, 6, x+textWidth(label)+6, 6+glyphH+4), pal.BirdBorder.RGBA())
	ebitenutil.DebugPrintAt(dst, label, x, 8)

	bestLabel := fmt.Sprintf("best %d", best)
	ebitenutil.DebugPrintAt(dst, bestLabel, w-textWidth(bestLabel)-12, 8)
}
