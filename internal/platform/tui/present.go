package tui

import (
	"image"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// halfBlock paints the upper half of a cell with Fg and the lower with Bg,
// giving two square-ish pixels per character.
const halfBlock = '▀'

// Present downsamples img into dst. Each cell covers a ppc x 2*ppc block of
// pixels: the top ppc x ppc square becomes the foreground, the bottom one
// the background. Blocks are box filtered.
func Present(img *image.RGBA, dst *core.Screen, ppc int) {
	if ppc < 1 {
		ppc = 1
	}
	for cy := 0; cy < dst.Height(); cy++ {
		for cx := 0; cx < dst.Width(); cx++ {
			x := cx * ppc
			y := 2 * cy * ppc
			dst.SetCell(cx, cy, core.Cell{
				Rune: halfBlock,
				Fg:   average(img, x, y, ppc),
				Bg:   average(img, x, y+ppc, ppc),
			})
		}
	}
}

// average returns the mean color of the n x n block at (x0, y0), clipped to
// the image. Blocks entirely outside are black.
func average(img *image.RGBA, x0, y0, n int) core.Color {
	r := image.Rect(x0, y0, x0+n, y0+n).Intersect(img.Rect)
	if r.Empty() {
		return core.Color{}
	}

	var sr, sg, sb int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):]
		for i := 0; i < r.Dx()*4; i += 4 {
			sr += int(row[i])
			sg += int(row[i+1])
			sb += int(row[i+2])
		}
	}
	count := r.Dx() * r.Dy()
	return core.RGB(uint8(sr/count), uint8(sg/count), uint8(sb/count))
}
