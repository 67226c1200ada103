package raster

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	white = core.RGB(255, 255, 255)
	red   = core.RGB(255, 0, 0)
	blue  = core.RGB(0, 0, 255)
)

func TestCanvasClear(t *testing.T) {
	c := New(10, 5)
	c.Clear(blue)

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if got := c.At(x, y); got != blue {
				t.Fatalf("At(%d, %d) = %v, expected %v", x, y, got, blue)
			}
		}
	}
}

func TestFillRect(t *testing.T) {
	c := New(20, 20)
	c.Clear(white)
	c.FillRect(5, 5, 10, 10, red)

	tests := []struct {
		x, y int
		want core.Color
	}{
		{10, 10, red},
		{5, 5, red},
		{14, 14, red},
		{4, 10, white},
		{15, 10, white},
		{10, 15, white},
	}
	for _, tc := range tests {
		if got := c.At(tc.x, tc.y); got != tc.want {
			t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestFillRectClipsOffCanvas(t *testing.T) {
	c := New(10, 10)
	c.Clear(white)
	c.FillRect(-50, -50, 55, 200, red)

	if got := c.At(0, 9); got != red {
		t.Errorf("At(0, 9) = %v, expected %v", got, red)
	}
	if got := c.At(6, 0); got != white {
		t.Errorf("At(6, 0) = %v, expected %v", got, white)
	}
}

func TestFillEllipse(t *testing.T) {
	c := New(40, 40)
	c.Clear(white)
	c.FillEllipse(20, 20, 10, 5, 0, red)

	if got := c.At(20, 20); got != red {
		t.Errorf("center = %v, expected %v", got, red)
	}
	if got := c.At(28, 20); got != red {
		t.Errorf("inside major axis = %v, expected %v", got, red)
	}
	if got := c.At(20, 28); got != white {
		t.Errorf("outside minor axis = %v, expected %v", got, white)
	}
}

func TestFillEllipseRotated(t *testing.T) {
	c := New(40, 40)
	c.Clear(white)
	c.FillEllipse(20, 20, 10, 5, math.Pi/2, red)

	// A quarter turn swaps the axes
	if got := c.At(20, 28); got != red {
		t.Errorf("inside rotated major axis = %v, expected %v", got, red)
	}
	if got := c.At(28, 20); got != white {
		t.Errorf("outside rotated minor axis = %v, expected %v", got, white)
	}
}

func TestStrokeEllipseLeavesHole(t *testing.T) {
	c := New(40, 40)
	c.Clear(white)
	c.StrokeEllipse(20, 20, 10, 10, 0, 2, red)

	if got := c.At(20, 20); got != white {
		t.Errorf("center = %v, expected hole", got)
	}
	if got := c.At(20, 10); got != red {
		t.Errorf("ring = %v, expected %v", got, red)
	}
}

func TestStrokeRect(t *testing.T) {
	c := New(30, 30)
	c.Clear(white)
	c.StrokeRect(5, 5, 20, 20, 2, red)

	if got := c.At(15, 5); got != red {
		t.Errorf("top edge = %v, expected %v", got, red)
	}
	if got := c.At(5, 15); got != red {
		t.Errorf("left edge = %v, expected %v", got, red)
	}
	if got := c.At(15, 15); got != white {
		t.Errorf("interior = %v, expected untouched", got)
	}
}

func TestTransformStack(t *testing.T) {
	c := New(40, 40)
	c.Clear(white)

	c.Save()
	c.Translate(20, 20)
	c.Rotate(math.Pi / 2)
	// Local +x points down after a quarter turn
	c.FillRect(5, -2, 10, 4, red)
	c.Restore()

	if got := c.At(20, 30); got != red {
		t.Errorf("rotated rect = %v, expected %v", got, red)
	}
	if got := c.At(30, 20); got != white {
		t.Errorf("unrotated position = %v, expected untouched", got)
	}

	// Restore brings back the identity
	c.FillRect(0, 0, 2, 2, blue)
	if got := c.At(1, 1); got != blue {
		t.Errorf("after Restore = %v, expected %v", got, blue)
	}
}

func TestRestoreUnbalanced(t *testing.T) {
	c := New(4, 4)
	c.Restore() // must not panic
	c.Translate(1, 1)
	c.Restore()
	c.Clear(white)
	c.FillRect(0, 0, 1, 1, red)
	if got := c.At(1, 1); got != red {
		t.Errorf("translate lost after unbalanced Restore: %v", got)
	}
}

func TestStrokePathDiagonal(t *testing.T) {
	c := New(20, 20)
	c.Clear(white)
	c.StrokePath([]core.Point{core.Pt(0, 0), core.Pt(20, 20)}, false, 3, red)

	if got := c.At(10, 10); got != red {
		t.Errorf("on line = %v, expected %v", got, red)
	}
	if got := c.At(15, 3); got != white {
		t.Errorf("off line = %v, expected untouched", got)
	}
}

func TestResize(t *testing.T) {
	c := New(10, 10)
	c.Resize(30, 12)

	w, h := c.Size()
	if w != 30 || h != 12 {
		t.Errorf("Size() = %vx%v, expected 30x12", w, h)
	}

	c.Resize(0, -4)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %vx%v, expected 1x1 floor", w, h)
	}
}

func TestSavePNG(t *testing.T) {
	c := New(8, 6)
	c.Clear(red)

	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("decoded size = %v, expected 8x6", b)
	}
}
