package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/raster"
)

func renderSnapshot(t *testing.T, snap Snapshot) (*raster.Canvas, config.Palette) {
	t.Helper()
	r, err := NewRenderer(config.DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("NewRenderer() failed: %v", err)
	}
	c := raster.New(testW, testH)
	r.Render(c, snap)
	return c, r.Palette()
}

func TestRenderScene(t *testing.T) {
	s := newTestSim(t)
	s.pipes.Push(Pipe{X: 300, TopHeight: 100})
	snap := s.Snapshot()

	c, pal := renderSnapshot(t, snap)

	tests := []struct {
		name string
		x, y int
		want core.Color
	}{
		{"sky", 5, 5, pal.Sky},
		{"cloud", 140, 100, pal.Cloud},
		{"top pipe", 330, 50, pal.Pipe},
		{"gap", 330, 180, pal.Sky},
		{"bottom pipe", 330, 330, pal.Pipe},
		{"bird body", 100, int(snap.Bird.Y) - 12, pal.Bird},
		{"below ground line", 5, int(snap.GroundY) + 3, pal.Ground},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.At(tc.x, tc.y)
			if tc.name == "below ground line" && got == pal.GroundBorder {
				return // a stripe may cross this pixel
			}
			if got != tc.want {
				t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRenderIsPure(t *testing.T) {
	s := newTestSim(t)
	s.Flap()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	before := s.Snapshot()

	renderSnapshot(t, before)

	after := s.Snapshot()
	if before.Bird != after.Bird || before.Score != after.Score || before.Frame != after.Frame {
		t.Error("rendering changed the simulation")
	}
}

func TestRenderRotatedBird(t *testing.T) {
	snap := newTestSim(t).Snapshot()
	snap.Bird.Rotation = math.Pi / 2 // diving straight down

	c, pal := renderSnapshot(t, snap)

	// The beak now points down instead of right
	bx, by := int(snap.Bird.X), int(snap.Bird.Y)
	if got := c.At(bx-1, by+14); got != pal.BirdBeak {
		t.Errorf("rotated beak pixel = %v, expected %v", got, pal.BirdBeak)
	}
}
