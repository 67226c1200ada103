package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player avatar. X is fixed; only Y moves.
type Bird struct {
	X, Y     float64 // Center, world units
	Velocity float64 // Vertical, positive = down
	Rotation float64 // Radians, derived from velocity
	Radius   float64
}

// fall applies one tick of gravity and updates the tilt.
func (b *Bird) fall(p config.FlappyPhysics) {
	b.Velocity += p.Gravity
	b.Y += b.Velocity
	b.Rotation = core.ClampF(b.Velocity*p.RotationFactor, p.MinRotation(), p.MaxRotation())
}

// Box returns the bird's collision box shrunk by padding on every side.
func (b Bird) Box(padding float64) core.Box {
	return core.BoxAround(b.X, b.Y, b.Radius).Inset(padding)
}

// Top returns the y of the bird's unpadded top edge.
func (b Bird) Top() float64 {
	return b.Y - b.Radius
}

// Bottom returns the y of the bird's unpadded bottom edge.
func (b Bird) Bottom() float64 {
	return b.Y + b.Radius
}
