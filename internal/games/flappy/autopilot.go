package flappy

// Autopilot decides when to flap by chasing the center of the next gap.
// It drives headless runs and attract loops.
type Autopilot struct {
	// Bias shifts the aim point below the gap center; the bird rises
	// about two radii after a flap.
	Bias float64
}

// DefaultAutopilot aims a little under the gap center.
func DefaultAutopilot() Autopilot {
	return Autopilot{Bias: 10}
}

// ShouldFlap reports whether the bird should flap this tick.
func (a Autopilot) ShouldFlap(snap Snapshot, pipeWidth, gap, padding float64) bool {
	switch snap.State {
	case StateStart:
		return true
	case StateGameOver:
		return false
	}

	target := snap.GroundY / 2
	left := snap.Bird.Box(padding).Left
	for _, p := range snap.Pipes {
		if p.Right(pipeWidth) >= left {
			target = p.TopHeight + gap/2
			break
		}
	}
	target += a.Bias

	return snap.Bird.Y+snap.Bird.Velocity > target && snap.Bird.Velocity >= 0
}
