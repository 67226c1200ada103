package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:        0.25,
			JumpImpulse:    -5,
			PipeSpeed:      3,
			RotationFactor: 0.1,
			MinRotationDeg: -30,
			MaxRotationDeg: 90,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:        60,
			PipeGap:          160,
			SpawnEvery:       120, // 2 seconds at 60fps
			MinPipeHeight:    50,
			CollisionPadding: 4,
			CapHeight:        20,
		},
		Bird: FlappyBird{
			X:      100,
			Radius: 20,
		},
		Hover: FlappyHover{
			Amplitude: 10,
			Step:      0.0556, // one radian every 300ms
		},
		Ground: FlappyGround{
			Height:    20,
			TileWidth: 20,
		},
		Render: RenderConfig{
			PixelsPerCell: 8,
			MinCols:       40,
			MinRows:       18,
		},
		Theme: ThemeConfig{
			Sky:          "#70c5ce",
			Ground:       "#ded895",
			GroundBorder: "#73bf2e",
			Pipe:         "#73bf2e",
			PipeBorder:   "#558c22",
			Bird:         "#f4ce42",
			BirdBorder:   "#000000",
			BirdBeak:     "#f7931e",
			Cloud:        "#ffffff",
			Wing:         "#ffffff",
			Eye:          "#ffffff",
			Pupil:        "#000000",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

// ApplyFlappyPreset rescales the obstacle course for a difficulty preset.
// Normal leaves the config untouched.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	var gap, speed, spawn float64
	switch preset {
	case DifficultyEasy:
		gap, speed, spawn = 1.2, 0.85, 1.15
	case DifficultyHard:
		gap, speed, spawn = 0.85, 1.2, 0.9
	default:
		return
	}

	cfg.Obstacles.PipeGap = math.Round(cfg.Obstacles.PipeGap * gap)
	cfg.Physics.PipeSpeed *= speed
	cfg.Obstacles.SpawnEvery = int(math.Round(float64(cfg.Obstacles.SpawnEvery) * spawn))
	if cfg.Obstacles.SpawnEvery < 1 {
		cfg.Obstacles.SpawnEvery = 1
	}
	// A wider gap needs a taller playfield
	cfg.Render.MinRows = cfg.MinGameRows()
}
