// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for the flappy game.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// FlappyConfig contains all configuration for the Flappy game.
// Values are fixed for the lifetime of a simulation.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics" toml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles" toml:"obstacles"`
	Bird      FlappyBird      `yaml:"bird" toml:"bird"`
	Hover     FlappyHover     `yaml:"hover" toml:"hover"`
	Ground    FlappyGround    `yaml:"ground" toml:"ground"`
	Render    RenderConfig    `yaml:"render" toml:"render"`
	Theme     ThemeConfig     `yaml:"theme" toml:"theme"`
}

// FlappyPhysics defines physics parameters, per tick.
type FlappyPhysics struct {
	Gravity        float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse" toml:"jump_impulse"` // negative = up
	PipeSpeed      float64 `yaml:"pipe_speed" toml:"pipe_speed"`
	RotationFactor float64 `yaml:"rotation_factor" toml:"rotation_factor"` // radians per unit of velocity
	MinRotationDeg float64 `yaml:"min_rotation_deg" toml:"min_rotation_deg"`
	MaxRotationDeg float64 `yaml:"max_rotation_deg" toml:"max_rotation_deg"`
}

// MinRotation returns the lower rotation clamp in radians.
func (p FlappyPhysics) MinRotation() float64 {
	return p.MinRotationDeg * math.Pi / 180
}

// MaxRotation returns the upper rotation clamp in radians.
func (p FlappyPhysics) MaxRotation() float64 {
	return p.MaxRotationDeg * math.Pi / 180
}

// FlappyObstacles defines pipe parameters.
type FlappyObstacles struct {
	PipeWidth        float64 `yaml:"pipe_width" toml:"pipe_width"`
	PipeGap          float64 `yaml:"pipe_gap" toml:"pipe_gap"`
	SpawnEvery       int     `yaml:"spawn_every" toml:"spawn_every"` // ticks between spawns
	MinPipeHeight    int     `yaml:"min_pipe_height" toml:"min_pipe_height"`
	CollisionPadding float64 `yaml:"collision_padding" toml:"collision_padding"`
	CapHeight        float64 `yaml:"cap_height" toml:"cap_height"`
}

// FlappyBird defines the bird's fixed geometry.
type FlappyBird struct {
	X      float64 `yaml:"x" toml:"x"`
	Radius float64 `yaml:"radius" toml:"radius"`
}

// FlappyHover defines the idle bobbing on the start screen.
type FlappyHover struct {
	Amplitude float64 `yaml:"amplitude" toml:"amplitude"`
	Step      float64 `yaml:"step" toml:"step"` // radians per tick
}

// FlappyGround defines the ground strip.
type FlappyGround struct {
	Height    float64 `yaml:"height" toml:"height"`
	TileWidth float64 `yaml:"tile_width" toml:"tile_width"`
}

// RenderConfig controls how the world maps onto a terminal.
type RenderConfig struct {
	PixelsPerCell int `yaml:"pixels_per_cell" toml:"pixels_per_cell"`
	MinCols       int `yaml:"min_cols" toml:"min_cols"`
	MinRows       int `yaml:"min_rows" toml:"min_rows"`
}

// ThemeConfig holds hex colors for every drawn element.
type ThemeConfig struct {
	Sky          string `yaml:"sky" toml:"sky"`
	Ground       string `yaml:"ground" toml:"ground"`
	GroundBorder string `yaml:"ground_border" toml:"ground_border"`
	Pipe         string `yaml:"pipe" toml:"pipe"`
	PipeBorder   string `yaml:"pipe_border" toml:"pipe_border"`
	Bird         string `yaml:"bird" toml:"bird"`
	BirdBorder   string `yaml:"bird_border" toml:"bird_border"`
	BirdBeak     string `yaml:"bird_beak" toml:"bird_beak"`
	Cloud        string `yaml:"cloud" toml:"cloud"`
	Wing         string `yaml:"wing" toml:"wing"`
	Eye          string `yaml:"eye" toml:"eye"`
	Pupil        string `yaml:"pupil" toml:"pupil"`
}

// Palette is a parsed ThemeConfig.
type Palette struct {
	Sky, Ground, GroundBorder  core.Color
	Pipe, PipeBorder           core.Color
	Bird, BirdBorder, BirdBeak core.Color
	Cloud, Wing, Eye, Pupil    core.Color
}

// Palette parses every theme color.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"sky", t.Sky, &p.Sky},
		{"ground", t.Ground, &p.Ground},
		{"ground_border", t.GroundBorder, &p.GroundBorder},
		{"pipe", t.Pipe, &p.Pipe},
		{"pipe_border", t.PipeBorder, &p.PipeBorder},
		{"bird", t.Bird, &p.Bird},
		{"bird_border", t.BirdBorder, &p.BirdBorder},
		{"bird_beak", t.BirdBeak, &p.BirdBeak},
		{"cloud", t.Cloud, &p.Cloud},
		{"wing", t.Wing, &p.Wing},
		{"eye", t.Eye, &p.Eye},
		{"pupil", t.Pupil, &p.Pupil},
	}
	for _, f := range fields {
		c, err := core.ParseHex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: theme.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// MinWorldHeight is the smallest world height in which every spawned gap,
// with min_pipe_height above and below it, ends above the ground line.
func (c FlappyConfig) MinWorldHeight() float64 {
	return c.Ground.Height + c.Obstacles.PipeGap + 2*float64(c.Obstacles.MinPipeHeight)
}

// MinGameRows is the fewest terminal rows the playfield may have. It is
// render.min_rows, raised when the obstacle course needs more height.
func (c FlappyConfig) MinGameRows() int {
	rowPx := float64(2 * max(c.Render.PixelsPerCell, 1))
	return max(c.Render.MinRows, int(math.Ceil(c.MinWorldHeight()/rowPx)))
}

// MinWorldSize is the smallest world, in pixels, a frontend may create.
func (c FlappyConfig) MinWorldSize() (w, h int) {
	ppc := c.Render.PixelsPerCell
	return c.Render.MinCols * ppc, c.MinGameRows() * 2 * ppc
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (upward)"},
		{c.Physics.PipeSpeed > 0, "physics.pipe_speed must be positive"},
		{c.Physics.MinRotationDeg <= c.Physics.MaxRotationDeg, "physics.min_rotation_deg exceeds max_rotation_deg"},
		{c.Obstacles.PipeWidth > 0, "obstacles.pipe_width must be positive"},
		{c.Obstacles.PipeGap > 0, "obstacles.pipe_gap must be positive"},
		{c.Obstacles.SpawnEvery > 0, "obstacles.spawn_every must be positive"},
		{c.Obstacles.MinPipeHeight >= 0, "obstacles.min_pipe_height must not be negative"},
		{c.Obstacles.CollisionPadding >= 0, "obstacles.collision_padding must not be negative"},
		{c.Obstacles.CollisionPadding < c.Bird.Radius, "obstacles.collision_padding must be smaller than bird.radius"},
		{c.Bird.Radius > 0, "bird.radius must be positive"},
		{c.Bird.X >= 0, "bird.x must not be negative"},
		{c.Ground.Height >= 0, "ground.height must not be negative"},
		{c.Ground.TileWidth > 0, "ground.tile_width must be positive"},
		{c.Render.PixelsPerCell > 0, "render.pixels_per_cell must be positive"},
		{c.Render.MinCols > 0, "render.min_cols must be positive"},
		{c.Render.MinRows > 0, "render.min_rows must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.msg)
		}
	}
	if need := c.MinGameRows(); c.Render.MinRows < need {
		return fmt.Errorf("%w: render.min_rows %d cannot fit ground, gap and pipe margins (%v px), need %d",
			ErrInvalid, c.Render.MinRows, c.MinWorldHeight(), need)
	}
	if _, err := c.Theme.Palette(); err != nil {
		return err
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}
