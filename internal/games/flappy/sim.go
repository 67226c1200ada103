package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Simulation owns all mutable game state and advances it one tick at a time.
// It is not safe for concurrent use; a single loop drives Tick, Flap,
// Restart and Resize.
type Simulation struct {
	cfg   config.FlappyConfig
	state SessionState

	bird    Bird
	pipes   *PipeQueue
	spawner *spawner

	score        int
	frame        int // Ticks spent in PLAYING, drives spawning
	hoverPhase   float64
	groundOffset float64

	width, height float64
	events        []Event
}

// New creates a simulation for a world of the given size, in START.
// cfg must already be validated.
func New(cfg config.FlappyConfig, width, height float64, seed int64) *Simulation {
	s := &Simulation{
		cfg:     cfg,
		pipes:   NewPipeQueue(8),
		spawner: newSpawner(seed),
		width:   width,
		height:  height,
	}
	s.Restart()
	return s
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.FlappyConfig {
	return s.cfg
}

// State returns the current session state.
func (s *Simulation) State() SessionState {
	return s.state
}

// Score returns the score of the current session.
func (s *Simulation) Score() int {
	return s.score
}

// Frame returns the number of ticks spent in PLAYING this session.
func (s *Simulation) Frame() int {
	return s.frame
}

// Bird returns a copy of the bird.
func (s *Simulation) Bird() Bird {
	return s.bird
}

// Size returns the world dimensions.
func (s *Simulation) Size() (w, h float64) {
	return s.width, s.height
}

// GroundY returns the y of the ground line.
func (s *Simulation) GroundY() float64 {
	return s.height - s.cfg.Ground.Height
}

// Pipes returns the live pipes, oldest first.
func (s *Simulation) Pipes() []Pipe {
	return s.pipes.AppendTo(nil)
}

// Tick advances the simulation by one frame.
func (s *Simulation) Tick() StepResult {
	s.events = s.events[:0]

	switch s.state {
	case StateStart:
		s.hover()
		s.scrollGround()
	case StatePlaying:
		s.play()
	}

	res := StepResult{State: s.state, Score: s.score}
	if len(s.events) > 0 {
		res.Events = append([]Event(nil), s.events...)
	}
	return res
}

// hover bobs the bird around the vertical center.
func (s *Simulation) hover() {
	s.hoverPhase += s.cfg.Hover.Step
	s.bird.Y = s.height/2 + math.Sin(s.hoverPhase)*s.cfg.Hover.Amplitude
	s.bird.Velocity = 0
	s.bird.Rotation = 0
}

func (s *Simulation) play() {
	s.bird.fall(s.cfg.Physics)

	// Ground contact ends the tick immediately
	if s.bird.Bottom() >= s.GroundY() {
		s.crash(CauseGround)
		return
	}

	// Ceiling is a wall, not a hazard
	if s.bird.Top() <= 0 {
		s.bird.Y = s.bird.Radius
		s.bird.Velocity = 0
	}

	s.frame++
	if s.frame%s.cfg.Obstacles.SpawnEvery == 0 {
		s.spawn()
	}

	s.advancePipes()
	s.resolvePipes()
	s.scrollGround()
}

func (s *Simulation) spawn() {
	lo, hi := HeightRange(s.cfg.Obstacles, s.height, s.cfg.Ground.Height)
	s.pipes.Push(Pipe{X: s.width, TopHeight: s.spawner.topHeight(lo, hi)})
	s.emit(Event{Kind: EventSpawned})
}

// advancePipes scrolls every pipe left and evicts the head once it is off screen.
func (s *Simulation) advancePipes() {
	speed := s.cfg.Physics.PipeSpeed
	width := s.cfg.Obstacles.PipeWidth

	for i := 0; i < s.pipes.Len(); i++ {
		s.pipes.At(i).X -= speed
	}
	for {
		head, ok := s.pipes.Front()
		if !ok || head.Right(width) >= 0 {
			break
		}
		s.pipes.PopFront()
	}
}

// resolvePipes runs collision and scoring against every pipe. A hit does
// not stop the loop; the session ends once all pipes are processed.
func (s *Simulation) resolvePipes() {
	obs := s.cfg.Obstacles
	box := s.bird.Box(obs.CollisionPadding)
	hit := false

	for i := 0; i < s.pipes.Len(); i++ {
		p := s.pipes.At(i)
		if p.Hits(box, obs.PipeWidth, obs.PipeGap) {
			hit = true
		}
		if !p.Scored && box.Left > p.Right(obs.PipeWidth) {
			p.Scored = true
			s.score++
			s.emit(Event{Kind: EventScored})
		}
	}

	if hit {
		s.crash(CausePipe)
	}
}

func (s *Simulation) scrollGround() {
	s.groundOffset = math.Mod(s.groundOffset+s.cfg.Physics.PipeSpeed, s.cfg.Ground.TileWidth)
}

func (s *Simulation) crash(cause CrashCause) {
	s.state = StateGameOver
	s.emit(Event{Kind: EventCrashed, Cause: cause})
}

func (s *Simulation) emit(e Event) {
	e.Score = s.score
	s.events = append(s.events, e)
}

// Flap applies the upward impulse. From START it also begins play.
// It is ignored in GAME_OVER and reports whether it was applied.
// Velocity is set, not added, so repeated flaps never stack.
func (s *Simulation) Flap() bool {
	switch s.state {
	case StateStart:
		s.state = StatePlaying
	case StatePlaying:
	default:
		return false
	}
	s.bird.Velocity = s.cfg.Physics.JumpImpulse
	return true
}

// Restart begins a fresh session in START. The ground offset is kept so the
// strip does not jump.
func (s *Simulation) Restart() {
	s.state = StateStart
	s.bird = Bird{
		X:      s.cfg.Bird.X,
		Y:      s.height / 2,
		Radius: s.cfg.Bird.Radius,
	}
	s.pipes.Clear()
	s.score = 0
	s.frame = 0
	s.hoverPhase = 0
}

// Resize updates the world size. In START the bird is recentered; pipes
// already in flight are left alone.
func (s *Simulation) Resize(width, height float64) {
	s.width = width
	s.height = height
	if s.state == StateStart {
		s.bird.Y = height / 2
	}
}

// Snapshot is a read-only copy of the state a renderer needs.
type Snapshot struct {
	State        SessionState
	Bird         Bird
	Pipes        []Pipe
	Score        int
	Frame        int
	GroundOffset float64
	Width        float64
	Height       float64
	GroundY      float64
}

// Snapshot copies the current state. The result shares nothing with the
// simulation.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		State:        s.state,
		Bird:         s.bird,
		Pipes:        s.Pipes(),
		Score:        s.score,
		Frame:        s.frame,
		GroundOffset: s.groundOffset,
		Width:        s.width,
		Height:       s.height,
		GroundY:      s.GroundY(),
	}
}
