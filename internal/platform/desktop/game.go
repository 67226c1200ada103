// Package desktop runs the flappy game in an Ebitengine window. The world
// is drawn by the shared software renderer and uploaded once per frame;
// overlays are drawn with ebiten primitives on top.
package desktop

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/raster"
)

// Options configures a desktop Game.
type Options struct {
	Config        config.FlappyConfig
	Runtime       core.RuntimeConfig // ScreenW/ScreenH are the initial window size in pixels
	Best          flappy.ScoreObserver
	Logger        *log.Logger
	ScreenshotDir string
}

// pointer is a press position in layout pixels.
type pointer struct {
	x, y    int
	pressed bool
}

// Game implements ebiten.Game.
type Game struct {
	session  *flappy.Session
	renderer *flappy.Renderer
	canvas   *raster.Canvas
	frame    *ebiten.Image

	cfg     config.FlappyConfig
	logger  *log.Logger
	shotDir string

	input    core.InputFrame
	touchIDs []ebiten.TouchID
	w, h     int
}

// NewGame creates a game sized to opts.Runtime.ScreenW x ScreenH pixels.
func NewGame(opts Options) (*Game, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	renderer, err := flappy.NewRenderer(opts.Config)
	if err != nil {
		return nil, err
	}

	g := &Game{
		renderer: renderer,
		cfg:      opts.Config,
		logger:   logger,
		shotDir:  opts.ScreenshotDir,
		input:    core.NewInputFrame(),
	}
	w, h := g.clampSize(rt.ScreenW, rt.ScreenH)
	g.w, g.h = w, h
	g.canvas = raster.New(w, h)
	g.session = flappy.NewSession(flappy.New(opts.Config, float64(w), float64(h), rt.Seed), opts.Best)
	return g, nil
}

// clampSize keeps the world at least as large as the terminal minimum, so
// the obstacle course always fits between the ceiling and the ground.
func (g *Game) clampSize(w, h int) (int, int) {
	minW, minH := g.cfg.MinWorldSize()
	return max(w, minW), max(h, minH)
}

// Session returns the running session.
func (g *Game) Session() *flappy.Session {
	return g.session
}

// Update polls input and advances one tick.
func (g *Game) Update() error {
	g.input.Clear()
	p := g.poll()
	return g.step(g.input, p)
}

// poll reads this frame's ebiten input into g.input.
func (g *Game) poll() pointer {
	var p pointer

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.input.Set(core.ActionFlap)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.input.Set(core.ActionRestart)
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.input.Set(core.ActionScreenshot)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.input.Set(core.ActionQuit)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.x, p.y = ebiten.CursorPosition()
		p.pressed = true
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 && !p.pressed {
		p.x, p.y = ebiten.TouchPosition(g.touchIDs[0])
		p.pressed = true
	}

	return p
}

// step applies one frame of input, then ticks the session.
func (g *Game) step(in core.InputFrame, p pointer) error {
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionScreenshot) {
		g.saveScreenshot()
	}

	over := g.session.Simulation().State() == flappy.StateGameOver
	switch {
	case over && (in.Has(core.ActionRestart) || in.Has(core.ActionFlap)):
		g.restart()
	case over && p.pressed:
		if l, ok := g.bannerLayout(); ok && p.in(l.button) {
			g.restart()
		}
	case in.Has(core.ActionFlap) || p.pressed:
		g.flap()
	}

	res := g.session.Tick()
	for _, e := range res.Events {
		switch e.Kind {
		case flappy.EventScored:
			g.logger.Debug("pipe cleared", "score", e.Score)
		case flappy.EventCrashed:
			g.logger.Info("session over", "score", e.Score, "cause", e.Cause, "best", g.session.Best())
		}
	}
	return nil
}

func (p pointer) in(r image.Rectangle) bool {
	return image.Pt(p.x, p.y).In(r)
}

func (g *Game) flap() {
	wasStart := g.session.Simulation().State() == flappy.StateStart
	if g.session.Flap() && wasStart {
		g.logger.Debug("session started", "best", g.session.Best())
	}
}

func (g *Game) restart() {
	score := g.session.Simulation().Score()
	if g.session.Restart() {
		g.logger.Debug("session restarted", "last_score", score, "best", g.session.Best())
	}
}

// Layout sizes the world to the window. The simulation is resized only
// when the size actually changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.clampSize(outsideWidth, outsideHeight)
	if w != g.w || h != g.h {
		g.w, g.h = w, h
		g.canvas.Resize(w, h)
		g.session.Resize(float64(w), float64(h))
	}
	return w, h
}

// Draw renders the world and the overlay for the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	g.renderer.Render(g.canvas, snap)

	img := g.canvas.Image()
	if g.frame == nil || g.frame.Bounds().Size() != img.Rect.Size() {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(img.Rect.Dx(), img.Rect.Dy())
	}
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)

	pal := g.renderer.Palette()
	if l, ok := g.bannerLayout(); ok {
		drawBanner(screen, l, pal)
	} else {
		drawHUD(screen, snap.Score, g.session.Best(), pal)
	}
}

func (g *Game) bannerLayout() (bannerLayout, bool) {
	b, ok := flappy.BannerFor(g.session.Snapshot(), g.session.Best())
	if !ok {
		return bannerLayout{}, false
	}
	return layoutBanner(g.w, g.h, b), true
}

func (g *Game) saveScreenshot() {
	g.renderer.Render(g.canvas, g.session.Snapshot())

	name := fmt.Sprintf("%s_%s.png", flappy.GameID, time.Now().Format("20060102_150405"))
	path := filepath.Join(g.shotDir, name)
	if err := g.canvas.SavePNG(path); err != nil {
		g.logger.Warn("screenshot failed", "err", err)
		return
	}
	g.logger.Info("screenshot saved", "path", path)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowTitle("Flappy")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}
