package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Surface is an immediate-mode 2D drawing context in world units.
// Shapes are transformed by the current translate/rotate state; Save and
// Restore push and pop that state.
type Surface interface {
	Size() (w, h float64)
	Clear(c core.Color)
	FillRect(x, y, w, h float64, c core.Color)
	StrokeRect(x, y, w, h, lineWidth float64, c core.Color)
	FillEllipse(cx, cy, rx, ry, rotation float64, c core.Color)
	StrokeEllipse(cx, cy, rx, ry, rotation, lineWidth float64, c core.Color)
	FillPath(pts []core.Point, c core.Color)
	StrokePath(pts []core.Point, closed bool, lineWidth float64, c core.Color)
	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(theta float64)
}

// Line widths, in world units.
const (
	rimWidth    = 2
	stripeWidth = 2
	borderWidth = 3
	outline     = 2
)

// Renderer paints snapshots. It holds no game state.
type Renderer struct {
	obs    config.FlappyObstacles
	ground config.FlappyGround
	pal    config.Palette
}

// NewRenderer builds a renderer from a validated config.
func NewRenderer(cfg config.FlappyConfig) (*Renderer, error) {
	pal, err := cfg.Theme.Palette()
	if err != nil {
		return nil, err
	}
	return &Renderer{obs: cfg.Obstacles, ground: cfg.Ground, pal: pal}, nil
}

// Palette returns the parsed theme.
func (r *Renderer) Palette() config.Palette {
	return r.pal
}

// Render draws one frame of snap onto dst. dst must not be nil.
func (r *Renderer) Render(dst Surface, snap Snapshot) {
	w, h := dst.Size()

	dst.Clear(r.pal.Sky)
	r.drawClouds(dst, w)
	for _, p := range snap.Pipes {
		r.drawPipe(dst, p, snap.GroundY)
	}
	r.drawGround(dst, w, h, snap.GroundY, snap.GroundOffset)
	r.drawBird(dst, snap.Bird)
}

// drawClouds paints two fixed clusters, one anchored to each side.
func (r *Renderer) drawClouds(dst Surface, w float64) {
	puffs := []struct{ x, y, r float64 }{
		{100, 100, 30},
		{140, 100, 40},
		{180, 100, 30},
		{w - 100, 150, 40},
		{w - 60, 160, 30},
	}
	for _, c := range puffs {
		dst.FillEllipse(c.x, c.y, c.r, c.r, 0, r.pal.Cloud)
	}
}

func (r *Renderer) drawPipe(dst Surface, p Pipe, groundY float64) {
	width := r.obs.PipeWidth
	capH := r.obs.CapHeight

	// Top section, rim drawn past the screen edge so only three sides show
	dst.FillRect(p.X, 0, width, p.TopHeight, r.pal.Pipe)
	dst.StrokeRect(p.X, -rimWidth, width, p.TopHeight+rimWidth, rimWidth, r.pal.PipeBorder)
	dst.FillRect(p.X-2, p.TopHeight-capH, width+4, capH, r.pal.Pipe)
	dst.StrokeRect(p.X-2, p.TopHeight-capH, width+4, capH, rimWidth, r.pal.PipeBorder)

	// Bottom section down to the ground line
	y := p.GapBottom(r.obs.PipeGap)
	h := groundY - y
	if h <= 0 {
		return
	}
	dst.FillRect(p.X, y, width, h, r.pal.Pipe)
	dst.StrokeRect(p.X, y, width, h+rimWidth, rimWidth, r.pal.PipeBorder)
	dst.FillRect(p.X-2, y, width+4, capH, r.pal.Pipe)
	dst.StrokeRect(p.X-2, y, width+4, capH, rimWidth, r.pal.PipeBorder)
}

func (r *Renderer) drawGround(dst Surface, w, h, groundY, offset float64) {
	tile := r.ground.TileWidth

	dst.FillRect(0, groundY, w, h-groundY, r.pal.Ground)
	for x := -tile; x < w+tile; x += tile {
		sx := x - offset
		dst.StrokePath([]core.Point{core.Pt(sx, groundY), core.Pt(sx+tile/2, h)}, false, stripeWidth, r.pal.GroundBorder)
	}
	dst.StrokePath([]core.Point{core.Pt(0, groundY), core.Pt(w, groundY)}, false, borderWidth, r.pal.GroundBorder)
}

// drawBird paints the bird in its own frame: origin at the center, facing +x.
func (r *Renderer) drawBird(dst Surface, b Bird) {
	rad := b.Radius
	pal := r.pal

	dst.Save()
	defer dst.Restore()
	dst.Translate(b.X, b.Y)
	dst.Rotate(b.Rotation)

	tail := []core.Point{
		core.Pt(-rad*0.8, 0),
		core.Pt(-rad*1.3, -rad*0.4),
		core.Pt(-rad*1.3, rad*0.4),
	}
	dst.FillPath(tail, pal.Bird)
	dst.StrokePath(tail, true, outline, pal.BirdBorder)

	dst.FillEllipse(0, 0, rad, rad*0.8, 0, pal.Bird)
	dst.StrokeEllipse(0, 0, rad, rad*0.8, 0, outline, pal.BirdBorder)

	dst.FillEllipse(-rad*0.2, rad*0.1, rad*0.5, rad*0.35, -0.2, pal.Wing)
	dst.StrokeEllipse(-rad*0.2, rad*0.1, rad*0.5, rad*0.35, -0.2, outline, pal.BirdBorder)

	for _, beak := range [][]core.Point{
		{core.Pt(rad*0.5, rad*0.1), core.Pt(rad*1.2, rad*0.1), core.Pt(rad*0.5, rad*0.35)},
		{core.Pt(rad*0.5, rad*0.1), core.Pt(rad*1.2, rad*0.1), core.Pt(rad*0.5, -rad*0.2)},
	} {
		dst.FillPath(beak, pal.BirdBeak)
		dst.StrokePath(beak, true, outline, pal.BirdBorder)
	}

	dst.FillEllipse(rad*0.4, -rad*0.35, rad*0.35, rad*0.35, 0, pal.Eye)
	dst.StrokeEllipse(rad*0.4, -rad*0.35, rad*0.35, rad*0.35, 0, outline, pal.BirdBorder)
	dst.FillEllipse(rad*0.55, -rad*0.35, rad*0.12, rad*0.12, 0, pal.Pupil)
}
