// Package raster provides an in-memory RGBA drawing surface with an affine
// transform stack. Shapes are polygonized and filled with an anti-aliasing
// rasterizer.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ellipseSegments is the polygon resolution used for ellipses.
const ellipseSegments = 48

// Canvas is a drawable RGBA image. The zero value is not usable; call New.
type Canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	xf    affine
	stack []affine
}

// New creates a canvas of w x h pixels.
func New(w, h int) *Canvas {
	c := &Canvas{z: vector.NewRasterizer(1, 1)}
	c.Resize(w, h)
	return c
}

// Resize reallocates the backing image and resets the transform.
// Contents are discarded unless the size is unchanged.
func (c *Canvas) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c.xf = identity()
	c.stack = c.stack[:0]
	if c.img != nil && c.img.Rect.Dx() == w && c.img.Rect.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image returns the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (w, h float64) {
	return float64(c.img.Rect.Dx()), float64(c.img.Rect.Dy())
}

// Bounds returns the pixel bounds.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// At returns the color of one pixel.
func (c *Canvas) At(x, y int) core.Color {
	return core.FromRGBA(c.img.RGBAAt(x, y))
}

// Clear fills the whole canvas, ignoring the transform.
func (c *Canvas) Clear(col core.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
}

// Save pushes the current transform.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.xf)
}

// Restore pops the last saved transform. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.xf = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Translate moves the origin.
func (c *Canvas) Translate(dx, dy float64) {
	c.xf = c.xf.translate(dx, dy)
}

// Rotate turns the axes clockwise by theta radians (y points down).
func (c *Canvas) Rotate(theta float64) {
	c.xf = c.xf.rotate(theta)
}

// FillRect fills an axis-aligned rectangle in local coordinates.
func (c *Canvas) FillRect(x, y, w, h float64, col core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.fill(col, rectPoly(x, y, w, h))
}

// StrokeRect outlines a rectangle; the line is centered on the edges.
func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col core.Color) {
	c.StrokePath(rectPoly(x, y, w, h), true, lineWidth, col)
}

// FillEllipse fills an ellipse centered on (cx, cy), rotated by rotation.
func (c *Canvas) FillEllipse(cx, cy, rx, ry, rotation float64, col core.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	c.fill(col, ellipsePoly(cx, cy, rx, ry, rotation))
}

// StrokeEllipse outlines an ellipse as a ring of the given width.
func (c *Canvas) StrokeEllipse(cx, cy, rx, ry, rotation, lineWidth float64, col core.Color) {
	half := lineWidth / 2
	if half <= 0 {
		return
	}
	outer := ellipsePoly(cx, cy, rx+half, ry+half, rotation)
	if rx-half <= 0 || ry-half <= 0 {
		c.fill(col, outer)
		return
	}
	inner := ellipsePoly(cx, cy, rx-half, ry-half, rotation)
	reverse(inner)
	c.fill(col, outer, inner)
}

// FillPath fills a closed polygon.
func (c *Canvas) FillPath(pts []core.Point, col core.Color) {
	if len(pts) < 3 {
		return
	}
	c.fill(col, pts)
}

// StrokePath draws each segment as a quad of the given width, with square
// joins filled in at every vertex.
func (c *Canvas) StrokePath(pts []core.Point, closed bool, lineWidth float64, col core.Color) {
	if len(pts) < 2 || lineWidth <= 0 {
		return
	}
	half := lineWidth / 2
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}

	polys := make([][]core.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if q := segmentQuad(a, b, half); q != nil {
			polys = append(polys, q)
		}
	}
	for _, p := range pts {
		polys = append(polys, rectPoly(p.X-half, p.Y-half, lineWidth, lineWidth))
	}
	c.fill(col, polys...)
}

// fill transforms, clips and rasterizes polys as one nonzero-winding shape.
// Every polygon must wind the same way unless it is meant as a hole.
func (c *Canvas) fill(col core.Color, polys ...[]core.Point) {
	bounds := c.img.Rect
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	clipped := make([][]core.Point, 0, len(polys))
	for _, poly := range polys {
		pts := make([]core.Point, len(poly))
		for i, p := range poly {
			pts[i] = c.xf.apply(p)
		}
		pts = clipPolygon(pts, float64(bounds.Dx()), float64(bounds.Dy()))
		if len(pts) < 3 {
			continue
		}
		for _, p := range pts {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
		clipped = append(clipped, pts)
	}
	if len(clipped) == 0 {
		return
	}

	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	x1, y1 := int(math.Ceil(maxX)), int(math.Ceil(maxY))
	if x1 <= x0 || y1 <= y0 {
		return
	}

	// Rasterize only the bounding box of the shape
	c.z.Reset(x1-x0, y1-y0)
	c.z.DrawOp = draw.Over
	ox, oy := float64(x0), float64(y0)
	for _, pts := range clipped {
		c.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
		for _, p := range pts[1:] {
			c.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		c.z.ClosePath()
	}
	src := image.NewUniform(col.RGBA())
	c.z.Draw(c.img, image.Rect(x0, y0, x1, y1), src, image.Point{})
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path, creating parent directories.
func (c *Canvas) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raster: create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: close %s: %w", path, err)
	}
	return nil
}
