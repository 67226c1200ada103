package raster

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// affine maps (x, y) to (a*x + c*y + e, b*x + d*y + f).
type affine struct {
	a, b, c, d, e, f float64
}

func identity() affine {
	return affine{a: 1, d: 1}
}

func (m affine) apply(p core.Point) core.Point {
	return core.Point{
		X: m.a*p.X + m.c*p.Y + m.e,
		Y: m.b*p.X + m.d*p.Y + m.f,
	}
}

func (m affine) translate(dx, dy float64) affine {
	m.e += m.a*dx + m.c*dy
	m.f += m.b*dx + m.d*dy
	return m
}

func (m affine) rotate(theta float64) affine {
	sin, cos := math.Sincos(theta)
	return affine{
		a: m.a*cos + m.c*sin,
		b: m.b*cos + m.d*sin,
		c: m.c*cos - m.a*sin,
		d: m.d*cos - m.b*sin,
		e: m.e,
		f: m.f,
	}
}

// Every helper below returns polygons with positive signed area, so that
// overlapping pieces of one shape add up instead of cancelling.

func rectPoly(x, y, w, h float64) []core.Point {
	return []core.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

func ellipsePoly(cx, cy, rx, ry, rotation float64) []core.Point {
	sin, cos := math.Sincos(rotation)
	pts := make([]core.Point, ellipseSegments)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / ellipseSegments
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		pts[i] = core.Point{
			X: cx + ex*cos - ey*sin,
			Y: cy + ex*sin + ey*cos,
		}
	}
	return pts
}

// segmentQuad returns the rectangle of half-width half around segment ab,
// or nil for a degenerate segment.
func segmentQuad(a, b core.Point, half float64) []core.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	nx, ny := -dy/length*half, dx/length*half
	q := []core.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
	if signedArea(q) < 0 {
		reverse(q)
	}
	return q
}

// signedArea is positive for polygons that wind clockwise on screen.
func signedArea(pts []core.Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func reverse(pts []core.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// clipPolygon clips a polygon to [0, w] x [0, h] (Sutherland-Hodgman).
// Orientation is preserved.
func clipPolygon(pts []core.Point, w, h float64) []core.Point {
	edges := []struct {
		inside func(core.Point) bool
		cross  func(a, b core.Point) core.Point
	}{
		{
			func(p core.Point) bool { return p.X >= 0 },
			func(a, b core.Point) core.Point { return lerpX(a, b, 0) },
		},
		{
			func(p core.Point) bool { return p.X <= w },
			func(a, b core.Point) core.Point { return lerpX(a, b, w) },
		},
		{
			func(p core.Point) bool { return p.Y >= 0 },
			func(a, b core.Point) core.Point { return lerpY(a, b, 0) },
		},
		{
			func(p core.Point) bool { return p.Y <= h },
			func(a, b core.Point) core.Point { return lerpY(a, b, h) },
		},
	}

	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]core.Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func lerpX(a, b core.Point, x float64) core.Point {
	t := (x - a.X) / (b.X - a.X)
	return core.Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func lerpY(a, b core.Point, y float64) core.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return core.Point{X: a.X + t*(b.X-a.X), Y: y}
}
