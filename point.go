package genpaint

import "math"

// Point is an integer canvas coordinate.
type Point struct {
	X, Y uint32
}

// Pt is a convenience function to create a Point.
func Pt(x, y uint32) Point {
	return Point{X: x, Y: y}
}

// Float returns the point as a floating-point pair for curve math.
func (p Point) Float() (float64, float64) {
	return float64(p.X), float64(p.Y)
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	dx := float64(q.X) - float64(p.X)
	dy := float64(q.Y) - float64(p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Wrap returns the point folded into [0, w) x [0, h) by modulo.
// A zero dimension leaves that axis unchanged.
func (p Point) Wrap(w, h uint32) Point {
	if w > 0 {
		p.X %= w
	}
	if h > 0 {
		p.Y %= h
	}
	return p
}

// Control derives a bezier control point for the segment p->end.
//
// The point sits at parameter t along the segment and is displaced by offset
// pixels along the left-hand perpendicular. Negative offsets bend to the
// right. The result is rounded and wrapped into a w x h canvas. A
// zero-length segment has no perpendicular, so the control point collapses
// onto p.
func (p Point) Control(end Point, t, offset float64, w, h uint32) Point {
	x0, y0 := p.Float()
	x1, y1 := end.Float()
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return p.Wrap(w, h)
	}
	// Left-hand unit normal of the direction vector.
	nx, ny := -dy/length, dx/length
	cx := x0 + dx*t + nx*offset
	cy := y0 + dy*t + ny*offset
	return Point{X: wrapCoord(cx, w), Y: wrapCoord(cy, h)}
}

// wrapCoord rounds v and wraps it into [0, n) using Euclidean modulo so that
// negative displacements land on the far edge.
func wrapCoord(v float64, n uint32) uint32 {
	i := int64(math.Round(v))
	if n == 0 {
		if i < 0 {
			return 0
		}
		return uint32(i)
	}
	m := i % int64(n)
	if m < 0 {
		m += int64(n)
	}
	return uint32(m)
}
