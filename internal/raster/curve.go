package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Point is a pixel-space position.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point     { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) sub(q Point) Point     { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }
func (p Point) length() float64       { return math.Hypot(p.X, p.Y) }

// Cubic is a cubic bezier from P0 to P3 with control points P1 and P2.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t in [0, 1].
func (c Cubic) Eval(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// maxSegments bounds the flattening of very long curves.
const maxSegments = 256

// Flatten approximates the curve with a polyline. The segment count grows
// with the square root of the control polygon length, which keeps the chord
// error well under a pixel for canvas-sized curves.
func (c Cubic) Flatten() []Point {
	poly := c.P1.sub(c.P0).length() + c.P2.sub(c.P1).length() + c.P3.sub(c.P2).length()
	n := int(math.Ceil(math.Sqrt(poly)))
	n = max(1, min(n, maxSegments))

	pts := make([]Point, n+1)
	for i := range pts {
		pts[i] = c.Eval(float64(i) / float64(n))
	}
	return pts
}

// ThickCurve fills the outline of c stroked at the given width and reports
// coverage for every touched pixel inside [0, w) x [0, h). Widths below one
// pixel are widened to one. A curve that collapses to a single point is
// drawn as a width x width square.
func ThickCurve(c Cubic, width float64, w, h int, plot PlotFunc) {
	width = max(width, 1)
	half := width / 2

	pts := c.Flatten()
	left := make([]Point, len(pts))
	right := make([]Point, len(pts))
	degenerate := true
	for i := range pts {
		prev, next := pts[max(i-1, 0)], pts[min(i+1, len(pts)-1)]
		tan := next.sub(prev)
		l := tan.length()
		if l == 0 {
			left[i], right[i] = pts[i], pts[i]
			continue
		}
		degenerate = false
		n := Point{X: -tan.Y / l, Y: tan.X / l}.scale(half)
		left[i] = pts[i].add(n)
		right[i] = pts[i].sub(n)
	}
	if degenerate {
		p := pts[0]
		left = []Point{{p.X - half, p.Y - half}, {p.X + half, p.Y - half}}
		right = []Point{{p.X - half, p.Y + half}, {p.X + half, p.Y + half}}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range append(append([]Point(nil), left...), right...) {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(image.Rect(0, 0, w, h))
	if bounds.Empty() {
		return
	}

	origin := Point{X: float64(bounds.Min.X), Y: float64(bounds.Min.Y)}
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Src
	moveTo(r, left[0].sub(origin))
	for _, p := range left[1:] {
		lineTo(r, p.sub(origin))
	}
	for i := len(right) - 1; i >= 0; i-- {
		lineTo(r, right[i].sub(origin))
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := range bounds.Dy() {
		for x := range bounds.Dx() {
			if a := mask.AlphaAt(x, y).A; a > 0 {
				plot(bounds.Min.X+x, bounds.Min.Y+y, float64(a)/255)
			}
		}
	}
}

func moveTo(r *vector.Rasterizer, p Point) { r.MoveTo(float32(p.X), float32(p.Y)) }
func lineTo(r *vector.Rasterizer, p Point) { r.LineTo(float32(p.X), float32(p.Y)) }
