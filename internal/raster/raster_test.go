package raster

import (
	"math"
	"testing"
)

// coverageGrid records the maximum coverage plotted at each pixel.
type coverageGrid struct {
	w, h int
	cov  []float64
}

func newCoverageGrid(w, h int) *coverageGrid {
	return &coverageGrid{w: w, h: h, cov: make([]float64, w*h)}
}

func (g *coverageGrid) plot() PlotFunc {
	return ClipPlot(g.w, g.h, func(x, y int, c float64) {
		i := y*g.w + x
		g.cov[i] = math.Max(g.cov[i], c)
	})
}

func (g *coverageGrid) at(x, y int) float64 {
	return g.cov[y*g.w+x]
}

func (g *coverageGrid) touched() int {
	n := 0
	for _, c := range g.cov {
		if c > 0 {
			n++
		}
	}
	return n
}

func TestClipPlot(t *testing.T) {
	var calls int
	plot := ClipPlot(4, 4, func(int, int, float64) { calls++ })

	plot(-1, 0, 1)
	plot(0, -1, 1)
	plot(4, 0, 1)
	plot(0, 4, 1)
	plot(1, 1, 0)
	plot(1, 1, 0.5)

	if calls != 1 {
		t.Errorf("ClipPlot passed %d calls, want 1", calls)
	}
}

func TestHairline(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		full           [][2]int // pixels that must reach full coverage
		touched        int
	}{
		{"horizontal", 1, 2, 6, 2, [][2]int{{1, 2}, {3, 2}, {6, 2}}, 6},
		{"horizontal reversed", 6, 2, 1, 2, [][2]int{{1, 2}, {6, 2}}, 6},
		{"vertical", 3, 0, 3, 7, [][2]int{{3, 0}, {3, 4}, {3, 7}}, 8},
		{"diagonal", 0, 0, 5, 5, [][2]int{{0, 0}, {2, 2}, {5, 5}}, 6},
		{"single point", 4, 4, 4, 4, [][2]int{{4, 4}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newCoverageGrid(8, 8)
			Hairline(tt.x0, tt.y0, tt.x1, tt.y1, g.plot())

			for _, p := range tt.full {
				if got := g.at(p[0], p[1]); got != 1 {
					t.Errorf("coverage at %v = %v, want 1", p, got)
				}
			}
			if got := g.touched(); got != tt.touched {
				t.Errorf("touched %d pixels, want %d", got, tt.touched)
			}
		})
	}
}

func TestHairlineShallowSplitsCoverage(t *testing.T) {
	g := newCoverageGrid(8, 8)
	Hairline(0, 0, 4, 2, g.plot())

	// At x=1 the exact y is 0.5: both rows get half.
	if got := g.at(1, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("coverage at (1,0) = %v, want 0.5", got)
	}
	if got := g.at(1, 1); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("coverage at (1,1) = %v, want 0.5", got)
	}
}

func TestHairlineClipsOffCanvas(t *testing.T) {
	g := newCoverageGrid(4, 4)
	// Must not panic; only the on-canvas part is plotted.
	Hairline(-3, 1, 10, 1, g.plot())

	if got := g.touched(); got != 4 {
		t.Errorf("touched %d pixels, want 4", got)
	}
}

func TestCubicEval(t *testing.T) {
	c := Cubic{P0: Point{0, 0}, P1: Point{0, 10}, P2: Point{10, 10}, P3: Point{10, 0}}

	if got := c.Eval(0); got != c.P0 {
		t.Errorf("Eval(0) = %v, want %v", got, c.P0)
	}
	if got := c.Eval(1); got != c.P3 {
		t.Errorf("Eval(1) = %v, want %v", got, c.P3)
	}
	mid := c.Eval(0.5)
	if math.Abs(mid.X-5) > 1e-9 || math.Abs(mid.Y-7.5) > 1e-9 {
		t.Errorf("Eval(0.5) = %v, want {5 7.5}", mid)
	}
}

func TestCubicFlatten(t *testing.T) {
	c := Cubic{P0: Point{0, 0}, P1: Point{30, 0}, P2: Point{60, 0}, P3: Point{90, 0}}
	pts := c.Flatten()

	if len(pts) < 2 {
		t.Fatalf("Flatten() returned %d points, want at least 2", len(pts))
	}
	if pts[0] != c.P0 || pts[len(pts)-1] != c.P3 {
		t.Errorf("Flatten() endpoints = %v, %v, want %v, %v", pts[0], pts[len(pts)-1], c.P0, c.P3)
	}

	long := Cubic{P3: Point{1e6, 1e6}, P1: Point{1e6, 0}, P2: Point{0, 1e6}}
	if n := len(long.Flatten()); n != maxSegments+1 {
		t.Errorf("Flatten() of a huge curve returned %d points, want %d", n, maxSegments+1)
	}
}

func TestThickCurveStraight(t *testing.T) {
	g := newCoverageGrid(20, 20)
	c := Cubic{P0: Point{2, 10}, P1: Point{7, 10}, P2: Point{13, 10}, P3: Point{18, 10}}
	ThickCurve(c, 4, 20, 20, g.plot())

	// Pixel centers within two pixels of y=10 are fully covered.
	for _, y := range []int{8, 9} {
		if got := g.at(10, y); got < 0.99 {
			t.Errorf("coverage at (10,%d) = %v, want ~1", y, got)
		}
	}
	if got := g.at(10, 3); got != 0 {
		t.Errorf("coverage at (10,3) = %v, want 0", got)
	}
}

func TestThickCurveDegeneratePoint(t *testing.T) {
	g := newCoverageGrid(10, 10)
	p := Point{5, 5}
	ThickCurve(Cubic{P0: p, P1: p, P2: p, P3: p}, 2, 10, 10, g.plot())

	if got := g.touched(); got != 4 {
		t.Errorf("degenerate curve touched %d pixels, want 4", got)
	}
}

func TestThickCurveOffCanvas(t *testing.T) {
	g := newCoverageGrid(10, 10)
	c := Cubic{P0: Point{50, 50}, P1: Point{60, 50}, P2: Point{70, 50}, P3: Point{80, 50}}
	ThickCurve(c, 3, 10, 10, g.plot())

	if got := g.touched(); got != 0 {
		t.Errorf("off-canvas curve touched %d pixels, want 0", got)
	}
}

func TestHairlineZeroLengthIsPoint(t *testing.T) {
	g := newCoverageGrid(5, 5)
	Hairline(2, 3, 2, 3, g.plot())
	if got := g.at(2, 3); got != 1 {
		t.Errorf("coverage at (2,3) = %v, want 1", got)
	}
	if n := g.touched(); n != 1 {
		t.Errorf("touched %d pixels, want 1", n)
	}
}

func TestHairlineIntegerEndpointsFullCoverage(t *testing.T) {
	g := newCoverageGrid(10, 4)
	Hairline(1, 2, 8, 2, g.plot())
	for _, x := range []int{1, 8} {
		if got := g.at(x, 2); got != 1 {
			t.Errorf("endpoint coverage at (%d,2) = %v, want 1", x, got)
		}
	}
	if g.at(0, 2) != 0 || g.at(9, 2) != 0 {
		t.Error("hairline extends past its endpoints")
	}
}
