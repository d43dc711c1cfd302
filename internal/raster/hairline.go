package raster

import "math"

// Hairline plots a one-pixel anti-aliased line from (x0, y0) to (x1, y1)
// using Xiaolin Wu's algorithm.
//
// The line is walked along its major axis one pixel at a time. At each step
// the exact minor-axis position is split between the two straddling pixels:
// the nearer receives 1-frac coverage and the farther receives frac. Both
// endpoints are included.
func Hairline(x0, y0, x1, y1 int, plot PlotFunc) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		// Walk along y; swap axes going in and out.
		if y0 > y1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		wuLine(y0, x0, y1, x1, func(x, y int, c float64) { plot(y, x, c) })
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	wuLine(x0, y0, x1, y1, plot)
}

// wuLine assumes x0 <= x1 and |dy| <= dx.
func wuLine(x0, y0, x1, y1 int, plot PlotFunc) {
	dx := x1 - x0
	dy := y1 - y0
	gradient := 0.0
	if dx != 0 {
		gradient = float64(dy) / float64(dx)
	}

	fy := float64(y0)
	for x := x0; x <= x1; x++ {
		iy := math.Floor(fy)
		frac := fy - iy
		plot(x, int(iy), 1-frac)
		plot(x, int(iy)+1, frac)
		fy += gradient
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
