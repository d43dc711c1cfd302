// Package raster turns stroke geometry into per-pixel coverage.
//
// The package is color-agnostic: every routine reports coverage through a
// PlotFunc and the caller decides how to blend. Coordinates outside the
// caller's canvas are passed through unchanged; clipping is the PlotFunc's
// job.
package raster

// PlotFunc receives one pixel and its coverage in [0, 1].
type PlotFunc func(x, y int, coverage float64)

// ClipPlot wraps plot so that pixels outside [0, w) x [0, h) and zero
// coverage are dropped.
func ClipPlot(w, h int, plot PlotFunc) PlotFunc {
	return func(x, y int, coverage float64) {
		if x < 0 || x >= w || y < 0 || y >= h || coverage <= 0 {
			return
		}
		plot(x, y, coverage)
	}
}
