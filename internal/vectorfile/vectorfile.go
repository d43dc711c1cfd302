// Package vectorfile writes stroke geometry as resolution-independent SVG
// or PDF documents.
package vectorfile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for extensions other than .svg and .pdf.
var ErrUnsupportedFormat = errors.New("vectorfile: unsupported format")

// Stroke is one stroke in canvas pixel units.
type Stroke struct {
	X0, Y0  float64 // start
	AX, AY  float64 // first control point
	BX, BY  float64 // second control point
	X1, Y1  float64 // end
	R, G, B uint8
	Width   float64
}

// Drawing is a white canvas with strokes painted in order.
type Drawing struct {
	Width, Height float64

	// Curves draws strokes as cubic beziers through their control points.
	// Otherwise strokes are straight and shifted by (Width-1)/2 on both axes
	// to sit on the centre of the raster renderer's offset line bundle.
	Curves bool

	Strokes []Stroke
}

// Supported reports whether path has a vector extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg", ".pdf":
		return true
	}
	return false
}

// Write encodes d to w in the format implied by the extension of path.
func Write(w io.Writer, path string, d Drawing) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		return WriteSVG(w, d)
	case ".pdf":
		return WritePDF(w, d)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// straight returns the endpoints of a straight stroke after the bundle shift.
func (s Stroke) straight() (x0, y0, x1, y1 float64) {
	off := (s.Width - 1) / 2
	return s.X0 + off, s.Y0 + off, s.X1 + off, s.Y1 + off
}
