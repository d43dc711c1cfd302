package genpaint

import (
	"fmt"

	"github.com/gogpu/genpaint/internal/raster"
)

// Renderer rasterizes a Painting onto a fresh white Pixmap of the painting's
// dimensions. Implementations must be deterministic and must not modify the
// Painting, so that one Renderer can serve concurrent evaluations.
type Renderer interface {
	Render(p *Painting) *Pixmap
}

// RenderMode selects a Renderer implementation.
type RenderMode int

const (
	// RenderHairlines draws each stroke as Width parallel anti-aliased
	// one-pixel lines and ignores control points. This is the default.
	RenderHairlines RenderMode = iota

	// RenderCurves draws each stroke as a filled cubic bezier outline of the
	// stroke's width, bending through both control points.
	RenderCurves
)

// String returns the mode name.
func (m RenderMode) String() string {
	switch m {
	case RenderHairlines:
		return "hairlines"
	case RenderCurves:
		return "curves"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// NewRenderer returns the Renderer for mode. Unknown modes fall back to
// RenderHairlines.
func NewRenderer(mode RenderMode) Renderer {
	if mode == RenderCurves {
		return CurveRenderer{}
	}
	return HairlineRenderer{}
}

// Render rasterizes p with the default HairlineRenderer.
func Render(p *Painting) *Pixmap {
	return HairlineRenderer{}.Render(p)
}

// HairlineRenderer approximates stroke width by drawing Width one-pixel lines,
// the i-th offset by i along both axes. Strokes are drawn in order, so later
// strokes cover earlier ones.
type HairlineRenderer struct{}

// Render implements Renderer.
func (HairlineRenderer) Render(p *Painting) *Pixmap {
	pm := NewPixmap(int(p.width), int(p.height))
	for _, s := range p.strokes {
		plot := blendPlot(pm, s.Color)
		x0, y0 := int(s.Start.X), int(s.Start.Y)
		x1, y1 := int(s.End.X), int(s.End.Y)
		for i := range int(s.Width) {
			raster.Hairline(x0+i, y0+i, x1+i, y1+i, plot)
		}
	}
	return pm
}

// CurveRenderer draws true thick bezier strokes.
type CurveRenderer struct{}

// Render implements Renderer.
func (CurveRenderer) Render(p *Painting) *Pixmap {
	pm := NewPixmap(int(p.width), int(p.height))
	for _, s := range p.strokes {
		c := raster.Cubic{
			P0: rasterPoint(s.Start),
			P1: rasterPoint(s.ControlA),
			P2: rasterPoint(s.ControlB),
			P3: rasterPoint(s.End),
		}
		raster.ThickCurve(c, float64(s.Width), pm.width, pm.height, blendPlot(pm, s.Color))
	}
	return pm
}

// blendPlot lerps c into pm by coverage.
func blendPlot(pm *Pixmap, c RGB8) raster.PlotFunc {
	return raster.ClipPlot(pm.width, pm.height, func(x, y int, coverage float64) {
		pm.BlendPixel(x, y, c, coverage)
	})
}

// rasterPoint maps a canvas coordinate to its pixel center.
func rasterPoint(p Point) raster.Point {
	x, y := p.Float()
	return raster.Point{X: x + 0.5, Y: y + 0.5}
}
