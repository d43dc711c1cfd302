package genpaint

import (
	"fmt"
	"io"

	gpimage "github.com/gogpu/genpaint/internal/image"
	"github.com/gogpu/genpaint/internal/vectorfile"
)

// SaveOption configures Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	mode RenderMode
}

// WithRenderMode selects the renderer for raster output and the stroke
// geometry for vector output. The default is RenderHairlines.
func WithRenderMode(mode RenderMode) SaveOption {
	return func(o *saveOptions) {
		o.mode = mode
	}
}

// Save writes p to path in the format implied by the extension.
//
// Raster extensions (.png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff) render the
// painting and encode the pixels. Vector extensions (.svg, .pdf) write the
// stroke geometry directly. The write is all-or-nothing.
func (p *Painting) Save(path string, opts ...SaveOption) error {
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}

	var err error
	if vectorfile.Supported(path) {
		err = gpimage.WriteAtomic(path, func(w io.Writer) error {
			return vectorfile.Write(w, path, p.drawing(o.mode))
		})
	} else {
		err = gpimage.Save(path, NewRenderer(o.mode).Render(p))
	}
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrSave, path, err)
	}

	Logger().Info("painting saved", "path", path, "strokes", len(p.strokes), "mode", o.mode)
	return nil
}

// Save encodes pm in the raster format implied by the extension of path.
func (pm *Pixmap) Save(path string) error {
	if err := gpimage.Save(path, pm); err != nil {
		return fmt.Errorf("%w %q: %w", ErrSave, path, err)
	}
	return nil
}

func (p *Painting) drawing(mode RenderMode) vectorfile.Drawing {
	d := vectorfile.Drawing{
		Width:   float64(p.width),
		Height:  float64(p.height),
		Curves:  mode == RenderCurves,
		Strokes: make([]vectorfile.Stroke, len(p.strokes)),
	}
	for i, s := range p.strokes {
		vs := &d.Strokes[i]
		vs.X0, vs.Y0 = s.Start.Float()
		vs.AX, vs.AY = s.ControlA.Float()
		vs.BX, vs.BY = s.ControlB.Float()
		vs.X1, vs.Y1 = s.End.Float()
		vs.R, vs.G, vs.B = s.Color.R, s.Color.G, s.Color.B
		vs.Width = float64(s.Width)
	}
	return d
}
