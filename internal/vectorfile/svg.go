package vectorfile

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const svgStrokeStyle = `fill:none;stroke:rgb(%d,%d,%d);stroke-width:%d;stroke-linecap:round`

// WriteSVG encodes d as an SVG document. svgo works in integer user units,
// so coordinates are rounded to the nearest pixel.
func WriteSVG(w io.Writer, d Drawing) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(px(d.Width), px(d.Height))
	canvas.Rect(0, 0, px(d.Width), px(d.Height), "fill:white")

	for _, s := range d.Strokes {
		style := fmt.Sprintf(svgStrokeStyle, s.R, s.G, s.B, max(px(s.Width), 1))
		if d.Curves {
			canvas.Bezier(px(s.X0), px(s.Y0), px(s.AX), px(s.AY), px(s.BX), px(s.BY), px(s.X1), px(s.Y1), style)
			continue
		}
		x0, y0, x1, y1 := s.straight()
		canvas.Line(px(x0), px(y0), px(x1), px(y1), style)
	}

	canvas.End()
	return ew.err
}

func px(v float64) int {
	return int(math.Round(v))
}

// errWriter remembers the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = fmt.Errorf("vectorfile: write svg: %w", err)
	}
	return n, err
}
