package vectorfile

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF encodes d as a single-page PDF whose page is exactly the canvas,
// one point per pixel.
func WritePDF(w io.Writer, d Drawing) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: d.Width, Ht: d.Height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	p.SetFillColor(255, 255, 255)
	p.Rect(0, 0, d.Width, d.Height, "F")
	p.SetLineCapStyle("round")

	for _, s := range d.Strokes {
		p.SetDrawColor(int(s.R), int(s.G), int(s.B))
		p.SetLineWidth(max(s.Width, 1))
		if d.Curves {
			p.CurveBezierCubic(s.X0, s.Y0, s.AX, s.AY, s.BX, s.BY, s.X1, s.Y1, "D")
			continue
		}
		x0, y0, x1, y1 := s.straight()
		p.Line(x0, y0, x1, y1)
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("vectorfile: write pdf: %w", err)
	}
	return nil
}
