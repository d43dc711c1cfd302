package evolve

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Generation summarizes the population after one generation.
type Generation struct {
	Index int
	Best  int64
	Worst int64
	Mean  float64
}

// History is the per-generation record of a run.
type History []Generation

// Improvement returns the best fitness gained since the initial population.
func (h History) Improvement() int64 {
	if len(h) == 0 {
		return 0
	}
	return h[len(h)-1].Best - h[0].Best
}

// Plot draws best and mean fitness against generation and saves the chart
// to path. The image format follows the extension (.png, .svg, .pdf, ...).
func (h History) Plot(title, path string) error {
	if len(h) == 0 {
		return fmt.Errorf("evolve: plot %q: empty history", path)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness"

	best := make(plotter.XYs, len(h))
	mean := make(plotter.XYs, len(h))
	for i, g := range h {
		best[i].X, best[i].Y = float64(g.Index), float64(g.Best)
		mean[i].X, mean[i].Y = float64(g.Index), g.Mean
	}

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return fmt.Errorf("evolve: plot best: %w", err)
	}
	meanLine, err := plotter.NewLine(mean)
	if err != nil {
		return fmt.Errorf("evolve: plot mean: %w", err)
	}
	meanLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best", bestLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("evolve: save plot %q: %w", path, err)
	}
	return nil
}
