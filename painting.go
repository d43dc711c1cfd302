package genpaint

import "slices"

// Painting is the genome: an ordered sequence of strokes over a canvas the
// size of its target image.
//
// A Painting owns its strokes. Operators never modify an existing Painting;
// Crossover and Mutate return new values, and Render and Fitness only read.
// Later strokes paint over earlier ones.
type Painting struct {
	strokes []Stroke
	width   uint32
	height  uint32
	target  *Target
}

// NewPainting builds a Painting over target from a copy of strokes.
// An empty stroke list is allowed and renders as a blank white canvas.
func NewPainting(target *Target, strokes []Stroke) *Painting {
	return &Painting{
		strokes: slices.Clone(strokes),
		width:   target.Width(),
		height:  target.Height(),
		target:  target,
	}
}

// Strokes returns a copy of the stroke sequence.
func (p *Painting) Strokes() []Stroke {
	return slices.Clone(p.strokes)
}

// Stroke returns the stroke at index i.
func (p *Painting) Stroke(i int) Stroke {
	return p.strokes[i]
}

// Len returns the number of strokes.
func (p *Painting) Len() int {
	return len(p.strokes)
}

// Width returns the canvas width.
func (p *Painting) Width() uint32 { return p.width }

// Height returns the canvas height.
func (p *Painting) Height() uint32 { return p.height }

// Target returns the shared target image.
func (p *Painting) Target() *Target { return p.target }

// Clone returns a deep copy of p sharing only the read-only target.
func (p *Painting) Clone() *Painting {
	return &Painting{
		strokes: slices.Clone(p.strokes),
		width:   p.width,
		height:  p.height,
		target:  p.target,
	}
}

// Equal reports whether p and q hold the same strokes in the same order over
// the same canvas.
func (p *Painting) Equal(q *Painting) bool {
	return p.width == q.width && p.height == q.height && slices.Equal(p.strokes, q.strokes)
}
