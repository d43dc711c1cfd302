package genpaint

import (
	"math/rand/v2"
	"slices"
)

// Crossover combines p and other into a new Painting.
//
// Both parents are cut according to the split policy. Two candidates are
// built, the front of p joined to the back of other and the front of other
// joined to the back of p, and one is returned by a fair coin flip drawn from
// rng. The child takes p's canvas and target. Neither parent is modified.
func (p *Painting) Crossover(other *Painting, rng *rand.Rand, opts ...CrossoverOption) *Painting {
	var o crossoverOptions
	for _, opt := range opts {
		opt(&o)
	}

	cutP := len(p.strokes) / 2
	cutO := min(cutP, len(other.strokes))
	if o.split == SplitProportional {
		cutO = len(other.strokes) / 2
	}

	var strokes []Stroke
	if rng.IntN(2) == 0 {
		strokes = concatStrokes(p.strokes[:cutP], other.strokes[cutO:])
	} else {
		strokes = concatStrokes(other.strokes[:cutO], p.strokes[cutP:])
	}

	return &Painting{
		strokes: strokes,
		width:   p.width,
		height:  p.height,
		target:  p.target,
	}
}

// Mutate returns a perturbed copy of p. p itself is not modified.
//
// Each round picks a stroke index uniformly from the working copy and one of
// three perturbations: shift Start, shift End, grow Width. Shifts add up to
// the jitter on each axis and wrap modulo the canvas size. The mutated stroke is
// then removed from its position and appended, so it paints over the rest;
// an index drawn in a later round therefore refers to the reordered sequence.
func (p *Painting) Mutate(rng *rand.Rand, opts ...MutateOption) *Painting {
	o := defaultMutateOptions()
	for _, opt := range opts {
		opt(&o)
	}

	child := p.Clone()
	if len(child.strokes) == 0 {
		return child
	}

	for range o.rounds {
		i := rng.IntN(len(child.strokes))
		s := child.strokes[i]
		switch rng.IntN(3) {
		case 0:
			s.Start = child.jitter(s.Start, o.jitter, rng)
		case 1:
			s.End = child.jitter(s.End, o.jitter, rng)
		case 2:
			grown := s.Width + rng.Uint32N(o.jitter+1)
			if o.maxWidth > 0 {
				grown = min(grown, max(o.maxWidth, s.Width))
			}
			s.Width = grown
		}
		child.strokes = append(slices.Delete(child.strokes, i, i+1), s)
	}
	return child
}

// jitter shifts pt by up to limit on each axis, wrapping into the canvas.
func (p *Painting) jitter(pt Point, limit uint32, rng *rand.Rand) Point {
	x := (uint64(pt.X) + uint64(rng.Uint32N(limit+1))) % uint64(p.width)
	y := (uint64(pt.Y) + uint64(rng.Uint32N(limit+1))) % uint64(p.height)
	return Point{X: uint32(x), Y: uint32(y)}
}

func concatStrokes(a, b []Stroke) []Stroke {
	out := make([]Stroke, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
