package evolve

import (
	"math/rand/v2"

	"github.com/gogpu/genpaint"
)

// PaintingOperators adapts genpaint paintings to the simulator. Fitness is
// scored by e; mutation uses opts.
func PaintingOperators(e genpaint.Evaluator, opts ...genpaint.MutateOption) Operators[*genpaint.Painting] {
	return Operators[*genpaint.Painting]{
		Fitness: e.Fitness,
		Crossover: func(a, b *genpaint.Painting, rng *rand.Rand) *genpaint.Painting {
			return a.Crossover(b, rng)
		},
		Mutate: func(p *genpaint.Painting, rng *rand.Rand) *genpaint.Painting {
			return p.Mutate(rng, opts...)
		},
	}
}
