// Package evolve runs a generational genetic algorithm over any genome type.
//
// The loop is composed from three operators supplied by the caller:
// fitness, crossover and mutation. Each generation a Selector picks parent
// pairs, every pair yields one child (crossover then mutate), and the
// children replace the least fit individuals. Fitness is evaluated in
// parallel; every other step draws from a single seeded random source, so a
// run is reproducible for a given seed and worker count.
package evolve

import (
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/gogpu/genpaint"
	"github.com/gogpu/genpaint/internal/parallel"
)

// Operators are the genome-specific capabilities the simulator needs.
// Crossover and Mutate must return new genomes and leave their inputs
// untouched. Fitness must be safe for concurrent use.
type Operators[G any] struct {
	Fitness   func(g G) int64
	Crossover func(a, b G, rng *rand.Rand) G
	Mutate    func(g G, rng *rand.Rand) G
}

func (o Operators[G]) validate() error {
	switch {
	case o.Fitness == nil:
		return fmt.Errorf("%w: Fitness", ErrMissingOperator)
	case o.Crossover == nil:
		return fmt.Errorf("%w: Crossover", ErrMissingOperator)
	case o.Mutate == nil:
		return fmt.Errorf("%w: Mutate", ErrMissingOperator)
	}
	return nil
}

// Config controls a run.
type Config struct {
	// MaxIterations is the number of generations to run.
	MaxIterations int

	// Selector picks parents. Nil means Stochastic{DefaultSelectCount}.
	Selector Selector

	// Seed feeds the random source used for selection and breeding.
	Seed uint64

	// Workers bounds parallel fitness evaluation. Zero means GOMAXPROCS.
	Workers int
}

// Individual is a genome with its cached fitness.
type Individual[G any] struct {
	Genome  G
	Fitness int64
}

// Simulator evolves a population in place. It is not safe for concurrent
// use.
type Simulator[G any] struct {
	ops     Operators[G]
	cfg     Config
	rng     *rand.Rand
	genomes []G
	pop     []Individual[G]
	history History
	iter    int
}

// New builds a simulator over a copy of population. Nothing is evaluated
// until Run.
func New[G any](population []G, ops Operators[G], cfg Config) (*Simulator[G], error) {
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}
	if err := ops.validate(); err != nil {
		return nil, err
	}
	if cfg.MaxIterations < 0 {
		return nil, fmt.Errorf("%w: negative iteration count %d", genpaint.ErrInvalidConfig, cfg.MaxIterations)
	}
	if cfg.Selector == nil {
		cfg.Selector = Stochastic{Count: DefaultSelectCount}
	}
	if err := cfg.Selector.Validate(len(population)); err != nil {
		return nil, err
	}

	return &Simulator[G]{
		ops:     ops,
		cfg:     cfg,
		rng:     rand.New(rand.NewPCG(cfg.Seed, 0x5851f42d4c957f2d)),
		genomes: slices.Clone(population),
	}, nil
}

// Run scores the initial population and then runs up to MaxIterations
// generations. It stops early, returning ctx.Err(), when ctx is done; the
// population and history keep everything completed so far.
func (s *Simulator[G]) Run(ctx context.Context) error {
	pool := parallel.NewPool(s.cfg.Workers)
	defer pool.Close()

	log := genpaint.Logger()
	start := time.Now()

	if s.pop == nil {
		scores, err := parallel.Map(ctx, pool, s.genomes, s.ops.Fitness)
		if err != nil {
			return err
		}
		s.pop = make([]Individual[G], len(s.genomes))
		for i, g := range s.genomes {
			s.pop[i] = Individual[G]{Genome: g, Fitness: scores[i]}
		}
		s.genomes = nil
		s.record()
	}

	for s.iter < s.cfg.MaxIterations {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.step(ctx, pool); err != nil {
			return err
		}
		s.iter++
		g := s.history[len(s.history)-1]
		log.Info("generation finished", "generation", g.Index, "best", g.Best, "mean", g.Mean)
	}

	log.Info("evolution finished",
		"generations", s.iter,
		"best", s.Best().Fitness,
		"elapsed", time.Since(start))
	return nil
}

func (s *Simulator[G]) step(ctx context.Context, pool *parallel.Pool) error {
	fitness := make([]int64, len(s.pop))
	for i, ind := range s.pop {
		fitness[i] = ind.Fitness
	}

	pairs := s.cfg.Selector.Select(fitness, s.rng)
	children := make([]G, len(pairs))
	for i, pr := range pairs {
		child := s.ops.Crossover(s.pop[pr.A].Genome, s.pop[pr.B].Genome, s.rng)
		children[i] = s.ops.Mutate(child, s.rng)
	}

	scores, err := parallel.Map(ctx, pool, children, s.ops.Fitness)
	if err != nil {
		return err
	}

	// Fittest first; the tail is replaced by the children.
	slices.SortStableFunc(s.pop, func(a, b Individual[G]) int {
		return cmp.Compare(b.Fitness, a.Fitness)
	})
	n := min(len(children), len(s.pop))
	base := len(s.pop) - n
	for i := range n {
		s.pop[base+i] = Individual[G]{Genome: children[i], Fitness: scores[i]}
	}
	s.record()
	return nil
}

func (s *Simulator[G]) record() {
	g := Generation{Index: len(s.history), Best: s.pop[0].Fitness, Worst: s.pop[0].Fitness}
	var sum float64
	for _, ind := range s.pop {
		g.Best = max(g.Best, ind.Fitness)
		g.Worst = min(g.Worst, ind.Fitness)
		sum += float64(ind.Fitness)
	}
	g.Mean = sum / float64(len(s.pop))
	s.history = append(s.history, g)
}

// Best returns the fittest individual. Before Run it returns the first
// genome with zero fitness.
func (s *Simulator[G]) Best() Individual[G] {
	if s.pop == nil {
		return Individual[G]{Genome: s.genomes[0]}
	}
	best := s.pop[0]
	for _, ind := range s.pop[1:] {
		if ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

// Population returns a copy of the current scored population.
func (s *Simulator[G]) Population() []Individual[G] {
	return slices.Clone(s.pop)
}

// Iterations returns the number of generations completed.
func (s *Simulator[G]) Iterations() int { return s.iter }

// History returns per-generation statistics. Entry 0 describes the initial
// population.
func (s *Simulator[G]) History() History {
	return slices.Clone(s.history)
}
