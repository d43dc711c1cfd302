package genpaint

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/sourcegraph/conc/pool"
)

// SeedConfig describes an initial population.
type SeedConfig struct {
	// TargetPath is the image the population approximates.
	TargetPath string

	// Size is the number of paintings to generate.
	Size int

	Strategy  Strategy
	Generator GeneratorConfig

	// Seed makes the population reproducible. Painting i draws from
	// rand.New(rand.NewPCG(Seed, i)).
	Seed uint64

	// Concurrency caps parallel generation. Zero means one goroutine per
	// painting, limited by the scheduler.
	Concurrency int
}

// Seed loads the target image and generates cfg.Size independent paintings.
// Configuration is validated before any painting is generated; the first
// generation error cancels the remaining work.
func Seed(ctx context.Context, cfg SeedConfig) ([]*Painting, error) {
	target, err := LoadTarget(cfg.TargetPath)
	if err != nil {
		return nil, err
	}
	return SeedTarget(ctx, target, cfg)
}

// SeedTarget is Seed over an already loaded target. cfg.TargetPath is ignored.
func SeedTarget(ctx context.Context, target *Target, cfg SeedConfig) ([]*Painting, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: population size must be positive", ErrInvalidConfig)
	}
	if err := cfg.Generator.Validate(target, cfg.Strategy); err != nil {
		return nil, err
	}

	paintings := make([]*Painting, cfg.Size)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	if cfg.Concurrency > 0 {
		p = p.WithMaxGoroutines(cfg.Concurrency)
	}
	for i := range paintings {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
			painting, err := Generate(target, cfg.Strategy, cfg.Generator, rng)
			if err != nil {
				return fmt.Errorf("painting %d: %w", i, err)
			}
			paintings[i] = painting
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	Logger().Info("population seeded",
		"size", cfg.Size,
		"strategy", cfg.Strategy,
		"strokes", cfg.Generator.StrokeCount(target))
	return paintings, nil
}
