// Package genpaint evolves stroke-based paintings toward a target image.
//
// # Overview
//
// A Painting is an ordered list of Strokes over a canvas the size of a
// Target image. The package supplies the capability set an evolutionary loop
// needs and nothing more:
//
//   - Generate: sample an initial Painting (StrategyRandom or StrategyInformed)
//   - Render: rasterize a Painting onto a white Pixmap
//   - Fitness: score a Painting against its Target, higher is better
//   - Crossover and Mutate: produce offspring without touching the parents
//
// The loop itself lives in the evolve sub-package.
//
// # Quick Start
//
//	target, err := genpaint.LoadTarget("input.png")
//	if err != nil {
//	    return err
//	}
//	rng := rand.New(rand.NewPCG(1, 2))
//	p, err := genpaint.Generate(target, genpaint.StrategyInformed,
//	    genpaint.DefaultGeneratorConfig(500), rng)
//	if err != nil {
//	    return err
//	}
//	child := p.Mutate(rng).Crossover(p, rng)
//	fmt.Println(genpaint.Fitness(child))
//	_ = child.Save("out.png")
//
// # Randomness
//
// Every operator takes an explicit *rand.Rand. Nothing in the package reads a
// global source, so a fixed seed replays a run exactly, and independent
// sources per goroutine make parallel use safe.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel. X increases right, Y increases down.
// Stroke coordinates always lie inside the canvas; mutation wraps rather
// than clamps.
package genpaint

// Version is the current version of the library.
const Version = "0.1.0"
