// Command genpaint evolves a painting of brush strokes toward a target image.
//
// Usage:
//
//	genpaint -n 40 -s 500 -f target.png [-i 100] [-e stochastic] [-r]
//
// Two samples from the initial population are written to sample.png and
// sample2.png in the working directory. The fittest painting is saved under
// a name that records the run parameters unless -o is given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/genpaint"
	"github.com/gogpu/genpaint/evolve"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "genpaint:", err)
		os.Exit(1)
	}
}

type options struct {
	population int
	strokes    uint
	file       string
	iterations int
	verbosity  int
	random     bool
	selector   string
	width      uint
	curve      uint
	minLength  uint
	maxLength  uint
	seed       uint64
	curves     bool
	output     string
	plot       string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("genpaint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&o.population, "n", 0, "size of the initial population (required)")
	fs.UintVar(&o.strokes, "s", 0, "number of strokes per painting (required)")
	fs.StringVar(&o.file, "f", "", "target image file (required)")
	fs.IntVar(&o.iterations, "i", 100, "number of generations")
	fs.IntVar(&o.verbosity, "v", 0, "verbosity from 0 to 2")
	fs.BoolVar(&o.random, "r", false, "generate the initial population at random instead of informed")
	fs.StringVar(&o.selector, "e", evolve.SelectorStochastic, "selector: stochastic, maximize, tournament or parmaximize")
	fs.UintVar(&o.width, "w", 5, "maximum stroke width")
	fs.UintVar(&o.curve, "c", 5, "maximum stroke curve in pixels")
	fs.UintVar(&o.minLength, "m", 5, "minimum stroke length")
	fs.UintVar(&o.maxLength, "M", 150, "maximum stroke length")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.BoolVar(&o.curves, "curves", false, "render strokes as bezier curves")
	fs.StringVar(&o.output, "o", "", "output file, defaults to a name built from the parameters")
	fs.StringVar(&o.plot, "plot", "", "write a fitness-per-generation chart to this file")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch {
	case o.population <= 0:
		return o, fmt.Errorf("-n must be a positive population size")
	case o.strokes == 0:
		return o, fmt.Errorf("-s must be a positive stroke count")
	case o.file == "":
		return o, fmt.Errorf("-f target image is required")
	case o.iterations < 0:
		return o, fmt.Errorf("-i must not be negative")
	}
	return o, nil
}

func (o options) level() slog.Level {
	switch {
	case o.verbosity >= 2:
		return slog.LevelDebug
	case o.verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func (o options) strategy() genpaint.Strategy {
	if o.random {
		return genpaint.StrategyRandom
	}
	return genpaint.StrategyInformed
}

func (o options) mode() genpaint.RenderMode {
	if o.curves {
		return genpaint.RenderCurves
	}
	return genpaint.RenderHairlines
}

func (o options) generator() genpaint.GeneratorConfig {
	return genpaint.GeneratorConfig{
		Strokes:   uint32(o.strokes),
		MaxWidth:  uint32(o.width),
		MinLength: uint32(o.minLength),
		MaxLength: uint32(o.maxLength),
		MaxCurve:  uint32(o.curve),
	}
}

func (o options) outputPath() string {
	if o.output != "" {
		return o.output
	}
	return fmt.Sprintf("%s_i%d_s%d_p%d_r%t_mM%d-%d.png",
		o.selector, o.iterations, o.strokes, o.population, o.random, o.minLength, o.maxLength)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if o.seed == 0 {
		o.seed = uint64(time.Now().UnixNano())
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: o.level()})).
		With("run", uuid.NewString())
	genpaint.SetLogger(logger)
	defer genpaint.SetLogger(nil)

	p := message.NewPrinter(language.English)
	if o.verbosity > 0 {
		p.Fprintf(stdout, "population: %d\nstrokes: %d\nimage: %s\niterations: %d\n", o.population, o.strokes, o.file, o.iterations)
		p.Fprintf(stdout, "random generation: %t\nstroke width: %d\nstroke length: %d-%d\nmax curve: %d\nseed: %d\n",
			o.random, o.width, o.minLength, o.maxLength, o.curve, o.seed)
	}

	gen := o.generator()
	pop, err := genpaint.Seed(ctx, genpaint.SeedConfig{
		TargetPath: o.file,
		Size:       o.population,
		Strategy:   o.strategy(),
		Generator:  gen,
		Seed:       o.seed,
	})
	if err != nil {
		return err
	}

	for i, name := range []string{"sample.png", "sample2.png"} {
		if i >= len(pop) {
			break
		}
		if err := pop[i].Save(name, genpaint.WithRenderMode(o.mode())); err != nil {
			return err
		}
	}

	selector, err := evolve.ParseSelector(o.selector, o.population)
	if errors.Is(err, evolve.ErrUnknownSelector) {
		logger.Warn("unknown selector, using stochastic", "selector", o.selector)
		selector, err = evolve.ParseSelector(evolve.SelectorStochastic, o.population)
	}
	if err != nil {
		return err
	}

	ops := evolve.PaintingOperators(
		genpaint.Evaluator{Renderer: genpaint.NewRenderer(o.mode())},
		genpaint.WithMaxWidth(gen.MaxWidth),
	)
	sim, err := evolve.New(pop, ops, evolve.Config{
		MaxIterations: o.iterations,
		Selector:      selector,
		Seed:          o.seed,
	})
	if err != nil {
		return err
	}
	if err := sim.Run(ctx); err != nil {
		return err
	}

	best := sim.Best()
	p.Fprintf(stdout, "the most fit member is: %d of %d\n", best.Fitness, genpaint.MaxFitness(best.Genome.Target()))

	out := o.outputPath()
	if err := best.Genome.Save(out, genpaint.WithRenderMode(o.mode())); err != nil {
		return err
	}
	p.Fprintf(stdout, "saved %s\n", out)

	if o.plot != "" {
		title := fmt.Sprintf("%s, %d strokes, population %d", o.selector, o.strokes, o.population)
		if err := sim.History().Plot(title, o.plot); err != nil {
			return err
		}
	}
	return nil
}
