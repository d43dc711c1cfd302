package genpaint

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Strategy selects how an initial Painting is sampled.
type Strategy int

const (
	// StrategyInformed colors each stroke from the target pixel under its
	// start point. It converges faster than StrategyRandom.
	StrategyInformed Strategy = iota

	// StrategyRandom colors each stroke from an unrelated random target pixel.
	StrategyRandom
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyInformed:
		return "informed"
	case StrategyRandom:
		return "random"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "random" or "informed", ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "informed":
		return StrategyInformed, nil
	case "random":
		return StrategyRandom, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, name)
}

// LengthBound is the acceptance test applied to a sampled stroke length.
type LengthBound int

const (
	// LengthBoundDefault picks the strategy's historical policy:
	// inclusive for StrategyRandom, exclusive for StrategyInformed. These
	// mirror the legacy resampling loops, which retried while
	// d < min || d > max for random paintings and while
	// d <= min || d >= max for informed ones.
	LengthBoundDefault LengthBound = iota

	// InclusiveLengthBound accepts min <= length <= max.
	InclusiveLengthBound

	// ExclusiveLengthBound accepts min < length < max.
	ExclusiveLengthBound
)

// Accepts reports whether length d passes the bound.
func (b LengthBound) Accepts(d, lo, hi float64) bool {
	if b == ExclusiveLengthBound {
		return d > lo && d < hi
	}
	return d >= lo && d <= hi
}

func (b LengthBound) resolve(s Strategy) LengthBound {
	if b != LengthBoundDefault {
		return b
	}
	if s == StrategyRandom {
		return InclusiveLengthBound
	}
	return ExclusiveLengthBound
}

// reachable reports whether some pair of pixels on a w x h canvas lies at
// a distance the bound accepts. Endpoint distances are square roots of
// dx*dx + dy*dy, so the test runs on exact squared integers.
func (b LengthBound) reachable(lo, hi, w, h uint32) bool {
	lo2, hi2 := uint64(lo)*uint64(lo), uint64(hi)*uint64(hi)
	if b == ExclusiveLengthBound {
		lo2++
		hi2--
	}
	for dx := uint64(0); dx < uint64(w) && dx*dx <= hi2; dx++ {
		// Smallest dy that reaches lo along this column.
		var dy uint64
		if dx*dx < lo2 {
			dy = ceilSqrt(lo2 - dx*dx)
		}
		if dy < uint64(h) && dx*dx+dy*dy <= hi2 {
			return true
		}
	}
	return false
}

func (b LengthBound) interval(lo, hi uint32) string {
	if b == ExclusiveLengthBound {
		return fmt.Sprintf("(%d, %d)", lo, hi)
	}
	return fmt.Sprintf("[%d, %d]", lo, hi)
}

func ceilSqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r*r < n {
		r++
	}
	for r > 0 && (r-1)*(r-1) >= n {
		r--
	}
	return r
}

// DefaultMaxAttempts caps the per-stroke rejection loop.
const DefaultMaxAttempts = 1 << 20

// GeneratorConfig holds the numeric parameters of both strategies.
type GeneratorConfig struct {
	// Strokes is the requested stroke count. The target's pixels are split
	// into Strokes buckets and one stroke is generated per full bucket.
	Strokes uint32

	// MaxWidth is the largest stroke width; widths are uniform in [1, MaxWidth].
	MaxWidth uint32

	// MinLength and MaxLength bound the endpoint distance.
	MinLength uint32
	MaxLength uint32

	// MaxCurve is the largest perpendicular control point offset in pixels.
	// Zero places both control points on the segment.
	MaxCurve uint32

	// LengthBound overrides the strategy's acceptance test.
	LengthBound LengthBound

	// MaxAttempts caps samples per stroke. Zero means DefaultMaxAttempts.
	MaxAttempts int
}

// DefaultGeneratorConfig returns the historical command-line defaults for
// the given stroke count.
func DefaultGeneratorConfig(strokes uint32) GeneratorConfig {
	return GeneratorConfig{
		Strokes:   strokes,
		MaxWidth:  5,
		MinLength: 5,
		MaxLength: 150,
		MaxCurve:  5,
	}
}

// Validate checks cfg against target before any sampling happens, so that
// contradictory bounds fail fast instead of spinning in the rejection loop.
func (cfg GeneratorConfig) Validate(target *Target, s Strategy) error {
	if s != StrategyRandom && s != StrategyInformed {
		return fmt.Errorf("%w: unknown strategy %d", ErrInvalidConfig, int(s))
	}
	if cfg.Strokes == 0 {
		return fmt.Errorf("%w: stroke count must be positive", ErrInvalidConfig)
	}
	if uint64(cfg.Strokes) > target.Pixels() {
		return fmt.Errorf("%w: %d strokes for %d pixels", ErrTooManyStrokes, cfg.Strokes, target.Pixels())
	}
	if cfg.MaxWidth == 0 {
		return fmt.Errorf("%w: max width must be at least 1", ErrInvalidConfig)
	}
	if cfg.MinLength >= cfg.MaxLength {
		return fmt.Errorf("%w: min length %d >= max length %d", ErrInvalidLengthBounds, cfg.MinLength, cfg.MaxLength)
	}
	bound := cfg.LengthBound.resolve(s)
	if !bound.reachable(cfg.MinLength, cfg.MaxLength, target.Width(), target.Height()) {
		return fmt.Errorf("%w: no endpoint distance in %s on a %dx%d canvas",
			ErrInvalidLengthBounds, bound.interval(cfg.MinLength, cfg.MaxLength), target.Width(), target.Height())
	}
	return nil
}

// StrokeCount returns how many strokes cfg generates on target: one per full
// bucket of total/Strokes pixels.
func (cfg GeneratorConfig) StrokeCount(target *Target) int {
	total := target.Pixels()
	perStroke := total / uint64(cfg.Strokes)
	if perStroke == 0 {
		return 0
	}
	return int(total / perStroke)
}

// Generate builds a Painting over target with the given strategy.
// All randomness is drawn from rng.
func Generate(target *Target, s Strategy, cfg GeneratorConfig, rng *rand.Rand) (*Painting, error) {
	if err := cfg.Validate(target, s); err != nil {
		return nil, err
	}

	g := generator{
		target:   target,
		strategy: s,
		cfg:      cfg,
		bound:    cfg.LengthBound.resolve(s),
		rng:      rng,
	}
	if g.cfg.MaxAttempts <= 0 {
		g.cfg.MaxAttempts = DefaultMaxAttempts
	}

	n := cfg.StrokeCount(target)
	strokes := make([]Stroke, 0, n)
	for range n {
		st, err := g.stroke()
		if err != nil {
			return nil, err
		}
		strokes = append(strokes, st)
	}

	Logger().Debug("painting generated", "strategy", s, "strokes", n)
	return &Painting{
		strokes: strokes,
		width:   target.Width(),
		height:  target.Height(),
		target:  target,
	}, nil
}

// RandomPainting generates with StrategyRandom.
func RandomPainting(target *Target, cfg GeneratorConfig, rng *rand.Rand) (*Painting, error) {
	return Generate(target, StrategyRandom, cfg, rng)
}

// InformedPainting generates with StrategyInformed.
func InformedPainting(target *Target, cfg GeneratorConfig, rng *rand.Rand) (*Painting, error) {
	return Generate(target, StrategyInformed, cfg, rng)
}

type generator struct {
	target   *Target
	strategy Strategy
	cfg      GeneratorConfig
	bound    LengthBound
	rng      *rand.Rand
}

func (g *generator) point() Point {
	return Point{
		X: g.rng.Uint32N(g.target.Width()),
		Y: g.rng.Uint32N(g.target.Height()),
	}
}

func (g *generator) curve() float64 {
	if g.cfg.MaxCurve == 0 {
		return 0
	}
	c := float64(g.cfg.MaxCurve)
	return g.rng.Float64()*2*c - c
}

// stroke samples endpoints until their distance passes the length bound.
func (g *generator) stroke() (Stroke, error) {
	lo, hi := float64(g.cfg.MinLength), float64(g.cfg.MaxLength)
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		start, end := g.point(), g.point()
		if !g.bound.Accepts(start.Distance(end), lo, hi) {
			continue
		}

		w, h := g.target.Width(), g.target.Height()
		st := Stroke{
			Start:    start,
			End:      end,
			ControlA: start.Control(end, 1.0/3, g.curve(), w, h),
			ControlB: start.Control(end, 2.0/3, g.curve(), w, h),
			Width:    g.rng.Uint32N(g.cfg.MaxWidth) + 1,
		}
		if g.strategy == StrategyInformed {
			st.Color = g.target.At(start.X, start.Y)
		} else {
			c := g.point()
			st.Color = g.target.At(c.X, c.Y)
		}
		return st, nil
	}
	return Stroke{}, fmt.Errorf("%w after %d attempts (min %d, max %d)",
		ErrRejectionExhausted, g.cfg.MaxAttempts, g.cfg.MinLength, g.cfg.MaxLength)
}
