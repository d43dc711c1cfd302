package genpaint

// SplitPolicy decides where Crossover cuts each parent.
type SplitPolicy int

const (
	// SplitByFirstParent cuts both parents at half of the receiver's stroke
	// count. With parents of different lengths this over- or under-samples
	// the second parent.
	SplitByFirstParent SplitPolicy = iota

	// SplitProportional cuts each parent at half of its own stroke count.
	SplitProportional
)

// CrossoverOption configures a Crossover call.
//
// Example:
//
//	child := a.Crossover(b, rng, genpaint.WithSplitPolicy(genpaint.SplitProportional))
type CrossoverOption func(*crossoverOptions)

type crossoverOptions struct {
	split SplitPolicy
}

// WithSplitPolicy sets the cut policy. The default is SplitByFirstParent.
func WithSplitPolicy(policy SplitPolicy) CrossoverOption {
	return func(o *crossoverOptions) {
		o.split = policy
	}
}

// Mutation defaults.
const (
	DefaultMutationRounds = 10
	DefaultJitter         = 29
)

// MutateOption configures a Mutate call.
//
// Example:
//
//	// Cap stroke width growth at the generator's maximum.
//	child := p.Mutate(rng, genpaint.WithMaxWidth(cfg.MaxWidth))
type MutateOption func(*mutateOptions)

type mutateOptions struct {
	rounds   int
	jitter   uint32
	maxWidth uint32
}

func defaultMutateOptions() mutateOptions {
	return mutateOptions{
		rounds: DefaultMutationRounds,
		jitter: DefaultJitter,
	}
}

// WithRounds sets the number of perturbation rounds. Values below one are
// ignored.
func WithRounds(n int) MutateOption {
	return func(o *mutateOptions) {
		if n > 0 {
			o.rounds = n
		}
	}
}

// WithJitter sets the largest per-axis endpoint shift and width increase.
func WithJitter(limit uint32) MutateOption {
	return func(o *mutateOptions) {
		o.jitter = limit
	}
}

// WithMaxWidth stops width mutations from growing a stroke past limit.
// Zero, the default, leaves width growth unbounded.
func WithMaxWidth(limit uint32) MutateOption {
	return func(o *mutateOptions) {
		o.maxWidth = limit
	}
}
