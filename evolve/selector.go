package evolve

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
)

// Pair holds the population indices of two parents.
type Pair struct {
	A, B int
}

// Selector picks parent pairs from a scored population. Each pair yields
// one child per generation.
type Selector interface {
	// Select returns parent pairs given the fitness of every individual.
	// Higher fitness is better. fitness is not modified.
	Select(fitness []int64, rng *rand.Rand) []Pair

	// Validate reports whether the selector can run on a population of
	// the given size.
	Validate(population int) error
}

// Maximize pairs up the count fittest individuals: first with second,
// third with fourth, and so on.
type Maximize struct {
	Count int
}

// Select implements Selector.
func (m Maximize) Select(fitness []int64, _ *rand.Rand) []Pair {
	order := ranked(fitness)
	return pairUp(order[:min(m.Count, len(order))])
}

// Validate implements Selector.
func (m Maximize) Validate(population int) error {
	return validateCount("maximize", m.Count, population)
}

// Stochastic draws Count parents with stochastic universal sampling: Count
// evenly spaced pointers over the cumulative fitness wheel, one random
// offset. Consecutive picks are paired.
type Stochastic struct {
	Count int
}

// Select implements Selector.
func (s Stochastic) Select(fitness []int64, rng *rand.Rand) []Pair {
	if s.Count <= 0 || len(fitness) == 0 {
		return nil
	}

	var total float64
	for _, f := range fitness {
		total += float64(max(f, 0))
	}
	picks := make([]int, 0, s.Count)
	if total == 0 {
		for range s.Count {
			picks = append(picks, rng.IntN(len(fitness)))
		}
		return pairUp(picks)
	}

	step := total / float64(s.Count)
	pointer := rng.Float64() * step
	var acc float64
	i := 0
	for range s.Count {
		for i < len(fitness)-1 && acc+float64(max(fitness[i], 0)) <= pointer {
			acc += float64(max(fitness[i], 0))
			i++
		}
		picks = append(picks, i)
		pointer += step
	}
	return pairUp(picks)
}

// Validate implements Selector.
func (s Stochastic) Validate(population int) error {
	return validateCount("stochastic", s.Count, population)
}

// Tournament runs Tournaments independent tournaments. Each draws
// Participants distinct individuals and pairs its two fittest, so a
// tournament never pairs an individual with itself.
type Tournament struct {
	Tournaments  int
	Participants int
}

// Select implements Selector.
func (t Tournament) Select(fitness []int64, rng *rand.Rand) []Pair {
	n := min(t.Participants, len(fitness))
	if n < 2 {
		return nil
	}
	pairs := make([]Pair, 0, t.Tournaments)
	for range t.Tournaments {
		bracket := rng.Perm(len(fitness))[:n]
		slices.SortStableFunc(bracket, func(a, b int) int {
			return cmp.Compare(fitness[b], fitness[a])
		})
		pairs = append(pairs, Pair{A: bracket[0], B: bracket[1]})
	}
	return pairs
}

// Validate implements Selector.
func (t Tournament) Validate(population int) error {
	switch {
	case t.Tournaments < 1:
		return fmt.Errorf("%w: tournament needs at least one round, got %d", ErrInvalidSelector, t.Tournaments)
	case t.Participants < 2:
		return fmt.Errorf("%w: tournament needs at least two participants, got %d", ErrInvalidSelector, t.Participants)
	case t.Participants > population:
		return fmt.Errorf("%w: %d participants exceed population %d", ErrInvalidSelector, t.Participants, population)
	}
	return nil
}

// Selector names accepted by ParseSelector.
const (
	SelectorStochastic  = "stochastic"
	SelectorMaximize    = "maximize"
	SelectorTournament  = "tournament"
	SelectorParMaximize = "parmaximize"
)

// DefaultSelectCount is the parent count used by the stochastic and
// maximize selectors.
const DefaultSelectCount = 10

// ParseSelector returns the named selector with parameters derived from the
// population size:
//
//	stochastic   Stochastic{10}
//	maximize     Maximize{10}
//	tournament   Tournament{n/4, n/3 rounded up to even}
//	parmaximize  Maximize{n/3 + n%2 rounded up to even}
//
// Unknown names return ErrUnknownSelector. The result is not validated
// against the population.
func ParseSelector(name string, population int) (Selector, error) {
	switch strings.ToLower(name) {
	case SelectorStochastic:
		return Stochastic{Count: DefaultSelectCount}, nil
	case SelectorMaximize:
		return Maximize{Count: DefaultSelectCount}, nil
	case SelectorTournament:
		third := population / 3
		return Tournament{Tournaments: population / 4, Participants: third + third%2}, nil
	case SelectorParMaximize:
		count := population/3 + population%2
		return Maximize{Count: count + count%2}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSelector, name)
	}
}

func validateCount(name string, count, population int) error {
	switch {
	case count < 2:
		return fmt.Errorf("%w: %s count %d is below 2", ErrInvalidSelector, name, count)
	case count%2 != 0:
		return fmt.Errorf("%w: %s count %d is odd", ErrInvalidSelector, name, count)
	case count > population:
		return fmt.Errorf("%w: %s count %d exceeds population %d", ErrInvalidSelector, name, count, population)
	}
	return nil
}

// ranked returns population indices ordered from fittest to least fit.
// Ties keep index order.
func ranked(fitness []int64) []int {
	order := make([]int, len(fitness))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(fitness[b], fitness[a])
	})
	return order
}

func pairUp(picks []int) []Pair {
	pairs := make([]Pair, 0, len(picks)/2)
	for i := 0; i+1 < len(picks); i += 2 {
		pairs = append(pairs, Pair{A: picks[i], B: picks[i+1]})
	}
	return pairs
}
