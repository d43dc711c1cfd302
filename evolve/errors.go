package evolve

import "errors"

var (
	// ErrEmptyPopulation is returned when a simulator is built without
	// individuals.
	ErrEmptyPopulation = errors.New("evolve: empty population")

	// ErrInvalidSelector is returned when a selector's parameters do not fit
	// the population.
	ErrInvalidSelector = errors.New("evolve: invalid selector")

	// ErrUnknownSelector is returned by ParseSelector for an unknown name.
	ErrUnknownSelector = errors.New("evolve: unknown selector")

	// ErrMissingOperator is returned when an Operators field is nil.
	ErrMissingOperator = errors.New("evolve: missing operator")
)
