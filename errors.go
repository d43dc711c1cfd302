package genpaint

import "errors"

// Configuration errors. Every one of them matches ErrInvalidConfig with errors.Is.
var (
	// ErrInvalidConfig is the parent of all configuration errors.
	ErrInvalidConfig = errors.New("genpaint: invalid configuration")

	// ErrInvalidLengthBounds is returned when the stroke length bounds admit
	// no stroke on the target canvas.
	ErrInvalidLengthBounds = configError("invalid stroke length bounds")

	// ErrTooManyStrokes is returned when the stroke count exceeds the number
	// of target pixels.
	ErrTooManyStrokes = configError("stroke count exceeds pixel count")
)

// Runtime and I/O errors.
var (
	// ErrRejectionExhausted is returned when the length rejection loop gives
	// up after GeneratorConfig.MaxAttempts samples.
	ErrRejectionExhausted = errors.New("genpaint: no stroke satisfied the length bounds")

	// ErrEmptyTarget is returned for a target image with no pixels.
	ErrEmptyTarget = errors.New("genpaint: target image is empty")

	// ErrLoadTarget wraps failures to read or decode the target image.
	ErrLoadTarget = errors.New("genpaint: load target")

	// ErrSave wraps failures to write an output file.
	ErrSave = errors.New("genpaint: save")
)

type childError struct {
	msg string
}

func configError(msg string) error { return &childError{msg: "genpaint: " + msg} }

func (e *childError) Error() string { return e.msg }

func (e *childError) Unwrap() error { return ErrInvalidConfig }
