package fftgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch reports operands whose dimensionality D does
	// not agree.
	ErrDimensionMismatch = errors.New("fftgrid: dimension mismatch")

	// ErrOutOfRange reports a position, component or linear index that
	// falls outside its legal interval.
	ErrOutOfRange = errors.New("fftgrid: out of range")
)

func dimMismatchError(got, want int, hint string) error {
	return fmt.Errorf("%w: got %d dimensions, want %d (%s)", ErrDimensionMismatch, got, want, hint)
}

func rangeError(what string, value, lo, hi int) error {
	return fmt.Errorf("%w: %s %d outside [%d, %d]", ErrOutOfRange, what, value, lo, hi)
}
