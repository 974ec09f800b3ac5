package qubo

import "errors"

var (
	// ErrNilInput indicates a nil discretized matrix.
	ErrNilInput = errors.New("qubo: nil input")

	// ErrDimensionMismatch indicates len(b) != rows of the discretized matrix,
	// or a bit vector whose length differs from the number of variables.
	ErrDimensionMismatch = errors.New("qubo: dimension mismatch")

	// ErrNonBinary indicates an assignment entry outside {0, 1}.
	ErrNonBinary = errors.New("qubo: assignment entry is not 0 or 1")
)
