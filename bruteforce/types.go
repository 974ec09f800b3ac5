package bruteforce

import "errors"

var (
	// ErrNilInput indicates a nil discretized matrix.
	ErrNilInput = errors.New("bruteforce: nil input")

	// ErrDimensionMismatch indicates len(b) != rows, or a column count that is
	// not a multiple of the bit width.
	ErrDimensionMismatch = errors.New("bruteforce: dimension mismatch")

	// ErrTooManyBits is returned when P exceeds Options.MaxBits.
	ErrTooManyBits = errors.New("bruteforce: too many binary variables for exhaustive search")

	// ErrInvalidOptions wraps validation failures of Options.
	ErrInvalidOptions = errors.New("bruteforce: invalid options")

	// ErrNoCandidate is the invariant violation raised when the scan finished
	// without evaluating any candidate. It cannot happen for a full scan; it
	// surfaces only when a budget stops the search before the first candidate.
	ErrNoCandidate = errors.New("bruteforce: no candidate evaluated")
)

// Result holds the outcome of an exhaustive search.
type Result struct {
	// Q is the best binary assignment, length P.
	Q []uint8

	// X is Q decoded with the bit values, length P / numBits.
	X []float64

	// MinNorm is ‖A_d·Q − b‖₂.
	MinNorm float64

	// Index is Q's position in the enumeration order.
	Index int64

	// Evaluated counts candidates whose norm was computed.
	Evaluated int64

	// Total is 2^P, the size of the search space.
	Total int64

	// Partial is true when a deadline, cancellation or candidate cap stopped
	// the scan before all Total candidates were evaluated.
	Partial bool
}
