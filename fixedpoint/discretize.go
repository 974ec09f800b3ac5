package fixedpoint

import (
	"fmt"

	"github.com/katalvlaran/binlsq/matrix"
)

// Discretize expands the real coefficient matrix a (m×n) into the binary
// coefficient matrix a ⊗ bv (m×n·L). Column block [j·L, (j+1)·L) carries
// predictor j multiplied by each bit weight, so
//
//	Discretize(a, bv) · q == a · Decode(q, bv)
//
// for every bit vector q of length n·L.
//
// Pure function: a is not modified and the result shares no storage with it.
// Errors: ErrEmptyBitValue for a zero-width bv; matrix.ErrNilMatrix for nil a.
//
// Complexity: O(m·n·L).
func Discretize(a *matrix.Dense, bv BitValue) (*matrix.Dense, error) {
	if bv.Len() == 0 {
		return nil, fmt.Errorf("Discretize: %w", ErrEmptyBitValue)
	}
	out, err := matrix.KronRow(a, bv.w)
	if err != nil {
		return nil, fmt.Errorf("Discretize: %w", err)
	}

	return out, nil
}
