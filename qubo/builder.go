package qubo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/binlsq/matrix"
)

const opBuild = "Build"

// Build derives the QUBO coefficients of min ‖ad·q − b‖² over binary q.
//
// Implementation:
//   - Stage 1: validate ad non-nil and b.Len() == ad.Rows().
//   - Stage 2: accumulate, row by row, the linear weights
//     a_j += A_ij·(A_ij − 2·b_i) and the pairwise weights
//     b_jk += 2·A_ij·A_ik for k < j only.
//   - Stage 3: store scale·a_j at (j, j) and scale·b_jk at (j, k) for every
//     non-zero weight.
//
// Determinism: fixed i→j→k loop order, no randomness, no hidden state;
// identical inputs give bit-identical maps.
//
// Errors: ErrNilInput, ErrDimensionMismatch.
// Complexity: Time O(R·P²), Space O(P²).
func Build(ad *matrix.Dense, b matrix.Vector, opts ...Option) (Map, error) {
	if ad == nil {
		return Map{}, fmt.Errorf("%s: %w", opBuild, ErrNilInput)
	}
	if err := matrix.ValidateRowsMatch(ad, b); err != nil {
		return Map{}, fmt.Errorf("%s: rows=%d, len(b)=%d: %w", opBuild, ad.Rows(), b.Len(), ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)

	numResponse, numPredictor := ad.Shape()
	data := ad.RawCopy()
	rhs := b.Values()

	linear := make([]float64, numPredictor)
	pair := make([]float64, numPredictor*numPredictor) // pair[j*P+k], k < j

	var (
		i, j, k int
		row     []float64
		aij     float64
	)
	for i = 0; i < numResponse; i++ {
		row = data[i*numPredictor : (i+1)*numPredictor]
		for j = 0; j < numPredictor; j++ {
			aij = row[j]
			linear[j] += aij * (aij - 2*rhs[i])
			for k = 0; k < j; k++ {
				pair[j*numPredictor+k] += 2 * aij * row[k]
			}
		}
	}

	terms := make(map[Key]float64)
	var v float64
	for j = 0; j < numPredictor; j++ {
		v = o.scale*linear[j] + o.diagShift
		if v != 0 {
			terms[Key{I: j, J: j}] = v
		}
		for k = 0; k < j; k++ {
			if pair[j*numPredictor+k] != 0 {
				terms[Key{I: j, J: k}] = o.scale * pair[j*numPredictor+k]
			}
		}
	}

	return Map{
		vars:   numPredictor,
		scale:  o.scale,
		offset: o.scale * floats.Dot(rhs, rhs),
		terms:  terms,
	}, nil
}
