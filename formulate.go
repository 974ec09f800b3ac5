package binlsq

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/binlsq/bruteforce"
	"github.com/katalvlaran/binlsq/fixedpoint"
	"github.com/katalvlaran/binlsq/matrix"
	"github.com/katalvlaran/binlsq/qubo"
)

// ErrDimensionMismatch indicates len(b) != Rows(A).
var ErrDimensionMismatch = errors.New("binlsq: dimension mismatch")

// Formulation is the binary form of one least-squares problem.
// All fields are immutable values derived from the inputs of Formulate.
type Formulation struct {
	// Bits are the fixed-point weights shared by every unknown.
	Bits fixedpoint.BitValue

	// Discrete is A ⊗ Bits, shape Rows(A) × Cols(A)·Bits.Len().
	Discrete *matrix.Dense

	// Target is the right-hand side b.
	Target matrix.Vector

	// QUBO holds the coefficients whose minimizer is the binary least-squares minimizer.
	QUBO qubo.Map
}

// Formulate encodes every unknown of A·x ≈ b with numBits two's-complement
// bits at the given fixed point, discretizes A and builds the QUBO.
//
// Errors: fixedpoint.ErrInvalidBitWidth (numBits < 1), ErrDimensionMismatch,
// and any error from Discretize or qubo.Build.
func Formulate(a *matrix.Dense, b matrix.Vector, numBits, fixedPoint int, opts ...qubo.Option) (Formulation, error) {
	bv, err := fixedpoint.NewBitValueChecked(numBits, fixedPoint)
	if err != nil {
		return Formulation{}, fmt.Errorf("Formulate: %w", err)
	}
	if a == nil {
		return Formulation{}, fmt.Errorf("Formulate: %w", matrix.ErrNilMatrix)
	}
	if a.Rows() != b.Len() {
		return Formulation{}, fmt.Errorf("Formulate: rows=%d, len(b)=%d: %w", a.Rows(), b.Len(), ErrDimensionMismatch)
	}

	ad, err := fixedpoint.Discretize(a, bv)
	if err != nil {
		return Formulation{}, fmt.Errorf("Formulate: %w", err)
	}
	m, err := qubo.Build(ad, b, opts...)
	if err != nil {
		return Formulation{}, fmt.Errorf("Formulate: %w", err)
	}

	return Formulation{Bits: bv, Discrete: ad, Target: b, QUBO: m}, nil
}

// Vars returns the number of binary variables P.
func (f Formulation) Vars() int { return f.Discrete.Cols() }

// Decode maps a binary assignment (e.g. an annealer sample) back to x.
func (f Formulation) Decode(q []uint8) ([]float64, error) {
	return fixedpoint.Decode(q, f.Bits)
}

// Residual returns ‖A_d·q − b‖₂ for a binary assignment q.
func (f Formulation) Residual(q []uint8) (float64, error) {
	if len(q) != f.Vars() {
		return 0, fmt.Errorf("Residual: len(q)=%d, want %d: %w", len(q), f.Vars(), ErrDimensionMismatch)
	}
	qf := make([]float64, len(q))
	for i, v := range q {
		qf[i] = float64(v)
	}

	return matrix.ResidualNorm(f.Discrete, qf, f.Target)
}

// SolveExhaustive runs the brute-force oracle on the discretized problem.
func (f Formulation) SolveExhaustive(ctx context.Context, opts ...bruteforce.Option) (bruteforce.Result, error) {
	return bruteforce.Solve(ctx, f.Discrete, f.Target, f.Bits, opts...)
}
