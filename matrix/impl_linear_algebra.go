// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels needed to pose a binary
// least-squares problem: matrix-vector products, residuals and the
// Kronecker row expansion. All kernels validate first and return sentinels
// wrapped with an operation tag.
//
// Notes:
//   - Kernels never mutate their inputs; every result is freshly allocated.
//   - Dot products and norms are delegated to gonum/floats, the Kronecker
//     product to gonum/mat.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec   = "MatVec"
	opResidual = "Residual"
	opKronRow  = "KronRow"
	opGonum    = "FromGonum"
	opLstsq    = "LeastSquares"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order (one floats.Dot per row).
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		y[i] = floats.Dot(m.data[i*m.c:(i+1)*m.c], x)
	}

	return y, nil
}

// Residual computes r = m*x − b.
//
// Contract: m non-nil; len(x) == m.Cols(); b.Len() == m.Rows().
// Complexity: Time O(r*c), Space O(r).
func Residual(m *Dense, x []float64, b Vector) ([]float64, error) {
	y, err := MatVec(m, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b.data, m.r); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	floats.Sub(y, b.data)

	return y, nil
}

// ResidualNorm returns ‖m*x − b‖₂.
// Complexity: Time O(r*c), Space O(r).
func ResidualNorm(m *Dense, x []float64, b Vector) (float64, error) {
	r, err := Residual(m, x, b)
	if err != nil {
		return NormZero, err
	}

	return floats.Norm(r, 2), nil
}

// KronRow returns the Kronecker product a ⊗ v, where v is treated as a 1×L row.
// Each scalar a(i,j) is replaced by the row a(i,j)·v, so the result has shape
// Rows(a) × (Cols(a)·L) and column block [j·L, (j+1)·L) belongs to column j of a.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty v), ErrNaNInf (non-finite v).
// Complexity: Time O(r*c*L), Space O(r*c*L).
func KronRow(a *Dense, v []float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronRow, err)
	}
	row, err := NewDense(1, len(v), v)
	if err != nil {
		return nil, matrixErrorf(opKronRow, err)
	}

	var out mat.Dense
	out.Kronecker(a.Gonum(), row.Gonum())

	return FromGonum(&out)
}

// Gonum returns a gonum *mat.Dense holding a copy of m.
func (m *Dense) Gonum() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.RawCopy())
}

// FromGonum copies any gonum matrix into an immutable Dense,
// applying the same validation as NewDense.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opGonum, ErrInvalidDimensions)
	}
	buf := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			buf[i*c+j] = g.At(i, j)
		}
	}
	if err := ValidateFinite(buf); err != nil {
		return nil, matrixErrorf(opGonum, err)
	}

	return newDenseOwned(r, c, buf), nil
}

// LeastSquares returns the continuous minimizer of ‖a·x − b‖₂ for a with
// Rows ≥ Cols, via gonum's QR-based solver. It is the real-valued reference
// a fixed-point binary solution approximates.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(b) != Rows or Rows < Cols),
// or gonum's mat.Condition error when a is (near) rank deficient.
// Complexity: O(r·c²).
func LeastSquares(a *Dense, b Vector) ([]float64, error) {
	if err := ValidateRowsMatch(a, b); err != nil {
		return nil, matrixErrorf(opLstsq, err)
	}
	if a.r < a.c {
		return nil, matrixErrorf(opLstsq, ErrDimensionMismatch)
	}

	var x mat.VecDense
	if err := x.SolveVec(a.Gonum(), mat.NewVecDense(b.Len(), b.Values())); err != nil {
		return nil, matrixErrorf(opLstsq, err)
	}

	return mat.Col(nil, 0, &x), nil
}
