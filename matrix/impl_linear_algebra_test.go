package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/binlsq/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestMatVec checks y = A·x and its validation.
func TestMatVec(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestResidualNorm checks r = A·x − b and ‖r‖₂.
func TestResidualNorm(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	b, err := matrix.NewVector([]float64{4, 0})
	require.NoError(t, err)

	r, err := matrix.Residual(a, []float64{1, 4}, b)
	require.NoError(t, err)
	require.Equal(t, []float64{-3, 4}, r)

	n, err := matrix.ResidualNorm(a, []float64{1, 4}, b)
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, 1e-15)

	short, err := matrix.NewVector([]float64{1})
	require.NoError(t, err)
	_, err = matrix.ResidualNorm(a, []float64{1, 4}, short)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestKronRow verifies the Kronecker expansion layout and guards.
func TestKronRow(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	k, err := matrix.KronRow(a, []float64{-1, 0.5, 0.25})
	require.NoError(t, err)
	require.Equal(t, 2, k.Rows())
	require.Equal(t, 6, k.Cols())
	require.Equal(t, []float64{
		-1, 0.5, 0.25, -2, 1, 0.5,
		-3, 1.5, 0.75, -4, 2, 1,
	}, k.RawCopy())

	_, err = matrix.KronRow(a, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.KronRow(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestGonumRoundTrip bridges to gonum and back.
func TestGonumRoundTrip(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	g := a.Gonum()
	g.Set(0, 0, 42) // the bridge is a copy
	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	back, err := matrix.FromGonum(a.Gonum().T())
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, back.RawCopy())

	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	bad := mat.NewDense(1, 1, []float64{math.NaN()})
	_, err = matrix.FromGonum(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestValidators exercises the exported validators directly.
func TestValidators(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateFinite([]float64{0, math.NaN()}), matrix.ErrNaNInf)

	a, err := matrix.NewDenseFromRows([][]float64{{1}, {2}})
	require.NoError(t, err)
	b, err := matrix.NewVector([]float64{1, 2})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateRowsMatch(a, b))
	require.ErrorIs(t, matrix.ValidateRowsMatch(a, matrix.Vector{}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateRowsMatch(nil, b), matrix.ErrNilMatrix)
}

// TestLeastSquares solves an overdetermined consistent system and rejects bad shapes.
func TestLeastSquares(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, err)
	b, err := matrix.NewVector([]float64{0.5, -0.25, 0.25})
	require.NoError(t, err)

	x, err := matrix.LeastSquares(a, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, -0.25}, x, 1e-12)

	wide, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	one, err := matrix.NewVector([]float64{1})
	require.NoError(t, err)
	_, err = matrix.LeastSquares(wide, one)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.LeastSquares(a, one)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
