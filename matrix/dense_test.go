// Package matrix_test contains unit tests for the immutable Dense and Vector types.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/binlsq/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNewDenseRejectsNaNInf verifies the finite-value policy at construction.
func TestNewDenseRejectsNaNInf(t *testing.T) {
	_, err := matrix.NewDense(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromRows([][]float64{{math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDenseFromRows covers shape, ragged input and empty literals.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.RawCopy())

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDenseImmutable ensures neither the input slice nor returned copies alias storage.
func TestDenseImmutable(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m, err := matrix.NewDense(2, 2, data)
	require.NoError(t, err)

	data[0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	raw := m.RawCopy()
	raw[1] = 100
	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, row)

	row[0] = -1
	col, err := m.Column(0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3}, col)
}

// TestAccessorsOutOfRange ensures At/Row/Column return ErrOutOfRange.
func TestAccessorsOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 3, make([]float64, 6))
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestEqualAndString covers comparison and formatting.
func TestEqualAndString(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	c, err := matrix.NewDense(1, 4, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
	require.Equal(t, "[1, 2]\n[3, 4]\n", a.String())
}

// TestVector covers construction, access, copies and norm.
func TestVector(t *testing.T) {
	_, err := matrix.NewVector(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewVector([]float64{1, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	src := []float64{3, 4}
	v, err := matrix.NewVector(src)
	require.NoError(t, err)
	src[0] = 0
	require.Equal(t, 2, v.Len())
	require.Equal(t, []float64{3, 4}, v.Values())
	require.InDelta(t, 5.0, v.Norm(), 1e-15)

	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 4.0, x)
	_, err = v.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Zero(t, matrix.Vector{}.Norm())
}
