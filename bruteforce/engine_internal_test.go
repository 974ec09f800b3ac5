package bruteforce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestMergeKeepsLowestIndexOnTie feeds chunk results with equal norms.
func TestMergeKeepsLowestIndexOnTie(t *testing.T) {
	parts := []best{
		{index: 3, norm: 1.5, evaluated: 4},
		{index: noCandidate, norm: math.Inf(1), evaluated: 0, stopped: true},
		{index: 9, norm: 1.5, evaluated: 4},
		{index: 14, norm: 1.25, evaluated: 4},
		{index: 17, norm: 1.25, evaluated: 2},
	}
	got := merge(parts)
	require.Equal(t, int64(14), got.index)
	require.Equal(t, 1.25, got.norm)
	require.Equal(t, int64(14), got.evaluated)
	require.True(t, got.stopped)
}

// TestMergeEmpty keeps the sentinel when no chunk evaluated anything.
func TestMergeEmpty(t *testing.T) {
	got := merge([]best{{index: noCandidate}, {index: noCandidate}})
	require.Equal(t, noCandidate, got.index)
	require.Zero(t, got.evaluated)
}

// TestEngineNorm checks the column-sum residual against a hand computation.
func TestEngineNorm(t *testing.T) {
	// A = [[1, 2], [3, 4]] (row-major), b = [1, 1].
	e := newEngine([]float64{1, 2, 3, 4}, 2, 2, []float64{1, 1})
	res := make([]float64, 2)
	// q = 00 → -b
	require.InDelta(t, math.Sqrt(2), e.norm(0, res), 1e-12)
	// q = 01 → [2,4]-b
	require.InDelta(t, math.Sqrt(1+9), e.norm(1, res), 1e-12)
	// q = 10 → [1,3]-b
	require.InDelta(t, math.Sqrt(0+4), e.norm(2, res), 1e-12)
	// q = 11 → [3,7]-b
	require.InDelta(t, math.Sqrt(4+36), e.norm(3, res), 1e-12)
}
