package bruteforce_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/binlsq/bruteforce"
	"github.com/katalvlaran/binlsq/fixedpoint"
	"github.com/katalvlaran/binlsq/matrix"
)

// benchProblem builds a 4×4 system with 4-bit unknowns (P = 16, 65536 candidates).
func benchProblem(b *testing.B) (*matrix.Dense, matrix.Vector, fixedpoint.BitValue) {
	b.Helper()
	a, err := matrix.NewDenseFromRows([][]float64{
		{1.0, 0.2, -0.3, 0.1},
		{0.4, 0.9, 0.0, -0.2},
		{-0.1, 0.3, 1.1, 0.5},
		{0.2, -0.6, 0.4, 0.8},
	})
	if err != nil {
		b.Fatal(err)
	}
	rhs, err := matrix.NewVector([]float64{0.5, -0.25, 0.75, 0.1})
	if err != nil {
		b.Fatal(err)
	}
	bv := fixedpoint.NewBitValue(4, 0)
	ad, err := fixedpoint.Discretize(a, bv)
	if err != nil {
		b.Fatal(err)
	}

	return ad, rhs, bv
}

func BenchmarkSolveSequential(b *testing.B) {
	ad, rhs, bv := benchProblem(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bruteforce.Solve(context.Background(), ad, rhs, bv); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveAllCPUs(b *testing.B) {
	ad, rhs, bv := benchProblem(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bruteforce.Solve(context.Background(), ad, rhs, bv, bruteforce.WithAllCPUs()); err != nil {
			b.Fatal(err)
		}
	}
}
