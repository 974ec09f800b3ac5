package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/binlsq/matrix"
)

// ExampleKronRow expands each entry of A into a row of bit-weighted copies.
func ExampleKronRow() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	k, _ := matrix.KronRow(a, []float64{-1, 0.5})
	fmt.Print(k)
	// Output:
	// [-1, 0.5, -2, 1]
	// [-3, 1.5, -4, 2]
}
