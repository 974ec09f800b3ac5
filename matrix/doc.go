// Package matrix provides the immutable dense value types used to pose a
// linear least-squares problem A·x ≈ b, and the few kernels the binary
// formulation needs.
//
// The matrix package provides:
//
//   - Dense: an immutable row-major matrix validated at construction
//     (positive shape, exact data length, finite values).
//   - Vector: an immutable, non-empty right-hand side.
//   - MatVec, Residual, ResidualNorm: y = A·x, r = A·x − b, ‖r‖₂.
//   - KronRow: the Kronecker expansion A ⊗ v of a matrix by a row vector.
//   - LeastSquares: the continuous minimizer, for comparison with binary solutions.
//
// Nothing in this package mutates a value after construction, so matrices and
// vectors may be shared freely between goroutines.
package matrix
