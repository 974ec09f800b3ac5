// Package qubo derives the Quadratic Unconstrained Binary Optimization
// problem whose minimizer is the binary least-squares minimizer of
// ‖A_d·q − b‖², where A_d is a discretized (bit-expanded) coefficient matrix.
//
// Expanding the squared norm and using q_j² = q_j for binary q gives, up to
// the constant ‖b‖²,
//
//	E(q) = Σ_j a_j·q_j + Σ_{j>k} b_jk·q_j·q_k
//	a_j  = Σ_i A_ij·(A_ij − 2·b_i)
//	b_jk = 2·Σ_i A_ij·A_ik
//
// Build returns these coefficients, multiplied by a scale factor (1/8 by
// default), as a sparse Map keyed by (i, j) with i >= j:
//
//   - (j, j) carries the linear term a_j,
//   - (j, k), j > k, carries the pairwise term b_jk.
//
// Pairwise terms live in the lower triangle only; the transposed key is never
// populated. Consumers that expect the upper triangle call Map.Upper, which
// returns the same terms with I <= J. Exact zeros are omitted.
//
// Complexity of Build is O(R·P²) for R rows and P binary variables; P is
// expected to stay in the tens.
package qubo
