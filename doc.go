// Package binlsq turns a continuous linear least-squares problem A·x ≈ b
// into a QUBO (Quadratic Unconstrained Binary Optimization) problem that an
// annealer or other combinatorial solver can consume, and ships an
// exhaustive reference solver to validate small instances.
//
// What is in the box:
//
//	matrix/     - immutable Dense and Vector value types, residual norms, Kronecker expansion
//	fixedpoint/ - two's-complement bit weights, Discretize, Decode / Encode
//	qubo/       - Build: the sparse QUBO coefficients (lower triangle) and energy evaluation
//	bruteforce/ - Solve: exhaustive 2^P enumeration, sequential or partitioned across workers
//
// Data flow:
//
//	A, b ──► NewBitValue ──► Discretize ──► A_d ──► qubo.Build ──► Map (to an external annealer)
//	                                          └───► bruteforce.Solve ──► q*, x*, ‖A_d·q* − b‖₂
//
// Formulate runs the first half of that pipeline in one call and returns a
// Formulation that can also be handed to the oracle.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 0.5}, {0.25, 1}})
//	b, _ := matrix.NewVector([]float64{0.5, -0.25})
//	f, _ := binlsq.Formulate(a, b, 4, 0)
//	for _, e := range f.QUBO.Entries() { ... }
//	res, _ := f.SolveExhaustive(ctx)
//
// The exhaustive solver costs O(2^P) with P = n·numBits binary variables;
// keep P in the low twenties.
package binlsq
