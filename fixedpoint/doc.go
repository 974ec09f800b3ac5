// Package fixedpoint encodes real unknowns as fixed-point two's-complement
// bit expansions and moves between the real and the binary view of a
// least-squares problem.
//
// A BitValue of width L and fixed point p holds the weights
//
//	w[0] = -2^p,  w[i] = 2^(p-i) for i = 1..L-1
//
// so a block of L bits q represents x = Σ w[i]·q[i]. With p = 0 and L = 3
// the weights are [-1, 0.5, 0.25] and the representable values are
// -1, -0.75, …, 0.75 in steps of 0.25.
//
// Three operations cover the data flow:
//
//   - NewBitValue builds the weights.
//   - Discretize expands A (m×n) into A ⊗ w (m×n·L), one column per bit.
//   - Decode turns a bit vector back into real values; Encode goes the other
//     way for values on (or clamped onto) the grid.
package fixedpoint
