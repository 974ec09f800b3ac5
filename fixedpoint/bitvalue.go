package fixedpoint

import (
	"fmt"
	"math"
	"strings"
)

// BitValue is the immutable weight vector of a fixed-point two's-complement
// representation. The zero value is an empty (degenerate) BitValue.
type BitValue struct {
	w          []float64
	fixedPoint int
}

// NewBitValue returns the weights for numBits bits with the binary point
// fixedPoint positions to the right of the sign bit:
//
//	w[0] = -2^fixedPoint
//	w[i] =  2^(fixedPoint-i), i >= 1
//
// numBits <= 0 yields an empty BitValue; callers that need at least one bit
// must guard (or use NewBitValueChecked).
//
// Complexity: O(numBits).
func NewBitValue(numBits, fixedPoint int) BitValue {
	if numBits <= 0 {
		return BitValue{fixedPoint: fixedPoint}
	}
	w := make([]float64, numBits)
	w[0] = -math.Ldexp(1, fixedPoint)
	for i := 1; i < numBits; i++ {
		w[i] = math.Ldexp(1, fixedPoint-i)
	}

	return BitValue{w: w, fixedPoint: fixedPoint}
}

// NewBitValueChecked is NewBitValue with the numBits >= 1 precondition
// enforced as ErrInvalidBitWidth.
func NewBitValueChecked(numBits, fixedPoint int) (BitValue, error) {
	if numBits < 1 {
		return BitValue{}, fmt.Errorf("NewBitValueChecked(%d): %w", numBits, ErrInvalidBitWidth)
	}

	return NewBitValue(numBits, fixedPoint), nil
}

// Len returns the number of bits.
func (bv BitValue) Len() int { return len(bv.w) }

// FixedPoint returns the fixed-point position the weights were built with.
func (bv BitValue) FixedPoint() int { return bv.fixedPoint }

// At returns weight i. It panics on an out-of-range index, like a slice.
func (bv BitValue) At(i int) float64 { return bv.w[i] }

// Weights returns a copy of the weights.
func (bv BitValue) Weights() []float64 {
	out := make([]float64, len(bv.w))
	copy(out, bv.w)

	return out
}

// Range returns the smallest and largest representable values and the
// spacing between neighbours. For an empty BitValue all three are 0.
//
// For L bits and fixed point p: min = -2^p, max = 2^p - step, step = 2^(p-L+1).
func (bv BitValue) Range() (lo, hi, step float64) {
	if len(bv.w) == 0 {
		return 0, 0, 0
	}
	step = math.Ldexp(1, bv.fixedPoint-len(bv.w)+1)
	lo = bv.w[0]

	return lo, -lo - step, step
}

// String renders the weights, e.g. "[-1 0.5 0.25]".
func (bv BitValue) String() string {
	parts := make([]string, len(bv.w))
	for i, v := range bv.w {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
