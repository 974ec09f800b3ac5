package fixedpoint

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Decode converts a bit vector into real values: q is split into consecutive
// blocks of bv.Len() bits and each block is dot-multiplied with the weights,
//
//	x[j] = Σ_k w[k]·q[j·L+k].
//
// Errors:
//   - ErrEmptyBitValue when bv has no bits.
//   - ErrLengthNotMultiple when len(q) % bv.Len() != 0.
//   - ErrNonBinary when an entry of q is neither 0 nor 1.
//
// Complexity: O(len(q)).
func Decode(q []uint8, bv BitValue) ([]float64, error) {
	numBits := bv.Len()
	if numBits == 0 {
		return nil, fmt.Errorf("Decode: %w", ErrEmptyBitValue)
	}
	if len(q)%numBits != 0 {
		return nil, fmt.Errorf("Decode: len(q)=%d, bits=%d: %w", len(q), numBits, ErrLengthNotMultiple)
	}

	x := make([]float64, len(q)/numBits)
	block := make([]float64, numBits)
	var j, k int
	for j = range x {
		for k = 0; k < numBits; k++ {
			switch q[j*numBits+k] {
			case 0:
				block[k] = 0
			case 1:
				block[k] = 1
			default:
				return nil, fmt.Errorf("Decode: q[%d]=%d: %w", j*numBits+k, q[j*numBits+k], ErrNonBinary)
			}
		}
		x[j] = floats.Dot(bv.w, block)
	}

	return x, nil
}

// Encode returns the bit vector whose decoding is nearest to x, one block of
// bv.Len() bits per entry. Values outside the representable range are
// clamped to the nearest end; ties round away from zero.
//
// Decode(Encode(x)) == x exactly for every x on the grid returned by Range.
//
// Errors: ErrEmptyBitValue, ErrInvalidBitWidth (more than MaxEncodeBits bits),
// ErrNonFinite.
// Complexity: O(len(x)·L).
func Encode(x []float64, bv BitValue) ([]uint8, error) {
	numBits := bv.Len()
	if numBits == 0 {
		return nil, fmt.Errorf("Encode: %w", ErrEmptyBitValue)
	}
	if numBits > MaxEncodeBits {
		return nil, fmt.Errorf("Encode: bits=%d, limit=%d: %w", numBits, MaxEncodeBits, ErrInvalidBitWidth)
	}
	_, _, step := bv.Range()
	// Two's-complement integer range of numBits bits; the float bound
	// 2^(numBits-1) is exact, the int64 ends are clamped in integer space.
	bound := math.Ldexp(1, numBits-1)
	maxInt := int64(1)<<uint(numBits-1) - 1
	minInt := -maxInt - 1

	q := make([]uint8, len(x)*numBits)
	var (
		j, k int
		n    float64
		v    int64
		u    uint64
	)
	for j = range x {
		if math.IsNaN(x[j]) || math.IsInf(x[j], 0) {
			return nil, fmt.Errorf("Encode: x[%d]: %w", j, ErrNonFinite)
		}
		n = math.Round(x[j] / step)
		switch {
		case n >= bound:
			v = maxInt
		case n < -bound:
			v = minInt
		default:
			v = int64(n)
		}
		// Reinterpret as numBits-bit two's complement, MSB first.
		u = uint64(v)
		for k = 0; k < numBits; k++ {
			q[j*numBits+k] = uint8((u >> uint(numBits-1-k)) & 1)
		}
	}

	return q, nil
}
