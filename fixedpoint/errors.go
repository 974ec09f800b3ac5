package fixedpoint

import "errors"

// MaxEncodeBits is the widest bit block Encode supports: the integer grid
// index of a numBits-bit two's-complement value must fit in an int64.
const MaxEncodeBits = 63

var (
	// ErrLengthNotMultiple is returned by Decode when len(q) is not an exact
	// multiple of the bit width.
	ErrLengthNotMultiple = errors.New("fixedpoint: length of q is not a multiple of the bit width")

	// ErrEmptyBitValue indicates a zero-width BitValue where at least one bit is required.
	ErrEmptyBitValue = errors.New("fixedpoint: bit value is empty")

	// ErrInvalidBitWidth is returned by NewBitValueChecked for numBits < 1 and
	// by Encode for widths above MaxEncodeBits.
	ErrInvalidBitWidth = errors.New("fixedpoint: numBits must be >= 1")

	// ErrNonBinary indicates an entry of q outside {0, 1}.
	ErrNonBinary = errors.New("fixedpoint: entry is not 0 or 1")

	// ErrNonFinite indicates NaN or ±Inf passed to Encode.
	ErrNonFinite = errors.New("fixedpoint: NaN or Inf value")
)
