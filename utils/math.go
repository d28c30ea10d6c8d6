package utils

import (
	"cosmossdk.io/math"
)

// maxUint128Bits is the width of the reserve accumulator's storage type.
const maxUint128Bits = 128

// FitsUint128 reports whether v can be narrowed to an unsigned 128-bit
// integer. Negative values never fit.
func FitsUint128(v math.Int) bool {
	if v.IsNil() || v.IsNegative() {
		return false
	}
	return v.BigInt().BitLen() <= maxUint128Bits
}
