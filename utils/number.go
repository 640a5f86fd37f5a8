package utils

import (
	"math/bits"
)

// PreviousPowerOfTwo returns the largest power of two less than or equal to x,
// or 0 if x is 0.
func PreviousPowerOfTwo(x uint64) int {
	if x == 0 {
		return 0
	}
	return 1 << (64 - bits.LeadingZeros64(x) - 1)
}

// IsPowerOfTwo reports whether x is a nonzero power of two.
func IsPowerOfTwo(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}
