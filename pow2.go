package lemerk

import "math/bits"

// IsPow2 determines whether n is a perfect power of two.
func IsPow2(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// Log2 computes the floor of log base 2 of n. n must be non zero.
func Log2(n uint64) uint64 {
	return uint64(bits.Len64(n) - 1)
}

// NextPow2 rounds n up to the nearest power of two. n must not exceed
// 2^63, the largest power of two a uint64 can hold.
func NextPow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	if IsPow2(n) {
		return n
	}
	return 1 << bits.Len64(n)
}
