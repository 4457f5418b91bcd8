package utils

import "math"

const (
	bitSize       = 32 << (^uint(0) >> 63)
	maxIntHeadBit = 1 << (bitSize - 2)
)

// CeilToPowerOfTwo returns n if it is a power-of-two, otherwise the next-highest power-of-two.
func CeilToPowerOfTwo(n int) int {
	if n&maxIntHeadBit != 0 && n > maxIntHeadBit {
		panic("argument is too large")
	}

	if n <= 2 {
		return 2
	}

	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	n++

	return n
}

// ClampUint32 limits v to the closed range [lo, hi].
// When lo > hi, hi wins.
func ClampUint32(v, lo, hi uint32) uint32 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// MulOverflowsUint32 reports whether a*b does not fit in a uint32.
// b must be non-zero; the check divides before it multiplies.
func MulOverflowsUint32(a, b uint32) bool {
	return a > math.MaxUint32/b
}

// AlignUp4 rounds n up to the next multiple of 4.
// The second result is false if the rounded value does not fit in a uint32.
func AlignUp4(n uint32) (uint32, bool) {
	if n > math.MaxUint32-3 {
		return 0, false
	}
	return (n + 3) &^ 3, true
}
