// Package checked provides overflow-safe arithmetic over nonnegative sizes,
// used to validate slot-count and byte-size calculations before allocating.
package checked

import "math"

// Add returns a+b, with ok=false when the sum would overflow int.
// Both inputs must be nonnegative.
func Add(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// Mul returns a*b, with ok=false when the product would overflow int.
// Both inputs must be nonnegative. This is essential for
// capacity * elementSize calculations.
func Mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
