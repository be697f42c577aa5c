package hwy

import "math/bits"

// This file provides mask combinators and queries.
// Masks store one bit per lane, so every query is a handful of integer ops.

// CountTrue counts true lanes in mask.
// This is a function wrapper around Mask.CountTrue() for consistency.
func CountTrue[T Lanes](mask Mask[T]) int {
	return bits.OnesCount64(mask.bits)
}

// AllTrue returns true if all lanes are true.
// This is a function wrapper around Mask.AllTrue() for consistency.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AllFalse returns true if all lanes are false.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return mask.bits == 0
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask.bits)
}

// FindLastTrue returns index of last true lane, or -1 if none.
func FindLastTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(mask.bits)
}

// FirstN creates a mask with the first n lanes of d set to true.
func FirstN[T Lanes](d Tag, n int) Mask[T] {
	maxLanes := lanesFor[T](d)
	n = max(0, min(n, maxLanes))
	return Mask[T]{n: maxLanes, bits: laneBits(n)}
}

// MaskFromBits creates a mask from a bitmask integer.
// Bit i of bits corresponds to lane i.
func MaskFromBits[T Lanes](d Tag, b uint64) Mask[T] {
	maxLanes := lanesFor[T](d)
	return Mask[T]{n: maxLanes, bits: b & laneBits(maxLanes)}
}

// BitsFromMask converts mask to bitmask integer.
// Lane i corresponds to bit i of the result.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	return mask.bits
}

// MaskAnd returns the lane-wise AND of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{n: n, bits: a.bits & b.bits & laneBits(n)}
}

// MaskOr returns the lane-wise OR of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{n: n, bits: (a.bits | b.bits) & laneBits(n)}
}

// MaskXor returns the lane-wise XOR of two masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{n: n, bits: (a.bits ^ b.bits) & laneBits(n)}
}

// MaskNot inverts every lane of the mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	return Mask[T]{n: m.n, bits: ^m.bits & laneBits(m.n)}
}
