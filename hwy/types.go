// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hwy provides portable fixed-width vector operations used by the
// mucodec byte codecs.
//
// Vectors hold up to MaxVectorBytes bytes worth of lanes in an inline array,
// so loading, combining and storing them never touches the heap. The lane
// count of a vector is chosen by the Tag passed to Load, Set or Zero:
//
//	d := hwy.FixedTag128[uint8]{}
//	a := hwy.Load(d, src)
//	hi := hwy.ShiftRight(a, 4)
//	lo := hwy.And(a, hwy.Set(d, 0x0f))
//	hwy.StoreInterleaved2(hi, lo, dst)
//
// Operations on two vectors use the smaller of the two lane counts.
package hwy

// MaxVectorBytes is the widest vector supported, in bytes.
const MaxVectorBytes = 32

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Integers
}

// Vec is a portable vector value. The zero Vec has no lanes.
//
// Vec instances should not be created directly; use Load, Set or Zero instead.
type Vec[T Lanes] struct {
	n    int
	data [MaxVectorBytes]T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Store writes the vector's lanes to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse and the Mask* combinators.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterEqual instead.
type Mask[T Lanes] struct {
	n int
	// bit i is set if lane i is active.
	bits uint64
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == laneBits(m.n)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for b := m.bits; b != 0; b &= b - 1 {
		count++
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

// laneBits returns a bitmask with the low n bits set.
func laneBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (1 << uint(n)) - 1
}
