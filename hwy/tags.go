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

package hwy

import "unsafe"

// Tag represents a vector size tag that determines how many lanes
// are used in vector operations.
type Tag interface {
	// Width returns the width in bytes (8 for 64-bit, 16 for 128-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("128bit", "256bit", ...)
	Name() string
}

// FixedTag64 selects 64-bit vectors. The base64 codec uses it to process
// one lane per 3-byte (or 4-char) group of a 24-byte chunk.
type FixedTag64[T Lanes] struct{}

// Width returns 8 bytes (64 bits).
func (FixedTag64[T]) Width() int {
	return 8
}

// Name returns "64bit".
func (FixedTag64[T]) Name() string {
	return "64bit"
}

// MaxLanes returns the number of T values that fit in 64 bits.
func (t FixedTag64[T]) MaxLanes() int {
	return lanesFor[T](t)
}

// FixedTag128 forces 128-bit operations (SSE, NEON).
// Use this when you need consistent behavior across platforms.
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	return lanesFor[T](t)
}

// FixedTag256 forces 256-bit operations (AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	return lanesFor[T](t)
}

// lanesFor returns how many T lanes fit in the tag's width, capped at the
// inline capacity of Vec.
func lanesFor[T Lanes](d Tag) int {
	var dummy T
	n := d.Width() / int(unsafe.Sizeof(dummy))
	return min(n, MaxVectorBytes)
}
