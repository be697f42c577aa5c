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

package bitpack

import (
	"math/bits"
	"unsafe"

	"github.com/mugraph-payments/mucodec/hwy"
)

// MaxBits finds the minimum number of bits required to represent
// all values in the slice. Returns 0 for empty slices or slices containing only zeros.
//
// The maximum is reduced lane-wise over 256-bit groups before the final
// horizontal reduction.
//
// Example:
//
//	values := []uint32{5, 12, 3, 15, 7}
//	bits := MaxBits(values)  // Returns 4 (max value 15 needs 4 bits)
func MaxBits[T hwy.UnsignedInts](src []T) int {
	if len(src) == 0 {
		return 0
	}

	d := hwy.FixedTag256[T]{}
	lanes := d.MaxLanes()
	acc := hwy.Zero[T](d)
	var maxVal T

	hwy.ProcessWithTail(len(src), lanes,
		func(offset int) {
			acc = hwy.Max(acc, hwy.Load(d, src[offset:offset+lanes]))
		},
		func(offset, count int) {
			for _, v := range src[offset : offset+count] {
				maxVal = max(maxVal, v)
			}
		},
	)

	return BitsNeeded(max(maxVal, hwy.ReduceMax(acc)))
}

// BitsNeeded returns the number of bits required to represent a value.
// BitsNeeded(0) is 0.
func BitsNeeded[T hwy.UnsignedInts](val T) int {
	return bits.Len64(uint64(val))
}

// TypeBits returns the width of T in bits.
func TypeBits[T hwy.UnsignedInts]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// PackedSize returns the number of bytes needed to store n integers
// using the given bit width.
func PackedSize(n, bitWidth int) int {
	if bitWidth == 0 || n == 0 {
		return 0
	}
	totalBits := n * bitWidth
	return (totalBits + 7) / 8
}

// AlignedSize returns the number of bytes PackAligned needs for n integers:
// each one occupies ceil(bitWidth/8) bytes.
func AlignedSize(n, bitWidth int) int {
	return n * ((bitWidth + 7) / 8)
}

// lowMask returns a T with the low bitWidth bits set.
func lowMask[T hwy.UnsignedInts](bitWidth int) T {
	if bitWidth >= TypeBits[T]() {
		return ^T(0)
	}
	return T(1)<<bitWidth - 1
}

// BasePack packs values into a byte slice using the specified bit width.
// Each value is stored using exactly bitWidth bits, tightly packed,
// least significant bit first. Returns the number of bytes written to dst.
//
// Bit widths above the width of T are clamped.
// dst must have at least PackedSize(len(src), bitWidth) bytes available;
// those bytes are overwritten.
//
// Example:
//
//	src := []uint32{5, 12, 3, 15}  // values fit in 4 bits
//	dst := make([]byte, PackedSize(len(src), 4))
//	BasePack(src, 4, dst)  // Packs to 2 bytes: [0xc5, 0xf3]
func BasePack[T hwy.UnsignedInts](src []T, bitWidth int, dst []byte) int {
	if len(src) == 0 || bitWidth == 0 {
		return 0
	}
	bitWidth = min(bitWidth, TypeBits[T]())
	clear(dst[:PackedSize(len(src), bitWidth)])

	d := hwy.FixedTag256[T]{}
	lanes := d.MaxLanes()
	mask := lowMask[T](bitWidth)
	maskVec := hwy.Set(d, mask)

	var block [hwy.MaxVectorBytes]T
	bitPos := 0

	hwy.ProcessWithTail(len(src), lanes,
		func(offset int) {
			// Mask a whole block at once; the cross-lane bit placement stays scalar.
			v := hwy.And(hwy.Load(d, src[offset:offset+lanes]), maskVec)
			hwy.Store(v, block[:lanes])
			for _, val := range block[:lanes] {
				bitPos = packValue(uint64(val), bitWidth, bitPos, dst)
			}
		},
		func(offset, count int) {
			for _, val := range src[offset : offset+count] {
				bitPos = packValue(uint64(val&mask), bitWidth, bitPos, dst)
			}
		},
	)

	return (bitPos + 7) / 8
}

// packValue ORs the low bitWidth bits of val into dst starting at bit
// bitPos and returns the next bit position.
func packValue(val uint64, bitWidth, bitPos int, dst []byte) int {
	for remaining := bitWidth; remaining > 0; {
		shift := bitPos % 8
		n := min(remaining, 8-shift)

		dst[bitPos/8] |= byte(val&(uint64(1)<<n-1)) << shift

		val >>= n
		remaining -= n
		bitPos += n
	}
	return bitPos
}

// BaseUnpack unpacks values from a bit-packed byte slice.
// Each value is read using exactly bitWidth bits.
// Returns the number of values unpacked to dst, which is less than len(dst)
// only if src runs out of bits.
//
// Example:
//
//	packed := []byte{0xc5, 0xf3}  // 4 values at 4 bits each
//	dst := make([]uint32, 4)
//	BaseUnpack(packed, 4, dst)  // Unpacks to [5, 12, 3, 15]
func BaseUnpack[T hwy.UnsignedInts](src []byte, bitWidth int, dst []T) int {
	if len(src) == 0 || bitWidth == 0 || len(dst) == 0 {
		return 0
	}
	bitWidth = min(bitWidth, TypeBits[T]())

	totalBits := len(src) * 8
	bitPos := 0

	var i int
	for i = 0; i < len(dst) && bitPos+bitWidth <= totalBits; i++ {
		var val uint64
		val, bitPos = unpackValue(src, bitWidth, bitPos)
		dst[i] = T(val)
	}
	return i
}

// unpackValue reads bitWidth bits starting at bit bitPos and returns the
// value with the next bit position.
func unpackValue(src []byte, bitWidth, bitPos int) (uint64, int) {
	var val uint64
	shift := 0
	for remaining := bitWidth; remaining > 0; {
		off := bitPos % 8
		n := min(remaining, 8-off)

		chunk := uint64(src[bitPos/8]>>off) & (uint64(1)<<n - 1)
		val |= chunk << shift

		shift += n
		remaining -= n
		bitPos += n
	}
	return val, bitPos
}

// BasePackAligned stores each value little-endian in ceil(bitWidth/8)
// bytes after truncating it to bitWidth bits. Returns the number of bytes
// written, AlignedSize(len(src), bitWidth).
func BasePackAligned[T hwy.UnsignedInts](src []T, bitWidth int, dst []byte) int {
	if len(src) == 0 || bitWidth == 0 {
		return 0
	}
	bitWidth = min(bitWidth, TypeBits[T]())
	width := (bitWidth + 7) / 8
	mask := lowMask[T](bitWidth)

	for i, v := range src {
		x := uint64(v & mask)
		out := dst[i*width : (i+1)*width]
		for k := range out {
			out[k] = byte(x >> (8 * k))
		}
	}
	return len(src) * width
}

// BaseUnpackAligned is the inverse of BasePackAligned. Returns the number of
// values unpacked to dst.
func BaseUnpackAligned[T hwy.UnsignedInts](src []byte, bitWidth int, dst []T) int {
	if len(src) == 0 || bitWidth == 0 || len(dst) == 0 {
		return 0
	}
	bitWidth = min(bitWidth, TypeBits[T]())
	width := (bitWidth + 7) / 8
	mask := lowMask[T](bitWidth)

	n := min(len(dst), len(src)/width)
	for i := range n {
		var x uint64
		for k, b := range src[i*width : (i+1)*width] {
			x |= uint64(b) << (8 * k)
		}
		dst[i] = T(x) & mask
	}
	return n
}
