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

// Package bitpack provides bit-packing operations for unsigned integer arrays.
// This package corresponds to Google Highway's hwy/contrib/bit_pack directory.
//
// # Bit-Packing Overview
//
// Bit-packing stores integers using only the number of bits required by the
// largest value in the block. If every value in a block of uint32 fits in 5
// bits, each value is stored in 5 bits instead of 32.
//
// # Core Functions
//
// The package is generic over uint8, uint16, uint32 and uint64:
//   - MaxBits[T](src []T) int - minimum bit width covering every element
//   - Pack[T](src []T, bitWidth int, dst []byte) int - dense little-endian bit stream
//   - Unpack[T](src []byte, bitWidth int, dst []T) int - inverse of Pack
//   - PackAligned[T] / UnpackAligned[T] - each element rounded up to whole bytes
//
// # Layout
//
// Pack writes element i into bits [i*bitWidth, (i+1)*bitWidth) of the output,
// least significant bit first, so the output is exactly
// PackedSize(n, bitWidth) = ceil(n*bitWidth/8) bytes. PackAligned instead
// stores each element little-endian in ceil(bitWidth/8) bytes, which wastes up
// to 7 bits per element but lets a decoder address elements directly.
//
// Elements are truncated to their low bitWidth bits before packing.
//
// # Example Usage
//
//	import "github.com/mugraph-payments/mucodec/hwy/contrib/bitpack"
//
//	values := []uint32{5, 12, 3, 15, 7, 2, 9, 11}
//	bitWidth := bitpack.MaxBits(values) // 4
//
//	packed := make([]byte, bitpack.PackedSize(len(values), bitWidth))
//	bitpack.Pack(values, bitWidth, packed) // [0xc5 0xf3 0x27 0xb9]
//
//	unpacked := make([]uint32, len(values))
//	bitpack.Unpack(packed, bitWidth, unpacked)
package bitpack
