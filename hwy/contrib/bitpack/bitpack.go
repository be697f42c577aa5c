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

import "github.com/mugraph-payments/mucodec/hwy"

// This file provides the public API for the bitpack package.

// Pack packs src into dst using bitWidth bits per value.
// See BasePack.
func Pack[T hwy.UnsignedInts](src []T, bitWidth int, dst []byte) int {
	return BasePack(src, bitWidth, dst)
}

// Unpack unpacks len(dst) values of bitWidth bits from src.
// See BaseUnpack.
func Unpack[T hwy.UnsignedInts](src []byte, bitWidth int, dst []T) int {
	return BaseUnpack(src, bitWidth, dst)
}

// PackAligned packs src into dst using ceil(bitWidth/8) bytes per value.
// See BasePackAligned.
func PackAligned[T hwy.UnsignedInts](src []T, bitWidth int, dst []byte) int {
	return BasePackAligned(src, bitWidth, dst)
}

// UnpackAligned is the inverse of PackAligned.
func UnpackAligned[T hwy.UnsignedInts](src []byte, bitWidth int, dst []T) int {
	return BaseUnpackAligned(src, bitWidth, dst)
}
