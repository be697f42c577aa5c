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

package mucodec

import (
	"encoding/binary"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/holiman/uint256"

	"github.com/mugraph-payments/mucodec/hwy"
)

// intBytes returns the little-endian image of v, sizeof(T) bytes long.
func intBytes[T hwy.Integers](v T) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return buf[:unsafe.Sizeof(v)]
}

// intFromBytes is the inverse of intBytes.
func intFromBytes[T hwy.Integers](b []byte) T {
	var buf [8]byte
	copy(buf[:], b)
	return T(binary.LittleEndian.Uint64(buf[:]))
}

func intSize[T hwy.Integers]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// IntToHex encodes the little-endian bytes of v as lowercase hex,
// 2*sizeof(T) characters.
func IntToHex[T hwy.Integers](v T) string {
	return encodeHex(intBytes(v))
}

// IntFromHex decodes the output of IntToHex.
func IntFromHex[T hwy.Integers](s string) (T, error) {
	b, err := decodeHex(s, intSize[T]())
	if err != nil {
		return 0, err
	}
	return intFromBytes[T](b), nil
}

// IntToBase64 encodes the little-endian bytes of v as padded base64.
func IntToBase64[T hwy.Integers](v T) string {
	return encodeBase64(intBytes(v))
}

// IntFromBase64 decodes the output of IntToBase64.
func IntFromBase64[T hwy.Integers](s string) (T, error) {
	b, err := decodeBase64(s, intSize[T]())
	if err != nil {
		return 0, err
	}
	return intFromBytes[T](b), nil
}

// Uint256 is a 256-bit unsigned integer whose representation is its 32
// little-endian bytes.
type Uint256 struct {
	uint256.Int
}

// NewUint256 returns x as a Uint256.
func NewUint256(x uint64) Uint256 {
	return Uint256{*uint256.NewInt(x)}
}

// Uint256FromDecimal parses a base-10 number.
func Uint256FromDecimal(s string) (Uint256, error) {
	x, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint256{}, errors.Wrapf(err, "mucodec: parsing %q", s)
	}
	return Uint256{*x}, nil
}

// Size implements Repr.
func (u Uint256) Size() int { return 32 }

// PutBytes implements Repr.
func (u Uint256) PutBytes(dst []byte) {
	checkSize(dst, 32)
	for i, limb := range u.Int {
		binary.LittleEndian.PutUint64(dst[8*i:], limb)
	}
}

// SetBytes implements ReprPtr.
func (u *Uint256) SetBytes(src []byte) error {
	if len(src) != 32 {
		return NewInvalidDataSizeError(32, len(src))
	}
	for i := range u.Int {
		u.Int[i] = binary.LittleEndian.Uint64(src[8*i:])
	}
	return nil
}

// String returns the decimal form.
func (u Uint256) String() string { return u.Int.Dec() }
