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
	"bytes"
	"crypto/subtle"
	"math/rand/v2"
	"unsafe"
)

// Bytes is an immutable fixed-size byte buffer. Its size is the length of
// the array type A and is part of the type.
//
// The zero value is a buffer of zero bytes.
type Bytes[A Array] struct {
	a A
}

// Common sizes.
type (
	Bytes16 = Bytes[[16]byte]
	Bytes20 = Bytes[[20]byte]
	Bytes24 = Bytes[[24]byte]
	Bytes32 = Bytes[[32]byte]
	Bytes48 = Bytes[[48]byte]
	Bytes64 = Bytes[[64]byte]
)

// arrayBytes views the array behind p as a byte slice.
func arrayBytes[A Array](p *A) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), len(*p))
}

// FromBytes wraps a.
func FromBytes[A Array](a A) Bytes[A] {
	return Bytes[A]{a: a}
}

// BytesFromSlice copies src into a new buffer. len(src) must equal the
// buffer size.
func BytesFromSlice[A Array](src []byte) (Bytes[A], error) {
	return FromSlice[Bytes[A]](src)
}

// ZeroBytes returns the all-zero buffer.
func ZeroBytes[A Array]() Bytes[A] {
	return Bytes[A]{}
}

// RandomBytes returns a buffer filled from r. It is meant for tests and
// benchmarks, not key material.
func RandomBytes[A Array](r *rand.Rand) Bytes[A] {
	var b Bytes[A]
	buf := arrayBytes(&b.a)
	for i := 0; i < len(buf); i += 8 {
		v := r.Uint64()
		for k := i; k < min(i+8, len(buf)); k++ {
			buf[k] = byte(v)
			v >>= 8
		}
	}
	return b
}

// AsBytes returns a copy of the underlying array.
func (b Bytes[A]) AsBytes() A { return b.a }

// Slice returns a freshly allocated copy of the contents.
func (b Bytes[A]) Slice() []byte {
	return bytes.Clone(arrayBytes(&b.a))
}

// Len returns the buffer size.
func (b Bytes[A]) Len() int { return len(b.a) }

// Size implements Repr.
func (b Bytes[A]) Size() int { return len(b.a) }

// PutBytes implements Repr.
func (b Bytes[A]) PutBytes(dst []byte) {
	checkSize(dst, len(b.a))
	copy(dst, arrayBytes(&b.a))
}

// SetBytes implements ReprPtr.
func (b *Bytes[A]) SetBytes(src []byte) error {
	if len(src) != len(b.a) {
		return NewInvalidDataSizeError(len(b.a), len(src))
	}
	copy(arrayBytes(&b.a), src)
	return nil
}

// Equal reports whether b and o hold the same bytes. It compares 16 bytes
// at a time and returns at the first difference, so its timing depends on
// the contents. Use ConstantTimeEqual for secrets.
func (b Bytes[A]) Equal(o Bytes[A]) bool {
	return equalBytes(arrayBytes(&b.a), arrayBytes(&o.a))
}

// ConstantTimeEqual is Equal with timing independent of the contents.
func (b Bytes[A]) ConstantTimeEqual(o Bytes[A]) bool {
	return subtle.ConstantTimeCompare(arrayBytes(&b.a), arrayBytes(&o.a)) == 1
}

// Compare orders buffers lexicographically. The result is -1, 0 or +1.
func (b Bytes[A]) Compare(o Bytes[A]) int {
	return bytes.Compare(arrayBytes(&b.a), arrayBytes(&o.a))
}

// IsZero reports whether every byte is zero.
func (b Bytes[A]) IsZero() bool {
	return isZeroBytes(arrayBytes(&b.a))
}

// Hex returns the lowercase hex encoding, 2*Len() characters.
func (b Bytes[A]) Hex() string {
	return encodeHex(arrayBytes(&b.a))
}

// Base64 returns the padded standard base64 encoding.
func (b Bytes[A]) Base64() string {
	return encodeBase64(arrayBytes(&b.a))
}

// String returns the hex encoding.
func (b Bytes[A]) String() string { return b.Hex() }

// MarshalText implements encoding.TextMarshaler using hex.
func (b Bytes[A]) MarshalText() ([]byte, error) {
	return []byte(b.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using hex.
func (b *Bytes[A]) UnmarshalText(text []byte) error {
	v, err := FromHex[Bytes[A]](string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// BytesFromHex decodes a buffer from exactly 2*N lowercase hex characters.
func BytesFromHex[A Array](s string) (Bytes[A], error) {
	return FromHex[Bytes[A]](s)
}

// BytesFromBase64 decodes a buffer from its padded base64 encoding.
func BytesFromBase64[A Array](s string) (Bytes[A], error) {
	return FromBase64[Bytes[A]](s)
}
