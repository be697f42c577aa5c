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

import "github.com/cockroachdb/errors"

// Repr is implemented by values with a fixed-size byte representation.
// Size must depend only on the type, never on the value.
type Repr interface {
	// Size returns the number of bytes PutBytes writes.
	Size() int
	// PutBytes writes the representation into dst, which must be exactly
	// Size() bytes long.
	PutBytes(dst []byte)
}

// ReprPtr is the pointer side of a Repr: it can be rebuilt from its bytes.
// Decoding functions take the value type T and infer P = *T.
type ReprPtr[T any] interface {
	*T
	Repr
	// SetBytes replaces the value with the one encoded in src.
	// len(src) must equal Size().
	SetBytes(src []byte) error
}

// ToBytes returns a freshly allocated copy of v's representation.
func ToBytes[T Repr](v T) []byte {
	b := make([]byte, v.Size())
	v.PutBytes(b)
	return b
}

// FromSlice decodes a T from src. A length mismatch returns an
// *InvalidDataSizeError marked with both ErrInvalidDataSize and
// ErrSliceConversion.
func FromSlice[T any, P ReprPtr[T]](src []byte) (T, error) {
	var v T
	if size := P(&v).Size(); len(src) != size {
		return v, rejected("from_slice", errors.Mark(NewInvalidDataSizeError(size, len(src)), ErrSliceConversion))
	}
	if err := P(&v).SetBytes(src); err != nil {
		return v, rejected("from_slice", err)
	}
	return v, nil
}

// Zero returns the T decoded from an all-zero representation.
func Zero[T any, P ReprPtr[T]]() T {
	var v T
	if err := P(&v).SetBytes(make([]byte, P(&v).Size())); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "mucodec: zero representation of %T does not decode", v))
	}
	return v
}

// Equal reports whether a and b have identical representations.
// It is not constant time.
func Equal[T Repr](a, b T) bool {
	return equalBytes(ToBytes(a), ToBytes(b))
}

// ToHex returns the lowercase hex encoding of v's representation.
func ToHex[T Repr](v T) string {
	return encodeHex(ToBytes(v))
}

// FromHex decodes a T from the hex encoding of its representation.
func FromHex[T any, P ReprPtr[T]](s string) (T, error) {
	var v T
	b, err := decodeHex(s, P(&v).Size())
	if err != nil {
		return v, err
	}
	if err := P(&v).SetBytes(b); err != nil {
		return v, rejected("from_hex", err)
	}
	return v, nil
}

// ToBase64 returns the padded standard base64 encoding of v's representation.
func ToBase64[T Repr](v T) string {
	return encodeBase64(ToBytes(v))
}

// FromBase64 decodes a T from the base64 encoding of its representation.
func FromBase64[T any, P ReprPtr[T]](s string) (T, error) {
	var v T
	b, err := decodeBase64(s, P(&v).Size())
	if err != nil {
		return v, err
	}
	if err := P(&v).SetBytes(b); err != nil {
		return v, rejected("from_base64", err)
	}
	return v, nil
}

// checkSize panics if a PutBytes destination has the wrong length.
func checkSize(dst []byte, size int) {
	if len(dst) != size {
		panic(errors.AssertionFailedf("mucodec: destination holds %d bytes, representation needs %d", len(dst), size))
	}
}
