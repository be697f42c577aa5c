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
	"fmt"
	"unsafe"

	"github.com/mugraph-payments/mucodec/hwy"
	"github.com/mugraph-payments/mucodec/hwy/contrib/bitpack"
)

// envelopeEnd is written to the last byte of a list envelope when the packed
// payload leaves room for it.
const envelopeEnd = 0xFF

// List is a fixed-length array of unsigned integers whose representation is
// bit-packed. Use the ListU16, ListU32 and ListU64 aliases.
//
// The representation is an envelope of len(A)*sizeof(T)+1 bytes:
//
//	[bit width][packed payload][zero padding][0xFF]
//
// The payload is the dense little-endian bit packing of every element at the
// bit width of the largest one. The closing 0xFF is present only when the
// payload does not fill the envelope. Decoding reads the header and payload
// and ignores the remaining bytes.
type List[T hwy.UnsignedInts, A ListArray[T]] struct {
	values A
}

type (
	ListU16[A U16Array] = List[uint16, A]
	ListU32[A U32Array] = List[uint32, A]
	ListU64[A U64Array] = List[uint64, A]
)

// NewListU16 wraps a.
func NewListU16[A U16Array](a A) ListU16[A] { return ListU16[A]{values: a} }

// NewListU32 wraps a.
func NewListU32[A U32Array](a A) ListU32[A] { return ListU32[A]{values: a} }

// NewListU64 wraps a.
func NewListU64[A U64Array](a A) ListU64[A] { return ListU64[A]{values: a} }

// elems views the array behind p as a slice.
func elems[T hwy.UnsignedInts, A ListArray[T]](p *A) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(p)), len(*p))
}

// Values returns a copy of the elements.
func (l List[T, A]) Values() A { return l.values }

// Len returns the number of elements.
func (l List[T, A]) Len() int { return len(l.values) }

// Equal reports whether both lists hold the same elements.
func (l List[T, A]) Equal(o List[T, A]) bool { return l.values == o.values }

// String formats the elements like a Go slice.
func (l List[T, A]) String() string {
	return fmt.Sprint(elems[T](&l.values))
}

// BitWidth returns the number of bits the largest element needs.
func (l List[T, A]) BitWidth() int {
	return bitpack.MaxBits(elems[T](&l.values))
}

// Pack returns the bit width of the largest element and the elements densely
// packed at that width. The payload is PackedSize(Len(), bitWidth) bytes.
func (l List[T, A]) Pack() (bitWidth uint8, payload []byte) {
	return packDense(elems[T](&l.values))
}

// PackAligned is Pack with each element rounded up to whole bytes: the
// payload is Len()*ceil(bitWidth/8) bytes.
func (l List[T, A]) PackAligned() (bitWidth uint8, payload []byte) {
	e := elems[T](&l.values)
	bw := bitpack.MaxBits(e)
	payload = make([]byte, bitpack.AlignedSize(len(e), bw))
	bitpack.PackAligned(e, bw, payload)
	return uint8(bw), payload
}

// Size implements Repr.
func (l List[T, A]) Size() int {
	return envelopeSize[T](len(l.values))
}

// PutBytes implements Repr.
func (l List[T, A]) PutBytes(dst []byte) {
	checkSize(dst, l.Size())
	putEnvelope(dst, elems[T](&l.values))
}

// AsBytes returns the envelope.
func (l List[T, A]) AsBytes() []byte { return ToBytes(l) }

// SetBytes implements ReprPtr.
func (l *List[T, A]) SetBytes(src []byte) error {
	return setEnvelope(elems[T](&l.values), src)
}

// UnpackListU16 rebuilds a list from the output of Pack.
func UnpackListU16[A U16Array](bitWidth uint8, payload []byte) (ListU16[A], error) {
	var l ListU16[A]
	err := unpackDense(elems[uint16](&l.values), bitWidth, payload)
	return l, err
}

// UnpackListU32 rebuilds a list from the output of Pack.
func UnpackListU32[A U32Array](bitWidth uint8, payload []byte) (ListU32[A], error) {
	var l ListU32[A]
	err := unpackDense(elems[uint32](&l.values), bitWidth, payload)
	return l, err
}

// UnpackListU64 rebuilds a list from the output of Pack.
func UnpackListU64[A U64Array](bitWidth uint8, payload []byte) (ListU64[A], error) {
	var l ListU64[A]
	err := unpackDense(elems[uint64](&l.values), bitWidth, payload)
	return l, err
}

// UnpackAlignedListU16 rebuilds a list from the output of PackAligned.
func UnpackAlignedListU16[A U16Array](bitWidth uint8, payload []byte) (ListU16[A], error) {
	var l ListU16[A]
	err := unpackAligned(elems[uint16](&l.values), bitWidth, payload)
	return l, err
}

// UnpackAlignedListU32 rebuilds a list from the output of PackAligned.
func UnpackAlignedListU32[A U32Array](bitWidth uint8, payload []byte) (ListU32[A], error) {
	var l ListU32[A]
	err := unpackAligned(elems[uint32](&l.values), bitWidth, payload)
	return l, err
}

// UnpackAlignedListU64 rebuilds a list from the output of PackAligned.
func UnpackAlignedListU64[A U64Array](bitWidth uint8, payload []byte) (ListU64[A], error) {
	var l ListU64[A]
	err := unpackAligned(elems[uint64](&l.values), bitWidth, payload)
	return l, err
}

// envelopeSize returns the envelope length for n elements of T.
func envelopeSize[T hwy.UnsignedInts](n int) int {
	return n*bitpack.TypeBits[T]()/8 + 1
}

// putEnvelope writes the envelope of e into dst, which must be
// envelopeSize[T](len(e)) bytes.
func putEnvelope[T hwy.UnsignedInts](dst []byte, e []T) {
	bw, payload := packDense(e)

	clear(dst)
	dst[0] = bw
	copy(dst[1:], payload)
	if 1+len(payload) < len(dst) {
		dst[len(dst)-1] = envelopeEnd
	}
}

// setEnvelope decodes an envelope into dst. Bytes after the payload are not
// inspected.
func setEnvelope[T hwy.UnsignedInts](dst []T, src []byte) error {
	if size := envelopeSize[T](len(dst)); len(src) != size {
		return NewInvalidDataSizeError(size, len(src))
	}
	bw := int(src[0])
	if maxBits := bitpack.TypeBits[T](); bw > maxBits {
		return newInvalidBitWidthError(bw, maxBits)
	}
	return unpackDense(dst, src[0], src[1:1+bitpack.PackedSize(len(dst), bw)])
}

func packDense[T hwy.UnsignedInts](e []T) (uint8, []byte) {
	bw := bitpack.MaxBits(e)
	payload := make([]byte, bitpack.PackedSize(len(e), bw))
	bitpack.Pack(e, bw, payload)
	return uint8(bw), payload
}

// unpackDense fills dst from a dense payload. dst is zeroed when bitWidth is 0.
func unpackDense[T hwy.UnsignedInts](dst []T, bitWidth uint8, payload []byte) error {
	bw := int(bitWidth)
	if maxBits := bitpack.TypeBits[T](); bw > maxBits {
		return rejected("unpack", newInvalidBitWidthError(bw, maxBits))
	}
	if want := bitpack.PackedSize(len(dst), bw); len(payload) != want {
		return rejected("unpack", NewInvalidDataSizeError(want, len(payload)))
	}
	clear(dst)
	if bw == 0 {
		return nil
	}
	bitpack.Unpack(payload, bw, dst)
	return nil
}

func unpackAligned[T hwy.UnsignedInts](dst []T, bitWidth uint8, payload []byte) error {
	bw := int(bitWidth)
	if maxBits := bitpack.TypeBits[T](); bw > maxBits {
		return rejected("unpack_aligned", newInvalidBitWidthError(bw, maxBits))
	}
	if want := bitpack.AlignedSize(len(dst), bw); len(payload) != want {
		return rejected("unpack_aligned", NewInvalidDataSizeError(want, len(payload)))
	}
	clear(dst)
	if bw == 0 {
		return nil
	}
	bitpack.UnpackAligned(payload, bw, dst)
	return nil
}
