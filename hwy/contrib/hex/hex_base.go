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

package hex

import "github.com/mugraph-payments/mucodec/hwy"

const hextable = "0123456789abcdef"

// EncodedLen returns the number of characters needed to encode n bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the number of bytes encoded by n characters.
func DecodedLen(n int) int { return n / 2 }

// BaseEncode writes the lowercase hex encoding of src into dst.
// dst must hold at least EncodedLen(len(src)) bytes.
func BaseEncode(dst, src []byte) {
	d := hwy.FixedTag128[uint8]{}
	lanes := d.MaxLanes()

	table := hwy.Load(d, []uint8(hextable))
	lowMask := hwy.Set(d, uint8(0x0f))

	hwy.ProcessWithTail(len(src), lanes,
		func(offset int) {
			v := hwy.Load(d, src[offset:offset+lanes])
			hi := hwy.TableLookupBytes(table, hwy.ShiftRight(v, 4))
			lo := hwy.TableLookupBytes(table, hwy.And(v, lowMask))
			hwy.StoreInterleaved2(hi, lo, dst[2*offset:2*(offset+lanes)])
		},
		func(offset, count int) {
			encodeScalar(dst[2*offset:], src[offset:offset+count])
		},
	)
}

// BaseDecode decodes the lowercase hex characters in src into dst.
// len(src) must equal EncodedLen(len(dst)).
//
// It returns the index in src of the first character that is not a
// lowercase hex digit, or -1 if every character is valid. dst contents are
// unspecified when an index is returned.
func BaseDecode(dst, src []byte) int {
	d := hwy.FixedTag256[uint8]{}
	pairs := hwy.FixedTag128[uint8]{}
	lanes := d.MaxLanes()

	zero, nine := hwy.Set(d, uint8('0')), hwy.Set(d, uint8('9'))
	lowerA, lowerF := hwy.Set(d, uint8('a')), hwy.Set(d, uint8('f'))
	letterBias := hwy.Set(d, uint8('a'-10))

	var nibbles [hwy.MaxVectorBytes]uint8

	full := len(src) / lanes
	for g := range full {
		offset := g * lanes
		v := hwy.Load(d, src[offset:offset+lanes])

		isDigit := hwy.MaskAnd(hwy.GreaterEqual(v, zero), hwy.LessEqual(v, nine))
		isLetter := hwy.MaskAnd(hwy.GreaterEqual(v, lowerA), hwy.LessEqual(v, lowerF))
		valid := hwy.MaskOr(isDigit, isLetter)
		if !hwy.AllTrue(valid) {
			return offset + hwy.FindFirstTrue(hwy.MaskNot(valid))
		}

		values := hwy.IfThenElse(isDigit, hwy.Sub(v, zero), hwy.Sub(v, letterBias))
		hwy.Store(values, nibbles[:lanes])

		hi, lo := hwy.LoadInterleaved2(pairs, nibbles[:lanes])
		hwy.Store(hwy.Or(hwy.ShiftLeft(hi, 4), lo), dst[offset/2:offset/2+lanes/2])
	}

	offset := full * lanes
	if bad := decodeScalar(dst[offset/2:], src[offset:]); bad >= 0 {
		return offset + bad
	}
	return -1
}

func encodeScalar(dst, src []byte) {
	for i, b := range src {
		dst[2*i] = hextable[b>>4]
		dst[2*i+1] = hextable[b&0x0f]
	}
}

func decodeScalar(dst, src []byte) int {
	for i := 0; i+1 < len(src); i += 2 {
		hi, ok := fromHexChar(src[i])
		if !ok {
			return i
		}
		lo, ok := fromHexChar(src[i+1])
		if !ok {
			return i + 1
		}
		dst[i/2] = hi<<4 | lo
	}
	return -1
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
