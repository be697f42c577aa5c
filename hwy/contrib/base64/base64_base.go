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

package base64

import "github.com/mugraph-payments/mucodec/hwy"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const (
	padChar = '='
	invalid = 0xFF
)

// decodeTable maps a character to its 6-bit value, or invalid.
var decodeTable = func() (t [256]uint8) {
	for i := range t {
		t[i] = invalid
	}
	for i := range len(alphabet) {
		t[alphabet[i]] = uint8(i)
	}
	return t
}()

// EncodedLen returns the padded encoded length of n bytes.
func EncodedLen(n int) int { return (n + 2) / 3 * 4 }

// BaseEncode writes the padded base64 encoding of src into dst.
// dst must hold at least EncodedLen(len(src)) bytes.
func BaseEncode(dst, src []byte) {
	d := hwy.FixedTag64[uint8]{}
	groups := d.MaxLanes()
	chunk := 3 * groups

	low2 := hwy.Set(d, uint8(0x03))
	low4 := hwy.Set(d, uint8(0x0f))
	low6 := hwy.Set(d, uint8(0x3f))

	hwy.ProcessWithTail(len(src), chunk,
		func(offset int) {
			a, b, c := hwy.LoadInterleaved3(d, src[offset:offset+chunk])

			i0 := hwy.ShiftRight(a, 2)
			i1 := hwy.Or(hwy.ShiftLeft(hwy.And(a, low2), 4), hwy.ShiftRight(b, 4))
			i2 := hwy.Or(hwy.ShiftLeft(hwy.And(b, low4), 2), hwy.ShiftRight(c, 6))
			i3 := hwy.And(c, low6)

			out := dst[offset/3*4 : (offset+chunk)/3*4]
			hwy.StoreInterleaved4(
				hwy.GatherIndex([]uint8(alphabet), i0),
				hwy.GatherIndex([]uint8(alphabet), i1),
				hwy.GatherIndex([]uint8(alphabet), i2),
				hwy.GatherIndex([]uint8(alphabet), i3),
				out,
			)
		},
		func(offset, count int) {
			encodeScalar(dst[offset/3*4:], src[offset:offset+count])
		},
	)
}

// BaseDecode decodes the padded base64 text in src into dst.
// len(src) must equal EncodedLen(len(dst)).
//
// It returns the index in src of the first character that is not valid at
// its position, or -1 if the input decodes cleanly. dst contents are
// unspecified when an index is returned.
func BaseDecode(dst, src []byte) int {
	d := hwy.FixedTag256[uint8]{}
	quads := hwy.FixedTag64[uint8]{}
	chars := d.MaxLanes()
	chunk := chars / 4 * 3

	invalidVec := hwy.Set(d, uint8(invalid))

	var values [hwy.MaxVectorBytes]uint8

	full := len(dst) / chunk
	for g := range full {
		in := g * chars
		v := hwy.GatherIndex(decodeTable[:], hwy.Load(d, src[in:in+chars]))

		valid := hwy.NotEqual(v, invalidVec)
		if !hwy.AllTrue(valid) {
			return in + hwy.FindFirstTrue(hwy.MaskNot(valid))
		}
		hwy.Store(v, values[:chars])

		s0, s1, s2, s3 := hwy.LoadInterleaved4(quads, values[:chars])
		b0 := hwy.Or(hwy.ShiftLeft(s0, 2), hwy.ShiftRight(s1, 4))
		b1 := hwy.Or(hwy.ShiftLeft(s1, 4), hwy.ShiftRight(s2, 2))
		b2 := hwy.Or(hwy.ShiftLeft(s2, 6), s3)

		out := g * chunk
		hwy.StoreInterleaved3(b0, b1, b2, dst[out:out+chunk])
	}

	in, out := full*chars, full*chunk
	if bad := decodeScalar(dst[out:], src[in:]); bad >= 0 {
		return in + bad
	}
	return -1
}

func encodeScalar(dst, src []byte) {
	si, di := 0, 0
	for ; si+3 <= len(src); si, di = si+3, di+4 {
		v := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])
		dst[di] = alphabet[v>>18&0x3f]
		dst[di+1] = alphabet[v>>12&0x3f]
		dst[di+2] = alphabet[v>>6&0x3f]
		dst[di+3] = alphabet[v&0x3f]
	}

	switch len(src) - si {
	case 1:
		v := uint(src[si]) << 16
		dst[di] = alphabet[v>>18&0x3f]
		dst[di+1] = alphabet[v>>12&0x3f]
		dst[di+2] = padChar
		dst[di+3] = padChar
	case 2:
		v := uint(src[si])<<16 | uint(src[si+1])<<8
		dst[di] = alphabet[v>>18&0x3f]
		dst[di+1] = alphabet[v>>12&0x3f]
		dst[di+2] = alphabet[v>>6&0x3f]
		dst[di+3] = padChar
	}
}

// decodeScalar decodes src in 4-character groups. The number of bytes the
// last group carries is derived from len(dst), which fixes where padding
// must appear.
func decodeScalar(dst, src []byte) int {
	for si, di := 0, 0; di < len(dst); si, di = si+4, di+3 {
		n := min(3, len(dst)-di)

		var v uint
		for k := range 4 {
			c := src[si+k]
			if k > n {
				if c != padChar {
					return si + k
				}
				continue
			}
			x := decodeTable[c]
			if x == invalid {
				return si + k
			}
			v |= uint(x) << (18 - 6*k)
		}

		dst[di] = byte(v >> 16)
		if n > 1 {
			dst[di+1] = byte(v >> 8)
		}
		if n > 2 {
			dst[di+2] = byte(v)
		}
	}
	return -1
}
