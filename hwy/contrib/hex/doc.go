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

// Package hex provides lane-parallel lowercase hexadecimal encoding and decoding.
//
// # Encoding
//
// Input bytes are processed in groups of 16. Each group is split into its high
// and low nibbles with a shift and a mask, both nibble vectors are translated
// through a 16-entry table ("0123456789abcdef") with TableLookupBytes, and the
// two character vectors are interleaved into 32 output characters with
// StoreInterleaved2. The remaining bytes are encoded one at a time.
//
// # Decoding
//
// Input characters are processed in groups of 32. A character is valid when it
// falls in '0'..'9' or 'a'..'f'; uppercase digits are rejected. The validity
// mask is checked once per group and, if any lane fails, the position of the
// first invalid character in input order is reported. Valid characters are
// mapped to nibble values with a select, and the nibble pairs are regrouped
// with LoadInterleaved2 and combined into bytes.
//
// # Dispatch
//
// Encode and Decode are function variables. They point at the lane pipelines
// (BaseEncode, BaseDecode) unless hwy.CurrentLevel() reports scalar mode
// (for example with HWY_NO_SIMD=1), in which case the byte-at-a-time
// reference loops are used. Both produce identical results.
//
// # Example Usage
//
//	src := []byte{0xde, 0xad}
//	dst := make([]byte, hex.EncodedLen(len(src)))
//	hex.Encode(dst, src) // "dead"
//
//	out := make([]byte, hex.DecodedLen(len(dst)))
//	if bad := hex.Decode(out, dst); bad >= 0 {
//		// dst[bad] is not a lowercase hex digit
//	}
package hex
