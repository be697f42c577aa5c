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

// Package mucodec provides fixed-size value representations with fast text
// and compact binary encodings.
//
// # Representations
//
// A Repr has a byte representation whose length is fixed by its type. The
// package supplies three families:
//
//   - Bytes[A], an immutable byte buffer of len(A) bytes (Bytes32, Bytes64, ...)
//   - ListU16, ListU32 and ListU64, fixed-length integer arrays stored as a
//     bit-packed envelope
//   - Uint256 and the little-endian images of the built-in integer types
//
// Composite records get Size, PutBytes and SetBytes from cmd/reprgen, which
// lays their fields out back to back in declaration order.
//
// # Text encodings
//
// Every Repr converts to lowercase hex and to padded standard base64 with
// ToHex, FromHex, ToBase64 and FromBase64. Encoding runs on the lane
// pipelines in hwy/contrib/hex and hwy/contrib/base64. Decoding checks the
// input length first and then reports the first offending character in
// input order. Uppercase hex is rejected.
//
// # Errors
//
// Decoding failures are *InvalidDataSizeError, *InvalidHexDigitError,
// *InvalidBase64CharacterError or *InvalidBitWidthError values, each marked
// with a sentinel for errors.Is:
//
//	_, err := mucodec.BytesFromHex[[2]byte]("DEAD")
//	if errors.Is(err, mucodec.ErrInvalidHexDigit) {
//		// ...
//	}
//
// # Example
//
//	b := mucodec.FromBytes([2]byte{0xde, 0xad})
//	b.Hex()    // "dead"
//	b.Base64() // "3q0="
//
//	l := mucodec.NewListU16([4]uint16{1, 2, 3, 4})
//	bw, payload := l.Pack() // 3, [0xd1 0x08]
package mucodec
