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
	"github.com/mugraph-payments/mucodec/hwy/contrib/base64"
	"github.com/mugraph-payments/mucodec/hwy/contrib/hex"
)

func encodeHex(src []byte) string {
	dst := make([]byte, hex.EncodedLen(len(src)))
	hex.Encode(dst, src)
	return string(dst)
}

// decodeHex decodes exactly n bytes from s. The length is checked before
// any character is looked at.
func decodeHex(s string, n int) ([]byte, error) {
	if want := hex.EncodedLen(n); len(s) != want {
		return nil, rejected("from_hex", NewInvalidDataSizeError(want, len(s)))
	}
	dst := make([]byte, n)
	if bad := hex.Decode(dst, []byte(s)); bad >= 0 {
		return nil, rejected("from_hex", newInvalidHexDigitError(s[bad]))
	}
	return dst, nil
}

func encodeBase64(src []byte) string {
	dst := make([]byte, base64.EncodedLen(len(src)))
	base64.Encode(dst, src)
	return string(dst)
}

// decodeBase64 decodes exactly n bytes from s, which must be the padded
// encoding of n bytes.
func decodeBase64(s string, n int) ([]byte, error) {
	if want := base64.EncodedLen(n); len(s) != want {
		return nil, rejected("from_base64", NewInvalidDataSizeError(want, len(s)))
	}
	dst := make([]byte, n)
	if bad := base64.Decode(dst, []byte(s)); bad >= 0 {
		return nil, rejected("from_base64", newInvalidBase64CharacterError(s[bad]))
	}
	return dst, nil
}
