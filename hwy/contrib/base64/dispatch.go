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

// Dispatch function variables.
// These are initialized to the lane pipelines and switched to the scalar
// reference loops when no SIMD level was detected or HWY_NO_SIMD is set.
var (
	// Encode writes the padded base64 encoding of src into dst.
	Encode func(dst, src []byte)

	// Decode decodes src into dst and returns the index of the first
	// character not valid at its position, or -1.
	Decode func(dst, src []byte) int
)

func init() {
	Encode = BaseEncode
	Decode = BaseDecode

	if hwy.CurrentLevel() == hwy.DispatchScalar {
		Encode = encodeScalar
		Decode = decodeScalar
	}
}
