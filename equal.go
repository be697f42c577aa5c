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

import "github.com/mugraph-payments/mucodec/hwy"

// equalBytes compares a and b 16 bytes at a time and stops at the first
// mismatching group. It is not constant time.
func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	d := hwy.FixedTag128[uint8]{}
	lanes := d.MaxLanes()

	i := 0
	for ; i+lanes <= len(a); i += lanes {
		if !hwy.AllTrue(hwy.Equal(hwy.Load(d, a[i:i+lanes]), hwy.Load(d, b[i:i+lanes]))) {
			return false
		}
	}
	for ; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isZeroBytes reports whether every byte of b is zero.
func isZeroBytes(b []byte) bool {
	d := hwy.FixedTag128[uint8]{}
	lanes := d.MaxLanes()
	zero := hwy.Zero[uint8](d)

	i := 0
	for ; i+lanes <= len(b); i += lanes {
		if !hwy.AllTrue(hwy.Equal(hwy.Load(d, b[i:i+lanes]), zero)) {
			return false
		}
	}
	for ; i < len(b); i++ {
		if b[i] != 0 {
			return false
		}
	}
	return true
}
