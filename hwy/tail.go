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

package hwy

// ProcessWithTail is a helper for processing arrays in fixed-size groups
// that handles both full groups and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full group of group elements
//   - tailFn(offset, count) once for the tail if size is not a multiple of group
//
// Example:
//
//	hwy.ProcessWithTail(len(src), 16,
//	    func(offset int) {
//	        v := hwy.Load(hwy.FixedTag128[uint8]{}, src[offset:])
//	        // ... process 16 lanes
//	    },
//	    func(offset, count int) {
//	        // ... process the last count elements one by one
//	    },
//	)
func ProcessWithTail(size, group int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullGroups := size / group
	for i := range fullGroups {
		fullFn(i * group)
	}

	if remaining := size % group; remaining > 0 {
		tailFn(fullGroups*group, remaining)
	}
}
