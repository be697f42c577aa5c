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

// Array is the set of byte-array types a Bytes buffer can be instantiated
// with. The array length is the buffer's fixed size.
type Array interface {
	~[0]byte | ~[1]byte | ~[2]byte | ~[3]byte | ~[4]byte | ~[5]byte |
		~[6]byte | ~[7]byte | ~[8]byte | ~[9]byte | ~[10]byte | ~[11]byte |
		~[12]byte | ~[13]byte | ~[14]byte | ~[15]byte | ~[16]byte | ~[17]byte |
		~[18]byte | ~[19]byte | ~[20]byte | ~[21]byte | ~[22]byte | ~[23]byte |
		~[24]byte | ~[25]byte | ~[26]byte | ~[27]byte | ~[28]byte | ~[29]byte |
		~[30]byte | ~[31]byte | ~[32]byte | ~[33]byte | ~[34]byte | ~[35]byte |
		~[36]byte | ~[37]byte | ~[38]byte | ~[39]byte | ~[40]byte | ~[41]byte |
		~[42]byte | ~[43]byte | ~[44]byte | ~[45]byte | ~[46]byte | ~[47]byte |
		~[48]byte | ~[49]byte | ~[50]byte | ~[51]byte | ~[52]byte | ~[53]byte |
		~[54]byte | ~[55]byte | ~[56]byte | ~[57]byte | ~[58]byte | ~[59]byte |
		~[60]byte | ~[61]byte | ~[62]byte | ~[63]byte | ~[64]byte | ~[96]byte |
		~[128]byte | ~[192]byte | ~[256]byte | ~[384]byte | ~[512]byte | ~[768]byte |
		~[1024]byte | ~[2048]byte | ~[4096]byte | ~[5192]byte
}

// ListArray is the set of element arrays a packed list can hold.
type ListArray[T hwy.UnsignedInts] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T |
		~[7]T | ~[8]T | ~[9]T | ~[10]T | ~[11]T | ~[12]T |
		~[13]T | ~[14]T | ~[15]T | ~[16]T | ~[32]T | ~[64]T |
		~[128]T | ~[256]T | ~[512]T | ~[1024]T | ~[2048]T | ~[4096]T
}

type (
	U16Array = ListArray[uint16]
	U32Array = ListArray[uint32]
	U64Array = ListArray[uint64]
)
