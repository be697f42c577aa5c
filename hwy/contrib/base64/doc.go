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

// Package base64 provides lane-parallel standard base64 (RFC 4648, with
// padding) encoding and decoding.
//
// # Encoding
//
// Input bytes are processed in chunks of 24. LoadInterleaved3 splits a chunk
// into three 8-lane vectors holding the first, second and third byte of each
// 3-byte group. Shifts and masks regroup them into four vectors of 6-bit
// indices, each index is translated through the 64-character alphabet with
// GatherIndex, and StoreInterleaved4 writes the 32 resulting characters in
// order. The remaining bytes are encoded in 3-byte groups with '=' padding.
//
// # Decoding
//
// Input characters are processed in chunks of 32 through a 256-entry
// translation table in which every character outside the alphabet maps to
// 0xFF. A chunk with any untranslatable lane reports the position of the first
// such character in input order. Translated values are regrouped with
// LoadInterleaved4, recombined into bytes, and written with StoreInterleaved3.
//
// Only chunks whose 24 output bytes lie entirely inside the destination take
// the lane path. The rest of the input, including any padding, is decoded in
// 4-character groups. '=' is accepted only at the padding positions implied by
// the destination length. Non-zero trailing bits in the last data character
// are ignored.
//
// # Dispatch
//
// Encode and Decode are function variables pointing at BaseEncode and
// BaseDecode, or at the scalar reference loops when hwy.CurrentLevel()
// reports scalar mode.
package base64
