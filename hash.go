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
	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Blake3Sum returns the 32-byte BLAKE3 digest of data.
func Blake3Sum(data []byte) Bytes32 {
	return FromBytes(blake3.Sum256(data))
}

// SHA256Sum returns the SHA-256 digest of data.
func SHA256Sum(data []byte) Bytes32 {
	return FromBytes(sha256.Sum256(data))
}

// Keccak256Sum returns the legacy Keccak-256 digest of data, as used by
// Ethereum.
func Keccak256Sum(data []byte) Bytes32 {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	h.Sum(out[:0])
	return FromBytes(out)
}
