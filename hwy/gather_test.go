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

import (
	"slices"
	"testing"
)

func TestGatherIndex(t *testing.T) {
	tbl := []uint8("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")

	t.Run("in range", func(t *testing.T) {
		idx := Load(d64, []uint8{0, 25, 26, 51, 52, 61, 62, 63})
		got := string(GatherIndex(tbl, idx).Data())
		if got != "AZaz09+/" {
			t.Errorf("got %q, want %q", got, "AZaz09+/")
		}
	})

	t.Run("out of range is zero", func(t *testing.T) {
		idx := Load(FixedTag128[uint32]{}, []uint32{1, 64, 1000, 2})
		got := GatherIndex(tbl, idx).Data()
		want := []uint8{'B', 0, 0, 'C'}
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("lane count follows indices", func(t *testing.T) {
		idx := Load(d256, iota8(32))
		if got := GatherIndex(tbl, idx).NumLanes(); got != 32 {
			t.Errorf("NumLanes() = %d, want 32", got)
		}
	})
}

func TestTableLookupBytes(t *testing.T) {
	tbl := Load(d128, []uint8("0123456789abcdef"))

	tests := []struct {
		name string
		idx  []uint8
		want string
	}{
		{"identity", iota8(16), "0123456789abcdef"},
		{"nibbles", []uint8{0xd, 0xe, 0xa, 0xd, 0xb, 0xe, 0xe, 0xf, 0, 0, 0, 0, 0, 0, 0, 1}, "deadbeef00000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(TableLookupBytes(tbl, Load(d128, tt.idx)).Data())
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	// Indices past the table yield zero.
	got := TableLookupBytes(tbl, Set(d128, uint8(16))).Data()
	for i, g := range got {
		if g != 0 {
			t.Errorf("lane %d = %d, want 0", i, g)
		}
	}
}
