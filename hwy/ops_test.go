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

var (
	d64  = FixedTag64[uint8]{}
	d128 = FixedTag128[uint8]{}
	d256 = FixedTag256[uint8]{}
)

func iota8(n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(i)
	}
	return out
}

func TestTagLanes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"64bit uint8", FixedTag64[uint8]{}.MaxLanes(), 8},
		{"128bit uint8", FixedTag128[uint8]{}.MaxLanes(), 16},
		{"256bit uint8", FixedTag256[uint8]{}.MaxLanes(), 32},
		{"128bit uint16", FixedTag128[uint16]{}.MaxLanes(), 8},
		{"128bit uint32", FixedTag128[uint32]{}.MaxLanes(), 4},
		{"256bit uint64", FixedTag256[uint64]{}.MaxLanes(), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("MaxLanes() = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestLoadStore(t *testing.T) {
	src := iota8(40)

	v := Load(d256, src)
	if v.NumLanes() != 32 {
		t.Fatalf("NumLanes() = %d, want 32", v.NumLanes())
	}
	dst := make([]uint8, 32)
	Store(v, dst)
	if !slices.Equal(dst, src[:32]) {
		t.Errorf("Store() = %v, want %v", dst, src[:32])
	}

	// Short source leaves the upper lanes zero.
	short := Load(d128, []uint8{7, 8, 9})
	got := short.Data()
	want := []uint8{7, 8, 9, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if !slices.Equal(got, want) {
		t.Errorf("Load(short) = %v, want %v", got, want)
	}

	// Short destination only receives what fits.
	small := make([]uint8, 4)
	v.Store(small)
	if !slices.Equal(small, []uint8{0, 1, 2, 3}) {
		t.Errorf("Store(small) = %v", small)
	}
}

func TestArithmetic(t *testing.T) {
	a := Load(d128, iota8(16))
	b := Set(d128, uint8(250))

	sum := Add(a, b).Data()
	for i, got := range sum {
		if want := uint8(i) + 250; got != want {
			t.Errorf("Add lane %d = %d, want %d", i, got, want)
		}
	}

	diff := Sub(a, b).Data()
	for i, got := range diff {
		if want := uint8(i) - 250; got != want {
			t.Errorf("Sub lane %d = %d, want %d", i, got, want)
		}
	}

	mx := Max(a, Set(d128, uint8(7))).Data()
	mn := Min(a, Set(d128, uint8(7))).Data()
	for i := range 16 {
		if mx[i] != max(uint8(i), 7) || mn[i] != min(uint8(i), 7) {
			t.Errorf("lane %d: Max=%d Min=%d", i, mx[i], mn[i])
		}
	}

	if got := ReduceMax(a); got != 15 {
		t.Errorf("ReduceMax() = %d, want 15", got)
	}
	if got := ReduceMax(Vec[uint32]{}); got != 0 {
		t.Errorf("ReduceMax(empty) = %d, want 0", got)
	}
}

func TestBitwise(t *testing.T) {
	a := Set(d64, uint8(0b1100_1010))
	b := Set(d64, uint8(0b1010_0110))

	tests := []struct {
		name string
		got  Vec[uint8]
		want uint8
	}{
		{"And", And(a, b), 0b1000_0010},
		{"Or", Or(a, b), 0b1110_1110},
		{"Xor", Xor(a, b), 0b0110_1100},
		{"AndNot", AndNot(a, b), 0b0010_0100},
		{"ShiftLeft", ShiftLeft(a, 4), 0b1010_0000},
		{"ShiftRight", ShiftRight(a, 4), 0b0000_1100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, got := range tt.got.Data() {
				if got != tt.want {
					t.Errorf("lane %d = %08b, want %08b", i, got, tt.want)
				}
			}
		})
	}
}

func TestCompare(t *testing.T) {
	v := Load(d128, []uint8("09af/:`gAF 0123z"))

	isDigit := MaskAnd(GreaterEqual(v, Set(d128, uint8('0'))), LessEqual(v, Set(d128, uint8('9'))))
	isLower := MaskAnd(GreaterEqual(v, Set(d128, uint8('a'))), LessEqual(v, Set(d128, uint8('f'))))
	valid := MaskOr(isDigit, isLower)

	want := []bool{true, true, true, true, false, false, false, false, false, false, false, true, true, true, true, false}
	for i, w := range want {
		if valid.GetBit(i) != w {
			t.Errorf("lane %d (%q): valid = %v, want %v", i, v.Data()[i], valid.GetBit(i), w)
		}
	}
	if got := FindFirstTrue(MaskNot(valid)); got != 4 {
		t.Errorf("first invalid lane = %d, want 4", got)
	}

	eq := Equal(Load(d128, iota8(16)), Load(d128, iota8(16)))
	if !eq.AllTrue() {
		t.Error("Equal(x, x) should be all true")
	}
	ne := NotEqual(Load(d128, iota8(16)), Set(d128, uint8(3)))
	if ne.CountTrue() != 15 || ne.GetBit(3) {
		t.Errorf("NotEqual: count = %d, lane3 = %v", ne.CountTrue(), ne.GetBit(3))
	}
	if gt := GreaterThan(Load(d128, iota8(16)), Set(d128, uint8(12))); gt.CountTrue() != 3 {
		t.Errorf("GreaterThan count = %d, want 3", gt.CountTrue())
	}
}

func TestIfThenElse(t *testing.T) {
	v := Load(d128, iota8(16))
	even := Equal(And(v, Set(d128, uint8(1))), Zero[uint8](d128))

	got := IfThenElse(even, v, Set(d128, uint8(99))).Data()
	for i, g := range got {
		want := uint8(99)
		if i%2 == 0 {
			want = uint8(i)
		}
		if g != want {
			t.Errorf("IfThenElse lane %d = %d, want %d", i, g, want)
		}
	}

	zeroed := IfThenElseZero(MaskNot(even), v).Data()
	for i, g := range zeroed {
		want := uint8(0)
		if i%2 == 1 {
			want = uint8(i)
		}
		if g != want {
			t.Errorf("IfThenElseZero lane %d = %d, want %d", i, g, want)
		}
	}
}

func TestGetLane(t *testing.T) {
	v := Load(FixedTag128[uint32]{}, []uint32{10, 20, 30, 40})
	if got := GetLane(v, 2); got != 30 {
		t.Errorf("GetLane(2) = %d, want 30", got)
	}
	if got := GetLane(v, 4); got != 0 {
		t.Errorf("GetLane(out of range) = %d, want 0", got)
	}
}
