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

package bitpack

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestMaxBits32(t *testing.T) {
	tests := []struct {
		name string
		src  []uint32
		want int
	}{
		{
			name: "empty slice",
			src:  []uint32{},
			want: 0,
		},
		{
			name: "all zeros",
			src:  []uint32{0, 0, 0, 0},
			want: 0,
		},
		{
			name: "max 1 (1 bit)",
			src:  []uint32{0, 1, 0, 1},
			want: 1,
		},
		{
			name: "max 15 (4 bits)",
			src:  []uint32{5, 12, 3, 15, 7, 2, 9, 11},
			want: 4,
		},
		{
			name: "max 1000 (10 bits)",
			src:  []uint32{500, 1000, 750, 250},
			want: 10,
		},
		{
			name: "single element",
			src:  []uint32{42},
			want: 6, // 42 = 0b101010
		},
		{
			name: "large values (32 bits)",
			src:  []uint32{1 << 31, 100, 200},
			want: 32,
		},
		{
			name: "max in full lane block",
			src:  append([]uint32{3, 1 << 20, 7, 0, 0, 0, 0, 0}, 1, 2, 3),
			want: 21,
		},
		{
			name: "max in tail",
			src:  append(make([]uint32, 16), 1<<9),
			want: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxBits(tt.src)
			if got != tt.want {
				t.Errorf("MaxBits() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxBitsTypes(t *testing.T) {
	if got := MaxBits([]uint16{1, 0xFFFF, 2}); got != 16 {
		t.Errorf("MaxBits(uint16) = %d, want 16", got)
	}
	if got := MaxBits([]uint64{5, 12, 3, 15}); got != 4 {
		t.Errorf("MaxBits(uint64) = %d, want 4", got)
	}
	if got := MaxBits([]uint64{1 << 39, 100, 200}); got != 40 {
		t.Errorf("MaxBits(uint64) = %d, want 40", got)
	}
	if got := MaxBits([]uint8{0x80}); got != 8 {
		t.Errorf("MaxBits(uint8) = %d, want 8", got)
	}
}

func TestBitsNeeded(t *testing.T) {
	tests := []struct {
		val  uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{255, 8},
		{256, 9},
		{1<<64 - 1, 64},
	}
	for _, tt := range tests {
		if got := BitsNeeded(tt.val); got != tt.want {
			t.Errorf("BitsNeeded(%d) = %d, want %d", tt.val, got, tt.want)
		}
	}
	if TypeBits[uint16]() != 16 || TypeBits[uint32]() != 32 || TypeBits[uint64]() != 64 {
		t.Error("TypeBits mismatch")
	}
}

func TestPackedSize(t *testing.T) {
	tests := []struct {
		n        int
		bitWidth int
		want     int
	}{
		{0, 4, 0},
		{8, 0, 0},
		{8, 4, 4},   // 8 * 4 = 32 bits = 4 bytes
		{8, 5, 5},   // 8 * 5 = 40 bits = 5 bytes
		{10, 3, 4},  // 10 * 3 = 30 bits = 4 bytes (rounded up)
		{16, 8, 16}, // 16 * 8 = 128 bits = 16 bytes
		{1, 1, 1},   // 1 * 1 = 1 bit = 1 byte
		{3, 9, 4},   // 27 bits
	}

	for _, tt := range tests {
		got := PackedSize(tt.n, tt.bitWidth)
		if got != tt.want {
			t.Errorf("PackedSize(%d, %d) = %d, want %d", tt.n, tt.bitWidth, got, tt.want)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	tests := []struct {
		n        int
		bitWidth int
		want     int
	}{
		{4, 0, 0},
		{4, 1, 4},
		{4, 8, 4},
		{4, 9, 8},
		{3, 33, 15},
		{2, 64, 16},
	}
	for _, tt := range tests {
		if got := AlignedSize(tt.n, tt.bitWidth); got != tt.want {
			t.Errorf("AlignedSize(%d, %d) = %d, want %d", tt.n, tt.bitWidth, got, tt.want)
		}
	}
}

func TestPackLayout(t *testing.T) {
	tests := []struct {
		name     string
		src      []uint32
		bitWidth int
		want     []byte
	}{
		{"4-bit nibbles", []uint32{5, 12, 3, 15, 7, 2, 9, 11}, 4, []byte{0xc5, 0xf3, 0x27, 0xb9}},
		{"1-bit values", []uint32{1, 0, 1, 1, 0, 0, 0, 1, 1}, 1, []byte{0x8d, 0x01}},
		{"3-bit straddling bytes", []uint32{7, 0, 7}, 3, []byte{0xc7, 0x01}},
		{"truncated to width", []uint32{0x1ff}, 4, []byte{0x0f}},
		{"full width", []uint32{0xdeadbeef}, 32, []byte{0xef, 0xbe, 0xad, 0xde}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Stale bytes in dst must not leak into the output.
			dst := bytes.Repeat([]byte{0xaa}, PackedSize(len(tt.src), tt.bitWidth))
			n := Pack(tt.src, tt.bitWidth, dst)
			if n != len(tt.want) {
				t.Fatalf("Pack() = %d, want %d", n, len(tt.want))
			}
			if !bytes.Equal(dst, tt.want) {
				t.Errorf("packed = %x, want %x", dst, tt.want)
			}
		})
	}
}

func TestPack32Unpack32(t *testing.T) {
	tests := []struct {
		name     string
		src      []uint32
		bitWidth int
	}{
		{
			name:     "4-bit values",
			src:      []uint32{5, 12, 3, 15, 7, 2, 9, 11},
			bitWidth: 4,
		},
		{
			name:     "1-bit values",
			src:      []uint32{0, 1, 1, 0, 1, 0, 0, 1},
			bitWidth: 1,
		},
		{
			name:     "5-bit values",
			src:      []uint32{0, 1, 15, 31, 20, 10, 5, 25},
			bitWidth: 5,
		},
		{
			name:     "12-bit values",
			src:      []uint32{0, 1000, 2000, 3000, 4095, 100, 500, 750},
			bitWidth: 12,
		},
		{
			name:     "non-aligned count",
			src:      []uint32{1, 2, 3, 4, 5},
			bitWidth: 4,
		},
		{
			name:     "32-bit values",
			src:      []uint32{1 << 31, 0xFFFFFFFF, 0x12345678, 0xDEADBEEF},
			bitWidth: 32,
		},
		{
			name:     "wider than type is clamped",
			src:      []uint32{0xFFFFFFFF, 1},
			bitWidth: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width := min(tt.bitWidth, 32)
			packed := make([]byte, PackedSize(len(tt.src), width))
			if n := Pack(tt.src, tt.bitWidth, packed); n != len(packed) {
				t.Fatalf("Pack() = %d, want %d", n, len(packed))
			}

			unpacked := make([]uint32, len(tt.src))
			count := Unpack(packed, tt.bitWidth, unpacked)
			if count != len(tt.src) {
				t.Fatalf("Unpack() returned %d, want %d", count, len(tt.src))
			}

			mask := lowMask[uint32](width)
			for i := range tt.src {
				expected := tt.src[i] & mask
				if unpacked[i] != expected {
					t.Errorf("unpacked[%d] = %d, want %d", i, unpacked[i], expected)
				}
			}
		})
	}
}

func TestPack64Unpack64(t *testing.T) {
	tests := []struct {
		name     string
		src      []uint64
		bitWidth int
	}{
		{
			name:     "4-bit values",
			src:      []uint64{5, 12, 3, 15},
			bitWidth: 4,
		},
		{
			name:     "40-bit values",
			src:      []uint64{1 << 39, 1 << 38, 1 << 37, 1 << 36},
			bitWidth: 40,
		},
		{
			name:     "64-bit values",
			src:      []uint64{^uint64(0), 0x0123456789abcdef, 0, 1},
			bitWidth: 64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := make([]byte, PackedSize(len(tt.src), tt.bitWidth))
			Pack(tt.src, tt.bitWidth, packed)

			unpacked := make([]uint64, len(tt.src))
			if count := Unpack(packed, tt.bitWidth, unpacked); count != len(tt.src) {
				t.Fatalf("Unpack() returned %d, want %d", count, len(tt.src))
			}
			for i := range tt.src {
				if unpacked[i] != tt.src[i] {
					t.Errorf("unpacked[%d] = %d, want %d", i, unpacked[i], tt.src[i])
				}
			}
		})
	}
}

func TestUnpackShortInput(t *testing.T) {
	// 3 bytes hold two complete 12-bit values.
	dst := make([]uint16, 4)
	if got := Unpack([]byte{0x34, 0x12, 0xab}, 12, dst); got != 2 {
		t.Fatalf("Unpack() = %d, want 2", got)
	}
	if dst[0] != 0x234 || dst[1] != 0xab1 {
		t.Errorf("Unpack() = %x", dst[:2])
	}
}

func TestPackUnpackRoundtrip(t *testing.T) {
	// Test with random data at various bit widths
	rng := rand.New(rand.NewPCG(42, 42))

	for bitWidth := 1; bitWidth <= 16; bitWidth++ {
		for _, n := range []int{1, 15, 16, 17, 128} {
			t.Run(fmt.Sprintf("bits=%d/n=%d", bitWidth, n), func(t *testing.T) {
				src := make([]uint16, n)
				for i := range src {
					src[i] = uint16(rng.Uint32()) & lowMask[uint16](bitWidth)
				}

				packed := make([]byte, PackedSize(n, bitWidth))
				Pack(src, bitWidth, packed)

				unpacked := make([]uint16, n)
				Unpack(packed, bitWidth, unpacked)

				for i := range src {
					if unpacked[i] != src[i] {
						t.Errorf("idx=%d: got %d, want %d", i, unpacked[i], src[i])
					}
				}
			})
		}
	}
}

func TestPackAligned(t *testing.T) {
	tests := []struct {
		name     string
		src      []uint32
		bitWidth int
		want     []byte
	}{
		{"one byte per element", []uint32{1, 2, 255}, 8, []byte{1, 2, 255}},
		{"9 bits rounds to two bytes", []uint32{0x1ff, 0x100}, 9, []byte{0xff, 0x01, 0x00, 0x01}},
		{"truncated", []uint32{0x3ff}, 9, []byte{0xff, 0x01}},
		{"24 bits", []uint32{0xabcdef}, 24, []byte{0xef, 0xcd, 0xab}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, AlignedSize(len(tt.src), tt.bitWidth))
			if n := PackAligned(tt.src, tt.bitWidth, dst); n != len(tt.want) {
				t.Fatalf("PackAligned() = %d, want %d", n, len(tt.want))
			}
			if !bytes.Equal(dst, tt.want) {
				t.Errorf("packed = %x, want %x", dst, tt.want)
			}

			out := make([]uint32, len(tt.src))
			if n := UnpackAligned(dst, tt.bitWidth, out); n != len(tt.src) {
				t.Fatalf("UnpackAligned() = %d, want %d", n, len(tt.src))
			}
			for i, v := range tt.src {
				if want := v & lowMask[uint32](tt.bitWidth); out[i] != want {
					t.Errorf("out[%d] = %d, want %d", i, out[i], want)
				}
			}
		})
	}
}

func TestEmptyInputs(t *testing.T) {
	// Test edge cases with empty inputs
	if got := MaxBits([]uint32{}); got != 0 {
		t.Errorf("MaxBits([]) = %d, want 0", got)
	}

	if got := Pack([]uint32{}, 4, nil); got != 0 {
		t.Errorf("Pack([], 4, nil) = %d, want 0", got)
	}

	if got := Unpack([]byte{}, 4, []uint32(nil)); got != 0 {
		t.Errorf("Unpack([], 4, nil) = %d, want 0", got)
	}

	// Zero bit width
	src := []uint32{1, 2, 3}
	if got := Pack(src, 0, nil); got != 0 {
		t.Errorf("Pack(src, 0, nil) = %d, want 0", got)
	}
	if got := PackAligned(src, 0, nil); got != 0 {
		t.Errorf("PackAligned(src, 0, nil) = %d, want 0", got)
	}
}

// Benchmarks

func BenchmarkMaxBits32(b *testing.B) {
	for _, size := range []int{64, 256, 1024, 4096} {
		data := make([]uint32, size)
		for i := range data {
			data[i] = uint32(i % 1000)
		}
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = MaxBits(data)
			}
		})
	}
}

func BenchmarkPack32(b *testing.B) {
	for _, size := range []int{64, 256, 1024, 4096} {
		data := make([]uint32, size)
		for i := range data {
			data[i] = uint32(i % 1000)
		}

		for _, bw := range []int{4, 10, 16} {
			packed := make([]byte, PackedSize(size, bw))
			b.Run(fmt.Sprintf("%d_%dbits", size, bw), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(size * 4))
				for b.Loop() {
					Pack(data, bw, packed)
				}
			})
		}
	}
}

func BenchmarkUnpack32(b *testing.B) {
	for _, size := range []int{64, 256, 1024, 4096} {
		data := make([]uint32, size)
		for i := range data {
			data[i] = uint32(i % 1000)
		}

		for _, bw := range []int{10, 16} {
			packed := make([]byte, PackedSize(size, bw))
			Pack(data, bw, packed)
			unpacked := make([]uint32, size)

			b.Run(fmt.Sprintf("%d_%dbits", size, bw), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(size * 4))
				for b.Loop() {
					Unpack(packed, bw, unpacked)
				}
			})
		}
	}
}
