package hwy

// This file provides the interleaved memory operations the codecs build on.
// They convert between Array-of-Structures memory layouts (pairs of hex
// digits, triples of input bytes, quads of base64 characters) and one
// vector per structure field.

// BlendedStore stores elements from v to dst only where mask is true.
// Existing values in dst are preserved where mask is false.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	n := min(len(dst), mask.n, v.n)
	for i := range n {
		if mask.bits&(1<<uint(i)) != 0 {
			dst[i] = v.data[i]
		}
	}
}

// LoadInterleaved2 loads interleaved pairs and deinterleaves into two vectors
// of d's lane count.
//
// Input memory layout (interleaved pairs):
//
//	[a0, b0, a1, b1, a2, b2, a3, b3, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, a3, ...]
//	vec_b = [b0, b1, b2, b3, ...]
//
// Lanes without a complete pair in src are zero.
func LoadInterleaved2[T Lanes](d Tag, src []T) (Vec[T], Vec[T]) {
	n := lanesFor[T](d)
	a, b := Vec[T]{n: n}, Vec[T]{n: n}

	srcIdx := 0
	for i := 0; i < n && srcIdx+1 < len(src); i++ {
		a.data[i] = src[srcIdx]
		b.data[i] = src[srcIdx+1]
		srcIdx += 2
	}
	return a, b
}

// LoadInterleaved3 loads interleaved triples and deinterleaves into three vectors.
//
// Input memory layout (interleaved triples):
//
//	[a0, b0, c0, a1, b1, c1, a2, b2, c2, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, ...]
//	vec_b = [b0, b1, b2, ...]
//	vec_c = [c0, c1, c2, ...]
func LoadInterleaved3[T Lanes](d Tag, src []T) (Vec[T], Vec[T], Vec[T]) {
	n := lanesFor[T](d)
	a, b, c := Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}

	srcIdx := 0
	for i := 0; i < n && srcIdx+2 < len(src); i++ {
		a.data[i] = src[srcIdx]
		b.data[i] = src[srcIdx+1]
		c.data[i] = src[srcIdx+2]
		srcIdx += 3
	}
	return a, b, c
}

// LoadInterleaved4 loads interleaved quads and deinterleaves into four vectors.
//
// Input memory layout (interleaved quads):
//
//	[a0, b0, c0, d0, a1, b1, c1, d1, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, ...]
//	vec_b = [b0, b1, ...]
//	vec_c = [c0, c1, ...]
//	vec_d = [d0, d1, ...]
func LoadInterleaved4[T Lanes](d Tag, src []T) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	n := lanesFor[T](d)
	a, b, c, e := Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}

	srcIdx := 0
	for i := 0; i < n && srcIdx+3 < len(src); i++ {
		a.data[i] = src[srcIdx]
		b.data[i] = src[srcIdx+1]
		c.data[i] = src[srcIdx+2]
		e.data[i] = src[srcIdx+3]
		srcIdx += 4
	}
	return a, b, c, e
}

// StoreInterleaved2 stores two vectors interleaved to dst.
//
//	[a0, b0, a1, b1, a2, b2, a3, b3, ...]
//
// This is the inverse of LoadInterleaved2.
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	n := min(a.n, b.n)

	dstIdx := 0
	for i := 0; i < n && dstIdx+1 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dstIdx += 2
	}
}

// StoreInterleaved3 stores three vectors interleaved to dst.
//
//	[a0, b0, c0, a1, b1, c1, a2, b2, c2, ...]
//
// This is the inverse of LoadInterleaved3.
func StoreInterleaved3[T Lanes](a, b, c Vec[T], dst []T) {
	n := min(a.n, b.n, c.n)

	dstIdx := 0
	for i := 0; i < n && dstIdx+2 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dst[dstIdx+2] = c.data[i]
		dstIdx += 3
	}
}

// StoreInterleaved4 stores four vectors interleaved to dst.
//
//	[a0, b0, c0, d0, a1, b1, c1, d1, ...]
//
// This is the inverse of LoadInterleaved4.
func StoreInterleaved4[T Lanes](a, b, c, d Vec[T], dst []T) {
	n := min(a.n, b.n, c.n, d.n)

	dstIdx := 0
	for i := 0; i < n && dstIdx+3 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dst[dstIdx+2] = c.data[i]
		dst[dstIdx+3] = d.data[i]
		dstIdx += 4
	}
}
