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

// This file provides the pure Go implementations of the lane operations.
// Every loop runs over a compile-time bounded inline array, which the Go
// compiler keeps on the stack.

// Load creates a vector by loading up to d's lane count elements from src.
// Lanes beyond len(src) are zero.
func Load[T Lanes](d Tag, src []T) Vec[T] {
	n := lanesFor[T](d)
	v := Vec[T]{n: n}
	copy(v.data[:n], src)
	return v
}

// Store writes a vector's lanes to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](d Tag, value T) Vec[T] {
	n := lanesFor[T](d)
	v := Vec[T]{n: n}
	for i := range n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes](d Tag) Vec[T] {
	return Vec[T]{n: lanesFor[T](d)}
}

// GetLane returns the value of lane idx, or zero if idx is out of range.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= v.n {
		var zero T
		return zero
	}
	return v.data[idx]
}

// Add performs element-wise (wrapping) addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise (wrapping) subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = min(a.data[i], b.data[i])
	}
	return r
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = max(a.data[i], b.data[i])
	}
	return r
}

// ReduceMax returns the largest lane, or zero for an empty vector.
func ReduceMax[T Lanes](v Vec[T]) T {
	var m T
	if v.n == 0 {
		return m
	}
	m = v.data[0]
	for i := 1; i < v.n; i++ {
		m = max(m, v.data[i])
	}
	return m
}

// And performs element-wise bitwise AND.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] & b.data[i]
	}
	return r
}

// Or performs element-wise bitwise OR.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] | b.data[i]
	}
	return r
}

// Xor performs element-wise bitwise XOR.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] ^ b.data[i]
	}
	return r
}

// AndNot computes (^a) & b element-wise.
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = ^a.data[i] & b.data[i]
	}
	return r
}

// ShiftLeft shifts each lane left by bits. Bits shifted past the lane
// width are discarded.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = v.data[i] << uint(bits)
	}
	return r
}

// ShiftRight shifts each lane right by bits (logical for unsigned lanes,
// arithmetic for signed lanes).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = v.data[i] >> uint(bits)
	}
	return r
}

// Equal returns a mask of lanes where a == b.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] == b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// NotEqual returns a mask of lanes where a != b.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return MaskNot(Equal(a, b))
}

// LessThan returns a mask of lanes where a < b.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		if a.data[i] < b.data[i] {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// GreaterThan returns a mask of lanes where a > b.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return LessThan(b, a)
}

// LessEqual returns a mask of lanes where a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return MaskNot(LessThan(b, a))
}

// GreaterEqual returns a mask of lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return MaskNot(LessThan(a, b))
}

// IfThenElse selects elements from a where mask is true, b where false.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	r := Vec[T]{n: a.n}
	for i := range a.n {
		if mask.bits&(1<<uint(i)) != 0 {
			r.data[i] = a.data[i]
		}
	}
	return r
}
