package hwy

// This file provides pure Go implementations of table lookups.
// Hardware versions of these are PSHUFB/VPERMB on x86 and TBL on ARM.

// GatherIndex loads elements from table locations specified by indices.
// For each lane i in the index vector, it loads tbl[indices[i]].
// If an index is out of bounds (negative or >= len(tbl)), the result for that lane is zero.
func GatherIndex[T Lanes, I Integers](tbl []T, indices Vec[I]) Vec[T] {
	r := Vec[T]{n: min(indices.n, MaxVectorBytes)}
	for i := range r.n {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(tbl) {
			r.data[i] = tbl[idx]
		}
	}
	return r
}

// TableLookupBytes performs a lane-level table lookup within a vector.
// Each lane in idx specifies which lane from tbl to select; out of range
// indices select zero.
func TableLookupBytes[T Lanes](tbl, idx Vec[T]) Vec[T] {
	r := Vec[T]{n: idx.n}
	for i := range idx.n {
		idxVal := int(idx.data[i])
		if idxVal >= 0 && idxVal < tbl.n {
			r.data[i] = tbl.data[idxVal]
		}
	}
	return r
}
