package layout

import "iter"

// Offset returns the flat buffer offset of index: the sum of index[i]*strides[i].
// It performs no bounds checking; index must have at least len(strides) entries.
func Offset(strides, index []int) int {
	off := 0
	for i, s := range strides {
		off += index[i] * s
	}
	return off
}

// NumElements returns the product of the extents in shape.
// An empty shape addresses a single element.
func NumElements(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// InBounds reports whether every index[i] lies in [0, shape[i]).
func InBounds(shape, index []int) bool {
	if len(index) != len(shape) {
		return false
	}
	for i, d := range shape {
		if index[i] < 0 || index[i] >= d {
			return false
		}
	}
	return true
}

// Indices yields every multi-index within shape in the storage order of O.
// The yielded slice is reused between iterations and must be copied to be
// retained. Nothing is yielded when any extent is zero.
func Indices[O Order](shape []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if NumElements(shape) == 0 {
			return
		}
		var o O
		index := make([]int, len(shape))
		for {
			if !yield(index) {
				return
			}
			if !o.Advance(shape, index) {
				return
			}
		}
	}
}

// Backward yields the multi-indices of Indices in reverse order.
func Backward[O Order](shape []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if NumElements(shape) == 0 {
			return
		}
		var o O
		index := make([]int, len(shape))
		for d := range index {
			index[d] = shape[d] - 1
		}
		for {
			if !yield(index) {
				return
			}
			if !o.Retreat(shape, index) {
				return
			}
		}
	}
}
