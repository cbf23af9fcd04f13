package ndarray

import (
	"slices"

	"github.com/robert-malhotra/go-ndarray/internal/layout"
)

// Resize changes the extents of a, keeping every value whose multi-index lies
// inside both the old and the new shape. Cells the old shape did not cover get
// fill[0], or the zero value when fill is omitted.
//
// The buffer is reused whenever the new element count fits its capacity, so a
// shrink never reallocates and Data keeps its address. Otherwise a new buffer
// is allocated and the old one released. Views of a must be rebuilt either way.
//
// Resize fails with ErrRankMismatch or ErrNegativeExtent and leaves a
// untouched.
func (a *Array[T, O]) Resize(shape Shape, fill ...T) error {
	if len(shape) != len(a.shape) {
		return rankError(len(shape), len(a.shape))
	}
	if err := checkExtents(shape); err != nil {
		return err
	}

	var ord O
	newShape := slices.Clone([]int(shape))
	newStrides := make([]int, len(newShape))
	total := ord.Strides(newShape, newStrides)
	value := fillValue(fill)

	overlap := make([]int, len(newShape))
	grows, shrinks := false, false
	for i := range overlap {
		overlap[i] = min(a.shape[i], newShape[i])
		grows = grows || newShape[i] > a.shape[i]
		shrinks = shrinks || newShape[i] < a.shape[i]
	}

	// A rank-0 array without a buffer still has an overlap of one element.
	hasOld := len(a.data) > 0

	if total <= cap(a.data) {
		data := a.data[:total]
		switch {
		case !hasOld:
			fillSlice(data, value)
		case !grows:
			// Every new offset is at or below its old offset.
			for idx := range layout.Indices[O](overlap) {
				data[layout.Offset(newStrides, idx)] = a.data[layout.Offset(a.strides, idx)]
			}
			fillOutside[O](data, newShape, newStrides, overlap, value)
		case !shrinks:
			// Every new offset is at or above its old offset.
			for idx := range layout.Backward[O](overlap) {
				data[layout.Offset(newStrides, idx)] = a.data[layout.Offset(a.strides, idx)]
			}
			fillOutside[O](data, newShape, newStrides, overlap, value)
		default:
			a.resizeViaScratch(data, newStrides, overlap, value)
		}
		a.data = data
	} else {
		al := a.allocOrDefault()
		data := al.Allocate(total)
		var zero T
		if value != zero {
			fillSlice(data, value)
		}
		if hasOld {
			layout.CopyRegion(data, newStrides, 0, a.data, a.strides, 0, overlap)
		}
		al.Deallocate(a.data)
		a.data = data
	}

	a.shape = newShape
	a.strides = newStrides
	a.generation++
	return nil
}

// resizeViaScratch handles an in-place resize where some extents grow and
// others shrink, so neither copy direction is safe.
func (a *Array[T, O]) resizeViaScratch(data []T, newStrides, overlap []int, value T) {
	al := a.allocOrDefault()
	scratchStrides, n := layout.Compute[O](overlap)
	scratch := al.Allocate(n)
	layout.CopyRegion(scratch, scratchStrides, 0, a.data, a.strides, 0, overlap)

	fillSlice(data, value)
	layout.CopyRegion(data, newStrides, 0, scratch, scratchStrides, 0, overlap)
	al.Deallocate(scratch)
}

// fillOutside sets every cell of shape outside the overlap region to value.
func fillOutside[O Order, T any](data []T, shape, strides, overlap []int, value T) {
	for idx := range layout.Indices[O](shape) {
		if !layout.InBounds(overlap, idx) {
			data[layout.Offset(strides, idx)] = value
		}
	}
}

// ResizeStorage changes the extents of a while keeping the buffer's storage
// order: the first min(old, new) elements keep their flat offset and are
// reinterpreted under the new strides, and any new tail elements get fill[0]
// or the zero value. Values generally move to different multi-indices; use
// Resize to keep them in place.
//
// The buffer is grown or shrunk through the allocator's Reallocate.
func (a *Array[T, O]) ResizeStorage(shape Shape, fill ...T) error {
	if len(shape) != len(a.shape) {
		return rankError(len(shape), len(a.shape))
	}
	if err := checkExtents(shape); err != nil {
		return err
	}

	var ord O
	newShape := slices.Clone([]int(shape))
	newStrides := make([]int, len(newShape))
	total := ord.Strides(newShape, newStrides)

	old := len(a.data)
	data := a.allocOrDefault().Reallocate(a.data, total)
	if total > old {
		fillSlice(data[old:], fillValue(fill))
	}

	a.data = data
	a.shape = newShape
	a.strides = newStrides
	a.generation++
	return nil
}

func fillValue[T any](fill []T) T {
	var v T
	if len(fill) > 0 {
		v = fill[0]
	}
	return v
}

func fillSlice[T any](data []T, v T) {
	for i := range data {
		data[i] = v
	}
}
