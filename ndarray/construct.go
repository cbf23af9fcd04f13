package ndarray

import (
	"slices"
)

// Empty returns an array of the given rank with no elements: every extent
// and stride is zero and Data returns nil.
func Empty[T comparable, O Order](rank int, opts ...Option[T]) *Array[T, O] {
	if rank < 0 {
		panic(rankError(rank, 0))
	}
	o := applyOptions(opts)
	return &Array[T, O]{
		shape:     make([]int, rank),
		strides:   make([]int, rank),
		allocator: o.allocator,
	}
}

// New returns an array with one extent per argument, holding zero values.
// The rank is the number of extents. New panics on a negative extent.
func New[T comparable, O Order](extents ...int) *Array[T, O] {
	return FromShape[T, O](Shape(extents))
}

// Full returns an array with one extent per argument, every element set to value.
func Full[T comparable, O Order](value T, extents ...int) *Array[T, O] {
	return FromShape[T, O](Shape(extents), WithFill(value))
}

// FromShape returns an array with the given shape. Elements start as the
// zero value unless WithFill is supplied. FromShape panics on a negative
// extent.
func FromShape[T comparable, O Order](shape Shape, opts ...Option[T]) *Array[T, O] {
	if err := checkExtents(shape); err != nil {
		panic(err)
	}
	return newArray[T, O](shape, applyOptions(opts))
}

// newArray allocates an array of the given non-negative shape.
func newArray[T comparable, O Order](shape []int, o *options[T]) *Array[T, O] {
	var ord O
	a := &Array[T, O]{
		shape:     slices.Clone(shape),
		strides:   make([]int, len(shape)),
		allocator: o.allocator,
	}
	total := ord.Strides(a.shape, a.strides)
	a.data = o.allocator.Allocate(total)

	var zero T
	if o.fill != zero {
		fillSlice(a.data, o.fill)
	}
	return a
}
