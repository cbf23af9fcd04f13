package ndarray

import (
	"iter"
	"slices"

	"github.com/robert-malhotra/go-ndarray/internal/alloc"
	"github.com/robert-malhotra/go-ndarray/internal/layout"
)

// Array is an owning N-dimensional array of T stored in one flat buffer laid
// out by O. The rank is fixed when the array is constructed.
//
// An Array is not safe for concurrent mutation.
type Array[T comparable, O Order] struct {
	data      []T
	shape     []int
	strides   []int
	allocator alloc.Allocator[T]

	// generation changes whenever the buffer is replaced or its contents
	// are relocated, so checked views can notice.
	generation uint64
}

// Rank returns the number of dimensions.
func (a *Array[T, O]) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array[T, O]) NumElements() int {
	return len(a.data)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T, O]) IsEmpty() bool {
	return len(a.data) == 0
}

// Size returns the extent of dimension i.
func (a *Array[T, O]) Size(i int) int {
	if i < 0 || i >= len(a.shape) {
		panic(rankError(i, len(a.shape)))
	}
	return a.shape[i]
}

// Shape returns a copy of the extents.
func (a *Array[T, O]) Shape() Shape {
	return slices.Clone(Shape(a.shape))
}

// Strides returns a copy of the per-dimension element steps.
func (a *Array[T, O]) Strides() []int {
	return slices.Clone(a.strides)
}

// Data returns the backing buffer in storage order. It is nil for an array
// that never allocated. Writes through it are visible to the array.
func (a *Array[T, O]) Data() []T {
	return a.data
}

// Generation returns a counter that changes whenever Resize, ResizeStorage,
// Move or Assign replaces the shape or relocates the contents.
func (a *Array[T, O]) Generation() uint64 {
	return a.generation
}

func (a *Array[T, O]) offset(index []int) int {
	if len(index) != len(a.shape) {
		panic(rankError(len(index), len(a.shape)))
	}
	if debug {
		checkIndex(a.shape, index)
	}
	return layout.Offset(a.strides, index)
}

// At returns the element at the multi-index. It accepts the indices either
// positionally, At(i, j, k), or as a slice, At(index...).
//
// At panics with ErrRankMismatch if the number of indices differs from the
// rank. Per-dimension bounds are only checked in ndarraydebug builds.
func (a *Array[T, O]) At(index ...int) T {
	return a.data[a.offset(index)]
}

// Set stores v at the multi-index.
func (a *Array[T, O]) Set(v T, index ...int) {
	a.data[a.offset(index)] = v
}

// Ptr returns a pointer to the element at the multi-index. The pointer is
// invalidated by any operation that reallocates the buffer.
func (a *Array[T, O]) Ptr(index ...int) *T {
	return &a.data[a.offset(index)]
}

// Row fixes the first N-1 indices and returns the contiguous run of
// Size(N-1) elements starting at that position:
//
//	data[off : off+shape[N-1]] where off = Offset(strides, prefix..., 0)
//
// For row-major arrays this is the innermost row. For column-major arrays the
// run is still contiguous in storage but does not follow the last dimension.
func (a *Array[T, O]) Row(prefix ...int) []T {
	n := len(a.shape)
	if n == 0 || len(prefix) != n-1 {
		panic(rankError(len(prefix), n-1))
	}
	off := layout.Offset(a.strides[:n-1], prefix)
	end := off + a.shape[n-1]
	return a.data[off:end:end]
}

// Indices yields every multi-index of the array in storage order. The
// yielded slice is reused between iterations.
func (a *Array[T, O]) Indices() iter.Seq[[]int] {
	return layout.Indices[O](a.shape)
}

// All yields every multi-index with its element, in storage order.
func (a *Array[T, O]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for idx := range layout.Indices[O](a.shape) {
			if !yield(idx, a.data[layout.Offset(a.strides, idx)]) {
				return
			}
		}
	}
}

// Equal reports whether a and b have the same extents and the same buffer
// contents in storage order. It does not normalise layouts.
func (a *Array[T, O]) Equal(b *Array[T, O]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return slices.Equal(a.shape, b.shape) && slices.Equal(a.data, b.data)
}

// Clone returns a deep copy of a that uses the same allocator.
func (a *Array[T, O]) Clone() *Array[T, O] {
	al := a.allocOrDefault()
	c := &Array[T, O]{
		shape:     slices.Clone(a.shape),
		strides:   slices.Clone(a.strides),
		allocator: al,
	}
	c.data = al.Allocate(len(a.data))
	copy(c.data, a.data)
	return c
}

// Move transfers a's buffer, shape and strides to a new Array and leaves a
// empty: no elements, every extent and stride zero, same rank.
func (a *Array[T, O]) Move() *Array[T, O] {
	m := &Array[T, O]{
		data:      a.data,
		shape:     a.shape,
		strides:   a.strides,
		allocator: a.allocator,
	}
	a.data = nil
	a.shape = make([]int, len(m.shape))
	a.strides = make([]int, len(m.strides))
	a.generation++
	return m
}

// Assign replaces a's contents with a deep copy of src. The rank of a becomes
// the rank of src. a's old buffer is released through its allocator.
func (a *Array[T, O]) Assign(src *Array[T, O]) {
	if a == src {
		return
	}
	al := a.allocOrDefault()
	data := al.Allocate(len(src.data))
	copy(data, src.data)
	al.Deallocate(a.data)

	a.data = data
	a.shape = slices.Clone(src.shape)
	a.strides = slices.Clone(src.strides)
	a.generation++
}

func (a *Array[T, O]) allocOrDefault() alloc.Allocator[T] {
	if a.allocator == nil {
		a.allocator = alloc.Heap[T]{}
	}
	return a.allocator
}
