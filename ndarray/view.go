package ndarray

import (
	"fmt"
	"iter"
	"slices"

	"github.com/robert-malhotra/go-ndarray/internal/layout"
)

// View is a non-owning window into another array's buffer with its own shape
// and strides. It never allocates, resizes or releases the buffer.
//
// A view does not track its owner. After the owner is resized, moved or
// reassigned, the view keeps addressing the storage it was built on, which may
// no longer be the owner's buffer or may hold relocated values. Rebuild views
// after such operations, or use [View.Checked] to have stale access panic.
type View[T comparable, O Order] struct {
	data    []T
	shape   []int
	strides []int

	owner      *Array[T, O]
	generation uint64
	checked    bool
}

// NewView returns a view of a starting at the multi-index start with the
// given shape. start must have one index per dimension of a.
//
// A view of rank M < N spans the trailing M dimensions of a; the leading N-M
// dimensions stay fixed at start[:N-M]. So for every in-range j
//
//	v.At(j...) == a.At(start[:N-M]..., start[N-M:] + j...)
//
// Use NewViewAxes to span a different subset of dimensions.
func NewView[T comparable, O Order](a *Array[T, O], start []int, shape Shape) (*View[T, O], error) {
	n, m := a.Rank(), len(shape)
	if m > n {
		return nil, rankError(m, n)
	}
	axes := make([]int, m)
	for j := range axes {
		axes[j] = n - m + j
	}
	return NewViewAxes(a, start, axes, shape)
}

// NewViewAxes returns a view of a that spans the given dimensions of a, in
// increasing order, with one extent per spanned dimension. The remaining
// dimensions stay fixed at their start index.
//
// The addressed region must lie within a: for a spanned dimension d with
// extent e, start[d]+e <= a.Size(d); for a fixed dimension, start[d] < a.Size(d).
// Otherwise NewViewAxes fails with ErrOutOfRange.
func NewViewAxes[T comparable, O Order](a *Array[T, O], start, axes []int, shape Shape) (*View[T, O], error) {
	n := a.Rank()
	if len(start) != n {
		return nil, rankError(len(start), n)
	}
	if len(axes) != len(shape) {
		return nil, rankError(len(axes), len(shape))
	}
	if err := checkExtents(shape); err != nil {
		return nil, err
	}

	strides := make([]int, len(axes))
	j := 0
	for d := 0; d < n; d++ {
		if j < len(axes) && axes[j] < d {
			return nil, fmt.Errorf("%w: axes %v must be increasing and below %d", ErrOutOfRange, axes, n)
		}
		if j < len(axes) && axes[j] == d {
			if start[d] < 0 || start[d]+shape[j] > a.shape[d] {
				return nil, fmt.Errorf("%w: dimension %d spans [%d, %d) of %d",
					ErrOutOfRange, d, start[d], start[d]+shape[j], a.shape[d])
			}
			strides[j] = a.strides[d]
			j++
			continue
		}
		if start[d] < 0 || start[d] >= a.shape[d] {
			return nil, fmt.Errorf("%w: index %d of fixed dimension %d, extent %d",
				ErrOutOfRange, start[d], d, a.shape[d])
		}
	}
	if j != len(axes) {
		return nil, fmt.Errorf("%w: axes %v must be increasing and below %d", ErrOutOfRange, axes, n)
	}

	// An empty view may start one past the end of a spanned dimension.
	var base int
	if layout.NumElements(shape) > 0 {
		base = layout.Offset(a.strides, start)
	}
	v := newView[T, O](a.data[base:], shape, strides)
	v.owner = a
	v.generation = a.generation
	return v, nil
}

// ViewOf returns a view over buf with the given extents and strides computed
// by O. The view has no owner. It fails with ErrShortBuffer if buf holds fewer
// elements than the extents address.
func ViewOf[T comparable, O Order](buf []T, extents ...int) (*View[T, O], error) {
	if err := checkExtents(extents); err != nil {
		return nil, err
	}
	strides, total := layout.Compute[O](extents)
	if total > len(buf) {
		return nil, fmt.Errorf("%w: %d elements for shape %v, need %d", ErrShortBuffer, len(buf), extents, total)
	}
	return newView[T, O](buf, extents, strides), nil
}

func newView[T comparable, O Order](data []T, shape, strides []int) *View[T, O] {
	return &View[T, O]{
		data:    data,
		shape:   slices.Clone(shape),
		strides: strides,
	}
}

// Sub returns a view of v following the same contract as NewView.
func (v *View[T, O]) Sub(start []int, shape Shape) (*View[T, O], error) {
	v.check()
	n, m := len(v.shape), len(shape)
	if len(start) != n {
		return nil, rankError(len(start), n)
	}
	if m > n {
		return nil, rankError(m, n)
	}
	if err := checkExtents(shape); err != nil {
		return nil, err
	}
	for d := 0; d < n; d++ {
		if d < n-m {
			if start[d] < 0 || start[d] >= v.shape[d] {
				return nil, fmt.Errorf("%w: index %d of fixed dimension %d, extent %d",
					ErrOutOfRange, start[d], d, v.shape[d])
			}
			continue
		}
		if e := shape[d-(n-m)]; start[d] < 0 || start[d]+e > v.shape[d] {
			return nil, fmt.Errorf("%w: dimension %d spans [%d, %d) of %d",
				ErrOutOfRange, d, start[d], start[d]+e, v.shape[d])
		}
	}

	var base int
	if layout.NumElements(shape) > 0 {
		base = layout.Offset(v.strides, start)
	}
	sub := newView[T, O](v.data[base:], shape, slices.Clone(v.strides[n-m:]))
	sub.owner = v.owner
	sub.generation = v.generation
	sub.checked = v.checked
	return sub, nil
}

// Checked returns a copy of v that panics with ErrDanglingView on any access
// once its owner has been resized, moved or reassigned.
func (v *View[T, O]) Checked() *View[T, O] {
	c := *v
	c.checked = true
	return &c
}

// Valid reports whether the owner still has the shape and storage the view
// was built on. Views over raw buffers are always valid.
func (v *View[T, O]) Valid() bool {
	return v.owner == nil || v.owner.generation == v.generation
}

func (v *View[T, O]) check() {
	if v.checked && !v.Valid() {
		panic(ErrDanglingView)
	}
}

// Rank returns the number of dimensions of the view.
func (v *View[T, O]) Rank() int {
	return len(v.shape)
}

// NumElements returns the number of elements the view addresses.
func (v *View[T, O]) NumElements() int {
	return layout.NumElements(v.shape)
}

// Size returns the extent of dimension i.
func (v *View[T, O]) Size(i int) int {
	if i < 0 || i >= len(v.shape) {
		panic(rankError(i, len(v.shape)))
	}
	return v.shape[i]
}

// Shape returns a copy of the extents.
func (v *View[T, O]) Shape() Shape {
	return slices.Clone(Shape(v.shape))
}

// Strides returns a copy of the per-dimension element steps.
func (v *View[T, O]) Strides() []int {
	return slices.Clone(v.strides)
}

// Data returns the aliased storage starting at the view's origin. It runs to
// the end of the underlying buffer, not just over the addressed elements.
func (v *View[T, O]) Data() []T {
	v.check()
	return v.data
}

func (v *View[T, O]) offset(index []int) int {
	if len(index) != len(v.shape) {
		panic(rankError(len(index), len(v.shape)))
	}
	if debug {
		checkIndex(v.shape, index)
	}
	v.check()
	return layout.Offset(v.strides, index)
}

// At returns the element at the multi-index.
func (v *View[T, O]) At(index ...int) T {
	return v.data[v.offset(index)]
}

// Set stores x at the multi-index, writing through to the owner.
func (v *View[T, O]) Set(x T, index ...int) {
	v.data[v.offset(index)] = x
}

// Ptr returns a pointer to the element at the multi-index.
func (v *View[T, O]) Ptr(index ...int) *T {
	return &v.data[v.offset(index)]
}

// Row behaves like [Array.Row] on the view's strides: it fixes the first M-1
// indices and returns the contiguous storage run of Size(M-1) elements
// starting there. The run follows the view's last dimension only when
// Strides()[M-1] == 1. Otherwise it holds neighbouring storage slots, which
// may include elements the view does not address; use At or All to walk the
// view's own elements.
func (v *View[T, O]) Row(prefix ...int) []T {
	n := len(v.shape)
	if n == 0 || len(prefix) != n-1 {
		panic(rankError(len(prefix), n-1))
	}
	v.check()
	off := layout.Offset(v.strides[:n-1], prefix)
	end := off + v.shape[n-1]
	return v.data[off:end:end]
}

// Indices yields every multi-index of the view in the order O would store
// them. The yielded slice is reused between iterations.
func (v *View[T, O]) Indices() iter.Seq[[]int] {
	return layout.Indices[O](v.shape)
}

// All yields every multi-index of the view with its element.
func (v *View[T, O]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		v.check()
		for idx := range layout.Indices[O](v.shape) {
			if !yield(idx, v.data[layout.Offset(v.strides, idx)]) {
				return
			}
		}
	}
}

// Equal reports whether v and w have the same extents and hold equal
// elements at every multi-index. Each side is walked through its own strides,
// so neither needs to be dense.
func (v *View[T, O]) Equal(w *View[T, O]) bool {
	if v == w {
		return true
	}
	if v == nil || w == nil {
		return false
	}
	if !slices.Equal(v.shape, w.shape) {
		return false
	}
	v.check()
	w.check()
	for idx := range layout.Indices[O](v.shape) {
		if v.data[layout.Offset(v.strides, idx)] != w.data[layout.Offset(w.strides, idx)] {
			return false
		}
	}
	return true
}

// Clone copies the addressed elements into a new dense Array laid out by O.
func (v *View[T, O]) Clone(opts ...Option[T]) *Array[T, O] {
	v.check()
	a := newArray[T, O](v.shape, applyOptions(opts))
	layout.CopyRegion(a.data, a.strides, 0, v.data, v.strides, 0, v.shape)
	return a
}
