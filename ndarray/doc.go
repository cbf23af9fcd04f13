// Package ndarray provides fixed-rank N-dimensional arrays stored in a single
// flat buffer with a selectable memory layout.
//
// # Arrays
//
// [Array] owns a contiguous buffer together with its shape and strides. The
// element type and the layout are type parameters; the rank is fixed when the
// array is constructed:
//
//	a := ndarray.New[float64, ndarray.RowMajor](2, 3, 4)
//	a.Set(1.5, 1, 2, 3)
//	x := a.At(1, 2, 3)
//
// [RowMajor] keeps the last dimension contiguous, [ColumnMajor] the first.
// Indexing computes the flat offset as the sum of index[i]*strides[i] with no
// per-dimension bounds check. Builds tagged ndarraydebug check every index
// against its extent and panic with [ErrIndexOutOfRange].
//
// # Construction
//
//   - [Empty]: no elements, every extent zero
//   - [New], [Full]: explicit extents, zero or given fill
//   - [FromShape]: a [Shape] plus [WithFill] / [WithAllocator] options
//   - [FromLiteral], [FromNested]: nested literals, shape inferred from nesting
//
// Nested literals are rectangular by construction; a ragged literal fails with
// [ErrMalformedLiteral] before anything is allocated:
//
//	a, err := ndarray.FromNested[float64, ndarray.RowMajor](2, [][]float64{{0, 1}, {2, 3}})
//
// # Resizing
//
// [Array.Resize] keeps every value at its multi-index and reuses the buffer
// whenever the new size fits its capacity. [Array.ResizeStorage] keeps values
// at their flat offset instead.
//
// # Views
//
// [View] is a non-owning window into an array's buffer with its own shape and
// strides. [NewView] spans the trailing dimensions of the owner from a start
// index; [NewViewAxes] spans a caller-chosen subset; [ViewOf] wraps a raw
// slice. Views do not track their owner: after a resize they address stale
// storage. [View.Checked] turns such access into a panic with [ErrDanglingView].
//
// # Allocation
//
// The buffer comes from an [Allocator]. [HeapAllocator] is the default;
// [NewTrackingAllocator] counts allocations and releases, which tests use to
// observe whether an operation reallocated.
//
// # gonum
//
// [ToDense], [FromMatrix] and [DenseView] convert between rank-2 float64
// arrays and gonum's mat package.
package ndarray
