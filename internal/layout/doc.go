// Package layout maps N-dimensional indices onto flat storage.
//
// Every array in this module stores its elements in one contiguous buffer.
// An [Order] decides how a shape translates into strides, the per-dimension
// element steps through that buffer, and in which order indices are visited.
//
// # Orders
//
//   - [RowMajor]: The last dimension is contiguous. strides[N-1] == 1 and
//     every earlier stride is the product of the extents after it.
//   - [ColumnMajor]: The first dimension is contiguous. strides[0] == 1 and
//     every later stride is the product of the extents before it.
//
// Orders are zero-size types, so they can be passed as type parameters and
// called through their zero value:
//
//	strides, total := layout.Compute[layout.RowMajor]([]int{2, 3, 4})
//	// strides == [12 4 1], total == 24
//
// # Offsets
//
// [Offset] is the sum of index[i]*strides[i]. It performs no bounds checks;
// [InBounds] is available for callers that want them.
//
// # Iteration
//
// [Indices] and [Backward] yield every multi-index of a shape in increasing or
// decreasing storage order. Resizing in place relies on that order: a copy
// that only moves elements towards lower offsets is safe front to back, and
// one that only moves them towards higher offsets is safe back to front.
//
// # Region Copying
//
// [CopyRegion] copies a rectangular block between two strided buffers. It
// works by recursively iterating through dimensions:
//
//  1. For each position in the current dimension, advance the source and
//     destination offsets by their own strides
//  2. Recurse to the next dimension until reaching the innermost dimension
//  3. At the innermost dimension, use a single copy when both sides are
//     contiguous, otherwise copy element by element
package layout
