package ndarray

import (
	"github.com/robert-malhotra/go-ndarray/internal/alloc"
	"github.com/robert-malhotra/go-ndarray/internal/layout"
)

// Shape holds one extent per dimension.
type Shape []int

// NumElements returns the product of the extents.
func (s Shape) NumElements() int {
	return layout.NumElements(s)
}

// Order is the constraint for an array's memory layout.
type Order = layout.Order

// RowMajor keeps the last dimension contiguous.
type RowMajor = layout.RowMajor

// ColumnMajor keeps the first dimension contiguous.
type ColumnMajor = layout.ColumnMajor

// Allocator supplies and releases element buffers.
type Allocator[T any] = alloc.Allocator[T]

// HeapAllocator is the default allocator, backed by the Go heap.
type HeapAllocator[T any] = alloc.Heap[T]

// TrackingAllocator records every buffer it hands out; see [NewTrackingAllocator].
type TrackingAllocator[T any] = alloc.Tracking[T]

// AllocStats contains a TrackingAllocator's statistics.
type AllocStats = alloc.Stats

// NewTrackingAllocator returns an allocator that counts allocations,
// reallocations and releases. Useful for asserting that an operation did or
// did not reallocate.
func NewTrackingAllocator[T any]() *TrackingAllocator[T] {
	return alloc.NewTracking[T]()
}
