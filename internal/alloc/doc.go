// Package alloc provides element buffer allocation for N-dimensional arrays.
//
// An array owns exactly one contiguous buffer. It obtains that buffer, grows
// or shrinks it, and gives it back through an [Allocator], so callers can
// substitute their own pooling or accounting without the array knowing.
//
// # Allocators
//
//   - [Heap]: The default. Buffers come from make and are reclaimed by the
//     garbage collector; Deallocate does nothing.
//   - [Tracking]: A heap allocator that records every buffer it hands out.
//     It is safe for concurrent use and is mainly used by tests to assert
//     that an operation did or did not allocate.
//
// # Reallocation
//
// Reallocate keeps a buffer in place whenever the requested length fits its
// capacity. Elements exposed past the old length are zeroed, so callers never
// observe stale values from an earlier, longer use of the same storage.
//
//	buf := a.Allocate(9)
//	buf = a.Reallocate(buf, 4) // same backing array
//	buf = a.Reallocate(buf, 6) // still the same, buf[4:6] zeroed
//	buf = a.Reallocate(buf, 16) // moved; old storage released
//
// # Validation
//
// [Tracking.Validate] reports Deallocate calls for buffers the allocator never
// handed out or already took back. [Tracking.Live] counts outstanding buffers.
package alloc
