package alloc

// Allocator supplies contiguous element buffers to an owning array.
//
// Buffers returned by Allocate and Reallocate have exactly the requested
// length; their capacity may be larger. Ownership passes back to the
// allocator on Deallocate, after which the caller must not touch the buffer.
type Allocator[T any] interface {
	// Allocate returns a zeroed buffer of n elements. n == 0 yields nil.
	Allocate(n int) []T

	// Reallocate returns a buffer of n elements whose first min(len(buf), n)
	// elements equal those of buf. Elements past len(buf) are zero. The
	// result may share storage with buf.
	Reallocate(buf []T, n int) []T

	// Deallocate releases buf.
	Deallocate(buf []T)
}

// Heap allocates from the Go heap. Its zero value is ready to use.
// Deallocate is a no-op; the garbage collector reclaims storage once no
// array or view references it.
type Heap[T any] struct{}

func (Heap[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

func (Heap[T]) Reallocate(buf []T, n int) []T {
	if n <= cap(buf) {
		return grow(buf, n)
	}
	out := make([]T, n)
	copy(out, buf)
	return out
}

func (Heap[T]) Deallocate([]T) {}

// grow reslices buf to n elements within its capacity, zeroing any elements
// exposed past the old length.
func grow[T any](buf []T, n int) []T {
	old := len(buf)
	buf = buf[:n]
	if n > old {
		clear(buf[old:])
	}
	return buf
}
