package alloc

import (
	"fmt"
	"sync"
	"unsafe"
)

// Tracking is a heap allocator that records every buffer it hands out.
// It is safe for concurrent use, so one instance may back many arrays.
type Tracking[T any] struct {
	mu sync.Mutex

	// live maps the first element of each outstanding buffer to its record
	live map[*T]int

	// allocations tracks all allocations made (for debugging/validation)
	allocations []Allocation

	// badFrees counts deallocations of buffers this allocator does not own
	badFrees int

	stats Stats
}

// Allocation represents a single buffer handed out.
type Allocation struct {
	ID    int
	Elems int
	Freed bool
}

// Stats contains allocation statistics.
type Stats struct {
	TotalAllocations   uint64 // Number of buffers allocated
	TotalReallocations uint64 // Reallocate calls, whether or not they moved
	InPlaceReallocs    uint64 // Reallocate calls served within capacity
	TotalElemsAlloc    uint64 // Elements allocated
	TotalElemsFreed    uint64 // Elements released through Deallocate
	LargestAlloc       uint64 // Largest single allocation, in elements
}

// NewTracking creates an empty Tracking allocator.
func NewTracking[T any]() *Tracking[T] {
	return &Tracking[T]{live: make(map[*T]int)}
}

// Allocate returns a zeroed buffer of n elements and records it.
func (a *Tracking[T]) Allocate(n int) []T {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.allocLocked(n)
}

func (a *Tracking[T]) allocLocked(n int) []T {
	if n == 0 {
		return nil
	}

	buf := make([]T, n)
	id := len(a.allocations)
	a.allocations = append(a.allocations, Allocation{ID: id, Elems: n})
	a.live[key(buf)] = id

	a.stats.TotalAllocations++
	a.stats.TotalElemsAlloc += uint64(n)
	if uint64(n) > a.stats.LargestAlloc {
		a.stats.LargestAlloc = uint64(n)
	}

	return buf
}

// Reallocate grows or shrinks buf. It stays in place while n fits within
// cap(buf); otherwise it allocates, copies and releases buf.
func (a *Tracking[T]) Reallocate(buf []T, n int) []T {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats.TotalReallocations++
	if n <= cap(buf) && cap(buf) > 0 {
		a.stats.InPlaceReallocs++
		return grow(buf, n)
	}

	out := a.allocLocked(n)
	copy(out, buf)
	a.freeLocked(buf)
	return out
}

// Deallocate releases buf. Releasing a buffer that was not handed out by a,
// or releasing it twice, is recorded and reported by Validate.
func (a *Tracking[T]) Deallocate(buf []T) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.freeLocked(buf)
}

func (a *Tracking[T]) freeLocked(buf []T) {
	if cap(buf) == 0 {
		return
	}
	k := key(buf)
	id, ok := a.live[k]
	if !ok {
		a.badFrees++
		return
	}
	delete(a.live, k)
	a.allocations[id].Freed = true
	a.stats.TotalElemsFreed += uint64(a.allocations[id].Elems)
}

// Live returns the number of buffers allocated and not yet released.
func (a *Tracking[T]) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Stats returns a copy of the allocation statistics.
func (a *Tracking[T]) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Allocations returns a copy of all allocations made (for debugging).
func (a *Tracking[T]) Allocations() []Allocation {
	a.mu.Lock()
	defer a.mu.Unlock()
	result := make([]Allocation, len(a.allocations))
	copy(result, a.allocations)
	return result
}

// Validate reports deallocations of buffers the allocator never handed out
// (or already took back).
func (a *Tracking[T]) Validate() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.badFrees > 0 {
		return fmt.Errorf("%d deallocation(s) of untracked or already released buffers", a.badFrees)
	}
	return nil
}

// Reset forgets all allocations and statistics.
// This is primarily useful for testing.
func (a *Tracking[T]) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.live = make(map[*T]int)
	a.allocations = nil
	a.badFrees = 0
	a.stats = Stats{}
}

// key identifies a buffer by the address of its backing array.
func key[T any](buf []T) *T {
	return unsafe.SliceData(buf[:cap(buf)])
}
