package ndarray

import "github.com/robert-malhotra/go-ndarray/internal/alloc"

// Option configures array construction.
type Option[T comparable] func(*options[T])

type options[T comparable] struct {
	fill      T
	allocator alloc.Allocator[T]
}

func defaultOptions[T comparable]() *options[T] {
	return &options[T]{
		allocator: alloc.Heap[T]{},
	}
}

func applyOptions[T comparable](opts []Option[T]) *options[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFill sets the value every element starts with instead of the zero value.
func WithFill[T comparable](v T) Option[T] {
	return func(o *options[T]) {
		o.fill = v
	}
}

// WithAllocator sets the allocator that supplies and releases the array's
// buffer. A nil allocator keeps the default heap allocator.
func WithAllocator[T comparable](al Allocator[T]) Option[T] {
	return func(o *options[T]) {
		if al != nil {
			o.allocator = al
		}
	}
}
