package engine

import "github.com/hupe1980/dsgo/alloc"

// Option is a configuration option for New.
type Option func(*Array)

// WithDestructor sets the destructor applied to element slots as they
// are removed. The destructor is fixed for the array's lifetime.
func WithDestructor(gc Destructor) Option {
	return func(a *Array) {
		a.gc = gc
	}
}

// WithAllocator routes the array's buffer through the given allocator
// instead of alloc.Default.
func WithAllocator(allocator alloc.Allocator) Option {
	return func(a *Array) {
		if allocator != nil {
			a.allocator = allocator
		}
	}
}
