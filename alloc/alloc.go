package alloc

import (
	"errors"
	"math"

	"github.com/hupe1980/dsgo/internal/diag"
)

var (
	// ErrInvalidSize is returned when a requested size is not positive or
	// would overflow.
	ErrInvalidSize = errors.New("alloc: invalid allocation size")
	// ErrAllocationFailed is returned when the underlying memory source
	// cannot satisfy a request.
	ErrAllocationFailed = errors.New("alloc: allocation failed")
	// ErrArenaReleased is returned when allocating from a released arena.
	ErrArenaReleased = errors.New("alloc: arena released")
)

// Allocator supplies the four allocation primitives the array engine is
// built on. Implementations are substituted wholesale: a buffer obtained
// from one allocator must only ever be resized or freed through the same
// allocator.
type Allocator interface {
	// Alloc returns a buffer of size bytes. Contents are unspecified.
	Alloc(size int) ([]byte, error)
	// AllocZeroed returns a zeroed buffer of n*size bytes, rejecting
	// requests whose product overflows.
	AllocZeroed(n, size int) ([]byte, error)
	// Realloc resizes buf to size bytes, preserving contents up to the
	// smaller of the two sizes. The returned buffer may or may not alias
	// buf. A nil buf behaves like Alloc.
	Realloc(buf []byte, size int) ([]byte, error)
	// Free releases a buffer. Implementations may treat this as a no-op.
	Free(buf []byte)
}

// Default is the allocator used when none is configured.
var Default Allocator = Heap{}

// Heap allocates from the Go heap. Free is a no-op; the garbage
// collector reclaims buffers once unreferenced.
type Heap struct{}

var _ Allocator = Heap{}

// Alloc returns a buffer of size bytes.
func (Heap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		diag.Fail("size > 0")
		return nil, ErrInvalidSize
	}
	return make([]byte, size), nil
}

// AllocZeroed returns a zeroed buffer of n*size bytes.
func (h Heap) AllocZeroed(n, size int) ([]byte, error) {
	total, err := zeroedSize(n, size)
	if err != nil {
		return nil, err
	}
	return make([]byte, total), nil
}

// Realloc resizes buf, reusing spare slice capacity when it can.
func (h Heap) Realloc(buf []byte, size int) ([]byte, error) {
	if size <= 0 {
		diag.Fail("size > 0")
		return nil, ErrInvalidSize
	}
	if buf == nil {
		return h.Alloc(size)
	}
	if size <= cap(buf) {
		return buf[:size], nil
	}
	next := make([]byte, size)
	copy(next, buf)
	return next, nil
}

// Free is a no-op on the Go heap.
func (Heap) Free(buf []byte) {}

// zeroedSize validates an (n, size) pair and returns the total byte count.
func zeroedSize(n, size int) (int, error) {
	if n <= 0 || size <= 0 {
		diag.Fail("n > 0 && size > 0")
		return 0, ErrInvalidSize
	}
	if n > math.MaxInt/size {
		diag.Fail("n <= MaxInt/size")
		return 0, ErrInvalidSize
	}
	return n * size, nil
}
