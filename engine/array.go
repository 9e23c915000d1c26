package engine

import (
	"fmt"
	"math"

	"github.com/hupe1980/dsgo/alloc"
	"github.com/hupe1980/dsgo/internal/diag"
)

// signature marks a live array. Destroy clears it, so stale and foreign
// handles fail validation instead of reading freed state.
const signature uint32 = 0x9C3AF7

// Destructor is applied to an element's byte slot immediately before the
// slot is logically removed from the array.
type Destructor func(slot []byte)

// Array is an untyped growable array of fixed-size elements.
//
// Methods are not safe for concurrent use. Slices returned by Get and
// Last are views into the buffer and remain valid only until the next
// operation that can change capacity.
type Array struct {
	buf       []byte
	count     int
	max       int
	rate      int
	elemSize  int
	sig       uint32
	gc        Destructor
	allocator alloc.Allocator
}

// New creates an array holding elements of elemSize bytes, with the
// given initial capacity. The initial capacity also becomes the growth
// rate: every automatic capacity change moves by exactly this many
// elements.
func New(elemSize, capacity int, opts ...Option) (*Array, error) {
	if elemSize <= 0 {
		diag.Fail("elemSize > 0")
		return nil, ErrInvalidCapacity
	}
	if capacity <= 0 {
		diag.Fail("capacity > 0")
		return nil, ErrInvalidCapacity
	}
	if capacity > math.MaxInt/elemSize {
		diag.Fail("capacity <= MaxInt/elemSize")
		return nil, ErrInvalidCapacity
	}

	a := &Array{
		max:       capacity,
		rate:      capacity,
		elemSize:  elemSize,
		sig:       signature,
		allocator: alloc.Default,
	}

	for _, opt := range opts {
		opt(a)
	}

	buf, err := a.allocator.Alloc(capacity * elemSize)
	if err != nil {
		diag.Fail("buf != nil")
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	a.buf = buf

	return a, nil
}

func (a *Array) valid() bool {
	return a != nil && a.sig == signature
}

// Valid reports whether the handle refers to a live array. It is the
// recommended guard before trusting a handle from an untrusted code
// path.
func (a *Array) Valid() bool {
	return a.valid()
}

// Count returns the number of live elements.
func (a *Array) Count() int {
	if !a.valid() {
		return 0
	}
	return a.count
}

// Cap returns the current capacity in elements.
func (a *Array) Cap() int {
	if !a.valid() {
		return 0
	}
	return a.max
}

// Rate returns the growth rate: the initial capacity and the step of
// every automatic capacity change.
func (a *Array) Rate() int {
	if !a.valid() {
		return 0
	}
	return a.rate
}

// ElemSize returns the fixed element size in bytes.
func (a *Array) ElemSize() int {
	if !a.valid() {
		return 0
	}
	return a.elemSize
}

// Get returns the byte slot of element i. Any index below the capacity
// is addressable, including slots at or beyond the count. Out-of-range
// indexes panic.
func (a *Array) Get(i int) []byte {
	if i < 0 || i >= a.max {
		panic("engine: index out of range")
	}
	off := i * a.elemSize
	return a.buf[off : off+a.elemSize : off+a.elemSize]
}

// Last returns the slot of the final live element, or nil when the
// array is empty or destroyed.
func (a *Array) Last() []byte {
	if !a.valid() || a.count == 0 {
		return nil
	}
	return a.Get(a.count - 1)
}

// Push appends one element. len(data) carries the element size and must
// equal the array's; a mismatch fails with ErrTypeMismatch and changes
// nothing. Pushing into a full array expands it first, and an expansion
// failure fails the push.
func (a *Array) Push(data []byte) error {
	if !a.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	if len(data) != a.elemSize {
		diag.Fail("len(data) == elemSize")
		return ErrTypeMismatch
	}

	if a.count >= a.max {
		if err := a.Expand(); err != nil {
			return err
		}
	}

	copy(a.buf[a.count*a.elemSize:], data)
	a.count++

	return nil
}

// Pop removes the last element, applying the destructor to its slot
// first. Popping an empty array succeeds as a no-op. When the count
// falls more than one growth step below capacity the array contracts;
// a failed contraction is deliberately not an error, since the pop has
// already taken effect and the larger buffer still holds every live
// element.
func (a *Array) Pop() error {
	if !a.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	if a.count == 0 {
		return nil
	}

	if a.gc != nil {
		a.gc(a.Get(a.count - 1))
	}
	a.count--

	if a.count < a.max-a.rate {
		_ = a.Contract()
	}

	return nil
}

// Resize sets the capacity to any positive element count. Shrinking
// below the current count applies the destructor to the discarded
// elements from the end backwards before the buffer moves. The new
// buffer and capacity are committed only if reallocation succeeds; a
// failed reallocation reports ErrAllocationFailed and leaves capacity
// untouched, though elements destroyed by a shrink stay destroyed.
func (a *Array) Resize(capacity int) error {
	if !a.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	if capacity <= 0 {
		diag.Fail("capacity > 0")
		return ErrInvalidCapacity
	}
	if capacity > math.MaxInt/a.elemSize {
		diag.Fail("capacity <= MaxInt/elemSize")
		return ErrInvalidCapacity
	}

	if capacity < a.count {
		if a.gc != nil {
			for i := a.count - 1; i >= capacity; i-- {
				a.gc(a.Get(i))
			}
		}
		a.count = capacity
	}

	buf, err := a.allocator.Realloc(a.buf, capacity*a.elemSize)
	if err != nil {
		diag.Fail("buf != nil")
		return fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	a.buf = buf
	a.max = capacity

	return nil
}

// Expand grows the capacity by one growth step.
func (a *Array) Expand() error {
	if !a.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	if a.max > math.MaxInt-a.rate {
		diag.Fail("max <= MaxInt-rate")
		return ErrInvalidCapacity
	}
	return a.Resize(a.max + a.rate)
}

// Contract shrinks the capacity by one growth step. At the initial
// capacity this requests zero and fails with ErrInvalidCapacity; the
// automatic policy never contracts there.
func (a *Array) Contract() error {
	if !a.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	return a.Resize(a.max - a.rate)
}

// Destroy applies the destructor to every live element, from the end
// backwards and exactly once per element, releases the buffer through
// the allocator and invalidates the handle. Further use of the array,
// including a second Destroy, fails with ErrInvalidHandle.
func (a *Array) Destroy() error {
	if !a.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}

	if a.gc != nil {
		for i := a.count - 1; i >= 0; i-- {
			a.gc(a.Get(i))
		}
	}

	a.allocator.Free(a.buf)
	a.buf = nil
	a.count = 0
	a.max = 0
	a.rate = 0
	a.elemSize = 0
	a.sig = 0

	return nil
}
