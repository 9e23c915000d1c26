package dsgo

import (
	"math"
	"unsafe"

	"github.com/hupe1980/dsgo/internal/diag"
)

// signature marks a live container. Destroy clears it, so stale handles
// fail validation instead of touching released state.
const signature uint32 = 0x9C3AF7

// Destructor is applied to an element immediately before its slot is
// removed from a container. It receives a pointer to the slot, so it can
// release what the element owns and overwrite the slot if it wants to.
type Destructor[T any] func(*T)

// Vector is a growable array of T with a linear capacity policy and an
// optional per-element destructor.
//
// Methods are not safe for concurrent use. See the package documentation
// for the capacity policy and view invalidation rules.
type Vector[T any] struct {
	data  []T // len(data) is the capacity; slots beyond count are raw storage
	count int
	rate  int
	sig   uint32
	gc    Destructor[T]
}

// New creates a vector with the given initial capacity, which also
// becomes its growth rate.
func New[T any](capacity int) (*Vector[T], error) {
	return NewWithDestructor[T](capacity, nil)
}

// NewWithDestructor creates a vector whose elements are finalized by gc
// as they are removed. The destructor is part of the vector's identity:
// it is fixed at construction and applies for the whole lifetime.
func NewWithDestructor[T any](capacity int, gc Destructor[T]) (*Vector[T], error) {
	if capacity <= 0 {
		diag.Fail("capacity > 0")
		return nil, ErrInvalidCapacity
	}

	return &Vector[T]{
		data: make([]T, capacity),
		rate: capacity,
		sig:  signature,
		gc:   gc,
	}, nil
}

func (v *Vector[T]) valid() bool {
	return v != nil && v.sig == signature
}

// Valid reports whether the handle refers to a live vector.
func (v *Vector[T]) Valid() bool {
	return v.valid()
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if !v.valid() {
		return 0
	}
	return v.count
}

// Cap returns the current capacity in elements.
func (v *Vector[T]) Cap() int {
	if !v.valid() {
		return 0
	}
	return len(v.data)
}

// Rate returns the growth rate: the initial capacity and the step of
// every automatic capacity change.
func (v *Vector[T]) Rate() int {
	if !v.valid() {
		return 0
	}
	return v.rate
}

// ElemSize returns the in-memory size of an element in bytes.
func (v *Vector[T]) ElemSize() int {
	if !v.valid() {
		return 0
	}
	var zero T
	return int(unsafe.Sizeof(zero))
}

// At returns the element at index i. Every slot below the capacity is
// addressable, including those at or beyond the live count; out-of-range
// indexes panic.
func (v *Vector[T]) At(i int) T {
	return v.data[i]
}

// Set writes the element at index i under the same addressing rules as
// At. It never runs the destructor; use Pop or Resize for removal.
func (v *Vector[T]) Set(i int, e T) {
	v.data[i] = e
}

// Last returns the final live element. The second return is false when
// the vector is empty or destroyed.
func (v *Vector[T]) Last() (T, bool) {
	if !v.valid() || v.count == 0 {
		var zero T
		return zero, false
	}
	return v.data[v.count-1], true
}

// Slice returns the live elements as a view into the vector's storage.
// The view is valid only until the next operation that can change
// capacity.
func (v *Vector[T]) Slice() []T {
	if !v.valid() {
		return nil
	}
	return v.data[:v.count]
}

// Each calls fn for every live element in index order.
func (v *Vector[T]) Each(fn func(i int, e T)) {
	if !v.valid() {
		return
	}
	for i := 0; i < v.count; i++ {
		fn(i, v.data[i])
	}
}

// Push appends an element, growing capacity by one rate step when the
// vector is full.
func (v *Vector[T]) Push(e T) error {
	if !v.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}

	if v.count >= len(v.data) {
		if err := v.Expand(); err != nil {
			return err
		}
	}

	v.data[v.count] = e
	v.count++

	return nil
}

// Pop removes the last element, applying the destructor first. Popping
// an empty vector succeeds as a no-op. When the count falls more than
// one rate step below capacity the vector contracts by one step. The
// popped slot keeps its previous value until overwritten or relocated;
// the destructor is the cleanup hook.
func (v *Vector[T]) Pop() error {
	if !v.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	if v.count == 0 {
		return nil
	}

	if v.gc != nil {
		v.gc(&v.data[v.count-1])
	}
	v.count--

	if v.count < len(v.data)-v.rate {
		// The trigger guarantees the target capacity stays positive.
		_ = v.Contract()
	}

	return nil
}

// Resize sets the capacity to any positive element count and relocates
// the storage. Shrinking below the current count applies the destructor
// to the discarded elements from the end backwards.
func (v *Vector[T]) Resize(capacity int) error {
	if !v.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	if capacity <= 0 {
		diag.Fail("capacity > 0")
		return ErrInvalidCapacity
	}

	if capacity < v.count {
		if v.gc != nil {
			for i := v.count - 1; i >= capacity; i-- {
				v.gc(&v.data[i])
			}
		}
		v.count = capacity
	}

	next := make([]T, capacity)
	copy(next, v.data)
	v.data = next

	return nil
}

// Expand grows the capacity by one rate step.
func (v *Vector[T]) Expand() error {
	if !v.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	if len(v.data) > math.MaxInt-v.rate {
		diag.Fail("cap <= MaxInt-rate")
		return ErrInvalidCapacity
	}
	return v.Resize(len(v.data) + v.rate)
}

// Contract shrinks the capacity by one rate step. At the initial
// capacity this requests zero and fails with ErrInvalidCapacity; the
// automatic policy never contracts there.
func (v *Vector[T]) Contract() error {
	if !v.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}
	return v.Resize(len(v.data) - v.rate)
}

// Destroy applies the destructor to every live element, from the end
// backwards and exactly once per element, releases the storage and
// invalidates the handle. Further use, including a second Destroy,
// fails with ErrInvalidHandle.
func (v *Vector[T]) Destroy() error {
	if !v.valid() {
		diag.Fail("sig == signature")
		return ErrInvalidHandle
	}

	if v.gc != nil {
		for i := v.count - 1; i >= 0; i-- {
			v.gc(&v.data[i])
		}
	}

	v.data = nil
	v.count = 0
	v.rate = 0
	v.sig = 0
	v.gc = nil

	return nil
}
