// Package dsgo provides generic data structures with explicit capacity
// and lifecycle control.
//
// # Overview
//
// The root package implements Vector, a growable array whose capacity
// moves in fixed steps and whose elements can carry a destructor. The
// subpackages complete the family:
//
//   - engine: the untyped byte-level array underneath, for fixed-size
//     raw elements and custom allocators
//   - alloc: the allocator seam (Go heap by default, mmap-backed arena
//     as an alternative)
//   - list: a doubly linked list with front and back operations
//   - dict: a string-keyed hash table with chained buckets
//
// # Capacity Policy
//
// A vector's initial capacity doubles as its growth rate. Pushing into a
// full vector grows capacity by exactly one rate step; popping far
// enough below capacity shrinks it by one step, never below the initial
// capacity. Capacity therefore tracks the live count linearly instead of
// doubling, which suits workloads that grow to a known scale and stay
// there. Resize accepts any positive capacity directly.
//
// # Destructors
//
// A destructor attached at construction runs on each element just
// before its slot is removed: on pop, on the elements cut off by a
// shrinking resize, and on every live element when the container is
// destroyed, always from the end backwards and exactly once per
// element. Destructors make a container the owner of element cleanup,
// whether that is closing handles or returning buffers to a pool.
//
// # Handles
//
// Destroy invalidates the container. Valid reports liveness, and every
// operation on a destroyed (or zero-value) container fails with
// ErrInvalidHandle rather than corrupting state. A second Destroy fails
// the same way.
//
// # Views
//
// Slice, At and Last expose the underlying storage. Views stay valid
// only until the next operation that can change capacity; after a grow
// or shrink they refer to stale storage.
//
// # Verbose Diagnostics
//
// SetVerbose installs a slog.Logger that reports every failed
// validation with its condition and source location before the error
// returns. It is a debugging aid and changes no behavior.
//
// # Thread Safety
//
// Containers are not safe for concurrent use. Callers own
// synchronization; alloc.Arena is the one component safe for concurrent
// allocation.
package dsgo
