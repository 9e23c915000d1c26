// Package alloc defines the memory allocation seam used by the untyped
// array engine.
//
// # Overview
//
// All engine memory flows through the four primitives of the Allocator
// interface: Alloc, AllocZeroed, Realloc and Free. Substituting an
// implementation swaps the allocation strategy wholesale; the primitives
// are never mixed across allocators.
//
// Two implementations ship with the package:
//
//   - Heap: the default. Buffers live on the Go heap and Free is a no-op,
//     leaving reclamation to the garbage collector.
//   - Arena: a chunked bump allocator over anonymous memory mappings.
//     Allocation is cheap and Release returns everything to the operating
//     system at once.
//
// # Choosing an Allocator
//
// Heap is right for almost everything. Arena pays off when many arrays
// share a lifetime and can be released together, or when buffers should
// stay out of the garbage collector's scan set.
package alloc
