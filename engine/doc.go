// Package engine implements the untyped growable array underneath the
// typed containers.
//
// # Overview
//
// An Array stores fixed-size elements as raw bytes in a single buffer
// obtained from an alloc.Allocator. Alongside the buffer it keeps the
// element count, the current capacity, the growth rate, the element size
// and an optional per-element destructor. A magic signature marks live
// arrays; every operation validates it first, so use of a destroyed or
// foreign handle fails with ErrInvalidHandle instead of corrupting
// memory.
//
// # Capacity Policy
//
// Capacity moves in fixed steps of the growth rate, which equals the
// initial capacity and never changes. A push into a full array grows it
// by exactly one step; a pop that leaves the count more than one step
// below capacity shrinks it by one step. The automatic policy never
// takes capacity below the initial rate. Explicit Resize accepts any
// positive capacity.
//
// # Destructors
//
// A destructor set at construction runs on an element's slot immediately
// before that slot is logically removed: once per pop, once per element
// discarded by a shrinking resize, and once per live element on destroy,
// always from the end of the array backwards.
//
// # Raw Bytes
//
// The engine stores bytes, not Go values. Elements containing Go
// pointers are invisible to the garbage collector and may be reclaimed
// while still referenced from the buffer; use the typed Vector for
// pointer-carrying elements.
package engine
