// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// MapAnon obtains read-write memory directly from the operating system,
// outside the Go garbage collector's control. The alloc package uses it
// to back arena chunks.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must
// ensure no goroutines access Bytes() after Close() returns.
package mmap
