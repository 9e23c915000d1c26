package engine

import "errors"

var (
	// ErrInvalidCapacity is returned when a requested capacity or element
	// size is not positive or would overflow the buffer size.
	ErrInvalidCapacity = errors.New("engine: invalid capacity")
	// ErrTypeMismatch is returned when the size of a pushed element does
	// not match the array's element size, which means the wrong type or
	// facade is being used against this handle.
	ErrTypeMismatch = errors.New("engine: element size mismatch")
	// ErrInvalidHandle is returned when an array fails its signature
	// check: the handle was destroyed, or never produced by New.
	ErrInvalidHandle = errors.New("engine: invalid array handle")
	// ErrAllocationFailed is returned when the allocator cannot satisfy a
	// request. It wraps the allocator's own error.
	ErrAllocationFailed = errors.New("engine: allocation failed")
)
