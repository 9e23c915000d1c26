package dsgo

import "errors"

var (
	// ErrInvalidCapacity is returned when a requested capacity is not
	// positive.
	ErrInvalidCapacity = errors.New("capacity must be positive")
	// ErrInvalidHandle is returned when a container fails its liveness
	// check: it was destroyed, or never properly constructed.
	ErrInvalidHandle = errors.New("invalid container handle")
)
