package alloc

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/dsgo/internal/diag"
	"github.com/hupe1980/dsgo/internal/mmap"
)

const (
	// DefaultChunkSize is the default size of an arena chunk (1 MiB).
	DefaultChunkSize = 1024 * 1024
	// DefaultAlignment is the default allocation alignment (8 bytes).
	DefaultAlignment = 8
)

// ArenaStats tracks arena memory usage.
//
// Note on semantics:
//   - BytesReserved: memory currently mapped from the OS
//   - BytesUsed: bytes handed out to callers (before alignment)
//   - BytesWasted: padding added for alignment
//   - ActiveChunks: mappings currently held
//   - TotalAllocs: cumulative allocation count
type ArenaStats struct {
	ChunksAllocated uint64 // Historical: total chunks ever mapped
	BytesReserved   uint64
	BytesUsed       uint64
	BytesWasted     uint64
	ActiveChunks    uint64
	TotalAllocs     uint64
}

type arenaStats struct {
	ChunksAllocated atomic.Uint64
	BytesReserved   atomic.Uint64
	BytesUsed       atomic.Uint64
	BytesWasted     atomic.Uint64
	ActiveChunks    atomic.Uint64
	TotalAllocs     atomic.Uint64
}

// Arena is a chunked bump allocator over anonymous memory mappings.
//
// Alloc, AllocZeroed and Realloc are safe for concurrent use; Release is
// not and must only run once no allocations are in flight. Free is a
// no-op: bump-allocated space is reclaimed only by Release, which unmaps
// every chunk at once. Realloc therefore always relocates and the old
// region stays occupied until Release.
type Arena struct {
	chunkSize int
	alignment int

	mu       sync.Mutex
	chunks   []*mmap.Mapping
	tail     []byte // unused remainder of the newest chunk
	released bool

	stats arenaStats
}

var _ Allocator = (*Arena)(nil)

// ArenaOption is a configuration option for NewArena.
type ArenaOption func(*Arena)

// WithChunkSize sets the mapping size for arena chunks. Values below one
// page are raised to DefaultChunkSize.
func WithChunkSize(size int) ArenaOption {
	return func(a *Arena) {
		if size >= 4096 {
			a.chunkSize = size
		}
	}
}

// NewArena creates an arena and maps its first chunk eagerly; a
// misconfigured environment fails here, not at first use.
func NewArena(opts ...ArenaOption) (*Arena, error) {
	a := &Arena{
		chunkSize: DefaultChunkSize,
		alignment: DefaultAlignment,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.mapChunkLocked(a.chunkSize); err != nil {
		return nil, err
	}

	return a, nil
}

// mapChunkLocked maps a fresh chunk of at least size bytes and makes it
// the bump target. Callers hold a.mu.
func (a *Arena) mapChunkLocked(size int) error {
	if size < a.chunkSize {
		size = a.chunkSize
	}

	mapping, err := mmap.MapAnon(size)
	if err != nil {
		diag.Fail("mapping != nil")
		return fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}

	a.chunks = append(a.chunks, mapping)
	a.tail = mapping.Bytes()

	a.stats.ChunksAllocated.Add(1)
	a.stats.BytesReserved.Add(uint64(size))
	a.stats.ActiveChunks.Add(1)

	return nil
}

// Alloc returns a buffer of size bytes from the current chunk, mapping a
// new chunk when the remainder is too small. Oversized requests get a
// dedicated mapping.
func (a *Arena) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		diag.Fail("size > 0")
		return nil, ErrInvalidSize
	}

	mask := a.alignment - 1
	if size > math.MaxInt-mask {
		diag.Fail("size <= MaxInt-alignment")
		return nil, ErrInvalidSize
	}
	aligned := (size + mask) &^ mask

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		diag.Fail("arena not released")
		return nil, ErrArenaReleased
	}

	if aligned > len(a.tail) {
		if err := a.mapChunkLocked(aligned); err != nil {
			return nil, err
		}
	}

	buf := a.tail[:size:size]
	a.tail = a.tail[aligned:]

	a.stats.BytesUsed.Add(uint64(size))
	a.stats.BytesWasted.Add(uint64(aligned - size))
	a.stats.TotalAllocs.Add(1)

	return buf, nil
}

// AllocZeroed returns a zeroed buffer of n*size bytes. Arena memory
// comes from fresh anonymous pages and bump regions are never reused, so
// no explicit clearing is needed.
func (a *Arena) AllocZeroed(n, size int) ([]byte, error) {
	total, err := zeroedSize(n, size)
	if err != nil {
		return nil, err
	}
	return a.Alloc(total)
}

// Realloc allocates a new region and copies buf into it. The old region
// remains occupied until Release.
func (a *Arena) Realloc(buf []byte, size int) ([]byte, error) {
	next, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(next, buf)
	return next, nil
}

// Free is a no-op; arena memory is reclaimed by Release.
func (a *Arena) Free(buf []byte) {}

// Release unmaps every chunk and poisons the arena: all buffers handed
// out become invalid and further allocation fails with ErrArenaReleased.
// Release is idempotent. The first unmap error is reported, but release
// always completes.
func (a *Arena) Release() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.released {
		return nil
	}
	a.released = true

	var firstErr error
	for _, c := range a.chunks {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.chunks = nil
	a.tail = nil

	a.stats.ActiveChunks.Store(0)
	a.stats.BytesReserved.Store(0)
	a.stats.BytesUsed.Store(0)
	a.stats.BytesWasted.Store(0)

	return firstErr
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() ArenaStats {
	return ArenaStats{
		ChunksAllocated: a.stats.ChunksAllocated.Load(),
		BytesReserved:   a.stats.BytesReserved.Load(),
		BytesUsed:       a.stats.BytesUsed.Load(),
		BytesWasted:     a.stats.BytesWasted.Load(),
		ActiveChunks:    a.stats.ActiveChunks.Load(),
		TotalAllocs:     a.stats.TotalAllocs.Load(),
	}
}

// Usage returns the used fraction of reserved memory as a percentage.
func (a *Arena) Usage() float64 {
	stats := a.Stats()
	if stats.BytesReserved == 0 {
		return 0
	}
	return float64(stats.BytesUsed) / float64(stats.BytesReserved) * 100
}

func (a *Arena) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"Arena{chunks: %d, reserved: %.2f MB, used: %.2f MB, wasted: %.2f KB, usage: %.1f%%, allocs: %d}",
		stats.ActiveChunks,
		float64(stats.BytesReserved)/(1024*1024),
		float64(stats.BytesUsed)/(1024*1024),
		float64(stats.BytesWasted)/1024,
		a.Usage(),
		stats.TotalAllocs,
	)
}
