package alloc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/dsgo/alloc"
)

func TestArenaAlloc(t *testing.T) {
	a, err := alloc.NewArena()
	require.NoError(t, err)
	defer a.Release() //nolint:errcheck

	buf, err := a.Alloc(100)
	require.NoError(t, err)
	require.Len(t, buf, 100)

	// Arena pages arrive zeroed.
	for i, b := range buf {
		require.Zerof(t, b, "byte %d not zero", i)
	}

	// Buffers must not alias each other.
	other, err := a.Alloc(100)
	require.NoError(t, err)
	copy(buf, "first")
	copy(other, "second")
	assert.Equal(t, byte('f'), buf[0])
	assert.Equal(t, byte('s'), other[0])

	_, err = a.Alloc(0)
	assert.ErrorIs(t, err, alloc.ErrInvalidSize)
}

func TestArenaChunkGrowth(t *testing.T) {
	a, err := alloc.NewArena(alloc.WithChunkSize(4096))
	require.NoError(t, err)
	defer a.Release() //nolint:errcheck

	require.EqualValues(t, 1, a.Stats().ActiveChunks)

	// Exhaust the first chunk; a second one must appear.
	for i := 0; i < 5; i++ {
		_, err := a.Alloc(1024)
		require.NoError(t, err)
	}

	stats := a.Stats()
	assert.EqualValues(t, 2, stats.ActiveChunks)
	assert.EqualValues(t, 5, stats.TotalAllocs)
	assert.EqualValues(t, 5*1024, stats.BytesUsed)
}

func TestArenaOversizedAllocation(t *testing.T) {
	a, err := alloc.NewArena(alloc.WithChunkSize(4096))
	require.NoError(t, err)
	defer a.Release() //nolint:errcheck

	// Larger than a chunk: gets a dedicated mapping.
	buf, err := a.Alloc(64 * 1024)
	require.NoError(t, err)
	assert.Len(t, buf, 64*1024)

	stats := a.Stats()
	assert.EqualValues(t, 2, stats.ActiveChunks)
	assert.GreaterOrEqual(t, stats.BytesReserved, uint64(4096+64*1024))
}

func TestArenaAlignment(t *testing.T) {
	a, err := alloc.NewArena()
	require.NoError(t, err)
	defer a.Release() //nolint:errcheck

	_, err = a.Alloc(3)
	require.NoError(t, err)
	_, err = a.Alloc(5)
	require.NoError(t, err)

	stats := a.Stats()
	assert.EqualValues(t, 8, stats.BytesUsed)
	// 3 -> 8 and 5 -> 8 under the default 8-byte alignment.
	assert.EqualValues(t, 8, stats.BytesWasted)
}

func TestArenaAllocOverflow(t *testing.T) {
	a, err := alloc.NewArena()
	require.NoError(t, err)
	defer a.Release() //nolint:errcheck

	// Sizes whose alignment round-up would overflow must fail, not panic.
	for _, size := range []int{math.MaxInt, math.MaxInt - 3} {
		_, err := a.Alloc(size)
		assert.ErrorIs(t, err, alloc.ErrInvalidSize)
	}
}

func TestArenaRealloc(t *testing.T) {
	a, err := alloc.NewArena()
	require.NoError(t, err)
	defer a.Release() //nolint:errcheck

	buf, err := a.Alloc(8)
	require.NoError(t, err)
	copy(buf, "abcdefgh")

	grown, err := a.Realloc(buf, 32)
	require.NoError(t, err)
	require.Len(t, grown, 32)
	assert.Equal(t, []byte("abcdefgh"), grown[:8])
}

func TestArenaAllocZeroed(t *testing.T) {
	a, err := alloc.NewArena()
	require.NoError(t, err)
	defer a.Release() //nolint:errcheck

	buf, err := a.AllocZeroed(128, 8)
	require.NoError(t, err)
	require.Len(t, buf, 1024)

	for i, b := range buf {
		require.Zerof(t, b, "byte %d not zero", i)
	}
}

func TestArenaRelease(t *testing.T) {
	a, err := alloc.NewArena()
	require.NoError(t, err)

	_, err = a.Alloc(128)
	require.NoError(t, err)

	require.NoError(t, a.Release())

	stats := a.Stats()
	assert.EqualValues(t, 0, stats.ActiveChunks)
	assert.EqualValues(t, 0, stats.BytesReserved)

	_, err = a.Alloc(8)
	assert.ErrorIs(t, err, alloc.ErrArenaReleased)

	// Idempotent.
	require.NoError(t, a.Release())
}

func TestArenaConcurrentAlloc(t *testing.T) {
	a, err := alloc.NewArena(alloc.WithChunkSize(4096))
	require.NoError(t, err)
	defer a.Release() //nolint:errcheck

	const (
		goroutines = 8
		allocs     = 200
	)

	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			for j := 0; j < allocs; j++ {
				buf, err := a.Alloc(64)
				if err != nil {
					return err
				}
				// Touch the buffer to surface aliasing bugs under -race.
				buf[0] = byte(j)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.EqualValues(t, goroutines*allocs, a.Stats().TotalAllocs)
}

func TestArenaString(t *testing.T) {
	a, err := alloc.NewArena()
	require.NoError(t, err)
	defer a.Release() //nolint:errcheck

	assert.Contains(t, a.String(), "Arena{")
}
