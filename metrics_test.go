package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorMetrics(t *testing.T) {
	a := NewChunkAllocator[byte](1024)
	defer a.Release()

	// Test initial state
	assert.Equal(t, 0, a.SizeInUse())
	assert.Equal(t, 0, a.NumChunks())
	assert.Equal(t, 0, a.Capacity())
	assert.Equal(t, 1024, a.ChunkSize())
	assert.Zero(t, a.Utilization())

	_, err := a.Allocate(100)
	require.NoError(t, err)
	_, err = a.Allocate(200)
	require.NoError(t, err)

	assert.Equal(t, 300, a.SizeInUse())
	assert.Equal(t, 2, a.NumBlocks())
	assert.InDelta(t, 300.0/1024.0, a.Utilization(), 1e-9)

	// Force chunk growth
	_, err = a.Allocate(1000)
	require.NoError(t, err)
	assert.Equal(t, 2, a.NumChunks())
	assert.Equal(t, 2048, a.Capacity())

	assert.Equal(t, AllocatorMetrics{
		SizeInUse:   1300,
		Capacity:    2048,
		NumChunks:   2,
		NumBlocks:   3,
		FullChunks:  0,
		ChunkSize:   1024,
		ElemSize:    1,
		Utilization: 1300.0 / 2048.0,
	}, a.Metrics())
}

func TestMetricsFullUtilization(t *testing.T) {
	a := NewChunkAllocator[uint16](100)
	defer a.Release()

	// 50 uint16 slots fill the byte budget of a request, 100 slots fill the chunk.
	_, err := a.Allocate(50)
	require.NoError(t, err)
	_, err = a.Allocate(50)
	require.NoError(t, err)

	assert.Equal(t, 1, a.NumChunks())
	assert.Equal(t, 1, a.FullChunks())
	assert.Equal(t, 1.0, a.Utilization())
	assert.Equal(t, 2, a.Metrics().ElemSize)
}

func TestMetricsAfterRelease(t *testing.T) {
	a := NewChunkAllocator[byte](1024)
	_, err := a.Allocate(100)
	require.NoError(t, err)

	a.Release()

	assert.Equal(t, 0, a.SizeInUse())
	assert.Equal(t, 0, a.NumChunks())
	assert.Equal(t, 0, a.NumBlocks())
	assert.Equal(t, 0, a.FullChunks())
	assert.Equal(t, 0, a.Capacity())
	assert.Equal(t, 0, a.ChunkSize())
	assert.Zero(t, a.Utilization())
	assert.Equal(t, AllocatorMetrics{}, a.Metrics())
}

func TestMetricsSharedAcrossClones(t *testing.T) {
	a := NewChunkAllocator[byte](16)
	b := a.Clone()
	defer a.Release()
	defer b.Release()

	_, err := b.Allocate(10)
	require.NoError(t, err)
	assert.Equal(t, b.Metrics(), a.Metrics())
}

func TestSafeAllocatorMetrics(t *testing.T) {
	s := NewSafeAllocator[byte](2048)
	defer s.Release()

	_, err := s.Allocate(300)
	require.NoError(t, err)

	assert.Equal(t, 300, s.SizeInUse())
	assert.Equal(t, 1, s.NumChunks())
	assert.Equal(t, 2048, s.Capacity())
	assert.InDelta(t, 300.0/2048.0, s.Utilization(), 1e-9)

	m := s.Metrics()
	assert.Equal(t, 2048, m.ChunkSize)
	assert.Equal(t, 300, m.SizeInUse)
}

func BenchmarkMetrics(b *testing.B) {
	a := NewChunkAllocator[byte](1024 * 1024)
	// Pre-allocate some data
	for i := 0; i < 100; i++ {
		_, _ = a.Allocate(1000)
	}

	b.Run("SizeInUse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a.SizeInUse()
		}
	})

	b.Run("Metrics", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a.Metrics()
		}
	})
}
