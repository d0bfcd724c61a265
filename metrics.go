package arena

// SizeInUse returns the number of slots reserved across all chunks.
func (a *ChunkAllocator[T]) SizeInUse() int {
	if a.st == nil {
		return 0
	}
	sum := 0
	for c := a.st.head; c != nil; c = c.next {
		sum += c.reserved()
	}
	return sum
}

// NumChunks returns the number of chunks in the list.
func (a *ChunkAllocator[T]) NumChunks() int {
	if a.st == nil {
		return 0
	}
	return int(a.st.nchunks)
}

// NumBlocks returns the number of blocks reserved, zero-length ones included.
func (a *ChunkAllocator[T]) NumBlocks() int {
	if a.st == nil {
		return 0
	}
	sum := 0
	for c := a.st.head; c != nil; c = c.next {
		sum += len(c.blocks)
	}
	return sum
}

// FullChunks returns the number of chunks with no free slots left.
func (a *ChunkAllocator[T]) FullChunks() int {
	if a.st == nil {
		return 0
	}
	return a.st.full.Count()
}

// Capacity returns the total number of slots of all chunks.
func (a *ChunkAllocator[T]) Capacity() int {
	if a.st == nil {
		return 0
	}
	return int(a.st.nchunks) * a.st.chunkSize
}

// Utilization returns the ratio of reserved slots to capacity (0.0 to 1.0).
// Returns 0.0 if the allocator has no chunks.
func (a *ChunkAllocator[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the number of slots per chunk.
func (a *ChunkAllocator[T]) ChunkSize() int {
	if a.st == nil {
		return 0
	}
	return a.st.chunkSize
}

// Metrics returns a snapshot of allocator statistics.
func (a *ChunkAllocator[T]) Metrics() AllocatorMetrics {
	if a.st == nil {
		return AllocatorMetrics{}
	}
	return a.st.metrics()
}

func (st *state[T]) metrics() AllocatorMetrics {
	a := &ChunkAllocator[T]{st: st}
	return AllocatorMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		NumBlocks:   a.NumBlocks(),
		FullChunks:  a.FullChunks(),
		ChunkSize:   a.ChunkSize(),
		ElemSize:    elemSize[T](),
		Utilization: a.Utilization(),
	}
}

// AllocatorMetrics contains statistical information about an allocator.
type AllocatorMetrics struct {
	SizeInUse   int     // Slots currently reserved
	Capacity    int     // Total slots in all chunks
	NumChunks   int     // Number of chunks
	NumBlocks   int     // Number of reserved blocks
	FullChunks  int     // Chunks with no free slots
	ChunkSize   int     // Slots per chunk
	ElemSize    int     // Bytes per slot
	Utilization float64 // Ratio of reserved slots to capacity (0.0-1.0)
}

// Thread-safe metrics for SafeAllocator

// SizeInUse thread-safely returns the number of reserved slots.
func (s *SafeAllocator[T]) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumChunks thread-safely returns the number of chunks.
func (s *SafeAllocator[T]) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// Capacity thread-safely returns the total number of slots.
func (s *SafeAllocator[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of reserved slots to capacity.
func (s *SafeAllocator[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of allocator statistics.
func (s *SafeAllocator[T]) Metrics() AllocatorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
