// Package arena implements a chunked slot allocator (memory arena) whose
// handles share one chunk list through a reference count.
//
// # Overview
//
// A ChunkAllocator[T] owns a linked list of chunks, each a fixed buffer of
// chunkSize slots of T. Allocate(n) bump-allocates n contiguous slots from
// the first chunk that still has room, appending a new chunk when none does.
// Individual slots are never reclaimed: Deallocate is a no-op and memory is
// dropped in bulk when the last handle is released.
//
// # Basic Usage
//
//	a := arena.NewChunkAllocator[Node](0) // Use default chunk size
//	defer a.Release()
//
//	nodes, err := a.Allocate(16)
//	if err != nil {
//		return err // errors.Is(err, arena.ErrCapacity)
//	}
//
//	// Share the chunk list with another container
//	b := a.Clone()
//	defer b.Release()
//
// # Capacity
//
// A single request can never span chunks. Allocate fails with ErrCapacity
// when n*sizeof(T) exceeds the chunk size, regardless of how many chunks
// already exist. Choose a chunk size large enough for the largest request.
//
// # Thread Safety
//
// ChunkAllocator is not thread-safe, and neither is its reference count.
// For concurrent access, use SafeAllocator:
//
//	s := arena.NewSafeAllocator[int](0)
//	defer s.Release()
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Slots in use: %d\n", m.SizeInUse)
package arena
