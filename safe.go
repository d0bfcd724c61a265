package arena

import "sync"

// SafeAllocator is a mutex-protected wrapper around ChunkAllocator for
// concurrent access. Clones share the mutex along with the chunk list, so
// every handle descended from one SafeAllocator is serialized.
type SafeAllocator[T any] struct {
	mu *sync.Mutex
	a  *ChunkAllocator[T]
}

// NewSafeAllocator creates a new thread-safe allocator with the specified
// chunk size. If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeAllocator[T any](chunkSize int, opts ...Option) *SafeAllocator[T] {
	return &SafeAllocator[T]{
		mu: new(sync.Mutex),
		a:  NewChunkAllocator[T](chunkSize, opts...),
	}
}

// Allocate thread-safely reserves n contiguous slots.
func (s *SafeAllocator[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Deallocate does nothing, as for ChunkAllocator.
func (s *SafeAllocator[T]) Deallocate(b []T, n int) {}

// New thread-safely reserves a single zeroed slot.
func (s *SafeAllocator[T]) New() (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.New()
}

// Clone thread-safely returns a new handle sharing the chunk list and mutex.
func (s *SafeAllocator[T]) Clone() *SafeAllocator[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &SafeAllocator[T]{mu: s.mu, a: s.a.Clone()}
}

// Release thread-safely drops this handle's share of the chunk list.
func (s *SafeAllocator[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// RefCount thread-safely returns the number of live handles.
func (s *SafeAllocator[T]) RefCount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.RefCount()
}
