package arena

import (
	"unsafe"

	"github.com/kelindar/bitmap"
	"github.com/pavanmanishd/chunkarena/internal/refcount"
	"github.com/pkg/errors"
)

// DefaultChunkSize is the default chunk size for new allocators.
const DefaultChunkSize = 1024

// state is shared by every handle descended from one NewChunkAllocator call.
type state[T any] struct {
	head      *chunk[T]
	tail      *chunk[T]
	nchunks   uint32
	chunkSize int
	refs      refcount.Count
	// full marks chunks with no free slots, by chunk index.
	full bitmap.Bitmap
	opts options
}

// ChunkAllocator is a bump allocator of T slots over a linked list of
// fixed-size chunks. Not goroutine-safe; use SafeAllocator for concurrent
// access.
//
// A ChunkAllocator is a handle. Clone and Assign share the underlying chunk
// list between handles; the list is dropped when the last handle is released.
type ChunkAllocator[T any] struct {
	st *state[T]
}

// NewChunkAllocator creates an allocator whose chunks hold chunkSize slots.
// If chunkSize <= 0, DefaultChunkSize is used. No chunk is created until the
// first allocation.
func NewChunkAllocator[T any](chunkSize int, opts ...Option) *ChunkAllocator[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	st := &state[T]{
		chunkSize: chunkSize,
		opts:      defaultOptions(),
	}
	for _, opt := range opts {
		opt(&st.opts)
	}
	st.refs.Inc()
	return &ChunkAllocator[T]{st: st}
}

// Clone returns a new handle sharing this allocator's chunk list.
func (a *ChunkAllocator[T]) Clone() *ChunkAllocator[T] {
	a.panicIfReleased()
	a.st.refs.Inc()
	return &ChunkAllocator[T]{st: a.st}
}

// Assign drops this handle's share and makes it share other's chunk list.
// Assigning a handle that already shares other's list is a no-op.
func (a *ChunkAllocator[T]) Assign(other *ChunkAllocator[T]) {
	other.panicIfReleased()
	if a.st == other.st {
		return
	}
	a.Release()
	a.st = other.st
	a.st.refs.Inc()
}

// Move returns a new handle that takes over this handle's share.
// The receiver is left released.
func (a *ChunkAllocator[T]) Move() *ChunkAllocator[T] {
	a.panicIfReleased()
	m := &ChunkAllocator[T]{st: a.st}
	a.st = nil
	return m
}

// Release drops this handle's share. The handle that drops the last share
// frees the whole chunk list. Releasing twice is a no-op; any other use after
// Release panics.
func (a *ChunkAllocator[T]) Release() {
	st := a.st
	if st == nil {
		return
	}
	a.st = nil
	if st.refs.Dec() > 0 {
		return
	}
	st.free()
}

// Allocate reserves n contiguous slots and returns them as a slice of
// length and capacity n.
//
// A request larger than one chunk fails with ErrCapacity no matter how many
// chunks exist. Otherwise the first chunk with n free slots serves the
// request, and a new chunk is appended if none can.
func (a *ChunkAllocator[T]) Allocate(n int) ([]T, error) {
	a.panicIfReleased()
	st := a.st
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "allocate %d", n)
	}
	if elem := elemSize[T](); n > st.chunkSize || (elem > 0 && n > st.chunkSize/elem) {
		return nil, errors.Wrapf(ErrCapacity, "allocate %d slots of %d bytes with chunk size %d", n, elem, st.chunkSize)
	}

	for c := st.head; c != nil; c = c.next {
		// A full chunk still takes zero-length blocks.
		if n > 0 && st.full.Contains(c.index) {
			continue
		}
		if s, ok := c.reserve(n); ok {
			st.markIfFull(c)
			return s, nil
		}
	}

	c := st.grow()
	s, _ := c.reserve(n)
	st.markIfFull(c)
	return s, nil
}

// Deallocate does nothing. Slots are only reclaimed when the last handle
// is released.
func (a *ChunkAllocator[T]) Deallocate(s []T, n int) {}

// RefCount returns the number of live handles sharing the chunk list,
// or 0 for a released handle.
func (a *ChunkAllocator[T]) RefCount() int64 {
	if a.st == nil {
		return 0
	}
	return a.st.refs.Load()
}

// ChunkLayout describes the blocks reserved in one chunk.
type ChunkLayout struct {
	Index  int
	Size   int
	Blocks []Block
}

// Layout returns the blocks of each chunk, head first.
func (a *ChunkAllocator[T]) Layout() []ChunkLayout {
	if a.st == nil {
		return nil
	}
	var out []ChunkLayout
	for c := a.st.head; c != nil; c = c.next {
		out = append(out, ChunkLayout{
			Index:  int(c.index),
			Size:   len(c.buf),
			Blocks: append([]Block(nil), c.blocks...),
		})
	}
	return out
}

// grow appends a new chunk at the tail, creating the head if needed.
func (st *state[T]) grow() *chunk[T] {
	c := newChunk[T](st.chunkSize, st.nchunks)
	st.nchunks++
	if st.tail == nil {
		st.head = c
	} else {
		st.tail.next = c
	}
	st.tail = c
	st.opts.logger.Debug("arena: appended chunk", "index", c.index, "slots", st.chunkSize)
	return c
}

func (st *state[T]) markIfFull(c *chunk[T]) {
	if c.free() == 0 {
		st.full.Set(c.index)
	}
}

// free drops the chunk list head to tail.
func (st *state[T]) free() {
	m := st.metrics()
	for c := st.head; c != nil; {
		next := c.next
		c.buf = nil
		c.blocks = nil
		c.next = nil
		c = next
	}
	st.head = nil
	st.tail = nil
	st.nchunks = 0
	st.full = nil
	st.opts.logger.Debug("arena: freed chunk list", "chunks", m.NumChunks, "slots_in_use", m.SizeInUse)
	if st.opts.onFree != nil {
		st.opts.onFree(m)
	}
}

// panicIfReleased panics if the handle has been released.
func (a *ChunkAllocator[T]) panicIfReleased() {
	if a.st == nil {
		panic("arena: use after Release()")
	}
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
