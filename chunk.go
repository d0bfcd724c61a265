package arena

// Block is a reserved range of slots inside one chunk.
// Start and Len are in slot units.
type Block struct {
	Start int
	Len   int
}

// End returns the inclusive index of the last slot of the block.
// For a zero-length block this is Start-1.
func (b Block) End() int {
	return b.Start + b.Len - 1
}

// chunk is a fixed buffer of slots plus the blocks reserved from it so far.
// Blocks are appended in order and are contiguous; space is never reclaimed.
type chunk[T any] struct {
	buf    []T
	blocks []Block
	next   *chunk[T]
	index  uint32
}

func newChunk[T any](size int, index uint32) *chunk[T] {
	return &chunk[T]{
		buf:   make([]T, size),
		index: index,
	}
}

// offset is the first slot after the last reserved block.
func (c *chunk[T]) offset() int {
	if len(c.blocks) == 0 {
		return 0
	}
	return c.blocks[len(c.blocks)-1].End() + 1
}

// free returns the number of slots left at the tail of the chunk.
func (c *chunk[T]) free() int {
	return len(c.buf) - c.offset()
}

// reserve carves n slots off the tail of the chunk.
// It returns false if the chunk does not have n slots left.
func (c *chunk[T]) reserve(n int) ([]T, bool) {
	start := c.offset()
	if start+n > len(c.buf) {
		return nil, false
	}
	c.blocks = append(c.blocks, Block{Start: start, Len: n})
	return c.buf[start : start+n : start+n], true
}

// reserved returns the number of slots handed out from this chunk.
func (c *chunk[T]) reserved() int {
	return c.offset()
}
