package arena

import "github.com/pkg/errors"

var (
	// ErrCapacity is returned when a single allocation cannot fit in one chunk.
	// The allocator never splits a request across chunks.
	ErrCapacity = errors.New("arena: allocation exceeds chunk size")
	// ErrInvalidCount is returned for a negative slot count.
	ErrInvalidCount = errors.New("arena: negative slot count")
)
