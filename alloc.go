package arena

// New reserves a single slot and returns a pointer to it.
// The slot holds the zero value of T.
func (a *ChunkAllocator[T]) New() (*T, error) {
	s, err := a.Allocate(1)
	if err != nil {
		return nil, err
	}
	return &s[0], nil
}

// NewValue reserves a single slot and stores v in it.
func (a *ChunkAllocator[T]) NewValue(v T) (*T, error) {
	p, err := a.New()
	if err != nil {
		return nil, err
	}
	*p = v
	return p, nil
}

// Construct stores v in the slot p points to.
func (a *ChunkAllocator[T]) Construct(p *T, v T) {
	*p = v
}

// Destroy resets the slot p points to to the zero value of T, dropping any
// references it held. The slot itself stays reserved.
func (a *ChunkAllocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}
