package own

// Unique is the sole owner of an object. It cannot be copied; ownership
// moves with Move or MoveFrom and the source is left empty.
type Unique[T any] struct {
	_   noCopy
	ptr *T
	del Deleter[T]
}

// NewUnique adopts p. The object is destroyed with DefaultDeleter.
func NewUnique[T any](p *T) *Unique[T] {
	return NewUniqueWithDeleter(p, nil)
}

// NewUniqueWithDeleter adopts p and destroys it with del.
func NewUniqueWithDeleter[T any](p *T, del Deleter[T]) *Unique[T] {
	if del == nil {
		del = DefaultDeleter[T]
	}
	return &Unique[T]{ptr: p, del: del}
}

// Get returns the owned pointer, or nil if the handle is empty.
func (u *Unique[T]) Get() *T {
	if u == nil {
		return nil
	}
	return u.ptr
}

// Deref returns the owned pointer or ErrInvalidDereference if the handle
// is empty.
func (u *Unique[T]) Deref() (*T, error) {
	if p := u.Get(); p != nil {
		return p, nil
	}
	return nil, ErrInvalidDereference
}

// MustDeref is like Deref but panics on an empty handle.
func (u *Unique[T]) MustDeref() *T {
	p, err := u.Deref()
	if err != nil {
		panic(err)
	}
	return p
}

// Release gives up ownership without destroying the object and returns it.
// The handle is left empty.
func (u *Unique[T]) Release() *T {
	p := u.ptr
	u.ptr = nil
	return p
}

// Reset destroys the owned object, if any, and leaves the handle empty.
func (u *Unique[T]) Reset() {
	u.ResetTo(nil)
}

// ResetTo destroys the owned object, if any, and adopts p.
// Resetting to the pointer already owned does nothing.
func (u *Unique[T]) ResetTo(p *T) {
	if p != nil && p == u.ptr {
		return
	}
	old := u.ptr
	u.ptr = p
	if old != nil {
		u.deleter()(old)
	}
}

// Swap exchanges the objects and deleters of u and other.
func (u *Unique[T]) Swap(other *Unique[T]) {
	u.ptr, other.ptr = other.ptr, u.ptr
	u.del, other.del = other.del, u.del
}

// Move returns a new handle owning u's object. u is left empty.
func (u *Unique[T]) Move() *Unique[T] {
	m := &Unique[T]{ptr: u.ptr, del: u.deleter()}
	u.ptr = nil
	return m
}

// MoveFrom destroys u's object, if any, and takes over other's object and
// deleter. other is left empty.
func (u *Unique[T]) MoveFrom(other *Unique[T]) {
	if u == other {
		return
	}
	p, del := other.Release(), other.deleter()
	u.Reset()
	u.ptr, u.del = p, del
}

// Drop destroys the owned object, if any. It is the handle's destructor.
func (u *Unique[T]) Drop() {
	if u == nil {
		return
	}
	u.Reset()
}

func (u *Unique[T]) deleter() Deleter[T] {
	if u.del == nil {
		return DefaultDeleter[T]
	}
	return u.del
}
