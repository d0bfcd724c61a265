package own

import "github.com/pkg/errors"

// Shared owns an object jointly with every handle cloned from it. The
// object is destroyed once, when the last Shared handle is dropped. The
// zero value is an empty handle.
type Shared[T any] struct {
	_   noCopy
	ptr *T
	ctl *control[T]
}

// NewShared adopts p with a fresh strong count of one. The object is
// destroyed with DefaultDeleter.
func NewShared[T any](p *T) *Shared[T] {
	return NewSharedWithDeleter(p, nil)
}

// NewSharedWithDeleter adopts p and destroys it with del.
func NewSharedWithDeleter[T any](p *T, del Deleter[T]) *Shared[T] {
	return &Shared[T]{ptr: p, ctl: newControl(p, del)}
}

// FromWeak returns a new Shared handle to w's object. It fails with
// ErrExpired if the object has been destroyed or w is unbound.
func FromWeak[T any](w *Weak[T]) (*Shared[T], error) {
	s, ok := upgrade[T](w)
	if !ok {
		return nil, errors.WithStack(ErrExpired)
	}
	return s, nil
}

// upgrade adds a strong reference to src's object if it is still alive.
func upgrade[T any](src aliaser[T]) (*Shared[T], bool) {
	p, ctl := src.borrow()
	if ctl == nil || ctl.strong.Load() == 0 {
		return nil, false
	}
	ctl.strong.Inc()
	return &Shared[T]{ptr: p, ctl: ctl}, true
}

func (s *Shared[T]) borrow() (*T, *control[T]) {
	if s == nil {
		return nil, nil
	}
	return s.ptr, s.ctl
}

// Clone returns a new handle sharing s's object. Cloning an empty handle
// returns an empty handle.
func (s *Shared[T]) Clone() *Shared[T] {
	if s == nil || s.ctl == nil {
		return &Shared[T]{}
	}
	s.ctl.strong.Inc()
	return &Shared[T]{ptr: s.ptr, ctl: s.ctl}
}

// Assign drops s's reference and makes s share other's object. Assigning
// nil empties s.
func (s *Shared[T]) Assign(other *Shared[T]) {
	if _, ctl := other.borrow(); s == other || s.ctl == ctl {
		return
	}
	c := other.Clone()
	s.Swap(c)
	c.Drop()
}

// Move returns a new handle holding s's reference. s is left empty and the
// count is unchanged.
func (s *Shared[T]) Move() *Shared[T] {
	m := &Shared[T]{ptr: s.ptr, ctl: s.ctl}
	s.ptr, s.ctl = nil, nil
	return m
}

// MoveFrom drops s's reference and takes over other's. other is left empty.
func (s *Shared[T]) MoveFrom(other *Shared[T]) {
	if s == other {
		return
	}
	m := other.Move()
	s.Swap(m)
	m.Drop()
}

// Get returns the shared pointer, or nil if the handle is empty.
func (s *Shared[T]) Get() *T {
	if s == nil {
		return nil
	}
	return s.ptr
}

// Deref returns the shared pointer or ErrInvalidDereference if the handle
// is empty.
func (s *Shared[T]) Deref() (*T, error) {
	if p := s.Get(); p != nil {
		return p, nil
	}
	return nil, ErrInvalidDereference
}

// MustDeref is like Deref but panics on an empty handle.
func (s *Shared[T]) MustDeref() *T {
	p, err := s.Deref()
	if err != nil {
		panic(err)
	}
	return p
}

// UseCount returns the number of Shared handles to the object, or 0 for an
// empty handle.
func (s *Shared[T]) UseCount() int64 {
	if s == nil || s.ctl == nil {
		return 0
	}
	return s.ctl.strong.Load()
}

// Reset drops s's reference and leaves it empty.
func (s *Shared[T]) Reset() {
	s.Drop()
}

// ResetTo drops s's reference and adopts p with a fresh count. Resetting to
// the pointer already held does nothing. p must not already be owned by
// another handle.
func (s *Shared[T]) ResetTo(p *T) {
	if p != nil && p == s.ptr {
		return
	}
	n := NewShared(p)
	s.Swap(n)
	n.Drop()
}

// Swap exchanges the objects of s and other. Counts are unchanged.
func (s *Shared[T]) Swap(other *Shared[T]) {
	s.ptr, other.ptr = other.ptr, s.ptr
	s.ctl, other.ctl = other.ctl, s.ctl
}

// Weak returns a Weak handle observing s's object.
func (s *Shared[T]) Weak() *Weak[T] {
	return NewWeak(s)
}

// Drop releases s's reference, destroying the object if it was the last
// one. It is the handle's destructor; dropping an empty handle does nothing.
func (s *Shared[T]) Drop() {
	if s == nil || s.ctl == nil {
		return
	}
	ctl := s.ctl
	s.ptr, s.ctl = nil, nil
	ctl.releaseStrong()
}
