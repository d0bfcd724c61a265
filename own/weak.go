package own

// Weak observes an object owned by Shared handles without keeping it alive.
// It only grants access through Lock or FromWeak. Once the object is
// destroyed the Weak handle no longer references it. The zero value is an
// unbound handle.
type Weak[T any] struct {
	_   noCopy
	ctl *control[T]
}

// NewWeak returns a Weak handle observing s's object. A Weak handle made
// from an empty Shared handle is unbound.
func NewWeak[T any](s *Shared[T]) *Weak[T] {
	return weakFrom[T](s)
}

func weakFrom[T any](src aliaser[T]) *Weak[T] {
	_, ctl := src.borrow()
	if ctl == nil {
		return &Weak[T]{}
	}
	ctl.weak.Inc()
	return &Weak[T]{ctl: ctl}
}

func (w *Weak[T]) borrow() (*T, *control[T]) {
	if w == nil || w.ctl == nil {
		return nil, nil
	}
	return w.ctl.obj, w.ctl
}

// Clone returns a new Weak handle observing the same object.
func (w *Weak[T]) Clone() *Weak[T] {
	return weakFrom[T](w)
}

// Assign makes w observe other's object. Assigning nil unbinds w.
func (w *Weak[T]) Assign(other *Weak[T]) {
	if _, ctl := other.borrow(); w == other || w.ctl == ctl {
		return
	}
	c := other.Clone()
	w.Swap(c)
	c.Drop()
}

// AssignShared makes w observe s's object.
func (w *Weak[T]) AssignShared(s *Shared[T]) {
	c := NewWeak(s)
	w.Swap(c)
	c.Drop()
}

// Move returns a new handle observing w's object. w is left unbound.
func (w *Weak[T]) Move() *Weak[T] {
	m := &Weak[T]{ctl: w.ctl}
	w.ctl = nil
	return m
}

// MoveFrom makes w take over other's observation. other is left unbound.
func (w *Weak[T]) MoveFrom(other *Weak[T]) {
	if w == other {
		return
	}
	m := other.Move()
	w.Swap(m)
	m.Drop()
}

// Expired reports whether the object has been destroyed. Unbound handles
// are always expired.
func (w *Weak[T]) Expired() bool {
	return w.UseCount() == 0
}

// UseCount returns the number of Shared handles to the object, or 0 if the
// handle is unbound or the object is gone.
func (w *Weak[T]) UseCount() int64 {
	if w == nil || w.ctl == nil {
		return 0
	}
	return w.ctl.strong.Load()
}

// WeakCount returns the number of Weak handles observing the object.
func (w *Weak[T]) WeakCount() int64 {
	if w == nil || w.ctl == nil {
		return 0
	}
	return w.ctl.weak.Load()
}

// Lock returns a new Shared handle to the object, or an empty Shared handle
// if it has expired.
func (w *Weak[T]) Lock() *Shared[T] {
	if s, ok := upgrade[T](w); ok {
		return s
	}
	return &Shared[T]{}
}

// Reset leaves w unbound.
func (w *Weak[T]) Reset() {
	w.Drop()
}

// Swap exchanges the objects observed by w and other.
func (w *Weak[T]) Swap(other *Weak[T]) {
	w.ctl, other.ctl = other.ctl, w.ctl
}

// Drop releases w's weak reference. It never affects the object's lifetime.
func (w *Weak[T]) Drop() {
	if w == nil || w.ctl == nil {
		return
	}
	ctl := w.ctl
	w.ctl = nil
	ctl.releaseWeak()
}
