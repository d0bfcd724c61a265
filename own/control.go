package own

import "github.com/pavanmanishd/chunkarena/internal/refcount"

// Destroyer is implemented by objects that release resources when their
// owner goes away. DefaultDeleter calls it.
type Destroyer interface {
	Destroy()
}

// Deleter disposes of an owned object. It is never called with nil.
type Deleter[T any] func(*T)

// DefaultDeleter calls Destroy on p if *T implements Destroyer. Otherwise
// the object is left to the garbage collector.
func DefaultDeleter[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
}

// control is the reference-count record shared by the Shared and Weak
// handles of one object. The object is destroyed when strong reaches zero;
// the record itself is retired only when both counts are zero, so Weak
// reads after expiry stay defined.
type control[T any] struct {
	obj     *T
	del     Deleter[T]
	strong refcount.Count
	weak   refcount.Count
	// retired is diagnostic only; nothing branches on it.
	retired bool
}

func newControl[T any](p *T, del Deleter[T]) *control[T] {
	if del == nil {
		del = DefaultDeleter[T]
	}
	c := &control[T]{obj: p, del: del}
	c.strong.Inc()
	return c
}

func (c *control[T]) releaseStrong() {
	if c.strong.Dec() > 0 {
		return
	}
	obj := c.obj
	c.obj = nil
	if obj != nil {
		c.del(obj)
	}
	c.retireIfUnused()
}

func (c *control[T]) releaseWeak() {
	c.weak.Dec()
	c.retireIfUnused()
}

func (c *control[T]) retireIfUnused() {
	if c.strong.Load() == 0 && c.weak.Load() == 0 {
		c.retired = true
	}
}

// aliaser is implemented by handles that can lend their object and control
// record to another handle kind.
type aliaser[T any] interface {
	borrow() (*T, *control[T])
}

// noCopy may be added to structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
