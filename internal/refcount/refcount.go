// Package refcount provides the reference-count object shared by arena
// handles and ownership handles.
//
// Count is a plain integer. It is not synchronized; callers serialize access.
package refcount

// Count is a mutable reference counter. The zero value holds zero references.
type Count struct {
	n int64
}

// Inc adds one reference and returns the new count.
func (c *Count) Inc() int64 {
	c.n++
	return c.n
}

// Dec drops one reference and returns the new count.
func (c *Count) Dec() int64 {
	c.n--
	return c.n
}

// Load returns the current count.
func (c *Count) Load() int64 {
	return c.n
}
