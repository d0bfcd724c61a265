// Package own provides explicit ownership handles for heap objects whose
// lifetime is managed by hand rather than left to the garbage collector:
// values that hold file descriptors, arena shares, pooled buffers and the
// like.
//
// Unique owns its object exclusively and can only be moved. Shared owns its
// object jointly with other Shared handles through a strong reference count;
// the object's Deleter runs exactly once, when the last Shared handle is
// dropped. Weak observes an object owned by Shared handles without keeping
// it alive and must be upgraded with Lock or FromWeak before use.
//
// A handle's Drop method plays the role of a destructor. Handles are not
// goroutine-safe: every handle descended from one object shares unguarded
// counters, so callers serialize access.
//
// Handles must not be copied by value; use Clone, Move and Assign. go vet
// reports accidental copies.
package own
