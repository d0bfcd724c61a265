package own

import "github.com/pkg/errors"

var (
	// ErrExpired is returned when upgrading a Weak handle whose object has
	// already been destroyed, or that was never bound to one.
	ErrExpired = errors.New("own: expired weak reference")
	// ErrInvalidDereference is returned when dereferencing an empty handle.
	ErrInvalidDereference = errors.New("own: dereference of empty handle")
)
