package directory

import "errors"

var (
	// ErrNotFound is returned when a lookup succeeds but matches nothing:
	// no active custom domain, no redirect rule. It is a normal outcome,
	// not a failure.
	ErrNotFound = errors.New("directory: not found")

	// ErrUnavailable wraps transport and decoding failures. Callers fail
	// open on it.
	ErrUnavailable = errors.New("directory: unavailable")
)
