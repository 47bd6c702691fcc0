package cookie

import "errors"

// Errors.
var (
	ErrNotFound    = errors.New("cookie: not found")
	ErrInvalidName = errors.New("cookie: invalid name")
)
