package cache

import "errors"

var (
	// ErrNotFound is returned for keys that were never set, were deleted or have expired.
	ErrNotFound = errors.New("cache: miss")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("cache: closed")
)
