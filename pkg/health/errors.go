package health

import "errors"

var (
	// ErrCheckFailed wraps the names of the failed checks returned by Run.
	ErrCheckFailed = errors.New("health: checks failed")

	// ErrCheckTimeout marks a check that did not finish within the probe timeout.
	ErrCheckTimeout = errors.New("health: check timed out")
)
