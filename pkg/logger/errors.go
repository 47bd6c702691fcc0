package logger

import "errors"

// ErrUnknownFormat is returned for an output format other than json or text.
var ErrUnknownFormat = errors.New("logger: unknown format")
