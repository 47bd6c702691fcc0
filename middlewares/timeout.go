package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/homepage/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that bounds the request context by d.
// Handlers observe the deadline through c.Done() and c.Err(). The handler runs
// on the calling goroutine, so a handler that ignores the context finishes late
// but never races the error handler for the response.
// When the deadline passes before anything is written, a TimeoutError is returned.
func Timeout(d time.Duration) internal.Middleware {
	if d <= 0 {
		d = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), d)
			defer cancel()

			c.SetContext(ctx)
			err := next(c)

			if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Written() {
				return err
			}

			c.LogWarn("request timeout", "timeout", d.String())
			return &TimeoutError{Duration: d, Err: err}
		}
	}
}
