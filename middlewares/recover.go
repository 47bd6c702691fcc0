package middlewares

import (
	"runtime"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrymomot/homepage/internal"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	StackSize         int  // Max stack trace size (default: 4096)
	DisablePrintStack bool // Disable stack trace in logs
	DisableReport     bool // Do not report panics to Sentry
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.StackSize = size
	}
}

// WithRecoverDisablePrintStack disables including stack trace in logs.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// WithRecoverDisableReport stops panics from being sent to Sentry.
func WithRecoverDisableReport() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisableReport = true
	}
}

// Recover returns middleware that recovers from panics.
// The panic is logged, reported to Sentry when a client is configured,
// and returned as a PanicError for the app's ErrorHandler.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := &RecoverConfig{
		StackSize: DefaultStackSize,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var stack []byte
				if !cfg.DisablePrintStack {
					stack = make([]byte, cfg.StackSize)
					stack = stack[:runtime.Stack(stack, false)]
					c.LogError("panic recovered", "panic", r, "stack", string(stack))
				} else {
					c.LogError("panic recovered", "panic", r)
				}

				if !cfg.DisableReport {
					report(c, r)
				}

				err = &PanicError{
					Value: r,
					Stack: stack,
				}
			}()

			return next(c)
		}
	}
}

// report sends the panic to the request's Sentry hub.
func report(c internal.Context, value any) {
	hub := sentry.GetHubFromContext(c.Context())
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub = hub.Clone()
	hub.Scope().SetRequest(c.Request())
	hub.RecoverWithContext(c.Context(), value)
}
