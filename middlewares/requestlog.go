package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/dmitrymomot/homepage/internal"
)

// DefaultRequestLogSkip lists paths that are not logged.
var DefaultRequestLogSkip = []string{"/health/live", "/health/ready"}

// RequestLogConfig configures the request log middleware.
type RequestLogConfig struct {
	Skip          []string // exact paths that are not logged
	DisableTiming bool     // omit the Server-Timing header
}

// RequestLogOption configures RequestLogConfig.
type RequestLogOption func(*RequestLogConfig)

// WithRequestLogSkip replaces the paths that are not logged.
func WithRequestLogSkip(paths ...string) RequestLogOption {
	return func(cfg *RequestLogConfig) {
		cfg.Skip = paths
	}
}

// WithoutServerTiming disables the Server-Timing response header.
func WithoutServerTiming() RequestLogOption {
	return func(cfg *RequestLogConfig) {
		cfg.DisableTiming = true
	}
}

// RequestLog returns middleware that logs one line per request with the
// status the handler chose, the body size and the duration. For htmx
// requests the logged status is the original one, not the 200 sent on the wire.
// It also reports the handler time before the first write as Server-Timing.
func RequestLog(opts ...RequestLogOption) internal.Middleware {
	cfg := &RequestLogConfig{Skip: DefaultRequestLogSkip}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if slices.Contains(cfg.Skip, r.URL.Path) {
				return next(c)
			}

			start := time.Now()
			rw := c.ResponseWriter()
			if !cfg.DisableTiming {
				rw.OnBeforeWrite(func() {
					rw.Header().Set("Server-Timing", fmt.Sprintf("app;dur=%.1f", float64(time.Since(start).Microseconds())/1000))
				})
			}

			err := next(c)

			status := rw.Status()
			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			c.Logger().LogAttrs(c.Context(), level, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
				slog.Bool("htmx", c.IsHTMX()),
			)
			return err
		}
	}
}
