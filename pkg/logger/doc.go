// Package logger builds the site's slog loggers.
//
// Loggers write JSON (or text) records and enrich every record with
// request-scoped attributes pulled from the context by ContextExtractor
// functions, such as the request id set by the RequestID middleware:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "page rendered", slog.String("slug", slug))
//
// NewWithConfig honours the configured level and format. When a Sentry DSN is
// present, records also go to Sentry: errors become issues and warnings are
// stored as logs. Call Flush during shutdown so buffered events are delivered.
//
// NewNope returns a logger that discards everything and is the default for
// components created without one.
package logger
