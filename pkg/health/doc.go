// Package health provides HTTP handlers and a runner for health probes.
//
// This package implements liveness and readiness endpoints for container
// probes and uptime monitors. Checks are plain func(context.Context) error
// closures, such as the content page library's Check method.
//
// # Main Functions
//
// [LivenessHandler] provides a simple always-OK endpoint for process liveness.
// [ReadinessHandler] executes a set of [Checks] and returns service readiness.
// [Run] executes the same checks outside HTTP, for example from the CLI.
//
// # Quick Start
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "pages": library.Check,
//	}))
//
// # Response Formats
//
// By default, handlers respond with plain text for compatibility with probes.
// Request JSON by setting Accept: application/json header or ?format=json:
//
//	{
//	  "status": "unhealthy",
//	  "checks": {
//	    "pages": {"status": "unhealthy", "error": "page not found: index", "latency_ms": 1}
//	  }
//	}
//
// Checks run in parallel and share one timeout (5s by default, see
// [WithTimeout]). A check that fails after the deadline reports
// [ErrCheckTimeout] in its error.
//
// # Error Handling
//
// The package defines sentinel errors for consistent error handling:
//
//   - [ErrCheckFailed] - One or more checks failed
//   - [ErrCheckTimeout] - Check exceeded timeout
package health
