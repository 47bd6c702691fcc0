// Package middlewares provides the request middleware used by the site.
//
// # Request ID
//
// RequestID keeps an upstream X-Request-ID (or X-Correlation-ID) or generates a
// UUID, stores it in the request context and echoes it in the response.
// Pair it with RequestIDExtractor so every log line carries request_id:
//
//	app := homepage.New(
//	    homepage.WithLogger("homepage", middlewares.RequestIDExtractor()),
//	    homepage.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns panics into a *PanicError for the app's ErrorHandler, logs the
// stack and reports the panic to Sentry when a client is configured.
//
// # Timeout
//
// Timeout puts a deadline on the request context. Handlers that stop on
// c.Done() produce a *TimeoutError, which maps to 503.
//
// # Preferences
//
// Preferences loads the darkmode and privacynotice cookies into a
// preference.Preferences snapshot available through c.Preferences().
//
// # CORS
//
// CORS is net/http middleware built on github.com/go-chi/cors. It guards the
// JSON toolbox API:
//
//	r.Route("/api", func(r homepage.Router) {
//	    r.UseHTTP(middlewares.CORS())
//	    ...
//	})
package middlewares
