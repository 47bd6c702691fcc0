// Package internal provides the core types and implementation of the homepage server.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/homepage" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates HTTP routing, middleware, health probes and graceful shutdown
//   - Context: Request/response access, rendering, cookies and visitor preferences
//   - Router: Interface handlers use to declare routes with HTTP methods and grouping
//   - Handler: Interface implemented by types that declare routes on a router
//   - HandlerFunc: Signature for individual route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Custom error handling function for handler errors
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any function
// that expects a standard library context:
//
//	func (h *Pages) page(c homepage.Context) error {
//	    page, err := h.library.Page(c, c.Param("slug"))
//	    if err != nil {
//	        return err
//	    }
//	    return c.Render(http.StatusOK, views.Page(page))
//	}
//
// # Cookies and preferences
//
// Context.Cookies returns a cookie.Jar bound to the request. Writes become
// Set-Cookie headers and are visible to later reads in the same request, so a
// handler can toggle a preference and render the new state right away:
//
//	dark := preference.ToggleDarkMode(c.Cookies())
//	c.SetPreferences(preference.Load(c.Cookies()))
//
// # HTMX
//
// The ResponseWriter reports 200 to HTMX clients whatever status the handler
// sets, because HTMX only swaps 2xx responses. Status keeps the original code
// for logging. Render applies htmx render options (out-of-band components,
// triggers, retarget) only to HTMX requests; RenderPartial picks the fragment
// for HTMX swaps and the full page for everything else, boosted links included.
//
// # Errors
//
// Handlers return errors. HTTPError carries the status and the user-facing
// message; AsHTTPError finds one anywhere in a wrapped chain and ToHTTPError
// turns anything else into a 500 that keeps the cause for logging.
//
// # Lifecycle
//
// App.Run listens, runs startup hooks, serves until SIGINT/SIGTERM (or the
// WithContext context is cancelled), then shuts the server down and runs the
// shutdown hooks with the shutdown timeout.
package internal
