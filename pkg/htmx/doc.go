// Package htmx provides utilities for working with HTMX requests and responses.
//
// # Request Detection
//
// IsHTMX reports requests issued by an HTMX element. Boosted requests
// (hx-boost) also carry HX-Request but expect a full page, so handlers
// choosing between a fragment and a page should use IsPartial:
//
//	if htmx.IsPartial(r) {
//		// render only the result fragment
//	}
//
// # Redirects
//
// Redirect answers HTMX requests with an HX-Redirect header and 200, and
// regular requests with 303 See Other. RedirectBack returns the visitor to
// the page the request came from, accepting only same-host locations:
//
//	htmx.RedirectBack(w, r, "/")
//
// # Render Options
//
// RenderOption values configure response headers and out-of-band swaps for
// a rendered component:
//
//	opts := []htmx.RenderOption{
//		htmx.WithOOB(views.Stylesheet(href)),
//		htmx.WithTriggerDetail("themeChanged", map[string]string{"theme": "dark"}),
//	}
//
// # Swap Strategies
//
// SwapStrategy names the values accepted by HX-Reswap and hx-swap-oob.
package htmx
