package htmx

import "net/http"

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted returns true for requests issued by an hx-boost link or form.
// Boosted requests expect a full page.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// IsPartial returns true when the response should be a fragment:
// an HTMX request that is not boosted.
func IsPartial(r *http.Request) bool {
	return IsHTMX(r) && !IsBoosted(r)
}

// Target returns the id of the element the response will be swapped into.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}
