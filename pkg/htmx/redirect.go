package htmx

import (
	"net/http"
	"net/url"
	"strings"
)

// Redirect performs a redirect for both HTMX and regular requests.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusSeeOther)
}

// RedirectWithStatus performs a redirect with a custom status code.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, targetURL)
		// HTMX requires 200 status; actual redirect happens client-side via header
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, targetURL, status)
}

// RedirectBack sends the client back to the page it came from.
// The page is taken from HX-Current-URL or Referer; only same-host
// locations are honoured, anything else goes to fallback.
func RedirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	Redirect(w, r, BackURL(r, fallback))
}

// BackURL returns the local path of the referring page, or fallback.
func BackURL(r *http.Request, fallback string) string {
	for _, raw := range []string{r.Header.Get(HeaderHXCurrentURL), r.Referer()} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		if u.Host != "" && !strings.EqualFold(u.Host, r.Host) {
			continue
		}
		if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
			continue
		}
		u.Scheme, u.Host, u.User, u.Fragment = "", "", nil, ""
		return u.String()
	}
	return fallback
}
