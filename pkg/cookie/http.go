package cookie

import (
	"net/http"
	"strings"
	"sync"
)

// HTTPJar is a Jar bound to one request/response pair.
// Reads come from the request's Cookie header; writes become Set-Cookie
// headers. Values written during the request are visible to later reads.
type HTTPJar struct {
	w       http.ResponseWriter
	r       *http.Request
	manager *Manager
	pending map[string]pendingCookie
	mu      sync.Mutex
}

type pendingCookie struct {
	value   string
	deleted bool
}

// NewHTTPJar creates a jar for the given request. A nil manager uses New().
func NewHTTPJar(w http.ResponseWriter, r *http.Request, m *Manager) *HTTPJar {
	if m == nil {
		m = New()
	}
	return &HTTPJar{
		w:       w,
		r:       r,
		manager: m,
		pending: make(map[string]pendingCookie),
	}
}

// Get returns the cookie value, preferring writes made during this request.
func (j *HTTPJar) Get(name string) (string, bool) {
	j.mu.Lock()
	p, ok := j.pending[name]
	j.mu.Unlock()
	if ok {
		if p.deleted {
			return "", false
		}
		return p.value, true
	}
	return Lookup(strings.Join(j.r.Header.Values("Cookie"), "; "), name)
}

// Set writes the cookie to the response. Negative days delete it.
func (j *HTTPJar) Set(name, value string, days int) {
	j.mu.Lock()
	j.pending[name] = pendingCookie{value: value, deleted: days < 0}
	j.mu.Unlock()

	j.manager.SetDays(j.w, name, value, days)
}

// Delete expires the cookie.
func (j *HTTPJar) Delete(name string) {
	Erase(j, name)
}

var _ Jar = (*HTTPJar)(nil)
