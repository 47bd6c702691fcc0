package cookie

import (
	"errors"
	"net/http"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Manager builds cookies with common attributes and writes them to responses.
type Manager struct {
	domain   string
	path     string
	secure   bool
	httpOnly bool
	sameSite http.SameSite
	now      func() time.Time
}

// Option configures the Manager.
type Option func(*Manager)

// New creates a cookie Manager with the given options.
// Defaults: path "/", HttpOnly, SameSite=Lax.
func New(opts ...Option) *Manager {
	m := &Manager{
		path:     "/",
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(m *Manager) {
		m.domain = domain
	}
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(m *Manager) {
		if path != "" {
			m.path = path
		}
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithHTTPOnly sets the HttpOnly flag.
func WithHTTPOnly(httpOnly bool) Option {
	return func(m *Manager) {
		m.httpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(ss http.SameSite) Option {
	return func(m *Manager) {
		m.sameSite = ss
	}
}

// WithClock overrides the time source used for expiry dates.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// Get returns a plain cookie value.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Set sets a plain cookie that lives for maxAge seconds.
// Zero makes it a session cookie, a negative value deletes it.
func (m *Manager) Set(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, m.cookie(name, value, maxAge))
}

// SetDays sets a cookie that expires after the given number of days.
// Zero makes it a session cookie, a negative value deletes it.
func (m *Manager) SetDays(w http.ResponseWriter, name, value string, days int) {
	http.SetCookie(w, m.cookie(name, value, days*secondsPerDay))
}

// Delete removes a cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.cookie(name, "", -1))
}

// Jar returns a request-scoped Jar reading from r and writing to w.
func (m *Manager) Jar(w http.ResponseWriter, r *http.Request) *HTTPJar {
	return NewHTTPJar(w, r, m)
}

// cookie creates a cookie with the manager's defaults.
// Expires mirrors MaxAge so clients without Max-Age support behave the same.
func (m *Manager) cookie(name, value string, maxAge int) *http.Cookie {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     m.path,
		Domain:   m.domain,
		Secure:   m.secure,
		HttpOnly: m.httpOnly,
		SameSite: m.sameSite,
	}
	switch {
	case maxAge < 0:
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0).UTC()
	case maxAge > 0:
		c.MaxAge = maxAge
		c.Expires = m.now().UTC().Add(time.Duration(maxAge) * time.Second)
	}
	return c
}
