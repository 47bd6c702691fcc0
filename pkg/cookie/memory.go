package cookie

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MemoryJar is an in-process cookie jar with the semantics of a page's
// document.cookie: assignments add or replace a single cookie, expired
// cookies disappear, and reading yields "name=value" pairs in insertion order.
type MemoryJar struct {
	now     func() time.Time
	entries []memoryEntry
	mu      sync.Mutex
}

type memoryEntry struct {
	expires time.Time // zero = session cookie
	name    string
	value   string
}

// MemoryOption configures a MemoryJar.
type MemoryOption func(*MemoryJar)

// WithMemoryClock overrides the jar's time source.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(j *MemoryJar) {
		if now != nil {
			j.now = now
		}
	}
}

// NewMemoryJar creates an empty jar.
func NewMemoryJar(opts ...MemoryOption) *MemoryJar {
	j := &MemoryJar{now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Get returns the value of the first live cookie called name.
func (j *MemoryJar) Get(name string) (string, bool) {
	return Lookup(j.String(), name)
}

// Set serializes the cookie with Format and assigns it to the jar.
func (j *MemoryJar) Set(name, value string, days int) {
	j.Assign(Format(name, value, days, j.now()))
}

// Delete expires the cookie.
func (j *MemoryJar) Delete(name string) {
	Erase(j, name)
}

// Assign applies a single cookie assignment such as
// "darkmode=true; expires=Thu, 01 Jan 1970 00:00:00 GMT; path=/".
// Unknown attributes are ignored, a past expiry removes the cookie.
func (j *MemoryJar) Assign(assignment string) error {
	parts := strings.Split(assignment, ";")
	name, value, ok := strings.Cut(strings.TrimSpace(parts[0]), "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return ErrInvalidName
	}

	var expires time.Time
	for _, attr := range parts[1:] {
		key, val, _ := strings.Cut(strings.TrimSpace(attr), "=")
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "expires":
			if t, err := http.ParseTime(strings.TrimSpace(val)); err == nil && expires.IsZero() {
				expires = t
			}
		case "max-age":
			if secs, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
				expires = j.now().Add(time.Duration(secs) * time.Second)
				if secs <= 0 {
					expires = time.Unix(0, 0)
				}
			}
		}
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	idx := j.index(name)
	if !expires.IsZero() && !expires.After(j.now()) {
		if idx >= 0 {
			j.entries = append(j.entries[:idx], j.entries[idx+1:]...)
		}
		return nil
	}

	e := memoryEntry{name: name, value: strings.TrimSpace(value), expires: expires}
	if idx >= 0 {
		j.entries[idx] = e
		return nil
	}
	j.entries = append(j.entries, e)
	return nil
}

// String renders the live cookies as "a=1; b=2".
func (j *MemoryJar) String() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	pairs := make([]string, 0, len(j.entries))
	for _, e := range j.entries {
		if !e.expires.IsZero() && !e.expires.After(now) {
			continue
		}
		pairs = append(pairs, e.name+"="+e.value)
	}
	return strings.Join(pairs, "; ")
}

// index returns the position of name or -1. Caller must hold the mutex.
func (j *MemoryJar) index(name string) int {
	for i, e := range j.entries {
		if e.name == name {
			return i
		}
	}
	return -1
}

var _ Jar = (*MemoryJar)(nil)
