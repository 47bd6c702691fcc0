package preference

import (
	"context"

	"github.com/dmitrymomot/homepage/pkg/cookie"
)

// Preferences is a snapshot of the visitor's choices for one request.
type Preferences struct {
	Theme         Theme
	NoticeVisible bool
}

// Load reads the preferences from the jar.
func Load(jar cookie.Jar) Preferences {
	return Preferences{
		Theme:         ThemeFor(DarkMode(jar)),
		NoticeVisible: NoticeVisible(jar),
	}
}

// Dark reports whether the dark theme is active.
func (p Preferences) Dark() bool { return p.Theme.IsDark() }

type contextKey struct{}

// WithContext stores the preferences in ctx.
func WithContext(ctx context.Context, p Preferences) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the preferences stored in ctx.
// Without any, it returns the defaults: light theme, notice visible.
func FromContext(ctx context.Context) Preferences {
	if p, ok := Lookup(ctx); ok {
		return p
	}
	return Preferences{Theme: ThemeLight, NoticeVisible: true}
}

// Lookup returns the preferences stored in ctx and whether there were any.
func Lookup(ctx context.Context) (Preferences, bool) {
	p, ok := ctx.Value(contextKey{}).(Preferences)
	return p, ok
}
