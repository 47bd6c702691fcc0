package middlewares

import (
	"github.com/dmitrymomot/homepage/internal"
	"github.com/dmitrymomot/homepage/pkg/preference"
)

// Preferences returns middleware that loads the visitor's cookie preferences
// (theme and privacy notice state) once per request and stores the snapshot in
// the request context, where c.Preferences() and views read it.
// Responses vary by the Cookie header because their markup depends on it.
func Preferences() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			c.SetPreferences(preference.Load(c.Cookies()))
			c.Response().Header().Add("Vary", "Cookie")
			return next(c)
		}
	}
}
