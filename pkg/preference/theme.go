package preference

import (
	"path"
	"strconv"

	"github.com/dmitrymomot/homepage/pkg/cookie"
)

// DarkModeCookie stores "true" or "false".
const DarkModeCookie = "darkmode"

// DarkModeDays is how long the theme choice is remembered.
const DarkModeDays = 365

// Theme is the rendered colour scheme.
type Theme string

// Themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeFor maps the dark-mode flag to a theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether the theme is dark.
func (t Theme) IsDark() bool { return t == ThemeDark }

// String implements fmt.Stringer.
func (t Theme) String() string { return string(t) }

// DarkMode reports whether the darkmode cookie is exactly "true".
// A missing or unrecognised value means light mode.
func DarkMode(jar cookie.Jar) bool {
	v, ok := cookie.Read(jar, DarkModeCookie)
	return ok && v == "true"
}

// SetDarkMode persists the theme choice.
func SetDarkMode(jar cookie.Jar, on bool) {
	cookie.Create(jar, DarkModeCookie, strconv.FormatBool(on), DarkModeDays)
}

// ToggleDarkMode flips the stored theme and returns the new state.
func ToggleDarkMode(jar cookie.Jar) bool {
	on := !DarkMode(jar)
	SetDarkMode(jar, on)
	return on
}

// Stylesheet returns the stylesheet URL for the theme under base,
// e.g. "/static/css/dark.css".
func Stylesheet(base string, dark bool) string {
	if base == "" {
		base = "/"
	}
	return path.Join(base, ThemeFor(dark).String()+".css")
}
