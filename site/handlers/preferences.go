package handlers

import (
	"net/http"

	"github.com/dmitrymomot/homepage"
	"github.com/dmitrymomot/homepage/pkg/htmx"
	"github.com/dmitrymomot/homepage/pkg/preference"
	"github.com/dmitrymomot/homepage/site/views"
)

// ThemeChangedEvent is the client event fired after the theme changes.
const ThemeChangedEvent = "themeChanged"

// PreferencesHandler updates the dark mode and privacy notice cookies.
type PreferencesHandler struct {
	layout *views.Layout
}

// NewPreferences creates the preferences handler.
func NewPreferences(layout *views.Layout) *PreferencesHandler {
	return &PreferencesHandler{layout: layout}
}

// Routes declares the preference routes.
func (h *PreferencesHandler) Routes(r homepage.Router) {
	r.Route("/preferences", func(r homepage.Router) {
		r.POST("/darkmode", h.darkMode)
		r.POST("/privacy-notice/dismiss", h.dismissNotice)
		r.POST("/privacy-notice/reset", h.resetNotice)
	})
}

// darkMode sets the theme from the darkmode form field ("on" or "off").
// An empty field toggles the current theme.
func (h *PreferencesHandler) darkMode(c homepage.Context) error {
	jar := c.Cookies()

	switch c.Form(preference.DarkModeCookie) {
	case "on", "true":
		preference.SetDarkMode(jar, true)
	case "off", "false":
		preference.SetDarkMode(jar, false)
	case "":
		preference.ToggleDarkMode(jar)
	default:
		return c.Error(http.StatusBadRequest, "darkmode must be on or off")
	}

	prefs := preference.Load(jar)
	c.SetPreferences(prefs)
	c.LogDebug("theme changed", "theme", prefs.Theme.String())

	if !c.IsHTMX() {
		return c.RedirectBack("/")
	}
	return c.Render(http.StatusOK, views.DarkModeToggle(prefs.Dark()),
		htmx.WithOOB(views.Stylesheet(h.layout.StaticBase(), prefs.Dark(), true)),
		htmx.WithTriggerDetail(ThemeChangedEvent, map[string]string{"theme": prefs.Theme.String()}),
	)
}

// dismissNotice hides the privacy notice. htmx swaps the banner for nothing.
func (h *PreferencesHandler) dismissNotice(c homepage.Context) error {
	preference.DismissNotice(c.Cookies())

	if !c.IsHTMX() {
		return c.RedirectBack("/")
	}
	return c.NoContent(http.StatusOK)
}

// resetNotice shows the privacy notice again.
func (h *PreferencesHandler) resetNotice(c homepage.Context) error {
	preference.ResetNotice(c.Cookies())

	if !c.IsHTMX() {
		return c.RedirectBack("/")
	}
	return c.Render(http.StatusOK, h.layout.Notice())
}
