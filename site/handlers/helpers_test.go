package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homepage"
	"github.com/dmitrymomot/homepage/middlewares"
	"github.com/dmitrymomot/homepage/pkg/pages"
	"github.com/dmitrymomot/homepage/site/handlers"
	"github.com/dmitrymomot/homepage/site/views"
)

var content = fstest.MapFS{
	"index.md":          {Data: []byte("---\ntitle: Home\nnav: true\n---\nWelcome **home**.\n")},
	"about.md":          {Data: []byte("---\ntitle: About\nnav: true\norder: 1\n---\nAbout this site.\n")},
	"privacy_policy.md": {Data: []byte("# Cookies\n\nTwo of them.\n")},
}

func newApp(t *testing.T) *homepage.App {
	t.Helper()

	library := pages.New(content)
	t.Cleanup(func() { _ = library.Close() })

	nav, err := library.Nav()
	require.NoError(t, err)

	layout := views.NewLayout(views.WithSiteTitle("Test Site"), views.WithNav(nav))

	return homepage.New(
		homepage.WithMiddleware(
			middlewares.Recover(),
			middlewares.RequestID(),
			middlewares.Preferences(),
		),
		homepage.WithErrorHandler(handlers.ErrorHandler(layout)),
		homepage.WithNotFoundHandler(handlers.NotFound),
		homepage.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		homepage.WithHandlers(
			handlers.NewPreferences(layout),
			handlers.NewToolbox(layout, handlers.DefaultToolbox()),
			handlers.NewToolboxAPI(handlers.DefaultToolbox()),
			handlers.NewPages(library, layout),
		),
	)
}

func do(app *homepage.App, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func get(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func asHTMX(req *http.Request) *http.Request {
	req.Header.Set("HX-Request", "true")
	return req
}

// setCookie returns the Set-Cookie header written for name.
func setCookie(w *httptest.ResponseRecorder, name string) string {
	for _, v := range w.Header().Values("Set-Cookie") {
		if strings.HasPrefix(v, name+"=") {
			return v
		}
	}
	return ""
}
