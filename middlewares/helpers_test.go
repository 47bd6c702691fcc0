package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/homepage/internal"
)

type routesFunc func(r internal.Router)

func (f routesFunc) Routes(r internal.Router) { f(r) }

// captured records the error the app's error handler received.
type captured struct {
	err error
}

// serveWith runs req through an app with mw in front of h on "/".
func serveWith(req *http.Request, h internal.HandlerFunc, mw ...internal.Middleware) (*httptest.ResponseRecorder, *captured) {
	got := &captured{}
	app := internal.New(
		internal.WithMiddleware(mw...),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			got.err = err
			httpErr := internal.ToHTTPError(err)
			return c.String(httpErr.Code, httpErr.Message)
		}),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/", h)
			r.POST("/", h)
		})),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w, got
}
