package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/homepage"
	"github.com/dmitrymomot/homepage/pkg/pages"
	"github.com/dmitrymomot/homepage/site/views"
)

// apiPrefix marks routes that answer errors in JSON.
const apiPrefix = "/api/"

// errorBody is the JSON error envelope of the API.
type errorBody struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Request string `json:"request_id,omitempty"`
}

// ErrorHandler renders errors returned by handlers.
// API routes get JSON, htmx requests the error fragment, everything else a full page.
// Server errors are logged with the original cause and shown generically.
func ErrorHandler(layout *views.Layout) homepage.ErrorHandler {
	return func(c homepage.Context, err error) error {
		if errors.Is(err, pages.ErrPageNotFound) || errors.Is(err, pages.ErrInvalidSlug) {
			err = homepage.ErrNotFound("The page you're looking for doesn't exist.", homepage.WithError(err))
		}

		httpErr := homepage.ToHTTPError(err)
		if httpErr.Code >= http.StatusInternalServerError {
			c.LogError("request failed", slog.Any("error", err), slog.Int("status", httpErr.Code))
		}

		if strings.HasPrefix(c.Request().URL.Path, apiPrefix) {
			return c.JSON(httpErr.Code, errorBody{
				Error:   httpErr.Message,
				Code:    httpErr.Code,
				Request: c.Response().Header().Get("X-Request-ID"),
			})
		}

		// Errors raised outside the Preferences middleware still honour the theme.
		c.SetPreferences(c.Preferences())

		title := httpErr.DisplayTitle()
		content := views.ErrorContent(httpErr.Code, title, httpErr.Message)
		return c.RenderPartial(httpErr.Code, layout.Page(title, content), content)
	}
}

// NotFound renders the 404 page for unknown routes.
func NotFound(c homepage.Context) error {
	return homepage.ErrNotFound("The page you're looking for doesn't exist.")
}

// MethodNotAllowed renders the 405 page.
func MethodNotAllowed(c homepage.Context) error {
	return homepage.ErrMethodNotAllowed("This HTTP method is not allowed for this resource.")
}
