package internal_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homepage/internal"
)

// paramCaptureHandler registers a GET /{id} route.
type paramCaptureHandler struct {
	fn func(c internal.Context)
}

func (h *paramCaptureHandler) Routes(r internal.Router) {
	r.GET("/{id}", func(c internal.Context) error {
		h.fn(c)
		return nil
	})
}

// requestViaParam creates an App and sends a request to GET /{id}.
func requestViaParam(t *testing.T, req *http.Request, fn func(c internal.Context)) {
	t.Helper()

	app := internal.New(internal.WithHandlers(&paramCaptureHandler{fn: fn}))
	app.ServeHTTP(httptest.NewRecorder(), req)
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestExtractor(t *testing.T) {
	t.Parallel()

	t.Run("empty sources returns false", func(t *testing.T) {
		t.Parallel()

		ext := internal.NewExtractor()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			v, ok := ext.Extract(c)
			require.False(t, ok)
			require.Empty(t, v)
		})
	})

	t.Run("first source wins", func(t *testing.T) {
		t.Parallel()

		ext := internal.NewExtractor(
			internal.FromForm("text"),
			internal.FromQuery("text"),
		)

		req := formRequest(url.Values{"text": {"from form"}})
		req.URL.RawQuery = "text=from+query"

		requestVia(t, req, nil, func(c internal.Context) {
			v, ok := ext.Extract(c)
			require.True(t, ok)
			require.Equal(t, "from form", v)
		})
	})

	t.Run("falls through to second source when first misses", func(t *testing.T) {
		t.Parallel()

		ext := internal.NewExtractor(
			internal.FromHeader("X-Missing"),
			internal.FromQuery("text"),
		)

		req := httptest.NewRequest(http.MethodGet, "/?text=found", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			v, ok := ext.Extract(c)
			require.True(t, ok)
			require.Equal(t, "found", v)
		})
	})

	t.Run("ExtractDefault returns fallback when all miss", func(t *testing.T) {
		t.Parallel()

		ext := internal.NewExtractor(
			internal.FromHeader("X-A"),
			internal.FromQuery("b"),
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			_, ok := ext.Extract(c)
			require.False(t, ok)
			require.Equal(t, "fallback", ext.ExtractDefault(c, "fallback"))
		})
	})
}

func TestExtractorSources(t *testing.T) {
	t.Parallel()

	t.Run("FromHeader", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-1")
		requestVia(t, req, nil, func(c internal.Context) {
			v, ok := internal.FromHeader("X-Request-ID")(c)
			require.True(t, ok)
			require.Equal(t, "req-1", v)

			_, ok = internal.FromHeader("X-Other")(c)
			require.False(t, ok)
		})
	})

	t.Run("FromQuery ignores empty values", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?from=&to=16", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			_, ok := internal.FromQuery("from")(c)
			require.False(t, ok)

			v, ok := internal.FromQuery("to")(c)
			require.True(t, ok)
			require.Equal(t, "16", v)
		})
	})

	t.Run("FromCookie reads the request jar", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "darkmode", Value: "true"})
		requestVia(t, req, nil, func(c internal.Context) {
			v, ok := internal.FromCookie("darkmode")(c)
			require.True(t, ok)
			require.Equal(t, "true", v)

			_, ok = internal.FromCookie("privacynotice")(c)
			require.False(t, ok)
		})
	})

	t.Run("FromCookie sees writes from the same request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			c.Cookies().Set("privacynotice", "false", 0)
			v, ok := internal.FromCookie("privacynotice")(c)
			require.True(t, ok)
			require.Equal(t, "false", v)
		})
	})

	t.Run("FromParam", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/about", nil)
		requestViaParam(t, req, func(c internal.Context) {
			v, ok := internal.FromParam("id")(c)
			require.True(t, ok)
			require.Equal(t, "about", v)

			_, ok = internal.FromParam("slug")(c)
			require.False(t, ok)
		})
	})

	t.Run("FromForm", func(t *testing.T) {
		t.Parallel()

		req := formRequest(url.Values{"text": {"hello"}})
		requestVia(t, req, nil, func(c internal.Context) {
			v, ok := internal.FromForm("text")(c)
			require.True(t, ok)
			require.Equal(t, "hello", v)

			_, ok = internal.FromForm("shift")(c)
			require.False(t, ok)
		})
	})
}

func TestField(t *testing.T) {
	t.Parallel()

	t.Run("URL parameter wins over query", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/ff?id=ignored", nil)
		requestViaParam(t, req, func(c internal.Context) {
			require.Equal(t, "ff", internal.Field("id").ExtractDefault(c, ""))
		})
	})

	t.Run("reads form body and query", func(t *testing.T) {
		t.Parallel()

		req := formRequest(url.Values{"text": {"abc"}})
		req.URL.RawQuery = "shift=5"
		requestVia(t, req, nil, func(c internal.Context) {
			text, ok := internal.Field("text").Extract(c)
			require.True(t, ok)
			require.Equal(t, "abc", text)

			shift, err := internal.Field("shift").Int(c, 3)
			require.NoError(t, err)
			require.Equal(t, 5, shift)
		})
	})

	t.Run("typed defaults and errors", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/?from=ten&decode=yes", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			to, err := internal.Field("to").Int(c, 16)
			require.NoError(t, err)
			require.Equal(t, 16, to)

			_, err = internal.Field("from").Int(c, 10)
			httpErr := internal.AsHTTPError(err)
			require.NotNil(t, httpErr)
			require.Equal(t, http.StatusBadRequest, httpErr.Code)
			require.Equal(t, "from must be an integer", httpErr.Message)

			_, err = internal.Field("decode").Bool(c, false)
			require.Error(t, err)
			require.Contains(t, err.Error(), "decode must be a boolean")

			decode, err := internal.Field("missing").Bool(c, true)
			require.NoError(t, err)
			require.True(t, decode)
		})
	})
}
