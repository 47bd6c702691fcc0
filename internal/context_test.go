package internal_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homepage/internal"
	"github.com/dmitrymomot/homepage/pkg/htmx"
	"github.com/dmitrymomot/homepage/pkg/preference"
)

// requestVia creates an App with the given options, registers a handler at GET /,
// executes fn inside that handler, and sends a request. This lets tests exercise
// the real requestContext without accessing unexported symbols.
func requestVia(t *testing.T, req *http.Request, opts []internal.Option, fn func(c internal.Context)) *httptest.ResponseRecorder {
	t.Helper()

	h := &captureHandler{method: req.Method, fn: fn}
	opts = append(opts, internal.WithHandlers(h))
	app := internal.New(opts...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

type captureHandler struct {
	method string
	fn     func(c internal.Context)
}

func (h *captureHandler) Routes(r internal.Router) {
	handler := func(c internal.Context) error {
		h.fn(c)
		return nil
	}
	if h.method == http.MethodPost {
		r.POST("/", handler)
		return
	}
	r.GET("/", handler)
}

// text is a minimal Component.
type text string

func (t text) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(t))
	return err
}

func htmxRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(htmx.HeaderHXRequest, "true")
	return req
}

func TestContextImplementsContextInterface(t *testing.T) {
	t.Parallel()

	t.Run("Deadline delegates to request context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		requestVia(t, req, nil, func(c internal.Context) {
			deadline, ok := c.Deadline()
			require.True(t, ok)
			expected, _ := ctx.Deadline()
			require.Equal(t, expected, deadline)
		})
	})

	t.Run("Err returns Canceled after cancel", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		requestVia(t, req, nil, func(c internal.Context) {
			require.NoError(t, c.Err())
			cancel()
			require.ErrorIs(t, c.Err(), context.Canceled)
		})
	})

	t.Run("Value reflects Set changes", func(t *testing.T) {
		t.Parallel()

		type testKey struct{}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			require.Nil(t, c.Value(testKey{}))
			c.Set(testKey{}, 42)
			require.Equal(t, 42, c.Value(testKey{}))
			require.Equal(t, 42, c.Get(testKey{}))
			require.Equal(t, 42, c.Request().Context().Value(testKey{}))
		})
	})
}

func TestContextResponses(t *testing.T) {
	t.Parallel()

	t.Run("JSON", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := requestVia(t, req, nil, func(c internal.Context) {
			require.NoError(t, c.JSON(http.StatusCreated, map[string]string{"result": "ff"}))
			require.True(t, c.Written())
		})

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		require.JSONEq(t, `{"result":"ff"}`, w.Body.String())
	})

	t.Run("String", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := requestVia(t, req, nil, func(c internal.Context) {
			require.NoError(t, c.String(http.StatusOK, "NaN"))
		})

		require.Equal(t, "NaN", w.Body.String())
		require.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("Redirect for plain request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := requestVia(t, req, nil, func(c internal.Context) {
			require.NoError(t, c.Redirect(http.StatusSeeOther, "/toolbox/"))
		})

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/toolbox/", w.Header().Get("Location"))
	})

	t.Run("Redirect for htmx request", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, htmxRequest(http.MethodGet, "/"), nil, func(c internal.Context) {
			require.NoError(t, c.Redirect(http.StatusSeeOther, "/toolbox/"))
		})

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "/toolbox/", w.Header().Get(htmx.HeaderHXRedirect))
	})

	t.Run("RedirectBack uses same-host referer", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Referer", "http://example.com/about")
		w := requestVia(t, req, nil, func(c internal.Context) {
			require.NoError(t, c.RedirectBack("/"))
		})

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/about", w.Header().Get("Location"))
	})

	t.Run("Error builds HTTPError without writing", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			err := c.Error(http.StatusBadRequest, "invalid radix", internal.WithErrorCode("invalid_radix"))
			require.Equal(t, http.StatusBadRequest, err.Code)
			require.Equal(t, "invalid_radix", err.ErrorCode)
			require.False(t, c.Written())
		})
	})
}

func TestContextRender(t *testing.T) {
	t.Parallel()

	t.Run("plain request keeps status and skips OOB", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := requestVia(t, req, nil, func(c internal.Context) {
			err := c.Render(http.StatusNotFound, text("<main>missing</main>"),
				htmx.WithOOB(text(`<link id="sitestyle">`)),
				htmx.WithTrigger("themeChanged"),
			)
			require.NoError(t, err)
		})

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "<main>missing</main>", w.Body.String())
		require.Empty(t, w.Header().Get(htmx.HeaderHXTrigger))
	})

	t.Run("htmx request gets 200 headers and OOB", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, htmxRequest(http.MethodGet, "/"), nil, func(c internal.Context) {
			err := c.Render(http.StatusUnprocessableEntity, text("<output>NaN</output>"),
				htmx.WithOOB(text(`<link id="sitestyle">`)),
				htmx.WithTrigger("themeChanged"),
			)
			require.NoError(t, err)
			require.Equal(t, http.StatusUnprocessableEntity, c.ResponseWriter().Status())
		})

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `<output>NaN</output><link id="sitestyle">`, w.Body.String())
		require.Equal(t, "themeChanged", w.Header().Get(htmx.HeaderHXTrigger))
	})

	t.Run("RenderPartial picks partial for htmx", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, htmxRequest(http.MethodGet, "/"), nil, func(c internal.Context) {
			require.NoError(t, c.RenderPartial(http.StatusOK, text("full"), text("partial")))
		})
		require.Equal(t, "partial", w.Body.String())
	})

	t.Run("RenderPartial picks full page for boosted navigation", func(t *testing.T) {
		t.Parallel()

		req := htmxRequest(http.MethodGet, "/")
		req.Header.Set(htmx.HeaderHXBoosted, "true")
		w := requestVia(t, req, nil, func(c internal.Context) {
			require.NoError(t, c.RenderPartial(http.StatusOK, text("full"), text("partial")))
		})
		require.Equal(t, "full", w.Body.String())
	})

	t.Run("RenderPartial picks full page for plain request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := requestVia(t, req, nil, func(c internal.Context) {
			require.NoError(t, c.RenderPartial(http.StatusOK, text("full"), text("partial")))
		})
		require.Equal(t, "full", w.Body.String())
	})
}

func TestContextCookies(t *testing.T) {
	t.Parallel()

	t.Run("reads request cookies", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "darkmode", Value: "true"})
		requestVia(t, req, nil, func(c internal.Context) {
			v, ok := c.Cookies().Get("darkmode")
			require.True(t, ok)
			require.Equal(t, "true", v)

			plain, err := c.Cookie("darkmode")
			require.NoError(t, err)
			require.Equal(t, "true", plain)
		})
	})

	t.Run("read after write in the same request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "darkmode", Value: "false"})
		w := requestVia(t, req, nil, func(c internal.Context) {
			c.Cookies().Set("darkmode", "true", 365)
			v, ok := c.Cookies().Get("darkmode")
			require.True(t, ok)
			require.Equal(t, "true", v)

			c.Cookies().Delete("darkmode")
			_, ok = c.Cookies().Get("darkmode")
			require.False(t, ok)
		})

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 2)
		require.Equal(t, "true", cookies[0].Value)
		require.Equal(t, -1, cookies[1].MaxAge)
	})

	t.Run("SetCookie and DeleteCookie write headers", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := requestVia(t, req, nil, func(c internal.Context) {
			c.SetCookie("privacynotice", "false", 0)
			c.DeleteCookie("darkmode")
		})

		header := strings.Join(w.Header().Values("Set-Cookie"), "\n")
		require.Contains(t, header, "privacynotice=false")
		require.Contains(t, header, "darkmode=;")
	})
}

func TestContextPreferences(t *testing.T) {
	t.Parallel()

	t.Run("loads from cookies", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: preference.DarkModeCookie, Value: "true"})
		req.AddCookie(&http.Cookie{Name: preference.NoticeCookie, Value: "false"})
		requestVia(t, req, nil, func(c internal.Context) {
			p := c.Preferences()
			require.True(t, p.Dark())
			require.False(t, p.NoticeVisible)
		})
	})

	t.Run("defaults without cookies", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			p := c.Preferences()
			require.Equal(t, preference.ThemeLight, p.Theme)
			require.True(t, p.NoticeVisible)
		})
	})

	t.Run("stored snapshot wins and reaches the request context", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		requestVia(t, req, nil, func(c internal.Context) {
			want := preference.Preferences{Theme: preference.ThemeDark}
			c.SetPreferences(want)
			require.Equal(t, want, c.Preferences())
			require.Equal(t, want, preference.FromContext(c.Request().Context()))
		})
	})
}
