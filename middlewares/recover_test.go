package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homepage/internal"
	"github.com/dmitrymomot/homepage/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes PanicError with stack", func(t *testing.T) {
		t.Parallel()

		w, got := serveWith(httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			panic("caesar wheel jammed")
		}, middlewares.Recover())

		require.Equal(t, http.StatusInternalServerError, w.Code)

		pe, ok := middlewares.AsPanicError(got.err)
		require.True(t, ok)
		require.Equal(t, "caesar wheel jammed", pe.Value)
		require.NotEmpty(t, pe.Stack)
	})

	t.Run("panic with error value unwraps", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("nil jar")
		_, got := serveWith(httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			panic(cause)
		}, middlewares.Recover(middlewares.WithRecoverDisablePrintStack()))

		require.ErrorIs(t, got.err, cause)
		pe, ok := middlewares.AsPanicError(got.err)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("stack size is bounded", func(t *testing.T) {
		t.Parallel()

		_, got := serveWith(httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			panic("deep")
		}, middlewares.Recover(middlewares.WithRecoverStackSize(64), middlewares.WithRecoverDisableReport()))

		pe, ok := middlewares.AsPanicError(got.err)
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("passes through normal responses", func(t *testing.T) {
		t.Parallel()

		w, got := serveWith(httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			return c.String(http.StatusOK, "fine")
		}, middlewares.Recover())

		require.NoError(t, got.err)
		require.Equal(t, "fine", w.Body.String())
	})
}
