package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homepage/internal"
	"github.com/dmitrymomot/homepage/middlewares"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("fast handler is untouched", func(t *testing.T) {
		t.Parallel()

		w, got := serveWith(httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			_, ok := c.Deadline()
			require.True(t, ok)
			return c.String(http.StatusOK, "done")
		}, middlewares.Timeout(time.Second))

		require.NoError(t, got.err)
		require.Equal(t, "done", w.Body.String())
	})

	t.Run("handler stopping at the deadline yields TimeoutError", func(t *testing.T) {
		t.Parallel()

		w, got := serveWith(httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			<-c.Done()
			return nil
		}, middlewares.Timeout(10*time.Millisecond))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		te, ok := middlewares.AsTimeoutError(got.err)
		require.True(t, ok)
		require.Equal(t, 10*time.Millisecond, te.Duration)
		require.ErrorIs(t, got.err, context.DeadlineExceeded)
	})

	t.Run("written response is kept after the deadline", func(t *testing.T) {
		t.Parallel()

		w, got := serveWith(httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			<-c.Done()
			return c.String(http.StatusOK, "late but written")
		}, middlewares.Timeout(10*time.Millisecond))

		require.NoError(t, got.err)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "late but written", w.Body.String())
	})

	t.Run("non-positive duration uses default", func(t *testing.T) {
		t.Parallel()

		_, got := serveWith(httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			deadline, ok := c.Deadline()
			require.True(t, ok)
			require.Greater(t, time.Until(deadline), middlewares.DefaultTimeout-time.Second)
			return c.NoContent(http.StatusNoContent)
		}, middlewares.Timeout(0))

		require.NoError(t, got.err)
	})
}
