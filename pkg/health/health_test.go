package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homepage/pkg/health"
)

func ok(context.Context) error { return nil }

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()

		resp, err := health.Run(context.Background(), nil)
		require.NoError(t, err)
		require.True(t, resp.Healthy())
		require.Empty(t, resp.Checks)
	})

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		resp, err := health.Run(context.Background(), health.Checks{"pages": ok, "assets": ok})
		require.NoError(t, err)
		require.Equal(t, health.StatusHealthy, resp.Status)
		require.Len(t, resp.Checks, 2)
		require.Empty(t, resp.Failed())
	})

	t.Run("failed checks are reported", func(t *testing.T) {
		t.Parallel()

		resp, err := health.Run(context.Background(), health.Checks{
			"pages":  func(context.Context) error { return errors.New("index.md missing") },
			"assets": ok,
			"cache":  func(context.Context) error { return errors.New("closed") },
		})
		require.ErrorIs(t, err, health.ErrCheckFailed)
		require.ErrorContains(t, err, "[cache pages]")
		require.False(t, resp.Healthy())
		require.Equal(t, []string{"cache", "pages"}, resp.Failed())
		require.Equal(t, "index.md missing", resp.Checks["pages"].Error)
		require.Equal(t, health.StatusHealthy, resp.Checks["assets"].Status)
	})

	t.Run("slow check times out", func(t *testing.T) {
		t.Parallel()

		slow := func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}
		resp, err := health.Run(context.Background(), health.Checks{"slow": slow},
			health.WithTimeout(10*time.Millisecond),
		)
		require.ErrorIs(t, err, health.ErrCheckFailed)
		require.Contains(t, resp.Checks["slow"].Error, health.ErrCheckTimeout.Error())
	})
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		health.LivenessHandler()(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String())
	})

	t.Run("json via Accept header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		health.LivenessHandler()(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	})
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		health.ReadinessHandler(health.Checks{"pages": ok})(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String())
		require.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})

	t.Run("unhealthy json", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{"pages": func(context.Context) error { return errors.New("broken front matter") }}
		w := httptest.NewRecorder()
		health.ReadinessHandler(checks)(w, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, "broken front matter", resp.Checks["pages"].Error)
	})

	t.Run("unhealthy plain text", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{"pages": func(context.Context) error { return errors.New("x") }}
		w := httptest.NewRecorder()
		health.ReadinessHandler(checks)(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		require.Equal(t, "Service Unavailable", w.Body.String())
	})
}
