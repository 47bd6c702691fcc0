package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/homepage/pkg/htmx"
)

func TestIsHTMX(t *testing.T) {
	t.Parallel()

	t.Run("returns true when HX-Request header is true", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		assert.True(t, htmx.IsHTMX(req))
	})

	t.Run("returns false when HX-Request header is missing", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		assert.False(t, htmx.IsHTMX(req))
	})

	t.Run("handles case sensitivity", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "True")

		assert.False(t, htmx.IsHTMX(req), "should be case-sensitive")
	})
}

func TestIsPartial(t *testing.T) {
	t.Parallel()

	t.Run("plain htmx request wants a fragment", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/toolbox/caesar", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Target", "caesar-result")

		assert.True(t, htmx.IsPartial(req))
		assert.Equal(t, "caesar-result", htmx.Target(req))
	})

	t.Run("boosted request wants a full page", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/about", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Boosted", "true")

		assert.True(t, htmx.IsBoosted(req))
		assert.False(t, htmx.IsPartial(req))
	})

	t.Run("regular request", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/about", nil)
		assert.False(t, htmx.IsPartial(req))
	})
}
