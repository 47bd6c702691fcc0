package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homepage/internal"
	"github.com/dmitrymomot/homepage/middlewares"
	"github.com/dmitrymomot/homepage/pkg/preference"
)

func TestPreferences(t *testing.T) {
	t.Parallel()

	var seen preference.Preferences
	capture := func(c internal.Context) error {
		p, ok := preference.Lookup(c.Context())
		require.True(t, ok)
		seen = p
		require.Equal(t, p, c.Preferences())
		return c.NoContent(http.StatusNoContent)
	}

	t.Run("defaults without cookies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w, got := serveWith(req, capture, middlewares.Preferences())

		require.NoError(t, got.err)
		require.Equal(t, preference.ThemeLight, seen.Theme)
		require.True(t, seen.NoticeVisible)
		require.Contains(t, w.Header().Values("Vary"), "Cookie")
	})

	t.Run("reads darkmode and notice cookies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", "darkmode=true; privacynotice=false")
		_, got := serveWith(req, capture, middlewares.Preferences())

		require.NoError(t, got.err)
		require.Equal(t, preference.ThemeDark, seen.Theme)
		require.True(t, seen.Dark())
		require.False(t, seen.NoticeVisible)
	})
}
