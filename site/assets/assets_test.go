package assets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homepage/pkg/pages"
	"github.com/dmitrymomot/homepage/site/assets"
)

func TestContentPages(t *testing.T) {
	t.Parallel()

	library := pages.New(assets.Content, pages.WithDir(assets.ContentDir))
	t.Cleanup(func() { _ = library.Close() })

	require.NoError(t, library.Check(context.Background()))

	tests := []struct {
		slug  string
		title string
	}{
		{"index", "Home"},
		{"about", "About"},
		{"contact", "Contact"},
		{"help", "Help"},
		{"forum", "Forum"},
		{"rules", "Rules"},
		{"guidelines", "Guidelines"},
		{"privacy_policy", "Privacy Policy"},
		{"customer_support", "Customer Support"},
		{"report_abuse", "Report Abuse"},
		{"feedback", "Feedback"},
		{"report_bug", "Report Bug"},
		{"search", "Search"},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			t.Parallel()

			page, err := library.Page(context.Background(), tt.slug)
			require.NoError(t, err)
			require.Equal(t, tt.title, page.Title)
			require.NotEmpty(t, page.HTML)
		})
	}

	t.Run("feedback renders the toolbox button", func(t *testing.T) {
		t.Parallel()

		page, err := library.Page(context.Background(), "feedback")
		require.NoError(t, err)
		require.Contains(t, page.HTML, `href="/toolbox"`)
	})
}

func TestStaticFiles(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"light.css", "dark.css"} {
		_, err := assets.Static.Open(assets.StaticDir + "/" + name)
		require.NoError(t, err, name)
	}
}
