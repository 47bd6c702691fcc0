package pages_test

import (
	"context"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homepage/pkg/pages"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"content/index.md": &fstest.MapFile{Data: []byte("---\ntitle: Home\nnav: true\norder: 0\n---\n# Hello\n")},
		"content/about.md": &fstest.MapFile{Data: []byte("---\ntitle: About & Contact\ndescription: <b>Who</b> runs this\nnav: true\norder: 10\n---\nAbout me.\n")},
		"content/rules.md": &fstest.MapFile{Data: []byte("---\nnav: true\norder: 10\n---\nBe nice.\n")},
		"content/privacy_policy.md": &fstest.MapFile{Data: []byte("One cookie.\n")},
		"content/Bad Name.md":       &fstest.MapFile{Data: []byte("ignored")},
	}
}

func TestLibrary_Page(t *testing.T) {
	t.Parallel()

	lib := pages.New(testFS(), pages.WithDir("content"))
	t.Cleanup(func() { _ = lib.Close() })
	ctx := context.Background()

	t.Run("renders page with front matter", func(t *testing.T) {
		t.Parallel()

		p, err := lib.Page(ctx, "about")
		require.NoError(t, err)
		require.Equal(t, "about", p.Slug)
		require.Equal(t, "About & Contact", p.Title)
		require.Equal(t, "Who runs this", p.Description)
		require.Contains(t, p.HTML, "<p>About me.</p>")
	})

	t.Run("title falls back to slug", func(t *testing.T) {
		t.Parallel()

		p, err := lib.Page(ctx, "privacy_policy")
		require.NoError(t, err)
		require.Equal(t, "Privacy Policy", p.Title)
	})

	t.Run("unknown page", func(t *testing.T) {
		t.Parallel()

		_, err := lib.Page(ctx, "forum")
		require.ErrorIs(t, err, pages.ErrPageNotFound)
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		t.Parallel()

		for _, slug := range []string{"../secret", "a/b", "", "About", ".hidden"} {
			_, err := lib.Page(ctx, slug)
			require.ErrorIs(t, err, pages.ErrInvalidSlug, slug)
		}
	})
}

func TestLibrary_Cache(t *testing.T) {
	t.Parallel()

	fsys := &countingFS{MapFS: testFS()}
	lib := pages.New(fsys, pages.WithDir("content"))
	t.Cleanup(func() { _ = lib.Close() })
	ctx := context.Background()

	_, err := lib.Page(ctx, "about")
	require.NoError(t, err)
	_, err = lib.Page(ctx, "about")
	require.NoError(t, err)
	require.Equal(t, int32(1), fsys.reads.Load())

	require.NoError(t, lib.Invalidate(ctx, "about"))
	_, err = lib.Page(ctx, "about")
	require.NoError(t, err)
	require.Equal(t, int32(2), fsys.reads.Load())
}

func TestLibrary_Nav(t *testing.T) {
	t.Parallel()

	lib := pages.New(testFS(), pages.WithDir("content"))
	t.Cleanup(func() { _ = lib.Close() })

	nav, err := lib.Nav()
	require.NoError(t, err)
	require.Equal(t, []pages.Entry{
		{Slug: "index", Title: "Home", Order: 0},
		{Slug: "about", Title: "About & Contact", Order: 10},
		{Slug: "rules", Title: "Rules", Order: 10},
	}, nav)
	require.Equal(t, "/", nav[0].URL())
	require.Equal(t, "/about", nav[1].URL())
}

func TestLibrary_Check(t *testing.T) {
	t.Parallel()

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()
		lib := pages.New(testFS(), pages.WithDir("content"))
		t.Cleanup(func() { _ = lib.Close() })
		require.NoError(t, lib.Check(context.Background()))
	})

	t.Run("missing index", func(t *testing.T) {
		t.Parallel()
		fsys := testFS()
		delete(fsys, "content/index.md")
		lib := pages.New(fsys, pages.WithDir("content"))
		t.Cleanup(func() { _ = lib.Close() })
		require.ErrorIs(t, lib.Check(context.Background()), pages.ErrPageNotFound)
	})

	t.Run("broken front matter", func(t *testing.T) {
		t.Parallel()
		fsys := testFS()
		fsys["content/broken.md"] = &fstest.MapFile{Data: []byte("---\ntitle: x\n")}
		lib := pages.New(fsys, pages.WithDir("content"))
		t.Cleanup(func() { _ = lib.Close() })
		require.ErrorIs(t, lib.Check(context.Background()), pages.ErrInvalidFrontmatter)
	})
}

func TestTitleFromSlug(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Privacy Policy", pages.TitleFromSlug("privacy_policy"))
	require.Equal(t, "Report Abuse", pages.TitleFromSlug("report-abuse"))
	require.Equal(t, "Help", pages.TitleFromSlug("help"))
}

// countingFS wraps MapFS and counts ReadFile calls.
type countingFS struct {
	fstest.MapFS
	reads atomic.Int32
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads.Add(1)
	return c.MapFS.ReadFile(name)
}
