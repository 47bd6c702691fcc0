package pages

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/homepage/pkg/cache"
)

const pageExt = ".md"

// Library serves markdown pages from a file system.
// Rendered pages are cached; concurrent requests for an uncached page
// render it once.
type Library struct {
	fs       fs.FS
	renderer *Renderer
	cache    cache.Cache[Page]
	pages    *cache.Loader[Page]
	logger   *slog.Logger
	dir      string
	ttl      time.Duration
}

// Option configures a Library.
type Option func(*Library)

// WithDir sets the directory inside the file system holding the pages.
// Default: ".".
func WithDir(dir string) Option {
	return func(l *Library) {
		if dir != "" {
			l.dir = dir
		}
	}
}

// WithCache replaces the default in-memory page cache.
func WithCache(c cache.Cache[Page]) Option {
	return func(l *Library) {
		if c != nil {
			l.cache = c
		}
	}
}

// WithTTL sets how long a rendered page stays cached. Negative disables expiry.
// Default: 10 minutes.
func WithTTL(ttl time.Duration) Option {
	return func(l *Library) {
		l.ttl = ttl
	}
}

// WithLogger sets the logger for cache misses and evictions.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a page library over fsys.
func New(fsys fs.FS, opts ...Option) *Library {
	l := &Library{
		fs:       fsys,
		renderer: NewRenderer(),
		logger:   slog.New(slog.DiscardHandler),
		dir:      ".",
		ttl:      10 * time.Minute,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.cache == nil {
		mem := cache.NewMemory[Page](cache.WithMaxEntries(128))
		mem.SetEvictCallback(func(slug string, _ Page) {
			l.logger.Debug("page evicted from cache", slog.String("slug", slug))
		})
		l.cache = mem
	}
	l.pages = cache.NewLoader(l.cache)

	return l
}

// Page returns the rendered page for slug.
func (l *Library) Page(ctx context.Context, slug string) (Page, error) {
	if !ValidSlug(slug) {
		return Page{}, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return l.pages.GetOrSet(ctx, slug, func(context.Context) (Page, time.Duration, error) {
		l.logger.DebugContext(ctx, "rendering page", slog.String("slug", slug))
		p, err := l.render(slug)
		return p, l.ttl, err
	})
}

// Invalidate drops the cached rendering of slug.
func (l *Library) Invalidate(ctx context.Context, slug string) error {
	return l.pages.Forget(ctx, slug)
}

// Nav lists the pages flagged for navigation, ordered by order then title.
func (l *Library) Nav() ([]Entry, error) {
	sources, err := l.sources()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for slug, src := range sources {
		if !src.Meta.Nav {
			continue
		}
		p := newPage(slug, src.Meta, "")
		entries = append(entries, Entry{Slug: slug, Title: p.Title, Order: p.Order})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), strings.Compare(a.Title, b.Title))
	})
	return entries, nil
}

// Check parses every page's front matter. It backs the readiness probe.
func (l *Library) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sources, err := l.sources()
	if err != nil {
		return err
	}
	if _, ok := sources[IndexSlug]; !ok {
		return fmt.Errorf("%w: %s", ErrPageNotFound, IndexSlug)
	}
	return nil
}

// Close releases the page cache.
func (l *Library) Close() error {
	if sc, ok := l.cache.(interface{ Stats() cache.Stats }); ok {
		st := sc.Stats()
		l.logger.Info("page cache closed",
			slog.Int("entries", st.Entries),
			slog.Int("hits", st.Hits),
			slog.Int("misses", st.Misses),
			slog.Int("evictions", st.Evictions),
			slog.Int("expirations", st.Expirations),
		)
	}
	return l.cache.Close()
}

func (l *Library) render(slug string) (Page, error) {
	content, err := fs.ReadFile(l.fs, path.Join(l.dir, slug+pageExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
		}
		return Page{}, fmt.Errorf("read page %s: %w", slug, err)
	}

	src, err := ParseSource(content)
	if err != nil {
		return Page{}, fmt.Errorf("page %s: %w", slug, err)
	}

	body, err := l.renderer.Render(src.Body)
	if err != nil {
		return Page{}, fmt.Errorf("page %s: %w", slug, err)
	}

	return newPage(slug, src.Meta, body), nil
}

func (l *Library) sources() (map[string]*Source, error) {
	matches, err := fs.Glob(l.fs, path.Join(l.dir, "*"+pageExt))
	if err != nil {
		return nil, err
	}

	sources := make(map[string]*Source, len(matches))
	for _, name := range matches {
		slug := strings.TrimSuffix(path.Base(name), pageExt)
		if !ValidSlug(slug) {
			continue
		}
		content, err := fs.ReadFile(l.fs, name)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", slug, err)
		}
		src, err := ParseSource(content)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", slug, err)
		}
		sources[slug] = src
	}
	return sources, nil
}
