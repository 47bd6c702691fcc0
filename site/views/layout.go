package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/homepage/pkg/pages"
	"github.com/dmitrymomot/homepage/pkg/preference"
	"github.com/dmitrymomot/homepage/pkg/sanitizer"
)

// DefaultScript is the htmx build the layout loads.
const DefaultScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Layout renders the page chrome around content.
// The theme and privacy notice come from the preferences in the render context.
type Layout struct {
	site       string
	staticBase string
	script     string
	notice     string
	nav        []pages.Entry
}

// LayoutOption configures a Layout.
type LayoutOption func(*Layout)

// WithSiteTitle sets the site name shown in the header and the title suffix.
func WithSiteTitle(title string) LayoutOption {
	return func(l *Layout) {
		l.site = title
	}
}

// WithStaticBase sets the URL prefix of light.css and dark.css.
func WithStaticBase(base string) LayoutOption {
	return func(l *Layout) {
		l.staticBase = base
	}
}

// WithScript sets the htmx script URL.
func WithScript(src string) LayoutOption {
	return func(l *Layout) {
		if src != "" {
			l.script = src
		}
	}
}

// WithNotice sets the privacy notice text. It is sanitized; links and inline formatting survive.
func WithNotice(html string) LayoutOption {
	return func(l *Layout) {
		l.notice = sanitizer.SanitizeNotice(html)
	}
}

// WithNav sets the header navigation.
func WithNav(entries []pages.Entry) LayoutOption {
	return func(l *Layout) {
		l.nav = entries
	}
}

// NewLayout creates a layout.
func NewLayout(opts ...LayoutOption) *Layout {
	l := &Layout{
		site:       "Homepage",
		staticBase: "/static",
		script:     DefaultScript,
		notice:     sanitizer.SanitizeNotice(preference.DefaultNoticeText),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// StaticBase returns the stylesheet prefix.
func (l *Layout) StaticBase() string { return l.staticBase }

// Notice returns the privacy notice component.
func (l *Layout) Notice() templ.Component {
	return PrivacyNotice(l.notice)
}

// Page wraps content in the full HTML document.
func (l *Layout) Page(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		prefs := preference.FromContext(ctx)
		w := newWriter(ctx, out)

		fullTitle := l.site
		if title != "" && title != l.site {
			fullTitle = title + " · " + l.site
		}

		w.raw(`<!DOCTYPE html><html lang="en"`)
		w.attr("data-theme", prefs.Theme.String())
		w.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		w.text(fullTitle)
		w.raw(`</title>`)
		w.component(Stylesheet(l.staticBase, prefs.Dark(), false))
		w.raw(`<script`)
		w.attr("src", l.script)
		w.raw(` defer></script></head><body hx-boost="true"><header class="site-header"><a class="brand" href="/">`)
		w.text(l.site)
		w.raw(`</a><nav>`)
		for _, e := range l.nav {
			w.raw(`<a`)
			w.attr("href", e.URL())
			w.raw(`>`)
			w.text(e.Title)
			w.raw(`</a>`)
		}
		w.raw(`<a href="/toolbox">Toolbox</a></nav>`)
		w.component(DarkModeToggle(prefs.Dark()))
		w.raw(`</header><main id="content">`)
		w.component(content)
		w.raw(`</main><div id="notice_slot">`)
		if prefs.NoticeVisible {
			w.component(l.Notice())
		}
		w.raw(`</div><footer class="site-footer"><a href="/privacy_policy">Privacy</a>`)
		w.component(NoticeReset())
		w.raw(`</footer></body></html>`)
		return w.err
	})
}
