package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/homepage/pkg/pages"
)

// PageContent renders a content page. p.HTML is sanitized by the page library.
func PageContent(p pages.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<article class="page"`)
		w.attr("id", "page-"+p.Slug)
		w.raw(`><h1>`)
		w.text(p.Title)
		w.raw(`</h1>`)
		w.component(templ.Raw(p.HTML))
		w.raw(`</article>`)
		return w.err
	})
}
