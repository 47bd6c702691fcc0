package handlers

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/homepage"
	"github.com/dmitrymomot/homepage/pkg/pages"
	"github.com/dmitrymomot/homepage/site/views"
)

// PageSource provides rendered content pages.
type PageSource interface {
	Page(ctx context.Context, slug string) (pages.Page, error)
}

// PagesHandler serves markdown content pages.
type PagesHandler struct {
	pages  PageSource
	layout *views.Layout
}

// NewPages creates a handler serving pages from src.
func NewPages(src PageSource, layout *views.Layout) *PagesHandler {
	return &PagesHandler{pages: src, layout: layout}
}

// Routes declares the content routes. Register it last: /{slug} matches any top-level path.
func (h *PagesHandler) Routes(r homepage.Router) {
	r.GET("/", h.index)
	r.GET("/{slug}", h.page)
}

func (h *PagesHandler) index(c homepage.Context) error {
	return h.render(c, pages.IndexSlug)
}

func (h *PagesHandler) page(c homepage.Context) error {
	slug := c.Param("slug")
	if slug == pages.IndexSlug {
		return c.Redirect(http.StatusMovedPermanently, "/")
	}
	return h.render(c, slug)
}

func (h *PagesHandler) render(c homepage.Context, slug string) error {
	p, err := h.pages.Page(c.Context(), slug)
	if err != nil {
		return err
	}

	content := views.PageContent(p)
	return c.RenderPartial(http.StatusOK, h.layout.Page(p.Title, content), content)
}
