package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/homepage/pkg/htmx"
)

// htmlWriter writes markup and keeps the first error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (w *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

// text writes s escaped.
func (w *htmlWriter) text(s string) {
	w.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (w *htmlWriter) attr(name, value string) {
	w.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// flag writes a boolean attribute when on.
func (w *htmlWriter) flag(name string, on bool) {
	if on {
		w.raw(" ", name)
	}
}

// swap writes the hx-target and hx-swap pair for an element id.
func (w *htmlWriter) swap(id string, s htmx.SwapStrategy) {
	w.attr("hx-target", "#"+id)
	w.attr("hx-swap", s.String())
}

func (w *htmlWriter) component(c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}
