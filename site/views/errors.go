package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorContent renders an error message.
func ErrorContent(code int, title, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<section id="error" class="error"><h1>`)
		w.text(strconv.Itoa(code))
		w.raw(` `)
		w.text(title)
		w.raw(`</h1><p>`)
		w.text(message)
		w.raw(`</p><p><a href="/">Back to the home page</a></p></section>`)
		return w.err
	})
}
