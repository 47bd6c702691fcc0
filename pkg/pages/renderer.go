package pages

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/dmitrymomot/homepage/pkg/sanitizer"
)

// Renderer converts markdown to sanitized HTML.
type Renderer struct {
	md goldmark.Markdown
}

// CodeStyle is the chroma style of fenced code blocks. It has a dark
// background so code reads the same in both themes.
const CodeStyle = "monokai"

// NewRenderer creates a renderer with GitHub flavoured markdown, heading
// anchors, syntax highlighting and the button extension.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(highlighting.WithStyle(CodeStyle)),
				Button,
			),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts markdown to HTML. Raw HTML in the source is dropped by
// goldmark and the output is passed through the page sanitizer.
func (r *Renderer) Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return sanitizer.SanitizePage(buf.String()), nil
}
