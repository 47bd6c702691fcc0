package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/homepage/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script injection",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: "Hello",
		},
		{
			name:     "strips all HTML tags",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: "Hello world",
		},
		{
			name:     "strips event handlers",
			input:    `<img src="x" onerror="alert('xss')">`,
			expected: "",
		},
		{
			name:     "strips javascript URLs",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: "click",
		},
		{
			name:     "strips data URLs",
			input:    `<a href="data:text/html,<script>alert('xss')</script>">click</a>`,
			expected: "click",
		},
		{
			name:     "strips CSS injection",
			input:    `<div style="background:url(javascript:alert('xss'))">content</div>`,
			expected: "content",
		},
		{
			name:     "strips nested tags",
			input:    `<div><p>nested <span>content</span></p></div>`,
			expected: "nested content",
		},
		{
			name:     "handles plain text",
			input:    "normal text without HTML",
			expected: "normal text without HTML",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "strips style tags",
			input:    `Hello <STYLE>.XSS{background-image:url("javascript:alert('XSS')");}</STYLE>World`,
			expected: "Hello World",
		},
		{
			name:     "strips iframe",
			input:    `<iframe src="https://evil.com"></iframe>content`,
			expected: "content",
		},
		{
			name:     "strips object tags",
			input:    `<object data="data:text/html,<script>alert(1)</script>"></object>text`,
			expected: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.StripHTML(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSanitizeNotice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "keeps plain notice text",
			input:    "By using this website, you agree to be aware that this site stores a cookie for toggling dark mode.",
			expected: "By using this website, you agree to be aware that this site stores a cookie for toggling dark mode.",
		},
		{
			name:     "keeps inline formatting",
			input:    `This site stores <strong>one</strong> cookie.`,
			expected: `This site stores <strong>one</strong> cookie.`,
		},
		{
			name:     "adds nofollow to links",
			input:    `Read the <a href="/privacy_policy">policy</a>.`,
			expected: `Read the <a href="/privacy_policy" rel="nofollow">policy</a>.`,
		},
		{
			name:     "drops block elements",
			input:    `<div><p>Notice</p></div>`,
			expected: "Notice",
		},
		{
			name:     "strips script",
			input:    `Notice<script>alert('xss')</script>`,
			expected: "Notice",
		},
		{
			name:     "strips javascript URLs",
			input:    `<a href="javascript:alert('xss')">click</a>`,
			expected: "click",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.SanitizeNotice(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSanitizePage(t *testing.T) {
	t.Parallel()

	t.Run("keeps markdown structure", func(t *testing.T) {
		t.Parallel()

		input := `<h2 id="rules">Rules</h2><ul><li>one</li></ul><table><tr><td>x</td></tr></table><pre><code class="language-go">func main() {}</code></pre>`
		result := sanitizer.SanitizePage(input)

		assert.Contains(t, result, `<h2 id="rules">Rules</h2>`)
		assert.Contains(t, result, `<ul><li>one</li></ul>`)
		assert.Contains(t, result, `<td>x</td>`)
		assert.Contains(t, result, `<code class="language-go">`)
	})

	t.Run("drops unknown classes", func(t *testing.T) {
		t.Parallel()

		result := sanitizer.SanitizePage(`<code class="evil">x</code>`)
		assert.Equal(t, `<code>x</code>`, result)
	})

	t.Run("strips script and handlers", func(t *testing.T) {
		t.Parallel()

		result := sanitizer.SanitizePage(`<p onclick="alert(1)">Hello</p><script>alert('xss')</script>`)
		assert.Equal(t, "<p>Hello</p>", result)
	})
}

func TestHTMLSanitizationXSSVectors(t *testing.T) {
	t.Parallel()

	// Common XSS attack vectors that should be neutralized
	vectors := []struct {
		name  string
		input string
	}{
		{
			name:  "script tag",
			input: `<script>alert('XSS')</script>`,
		},
		{
			name:  "script tag with src",
			input: `<script src="https://evil.com/xss.js"></script>`,
		},
		{
			name:  "img onerror",
			input: `<img src="x" onerror="alert('XSS')">`,
		},
		{
			name:  "img onload",
			input: `<img src="valid.jpg" onload="alert('XSS')">`,
		},
		{
			name:  "body onload",
			input: `<body onload="alert('XSS')">`,
		},
		{
			name:  "svg onload",
			input: `<svg onload="alert('XSS')">`,
		},
		{
			name:  "javascript protocol",
			input: `<a href="javascript:alert('XSS')">click</a>`,
		},
		{
			name:  "javascript protocol case variation",
			input: `<a href="JaVaScRiPt:alert('XSS')">click</a>`,
		},
		{
			name:  "data URL",
			input: `<a href="data:text/html;base64,PHNjcmlwdD5hbGVydCgnWFNTJyk8L3NjcmlwdD4=">click</a>`,
		},
		{
			name:  "vbscript protocol",
			input: `<a href="vbscript:msgbox('XSS')">click</a>`,
		},
		{
			name:  "style expression",
			input: `<div style="width:expression(alert('XSS'))">`,
		},
		{
			name:  "style background javascript",
			input: `<div style="background:url(javascript:alert('XSS'))">`,
		},
		{
			name:  "meta refresh",
			input: `<meta http-equiv="refresh" content="0;url=javascript:alert('XSS')">`,
		},
		{
			name:  "iframe",
			input: `<iframe src="javascript:alert('XSS')"></iframe>`,
		},
		{
			name:  "object tag",
			input: `<object data="data:text/html;base64,PHNjcmlwdD5hbGVydCgnWFNTJyk8L3NjcmlwdD4="></object>`,
		},
		{
			name:  "embed tag",
			input: `<embed src="javascript:alert('XSS')">`,
		},
		{
			name:  "form action",
			input: `<form action="javascript:alert('XSS')"><input type="submit"></form>`,
		},
		{
			name:  "input onfocus",
			input: `<input onfocus="alert('XSS')" autofocus>`,
		},
		{
			name:  "marquee onstart",
			input: `<marquee onstart="alert('XSS')">`,
		},
		{
			name:  "video onerror",
			input: `<video><source onerror="alert('XSS')">`,
		},
		{
			name:  "details ontoggle",
			input: `<details open ontoggle="alert('XSS')">`,
		},
		{
			name:  "math tag",
			input: `<math><mtext><table><mglyph><style><img src=x onerror="alert('XSS')">`,
		},
	}

	for _, v := range vectors {
		t.Run("StripHTML_"+v.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.StripHTML(v.input)
			// Should not contain any script or dangerous content
			assert.NotContains(t, result, "<script")
			assert.NotContains(t, result, "javascript:")
			assert.NotContains(t, result, "onerror=")
			assert.NotContains(t, result, "onload=")
			assert.NotContains(t, result, "onclick=")
			assert.NotContains(t, result, "alert(")
		})

		t.Run("SanitizeNotice_"+v.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.SanitizeNotice(v.input)
			assert.NotContains(t, result, "<script")
			assert.NotContains(t, result, "javascript:")
			assert.NotContains(t, result, "onerror=")
			assert.NotContains(t, result, "onload=")
			assert.NotContains(t, result, "onclick=")
			assert.NotContains(t, result, "alert(")
		})

		t.Run("SanitizePage_"+v.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.SanitizePage(v.input)
			// Should not contain any script or dangerous content
			assert.NotContains(t, result, "<script")
			assert.NotContains(t, result, "javascript:")
			assert.NotContains(t, result, "onerror=")
			assert.NotContains(t, result, "onload=")
			assert.NotContains(t, result, "onclick=")
			assert.NotContains(t, result, "alert(")
		})
	}
}
