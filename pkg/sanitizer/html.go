package sanitizer

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	noticePolicy *bluemonday.Policy
	pagePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Strips all HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// Inline formatting for short operator-provided snippets
		noticePolicy = bluemonday.NewPolicy()
		noticePolicy.AllowStandardURLs()
		noticePolicy.AllowElements("br", "strong", "b", "em", "i", "span", "code")
		noticePolicy.AllowAttrs("href").OnElements("a")
		noticePolicy.RequireNoFollowOnLinks(true)

		// Rendered markdown
		pagePolicy = bluemonday.UGCPolicy()
		pagePolicy.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
		pagePolicy.AllowAttrs("class").Matching(regexp.MustCompile(`^button$`)).OnElements("a")
		// Highlighted code carries inline colours
		pagePolicy.AllowStyles("color", "background-color", "font-weight", "font-style", "text-decoration").
			OnElements("pre", "span")
	})
}

// StripHTML removes every tag and returns plain text.
// Use for values that end up in attributes or meta tags.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeNotice keeps inline formatting and links only.
// Links get rel="nofollow".
func SanitizeNotice(s string) string {
	initPolicies()
	return noticePolicy.Sanitize(s)
}

// SanitizePage keeps the structure markdown renders to: headings, lists,
// tables, code, images and links. Highlighted code keeps its colours.
// Scripts, other styles, event handlers and javascript: URLs are removed.
func SanitizePage(s string) string {
	initPolicies()
	return pagePolicy.Sanitize(s)
}
