// Package pages renders the site's content pages from markdown files.
//
// Each page is a "<slug>.md" file with optional YAML front matter:
//
//	---
//	title: Privacy Policy
//	description: What this site stores about you.
//	nav: true
//	order: 40
//	---
//	This site stores exactly one cookie...
//
// Pages are converted with goldmark (GFM tables, autolinks, heading anchors),
// sanitized and cached in a [cache.Loader]. Besides standard markdown the
// renderer understands a button link:
//
//	[!button|Open the toolbox](/toolbox/)
//
// Usage:
//
//	lib := pages.New(content, pages.WithDir("content"), pages.WithLogger(log))
//	defer lib.Close()
//
//	page, err := lib.Page(ctx, "about")
//	if errors.Is(err, pages.ErrPageNotFound) {
//	    // 404
//	}
//
// A page without a title gets one derived from its slug with [TitleFromSlug].
package pages
