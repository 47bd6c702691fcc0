package pages

import "errors"

var (
	// ErrPageNotFound indicates there is no page for the slug.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidSlug indicates the slug contains characters outside [a-z0-9_-].
	ErrInvalidSlug = errors.New("invalid page slug")

	// ErrInvalidFrontmatter indicates invalid YAML front matter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrRenderFailed indicates markdown conversion failed.
	ErrRenderFailed = errors.New("failed to render page")
)
