// Package assets embeds the site's stylesheets and markdown content.
package assets

import "embed"

// Static holds light.css and dark.css under static/.
//
//go:embed static
var Static embed.FS

// Content holds the markdown pages under content/.
//
//go:embed content/*.md
var Content embed.FS

// Directories inside the embedded filesystems.
const (
	StaticDir  = "static"
	ContentDir = "content"
)
