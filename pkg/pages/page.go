package pages

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/homepage/pkg/sanitizer"
)

// IndexSlug is the slug served at "/".
const IndexSlug = "index"

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Page is a rendered content page.
type Page struct {
	Slug        string
	Title       string
	Description string
	HTML        string
	Order       int
	Nav         bool
}

// Entry is a navigation link.
type Entry struct {
	Slug  string
	Title string
	Order int
}

// URL returns the path the page is served at.
func (e Entry) URL() string {
	if e.Slug == IndexSlug {
		return "/"
	}
	return "/" + e.Slug
}

// ValidSlug reports whether slug can name a page file.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// TitleFromSlug derives a display title: "privacy_policy" -> "Privacy Policy".
func TitleFromSlug(slug string) string {
	words := strings.NewReplacer("_", " ", "-", " ").Replace(slug)
	return cases.Title(language.English).String(words)
}

// plainText strips tags and decodes the entities bluemonday leaves behind,
// templates escape the result again.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.StripHTML(s)))
}

func newPage(slug string, meta Meta, body string) Page {
	title := plainText(meta.Title)
	if title == "" {
		title = TitleFromSlug(slug)
	}
	return Page{
		Slug:        slug,
		Title:       title,
		Description: plainText(meta.Description),
		HTML:        body,
		Order:       meta.Order,
		Nav:         meta.Nav,
	}
}
