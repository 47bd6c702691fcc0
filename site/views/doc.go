// Package views holds the site's templ components.
//
// Components read the visitor's preferences from the render context, so the
// stylesheet link, the dark mode checkbox and the privacy notice match the
// cookies without any client-side script.
package views
