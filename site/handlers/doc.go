// Package handlers wires the site's routes: content pages, cookie
// preferences, the toolbox forms and its JSON API, and the error pages.
package handlers
