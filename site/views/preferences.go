package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/homepage/pkg/htmx"
	"github.com/dmitrymomot/homepage/pkg/preference"
)

// Element ids scripts and stylesheets rely on.
const (
	StylesheetID    = "sitestyle"
	DarkModeID      = "darkmode"
	PrivacyNoticeID = "privacy_notice"
	NoticeSlotID    = "notice_slot"
)

// Stylesheet renders the theme <link>. With oob it replaces the current
// stylesheet when returned alongside an htmx response.
func Stylesheet(base string, dark, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<link`)
		w.attr("id", StylesheetID)
		w.raw(` rel="stylesheet"`)
		w.attr("href", preference.Stylesheet(base, dark))
		if oob {
			w.attr("hx-swap-oob", htmx.SwapOOB)
		}
		w.raw(`>`)
		return w.err
	})
}

// DarkModeToggle renders the dark mode checkbox form. The hidden field after
// the checkbox makes unchecked submissions explicit.
func DarkModeToggle(dark bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<form id="darkmode_form" class="darkmode" method="post" action="/preferences/darkmode" hx-post="/preferences/darkmode" hx-trigger="change" hx-target="this"`)
		w.attr("hx-swap", htmx.SwapOuterHTML.String())
		w.raw(`>`)
		w.raw(`<label`)
		w.attr("for", DarkModeID)
		w.raw(`>Dark mode</label><input type="checkbox"`)
		w.attr("id", DarkModeID)
		w.attr("name", preference.DarkModeCookie)
		w.raw(` value="on"`)
		w.flag("checked", dark)
		w.raw(`><input type="hidden"`)
		w.attr("name", preference.DarkModeCookie)
		w.raw(` value="off"><noscript><button type="submit">Apply</button></noscript></form>`)
		return w.err
	})
}

// PrivacyNotice renders the dismissible notice. html must already be sanitized.
func PrivacyNotice(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<div`)
		w.attr("id", PrivacyNoticeID)
		w.raw(` class="privacy-notice" role="dialog"><p>`)
		w.component(templ.Raw(html))
		w.raw(`</p><form method="post" action="/preferences/privacy-notice/dismiss" hx-post="/preferences/privacy-notice/dismiss"`)
		w.swap(PrivacyNoticeID, htmx.SwapOuterHTML)
		w.raw(`><button type="submit">OK</button></form></div>`)
		return w.err
	})
}

// NoticeReset renders the footer button that brings the notice back.
func NoticeReset() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		w.raw(`<form class="notice-reset" method="post" action="/preferences/privacy-notice/reset" hx-post="/preferences/privacy-notice/reset"`)
		w.swap(NoticeSlotID, htmx.SwapInnerHTML)
		w.raw(`><button type="submit">Cookie notice</button></form>`)
		return w.err
	})
}
