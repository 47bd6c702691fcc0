// Package preference holds the visitor preferences persisted in cookies:
// the dark-mode theme and whether the privacy notice was dismissed.
//
// All functions operate on a cookie.Jar so they work the same for a live
// request (cookie.HTTPJar) and in tests (cookie.MemoryJar):
//
//	preference.SetDarkMode(jar, true)
//	preference.Stylesheet("/static/css", preference.DarkMode(jar)) // "/static/css/dark.css"
//
//	if preference.NoticeVisible(jar) {
//		// render the banner
//	}
//	preference.DismissNotice(jar)
package preference
