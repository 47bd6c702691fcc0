package preference

import "github.com/dmitrymomot/homepage/pkg/cookie"

// NoticeCookie is written once the visitor dismisses the privacy notice.
const NoticeCookie = "privacynotice"

// noticeDismissed is the stored value. Any value counts as dismissed,
// only absence shows the notice.
const noticeDismissed = "false"

// DefaultNoticeText is shown when no custom text is configured.
const DefaultNoticeText = "By using this website, you agree to be aware that this site stores a cookie for toggling dark mode."

// NoticeVisible reports whether the privacy notice should be shown.
func NoticeVisible(jar cookie.Jar) bool {
	_, ok := cookie.Read(jar, NoticeCookie)
	return !ok
}

// DismissNotice hides the notice for the rest of the browser session.
func DismissNotice(jar cookie.Jar) {
	cookie.Create(jar, NoticeCookie, noticeDismissed)
}

// ResetNotice makes the notice visible again.
func ResetNotice(jar cookie.Jar) {
	cookie.Erase(jar, NoticeCookie)
}
