package cookie

import (
	"net/http"
	"strings"
	"time"
)

// DefaultPath is the path every cookie written through Format is scoped to.
const DefaultPath = "/"

// Format serializes a cookie assignment in the form a script writes to
// document.cookie: "name=value; expires=<GMT date>; path=/".
// The expires attribute is present only when days is non-zero and is
// computed as now + days*24h.
func Format(name, value string, days int, now time.Time) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)
	if days != 0 {
		expires := now.UTC().Add(time.Duration(days) * 24 * time.Hour)
		b.WriteString("; expires=")
		b.WriteString(expires.Format(http.TimeFormat))
	}
	b.WriteString("; path=")
	b.WriteString(DefaultPath)
	return b.String()
}

// Lookup scans a semicolon-delimited cookie string ("a=1; b=2") and returns
// the value of the first entry whose text starts with "name=".
// Leading spaces of each entry are ignored.
func Lookup(header, name string) (string, bool) {
	prefix := name + "="
	for entry := range strings.SplitSeq(header, ";") {
		entry = strings.TrimLeft(entry, " ")
		if value, ok := strings.CutPrefix(entry, prefix); ok {
			return value, true
		}
	}
	return "", false
}
