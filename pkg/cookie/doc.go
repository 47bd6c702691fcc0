// Package cookie provides name-addressed cookie storage.
//
// The Jar interface hides where cookies live so code that reads or writes
// preferences can run against a browser request or an in-memory store alike:
//
//	cookie.Create(jar, "darkmode", "true")
//	v, ok := cookie.Read(jar, "darkmode") // "true", true
//	cookie.Erase(jar, "darkmode")
//	_, ok = cookie.Read(jar, "darkmode")  // false
//
// Two implementations are provided. HTTPJar works on a single request and
// response: it reads the Cookie header and emits Set-Cookie headers built by
// a Manager. MemoryJar keeps cookies in process with document.cookie
// semantics and is what tests and the CLI use.
//
// Format and Lookup implement the wire syntax shared by both:
//
//	cookie.Format("darkmode", "true", 7, now)
//	// darkmode=true; expires=Thu, 08 Jan 2026 10:00:00 GMT; path=/
//
//	cookie.Lookup("a=1; darkmode=true", "darkmode") // "true", true
//
// Manager carries the attributes (path, domain, Secure, HttpOnly, SameSite)
// applied to every cookie written to a response.
package cookie
