package cookie

// Jar is a name-addressed cookie store.
// Get reports false for a missing cookie; absence is not an error.
type Jar interface {
	Get(name string) (string, bool)
	Set(name, value string, days int)
	Delete(name string)
}

// Create writes name=value to the jar. The optional days argument sets the
// lifetime; without it the cookie lasts for the browser session.
func Create(j Jar, name, value string, days ...int) {
	d := 0
	if len(days) > 0 {
		d = days[0]
	}
	j.Set(name, value, d)
}

// Read returns the value stored under name, or false if there is none.
func Read(j Jar, name string) (string, bool) {
	return j.Get(name)
}

// Erase removes name by writing an empty, already expired cookie.
func Erase(j Jar, name string) {
	j.Set(name, "", -1)
}
