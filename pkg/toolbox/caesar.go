package toolbox

// DefaultCaesarShift is the shift used by NewCaesar.
const DefaultCaesarShift = 3

const alphabetSize = 26

// Caesar is a Caesar cipher with a fixed shift.
type Caesar struct {
	Shift int
}

// NewCaesar returns a cipher with the default shift of 3.
func NewCaesar() Caesar {
	return Caesar{Shift: DefaultCaesarShift}
}

// Encode shifts every ASCII letter forward by c.Shift within its own case.
func (c Caesar) Encode(text string) string {
	return CaesarShift(text, c.Shift)
}

// Decode reverses Encode.
func (c Caesar) Decode(text string) string {
	return CaesarShift(text, -c.Shift)
}

// CaesarShift shifts every ASCII letter of text by shift positions, wrapping
// around the alphabet of the letter's case. Negative shifts move backwards.
// Digits, punctuation, whitespace and non-ASCII runes are left untouched.
func CaesarShift(text string, shift int) string {
	k := mod(shift, alphabetSize)
	if k == 0 {
		return text
	}

	out := []rune(text)
	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z':
			out[i] = 'a' + rune(mod(int(r-'a')+k, alphabetSize))
		case r >= 'A' && r <= 'Z':
			out[i] = 'A' + rune(mod(int(r-'A')+k, alphabetSize))
		}
	}
	return string(out)
}

// mod returns a non-negative remainder.
func mod(a, n int) int {
	return ((a % n) + n) % n
}
