package toolbox

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// EncodeBase64 encodes the UTF-8 bytes of text with the standard padded alphabet.
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 decodes text and returns NaN when it is not valid Base64.
// It never panics.
func DecodeBase64(text string) string {
	out, err := DecodeBase64Strict(text)
	if err != nil {
		return NaN
	}
	return out
}

// DecodeBase64Strict decodes text like a browser's atob: ASCII whitespace is
// ignored and trailing padding is optional. Decoded bytes that are not valid
// UTF-8 are returned one rune per byte.
func DecodeBase64Strict(text string) (string, error) {
	s := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, text)

	// atob accepts input with or without padding, but never more than two '='.
	trimmed := strings.TrimRight(s, "=")
	if len(s)-len(trimmed) > 2 {
		return "", ErrMalformedBase64
	}
	if padded := len(s) - len(trimmed); padded > 0 && len(s)%4 != 0 {
		return "", ErrMalformedBase64
	}

	raw, err := base64.RawStdEncoding.DecodeString(trimmed)
	if err != nil {
		return "", ErrMalformedBase64
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes), nil
}
