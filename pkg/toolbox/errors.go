package toolbox

import "errors"

// NaN is the marker returned by the lenient transforms when the input cannot
// produce a meaningful result.
const NaN = "NaN"

// Sentinel errors for the strict transforms.
var (
	// ErrInvalidRadix is returned when a radix is outside 2..36.
	ErrInvalidRadix = errors.New("toolbox: radix must be between 2 and 36")

	// ErrInvalidNumeral is returned when the input is not an integer in the source radix.
	ErrInvalidNumeral = errors.New("toolbox: invalid numeral")

	// ErrMalformedBase64 is returned when the input is not valid Base64.
	ErrMalformedBase64 = errors.New("toolbox: malformed base64 input")
)
