package toolbox

import (
	"fmt"
	"math/big"
	"strings"
)

// Radix bounds accepted by Shift.
const (
	MinRadix = 2
	MaxRadix = 36
)

// Default radices of a BaseShifter.
const (
	DefaultFromRadix = 10
	DefaultToRadix   = 16
)

// BaseShifter converts numerals between two radices.
// The zero value is not usable; build one with NewBaseShifter or a literal.
type BaseShifter struct {
	From int
	To   int
}

// NewBaseShifter returns a shifter converting base 10 to base 16.
func NewBaseShifter() BaseShifter {
	return BaseShifter{From: DefaultFromRadix, To: DefaultToRadix}
}

// Shift converts numeral from b.From to b.To.
// Returns NaN if the numeral or either radix is invalid.
func (b BaseShifter) Shift(numeral string) string {
	out, err := Shift(numeral, b.From, b.To)
	if err != nil {
		return NaN
	}
	return out
}

// Shift parses numeral as an integer in radix from and renders it in radix to.
// Surrounding whitespace and a leading sign are accepted. The output uses
// lower-case digits. Integers of any size are supported.
func Shift(numeral string, from, to int) (string, error) {
	if !validRadix(from) {
		return "", fmt.Errorf("%w: source %d", ErrInvalidRadix, from)
	}
	if !validRadix(to) {
		return "", fmt.Errorf("%w: target %d", ErrInvalidRadix, to)
	}

	s := strings.TrimSpace(numeral)
	if s == "" {
		return "", ErrInvalidNumeral
	}

	n, ok := new(big.Int).SetString(s, from)
	if !ok {
		return "", fmt.Errorf("%w: %q in base %d", ErrInvalidNumeral, s, from)
	}

	return n.Text(to), nil
}

func validRadix(r int) bool {
	return r >= MinRadix && r <= MaxRadix
}
