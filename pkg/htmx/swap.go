package htmx

// SwapStrategy is a value for hx-swap, hx-swap-oob and the HX-Reswap header.
type SwapStrategy string

const (
	SwapInnerHTML SwapStrategy = "innerHTML"
	SwapOuterHTML SwapStrategy = "outerHTML"
	SwapDelete    SwapStrategy = "delete"
	SwapNone      SwapStrategy = "none"
)

// SwapOOB is the hx-swap-oob value that replaces the element carrying the same id.
const SwapOOB = "true"

func (s SwapStrategy) String() string {
	return string(s)
}

// Valid reports whether s is one of the strategies above.
func (s SwapStrategy) Valid() bool {
	switch s {
	case SwapInnerHTML, SwapOuterHTML, SwapDelete, SwapNone:
		return true
	}
	return false
}
