package cart

import (
	"strconv"
	"strings"
)

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// StepQuantity moves current by delta and clamps the result to
// [MinQuantity, MaxQuantity].
func StepQuantity(current, delta int) int {
	return min(max(current+delta, MinQuantity), MaxQuantity)
}

// ParseQuantity reads a user-entered quantity. Anything that is not an
// integer in [MinQuantity, MaxQuantity] yields ErrInvalidQuantity.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !validQuantity(n) {
		return 0, ErrInvalidQuantity
	}
	return n, nil
}

func validQuantity(n int) bool {
	return n >= MinQuantity && n <= MaxQuantity
}
