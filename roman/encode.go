package roman

import (
	"fmt"
	"strings"
)

// Encode converts an integer in [1, Max] to its canonical Roman numeral,
// the unique greedy largest-value-first form. Zero, negative numbers and
// integers above Max return ErrOutOfRange.
func Encode(n int) (string, error) {
	if n < 1 || n > Max {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}

	var sb strings.Builder
	for _, e := range table {
		for n >= e.value {
			sb.WriteString(e.symbol)
			n -= e.value
		}
	}
	return sb.String(), nil
}
