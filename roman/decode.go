package roman

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel failure modes. Every failing operation wraps one of these, so
// callers can test with errors.Is.
var (
	// ErrOutOfRange reports an integer outside [1, Max].
	ErrOutOfRange = errors.New("roman: integer out of range")

	// ErrMalformed reports a string that is not a canonical numeral.
	ErrMalformed = errors.New("roman: malformed numeral")
)

// SyntaxError describes why a string failed to decode.
type SyntaxError struct {
	Input  string // the original input, casing preserved
	Reason string // the rule that was violated
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("roman: %q: %s", e.Input, e.Reason)
}

// Unwrap makes every SyntaxError match ErrMalformed under errors.Is.
func (e *SyntaxError) Unwrap() error { return ErrMalformed }

// Decode converts a Roman numeral, in any casing, to its integer value.
// It returns a *SyntaxError unless the input is the canonical greedy form
// of an integer in [1, Max].
func Decode(s string) (int, error) {
	up := strings.ToUpper(s)
	if reason := checkSyntax(up); reason != "" {
		return 0, &SyntaxError{Input: s, Reason: reason}
	}

	total := 0
	prev := 0 // value of the previously matched prefix; 0 means none yet
	for rest := up; rest != ""; {
		matched := false
		for _, e := range table {
			if !strings.HasPrefix(rest, e.symbol) {
				continue
			}
			if prev != 0 && e.value > prev {
				return 0, &SyntaxError{Input: s, Reason: "symbols out of descending order"}
			}
			total += e.value
			prev = e.value
			rest = rest[len(e.symbol):]
			matched = true
			break
		}
		if !matched {
			return 0, &SyntaxError{Input: s, Reason: "unrecognized symbol sequence"}
		}
	}

	// The syntax rules alone admit a few non-canonical orderings, such as
	// CMD or XCL. Re-encoding the total is the final authority.
	if canonical, err := Encode(total); err != nil || canonical != up {
		return 0, &SyntaxError{Input: s, Reason: "not in canonical form"}
	}
	return total, nil
}
