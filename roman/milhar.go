package roman

import (
	"fmt"
	"strings"
)

// Separator joins the groups of a Milhar numeral. Every group before the
// last one is multiplied by 1000.
const Separator = "_"

// IsMilhar reports whether s is a valid Milhar numeral: one or more Roman
// numeral groups joined by Separator. A plain Roman numeral is a Milhar
// numeral with a single group. Empty groups, including those produced by
// a leading, trailing or doubled separator, invalidate the whole string.
func IsMilhar(s string) bool {
	for _, group := range strings.Split(s, Separator) {
		if !IsRoman(group) {
			return false
		}
	}
	return true
}

// DecodeMilhar converts a Milhar numeral to its integer value. The last
// group contributes its value directly; every preceding group contributes
// its value times 1000. A single multiplier group reaches 4002999
// ("MMMCMXCIX_MMMCMXCIX"); additional multiplier groups keep summing with
// no upper clamp. There is no encoder back to Milhar form.
func DecodeMilhar(s string) (int, error) {
	groups := strings.Split(s, Separator)

	total := 0
	for i, group := range groups {
		v, err := Decode(group)
		if err != nil {
			return 0, &SyntaxError{
				Input:  s,
				Reason: fmt.Sprintf("group %d is not a valid numeral", i+1),
			}
		}
		if i < len(groups)-1 {
			v *= 1000
		}
		total += v
	}
	return total, nil
}
