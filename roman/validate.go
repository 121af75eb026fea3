package roman

import "regexp"

// Syntax rules, compiled once. charset must pass before the others run so
// they can assume upper-case numeral symbols only.
var (
	charset = regexp.MustCompile(`^[IVXLCDM]+$`)

	// I, X, C and M repeat at most three times in a row; V, L and D
	// never repeat.
	overRepeat = regexp.MustCompile(`IIII|XXXX|CCCC|MMMM|VV|LL|DD`)

	// A subtractive pair followed by its own subtracted symbol, plus the
	// low-high-low and high-low-high shuffles of each adjacent symbol
	// pair in ascending order.
	interleave = regexp.MustCompile(
		`IXI|XCX|CMC|` +
			`IVI|VIV|VXV|XVX|XLX|LXL|LCL|CLC|CDC|DCD|DMD|MDM`)
)

// checkSyntax returns the first syntax rule an upper-cased candidate
// violates, or "" if none do.
func checkSyntax(s string) string {
	switch {
	case s == "":
		return "empty numeral"
	case !charset.MatchString(s):
		return "character outside IVXLCDM"
	case overRepeat.MatchString(s):
		return "symbol repeated beyond its limit"
	case interleave.MatchString(s):
		return "illegal symbol interleaving"
	}
	return ""
}

// IsRoman reports whether s is a valid canonical Roman numeral, in any
// casing. Only the unique greedy largest-value-first form of each integer
// in [1, Max] is accepted, so IsRoman and Decode never disagree.
func IsRoman(s string) bool {
	_, err := Decode(s)
	return err == nil
}
