package roman

// IsMRoman reports whether s is a valid Milhar numeral.
//
// Deprecated: Use IsMilhar.
func IsMRoman(s string) bool { return IsMilhar(s) }

// MRomanToInt converts a Milhar numeral to its integer value.
//
// Deprecated: Use DecodeMilhar.
func MRomanToInt(s string) (int, error) { return DecodeMilhar(s) }

// Roman converts an integer in [1, Max] to its canonical Roman numeral.
//
// Deprecated: Use Encode.
func Roman(n int) (string, error) { return Encode(n) }
