// Package roman converts between Arabic integers and Roman numerals,
// including the non-standard Milhar extension.
//
// # Roman Numerals
//
// Standard numerals cover [1, 3999] using the symbols I V X L C D M and
// the subtractive pairs IV IX XL XC CD CM. Only the canonical greedy
// largest-value-first form of each integer is accepted; matching is
// case-insensitive.
//
//	v, err := roman.Decode("MCMXCIV") // 1994
//	s, err := roman.Encode(1994)      // "MCMXCIV"
//
// # Milhar Numerals
//
// A Milhar numeral is a sequence of Roman numeral groups joined by "_".
// Every group before the last is multiplied by 1000; the last contributes
// its value directly, extending the range to [1, 4002999].
//
//	v, err := roman.DecodeMilhar("IV_VIII") // 4*1000 + 8 = 4008
//
// There is no encoder back to Milhar form; only decoding is defined.
//
// # Errors
//
// Out-of-range integers return ErrOutOfRange. Malformed strings return a
// *SyntaxError wrapping ErrMalformed. The predicates IsRoman and IsMilhar
// report validity without an error value.
//
// All functions are pure and safe for concurrent use.
package roman
