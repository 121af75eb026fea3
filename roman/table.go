package roman

// Max is the largest integer representable as a plain Roman numeral.
const Max = 3999

// entry pairs a numeral symbol with its integer value.
type entry struct {
	symbol string
	value  int
}

// table lists all thirteen numeral symbols in descending value order.
// Each complex (subtractive) pair precedes the simple symbols of lower
// value, so prefix matching consumes IX before I, IV before I, and so on.
// Immutable after init; safe for concurrent reads.
var table = []entry{
	{"M", 1000}, {"CM", 900},
	{"D", 500}, {"CD", 400},
	{"C", 100}, {"XC", 90},
	{"L", 50}, {"XL", 40},
	{"X", 10}, {"IX", 9},
	{"V", 5}, {"IV", 4},
	{"I", 1},
}
