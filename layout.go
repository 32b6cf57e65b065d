package dateadapter

import "strings"

// tokenReplacer rewrites date-picker format tokens into Go reference
// layouts. Longer tokens are listed before their prefixes so "MMMM" never
// decays into two "MM" matches.
var tokenReplacer = strings.NewReplacer(
	"LL", "January 2, 2006",
	"YYYY", "2006",
	"YY", "06",
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"dddd", "Monday",
	"ddd", "Mon",
	"HH", "15",
	"hh", "03",
	"h", "3",
	"mm", "04",
	"ss", "05",
	"A", "PM",
	"a", "pm",
	"ZZ", "-0700",
	"Z", "-07:00",
)

// layoutFor translates a token pattern such as "MM/DD/YYYY" into the Go
// layout the wrapped time stack understands.
func layoutFor(format string) string {
	return tokenReplacer.Replace(format)
}
