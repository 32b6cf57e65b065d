package dateadapter

// NameStyle selects the width of locale name lookups.
type NameStyle string

const (
	NameStyleLong   NameStyle = "long"
	NameStyleShort  NameStyle = "short"
	NameStyleNarrow NameStyle = "narrow"
)

// localeData is the snapshot of locale-derived display data for the
// adapter's active locale. It is rebuilt wholesale by SetLocale; accessor
// methods only ever read a fully-formed snapshot.
type localeData struct {
	firstDayOfWeek int

	longMonths   []string
	shortMonths  []string
	narrowMonths []string

	// dates holds the localized label for day-of-month 1..31.
	dates []string

	longDaysOfWeek   []string
	shortDaysOfWeek  []string
	narrowDaysOfWeek []string
}
