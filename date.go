package dateadapter

import "time"

// Date is an immutable date-and-time value as produced by an Adapter. Every
// Date carries the locale it was constructed under, and invalid dates are a
// representable state rather than an error: check IsValid before trusting
// the underlying instant.
type Date struct {
	t      time.Time
	locale resolvedLocale
	valid  bool
}

// Time returns the underlying instant. The zero time is returned for
// invalid dates.
func (d *Date) Time() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.t
}

// IsValid reports whether the value represents a real calendar date.
func (d *Date) IsValid() bool {
	return d != nil && d.valid
}

// Locale returns the normalized locale identifier the value was built
// under, for example "en-US".
func (d *Date) Locale() string {
	if d == nil {
		return ""
	}
	return d.locale.id
}

// Equal reports whether both values are valid and represent the same
// instant, regardless of locale or zone anchoring.
func (d *Date) Equal(other *Date) bool {
	if !d.IsValid() || !other.IsValid() {
		return false
	}
	return d.t.Equal(other.t)
}

// String returns the ISO-8601 UTC rendering of the value, or "invalid date"
// for values that fail the validity predicate.
func (d *Date) String() string {
	if !d.IsValid() {
		return "invalid date"
	}
	return d.t.UTC().Format(time.RFC3339)
}

// daysIn returns the number of days in the month containing t.
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
