package dateadapter

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
)

// Adapter is the date-abstraction contract a calendar or date-picker host
// programs against. All date arithmetic, parsing, formatting, and locale
// lookups are delegated to the wrapped time stack; the adapter normalizes
// inputs and results into the shape the host expects.
//
// Accessors assume a valid date value; nil or invalid input yields
// zero-time components, never a panic.
type Adapter interface {
	// GetYear returns the calendar year of the value.
	GetYear(d *Date) int

	// GetMonth returns the zero-indexed month, 0=January through
	// 11=December.
	GetMonth(d *Date) int

	// GetDate returns the day of the month, starting at 1.
	GetDate(d *Date) int

	// GetDayOfWeek returns the day of the week, 0=Sunday through
	// 6=Saturday.
	GetDayOfWeek(d *Date) int

	// GetMonthNames returns the twelve month names for the active locale
	// in the requested style.
	GetMonthNames(style NameStyle) []string

	// GetDateNames returns the localized labels for days of the month
	// 1 through 31.
	GetDateNames() []string

	// GetDayOfWeekNames returns the seven weekday names for the active
	// locale in the requested style, indexed from Sunday.
	GetDayOfWeekNames(style NameStyle) []string

	// GetYearName returns the display label for the value's year.
	GetYearName(d *Date) string

	// GetFirstDayOfWeek returns the first day of the week for the active
	// locale, 0=Sunday through 6=Saturday.
	GetFirstDayOfWeek() int

	// GetNumDaysInMonth returns the number of days in the value's month.
	GetNumDaysInMonth(d *Date) int

	// Clone returns a copy of the value with the adapter's active locale
	// re-applied.
	Clone(d *Date) *Date

	// CreateDate builds a value from a year, a zero-indexed month, and a
	// day of the month. Components outside their ranges fail with
	// ErrInvalidArgument; components that do not form a real calendar
	// date fail with ErrInvalidDate. Day overflow is never normalized.
	CreateDate(year, month, day int) (*Date, error)

	// Today returns the current moment in the active locale.
	Today() *Date

	// Parse interprets user input against the supplied token pattern.
	// Nil and the empty string return nil; time.Time, *Date, and epoch
	// numbers are converted directly, ignoring the pattern; anything
	// unparseable yields an invalid value rather than an error.
	Parse(value any, parseFormat string) *Date

	// Format renders the value with the supplied token pattern, localized
	// to the active locale. Formatting an invalid value fails with
	// ErrInvalidDate.
	Format(d *Date, displayFormat string) (string, error)

	// AddCalendarYears returns a new value the given number of calendar
	// years away, clamping the day to the target month's length.
	AddCalendarYears(d *Date, years int) *Date

	// AddCalendarMonths returns a new value the given number of calendar
	// months away, clamping the day to the target month's length.
	AddCalendarMonths(d *Date, months int) *Date

	// AddCalendarDays returns a new value the given number of days away.
	AddCalendarDays(d *Date, days int) *Date

	// ToISO8601 returns the value's ISO-8601 UTC string representation.
	ToISO8601(d *Date) string

	// Deserialize accepts a *Date, time.Time, epoch number, or free-form
	// string and produces a value. Nil and the empty string return nil;
	// unrecognized shapes degrade to an invalid value, never an error.
	Deserialize(value any) *Date

	// IsDateInstance reports whether the value is one of this adapter's
	// date values, not merely date-like.
	IsDateInstance(value any) bool

	// IsValid reports whether the value represents a real calendar date.
	IsValid(d *Date) bool

	// Invalid returns the canonical invalid date value.
	Invalid() *Date

	// CompareDate orders two values by year, month, and day; the result
	// is negative, zero, or positive.
	CompareDate(first, second *Date) int

	// SameDate reports whether two values fall on the same calendar day.
	// Two nils agree, as do two invalid values.
	SameDate(first, second *Date) bool

	// ClampDate constrains a value between an optional minimum and
	// maximum, either of which may be nil.
	ClampDate(d, min, max *Date) *Date

	// GetValidDateOrNull returns the value when it is a valid date
	// instance and nil otherwise.
	GetValidDateOrNull(value any) *Date

	// SetLocale switches the active locale and rebuilds the cached
	// locale data wholesale.
	SetLocale(locale string) error

	// Locale returns the normalized identifier of the active locale.
	Locale() string
}

// dateAdapter implements Adapter on top of the standard time package, the
// wrapped locale name tables, and a free-form parser.
type dateAdapter struct {
	locale resolvedLocale
	names  *localeData
	useUTC bool
}

// New constructs an Adapter via supplied options.
func New(opts ...Option) (Adapter, error) {
	cfg := &config{locale: DefaultLocale}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	a := &dateAdapter{useUTC: cfg.useUTC}
	if err := a.SetLocale(cfg.locale); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *dateAdapter) SetLocale(locale string) error {
	resolved, err := resolveLocale(locale)
	if err != nil {
		return err
	}

	a.locale = resolved
	a.names = buildLocaleData(resolved)
	return nil
}

func (a *dateAdapter) Locale() string {
	return a.locale.id
}

func (a *dateAdapter) GetYear(d *Date) int {
	return d.Time().Year()
}

func (a *dateAdapter) GetMonth(d *Date) int {
	return int(d.Time().Month()) - 1
}

func (a *dateAdapter) GetDate(d *Date) int {
	return d.Time().Day()
}

func (a *dateAdapter) GetDayOfWeek(d *Date) int {
	return int(d.Time().Weekday())
}

func (a *dateAdapter) GetMonthNames(style NameStyle) []string {
	switch style {
	case NameStyleShort:
		return cloneNames(a.names.shortMonths)
	case NameStyleNarrow:
		return cloneNames(a.names.narrowMonths)
	default:
		return cloneNames(a.names.longMonths)
	}
}

func (a *dateAdapter) GetDateNames() []string {
	return cloneNames(a.names.dates)
}

func (a *dateAdapter) GetDayOfWeekNames(style NameStyle) []string {
	switch style {
	case NameStyleShort:
		return cloneNames(a.names.shortDaysOfWeek)
	case NameStyleNarrow:
		return cloneNames(a.names.narrowDaysOfWeek)
	default:
		return cloneNames(a.names.longDaysOfWeek)
	}
}

func (a *dateAdapter) GetYearName(d *Date) string {
	if !d.IsValid() {
		return ""
	}
	return monday.Format(d.t, "2006", a.locale.name)
}

func (a *dateAdapter) GetFirstDayOfWeek() int {
	return a.names.firstDayOfWeek
}

func (a *dateAdapter) GetNumDaysInMonth(d *Date) int {
	if !d.IsValid() {
		return 0
	}
	return daysIn(d.t)
}

func (a *dateAdapter) Clone(d *Date) *Date {
	if d == nil {
		return nil
	}
	return &Date{t: d.t, locale: a.locale, valid: d.valid}
}

func (a *dateAdapter) CreateDate(year, month, day int) (*Date, error) {
	if month < 0 || month > 11 {
		return nil, fmt.Errorf("%w: month must be between 0 and 11, got %d", ErrInvalidArgument, month)
	}
	if day < 1 {
		return nil, fmt.Errorf("%w: day of month must be at least 1, got %d", ErrInvalidArgument, day)
	}

	t := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, a.location())
	if t.Day() != day || int(t.Month())-1 != month {
		return nil, fmt.Errorf("%w: day %d does not exist in month %d", ErrInvalidDate, day, month)
	}

	return a.newDate(t), nil
}

func (a *dateAdapter) Today() *Date {
	return a.newDate(time.Now().In(a.location()))
}

func (a *dateAdapter) Parse(value any, parseFormat string) *Date {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		t, err := monday.ParseInLocation(layoutFor(parseFormat), v, a.location(), a.locale.name)
		if err != nil {
			return a.Invalid()
		}
		return a.newDate(t)
	default:
		return a.fromValue(value)
	}
}

func (a *dateAdapter) Format(d *Date, displayFormat string) (string, error) {
	if !a.IsValid(d) {
		return "", fmt.Errorf("%w: cannot format an invalid date value", ErrInvalidDate)
	}
	return monday.Format(d.t, layoutFor(displayFormat), a.locale.name), nil
}

func (a *dateAdapter) AddCalendarYears(d *Date, years int) *Date {
	return a.AddCalendarMonths(d, years*12)
}

func (a *dateAdapter) AddCalendarMonths(d *Date, months int) *Date {
	if !d.IsValid() {
		return a.Clone(d)
	}

	// Shift the first of the month, then clamp the day so adding a month
	// to January 31st lands on the last day of February instead of
	// rolling into March.
	first := time.Date(d.t.Year(), d.t.Month(), 1, 0, 0, 0, 0, d.t.Location())
	shifted := first.AddDate(0, months, 0)

	day := d.t.Day()
	if max := daysIn(shifted); day > max {
		day = max
	}

	hour, minute, sec := d.t.Clock()
	t := time.Date(shifted.Year(), shifted.Month(), day, hour, minute, sec, d.t.Nanosecond(), d.t.Location())
	return a.newDate(t)
}

func (a *dateAdapter) AddCalendarDays(d *Date, days int) *Date {
	if !d.IsValid() {
		return a.Clone(d)
	}
	return a.newDate(d.t.AddDate(0, 0, days))
}

func (a *dateAdapter) ToISO8601(d *Date) string {
	if !d.IsValid() {
		return ""
	}
	return d.t.UTC().Format(time.RFC3339)
}

func (a *dateAdapter) Deserialize(value any) *Date {
	switch v := value.(type) {
	case nil:
		return nil
	case *Date:
		if v == nil {
			return nil
		}
		if !v.valid {
			return a.Invalid()
		}
		clone := *v
		return &clone
	case Date:
		return a.Deserialize(&v)
	case string:
		if v == "" {
			return nil
		}
		t, err := dateparse.ParseIn(v, a.location())
		if err != nil {
			return a.Invalid()
		}
		return a.newDate(t)
	default:
		return a.fromValue(value)
	}
}

func (a *dateAdapter) IsDateInstance(value any) bool {
	switch value.(type) {
	case *Date, Date:
		return true
	default:
		return false
	}
}

func (a *dateAdapter) IsValid(d *Date) bool {
	return d.IsValid()
}

func (a *dateAdapter) Invalid() *Date {
	return &Date{locale: a.locale}
}

func (a *dateAdapter) CompareDate(first, second *Date) int {
	if diff := a.GetYear(first) - a.GetYear(second); diff != 0 {
		return diff
	}
	if diff := a.GetMonth(first) - a.GetMonth(second); diff != 0 {
		return diff
	}
	return a.GetDate(first) - a.GetDate(second)
}

func (a *dateAdapter) SameDate(first, second *Date) bool {
	if first != nil && second != nil {
		firstValid := a.IsValid(first)
		if firstValid != a.IsValid(second) {
			return false
		}
		return !firstValid || a.CompareDate(first, second) == 0
	}
	return first == second
}

func (a *dateAdapter) ClampDate(d, min, max *Date) *Date {
	if min != nil && a.CompareDate(d, min) < 0 {
		return min
	}
	if max != nil && a.CompareDate(d, max) > 0 {
		return max
	}
	return d
}

func (a *dateAdapter) GetValidDateOrNull(value any) *Date {
	if !a.IsDateInstance(value) {
		return nil
	}

	var d *Date
	switch v := value.(type) {
	case *Date:
		d = v
	case Date:
		d = &v
	}

	if a.IsValid(d) {
		return d
	}
	return nil
}

// newDate wraps an instant with the adapter's active locale applied.
func (a *dateAdapter) newDate(t time.Time) *Date {
	return &Date{t: t, locale: a.locale, valid: true}
}

// fromValue converts timestamp-like inputs shared by Parse and
// Deserialize.
func (a *dateAdapter) fromValue(value any) *Date {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return a.Invalid()
		}
		return a.newDate(v.In(a.location()))
	case *Date:
		if v == nil {
			return nil
		}
		return a.Clone(v)
	case Date:
		return a.Clone(&v)
	case int:
		return a.newDate(time.Unix(int64(v), 0).In(a.location()))
	case int64:
		return a.newDate(time.Unix(v, 0).In(a.location()))
	case float64:
		sec := int64(v)
		nsec := int64((v - float64(sec)) * float64(time.Second))
		return a.newDate(time.Unix(sec, nsec).In(a.location()))
	default:
		return a.Invalid()
	}
}

func (a *dateAdapter) location() *time.Location {
	if a.useUTC {
		return time.UTC
	}
	return time.Local
}

func cloneNames(names []string) []string {
	cloned := make([]string, len(names))
	copy(cloned, names)
	return cloned
}
