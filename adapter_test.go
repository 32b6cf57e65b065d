package dateadapter

import (
	"errors"
	"testing"
	"time"
)

func newTestAdapter(t *testing.T, opts ...Option) Adapter {
	t.Helper()

	adapter, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return adapter
}

func TestCreateDateComponents(t *testing.T) {
	adapter := newTestAdapter(t, WithUTC(true))

	tests := []struct {
		name  string
		year  int
		month int
		day   int
	}{
		{name: "first_of_january", year: 2017, month: 0, day: 1},
		{name: "leap_day", year: 2020, month: 1, day: 29},
		{name: "end_of_december", year: 2023, month: 11, day: 31},
		{name: "thirty_day_month", year: 2023, month: 3, day: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := adapter.CreateDate(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("CreateDate(%d, %d, %d) error = %v", tt.year, tt.month, tt.day, err)
			}

			if got := adapter.GetYear(d); got != tt.year {
				t.Errorf("GetYear() = %d; want %d", got, tt.year)
			}
			if got := adapter.GetMonth(d); got != tt.month {
				t.Errorf("GetMonth() = %d; want %d", got, tt.month)
			}
			if got := adapter.GetDate(d); got != tt.day {
				t.Errorf("GetDate() = %d; want %d", got, tt.day)
			}
		})
	}
}

func TestCreateDateRejectsInvalidInput(t *testing.T) {
	adapter := newTestAdapter(t)

	tests := []struct {
		name    string
		year    int
		month   int
		day     int
		wantErr error
	}{
		{name: "month_too_large", year: 2023, month: 13, day: 1, wantErr: ErrInvalidArgument},
		{name: "month_negative", year: 2023, month: -1, day: 1, wantErr: ErrInvalidArgument},
		{name: "day_zero", year: 2023, month: 0, day: 0, wantErr: ErrInvalidArgument},
		{name: "february_30th", year: 2023, month: 1, day: 30, wantErr: ErrInvalidDate},
		{name: "non_leap_february_29th", year: 2023, month: 1, day: 29, wantErr: ErrInvalidDate},
		{name: "april_31st", year: 2023, month: 3, day: 31, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := adapter.CreateDate(tt.year, tt.month, tt.day)
			if err == nil {
				t.Fatalf("CreateDate(%d, %d, %d) = %v; want error", tt.year, tt.month, tt.day, d)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateDate() error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetDayOfWeek(t *testing.T) {
	adapter := newTestAdapter(t, WithUTC(true))

	// 2017-01-01 was a Sunday.
	d, err := adapter.CreateDate(2017, 0, 1)
	if err != nil {
		t.Fatalf("CreateDate() error = %v", err)
	}

	if got := adapter.GetDayOfWeek(d); got != 0 {
		t.Errorf("GetDayOfWeek() = %d; want 0", got)
	}

	if got := adapter.GetDayOfWeek(adapter.AddCalendarDays(d, 3)); got != 3 {
		t.Errorf("GetDayOfWeek(+3 days) = %d; want 3", got)
	}
}

func TestGetNumDaysInMonth(t *testing.T) {
	adapter := newTestAdapter(t, WithUTC(true))

	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{name: "january", year: 2023, month: 0, want: 31},
		{name: "february", year: 2023, month: 1, want: 28},
		{name: "leap_february", year: 2020, month: 1, want: 29},
		{name: "april", year: 2023, month: 3, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := adapter.CreateDate(tt.year, tt.month, 1)
			if err != nil {
				t.Fatalf("CreateDate() error = %v", err)
			}
			if got := adapter.GetNumDaysInMonth(d); got != tt.want {
				t.Errorf("GetNumDaysInMonth() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestGetYearName(t *testing.T) {
	adapter := newTestAdapter(t, WithUTC(true))

	d, err := adapter.CreateDate(2023, 5, 15)
	if err != nil {
		t.Fatalf("CreateDate() error = %v", err)
	}

	if got := adapter.GetYearName(d); got != "2023" {
		t.Errorf("GetYearName() = %q; want %q", got, "2023")
	}
}

func TestTodayUsesConfiguredAnchor(t *testing.T) {
	utc := newTestAdapter(t, WithUTC(true))

	today := utc.Today()
	if !utc.IsValid(today) {
		t.Fatal("Today() should produce a valid date")
	}
	if _, offset := today.Time().Zone(); offset != 0 {
		t.Errorf("Today() UTC offset = %d; want 0", offset)
	}

	d, err := utc.CreateDate(2023, 4, 5)
	if err != nil {
		t.Fatalf("CreateDate() error = %v", err)
	}
	if _, offset := d.Time().Zone(); offset != 0 {
		t.Errorf("CreateDate() UTC offset = %d; want 0", offset)
	}
}

func TestCloneReappliesActiveLocale(t *testing.T) {
	adapter := newTestAdapter(t, WithUTC(true))

	d, err := adapter.CreateDate(2023, 2, 10)
	if err != nil {
		t.Fatalf("CreateDate() error = %v", err)
	}

	if err := adapter.SetLocale("fr-FR"); err != nil {
		t.Fatalf("SetLocale() error = %v", err)
	}

	clone := adapter.Clone(d)
	if clone == d {
		t.Fatal("Clone() should return a new value")
	}
	if !clone.Equal(d) {
		t.Error("Clone() should preserve the instant")
	}
	if got := clone.Locale(); got != "fr-FR" {
		t.Errorf("Clone() locale = %q; want %q", got, "fr-FR")
	}
	if got := d.Locale(); got != "en-US" {
		t.Errorf("source locale = %q; want %q", got, "en-US")
	}

	if adapter.Clone(nil) != nil {
		t.Error("Clone(nil) should return nil")
	}
}

func TestInvalidAndValidityPredicate(t *testing.T) {
	adapter := newTestAdapter(t)

	invalid := adapter.Invalid()
	if adapter.IsValid(invalid) {
		t.Error("Invalid() should fail the validity predicate")
	}
	if adapter.IsValid(nil) {
		t.Error("IsValid(nil) should be false")
	}

	d, err := adapter.CreateDate(2023, 0, 1)
	if err != nil {
		t.Fatalf("CreateDate() error = %v", err)
	}
	if !adapter.IsValid(d) {
		t.Error("CreateDate() result should be valid")
	}
}

func TestIsDateInstance(t *testing.T) {
	adapter := newTestAdapter(t)

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "pointer_date", value: adapter.Invalid(), want: true},
		{name: "value_date", value: Date{}, want: true},
		{name: "time_value", value: time.Now(), want: false},
		{name: "string", value: "2023-01-01", want: false},
		{name: "nil", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.IsDateInstance(tt.value); got != tt.want {
				t.Errorf("IsDateInstance(%T) = %v; want %v", tt.value, got, tt.want)
			}
		})
	}
}
