package dateadapter

import (
	"testing"
	"time"
)

func TestISO8601RoundTrip(t *testing.T) {
	adapter := newTestAdapter(t, WithUTC(true))

	tests := []struct {
		name  string
		year  int
		month int
		day   int
	}{
		{name: "mid_month", year: 2023, month: 5, day: 15},
		{name: "leap_day", year: 2020, month: 1, day: 29},
		{name: "year_boundary", year: 1999, month: 11, day: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := adapter.CreateDate(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("CreateDate() error = %v", err)
			}

			serialized := adapter.ToISO8601(d)
			restored := adapter.Deserialize(serialized)

			if !adapter.IsValid(restored) {
				t.Fatalf("Deserialize(%q) should be valid", serialized)
			}
			if !restored.Equal(d) {
				t.Errorf("Deserialize(ToISO8601()) = %v; want %v", restored.Time(), d.Time())
			}
		})
	}
}

func TestDeserializeInputs(t *testing.T) {
	adapter := newTestAdapter(t, WithUTC(true))

	instant := time.Date(2023, time.June, 15, 8, 0, 0, 0, time.UTC)

	t.Run("time_value", func(t *testing.T) {
		d := adapter.Deserialize(instant)
		if !adapter.IsValid(d) || !d.Time().Equal(instant) {
			t.Errorf("Deserialize(time.Time) = %v; want %v", d, instant)
		}
	})

	t.Run("epoch_seconds", func(t *testing.T) {
		d := adapter.Deserialize(instant.Unix())
		if !adapter.IsValid(d) || !d.Time().Equal(instant) {
			t.Errorf("Deserialize(epoch) = %v; want %v", d, instant)
		}
	})

	t.Run("free_form_string", func(t *testing.T) {
		d := adapter.Deserialize("2023-06-15")
		if !adapter.IsValid(d) {
			t.Fatal("Deserialize(2023-06-15) should be valid")
		}
		if y, m, day := adapter.GetYear(d), adapter.GetMonth(d), adapter.GetDate(d); y != 2023 || m != 5 || day != 15 {
			t.Errorf("Deserialize() = %d-%d-%d; want 2023-5-15", y, m, day)
		}
	})

	t.Run("existing_date_is_cloned", func(t *testing.T) {
		d, err := adapter.CreateDate(2023, 5, 15)
		if err != nil {
			t.Fatalf("CreateDate() error = %v", err)
		}
		clone := adapter.Deserialize(d)
		if clone == d || !clone.Equal(d) {
			t.Error("Deserialize(*Date) should clone the value")
		}
	})

	t.Run("empty_string", func(t *testing.T) {
		if d := adapter.Deserialize(""); d != nil {
			t.Errorf("Deserialize(empty) = %v; want nil", d)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if d := adapter.Deserialize(nil); d != nil {
			t.Errorf("Deserialize(nil) = %v; want nil", d)
		}
	})

	t.Run("unparseable_string", func(t *testing.T) {
		d := adapter.Deserialize("definitely not a date")
		if d == nil || adapter.IsValid(d) {
			t.Errorf("Deserialize(garbage) = %v; want invalid value", d)
		}
	})

	t.Run("unrecognized_shape", func(t *testing.T) {
		d := adapter.Deserialize(map[string]int{"year": 2023})
		if d == nil || adapter.IsValid(d) {
			t.Errorf("Deserialize(map) = %v; want invalid value", d)
		}
	})
}

func TestToISO8601NormalizesToUTC(t *testing.T) {
	adapter := newTestAdapter(t, WithUTC(true))

	d, err := adapter.CreateDate(2023, 0, 15)
	if err != nil {
		t.Fatalf("CreateDate() error = %v", err)
	}

	if got, want := adapter.ToISO8601(d), "2023-01-15T00:00:00Z"; got != want {
		t.Errorf("ToISO8601() = %q; want %q", got, want)
	}

	if got := adapter.ToISO8601(adapter.Invalid()); got != "" {
		t.Errorf("ToISO8601(invalid) = %q; want empty", got)
	}
}
