package calendar

import "testing"

func TestISOToFixed(t *testing.T) {
	tests := []struct {
		year, week, day int
		want            int
	}{
		// 1 January 2024 was a Monday, so it opens ISO week 2024-W01.
		{2024, 1, 1, GregorianToFixed(2024, January, 1)},
		// 31 December 2024 was a Tuesday, landing in 2025-W01.
		{2025, 1, 2, GregorianToFixed(2024, December, 31)},
		// 1 January 2023 was a Sunday, the last day of 2022-W52.
		{2022, 52, 7, GregorianToFixed(2023, January, 1)},
	}

	for _, tt := range tests {
		if got := ISOToFixed(tt.year, tt.week, tt.day); got != tt.want {
			t.Errorf("ISOToFixed(%d, %d, %d) = %d, want %d",
				tt.year, tt.week, tt.day, got, tt.want)
		}
	}
}

func TestISOFromFixed(t *testing.T) {
	tests := []struct {
		date int
		want ISODate
	}{
		{GregorianToFixed(2024, January, 1), ISODate{2024, 1, 1}},
		{GregorianToFixed(2024, December, 31), ISODate{2025, 1, 2}},
		{GregorianToFixed(2023, January, 1), ISODate{2022, 52, 7}},
	}

	for _, tt := range tests {
		if got := ISOFromFixed(tt.date); got != tt.want {
			t.Errorf("ISOFromFixed(%d) = %+v, want %+v", tt.date, got, tt.want)
		}
	}
}

func TestISOLongYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2015, true},
		{2020, true},
		{2026, true},
		{2023, false},
		{2024, false},
	}

	for _, tt := range tests {
		if got := ISOLongYear(tt.year); got != tt.want {
			t.Errorf("ISOLongYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestISORoundTrip(t *testing.T) {
	for date := 600000; date <= 800000; date += 97 {
		iso := ISOFromFixed(date)
		if got := ISOToFixed(iso.Year, iso.Week, iso.Day); got != date {
			t.Fatalf("round trip %d -> %+v -> %d", date, iso, got)
		}
	}
}
