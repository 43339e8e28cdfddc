package astro

import (
	"testing"

	"calendrica/internal/calendar"
)

func TestPersianNewYear(t *testing.T) {
	tests := []struct {
		year             int
		gy, gMonth, gDay int
	}{
		// The 2024 equinox fell before noon in Tehran, the 2025 one after.
		{1403, 2024, calendar.March, 20},
		{1404, 2025, calendar.March, 21},
		{1402, 2023, calendar.March, 21},
	}

	for _, tt := range tests {
		want := calendar.GregorianToFixed(tt.gy, tt.gMonth, tt.gDay)
		if got := PersianToFixed(tt.year, 1, 1); got != want {
			t.Errorf("PersianToFixed(%d, 1, 1) = %d, want %d (%d-%02d-%02d)",
				tt.year, got, want, tt.gy, tt.gMonth, tt.gDay)
		}
	}
}

func TestPersianNewYearOnOrBefore(t *testing.T) {
	date := calendar.GregorianToFixed(2024, calendar.June, 1)
	if got, want := PersianNewYearOnOrBefore(date), calendar.GregorianToFixed(2024, calendar.March, 20); got != want {
		t.Errorf("PersianNewYearOnOrBefore = %d, want %d", got, want)
	}

	// A date just before Nowruz reaches back to the prior year.
	date = calendar.GregorianToFixed(2024, calendar.March, 19)
	if got, want := PersianNewYearOnOrBefore(date), calendar.GregorianToFixed(2023, calendar.March, 21); got != want {
		t.Errorf("PersianNewYearOnOrBefore = %d, want %d", got, want)
	}
}

func TestPersianMonthStructure(t *testing.T) {
	// The first six months have 31 days, the next five have 30.
	newYear := PersianToFixed(1403, 1, 1)
	for month := 1; month <= 6; month++ {
		length := PersianToFixed(1403, month+1, 1) - PersianToFixed(1403, month, 1)
		if length != 31 {
			t.Errorf("month %d length = %d, want 31", month, length)
		}
	}
	for month := 7; month <= 11; month++ {
		length := PersianToFixed(1403, month+1, 1) - PersianToFixed(1403, month, 1)
		if length != 30 {
			t.Errorf("month %d length = %d, want 30", month, length)
		}
	}

	// 1403 is a leap year: 366 days to the next Nowruz.
	if length := PersianToFixed(1404, 1, 1) - newYear; length != 366 {
		t.Errorf("year 1403 length = %d, want 366", length)
	}
}

func TestPersianFromFixed(t *testing.T) {
	got := PersianFromFixed(calendar.GregorianToFixed(2024, calendar.March, 20))
	if want := (PersianDate{1403, 1, 1}); got != want {
		t.Errorf("PersianFromFixed = %+v, want %+v", got, want)
	}
}

func TestPersianRoundTrip(t *testing.T) {
	for date := calendar.GregorianToFixed(2020, calendar.January, 1); date <= calendar.GregorianToFixed(2026, calendar.January, 1); date += 53 {
		p := PersianFromFixed(date)
		if p.Year == 0 {
			t.Fatalf("PersianFromFixed(%d) produced year 0", date)
		}
		if got := PersianToFixed(p.Year, p.Month, p.Day); got != date {
			t.Fatalf("round trip %d -> %+v -> %d", date, p, got)
		}
	}
}
