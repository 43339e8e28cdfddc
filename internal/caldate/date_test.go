package caldate

import (
	"math"
	"strings"
	"testing"

	"calendrica/internal/calendar"
)

func TestNewRejectsBadZone(t *testing.T) {
	if _, err := New(738886, 15); err == nil {
		t.Error("zone 15 accepted")
	}
	if _, err := New(738886, -13); err == nil {
		t.Error("zone -13 accepted")
	}
	if _, err := New(738886, 14); err != nil {
		t.Errorf("zone 14 rejected: %v", err)
	}
}

func TestFromGregorian(t *testing.T) {
	d, err := FromGregorian(2024, calendar.March, 31, calendar.TimeOfDay{Hour: 1, Minute: 30}, 3.5)
	if err != nil {
		t.Fatal(err)
	}

	if got := d.Fixed(); got != calendar.GregorianToFixed(2024, calendar.March, 31) {
		t.Errorf("Fixed = %d", got)
	}
	if got := d.ISO8601(); got != "2024-03-31T01:30:00.000+03:30" {
		t.Errorf("ISO8601 = %q", got)
	}
	if got := d.Weekday(); got != calendar.Sunday {
		t.Errorf("Weekday = %v, want Sunday", got)
	}
	if !d.LeapYear() {
		t.Error("2024 not reported as leap")
	}
	if got := d.DayOfYear(); got != 91 {
		t.Errorf("DayOfYear = %d, want 91", got)
	}
}

func TestNegativeZoneFormatting(t *testing.T) {
	d, err := FromGregorian(2024, calendar.January, 1, calendar.TimeOfDay{}, -5)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.ISO8601(); !strings.HasSuffix(got, "-05:00") {
		t.Errorf("ISO8601 = %q, want -05:00 suffix", got)
	}
}

func TestUniversal(t *testing.T) {
	d, err := FromGregorian(2024, calendar.January, 1, calendar.TimeOfDay{Hour: 2}, 2)
	if err != nil {
		t.Fatal(err)
	}
	// 02:00 at UTC+2 is midnight universal.
	if got, want := d.Universal(), float64(calendar.GregorianToFixed(2024, calendar.January, 1)); math.Abs(got-want) > 1e-9 {
		t.Errorf("Universal = %g, want %g", got, want)
	}
}

func TestAddDaysAndSub(t *testing.T) {
	d, err := FromGregorian(2024, calendar.February, 28, calendar.TimeOfDay{}, 0)
	if err != nil {
		t.Fatal(err)
	}

	next := d.AddDays(1)
	if g := next.Gregorian(); g != (calendar.GregorianDate{Year: 2024, Month: calendar.February, Day: 29}) {
		t.Errorf("day after 28 Feb 2024 = %+v", g)
	}

	if got := next.Sub(d); math.Abs(got-1) > 1e-9 {
		t.Errorf("Sub = %g, want 1", got)
	}
}

func TestFixedCarriesMidnightRounding(t *testing.T) {
	// A hair under midnight rounds to .000 of the next day.
	moment := 738886.0 + 86399.9999/86400
	d, err := New(moment, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Fixed(); got != 738887 {
		t.Errorf("Fixed = %d, want 738887", got)
	}
	if clock := d.Clock(); clock.Hour != 0 || clock.Minute != 0 || clock.Second != 0 {
		t.Errorf("Clock = %+v, want midnight", clock)
	}
}

func TestTimeBridges(t *testing.T) {
	tm := TimeFromFixed(calendar.GregorianToFixed(2024, calendar.January, 1))
	if got := tm.Format("2006-01-02"); got != "2024-01-01" {
		t.Errorf("TimeFromFixed = %s", got)
	}
	if got := FixedFromTime(tm); math.Abs(got-738886) > 1e-9 {
		t.Errorf("FixedFromTime = %g, want 738886", got)
	}
}
