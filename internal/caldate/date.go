// Package caldate wraps the conversion engine in a small date object: a
// fixed-date moment paired with a UTC offset, with formatting and
// calendar-agnostic queries. It also hosts the conversion registry the
// service layer and the fixture generator drive.
package caldate

import (
	"fmt"
	"time"

	"calendrica/internal/calendar"
)

// unixEpoch is the fixed date of 1 January 1970.
const unixEpoch = 719163

// Date bundles a moment (fixed date plus time-of-day fraction, reckoned
// in its own zone's standard time) with that zone's offset in hours.
type Date struct {
	moment float64
	zone   float64
}

// New builds a Date from a moment and a zone offset. Offsets outside
// [-12, 14] are rejected.
func New(moment, zone float64) (Date, error) {
	if zone < -12 || zone > 14 {
		return Date{}, fmt.Errorf("zone offset %g out of range [-12, 14]", zone)
	}
	return Date{moment: moment, zone: zone}, nil
}

// FromGregorian builds a Date from Gregorian components and a clock time.
func FromGregorian(year, month, day int, clock calendar.TimeOfDay, zone float64) (Date, error) {
	fixed := calendar.GregorianToFixed(year, month, day)
	return New(calendar.MomentFromTime(fixed, clock), zone)
}

// Now returns the current instant as a Date in the given zone.
func Now(zone float64) (Date, error) {
	secs := float64(time.Now().UnixMilli()) / 1000
	return New(unixEpoch+secs/86400+zone/24, zone)
}

// Moment returns the zone-standard moment.
func (d Date) Moment() float64 { return d.moment }

// Zone returns the UTC offset in hours.
func (d Date) Zone() float64 { return d.zone }

// Universal returns the moment converted to universal time.
func (d Date) Universal() float64 { return d.moment - d.zone/24 }

// Fixed returns the fixed date, accounting for the millisecond-rounding
// carry of the clock decomposition.
func (d Date) Fixed() int {
	carry, _ := calendar.TimeFromMoment(d.moment)
	return calendar.Fixed(d.moment) + carry
}

// Clock returns the time of day.
func (d Date) Clock() calendar.TimeOfDay {
	_, clock := calendar.TimeFromMoment(d.moment)
	return clock
}

// Weekday returns the day of week.
func (d Date) Weekday() calendar.Weekday {
	return calendar.WeekdayFromFixed(d.Fixed())
}

// Gregorian returns the Gregorian date.
func (d Date) Gregorian() calendar.GregorianDate {
	return calendar.GregorianFromFixed(d.Fixed())
}

// LeapYear reports whether the Gregorian year is a leap year.
func (d Date) LeapYear() bool {
	return calendar.GregorianLeapYear(d.Gregorian().Year)
}

// DayOfYear returns the ordinal day within the Gregorian year.
func (d Date) DayOfYear() int {
	return calendar.GregorianDayOfYear(d.Fixed())
}

// DaysRemaining returns the days left in the Gregorian year.
func (d Date) DaysRemaining() int {
	return calendar.GregorianDaysRemaining(d.Fixed())
}

// AddDays returns the Date shifted by n days (fractional allowed).
func (d Date) AddDays(n float64) Date {
	return Date{moment: d.moment + n, zone: d.zone}
}

// Sub returns the elapsed days from other to d, compared in universal
// time.
func (d Date) Sub(other Date) float64 {
	return d.Universal() - other.Universal()
}

// ISO8601 formats the Date as an extended ISO-8601 timestamp with
// millisecond precision and a numeric offset, e.g.
// "2024-03-31T01:30:00.000+03:30".
func (d Date) ISO8601() string {
	g := d.Gregorian()
	clock := d.Clock()
	millis := calendar.Round(clock.Second * 1000)
	sign := "+"
	zone := d.zone
	if zone < 0 {
		sign = "-"
		zone = -zone
	}
	zh := int(zone)
	zm := calendar.Round((zone - float64(zh)) * 60)
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03d%s%02d:%02d",
		g.Year, g.Month, g.Day, clock.Hour, clock.Minute,
		millis/1000, millis%1000, sign, zh, zm)
}

// String implements fmt.Stringer.
func (d Date) String() string { return d.ISO8601() }

// FixedFromTime converts a time.Time to a fixed-date moment in UTC.
func FixedFromTime(t time.Time) float64 {
	return unixEpoch + float64(t.UnixMilli())/1000/86400
}

// TimeFromFixed converts a whole fixed date to a time.Time at midnight
// UTC. Useful for interoperating with libraries that speak time.Time.
func TimeFromFixed(date int) time.Time {
	return time.Unix(int64(date-unixEpoch)*86400, 0).UTC()
}
