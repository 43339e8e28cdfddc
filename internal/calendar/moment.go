package calendar

import "math"

// TimeOfDay is the clock decomposition of a moment's fractional part.
// Seconds keep their fractional remainder but are rounded to millisecond
// precision to suppress floating-point noise.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second float64
}

// Fixed truncates a moment to its fixed date.
func Fixed(t float64) int {
	return Floor(t)
}

// TimeFromMoment decomposes the fractional part of a moment into a
// TimeOfDay. The returned carry is 1 when millisecond rounding pushes the
// clock past midnight (so the caller must advance the day), 0 otherwise.
//
// Without the cascade, float arithmetic yields values like 59.9999997
// seconds where a clock should read 0 seconds of the next minute.
func TimeFromMoment(t float64) (carry int, clock TimeOfDay) {
	frac := FloorModF(t, 1)
	hour := Floor(frac * 24)
	minutes := Floor(frac * 1440)
	minute := minutes - hour*60
	second := frac*86400 - float64(minutes)*60

	// Round to millisecond precision, then cascade.
	second = math.Round(second*1000) / 1000
	if second >= 60 {
		second -= 60
		minute++
	}
	if minute >= 60 {
		minute -= 60
		hour++
	}
	if hour >= 24 {
		hour -= 24
		carry = 1
	}
	return carry, TimeOfDay{Hour: hour, Minute: minute, Second: second}
}

// MomentFromTime is the inverse of TimeFromMoment for a given fixed date.
func MomentFromTime(date int, clock TimeOfDay) float64 {
	return float64(date) + float64(clock.Hour)/24 + float64(clock.Minute)/1440 + clock.Second/86400
}

// Weekday numbers days Sunday = 0 through Saturday = 6.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (w Weekday) String() string {
	return weekdayNames[FloorMod(int(w), 7)]
}

// WeekdayFromFixed derives the weekday of a fixed date. RD 1 was a Monday.
func WeekdayFromFixed(date int) Weekday {
	return Weekday(FloorMod(date, 7))
}

// WeekdayFromMoment is WeekdayFromFixed on the moment's date.
func WeekdayFromMoment(t float64) Weekday {
	return WeekdayFromFixed(Fixed(t))
}

// KDayOnOrBefore returns the last fixed date on or before date that falls
// on weekday k.
func KDayOnOrBefore(date int, k Weekday) int {
	return date - int(WeekdayFromFixed(date-int(k)))
}

// KDayOnOrAfter returns the first fixed date on or after date falling on k.
func KDayOnOrAfter(date int, k Weekday) int {
	return KDayOnOrBefore(date+6, k)
}

// KDayNearest returns the fixed date nearest to date falling on k.
func KDayNearest(date int, k Weekday) int {
	return KDayOnOrBefore(date+3, k)
}

// KDayBefore returns the last fixed date strictly before date falling on k.
func KDayBefore(date int, k Weekday) int {
	return KDayOnOrBefore(date-1, k)
}

// KDayAfter returns the first fixed date strictly after date falling on k.
func KDayAfter(date int, k Weekday) int {
	return KDayOnOrBefore(date+7, k)
}

// NthKDay returns the nth weekday k counted from date: for positive n the
// nth k-day after date, for negative n the nth k-day before it. n must be
// nonzero; ok is false otherwise.
func NthKDay(n int, k Weekday, date int) (fixed int, ok bool) {
	switch {
	case n > 0:
		return 7*n + KDayBefore(date, k), true
	case n < 0:
		return 7*n + KDayAfter(date, k), true
	default:
		return 0, false
	}
}
