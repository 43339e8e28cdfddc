package astro

import (
	"math"

	"calendrica/internal/calendar"
)

// PersianEpoch is 1 Farvardin AP 1, 19 March 622 CE (Julian).
const PersianEpoch = 226896

// PersianDate is an astronomical Persian (Solar Hijri) date. Year
// numbering skips 0: year -1 precedes year 1.
type PersianDate struct {
	Year  int
	Month int
	Day   int
}

// PersianNewYearOnOrBefore returns the fixed date of the last Nowruz on
// or before a fixed date: the day whose true noon in Tehran falls after
// the vernal equinox.
func PersianNewYearOnOrBefore(date int) int {
	approx := EstimatePriorSolarLongitude(Spring, Midday(date, Tehran))
	day := calendar.Floor(approx) - 1
	for SolarLongitude(Midday(day, Tehran)) > Spring+2 {
		day++
	}
	return day
}

// PersianToFixed converts a Persian date to a fixed date. The first seven
// months have 31 days, the rest 30 (the last month 29 or 30 as the next
// equinox dictates).
func PersianToFixed(year, month, day int) int {
	y := year - 1
	if year <= 0 {
		y = year // no year 0
	}
	newYear := PersianNewYearOnOrBefore(
		PersianEpoch + 180 + calendar.Floor(MeanTropicalYear*float64(y)))
	fixed := newYear - 1 + day
	if month <= 7 {
		return fixed + 31*(month-1)
	}
	return fixed + 30*(month-1) + 6
}

// PersianFromFixed converts a fixed date to a Persian date.
func PersianFromFixed(date int) PersianDate {
	newYear := PersianNewYearOnOrBefore(date)
	y := calendar.Round(float64(newYear-PersianEpoch)/MeanTropicalYear) + 1
	year := y
	if y <= 0 {
		year = y - 1
	}
	dayOfYear := date - PersianToFixed(year, 1, 1) + 1
	var month int
	if dayOfYear <= 186 {
		month = int(math.Ceil(float64(dayOfYear) / 31))
	} else {
		month = int(math.Ceil(float64(dayOfYear-6) / 30))
	}
	day := date - PersianToFixed(year, month, 1) + 1
	return PersianDate{Year: year, Month: month, Day: day}
}
