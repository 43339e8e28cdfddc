package astro

import (
	"calendrica/internal/calendar"
)

// FrenchEpoch is 1 Vendemiaire an I, 22 September 1792 (Gregorian).
const FrenchEpoch = 654415

// FrenchDate is a French Revolutionary date: twelve 30-day months plus
// the sansculottides as month 13.
type FrenchDate struct {
	Year  int
	Month int
	Day   int
}

// FrenchNewYearOnOrBefore returns the fixed date of the last French new
// year on or before a fixed date: the day of the autumnal equinox as
// observed at true midnight in Paris.
func FrenchNewYearOnOrBefore(date int) int {
	// The year boundary is tied to the midnight ending the day.
	approx := EstimatePriorSolarLongitude(Autumn, Midnight(date+1, Paris))
	day := calendar.Floor(approx) - 1
	for SolarLongitude(Midnight(day+1, Paris)) < Autumn {
		day++
	}
	return day
}

// FrenchToFixed converts a French Revolutionary date to a fixed date.
func FrenchToFixed(year, month, day int) int {
	newYear := FrenchNewYearOnOrBefore(
		calendar.Floor(float64(FrenchEpoch) + 180 + MeanTropicalYear*float64(year-1)))
	return newYear - 1 + 30*(month-1) + day
}

// FrenchFromFixed converts a fixed date to a French Revolutionary date.
func FrenchFromFixed(date int) FrenchDate {
	newYear := FrenchNewYearOnOrBefore(date)
	year := calendar.Round(float64(newYear-FrenchEpoch)/MeanTropicalYear) + 1
	month := (date-newYear)/30 + 1
	day := calendar.FloorMod(date-newYear, 30) + 1
	return FrenchDate{Year: year, Month: month, Day: day}
}

// ModifiedFrenchLeapYear is the arithmetic leap rule of the proposed
// reformed calendar: Gregorian-style with a further 4000-year exception.
func ModifiedFrenchLeapYear(year int) bool {
	m := calendar.FloorMod(year, 400)
	return calendar.FloorMod(year, 4) == 0 &&
		m != 100 && m != 200 && m != 300 &&
		calendar.FloorMod(year, 4000) != 0
}

// ModifiedFrenchToFixed converts an arithmetic French date to a fixed
// date.
func ModifiedFrenchToFixed(year, month, day int) int {
	y := float64(year - 1)
	return FrenchEpoch - 1 +
		365*(year-1) +
		calendar.Floor(y/4) -
		calendar.Floor(y/100) +
		calendar.Floor(y/400) -
		calendar.Floor(y/4000) +
		30*(month-1) +
		day
}

// ModifiedFrenchFromFixed converts a fixed date to an arithmetic French
// date.
func ModifiedFrenchFromFixed(date int) FrenchDate {
	year := calendar.Floor(float64(date-FrenchEpoch+2)*4000/1460969) + 1
	if date < ModifiedFrenchToFixed(year, 1, 1) {
		year--
	}
	month := (date-ModifiedFrenchToFixed(year, 1, 1))/30 + 1
	day := date - ModifiedFrenchToFixed(year, month, 1) + 1
	return FrenchDate{Year: year, Month: month, Day: day}
}
