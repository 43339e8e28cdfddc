package calendar

// Easter returns the fixed date of Easter Sunday for a Gregorian year.
//
// The computation is the Gregorian computus: the epact locates the
// paschal moon relative to 19 April, and Easter is the Sunday strictly
// after it.
func Easter(year int) int {
	century := Floor(float64(year)/100) + 1
	shiftedEpact := FloorMod(14+11*FloorMod(year, 19)-Floor(3*float64(century)/4)+Floor((5+8*float64(century))/25), 30)
	adjustedEpact := shiftedEpact
	if shiftedEpact == 0 || (shiftedEpact == 1 && FloorMod(year, 19) > 10) {
		adjustedEpact++
	}
	paschalMoon := GregorianToFixed(year, April, 19) - adjustedEpact
	return KDayAfter(paschalMoon, Sunday)
}

// OrthodoxEaster returns the fixed date of Eastern Orthodox Easter for a
// Gregorian year. The paschal moon follows the unreformed Julian
// reckoning, composed with the same Sunday-after step.
func OrthodoxEaster(year int) int {
	shiftedEpact := FloorMod(14+11*FloorMod(year, 19), 30)
	julianYear := year
	if year <= 0 {
		julianYear = year - 1
	}
	paschalMoon := JulianToFixed(julianYear, April, 19) - shiftedEpact
	return KDayAfter(paschalMoon, Sunday)
}
