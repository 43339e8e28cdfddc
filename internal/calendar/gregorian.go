package calendar

// Month numbers shared by the solar calendars in this package.
const (
	January = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// GregorianEpoch is the fixed date of 1 January 1 CE (Gregorian), which
// by construction is day 1.
const GregorianEpoch = 1

// GregorianDate is a proleptic Gregorian calendar date.
type GregorianDate struct {
	Year  int
	Month int
	Day   int
}

// GregorianLeapYear reports whether a Gregorian year has 366 days.
func GregorianLeapYear(year int) bool {
	m := FloorMod(year, 400)
	return FloorMod(year, 4) == 0 && m != 100 && m != 200 && m != 300
}

// GregorianToFixed converts a Gregorian date to a fixed date.
//
// The closed form counts 365 days per prior year, corrects for leap days
// with the 4/100/400 rules, then adds the days of the current year with a
// post-February shift of 1 or 2 depending on the leap predicate.
func GregorianToFixed(year, month, day int) int {
	y := year - 1
	fixed := GregorianEpoch - 1 +
		365*y +
		Floor(float64(y)/4) -
		Floor(float64(y)/100) +
		Floor(float64(y)/400) +
		(367*month-362)/12 +
		day
	if month > February {
		if GregorianLeapYear(year) {
			fixed--
		} else {
			fixed -= 2
		}
	}
	return fixed
}

// GregorianYearFromFixed finds the Gregorian year containing a fixed date
// by bucketing into 400-, 100-, 4- and 1-year cycles.
func GregorianYearFromFixed(date int) int {
	d0 := date - GregorianEpoch
	n400 := Floor(float64(d0) / 146097)
	d1 := FloorMod(d0, 146097)
	n100 := d1 / 36524
	d2 := d1 % 36524
	n4 := d2 / 1461
	d3 := d2 % 1461
	n1 := d3 / 365
	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		// Last day of a leap cycle still belongs to the old year.
		return year
	}
	return year + 1
}

// GregorianFromFixed converts a fixed date to a Gregorian date.
func GregorianFromFixed(date int) GregorianDate {
	year := GregorianYearFromFixed(date)
	priorDays := date - GregorianNewYear(year)
	correction := 2
	switch {
	case date < GregorianToFixed(year, March, 1):
		correction = 0
	case GregorianLeapYear(year):
		correction = 1
	}
	month := (12*(priorDays+correction) + 373) / 367
	day := date - GregorianToFixed(year, month, 1) + 1
	return GregorianDate{Year: year, Month: month, Day: day}
}

// GregorianNewYear returns the fixed date of 1 January.
func GregorianNewYear(year int) int {
	return GregorianToFixed(year, January, 1)
}

// GregorianYearEnd returns the fixed date of 31 December.
func GregorianYearEnd(year int) int {
	return GregorianToFixed(year, December, 31)
}

// GregorianDayOfYear returns the ordinal day within its Gregorian year,
// 1 for 1 January.
func GregorianDayOfYear(date int) int {
	return date - GregorianNewYear(GregorianYearFromFixed(date)) + 1
}

// GregorianDaysRemaining returns the number of days left in the year
// after the given date.
func GregorianDaysRemaining(date int) int {
	return GregorianYearEnd(GregorianYearFromFixed(date)) - date
}
