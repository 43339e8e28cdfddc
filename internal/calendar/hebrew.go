package calendar

// HebrewEpoch is 1 Tishri AM 1, 7 October 3761 BCE (Julian).
const HebrewEpoch = -1373427

// Hebrew month numbers. The year count changes at Tishri even though
// Nisan is month 1, so a Hebrew year runs 7,8,...,12/13,1,...,6.
const (
	Nisan = 1 + iota
	Iyyar
	Sivan
	Tammuz
	Av
	Elul
	Tishri
	Marheshvan
	Kislev
	Tevet
	Shevat
	Adar
	AdarII
)

// HebrewDate is a Hebrew (lunisolar) calendar date.
type HebrewDate struct {
	Year  int
	Month int
	Day   int
}

// HebrewLeapYear reports whether a Hebrew year has 13 months; seven years
// of each 19-year Metonic cycle do.
func HebrewLeapYear(year int) bool {
	return FloorMod(7*year+1, 19) < 7
}

// LastMonthOfHebrewYear returns 13 in leap years and 12 otherwise.
func LastMonthOfHebrewYear(year int) int {
	if HebrewLeapYear(year) {
		return AdarII
	}
	return Adar
}

// Molad returns the moment of the mean lunar conjunction that begins the
// given month, as an RD moment in the meridian of Jerusalem. A lunation
// is reckoned as 29 days, 12 hours and 793 halakim (parts of 1/1080 hour).
func Molad(year, month int) float64 {
	y := year
	if month < Tishri {
		y = year + 1
	}
	monthsElapsed := float64(month - Tishri + Floor(float64(235*y-234)/19))
	return HebrewEpoch - 876.0/25920 + monthsElapsed*(29.5+793.0/25920)
}

// hebrewCalendarElapsedDays counts days from the Hebrew epoch to the mean
// conjunction of Tishri of the given year, with the molad-based first
// dehiyyah (postponement off Sunday, Wednesday and Friday) folded in.
func hebrewCalendarElapsedDays(year int) int {
	monthsElapsed := Floor(float64(235*year-234) / 19)
	partsElapsed := 12084 + 13753*monthsElapsed
	days := 29*monthsElapsed + Floor(float64(partsElapsed)/25920)
	if FloorMod(3*(days+1), 7) < 3 {
		days++
	}
	return days
}

// hebrewYearLengthCorrection applies the remaining dehiyyot: deltas of
// 356 or 382 days between consecutive uncorrected new years force one- or
// two-day postponements so that no year gets an impossible length.
func hebrewYearLengthCorrection(year int) int {
	ny0 := hebrewCalendarElapsedDays(year - 1)
	ny1 := hebrewCalendarElapsedDays(year)
	ny2 := hebrewCalendarElapsedDays(year + 1)
	switch {
	case ny2-ny1 == 356:
		return 2
	case ny1-ny0 == 382:
		return 1
	default:
		return 0
	}
}

// HebrewNewYear returns the fixed date of 1 Tishri.
func HebrewNewYear(year int) int {
	return HebrewEpoch + hebrewCalendarElapsedDays(year) + hebrewYearLengthCorrection(year)
}

// DaysInHebrewYear returns the year length: one of 353, 354, 355, 383,
// 384 or 385 days.
func DaysInHebrewYear(year int) int {
	return HebrewNewYear(year+1) - HebrewNewYear(year)
}

// LongMarheshvan reports whether Marheshvan gets its 30th day.
func LongMarheshvan(year int) bool {
	n := DaysInHebrewYear(year)
	return n == 355 || n == 385
}

// ShortKislev reports whether Kislev is docked to 29 days.
func ShortKislev(year int) bool {
	n := DaysInHebrewYear(year)
	return n == 353 || n == 383
}

// LastDayOfHebrewMonth returns the length of a Hebrew month, which for
// Marheshvan, Kislev and Adar depends on the year.
func LastDayOfHebrewMonth(year, month int) int {
	switch {
	case month == Iyyar || month == Tammuz || month == Elul || month == Tevet || month == AdarII:
		return 29
	case month == Adar && !HebrewLeapYear(year):
		return 29
	case month == Marheshvan && !LongMarheshvan(year):
		return 29
	case month == Kislev && ShortKislev(year):
		return 29
	default:
		return 30
	}
}

// HebrewToFixed converts a Hebrew date to a fixed date by summing month
// lengths from Tishri.
func HebrewToFixed(year, month, day int) int {
	fixed := HebrewNewYear(year) + day - 1
	if month < Tishri {
		for m := Tishri; m <= LastMonthOfHebrewYear(year); m++ {
			fixed += LastDayOfHebrewMonth(year, m)
		}
		for m := Nisan; m < month; m++ {
			fixed += LastDayOfHebrewMonth(year, m)
		}
	} else {
		for m := Tishri; m < month; m++ {
			fixed += LastDayOfHebrewMonth(year, m)
		}
	}
	return fixed
}

// HebrewFromFixed converts a fixed date to a Hebrew date. The year is
// approximated from the mean year length and corrected, then the month is
// found by a forward scan bounded by the 13 months of a year; that scan,
// not a closed form, is the inverse.
func HebrewFromFixed(date int) HebrewDate {
	approx := Floor(float64(date-HebrewEpoch)*98496.0/35975351.0) + 1
	year := approx - 1
	for HebrewNewYear(year+1) <= date {
		year++
	}
	month := Nisan
	if date < HebrewToFixed(year, Nisan, 1) {
		month = Tishri
	}
	for date > HebrewToFixed(year, month, LastDayOfHebrewMonth(year, month)) {
		month++
	}
	day := date - HebrewToFixed(year, month, 1) + 1
	return HebrewDate{Year: year, Month: month, Day: day}
}
