package calendar

// IslamicEpoch is 1 Muharram AH 1, 16 July 622 CE (Julian).
const IslamicEpoch = 227015

// IslamicDate is a tabular (arithmetic) Islamic calendar date. The
// observational variant lives in the astro package.
type IslamicDate struct {
	Year  int
	Month int
	Day   int
}

// IslamicLeapYear reports whether a tabular Islamic year has 355 days;
// eleven years of each 30-year cycle do.
func IslamicLeapYear(year int) bool {
	return FloorMod(14+11*year, 30) < 11
}

// IslamicToFixed converts a tabular Islamic date to a fixed date. Months
// alternate 30 and 29 days, with the leap day landing on the last month.
func IslamicToFixed(year, month, day int) int {
	return IslamicEpoch - 1 +
		354*(year-1) +
		Floor(float64(3+11*year)/30) +
		29*(month-1) +
		month/2 +
		day
}

// IslamicFromFixed converts a fixed date to a tabular Islamic date.
func IslamicFromFixed(date int) IslamicDate {
	year := Floor(float64(30*(date-IslamicEpoch)+10646) / 10631)
	prior := date - IslamicToFixed(year, 1, 1)
	month := (2*prior + 59) / 59
	day := date - IslamicToFixed(year, month, 1) + 1
	return IslamicDate{Year: year, Month: month, Day: day}
}
