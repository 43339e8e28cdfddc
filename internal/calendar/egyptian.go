package calendar

// The Egyptian civil calendar is a pure 365-day year: twelve 30-day
// months plus five epagomenal days (month 13). The Armenian calendar is
// the same wheel started at a different epoch.
const (
	// EgyptianEpoch is the era of Nabonassar, JD 1448638
	// (26 February 747 BCE Julian).
	EgyptianEpoch = -272787

	// ArmenianEpoch is 11 July 552 CE (Julian).
	ArmenianEpoch = 201443
)

// EgyptianDate is an Egyptian civil date. Month 13 holds the five
// epagomenal days.
type EgyptianDate struct {
	Year  int
	Month int
	Day   int
}

// ArmenianDate shares the Egyptian month structure.
type ArmenianDate struct {
	Year  int
	Month int
	Day   int
}

// EgyptianToFixed converts an Egyptian date to a fixed date.
func EgyptianToFixed(year, month, day int) int {
	return EgyptianEpoch + 365*(year-1) + 30*(month-1) + day - 1
}

// EgyptianFromFixed converts a fixed date to an Egyptian date.
func EgyptianFromFixed(date int) EgyptianDate {
	days := date - EgyptianEpoch
	year := Floor(float64(days)/365) + 1
	month := FloorMod(days, 365)/30 + 1
	day := days - 365*(year-1) - 30*(month-1) + 1
	return EgyptianDate{Year: year, Month: month, Day: day}
}

// ArmenianToFixed converts an Armenian date to a fixed date by shifting
// the Egyptian wheel to the Armenian epoch.
func ArmenianToFixed(year, month, day int) int {
	return ArmenianEpoch + EgyptianToFixed(year, month, day) - EgyptianEpoch
}

// ArmenianFromFixed converts a fixed date to an Armenian date.
func ArmenianFromFixed(date int) ArmenianDate {
	e := EgyptianFromFixed(date + EgyptianEpoch - ArmenianEpoch)
	return ArmenianDate{Year: e.Year, Month: e.Month, Day: e.Day}
}
