package calendar

// Coptic and Ethiopic years are twelve 30-day months plus a 5- or 6-day
// thirteenth month, leaping every fourth year with no century exception.
const (
	// CopticEpoch is the era of Diocletian, 29 August 284 CE (Julian).
	CopticEpoch = 103605

	// EthiopicEpoch is the era of the Incarnation, 29 August 8 CE (Julian).
	EthiopicEpoch = 2796
)

// CopticDate is a Coptic calendar date.
type CopticDate struct {
	Year  int
	Month int
	Day   int
}

// EthiopicDate is an Ethiopic calendar date.
type EthiopicDate struct {
	Year  int
	Month int
	Day   int
}

// CopticLeapYear reports whether a Coptic year has 366 days.
func CopticLeapYear(year int) bool {
	return FloorMod(year, 4) == 3
}

// CopticToFixed converts a Coptic date to a fixed date.
func CopticToFixed(year, month, day int) int {
	return CopticEpoch - 1 +
		365*(year-1) +
		Floor(float64(year)/4) +
		30*(month-1) +
		day
}

// CopticFromFixed converts a fixed date to a Coptic date.
func CopticFromFixed(date int) CopticDate {
	year := Floor(float64(4*(date-CopticEpoch)+1463) / 1461)
	month := (date-CopticToFixed(year, 1, 1))/30 + 1
	day := date + 1 - CopticToFixed(year, month, 1)
	return CopticDate{Year: year, Month: month, Day: day}
}

// EthiopicToFixed converts an Ethiopic date to a fixed date; the month
// structure is Coptic with the Ethiopic epoch.
func EthiopicToFixed(year, month, day int) int {
	return EthiopicEpoch + CopticToFixed(year, month, day) - CopticEpoch
}

// EthiopicFromFixed converts a fixed date to an Ethiopic date.
func EthiopicFromFixed(date int) EthiopicDate {
	c := CopticFromFixed(date + CopticEpoch - EthiopicEpoch)
	return EthiopicDate{Year: c.Year, Month: c.Month, Day: c.Day}
}
