package calendar

// JulianEpoch is the fixed date of 1 January 1 CE in the Julian calendar
// (30 December 0 Gregorian).
const JulianEpoch = -1

// JulianDate is a Julian calendar date. Year numbering skips 0:
// year -1 is 1 BCE.
type JulianDate struct {
	Year  int
	Month int
	Day   int
}

// JulianLeapYear reports whether a Julian year has 366 days. Because year
// numbering skips 0, leap years BCE are those congruent to 3 mod 4.
func JulianLeapYear(year int) bool {
	if year > 0 {
		return FloorMod(year, 4) == 0
	}
	return FloorMod(year, 4) == 3
}

// JulianToFixed converts a Julian date to a fixed date. A year of 0 is
// normalized to -1 (1 BCE), since the calendar has no year 0.
func JulianToFixed(year, month, day int) int {
	if year == 0 {
		year = -1
	}
	y := year + 1 // shift BCE years to make the arithmetic contiguous
	if year >= 0 {
		y = year
	}
	fixed := JulianEpoch - 1 +
		365*(y-1) +
		Floor(float64(y-1)/4) +
		(367*month-362)/12 +
		day
	if month > February {
		if JulianLeapYear(year) {
			fixed--
		} else {
			fixed -= 2
		}
	}
	return fixed
}

// JulianFromFixed converts a fixed date to a Julian date.
func JulianFromFixed(date int) JulianDate {
	approx := Floor(float64(4*(date-JulianEpoch)+1464) / 1461)
	year := approx
	if approx <= 0 {
		year = approx - 1 // no year 0
	}
	priorDays := date - JulianToFixed(year, January, 1)
	correction := 2
	switch {
	case date < JulianToFixed(year, March, 1):
		correction = 0
	case JulianLeapYear(year):
		correction = 1
	}
	month := (12*(priorDays+correction) + 373) / 367
	day := date - JulianToFixed(year, month, 1) + 1
	return JulianDate{Year: year, Month: month, Day: day}
}

// RomanEvent is one of the three fixed points a Roman date counts down to.
type RomanEvent int

const (
	Kalends RomanEvent = 1 + iota
	Nones
	Ides
)

// RomanDate expresses a day as a countdown to the next Kalends, Nones or
// Ides. Count 1 is the event day itself. Leap marks the doubled day
// "a.d. bis VI Kal. Mart." inserted in Julian leap years.
type RomanDate struct {
	Year  int
	Month int
	Event RomanEvent
	Count int
	Leap  bool
}

// IdesOfMonth returns the day of month of the Ides: the 15th in March,
// May, July and October, the 13th elsewhere.
func IdesOfMonth(month int) int {
	switch month {
	case March, May, July, October:
		return 15
	default:
		return 13
	}
}

// NonesOfMonth returns the day of month of the Nones, eight days before
// the Ides.
func NonesOfMonth(month int) int {
	return IdesOfMonth(month) - 8
}

// RomanToFixed converts a Roman date to a fixed date.
func RomanToFixed(d RomanDate) int {
	var base int
	switch d.Event {
	case Kalends:
		base = JulianToFixed(d.Year, d.Month, 1)
	case Nones:
		base = JulianToFixed(d.Year, d.Month, NonesOfMonth(d.Month))
	default:
		base = JulianToFixed(d.Year, d.Month, IdesOfMonth(d.Month))
	}
	fixed := base - d.Count
	// In a leap year the doubled day sits between a.d. VII and a.d. VI
	// Kal. Mart., so counts of 6..16 down to the March Kalends are not
	// shifted by the usual inclusive-count correction.
	if !(JulianLeapYear(d.Year) && d.Month == March && d.Event == Kalends &&
		d.Count >= 6 && d.Count <= 16) {
		fixed++
	}
	if d.Leap {
		fixed++
	}
	return fixed
}

// RomanFromFixed converts a fixed date to its Roman representation.
// RomanToFixed(RomanFromFixed(d)) == d for all fixed d, including the
// leap-day flag.
func RomanFromFixed(date int) RomanDate {
	j := JulianFromFixed(date)
	monthPrime := AdjustedMod(j.Month+1, 12)
	yearPrime := j.Year
	if monthPrime == January {
		if j.Year == -1 {
			yearPrime = 1
		} else {
			yearPrime = j.Year + 1
		}
	}
	kalends1 := RomanToFixed(RomanDate{Year: yearPrime, Month: monthPrime, Event: Kalends, Count: 1})

	switch {
	case j.Day == 1:
		return RomanDate{Year: j.Year, Month: j.Month, Event: Kalends, Count: 1}
	case j.Day <= NonesOfMonth(j.Month):
		return RomanDate{Year: j.Year, Month: j.Month, Event: Nones,
			Count: NonesOfMonth(j.Month) - j.Day + 1}
	case j.Day <= IdesOfMonth(j.Month):
		return RomanDate{Year: j.Year, Month: j.Month, Event: Ides,
			Count: IdesOfMonth(j.Month) - j.Day + 1}
	case j.Month != February || !JulianLeapYear(j.Year):
		return RomanDate{Year: yearPrime, Month: monthPrime, Event: Kalends,
			Count: kalends1 - date + 1}
	case j.Day < 25:
		return RomanDate{Year: j.Year, Month: March, Event: Kalends, Count: 30 - j.Day}
	default:
		return RomanDate{Year: j.Year, Month: March, Event: Kalends,
			Count: 31 - j.Day, Leap: j.Day == 25}
	}
}
