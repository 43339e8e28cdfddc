package calendar

// ISODate is an ISO 8601 week date: week 1..53, day 1..7 with Monday = 1
// and Sunday = 7.
type ISODate struct {
	Year int
	Week int
	Day  int
}

// ISOToFixed converts an ISO week date to a fixed date. Week 1 is the
// week containing the first Thursday of the year, equivalently the week
// whose Sunday follows 28 December of the prior year.
func ISOToFixed(year, week, day int) int {
	sunday, _ := NthKDay(week, Sunday, GregorianToFixed(year-1, December, 28))
	return sunday + day
}

// ISOFromFixed converts a fixed date to an ISO week date.
func ISOFromFixed(date int) ISODate {
	approx := GregorianYearFromFixed(date - 3)
	year := approx
	if date >= ISOToFixed(approx+1, 1, 1) {
		year = approx + 1
	}
	week := (date-ISOToFixed(year, 1, 1))/7 + 1
	day := AdjustedMod(date, 7)
	return ISODate{Year: year, Week: week, Day: day}
}

// ISOLongYear reports whether an ISO year has 53 weeks, which happens
// when either 1 January or 31 December is a Thursday.
func ISOLongYear(year int) bool {
	jan1 := WeekdayFromFixed(GregorianNewYear(year))
	dec31 := WeekdayFromFixed(GregorianYearEnd(year))
	return jan1 == Thursday || dec31 == Thursday
}
