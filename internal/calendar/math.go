// Package calendar implements fixed-date (Rata Die) arithmetic and the
// closed-form calendars built on it: Gregorian, Julian, Roman, Egyptian,
// Armenian, Coptic, Ethiopic, ISO week, tabular Islamic, Hebrew and Mayan,
// plus weekday helpers and the Easter computus.
//
// The canonical date representation is the fixed date: a day count where
// day 1 is 1 January of year 1 in the proleptic Gregorian calendar.
// Fixed dates are int when a whole day is meant and float64 ("moment")
// when a time of day rides in the fractional part. Every conversion is a
// pure function; there is no shared state anywhere in this package.
package calendar

import "math"

// FloorMod returns x - y*floor(x/y). Unlike Go's % operator the result
// always has the sign of y, which calendar arithmetic depends on because
// epoch offsets are frequently negative.
func FloorMod(x, y int) int {
	m := x % y
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// FloorModF is FloorMod for float64 moments.
func FloorModF(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// AdjustedMod returns y + FloorMod(x, -y): a 1-based cyclic value in
// 1..y (for positive y) that is never 0. Used for cycle positions such
// as Tzolkin numbers and ISO weekdays.
func AdjustedMod(x, y int) int {
	return y + FloorMod(x, -y)
}

// Mod3 shifts x into the half-open interval [a, b).
func Mod3(x, a, b float64) float64 {
	if a == b {
		return x
	}
	return a + FloorModF(x-a, b-a)
}

// Floor returns floor(x) as an int.
func Floor(x float64) int {
	return int(math.Floor(x))
}

// Round rounds half away from zero.
func Round(x float64) int {
	return Floor(x + 0.5)
}
