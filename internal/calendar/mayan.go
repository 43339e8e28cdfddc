package calendar

// MayanEpoch is the start of the Long Count, 11 August 3114 BCE
// (Gregorian), under the Goodman-Martinez-Thompson correlation
// (JD 584283).
const MayanEpoch = -1137142

// Residues of the Haab and Tzolkin cycles at the Long Count epoch:
// the epoch fell on Haab 8 Cumku (ordinal 348) and Tzolkin 4 Ahau
// (ordinal 159).
const (
	mayanHaabEpoch    = MayanEpoch - 348
	mayanTzolkinEpoch = MayanEpoch - 159
)

// MayanLongCount is the mixed-radix positional count of days since the
// Mayan epoch, with places of 144000, 7200, 360, 20 and 1 days.
type MayanLongCount struct {
	Baktun int
	Katun  int
	Tun    int
	Uinal  int
	Kin    int
}

// MayanHaab is a day of the 365-day civil cycle: eighteen 20-day months
// and the five-day Uayeb (month 19). Days run 0..19.
type MayanHaab struct {
	Month int
	Day   int
}

// MayanTzolkin is a day of the 260-day ritual cycle: a number 1..13
// paired with a name 1..20, both advancing daily.
type MayanTzolkin struct {
	Number int
	Name   int
}

// MayanLongCountToFixed converts a Long Count to a fixed date.
func MayanLongCountToFixed(lc MayanLongCount) int {
	return MayanEpoch +
		lc.Baktun*144000 +
		lc.Katun*7200 +
		lc.Tun*360 +
		lc.Uinal*20 +
		lc.Kin
}

// MayanLongCountFromFixed converts a fixed date to a Long Count.
// Dates before the epoch get a negative baktun.
func MayanLongCountFromFixed(date int) MayanLongCount {
	days := date - MayanEpoch
	baktun := Floor(float64(days) / 144000)
	rem := FloorMod(days, 144000)
	return MayanLongCount{
		Baktun: baktun,
		Katun:  rem / 7200,
		Tun:    rem % 7200 / 360,
		Uinal:  rem % 360 / 20,
		Kin:    rem % 20,
	}
}

// MayanHaabOrdinal returns a Haab designation's position 0..364 within
// its cycle.
func MayanHaabOrdinal(h MayanHaab) int {
	return (h.Month-1)*20 + h.Day
}

// MayanHaabFromFixed converts a fixed date to its Haab designation.
func MayanHaabFromFixed(date int) MayanHaab {
	count := FloorMod(date-mayanHaabEpoch, 365)
	return MayanHaab{Month: count/20 + 1, Day: count % 20}
}

// MayanHaabOnOrBefore returns the last fixed date on or before date with
// the given Haab designation.
func MayanHaabOnOrBefore(h MayanHaab, date int) int {
	return date - FloorMod(date-mayanHaabEpoch-MayanHaabOrdinal(h), 365)
}

// MayanTzolkinOrdinal returns a Tzolkin designation's position 0..259
// within its cycle, reconciling the 13- and 20-day wheels.
func MayanTzolkinOrdinal(t MayanTzolkin) int {
	return FloorMod(t.Number-1+39*(t.Number-t.Name), 260)
}

// MayanTzolkinFromFixed converts a fixed date to its Tzolkin designation.
func MayanTzolkinFromFixed(date int) MayanTzolkin {
	days := date - MayanEpoch
	return MayanTzolkin{
		Number: AdjustedMod(days+4, 13),
		Name:   AdjustedMod(days+20, 20),
	}
}

// MayanTzolkinOnOrBefore returns the last fixed date on or before date
// with the given Tzolkin designation.
func MayanTzolkinOnOrBefore(t MayanTzolkin, date int) int {
	return date - FloorMod(date-mayanTzolkinEpoch-MayanTzolkinOrdinal(t), 260)
}

// MayanCalendarRoundOnOrBefore finds the most recent date on or before
// date bearing both designations. The two cycles share gcd(365,260) = 5,
// so the pairing recurs every 18980 days but exists only when the
// ordinals agree mod 5; ok is false for the impossible pairings, which
// are a normal outcome of the inputs rather than an error.
func MayanCalendarRoundOnOrBefore(h MayanHaab, t MayanTzolkin, date int) (fixed int, ok bool) {
	haabCount := MayanHaabOrdinal(h) + mayanHaabEpoch
	tzolkinCount := MayanTzolkinOrdinal(t) + mayanTzolkinEpoch
	diff := tzolkinCount - haabCount
	if FloorMod(diff, 5) != 0 {
		return 0, false
	}
	return date - FloorMod(date-haabCount-365*diff, 18980), true
}
