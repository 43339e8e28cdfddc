// Package almanac computes the named calendar events of a Gregorian
// year: Easter in both reckonings, the equinoxes and solstices, and the
// astronomical new years. The API's generate endpoint and the eventgen
// command both feed its output into the event store.
package almanac

import (
	"fmt"

	"calendrica/internal/astro"
	"calendrica/internal/caldate"
	"calendrica/internal/calendar"
	"calendrica/internal/database"
)

// Event names as stored. Stable identifiers, not display strings.
const (
	NameEaster           = "easter"
	NameOrthodoxEaster   = "orthodox-easter"
	NameMarchEquinox     = "march-equinox"
	NameJuneSolstice     = "june-solstice"
	NameSeptemberEquinox = "september-equinox"
	NameDecemberSolstice = "december-solstice"
	NameNowruz           = "nowruz"
	NameFrenchNewYear    = "french-new-year"
	NameHebrewNewYear    = "hebrew-new-year"
	NameIslamicNewYear   = "islamic-new-year"
)

// ComputeYear returns the named events of a Gregorian year, ordered as
// computed (the store orders by date on read). The observational
// Islamic new year can fail when the crescent search is exhausted; that
// error aborts the whole year rather than storing a partial set.
func ComputeYear(year int) ([]database.Event, error) {
	var events []database.Event

	day := func(name string, fixed int) {
		g := calendar.GregorianFromFixed(fixed)
		events = append(events, database.Event{
			Year:      year,
			Name:      name,
			RD:        float64(fixed),
			Gregorian: fmt.Sprintf("%04d-%02d-%02d", g.Year, g.Month, g.Day),
		})
	}
	moment := func(name string, t float64) {
		d, err := caldate.New(t, 0)
		if err != nil {
			return
		}
		events = append(events, database.Event{
			Year:      year,
			Name:      name,
			RD:        t,
			Gregorian: d.ISO8601(),
		})
	}

	day(NameEaster, calendar.Easter(year))
	day(NameOrthodoxEaster, calendar.OrthodoxEaster(year))

	moment(NameMarchEquinox, astro.SeasonMoment(year, astro.Spring))
	moment(NameJuneSolstice, astro.SeasonMoment(year, astro.Summer))
	moment(NameSeptemberEquinox, astro.SeasonMoment(year, astro.Autumn))
	moment(NameDecemberSolstice, astro.SeasonMoment(year, astro.Winter))

	// Nowruz falls near the March equinox; mid-April is safely after it.
	day(NameNowruz, astro.PersianNewYearOnOrBefore(
		calendar.GregorianToFixed(year, calendar.April, 15)))

	// The Republican year begins near the September equinox.
	day(NameFrenchNewYear, astro.FrenchNewYearOnOrBefore(
		calendar.GregorianToFixed(year, calendar.October, 15)))

	// Rosh Hashanah of Hebrew year y falls in Gregorian year y-3761.
	day(NameHebrewNewYear, calendar.HebrewNewYear(year+3761))

	islamic, err := islamicNewYear(year)
	if err != nil {
		return nil, fmt.Errorf("islamic new year %d: %w", year, err)
	}
	if islamic > 0 {
		day(NameIslamicNewYear, islamic)
	}

	return events, nil
}

// islamicNewYear finds the first observational 1 Muharram falling within
// the Gregorian year, or 0 when none does (the lunar year is about
// eleven days short, so occasionally a Gregorian year holds two; the
// first is reported).
func islamicNewYear(year int) (int, error) {
	start := calendar.GregorianNewYear(year)
	end := calendar.GregorianYearEnd(year)

	mid, err := astro.ObservationalIslamicFromFixed(start + 182)
	if err != nil {
		return 0, err
	}
	for y := mid.Year; y <= mid.Year+1; y++ {
		fixed, err := astro.ObservationalIslamicToFixed(y, 1, 1)
		if err != nil {
			return 0, err
		}
		if fixed >= start && fixed <= end {
			return fixed, nil
		}
	}
	return 0, nil
}
