package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/meeus/v3/solstice"

	"calendrica/internal/calendar"
)

// Solar longitudes of the season starts, in degrees.
const (
	Spring = 0.0
	Summer = 90.0
	Autumn = 180.0
	Winter = 270.0
)

// SolarLongitude returns the apparent ecliptic longitude of the sun at
// universal moment t, in degrees [0, 360).
func SolarLongitude(t float64) float64 {
	lon := solar.ApparentLongitude(base.J2000Century(JDE(t)))
	return calendar.FloorModF(lon.Deg(), 360)
}

// SolarDeclination returns the apparent declination of the sun at
// universal moment t, in degrees.
func SolarDeclination(t float64) float64 {
	_, dec := solar.ApparentEquatorial(JDE(t))
	return dec.Deg()
}

// SeasonMoment returns the universal moment when the sun reaches the
// given seasonal longitude in a Gregorian year. The numerical root-find
// is delegated to the ephemeris library.
func SeasonMoment(year int, season float64) float64 {
	var jde float64
	switch season {
	case Summer:
		jde = solstice.June(year)
	case Autumn:
		jde = solstice.September(year)
	case Winter:
		jde = solstice.December(year)
	default:
		jde = solstice.March(year)
	}
	return UniversalFromDynamical(calendar.MomentFromJD(jde))
}

// SeasonOnOrBefore returns the universal moment of the last occurrence of
// a seasonal event on or before universal moment t. If the event computed
// for t's year falls after t, the previous year's occurrence is used.
func SeasonOnOrBefore(t float64, season float64) float64 {
	year := calendar.GregorianYearFromFixed(calendar.Fixed(t))
	moment := SeasonMoment(year, season)
	if moment > t {
		moment = SeasonMoment(year-1, season)
	}
	return moment
}

// EstimatePriorSolarLongitude estimates the moment, at or before t, when
// the sun last reached longitude lambda. Good to within a day, which the
// new-year searches then refine by linear scan.
func EstimatePriorSolarLongitude(lambda, t float64) float64 {
	rate := MeanTropicalYear / 360
	tau := t - rate*calendar.FloorModF(SolarLongitude(t)-lambda, 360)
	delta := calendar.Mod3(SolarLongitude(tau)-lambda, -180, 180)
	return math.Min(t, tau-rate*delta)
}
