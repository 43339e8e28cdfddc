package astro

import (
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"

	"calendrica/internal/calendar"
)

// LunarLongitude returns the apparent ecliptic longitude of the moon at
// universal moment t, in degrees [0, 360).
func LunarLongitude(t float64) float64 {
	jde := JDE(t)
	lon, _, _ := moonposition.Position(jde)
	dpsi, _ := nutation.Nutation(jde)
	return calendar.FloorModF((lon + dpsi).Deg(), 360)
}

// LunarLatitude returns the ecliptic latitude of the moon at universal
// moment t, in degrees.
func LunarLatitude(t float64) float64 {
	_, lat, _ := moonposition.Position(JDE(t))
	return lat.Deg()
}

// LunarPhase returns the excess of the moon's apparent longitude over the
// sun's at universal moment t, in degrees [0, 360): 0 at new moon, 180 at
// full.
func LunarPhase(t float64) float64 {
	return calendar.FloorModF(LunarLongitude(t)-SolarLongitude(t), 360)
}

// LunarAltitude returns the geocentric altitude of the moon above the
// horizon at universal moment t for an observer at loc, in degrees
// (-180, 180]. Parallax and refraction are not applied; the crescent
// criteria are calibrated against this geocentric value.
func LunarAltitude(t float64, loc Location) float64 {
	jde := JDE(t)
	lon, lat, _ := moonposition.Position(jde)
	dpsi, deps := nutation.Nutation(jde)
	eps := nutation.MeanObliquity(jde) + deps

	ecl := &coord.Ecliptic{Lon: lon + dpsi, Lat: lat}
	eq := new(coord.Equatorial).EclToEq(ecl, coord.NewObliquity(eps))

	// The ephemeris library counts observer longitude positive westward.
	site := &globe.Coord{
		Lat: unit.AngleFromDeg(loc.Latitude),
		Lon: unit.AngleFromDeg(-loc.Longitude),
	}
	st := sidereal.Apparent(calendar.JDFromMoment(t))
	hz := new(coord.Horizontal).EqToHz(eq, site, st)
	return calendar.Mod3(hz.Alt.Deg(), -180, 180)
}
