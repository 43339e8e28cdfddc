// Package astro implements the time-and-location model, the astronomical
// searches (equinoxes, twilight depression angles, lunar crescent
// visibility) and the three calendars that depend on them: Observational
// Islamic, Persian and French Revolutionary.
//
// Solar and lunar positions, nutation and sidereal time come from the
// meeus ephemeris library; delta-T and the equation of time are computed
// here from their standard polynomial fits.
package astro

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/nutation"

	"calendrica/internal/calendar"
)

// Astronomical mean periods in days.
const (
	MeanTropicalYear = 365.242189
	MeanSynodicMonth = 29.530588853
)

// Location is an observation site. Latitude is degrees north, longitude
// degrees east (negative west), elevation meters above sea level, and
// Zone the standard-time offset in hours east of UTC.
type Location struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Elevation float64 `yaml:"elevation"`
	Zone      float64 `yaml:"zone"`
}

// Built-in sites used by the observational calendars.
var (
	Cairo     = Location{Name: "Cairo", Latitude: 30.1, Longitude: 31.3, Elevation: 200, Zone: 2}
	Tehran    = Location{Name: "Tehran", Latitude: 35.68, Longitude: 51.42, Elevation: 1100, Zone: 3.5}
	Paris     = Location{Name: "Paris", Latitude: 48.836389, Longitude: 2.337222, Elevation: 27, Zone: 1}
	Jerusalem = Location{Name: "Jerusalem", Latitude: 31.78, Longitude: 35.24, Elevation: 740, Zone: 2}
)

// NewLocation validates and builds a Location. Zone offsets outside
// [-12, 14] are caller misuse and rejected here at the boundary.
func NewLocation(name string, latitude, longitude, elevation, zone float64) (Location, error) {
	loc := Location{Name: name, Latitude: latitude, Longitude: longitude, Elevation: elevation, Zone: zone}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Validate checks the Location's fields against their domains.
func (l Location) Validate() error {
	if l.Zone < -12 || l.Zone > 14 {
		return fmt.Errorf("zone offset %g out of range [-12, 14]", l.Zone)
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %g out of range [-90, 90]", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %g out of range [-180, 180]", l.Longitude)
	}
	return nil
}

// Degree trigonometry shorthands; the astronomy below works in degrees.
func sind(x float64) float64 { return math.Sin(x * math.Pi / 180) }
func cosd(x float64) float64 { return math.Cos(x * math.Pi / 180) }
func tand(x float64) float64 { return math.Tan(x * math.Pi / 180) }
func asind(x float64) float64 { return math.Asin(x) * 180 / math.Pi }
func acosd(x float64) float64 { return math.Acos(x) * 180 / math.Pi }

// ZoneFromLongitude is the mean-solar-time offset of a meridian, in days.
func ZoneFromLongitude(longitude float64) float64 {
	return longitude / 360
}

// UniversalFromLocal converts mean local time to universal time.
func UniversalFromLocal(t float64, loc Location) float64 {
	return t - ZoneFromLongitude(loc.Longitude)
}

// LocalFromUniversal converts universal time to mean local time.
func LocalFromUniversal(t float64, loc Location) float64 {
	return t + ZoneFromLongitude(loc.Longitude)
}

// StandardFromUniversal converts universal time to zone standard time.
func StandardFromUniversal(t float64, loc Location) float64 {
	return t + loc.Zone/24
}

// UniversalFromStandard converts zone standard time to universal time.
func UniversalFromStandard(t float64, loc Location) float64 {
	return t - loc.Zone/24
}

// StandardFromLocal converts mean local time to zone standard time.
func StandardFromLocal(t float64, loc Location) float64 {
	return StandardFromUniversal(UniversalFromLocal(t, loc), loc)
}

// LocalFromStandard converts zone standard time to mean local time.
func LocalFromStandard(t float64, loc Location) float64 {
	return LocalFromUniversal(UniversalFromStandard(t, loc), loc)
}

// EphemerisCorrection returns delta-T, the offset of dynamical from
// universal time, in days, for the year containing moment t. Polynomial
// fits per era; the far fallback is the standard parabolic estimate.
func EphemerisCorrection(t float64) float64 {
	year := calendar.GregorianYearFromFixed(calendar.Fixed(t))
	c := float64(calendar.GregorianToFixed(year, calendar.July, 1)-
		calendar.GregorianToFixed(1900, calendar.January, 1)) / 36525
	switch {
	case year >= 1988 && year <= 2019:
		return float64(year-1933) / 86400
	case year >= 1900 && year <= 1987:
		return base.Horner(c, -0.00002, 0.000297, 0.025184, -0.181133,
			0.553040, -0.861938, 0.677066, -0.212591)
	case year >= 1800 && year <= 1899:
		return base.Horner(c, -0.000009, 0.003844, 0.083563, 0.865736,
			4.867575, 15.845535, 31.332267, 38.291999, 28.316289,
			11.636204, 2.043794)
	case year >= 1700 && year <= 1799:
		return base.Horner(float64(year-1700),
			8.118780842, -0.005092142, 0.003336121, -0.0000266484) / 86400
	case year >= 1620 && year <= 1699:
		return base.Horner(float64(year-1600),
			196.58333, -4.0675, 0.0219167) / 86400
	default:
		x := 0.5 + float64(calendar.GregorianToFixed(year, calendar.January, 1)-
			calendar.GregorianToFixed(1810, calendar.January, 1))
		return (x*x/41048480 - 15) / 86400
	}
}

// DynamicalFromUniversal converts universal to dynamical (ephemeris) time.
func DynamicalFromUniversal(t float64) float64 {
	return t + EphemerisCorrection(t)
}

// UniversalFromDynamical converts dynamical to universal time.
func UniversalFromDynamical(t float64) float64 {
	return t - EphemerisCorrection(t)
}

// JDE returns the Julian Ephemeris Day of a universal moment.
func JDE(t float64) float64 {
	return calendar.JDFromMoment(DynamicalFromUniversal(t))
}

// JulianCenturies returns centuries of dynamical time since J2000.
func JulianCenturies(t float64) float64 {
	return base.J2000Century(JDE(t))
}

// EquationOfTime returns the difference between apparent and mean solar
// time at universal moment t, as a fraction of a day, clamped to 12 hours.
func EquationOfTime(t float64) float64 {
	c := JulianCenturies(t)
	lambda := base.Horner(c, 280.46645, 36000.76983, 0.0003032)
	anomaly := base.Horner(c, 357.52910, 35999.05030, -0.0001559, -0.00000048)
	eccentricity := base.Horner(c, 0.016708617, -0.000042037, -0.0000001236)
	epsilon := nutation.MeanObliquity(JDE(t)).Rad()
	y := math.Tan(epsilon / 2)
	y *= y
	equation := (y*sind(2*lambda) -
		2*eccentricity*sind(anomaly) +
		4*eccentricity*y*sind(anomaly)*cosd(2*lambda) -
		0.5*y*y*sind(4*lambda) -
		1.25*eccentricity*eccentricity*sind(2*anomaly)) / (2 * math.Pi)
	if equation < 0 {
		return math.Max(equation, -0.5)
	}
	return math.Min(equation, 0.5)
}

// ApparentFromLocal converts mean local time to apparent (sundial) time.
func ApparentFromLocal(t float64, loc Location) float64 {
	return t + EquationOfTime(UniversalFromLocal(t, loc))
}

// LocalFromApparent converts apparent time to mean local time.
func LocalFromApparent(t float64, loc Location) float64 {
	return t - EquationOfTime(UniversalFromLocal(t, loc))
}

// Midnight returns the standard-time moment of true (apparent) midnight
// at the onset of a fixed date.
func Midnight(date int, loc Location) float64 {
	return StandardFromLocal(LocalFromApparent(float64(date), loc), loc)
}

// Midday returns the standard-time moment of true (apparent) noon of a
// fixed date.
func Midday(date int, loc Location) float64 {
	return StandardFromLocal(LocalFromApparent(float64(date)+0.5, loc), loc)
}
