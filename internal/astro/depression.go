package astro

import (
	"math"

	"calendrica/internal/calendar"
)

// Standard depression angles, degrees below the horizon.
const (
	CivilTwilight        = 6.0
	NauticalTwilight     = 12.0
	AstronomicalTwilight = 18.0
)

// Refinement stops when successive estimates agree within 30 seconds.
const depressionTolerance = 30.0 / 86400

// SineOffset returns the sine of the hour-angle offset at which the sun
// sits angle degrees below the horizon of loc, near local moment t.
// Values outside [-1, 1] mean the sun never reaches that depression on
// that date at that latitude.
func SineOffset(t float64, loc Location, angle float64) float64 {
	dec := SolarDeclination(UniversalFromLocal(t, loc))
	return tand(loc.Latitude)*tand(dec) +
		sind(angle)/(cosd(dec)*cosd(loc.Latitude))
}

// ApproxMomentOfDepression estimates the local moment near t at which the
// sun reaches the given depression angle; early selects the morning
// branch, otherwise evening. ok is false when no such moment exists
// (polar day or night).
func ApproxMomentOfDepression(t float64, loc Location, angle float64, early bool) (moment float64, ok bool) {
	try := SineOffset(t, loc, angle)
	date := float64(calendar.Fixed(t))

	// When the initial estimate is out of range, retry at the moment of
	// the extreme: midnight for angles above the horizon, noon below.
	alt := date + 0.5
	if angle >= 0 {
		if early {
			alt = date
		} else {
			alt = date + 1
		}
	}
	value := try
	if math.Abs(try) > 1 {
		value = SineOffset(alt, loc, angle)
	}
	if math.Abs(value) > 1 {
		return 0, false
	}

	offset := calendar.Mod3(asind(value)/360, -0.5, 0.5)
	approx := date + 0.75 + offset
	if early {
		approx = date + 0.25 - offset
	}
	return LocalFromApparent(approx, loc), true
}

// MomentOfDepression resolves ApproxMomentOfDepression to a fixed point:
// each pass re-solves with the previous estimate until two passes agree
// within 30 seconds. The pass bound guards against an oscillating
// estimate near the polar limit; hitting it means no moment was found,
// never that the last estimate is good enough.
func MomentOfDepression(approx float64, loc Location, angle float64, early bool) (moment float64, ok bool) {
	for i := 0; i < 20; i++ {
		t, ok := ApproxMomentOfDepression(approx, loc, angle, early)
		if !ok {
			return 0, false
		}
		if math.Abs(approx-t) < depressionTolerance {
			return t, true
		}
		approx = t
	}
	return 0, false
}

// Dawn returns the standard-time moment on a fixed date when the rising
// sun reaches angle degrees below the horizon, or ok=false when it never
// does.
func Dawn(date int, loc Location, angle float64) (moment float64, ok bool) {
	t, ok := MomentOfDepression(float64(date)+0.25, loc, angle, true)
	if !ok {
		return 0, false
	}
	return StandardFromLocal(t, loc), true
}

// Dusk returns the standard-time moment on a fixed date when the setting
// sun reaches angle degrees below the horizon, or ok=false when it never
// does.
func Dusk(date int, loc Location, angle float64) (moment float64, ok bool) {
	t, ok := MomentOfDepression(float64(date)+0.75, loc, angle, false)
	if !ok {
		return 0, false
	}
	return StandardFromLocal(t, loc), true
}
