package astro

import (
	"fmt"

	"calendrica/internal/calendar"
)

// Depression angle and visibility thresholds of the crescent test.
const (
	crescentDuskAngle  = 4.5  // degrees below horizon at evaluation dusk
	minArcOfLight      = 10.6 // degrees
	maxArcOfLight      = 90.0
	minCrescentAlt     = 4.1 // degrees
	phasisSearchWindow = 30  // days
)

// VisibleCrescent reports whether the new lunar crescent is visible at
// loc on the evening before the given fixed date. Four criteria must
// hold at dusk: the moon is waxing and less than a quarter through its
// phase, the arc of light lies in [10.6, 90] degrees, and the lunar
// altitude exceeds 4.1 degrees. A dusk that never occurs (polar
// conditions) counts as not visible.
func VisibleCrescent(date int, loc Location) bool {
	d, ok := Dusk(date-1, loc, crescentDuskAngle)
	if !ok {
		return false
	}
	t := UniversalFromStandard(d, loc)
	phase := LunarPhase(t)
	arcOfLight := acosd(cosd(LunarLatitude(t)) * cosd(phase))
	return phase > 0 && phase < 90 &&
		arcOfLight >= minArcOfLight && arcOfLight <= maxArcOfLight &&
		LunarAltitude(t, loc) > minCrescentAlt
}

// PhasisOnOrBefore returns the fixed date of the first crescent
// visibility (the start of the observational month) on or before date at
// loc. The mean new moon fixes a starting estimate; candidates are then
// scanned forward, at most 30 of them. The scan cannot be exhausted for
// realistic sites, so exhaustion is reported as an error rather than a
// silent wrong answer.
func PhasisOnOrBefore(date int, loc Location) (int, error) {
	mean := date - calendar.Floor(LunarPhase(float64(date)+1)/360*MeanSynodicMonth)
	tau := mean - 2
	if date-mean <= 3 && !VisibleCrescent(date, loc) {
		tau = mean - 30
	}
	for d := tau; d <= tau+phasisSearchWindow; d++ {
		if VisibleCrescent(d, loc) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("no visible crescent within %d days of RD %d at %s",
		phasisSearchWindow, date, loc.Name)
}
