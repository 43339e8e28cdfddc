package calendar

// Julian Day numbers give the astronomical layer a continuous time scale.
// The mapping to fixed dates is a constant-offset affine map.
const (
	// JDEpoch is the moment of JD 0 expressed as an RD moment
	// (noon, 1 January 4713 BCE Julian).
	JDEpoch = -1721424.5

	// MJDEpoch is the fixed date of Modified Julian Day 0
	// (JD 2400000.5, 17 November 1858 Gregorian).
	MJDEpoch = 678576
)

// MomentFromJD converts a Julian Day number to an RD moment.
func MomentFromJD(jd float64) float64 {
	return jd + JDEpoch
}

// JDFromMoment converts an RD moment to a Julian Day number.
func JDFromMoment(t float64) float64 {
	return t - JDEpoch
}

// FixedFromJD returns the fixed date containing a Julian Day number.
func FixedFromJD(jd float64) int {
	return Floor(MomentFromJD(jd))
}

// JDFromFixed converts a fixed date to the Julian Day number of its
// midnight onset.
func JDFromFixed(date int) float64 {
	return JDFromMoment(float64(date))
}

// MomentFromMJD converts a Modified Julian Day number to an RD moment.
func MomentFromMJD(mjd float64) float64 {
	return mjd + MJDEpoch
}

// MJDFromMoment converts an RD moment to a Modified Julian Day number.
func MJDFromMoment(t float64) float64 {
	return t - MJDEpoch
}
