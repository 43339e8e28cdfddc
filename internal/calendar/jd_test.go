package calendar

import (
	"math"
	"testing"
)

func TestJDConversions(t *testing.T) {
	// J2000.0 is noon on 1 January 2000.
	if got := FixedFromJD(2451545.0); got != GregorianToFixed(2000, January, 1) {
		t.Errorf("FixedFromJD(2451545.0) = %d, want %d", got, GregorianToFixed(2000, January, 1))
	}

	// JD days begin at noon, so the moment of JD 2451545.0 is RD 730120.5.
	if got := MomentFromJD(2451545.0); math.Abs(got-730120.5) > 1e-9 {
		t.Errorf("MomentFromJD(2451545.0) = %g, want 730120.5", got)
	}

	if got := JDFromFixed(1); got != 1721425.5 {
		t.Errorf("JDFromFixed(1) = %g, want 1721425.5", got)
	}

	for _, jd := range []float64{0, 584283, 2451545.25, 2460000.75} {
		if got := JDFromMoment(MomentFromJD(jd)); math.Abs(got-jd) > 1e-9 {
			t.Errorf("JD round trip %g = %g", jd, got)
		}
	}
}

func TestMJDConversions(t *testing.T) {
	// MJD 0 is 17 November 1858.
	if got := Fixed(MomentFromMJD(0)); got != GregorianToFixed(1858, November, 17) {
		t.Errorf("MJD 0 = RD %d, want %d", got, GregorianToFixed(1858, November, 17))
	}

	for _, mjd := range []float64{0, 40587, 60310.5} {
		if got := MJDFromMoment(MomentFromMJD(mjd)); math.Abs(got-mjd) > 1e-9 {
			t.Errorf("MJD round trip %g = %g", mjd, got)
		}
	}
}
