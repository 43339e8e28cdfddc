package astro

import (
	"math"
	"testing"

	"calendrica/internal/calendar"
)

func TestSeasonMoment(t *testing.T) {
	tests := []struct {
		season           float64
		gy, gMonth, gDay int
	}{
		{Spring, 2024, calendar.March, 20},
		{Summer, 2024, calendar.June, 20},
		{Autumn, 2024, calendar.September, 22},
		{Winter, 2024, calendar.December, 21},
		{Spring, 2025, calendar.March, 20},
	}

	for _, tt := range tests {
		moment := SeasonMoment(tt.gy, tt.season)
		want := calendar.GregorianToFixed(tt.gy, tt.gMonth, tt.gDay)
		if got := calendar.Fixed(moment); got != want {
			t.Errorf("SeasonMoment(%d, %g) on RD %d, want %d", tt.gy, tt.season, got, want)
		}
	}
}

func TestSolarLongitudeAtSeasons(t *testing.T) {
	for _, season := range []float64{Spring, Summer, Autumn, Winter} {
		moment := SeasonMoment(2024, season)
		lon := SolarLongitude(moment)
		if diff := calendar.Mod3(lon-season, -180, 180); math.Abs(diff) > 0.1 {
			t.Errorf("solar longitude at season %g = %g (off by %g deg)", season, lon, diff)
		}
	}
}

func TestSolarDeclinationAtSolstices(t *testing.T) {
	june := SolarDeclination(SeasonMoment(2024, Summer))
	if june < 23.3 || june > 23.6 {
		t.Errorf("June solstice declination = %g, want about 23.44", june)
	}
	dec := SolarDeclination(SeasonMoment(2024, Winter))
	if dec > -23.3 || dec < -23.6 {
		t.Errorf("December solstice declination = %g, want about -23.44", dec)
	}
}

func TestSeasonOnOrBefore(t *testing.T) {
	june1 := float64(calendar.GregorianToFixed(2024, calendar.June, 1))
	moment := SeasonOnOrBefore(june1, Spring)
	if got, want := calendar.Fixed(moment), calendar.GregorianToFixed(2024, calendar.March, 20); got != want {
		t.Errorf("SeasonOnOrBefore(1 June 2024, Spring) on RD %d, want %d", got, want)
	}

	// A moment before the equinox must reach back to the prior year.
	feb1 := float64(calendar.GregorianToFixed(2024, calendar.February, 1))
	moment = SeasonOnOrBefore(feb1, Spring)
	if got, want := calendar.Fixed(moment), calendar.GregorianToFixed(2023, calendar.March, 20); got != want {
		t.Errorf("SeasonOnOrBefore(1 Feb 2024, Spring) on RD %d, want %d", got, want)
	}
}

func TestEstimatePriorSolarLongitude(t *testing.T) {
	t0 := float64(calendar.GregorianToFixed(2024, calendar.July, 1))
	est := EstimatePriorSolarLongitude(Spring, t0)

	if est > t0 {
		t.Fatalf("estimate %g after moment %g", est, t0)
	}
	if t0-est > 370 {
		t.Fatalf("estimate %g more than a year before %g", est, t0)
	}
	if diff := calendar.Mod3(SolarLongitude(est)-Spring, -180, 180); math.Abs(diff) > 5 {
		t.Errorf("longitude at estimate off by %g deg", diff)
	}
}
