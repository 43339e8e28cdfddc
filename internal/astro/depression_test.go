package astro

import (
	"math"
	"testing"

	"calendrica/internal/calendar"
)

func TestDawnDuskCairoEquinox(t *testing.T) {
	date := calendar.GregorianToFixed(2024, calendar.March, 20)

	dawn, ok := Dawn(date, Cairo, CivilTwilight)
	if !ok {
		t.Fatal("no civil dawn at Cairo on the equinox")
	}
	if frac := dawn - float64(date); frac < 0.1 || frac > 0.35 {
		t.Errorf("dawn fraction = %g, want early morning", frac)
	}

	dusk, ok := Dusk(date, Cairo, CivilTwilight)
	if !ok {
		t.Fatal("no civil dusk at Cairo on the equinox")
	}
	if frac := dusk - float64(date); frac < 0.65 || frac > 0.9 {
		t.Errorf("dusk fraction = %g, want evening", frac)
	}

	if dawn >= dusk {
		t.Errorf("dawn %g not before dusk %g", dawn, dusk)
	}

	// Deeper depression angles push dawn earlier and dusk later.
	nautical, ok := Dawn(date, Cairo, NauticalTwilight)
	if !ok {
		t.Fatal("no nautical dawn at Cairo on the equinox")
	}
	if nautical >= dawn {
		t.Errorf("nautical dawn %g not before civil dawn %g", nautical, dawn)
	}
}

func TestDawnPolarNight(t *testing.T) {
	// At 70N around the winter solstice the sun stays too far below the
	// horizon for sunrise; the search must report absence, not an answer.
	arctic, err := NewLocation("arctic", 70, 19, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	date := calendar.GregorianToFixed(2023, calendar.December, 21)

	if _, ok := Dawn(date, arctic, 0.8333); ok {
		t.Error("sunrise reported during polar night")
	}
	if _, ok := Dusk(date, arctic, 0.8333); ok {
		t.Error("sunset reported during polar night")
	}

	// Civil twilight does still occur there.
	if _, ok := Dawn(date, arctic, CivilTwilight); !ok {
		t.Error("no civil dawn at 70N; twilight should still occur")
	}
}

func TestSineOffsetDegenerate(t *testing.T) {
	arctic, err := NewLocation("arctic", 70, 19, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	moment := float64(calendar.GregorianToFixed(2023, calendar.December, 21))
	if v := SineOffset(moment, arctic, 0.8333); math.Abs(v) <= 1 {
		t.Errorf("SineOffset = %g, want out of [-1, 1] during polar night", v)
	}
}

func TestMomentOfDepressionNeverReportsUnconverged(t *testing.T) {
	// Every reported moment must satisfy the 30-second fixed-point
	// criterion, including at latitudes near the polar limit where the
	// estimate is slow to settle. A search that runs out of passes
	// reports absence instead.
	solstice := calendar.GregorianToFixed(2023, calendar.December, 21)
	for _, lat := range []float64{0, 35, 55, 64, 65.5, 66, 66.5, 67} {
		loc, err := NewLocation("borderline", lat, 19, 0, 1)
		if err != nil {
			t.Fatal(err)
		}
		for _, angle := range []float64{0.8333, CivilTwilight} {
			m, ok := MomentOfDepression(float64(solstice)+0.25, loc, angle, true)
			if !ok {
				continue
			}
			again, ok := ApproxMomentOfDepression(m, loc, angle, true)
			if !ok {
				t.Errorf("lat %g angle %g: reported moment %g has no solution on re-solve", lat, angle, m)
				continue
			}
			if math.Abs(again-m) >= depressionTolerance {
				t.Errorf("lat %g angle %g: reported moment %g off its fixed point by %g days",
					lat, angle, m, math.Abs(again-m))
			}
		}
	}
}

func TestMomentOfDepressionConverges(t *testing.T) {
	date := calendar.GregorianToFixed(2024, calendar.June, 1)
	approx := float64(date) + 0.25

	m1, ok := MomentOfDepression(approx, Cairo, CivilTwilight, true)
	if !ok {
		t.Fatal("no morning depression moment")
	}
	m2, ok := MomentOfDepression(m1, Cairo, CivilTwilight, true)
	if !ok {
		t.Fatal("refinement lost the solution")
	}
	if math.Abs(m1-m2) > depressionTolerance {
		t.Errorf("fixed point not stable: %g vs %g", m1, m2)
	}
}
