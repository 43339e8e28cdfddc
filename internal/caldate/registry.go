package caldate

import (
	"errors"
	"fmt"
	"math"

	"calendrica/internal/astro"
	"calendrica/internal/calendar"
)

// ErrNotInvertible marks cyclic representations (Haab, Tzolkin) whose
// designations recur forever and so do not determine a fixed date.
var ErrNotInvertible = errors.New("representation does not determine a unique fixed date")

// System is one calendar's conversion pair as driven by the API and the
// fixture generator. Tuples are numeric: the named base fields, plus
// hour/minute/second when HasTime is set and the moment carries a
// fractional day.
type System struct {
	Name      string
	Fields    []string
	HasTime   bool
	ToFixed   func(parts []float64) (float64, error)
	FromFixed func(t float64) ([]float64, error)
}

// Lookup finds a registered calendar by name.
func Lookup(name string) (System, bool) {
	for _, s := range systems {
		if s.Name == name {
			return s, true
		}
	}
	return System{}, false
}

// Systems returns the registered calendars in a stable order.
func Systems() []System {
	out := make([]System, len(systems))
	copy(out, systems)
	return out
}

// splitDate applies the clock carry so that e.g. 23:59:59.9995 rolls the
// date forward instead of reporting second 60.
func splitDate(t float64) (int, calendar.TimeOfDay) {
	carry, clock := calendar.TimeFromMoment(t)
	return calendar.Fixed(t) + carry, clock
}

// intParts checks that a tuple has the base fields (optionally followed
// by hour/minute/second) and returns the base fields as integers.
func intParts(parts []float64, base int, timeOK bool) ([]int, error) {
	if len(parts) != base && !(timeOK && len(parts) == base+3) {
		return nil, fmt.Errorf("want %d fields, got %d", base, len(parts))
	}
	out := make([]int, base)
	for i := 0; i < base; i++ {
		if parts[i] != math.Trunc(parts[i]) {
			return nil, fmt.Errorf("field %d must be an integer, got %g", i, parts[i])
		}
		out[i] = int(parts[i])
	}
	return out, nil
}

// momentFrom rebuilds a moment from a whole fixed date plus any trailing
// hour/minute/second fields.
func momentFrom(fixed int, parts []float64, base int) float64 {
	t := float64(fixed)
	if len(parts) == base+3 {
		t += parts[base]/24 + parts[base+1]/1440 + parts[base+2]/86400
	}
	return t
}

// ymdSystem builds a System for the year/month/day calendars.
func ymdSystem(name string, to func(y, m, d int) int, from func(date int) (y, m, d int)) System {
	return System{
		Name:    name,
		Fields:  []string{"year", "month", "day"},
		HasTime: true,
		ToFixed: func(parts []float64) (float64, error) {
			p, err := intParts(parts, 3, true)
			if err != nil {
				return 0, err
			}
			return momentFrom(to(p[0], p[1], p[2]), parts, 3), nil
		},
		FromFixed: func(t float64) ([]float64, error) {
			date, clock := splitDate(t)
			y, m, d := from(date)
			return []float64{float64(y), float64(m), float64(d),
				float64(clock.Hour), float64(clock.Minute), clock.Second}, nil
		},
	}
}

var systems = []System{
	ymdSystem("gregorian", calendar.GregorianToFixed, func(date int) (int, int, int) {
		g := calendar.GregorianFromFixed(date)
		return g.Year, g.Month, g.Day
	}),
	ymdSystem("julian", calendar.JulianToFixed, func(date int) (int, int, int) {
		j := calendar.JulianFromFixed(date)
		return j.Year, j.Month, j.Day
	}),
	romanSystem(),
	isoSystem(),
	ymdSystem("egyptian", calendar.EgyptianToFixed, func(date int) (int, int, int) {
		e := calendar.EgyptianFromFixed(date)
		return e.Year, e.Month, e.Day
	}),
	ymdSystem("armenian", calendar.ArmenianToFixed, func(date int) (int, int, int) {
		a := calendar.ArmenianFromFixed(date)
		return a.Year, a.Month, a.Day
	}),
	ymdSystem("coptic", calendar.CopticToFixed, func(date int) (int, int, int) {
		c := calendar.CopticFromFixed(date)
		return c.Year, c.Month, c.Day
	}),
	ymdSystem("ethiopic", calendar.EthiopicToFixed, func(date int) (int, int, int) {
		e := calendar.EthiopicFromFixed(date)
		return e.Year, e.Month, e.Day
	}),
	ymdSystem("islamic", calendar.IslamicToFixed, func(date int) (int, int, int) {
		i := calendar.IslamicFromFixed(date)
		return i.Year, i.Month, i.Day
	}),
	observationalIslamicSystem(),
	ymdSystem("hebrew", calendar.HebrewToFixed, func(date int) (int, int, int) {
		h := calendar.HebrewFromFixed(date)
		return h.Year, h.Month, h.Day
	}),
	ymdSystem("persian", astro.PersianToFixed, func(date int) (int, int, int) {
		p := astro.PersianFromFixed(date)
		return p.Year, p.Month, p.Day
	}),
	ymdSystem("french", astro.FrenchToFixed, func(date int) (int, int, int) {
		f := astro.FrenchFromFixed(date)
		return f.Year, f.Month, f.Day
	}),
	ymdSystem("french-modified", astro.ModifiedFrenchToFixed, func(date int) (int, int, int) {
		f := astro.ModifiedFrenchFromFixed(date)
		return f.Year, f.Month, f.Day
	}),
	longCountSystem(),
	haabSystem(),
	tzolkinSystem(),
}

func romanSystem() System {
	return System{
		Name:   "roman",
		Fields: []string{"year", "month", "event", "count", "leap"},
		ToFixed: func(parts []float64) (float64, error) {
			p, err := intParts(parts, 5, false)
			if err != nil {
				return 0, err
			}
			if p[2] < int(calendar.Kalends) || p[2] > int(calendar.Ides) {
				return 0, fmt.Errorf("event must be 1 (Kalends), 2 (Nones) or 3 (Ides), got %d", p[2])
			}
			return float64(calendar.RomanToFixed(calendar.RomanDate{
				Year:  p[0],
				Month: p[1],
				Event: calendar.RomanEvent(p[2]),
				Count: p[3],
				Leap:  p[4] != 0,
			})), nil
		},
		FromFixed: func(t float64) ([]float64, error) {
			date, _ := splitDate(t)
			r := calendar.RomanFromFixed(date)
			leap := 0.0
			if r.Leap {
				leap = 1
			}
			return []float64{float64(r.Year), float64(r.Month), float64(r.Event),
				float64(r.Count), leap}, nil
		},
	}
}

func isoSystem() System {
	return System{
		Name:    "iso",
		Fields:  []string{"year", "week", "day"},
		HasTime: true,
		ToFixed: func(parts []float64) (float64, error) {
			p, err := intParts(parts, 3, true)
			if err != nil {
				return 0, err
			}
			return momentFrom(calendar.ISOToFixed(p[0], p[1], p[2]), parts, 3), nil
		},
		FromFixed: func(t float64) ([]float64, error) {
			date, clock := splitDate(t)
			d := calendar.ISOFromFixed(date)
			return []float64{float64(d.Year), float64(d.Week), float64(d.Day),
				float64(clock.Hour), float64(clock.Minute), clock.Second}, nil
		},
	}
}

func observationalIslamicSystem() System {
	return ObservationalIslamicAt(astro.Cairo)
}

// ObservationalIslamicAt returns the observational Islamic calendar as
// sighted from loc. The registered system observes from Cairo; the API
// substitutes a configured site on request.
func ObservationalIslamicAt(loc astro.Location) System {
	return System{
		Name:   "islamic-observational",
		Fields: []string{"year", "month", "day"},
		ToFixed: func(parts []float64) (float64, error) {
			p, err := intParts(parts, 3, false)
			if err != nil {
				return 0, err
			}
			fixed, err := astro.ObservationalIslamicToFixedAt(p[0], p[1], p[2], loc)
			if err != nil {
				return 0, err
			}
			return float64(fixed), nil
		},
		FromFixed: func(t float64) ([]float64, error) {
			date, _ := splitDate(t)
			d, err := astro.ObservationalIslamicFromFixedAt(date, loc)
			if err != nil {
				return nil, err
			}
			return []float64{float64(d.Year), float64(d.Month), float64(d.Day)}, nil
		},
	}
}

func longCountSystem() System {
	return System{
		Name:   "mayan-long-count",
		Fields: []string{"baktun", "katun", "tun", "uinal", "kin"},
		ToFixed: func(parts []float64) (float64, error) {
			p, err := intParts(parts, 5, false)
			if err != nil {
				return 0, err
			}
			return float64(calendar.MayanLongCountToFixed(calendar.MayanLongCount{
				Baktun: p[0], Katun: p[1], Tun: p[2], Uinal: p[3], Kin: p[4],
			})), nil
		},
		FromFixed: func(t float64) ([]float64, error) {
			date, _ := splitDate(t)
			lc := calendar.MayanLongCountFromFixed(date)
			return []float64{float64(lc.Baktun), float64(lc.Katun),
				float64(lc.Tun), float64(lc.Uinal), float64(lc.Kin)}, nil
		},
	}
}

func haabSystem() System {
	return System{
		Name:   "mayan-haab",
		Fields: []string{"month", "day"},
		ToFixed: func(parts []float64) (float64, error) {
			return 0, ErrNotInvertible
		},
		FromFixed: func(t float64) ([]float64, error) {
			date, _ := splitDate(t)
			h := calendar.MayanHaabFromFixed(date)
			return []float64{float64(h.Month), float64(h.Day)}, nil
		},
	}
}

func tzolkinSystem() System {
	return System{
		Name:   "mayan-tzolkin",
		Fields: []string{"number", "name"},
		ToFixed: func(parts []float64) (float64, error) {
			return 0, ErrNotInvertible
		},
		FromFixed: func(t float64) ([]float64, error) {
			date, _ := splitDate(t)
			tz := calendar.MayanTzolkinFromFixed(date)
			return []float64{float64(tz.Number), float64(tz.Name)}, nil
		},
	}
}
