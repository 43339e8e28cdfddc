package astro

import (
	"calendrica/internal/calendar"
)

// The observational Islamic calendar starts each month at the first
// crescent sighting. Cairo, the classical seat of the observation, is
// the default; the At variants observe from any site.

// ObservationalIslamicToFixedAt converts an observational Islamic date
// to a fixed date by locating the phasis nearest the month's mean
// midpoint, as sighted from loc.
func ObservationalIslamicToFixedAt(year, month, day int, loc Location) (int, error) {
	midmonth := calendar.IslamicEpoch +
		calendar.Floor((float64(12*(year-1)+month)-0.5)*MeanSynodicMonth)
	crescent, err := PhasisOnOrBefore(midmonth, loc)
	if err != nil {
		return 0, err
	}
	return crescent + day - 1, nil
}

// ObservationalIslamicFromFixedAt converts a fixed date to an
// observational Islamic date as sighted from loc.
func ObservationalIslamicFromFixedAt(date int, loc Location) (calendar.IslamicDate, error) {
	crescent, err := PhasisOnOrBefore(date, loc)
	if err != nil {
		return calendar.IslamicDate{}, err
	}
	elapsedMonths := calendar.Round(float64(crescent-calendar.IslamicEpoch) / MeanSynodicMonth)
	return calendar.IslamicDate{
		Year:  calendar.Floor(float64(elapsedMonths)/12) + 1,
		Month: calendar.FloorMod(elapsedMonths, 12) + 1,
		Day:   date - crescent + 1,
	}, nil
}

// ObservationalIslamicToFixed converts an observational Islamic date to
// a fixed date using the Cairo observation.
func ObservationalIslamicToFixed(year, month, day int) (int, error) {
	return ObservationalIslamicToFixedAt(year, month, day, Cairo)
}

// ObservationalIslamicFromFixed converts a fixed date to an
// observational Islamic date using the Cairo observation.
func ObservationalIslamicFromFixed(date int) (calendar.IslamicDate, error) {
	return ObservationalIslamicFromFixedAt(date, Cairo)
}
