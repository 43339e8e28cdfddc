// Package export renders stored events as iCalendar feeds.
package export

import (
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"calendrica/internal/caldate"
	"calendrica/internal/calendar"
	"calendrica/internal/database"
)

// YearFeed renders a year's events as an iCalendar document. Events are
// published as all-day entries on the civil date the event falls on.
func YearFeed(year int, events []database.Event) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//calendrica//event feed//EN")
	cal.SetName(fmt.Sprintf("Calendrica %d", year))

	stamp := time.Now().UTC()
	for _, e := range events {
		ev := cal.AddEvent(fmt.Sprintf("%s-%d@calendrica", e.Name, e.Year))
		ev.SetDtStampTime(stamp)
		ev.SetSummary(summary(e.Name))
		ev.SetDescription(fmt.Sprintf("%s (RD %g)", e.Gregorian, e.RD))

		start := caldate.TimeFromFixed(calendar.Fixed(e.RD))
		ev.SetAllDayStartAt(start)
		ev.SetAllDayEndAt(start.AddDate(0, 0, 1))
	}

	return cal.Serialize()
}

// summary turns a stored event name like "march-equinox" into a
// display string.
func summary(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
