package export

import (
	"strings"
	"testing"

	"calendrica/internal/database"
)

func TestYearFeed(t *testing.T) {
	events := []database.Event{
		{Year: 2024, Name: "march-equinox", RD: 738965.13, Gregorian: "2024-03-20T03:06:00.000+00:00"},
		{Year: 2024, Name: "easter", RD: 738976, Gregorian: "2024-03-31"},
	}

	feed := YearFeed(2024, events)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"METHOD:PUBLISH",
		"SUMMARY:Easter",
		"SUMMARY:March Equinox",
		"UID:easter-2024@calendrica",
		"DTSTART;VALUE=DATE:20240331",
		"DTEND;VALUE=DATE:20240401",
	} {
		if !strings.Contains(feed, want) {
			t.Errorf("feed missing %q", want)
		}
	}

	if got := strings.Count(feed, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("VEVENT count = %d, want 2", got)
	}
}

func TestYearFeedEmpty(t *testing.T) {
	feed := YearFeed(2024, nil)
	if !strings.Contains(feed, "BEGIN:VCALENDAR") {
		t.Error("empty feed is not a calendar")
	}
	if strings.Contains(feed, "BEGIN:VEVENT") {
		t.Error("empty feed has events")
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"easter", "Easter"},
		{"orthodox-easter", "Orthodox Easter"},
		{"december-solstice", "December Solstice"},
	}
	for _, tt := range tests {
		if got := summary(tt.name); got != tt.want {
			t.Errorf("summary(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
