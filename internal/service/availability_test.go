package service

import (
	"strings"
	"testing"

	"github.com/octobees/voice-concierge/internal/dto"
	"github.com/octobees/voice-concierge/internal/entity"
)

func availabilityArgs(date, timeOfDay string, party int) dto.AvailabilityArgs {
	return dto.AvailabilityArgs{
		RestaurantName: "Franklin Barbecue",
		Location:       "Austin",
		Date:           date,
		Time:           timeOfDay,
		PartySize:      party,
	}
}

func franklinDetails() *entity.PlaceDetails {
	return &entity.PlaceDetails{
		Name: "Franklin Barbecue",
		WeekdayHours: []string{
			"Monday: Closed",
			"Tuesday: 11:00 AM – 3:00 PM",
			"Wednesday: 11:00 AM – 3:00 PM",
			"Thursday: 11:00 AM – 3:00 PM",
			"Friday: 11:00 AM – 3:00 PM",
			"Saturday: 11:00 AM – 3:00 PM",
			"Sunday: 11:00 AM – 3:00 PM",
		},
	}
}

func TestFormatAvailabilityMatchesWeekday(t *testing.T) {
	// 2026-08-29 is a Saturday.
	got := FormatAvailability(availabilityArgs("2026-08-29", "12:00", 2), franklinDetails())

	if !strings.Contains(got, "on Saturday") {
		t.Fatalf("expected weekday in response: %q", got)
	}
	if !strings.Contains(got, "Their Saturday hours are 11:00 AM – 3:00 PM.") {
		t.Fatalf("expected Saturday hours line: %q", got)
	}
	if strings.Contains(got, "peak dinner") {
		t.Fatalf("peak advisory must not appear at noon: %q", got)
	}
	if !strings.Contains(got, "book a table for 2") {
		t.Fatalf("expected party size in closing question: %q", got)
	}
}

func TestFormatAvailabilityWeekdayCaseInsensitive(t *testing.T) {
	d := franklinDetails()
	for i, line := range d.WeekdayHours {
		d.WeekdayHours[i] = strings.ToUpper(line)
	}
	got := FormatAvailability(availabilityArgs("2026-08-29", "12:00", 2), d)
	if !strings.Contains(got, "Their Saturday hours are") {
		t.Fatalf("expected case-insensitive weekday match: %q", got)
	}
}

func TestFormatAvailabilityPeakAdvisoryBounds(t *testing.T) {
	cases := []struct {
		timeOfDay string
		peak      bool
	}{
		{"18:59", false},
		{"19:00", true},
		{"19:30", true},
		{"20:45", true},
		{"21:00", false},
		{"7pm", true},
		{"7 p.m.", true},
		{"6:30 pm", false},
	}
	for _, tc := range cases {
		t.Run(tc.timeOfDay, func(t *testing.T) {
			got := FormatAvailability(availabilityArgs("2026-08-29", tc.timeOfDay, 2), franklinDetails())
			hasAdvisory := strings.Contains(got, "peak dinner hours")
			if hasAdvisory != tc.peak {
				t.Fatalf("time %s: peak advisory = %v, want %v (%q)", tc.timeOfDay, hasAdvisory, tc.peak, got)
			}
		})
	}
}

func TestFormatAvailabilityLargePartyAdvisory(t *testing.T) {
	got := FormatAvailability(availabilityArgs("2026-08-29", "12:00", 6), franklinDetails())
	if !strings.Contains(got, "party of six or more") {
		t.Fatalf("expected large party advisory: %q", got)
	}

	got = FormatAvailability(availabilityArgs("2026-08-29", "12:00", 5), franklinDetails())
	if strings.Contains(got, "party of six or more") {
		t.Fatalf("advisory must not appear for five: %q", got)
	}
}

func TestFormatAvailabilityUnknownDate(t *testing.T) {
	got := FormatAvailability(availabilityArgs("whenever", "19:00", 2), franklinDetails())
	if !strings.Contains(got, "couldn't understand the date") {
		t.Fatalf("expected date clarification: %q", got)
	}
}

func TestFormatAvailabilityMissingHoursLine(t *testing.T) {
	d := &entity.PlaceDetails{Name: "Pop Up Kitchen"}
	got := FormatAvailability(availabilityArgs("2026-08-29", "12:00", 2), d)
	if !strings.Contains(got, "couldn't find their Saturday hours") {
		t.Fatalf("expected missing-hours sentence: %q", got)
	}
}

func TestParseWeekdayAcceptsWeekdayName(t *testing.T) {
	day, ok := parseWeekday("friday")
	if !ok || day != "Friday" {
		t.Fatalf("expected Friday, got %q ok=%v", day, ok)
	}
	if _, ok := parseWeekday(""); ok {
		t.Fatalf("empty date must not parse")
	}
}

func TestParseHour(t *testing.T) {
	cases := []struct {
		raw  string
		hour int
		ok   bool
	}{
		{"19:00", 19, true},
		{"7pm", 19, true},
		{"7:15 PM", 19, true},
		{"12am", 0, true},
		{"12 pm", 12, true},
		{"8", 8, true},
		{"25:00", 0, false},
		{"supper time", 0, false},
	}
	for _, tc := range cases {
		hour, ok := parseHour(tc.raw)
		if hour != tc.hour || ok != tc.ok {
			t.Fatalf("parseHour(%q) = (%d, %v), want (%d, %v)", tc.raw, hour, ok, tc.hour, tc.ok)
		}
	}
}
