package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/octobees/voice-concierge/internal/dto"
	"github.com/octobees/voice-concierge/internal/entity"
)

// Peak dinner band: requests landing on these hours get the booking-ahead
// advisory.
const (
	peakHourStart = 19
	peakHourEnd   = 20
)

const largePartyThreshold = 6

const (
	peakAdvisory = "That's during peak dinner hours, so I'd recommend booking ahead to be safe. "

	largePartyAdvisory = "For a party of six or more, restaurants usually ask for advance notice, so mention the group size when you call. "
)

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

var timePattern = regexp.MustCompile(`^\s*(\d{1,2})(?::(\d{2}))?\s*([ap]\.?m\.?)?\s*$`)

// FormatAvailability answers a check_availability request from the place's
// posted weekday hours. It never errors; anything it cannot interpret
// turns into a clarifying sentence.
func FormatAvailability(args dto.AvailabilityArgs, d *entity.PlaceDetails) string {
	weekday, ok := parseWeekday(args.Date)
	if !ok {
		return fmt.Sprintf("I couldn't understand the date %s. Could you give it to me as year, month and day?", args.Date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I found for %s on %s. ", d.Name, weekday)

	if hours := weekdayHoursLine(d.WeekdayHours, weekday); hours != "" {
		fmt.Fprintf(&b, "Their %s hours are %s. ", weekday, hours)
	} else {
		fmt.Fprintf(&b, "I couldn't find their %s hours, so it's worth calling to confirm. ", weekday)
	}

	hour, hourOK := parseHour(args.Time)
	if hourOK && hour >= peakHourStart && hour <= peakHourEnd {
		b.WriteString(peakAdvisory)
	}
	if args.PartySize >= largePartyThreshold {
		b.WriteString(largePartyAdvisory)
	}
	if !hourOK {
		fmt.Fprintf(&b, "I couldn't make out the time %s, so double-check their hours when you call. ", args.Time)
	}

	fmt.Fprintf(&b, "Would you like their phone number to book a table for %d?", args.PartySize)
	return b.String()
}

// parseWeekday resolves the requested calendar day to a weekday name. The
// agent usually sends an ISO date but sometimes passes the weekday itself.
func parseWeekday(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Weekday().String(), true
		}
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(raw, d.String()) {
			return d.String(), true
		}
	}
	return "", false
}

// weekdayHoursLine finds the hours entry whose label matches the weekday,
// comparing case-insensitively, and strips the label itself.
func weekdayHoursLine(lines []string, weekday string) string {
	needle := strings.ToLower(weekday)
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		if idx := strings.Index(line, ":"); idx >= 0 {
			return strings.TrimSpace(line[idx+1:])
		}
		return strings.TrimSpace(line)
	}
	return ""
}

// parseHour extracts the 24h hour from "19:30", "7pm", "7:30 PM" and the
// like.
func parseHour(raw string) (int, bool) {
	m := timePattern.FindStringSubmatch(strings.ToLower(raw))
	if m == nil {
		return 0, false
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	switch strings.ReplaceAll(m[3], ".", "") {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}
