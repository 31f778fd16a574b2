package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/octobees/voice-concierge/internal/entity"
)

// reviewLimit is the cut-off for spoken review snippets.
const reviewLimit = 150

// priceDescriptors index by price ordinal minus one.
var priceDescriptors = [...]string{"inexpensive", "moderate", "expensive", "very expensive"}

// genericTags are category values every restaurant carries; speaking them
// adds nothing.
var genericTags = map[string]struct{}{
	"restaurant":        {},
	"food":              {},
	"point_of_interest": {},
	"establishment":     {},
	"store":             {},
	"meal_takeaway":     {},
	"meal_delivery":     {},
}

// FormatSearchResults renders up to five lookup results as a numbered,
// speech-friendly list. An empty result set yields the fixed "couldn't
// find" sentence for the searched location.
func FormatSearchResults(location, cuisine string, results []entity.PlaceSummary) string {
	cuisinePrefix := ""
	if cuisine != "" {
		cuisinePrefix = cuisine + " "
	}

	if len(results) == 0 {
		return fmt.Sprintf("I couldn't find any %srestaurants in %s. This might be due to an API issue or the location might need to be more specific. Could you try again with a different search?", cuisinePrefix, location)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d %srestaurants in %s:\n\n", len(results), cuisinePrefix, location)

	for i, r := range results {
		parts := []string{r.Name}
		if r.Rating > 0 {
			parts = append(parts, formatRating(r.Rating)+" stars")
		} else {
			parts = append(parts, "No rating")
		}
		if r.PriceLevel != nil {
			parts = append(parts, priceDescriptor(*r.PriceLevel))
		} else {
			parts = append(parts, "Price not available")
		}
		if r.Address != "" {
			parts = append(parts, r.Address)
		}
		if r.OpenNow != nil {
			if *r.OpenNow {
				parts = append(parts, "open now")
			} else {
				parts = append(parts, "closed now")
			}
		}
		if tags := FilterTags(r.Types); len(tags) > 0 {
			parts = append(parts, strings.Join(tags, ", "))
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.Join(parts, " - "))
	}

	b.WriteString("\nWould you like more details about any of these restaurants?")
	return b.String()
}

// FormatDetails renders a details record as flowing speech. The region
// hint controls how phone numbers are read out.
func FormatDetails(d *entity.PlaceDetails, phoneRegion string) string {
	var b strings.Builder
	b.WriteString(d.Name + " ")

	if d.Rating > 0 {
		fmt.Fprintf(&b, "has a rating of %s stars. ", formatRating(d.Rating))
	}
	if d.PriceLevel != nil {
		fmt.Fprintf(&b, "It's %s. ", priceDescriptor(*d.PriceLevel))
	}
	if d.Address != "" {
		fmt.Fprintf(&b, "It's located at %s. ", d.Address)
	}
	if d.OpenNow != nil {
		status := "currently open"
		if !*d.OpenNow {
			status = "currently closed"
		}
		fmt.Fprintf(&b, "The restaurant is %s. ", status)
	}
	if d.Phone != nil {
		fmt.Fprintf(&b, "Their phone number is %s. ", speakablePhone(*d.Phone, phoneRegion))
	}
	if d.Website != nil {
		b.WriteString("They have a website available. ")
	}
	if d.ReviewSnippet != "" {
		fmt.Fprintf(&b, "One recent review says: %s ", TruncateReview(d.ReviewSnippet))
	}

	b.WriteString("Would you like me to provide the phone number so you can make a reservation?")
	return b.String()
}

// TruncateReview cuts review text at 150 characters, appending an ellipsis
// when anything was dropped. Shorter text passes through unchanged.
func TruncateReview(text string) string {
	runes := []rune(text)
	if len(runes) <= reviewLimit {
		return text
	}
	return string(runes[:reviewLimit]) + "..."
}

// FilterTags drops the generic category tags and rewrites separator
// characters so the rest read naturally.
func FilterTags(types []string) []string {
	if len(types) == 0 {
		return nil
	}
	tags := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, generic := genericTags[t]; generic {
			continue
		}
		tags = append(tags, strings.ReplaceAll(t, "_", " "))
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func priceDescriptor(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(priceDescriptors) {
		level = len(priceDescriptors)
	}
	return priceDescriptors[level-1]
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

// speakablePhone reformats a phone number into its national layout, which
// speech synthesis reads digit group by digit group. Unparseable numbers
// pass through as-is.
func speakablePhone(raw, region string) string {
	number, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.NATIONAL)
}
