package service

import (
	"strconv"
	"strings"

	"github.com/octobees/voice-concierge/internal/dto"
)

// Clarifying prompts returned verbatim when a required argument is missing.
// The agent speaks these back to the caller, so they stay fixed literals.
const (
	PromptNeedLocation = "I need a location to search for restaurants. Could you please tell me which city or area you're interested in?"

	PromptNeedRestaurant = "Which restaurant would you like to know more about? Please tell me the restaurant name and the city it's in."

	PromptNeedAvailability = "To check availability, I need the restaurant name, its location, and the date and time you'd like to go. Could you share those details?"
)

const defaultPartySize = 2

// ValidateSearch checks a search_restaurants argument map. When a required
// field is absent it returns the clarifying prompt instead of arguments.
func ValidateSearch(args map[string]any) (dto.SearchArgs, string) {
	location := stringArg(args, "location")
	if location == "" {
		return dto.SearchArgs{}, PromptNeedLocation
	}
	return dto.SearchArgs{
		Location:   location,
		Cuisine:    stringArg(args, "cuisine"),
		PriceRange: stringArg(args, "price_range"),
		PartySize:  partySize(args),
	}, ""
}

// ValidateDetails checks a get_restaurant_details argument map.
func ValidateDetails(args map[string]any) (dto.DetailsArgs, string) {
	name := stringArg(args, "restaurant_name")
	location := stringArg(args, "location")
	if name == "" || location == "" {
		return dto.DetailsArgs{}, PromptNeedRestaurant
	}
	return dto.DetailsArgs{RestaurantName: name, Location: location}, ""
}

// ValidateAvailability checks a check_availability argument map.
func ValidateAvailability(args map[string]any) (dto.AvailabilityArgs, string) {
	out := dto.AvailabilityArgs{
		RestaurantName: stringArg(args, "restaurant_name"),
		Location:       stringArg(args, "location"),
		Date:           stringArg(args, "date"),
		Time:           stringArg(args, "time"),
		PartySize:      partySize(args),
	}
	if out.RestaurantName == "" || out.Location == "" || out.Date == "" || out.Time == "" {
		return dto.AvailabilityArgs{}, PromptNeedAvailability
	}
	return out, ""
}

// stringArg pulls a trimmed string out of the loosely typed argument map.
func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	val, ok := args[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(val)
}

// partySize coerces the party_size argument. The agent may send it as a
// JSON number or as spoken-digit text; anything unusable falls back to 2.
func partySize(args map[string]any) int {
	if args == nil {
		return defaultPartySize
	}
	switch v := args["party_size"].(type) {
	case float64:
		if v >= 1 {
			return int(v)
		}
	case int:
		if v >= 1 {
			return v
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 1 {
			return n
		}
	}
	return defaultPartySize
}
