package entity

// PlaceSummary is the projection of a single lookup result. It lives only
// for the duration of the request that produced it.
type PlaceSummary struct {
	Name       string   `json:"name"`
	PlaceID    string   `json:"place_id"`
	Address    string   `json:"address"`
	Rating     float64  `json:"rating,omitempty"`
	PriceLevel *int     `json:"price_level,omitempty"`
	OpenNow    *bool    `json:"open_now,omitempty"`
	Types      []string `json:"types,omitempty"`
}

// PlaceDetails carries the extended fields returned by a details lookup.
type PlaceDetails struct {
	Name          string   `json:"name"`
	Phone         *string  `json:"phone,omitempty"`
	Address       string   `json:"address"`
	Website       *string  `json:"website,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	PriceLevel    *int     `json:"price_level,omitempty"`
	OpenNow       *bool    `json:"open_now,omitempty"`
	WeekdayHours  []string `json:"weekday_hours,omitempty"`
	ReviewSnippet string   `json:"review_snippet,omitempty"`
}
