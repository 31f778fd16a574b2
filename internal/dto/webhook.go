package dto

// WebhookRequest is the envelope posted by the voice-agent platform when a
// conversational function fires. Args stays loosely typed because the agent
// fills it from speech and field types are not guaranteed.
type WebhookRequest struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// WebhookResponse carries the sentence handed back for speech synthesis.
type WebhookResponse struct {
	Response string `json:"response"`
}

// SearchArgs are the validated arguments of a restaurant search.
type SearchArgs struct {
	Location   string
	Cuisine    string
	PriceRange string
	PartySize  int
}

// DetailsArgs are the validated arguments of a details request.
type DetailsArgs struct {
	RestaurantName string
	Location       string
}

// AvailabilityArgs are the validated arguments of an availability check.
type AvailabilityArgs struct {
	RestaurantName string
	Location       string
	Date           string
	Time           string
	PartySize      int
}
