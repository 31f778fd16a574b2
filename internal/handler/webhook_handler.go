package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/voice-concierge/internal/dto"
	"github.com/octobees/voice-concierge/internal/entity"
	"github.com/octobees/voice-concierge/internal/lookup"
	"github.com/octobees/voice-concierge/internal/metrics"
	middlewarepkg "github.com/octobees/voice-concierge/internal/middleware"
	"github.com/octobees/voice-concierge/internal/service"
)

// Webhook function names dispatched on the shared endpoint.
const (
	FunctionSearch       = "search_restaurants"
	FunctionDetails      = "get_restaurant_details"
	FunctionAvailability = "check_availability"
)

// Sentences spoken when something goes wrong. The caller only ever hears
// natural language; status codes and raw errors stay in the logs.
const (
	sentenceBadPayload = "I'm sorry, I couldn't make sense of that request. Could you try again?"

	sentenceInternalError = "I encountered an error while processing your request. Please try again."

	sentenceLookupDenied = "It looks like my restaurant lookup service isn't set up correctly right now. Please try again in a little while."

	sentenceDetailsUnavailable = "I found the restaurant but couldn't retrieve its detailed information. Would you like me to try again?"

	sentenceUnknownFunction = "I received a request I don't recognize. I can search for restaurants, get details about a specific restaurant, or check availability. What would you like to know?"
)

// WebhookHandler answers the voice-agent platform's function calls.
type WebhookHandler struct {
	finder      lookup.Finder
	metrics     *metrics.Metrics
	phoneRegion string
}

// NewWebhookHandler wires the handler. The metrics argument may be nil,
// which disables instrumentation (used by tests).
func NewWebhookHandler(finder lookup.Finder, m *metrics.Metrics, phoneRegion string) *WebhookHandler {
	if phoneRegion == "" {
		phoneRegion = "US"
	}
	return &WebhookHandler{finder: finder, metrics: m, phoneRegion: phoneRegion}
}

// Dispatch handles POST /webhook, routing on the function name in the body.
func (h *WebhookHandler) Dispatch(c echo.Context) error {
	var req dto.WebhookRequest
	if err := c.Bind(&req); err != nil {
		return Speak(c, sentenceBadPayload)
	}

	switch req.Name {
	case FunctionSearch:
		return h.search(c, req.Args)
	case FunctionDetails:
		return h.details(c, req.Args)
	case FunctionAvailability:
		return h.availability(c, req.Args)
	default:
		log.Printf("request_id=%s unknown webhook function %q", middlewarepkg.RequestIDFromContext(c), req.Name)
		return Speak(c, sentenceUnknownFunction)
	}
}

// SearchRestaurants handles POST /webhook/search_restaurants.
func (h *WebhookHandler) SearchRestaurants(c echo.Context) error {
	args, err := bindArgs(c)
	if err != nil {
		return Speak(c, sentenceBadPayload)
	}
	return h.search(c, args)
}

// GetRestaurantDetails handles POST /webhook/get_restaurant_details.
func (h *WebhookHandler) GetRestaurantDetails(c echo.Context) error {
	args, err := bindArgs(c)
	if err != nil {
		return Speak(c, sentenceBadPayload)
	}
	return h.details(c, args)
}

// CheckAvailability handles POST /webhook/check_availability.
func (h *WebhookHandler) CheckAvailability(c echo.Context) error {
	args, err := bindArgs(c)
	if err != nil {
		return Speak(c, sentenceBadPayload)
	}
	return h.availability(c, args)
}

func (h *WebhookHandler) search(c echo.Context, args map[string]any) error {
	c.Set(middlewarepkg.ContextKeyFunction, FunctionSearch)
	h.metrics.ObserveCall(FunctionSearch)

	params, clarify := service.ValidateSearch(args)
	if clarify != "" {
		return Speak(c, clarify)
	}

	q := lookup.Query{Text: service.SearchQuery(params.Location, params.Cuisine)}
	if level, ok := service.PriceLevel(params.PriceRange); ok {
		q.MaxPrice = level
	}

	results, err := h.searchPlaces(c.Request().Context(), q)
	if err != nil {
		return h.speakLookupError(c, err)
	}

	return Speak(c, service.FormatSearchResults(params.Location, params.Cuisine, results))
}

func (h *WebhookHandler) details(c echo.Context, args map[string]any) error {
	c.Set(middlewarepkg.ContextKeyFunction, FunctionDetails)
	h.metrics.ObserveCall(FunctionDetails)

	params, clarify := service.ValidateDetails(args)
	if clarify != "" {
		return Speak(c, clarify)
	}

	details, sentence, err := h.findDetails(c.Request().Context(), params.RestaurantName, params.Location)
	if err != nil {
		return h.speakLookupError(c, err)
	}
	if sentence != "" {
		return Speak(c, sentence)
	}

	return Speak(c, service.FormatDetails(details, h.phoneRegion))
}

func (h *WebhookHandler) availability(c echo.Context, args map[string]any) error {
	c.Set(middlewarepkg.ContextKeyFunction, FunctionAvailability)
	h.metrics.ObserveCall(FunctionAvailability)

	params, clarify := service.ValidateAvailability(args)
	if clarify != "" {
		return Speak(c, clarify)
	}

	details, sentence, err := h.findDetails(c.Request().Context(), params.RestaurantName, params.Location)
	if err != nil {
		return h.speakLookupError(c, err)
	}
	if sentence != "" {
		return Speak(c, sentence)
	}

	return Speak(c, service.FormatAvailability(params, details))
}

// findDetails resolves a restaurant by name and location and fetches its
// details record. The middle return value is a ready-to-speak sentence for
// the "not found" and "details unavailable" outcomes.
func (h *WebhookHandler) findDetails(ctx context.Context, name, location string) (*entity.PlaceDetails, string, error) {
	q := lookup.Query{Text: fmt.Sprintf("%s %s", name, location)}
	results, err := h.searchPlaces(ctx, q)
	if err != nil {
		return nil, "", err
	}
	if len(results) == 0 {
		return nil, fmt.Sprintf("I couldn't find %s. Could you provide more details about its location or check the spelling?", name), nil
	}

	start := time.Now()
	details, err := h.finder.Details(ctx, results[0].PlaceID)
	h.metrics.ObserveLookupDuration(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, lookup.ErrDenied) {
			return nil, "", err
		}
		h.metrics.ObserveLookupError("details")
		return nil, sentenceDetailsUnavailable, nil
	}
	if details == nil {
		return nil, sentenceDetailsUnavailable, nil
	}
	return details, "", nil
}

func (h *WebhookHandler) searchPlaces(ctx context.Context, q lookup.Query) ([]entity.PlaceSummary, error) {
	start := time.Now()
	results, err := h.finder.Search(ctx, q)
	h.metrics.ObserveLookupDuration(time.Since(start).Seconds())
	return results, err
}

func (h *WebhookHandler) speakLookupError(c echo.Context, err error) error {
	log.Printf("request_id=%s lookup failed: %v", middlewarepkg.RequestIDFromContext(c), err)
	if errors.Is(err, lookup.ErrDenied) {
		h.metrics.ObserveLookupError("denied")
		return Speak(c, sentenceLookupDenied)
	}
	h.metrics.ObserveLookupError("upstream")
	return Speak(c, sentenceInternalError)
}

// bindArgs decodes the webhook envelope on the per-function routes. The
// platform posts the same {name, args} body to every endpoint.
func bindArgs(c echo.Context) (map[string]any, error) {
	var req dto.WebhookRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	return req.Args, nil
}
