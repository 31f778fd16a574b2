package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/octobees/voice-concierge/internal/entity"
	"github.com/octobees/voice-concierge/internal/lookup"
)

const (
	// DefaultBaseURL is the legacy Places Web Service root.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

	// maxResults caps how many places a search surfaces to the agent;
	// more than five reads badly over voice.
	maxResults = 5

	detailFields = "name,formatted_phone_number,opening_hours,website,rating,price_level,formatted_address,types,reviews"
)

// HTTPDoer abstracts the HTTP client so tests can stub upstream responses.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Places text-search and details endpoints.
type Client struct {
	client  HTTPDoer
	baseURL string
	apiKey  string
}

// NewClient builds a Places client. A nil HTTP client falls back to a
// default with a 10 second timeout.
func NewClient(client HTTPDoer, baseURL, apiKey string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{client: client, baseURL: baseURL, apiKey: apiKey}
}

type searchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []placeResult `json:"results"`
}

type detailsResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Result       placeResult `json:"result"`
}

type placeResult struct {
	Name             string   `json:"name"`
	PlaceID          string   `json:"place_id"`
	FormattedAddress string   `json:"formatted_address"`
	Phone            string   `json:"formatted_phone_number"`
	Website          string   `json:"website"`
	Rating           float64  `json:"rating"`
	PriceLevel       *int     `json:"price_level"`
	Types            []string `json:"types"`
	OpeningHours     *struct {
		OpenNow     *bool    `json:"open_now"`
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`
	Reviews []struct {
		Text string `json:"text"`
	} `json:"reviews"`
}

// Search runs a text search and returns up to five place summaries. A
// ZERO_RESULTS status is not an error; it yields an empty slice.
func (c *Client) Search(ctx context.Context, q lookup.Query) ([]entity.PlaceSummary, error) {
	params := url.Values{}
	params.Set("query", q.Text)
	params.Set("type", "restaurant")
	params.Set("key", c.apiKey)
	if q.MaxPrice >= 1 && q.MaxPrice <= 4 {
		params.Set("maxprice", strconv.Itoa(q.MaxPrice))
	}

	var payload searchResponse
	if err := c.get(ctx, "/textsearch/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}

	results := payload.Results
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	summaries := make([]entity.PlaceSummary, 0, len(results))
	for _, r := range results {
		s := entity.PlaceSummary{
			Name:       r.Name,
			PlaceID:    r.PlaceID,
			Address:    r.FormattedAddress,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			Types:      r.Types,
		}
		if r.OpeningHours != nil {
			s.OpenNow = r.OpeningHours.OpenNow
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// Details fetches the extended record for a place.
func (c *Client) Details(ctx context.Context, placeID string) (*entity.PlaceDetails, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, fmt.Errorf("place id must not be empty")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)
	params.Set("key", c.apiKey)

	var payload detailsResponse
	if err := c.get(ctx, "/details/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus(payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}

	r := payload.Result
	details := &entity.PlaceDetails{
		Name:       r.Name,
		Address:    r.FormattedAddress,
		Rating:     r.Rating,
		PriceLevel: r.PriceLevel,
	}
	if r.Phone != "" {
		details.Phone = &r.Phone
	}
	if r.Website != "" {
		details.Website = &r.Website
	}
	if r.OpeningHours != nil {
		details.OpenNow = r.OpeningHours.OpenNow
		details.WeekdayHours = r.OpeningHours.WeekdayText
	}
	if len(r.Reviews) > 0 {
		details.ReviewSnippet = r.Reviews[0].Text
	}
	return details, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create places request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: upstream returned 403", lookup.ErrDenied)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("places upstream error: %s", extractUpstreamError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode places response: %w", err)
	}
	return nil
}

func checkStatus(status, errorMessage string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "REQUEST_DENIED":
		if errorMessage == "" {
			errorMessage = "no error message"
		}
		return fmt.Errorf("%w: %s", lookup.ErrDenied, errorMessage)
	default:
		if errorMessage != "" {
			return fmt.Errorf("places status %s: %s", status, errorMessage)
		}
		return fmt.Errorf("places status %s", status)
	}
}

func extractUpstreamError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "upstream returned an error"
	}
	var payload struct {
		ErrorMessage string `json:"error_message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.ErrorMessage != "" {
		return payload.ErrorMessage
	}
	return string(data)
}

var _ lookup.Finder = (*Client)(nil)
