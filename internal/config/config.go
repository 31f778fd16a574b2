package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Lookup provider names accepted in LOOKUP_PROVIDER.
const (
	ProviderPlaces = "places"
	ProviderScrape = "scrape"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	PlacesAPIKey     string
	PlacesBaseURL    string
	ScrapeBaseURL    string
	LookupProvider   string
	LookupTimeout    time.Duration
	WebhookSecret    string
	Port             string
	PhoneRegion      string
	RateLimitWebhook RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		PlacesAPIKey:   os.Getenv("GOOGLE_PLACES_API_KEY"),
		PlacesBaseURL:  getEnv("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		ScrapeBaseURL:  getEnv("SCRAPE_BASE_URL", "https://www.google.com/maps"),
		LookupProvider: strings.ToLower(getEnv("LOOKUP_PROVIDER", ProviderPlaces)),
		LookupTimeout:  parseDuration(getEnv("LOOKUP_TIMEOUT", "10s")),
		WebhookSecret:  os.Getenv("RETELL_WEBHOOK_SECRET"),
		Port:           getEnv("PORT", "8080"),
		PhoneRegion:    strings.ToUpper(getEnv("DEFAULT_PHONE_REGION", "US")),
	}

	if cfg.LookupProvider != ProviderPlaces && cfg.LookupProvider != ProviderScrape {
		return nil, fmt.Errorf("unsupported LOOKUP_PROVIDER value: %s", cfg.LookupProvider)
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_WEBHOOK", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WEBHOOK value: %w", err)
	}
	cfg.RateLimitWebhook = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
