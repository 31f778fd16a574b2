package service

import "testing"

func TestValidateSearchRequiresLocation(t *testing.T) {
	cases := []struct {
		name string
		args map[string]any
	}{
		{"nil args", nil},
		{"empty map", map[string]any{}},
		{"blank location", map[string]any{"location": "   "}},
		{"wrong type", map[string]any{"location": 42}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, clarify := ValidateSearch(tc.args)
			if clarify != PromptNeedLocation {
				t.Fatalf("expected location prompt, got %q", clarify)
			}
		})
	}
}

func TestValidateSearchDefaults(t *testing.T) {
	args, clarify := ValidateSearch(map[string]any{"location": " Austin "})
	if clarify != "" {
		t.Fatalf("unexpected clarifying prompt: %q", clarify)
	}
	if args.Location != "Austin" {
		t.Fatalf("expected trimmed location, got %q", args.Location)
	}
	if args.PartySize != 2 {
		t.Fatalf("expected default party size 2, got %d", args.PartySize)
	}
	if args.Cuisine != "" || args.PriceRange != "" {
		t.Fatalf("expected empty optional fields, got %+v", args)
	}
}

func TestValidateSearchOptionalFields(t *testing.T) {
	args, clarify := ValidateSearch(map[string]any{
		"location":    "Austin",
		"cuisine":     "italian",
		"price_range": "$$",
		"party_size":  float64(4),
	})
	if clarify != "" {
		t.Fatalf("unexpected clarifying prompt: %q", clarify)
	}
	if args.Cuisine != "italian" || args.PriceRange != "$$" || args.PartySize != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestValidateDetails(t *testing.T) {
	if _, clarify := ValidateDetails(map[string]any{"restaurant_name": "Franklin"}); clarify != PromptNeedRestaurant {
		t.Fatalf("expected restaurant prompt when location missing, got %q", clarify)
	}
	if _, clarify := ValidateDetails(map[string]any{"location": "Austin"}); clarify != PromptNeedRestaurant {
		t.Fatalf("expected restaurant prompt when name missing, got %q", clarify)
	}

	args, clarify := ValidateDetails(map[string]any{"restaurant_name": "Franklin Barbecue", "location": "Austin"})
	if clarify != "" {
		t.Fatalf("unexpected clarifying prompt: %q", clarify)
	}
	if args.RestaurantName != "Franklin Barbecue" || args.Location != "Austin" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestValidateAvailability(t *testing.T) {
	complete := map[string]any{
		"restaurant_name": "Franklin Barbecue",
		"location":        "Austin",
		"date":            "2026-08-29",
		"time":            "19:30",
	}

	for _, missing := range []string{"restaurant_name", "location", "date", "time"} {
		t.Run("missing "+missing, func(t *testing.T) {
			args := make(map[string]any, len(complete))
			for k, v := range complete {
				args[k] = v
			}
			delete(args, missing)

			_, clarify := ValidateAvailability(args)
			if clarify != PromptNeedAvailability {
				t.Fatalf("expected availability prompt, got %q", clarify)
			}
		})
	}

	args, clarify := ValidateAvailability(complete)
	if clarify != "" {
		t.Fatalf("unexpected clarifying prompt: %q", clarify)
	}
	if args.PartySize != 2 {
		t.Fatalf("expected default party size, got %d", args.PartySize)
	}
}

func TestPartySizeCoercion(t *testing.T) {
	cases := []struct {
		name string
		args map[string]any
		want int
	}{
		{"json number", map[string]any{"party_size": float64(6)}, 6},
		{"numeric string", map[string]any{"party_size": "3"}, 3},
		{"zero falls back", map[string]any{"party_size": float64(0)}, 2},
		{"garbage string", map[string]any{"party_size": "a few"}, 2},
		{"absent", map[string]any{}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := partySize(tc.args); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
