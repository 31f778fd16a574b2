package service

import "testing"

func TestPriceLevel(t *testing.T) {
	cases := []struct {
		symbol string
		level  int
		ok     bool
	}{
		{"$", 1, true},
		{"$$", 2, true},
		{"$$$", 3, true},
		{"$$$$", 4, true},
		{" $$ ", 2, true},
		{"$$$$$", 0, false},
		{"cheap", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		level, ok := PriceLevel(tc.symbol)
		if level != tc.level || ok != tc.ok {
			t.Fatalf("PriceLevel(%q) = (%d, %v), want (%d, %v)", tc.symbol, level, ok, tc.level, tc.ok)
		}
	}
}

func TestSearchQuery(t *testing.T) {
	if q := SearchQuery("Austin", ""); q != "restaurants in Austin" {
		t.Fatalf("unexpected query: %q", q)
	}
	if q := SearchQuery("Austin", "italian"); q != "italian restaurants in Austin" {
		t.Fatalf("unexpected query with cuisine: %q", q)
	}
}
