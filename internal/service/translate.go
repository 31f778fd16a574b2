package service

import (
	"fmt"
	"strings"
)

// priceOrdinals maps the price-range symbols the agent collects to the
// 1-4 scale the lookup providers filter on.
var priceOrdinals = map[string]int{
	"$":    1,
	"$$":   2,
	"$$$":  3,
	"$$$$": 4,
}

// PriceLevel translates a price-range symbol to its ordinal. Unknown
// symbols report ok=false and no filter is applied downstream.
func PriceLevel(symbol string) (int, bool) {
	level, ok := priceOrdinals[strings.TrimSpace(symbol)]
	return level, ok
}

// SearchQuery builds the free-text lookup query from the validated
// location and optional cuisine keyword.
func SearchQuery(location, cuisine string) string {
	if cuisine != "" {
		return fmt.Sprintf("%s restaurants in %s", cuisine, location)
	}
	return fmt.Sprintf("restaurants in %s", location)
}
