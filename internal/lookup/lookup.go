package lookup

import (
	"context"
	"errors"

	"github.com/octobees/voice-concierge/internal/entity"
)

// ErrDenied indicates the upstream rejected our credentials. Handlers map
// it to a configuration-error sentence instead of the generic failure one.
var ErrDenied = errors.New("lookup request denied")

// Query describes one restaurant search against a lookup provider.
type Query struct {
	// Text is the free-text search, e.g. "italian restaurants in Austin".
	Text string
	// MaxPrice is the 1-4 price ordinal; zero means no price filter.
	MaxPrice int
}

// Finder is the capability a lookup provider must offer. Both the Places
// client and the scraping fallback implement it, so the validation and
// formatting core never knows which one is wired in.
type Finder interface {
	Search(ctx context.Context, q Query) ([]entity.PlaceSummary, error)
	Details(ctx context.Context, placeID string) (*entity.PlaceDetails, error)
}
