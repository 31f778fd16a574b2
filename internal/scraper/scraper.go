package scraper

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"

	"github.com/octobees/voice-concierge/internal/entity"
	"github.com/octobees/voice-concierge/internal/lookup"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const maxResults = 5

var (
	openPattern   = regexp.MustCompile(`(?i)\bopen\b`)
	closedPattern = regexp.MustCompile(`(?i)\bclosed\b`)
)

// Scraper is the HTML-scraping lookup fallback for deployments without a
// Places API key. It reads a maps-style listing page instead of the API.
type Scraper struct {
	collector *colly.Collector
	baseURL   string
}

// New builds a scraper rooted at the given listing site.
func New(baseURL string) *Scraper {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)
	return &Scraper{
		collector: c,
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// Search scrapes the listing search page and returns up to five summaries.
func (s *Scraper) Search(ctx context.Context, q lookup.Query) ([]entity.PlaceSummary, error) {
	target := fmt.Sprintf("%s/search?q=%s", s.baseURL, url.QueryEscape(q.Text))

	var summaries []entity.PlaceSummary
	c := s.collector.Clone()

	c.OnHTML("div.search-result", func(e *colly.HTMLElement) {
		if len(summaries) >= maxResults {
			return
		}
		summary := entity.PlaceSummary{
			Name:    strings.TrimSpace(e.ChildText(".name")),
			PlaceID: e.Attr("data-place-id"),
			Address: strings.TrimSpace(e.ChildText(".address")),
		}
		if summary.Name == "" {
			return
		}
		if rating, err := strconv.ParseFloat(strings.TrimSpace(e.ChildText(".rating")), 64); err == nil {
			summary.Rating = rating
		}
		if level := len(strings.TrimSpace(e.ChildText(".price"))); level >= 1 && level <= 4 {
			summary.PriceLevel = &level
		}
		if open, ok := parseOpenStatus(e.ChildText(".status")); ok {
			summary.OpenNow = &open
		}
		if tags := strings.TrimSpace(e.ChildText(".tags")); tags != "" {
			summary.Types = strings.Fields(tags)
		}
		summaries = append(summaries, summary)
	})

	if err := c.Visit(target); err != nil {
		return nil, fmt.Errorf("failed to scrape search page: %w", err)
	}
	c.Wait()
	return summaries, nil
}

// Details scrapes a single place page.
func (s *Scraper) Details(ctx context.Context, placeID string) (*entity.PlaceDetails, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, fmt.Errorf("place id must not be empty")
	}
	target := fmt.Sprintf("%s/place/%s", s.baseURL, url.PathEscape(placeID))

	var details *entity.PlaceDetails
	c := s.collector.Clone()

	c.OnHTML("div.place", func(e *colly.HTMLElement) {
		d := &entity.PlaceDetails{
			Name:    strings.TrimSpace(e.ChildText(".name")),
			Address: strings.TrimSpace(e.ChildText(".address")),
		}
		if rating, err := strconv.ParseFloat(strings.TrimSpace(e.ChildText(".rating")), 64); err == nil {
			d.Rating = rating
		}
		if phone := strings.TrimSpace(e.ChildText(".phone")); phone != "" {
			d.Phone = &phone
		}
		if website := strings.TrimSpace(e.ChildAttr("a.website", "href")); website != "" {
			d.Website = &website
		}
		if level := len(strings.TrimSpace(e.ChildText(".price"))); level >= 1 && level <= 4 {
			d.PriceLevel = &level
		}
		if open, ok := parseOpenStatus(e.ChildText(".status")); ok {
			d.OpenNow = &open
		}
		e.ForEach(".hours li", func(_ int, el *colly.HTMLElement) {
			if line := strings.TrimSpace(el.Text); line != "" {
				d.WeekdayHours = append(d.WeekdayHours, line)
			}
		})
		d.ReviewSnippet = strings.TrimSpace(e.ChildText(".review"))
		details = d
	})

	if err := c.Visit(target); err != nil {
		return nil, fmt.Errorf("failed to scrape place page: %w", err)
	}
	c.Wait()

	if details == nil {
		return nil, fmt.Errorf("place page had no recognizable content")
	}
	return details, nil
}

func parseOpenStatus(text string) (bool, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, false
	}
	if closedPattern.MatchString(text) {
		return false, true
	}
	if openPattern.MatchString(text) {
		return true, true
	}
	return false, false
}

var _ lookup.Finder = (*Scraper)(nil)
