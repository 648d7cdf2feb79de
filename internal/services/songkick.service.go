package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"consa/config"
	"consa/internal/database"
	logger "consa/pkg/logger"
)

const (
	LOCATION_CACHE_PREFIX = "songkick:locations:"
	LOCATION_CACHE_EXPIRY = 1 * time.Hour
)

// SongkickService is the events-lookup API client. Every response arrives in
// a resultsPage envelope; the service unwraps it and hands the raw result
// objects to the shaping layer untouched.
type SongkickService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	cache   database.CacheClient
	log     logger.Logger
}

// SongkickDate is the upstream date-or-datetime block. Datetime carries a
// fixed-width timezone offset suffix ("+0000") when present; either field
// may be empty.
type SongkickDate struct {
	Date     string `json:"date"`
	Datetime string `json:"datetime"`
	Time     string `json:"time"`
}

type SongkickVenue struct {
	ID          int64    `json:"id"`
	DisplayName string   `json:"displayName"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

type SongkickEventLocation struct {
	City string   `json:"city"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}

type SongkickEvent struct {
	ID          int64                 `json:"id"`
	DisplayName string                `json:"displayName"`
	Type        string                `json:"type"`
	URI         string                `json:"uri"`
	Venue       SongkickVenue         `json:"venue"`
	Location    SongkickEventLocation `json:"location"`
	Start       SongkickDate          `json:"start"`

	// End is present only for multi-day events (festivals)
	End *SongkickDate `json:"end"`
}

type SongkickCountry struct {
	DisplayName string `json:"displayName"`
}

type SongkickState struct {
	DisplayName string `json:"displayName"`
}

type SongkickMetroArea struct {
	ID          int64            `json:"id"`
	DisplayName string           `json:"displayName"`
	URI         string           `json:"uri"`
	Country     SongkickCountry  `json:"country"`
	State       *SongkickState   `json:"state"`
	Lat         *float64         `json:"lat"`
	Lng         *float64         `json:"lng"`
}

// SongkickLocationResult is one location search hit: a city paired with the
// metro area it belongs to. Distinct cities may share one metro area.
type SongkickLocationResult struct {
	City      SongkickEventLocation `json:"city"`
	MetroArea SongkickMetroArea     `json:"metroArea"`
}

type locationSearchEnvelope struct {
	ResultsPage struct {
		Status  string `json:"status"`
		Results struct {
			Location []SongkickLocationResult `json:"location"`
		} `json:"results"`
	} `json:"resultsPage"`
}

type eventSearchEnvelope struct {
	ResultsPage struct {
		Status  string `json:"status"`
		Results struct {
			Event []SongkickEvent `json:"event"`
		} `json:"results"`
	} `json:"resultsPage"`
}

func NewSongkickService(config config.Config, cache database.CacheClient) *SongkickService {
	return &SongkickService{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: config.SongkickAPIURL,
		apiKey:  config.SongkickAPIKey,
		cache:   cache,
		log:     logger.New("songkickService"),
	}
}

// SearchLocations queries the location search endpoint. Results are cached
// per search term since location names change rarely.
func (s *SongkickService) SearchLocations(
	ctx context.Context,
	searchTerm string,
) ([]SongkickLocationResult, error) {
	log := s.log.Function("SearchLocations")

	if searchTerm == "" {
		return nil, fmt.Errorf("search term cannot be empty")
	}

	cacheKey := LOCATION_CACHE_PREFIX + searchTerm
	if s.cache != nil {
		var cached []SongkickLocationResult
		found, err := database.NewCacheBuilder(s.cache, cacheKey).
			WithContext(ctx).
			Get(&cached)
		if err == nil && found {
			log.Debug("location search cache hit", "searchTerm", searchTerm)
			return cached, nil
		}
	}

	query := url.Values{}
	query.Set("query", searchTerm)

	var envelope locationSearchEnvelope
	if err := s.get(ctx, "/search/locations.json", query, &envelope); err != nil {
		return nil, log.Err("failed to search locations", err, "searchTerm", searchTerm)
	}

	results := envelope.ResultsPage.Results.Location

	if s.cache != nil {
		if err := database.NewCacheBuilder(s.cache, cacheKey).
			WithStruct(results).
			WithTTL(LOCATION_CACHE_EXPIRY).
			WithContext(ctx).
			Set(); err != nil {
			log.Warn("failed to cache location results", "searchTerm", searchTerm, "error", err)
		}
	}

	log.Info("Retrieved locations", "searchTerm", searchTerm, "count", len(results))
	return results, nil
}

// SearchEvents queries upcoming events for one artist scoped to a metro
// area. An empty or absent event list in the envelope yields an empty slice.
func (s *SongkickService) SearchEvents(
	ctx context.Context,
	artistName string,
	locationID string,
) ([]SongkickEvent, error) {
	log := s.log.Function("SearchEvents")

	if artistName == "" {
		return nil, fmt.Errorf("artist name cannot be empty")
	}

	query := url.Values{}
	query.Set("artist_name", artistName)
	if locationID != "" {
		query.Set("location", locationID)
	}

	var envelope eventSearchEnvelope
	if err := s.get(ctx, "/events.json", query, &envelope); err != nil {
		return nil, log.Err("failed to search events", err, "artist", artistName)
	}

	return envelope.ResultsPage.Results.Event, nil
}

func (s *SongkickService) get(
	ctx context.Context,
	path string,
	query url.Values,
	result any,
) error {
	log := s.log.Function("get")

	query.Set("apikey", s.apiKey)
	endpoint := s.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return log.Err("failed to create request", err, "path", path)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return log.Err("request failed", err, "path", path)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("songkick API error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return log.Err("failed to decode response", err, "path", path)
	}

	return nil
}
