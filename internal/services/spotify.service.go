package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"consa/config"
	logger "consa/pkg/logger"
)

// SpotifyService is the music catalog API client. It covers the
// authorization-code OAuth exchange plus the three catalog lookups the
// recommendation flow reads: top artists, related artists, and artist search.
type SpotifyService struct {
	client       *http.Client
	apiURL       string
	accountsURL  string
	clientID     string
	clientSecret string
	redirectURI  string
	log          logger.Logger
}

type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type SpotifyArtist struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Images []SpotifyImage `json:"images"`
}

type TopArtistsResponse struct {
	Items []SpotifyArtist `json:"items"`
}

type RelatedArtistsResponse struct {
	Artists []SpotifyArtist `json:"artists"`
}

type ArtistSearchResponse struct {
	Artists struct {
		Items []SpotifyArtist `json:"items"`
	} `json:"artists"`
}

type SpotifyTokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope"`
}

func NewSpotifyService(config config.Config) *SpotifyService {
	return &SpotifyService{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiURL:       config.SpotifyAPIURL,
		accountsURL:  config.SpotifyAccountsURL,
		clientID:     config.SpotifyClientID,
		clientSecret: config.SpotifyClientSecret,
		redirectURI:  config.SpotifyRedirectURI,
		log:          logger.New("spotifyService"),
	}
}

// IsConfigured reports whether Spotify credentials were provided
func (s *SpotifyService) IsConfigured() bool {
	return s.clientID != "" && s.clientSecret != ""
}

// GetAuthorizeURL builds the authorization URL the client redirects the user
// to. The user-top-read scope is required for the top artists lookup.
func (s *SpotifyService) GetAuthorizeURL(state string) string {
	query := url.Values{}
	query.Set("client_id", s.clientID)
	query.Set("response_type", "code")
	query.Set("redirect_uri", s.redirectURI)
	query.Set("scope", "user-top-read")
	query.Set("state", state)

	return s.accountsURL + "/authorize?" + query.Encode()
}

// ExchangeCode exchanges an authorization code for an access token
func (s *SpotifyService) ExchangeCode(
	ctx context.Context,
	code string,
) (*SpotifyTokenResponse, error) {
	log := s.log.Function("ExchangeCode")

	if code == "" {
		return nil, fmt.Errorf("authorization code cannot be empty")
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.accountsURL+"/api/token",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, log.Err("failed to create token request", err)
	}

	credentials := base64.StdEncoding.EncodeToString(
		[]byte(s.clientID + ":" + s.clientSecret),
	)
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, log.Err("failed to exchange authorization code", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		_ = log.Error("Spotify token endpoint error", "statusCode", resp.StatusCode)
		return nil, fmt.Errorf("spotify token endpoint error: %d", resp.StatusCode)
	}

	var token SpotifyTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, log.Err("failed to decode token response", err)
	}

	if token.AccessToken == "" {
		return nil, log.ErrMsg("spotify token response missing access token")
	}

	log.Info("Successfully exchanged authorization code for access token")
	return &token, nil
}

// GetTopArtists fetches the authenticated user's top artists
func (s *SpotifyService) GetTopArtists(
	ctx context.Context,
	accessToken string,
	limit int,
	timeRange string,
) ([]SpotifyArtist, error) {
	log := s.log.Function("GetTopArtists")

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("time_range", timeRange)

	var response TopArtistsResponse
	if err := s.get(ctx, accessToken, "/me/top/artists", query, &response); err != nil {
		return nil, log.Err("failed to fetch top artists", err)
	}

	log.Info("Retrieved top artists", "count", len(response.Items))
	return response.Items, nil
}

// GetRelatedArtists fetches artists related to the given artist
func (s *SpotifyService) GetRelatedArtists(
	ctx context.Context,
	accessToken string,
	artistID string,
) ([]SpotifyArtist, error) {
	log := s.log.Function("GetRelatedArtists")

	if artistID == "" {
		return nil, fmt.Errorf("artist id cannot be empty")
	}

	var response RelatedArtistsResponse
	path := "/artists/" + url.PathEscape(artistID) + "/related-artists"
	if err := s.get(ctx, accessToken, path, nil, &response); err != nil {
		return nil, log.Err("failed to fetch related artists", err, "artistID", artistID)
	}

	return response.Artists, nil
}

// SearchArtists searches the catalog by artist name
func (s *SpotifyService) SearchArtists(
	ctx context.Context,
	accessToken string,
	searchTerm string,
	limit int,
) ([]SpotifyArtist, error) {
	log := s.log.Function("SearchArtists")

	if searchTerm == "" {
		return nil, fmt.Errorf("search term cannot be empty")
	}

	query := url.Values{}
	query.Set("q", searchTerm)
	query.Set("type", "artist")
	query.Set("limit", strconv.Itoa(limit))

	var response ArtistSearchResponse
	if err := s.get(ctx, accessToken, "/search", query, &response); err != nil {
		return nil, log.Err("failed to search artists", err, "searchTerm", searchTerm)
	}

	return response.Artists.Items, nil
}

func (s *SpotifyService) get(
	ctx context.Context,
	accessToken string,
	path string,
	query url.Values,
	result any,
) error {
	log := s.log.Function("get")

	if accessToken == "" {
		return fmt.Errorf("access token cannot be empty")
	}

	endpoint := s.apiURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return log.Err("failed to create request", err, "path", path)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return log.Err("request failed", err, "path", path)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("spotify access token expired or invalid")
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify API error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return log.Err("failed to decode response", err, "path", path)
	}

	return nil
}
