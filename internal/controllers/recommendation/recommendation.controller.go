package recommendationController

import (
	"context"
	"encoding/json"

	. "consa/internal/models"
	"consa/internal/repositories"
	"consa/internal/services"
	logger "consa/pkg/logger"
)

const (
	// TopArtistLimit bounds the seed set; Spotify rate limits make a larger
	// seed fan-out impractical for a synchronous request.
	TopArtistLimit = 3

	TopArtistTimeRange = "medium_term"
	ArtistSearchLimit  = 10
)

// ConcertRecsResult is the output of one full aggregation run
type ConcertRecsResult struct {
	Concerts    []Concert         `json:"concerts"`
	Candidates  []ArtistCandidate `json:"candidates"`
	FailedSeeds int               `json:"failedSeeds"`
}

type RecommendationController struct {
	spotifyService  *services.SpotifyService
	songkickService *services.SongkickService
	tokenRepo       repositories.SpotifyTokenRepository
	runRepo         repositories.RecommendationRunRepository
	log             logger.Logger
}

type RecommendationControllerInterface interface {
	GetConcertRecs(ctx context.Context, user *User, locationID string) (*ConcertRecsResult, error)
	GetArtistRecs(ctx context.Context, accessToken string, seeds []ArtistCandidate) ([]ArtistCandidate, int, error)
	SearchArtists(ctx context.Context, user *User, searchTerm string) ([]ArtistCandidate, error)
	GetArtistEvents(ctx context.Context, candidate ArtistCandidate, locationID string) ([]Concert, error)
}

func New(
	spotifyService *services.SpotifyService,
	songkickService *services.SongkickService,
	tokenRepo repositories.SpotifyTokenRepository,
	runRepo repositories.RecommendationRunRepository,
) RecommendationControllerInterface {
	return &RecommendationController{
		spotifyService:  spotifyService,
		songkickService: songkickService,
		tokenRepo:       tokenRepo,
		runRepo:         runRepo,
		log:             logger.New("recommendationController"),
	}
}

// GetConcertRecs runs the full aggregation: the user's top artists seed a
// related-artist expansion, then each candidate's upcoming events in the
// given metro area are shaped into concert records.
func (rc *RecommendationController) GetConcertRecs(
	ctx context.Context,
	user *User,
	locationID string,
) (*ConcertRecsResult, error) {
	log := rc.log.Function("GetConcertRecs")
	defer log.Timer("concert aggregation")()

	accessToken, err := rc.requireSpotifyToken(ctx, user)
	if err != nil {
		return nil, err
	}

	rawTop, err := rc.spotifyService.GetTopArtists(
		ctx,
		accessToken,
		TopArtistLimit,
		TopArtistTimeRange,
	)
	if err != nil {
		return nil, log.Err("failed to fetch top artists", err, "userID", user.ID)
	}

	seedSet := NewCandidateSet()
	if err := ParseArtistResponse(rawTop, seedSet, nil); err != nil {
		return nil, log.Err("failed to parse top artists", err, "userID", user.ID)
	}
	seeds := seedSet.Values()

	candidates, failedSeeds, err := rc.GetArtistRecs(ctx, accessToken, seeds)
	if err != nil {
		return nil, err
	}

	result := &ConcertRecsResult{
		Concerts:    []Concert{},
		Candidates:  candidates,
		FailedSeeds: failedSeeds,
	}

	for _, candidate := range candidates {
		rawEvents, err := rc.songkickService.SearchEvents(ctx, candidate.ArtistName, locationID)
		if err != nil {
			// One artist's failed lookup is an empty contribution, not a
			// failed aggregation.
			log.Warn("event lookup failed, skipping artist",
				"artist", candidate.ArtistName, "error", err)
			continue
		}

		result.Concerts = append(result.Concerts, CreateConcertList(rawEvents, candidate)...)
	}

	rc.recordRun(ctx, user, locationID, seeds, result)

	log.Info("Aggregation complete",
		"userID", user.ID,
		"seeds", len(seeds),
		"candidates", len(candidates),
		"concerts", len(result.Concerts),
		"failedSeeds", failedSeeds,
	)

	return result, nil
}

// GetArtistRecs expands the seed artists into a deduplicated candidate list
// via related-artist lookups. A failed lookup drops that seed's contribution
// and the expansion continues; the count of failed seeds is returned for
// diagnostics. The first seed to surface an artist fixes its provenance.
func (rc *RecommendationController) GetArtistRecs(
	ctx context.Context,
	accessToken string,
	seeds []ArtistCandidate,
) ([]ArtistCandidate, int, error) {
	log := rc.log.Function("GetArtistRecs")

	related := NewCandidateSet()
	failedSeeds := 0

	for _, seed := range seeds {
		rawRelated, err := rc.spotifyService.GetRelatedArtists(ctx, accessToken, seed.SpotifyID)
		if err != nil {
			log.Warn("related artists lookup failed, skipping seed",
				"seed", seed.ArtistName, "error", err)
			failedSeeds++
			continue
		}

		source := seed.ArtistName
		if err := ParseArtistResponse(rawRelated, related, &source); err != nil {
			return nil, failedSeeds, log.Err("failed to parse related artists", err,
				"seed", seed.ArtistName)
		}
	}

	candidates := related.Values()
	if candidates == nil {
		candidates = []ArtistCandidate{}
	}

	return candidates, failedSeeds, nil
}

// SearchArtists resolves a manual artist search into candidates
func (rc *RecommendationController) SearchArtists(
	ctx context.Context,
	user *User,
	searchTerm string,
) ([]ArtistCandidate, error) {
	log := rc.log.Function("SearchArtists")

	accessToken, err := rc.requireSpotifyToken(ctx, user)
	if err != nil {
		return nil, err
	}

	rawItems, err := rc.spotifyService.SearchArtists(ctx, accessToken, searchTerm, ArtistSearchLimit)
	if err != nil {
		return nil, log.Err("artist search failed", err, "searchTerm", searchTerm)
	}

	results := NewCandidateSet()
	if err := ParseArtistResponse(rawItems, results, nil); err != nil {
		return nil, log.Err("failed to parse artist search results", err)
	}

	candidates := results.Values()
	if candidates == nil {
		candidates = []ArtistCandidate{}
	}

	return candidates, nil
}

// GetArtistEvents shapes upcoming events for one manually picked candidate
func (rc *RecommendationController) GetArtistEvents(
	ctx context.Context,
	candidate ArtistCandidate,
	locationID string,
) ([]Concert, error) {
	log := rc.log.Function("GetArtistEvents")

	if candidate.SpotifyID == "" || candidate.ArtistName == "" {
		return nil, log.ErrMsg("artist id and name are required")
	}

	rawEvents, err := rc.songkickService.SearchEvents(ctx, candidate.ArtistName, locationID)
	if err != nil {
		return nil, log.Err("event lookup failed", err, "artist", candidate.ArtistName)
	}

	return CreateConcertList(rawEvents, candidate), nil
}

func (rc *RecommendationController) requireSpotifyToken(
	ctx context.Context,
	user *User,
) (string, error) {
	log := rc.log.Function("requireSpotifyToken")

	accessToken, found, err := rc.tokenRepo.Get(ctx, user.ID)
	if err != nil {
		return "", log.Err("failed to read spotify token", err, "userID", user.ID)
	}
	if !found {
		return "", log.Error("spotify account not connected", "userID", user.ID)
	}

	return accessToken, nil
}

func (rc *RecommendationController) recordRun(
	ctx context.Context,
	user *User,
	locationID string,
	seeds []ArtistCandidate,
	result *ConcertRecsResult,
) {
	log := rc.log.Function("recordRun")

	seedsJSON, err := json.Marshal(seeds)
	if err != nil {
		log.Warn("failed to marshal seeds for run record", "error", err)
		seedsJSON = []byte("[]")
	}

	run := &RecommendationRun{
		UserID:         user.ID,
		LocationID:     locationID,
		Seeds:          seedsJSON,
		CandidateCount: len(result.Candidates),
		FailedSeeds:    result.FailedSeeds,
		ConcertCount:   len(result.Concerts),
	}

	if err := rc.runRepo.Create(ctx, run); err != nil {
		log.Warn("failed to record recommendation run", "userID", user.ID, "error", err)
	}
}
