package recommendationController

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"consa/config"
	. "consa/internal/models"
	"consa/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenRepo struct {
	tokens map[uuid.UUID]string
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[uuid.UUID]string)}
}

func (f *fakeTokenRepo) Save(_ context.Context, userID uuid.UUID, accessToken string, _ time.Duration) error {
	f.tokens[userID] = accessToken
	return nil
}

func (f *fakeTokenRepo) Get(_ context.Context, userID uuid.UUID) (string, bool, error) {
	token, found := f.tokens[userID]
	return token, found, nil
}

func (f *fakeTokenRepo) Delete(_ context.Context, userID uuid.UUID) error {
	delete(f.tokens, userID)
	return nil
}

type fakeRunRepo struct {
	runs []*RecommendationRun
}

func (f *fakeRunRepo) Create(_ context.Context, run *RecommendationRun) error {
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeRunRepo) GetLatestForUser(_ context.Context, _ uuid.UUID) (*RecommendationRun, error) {
	if len(f.runs) == 0 {
		return nil, fmt.Errorf("no runs recorded")
	}
	return f.runs[len(f.runs)-1], nil
}

// spotifyStub serves a seed list of two artists. Related-artist lookups for
// seed a1 return two candidates sharing one artist with seed a2's results;
// seed a2's lookup fails.
func spotifyStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/me/top/artists", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [
			{"id": "a1", "name": "Phoenix"},
			{"id": "a2", "name": "M83"}
		]}`)
	})
	mux.HandleFunc("/artists/a1/related-artists", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"artists": [
			{"id": "r1", "name": "Daft Punk"},
			{"id": "r2", "name": "Justice"}
		]}`)
	})
	mux.HandleFunc("/artists/a2/related-artists", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	return httptest.NewServer(mux)
}

func songkickStub(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events.json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "sk:26330", r.URL.Query().Get("location"))

		switch r.URL.Query().Get("artist_name") {
		case "Daft Punk":
			fmt.Fprint(w, `{"resultsPage": {"status": "ok", "results": {"event": [
				{
					"id": 11129128,
					"displayName": "Daft Punk at Fox Theater",
					"type": "Concert",
					"uri": "https://www.songkick.com/concerts/11129128",
					"venue": {"id": 1, "displayName": "Fox Theater"},
					"location": {"city": "Oakland, CA, US"},
					"start": {"date": "2026-09-12", "datetime": "2026-09-12T20:00:00+0000"}
				}
			]}}}`)
		default:
			// No upcoming events for this artist
			fmt.Fprint(w, `{"resultsPage": {"status": "ok", "results": {}}}`)
		}
	}))
}

func newTestController(
	spotifyURL, songkickURL string,
	tokenRepo *fakeTokenRepo,
	runRepo *fakeRunRepo,
) RecommendationControllerInterface {
	spotify := services.NewSpotifyService(config.Config{
		SpotifyAPIURL:       spotifyURL,
		SpotifyClientID:     "client-id",
		SpotifyClientSecret: "client-secret",
	})
	songkick := services.NewSongkickService(config.Config{
		SongkickAPIURL: songkickURL,
		SongkickAPIKey: "test-key",
	}, nil)

	return New(spotify, songkick, tokenRepo, runRepo)
}

func TestGetConcertRecs(t *testing.T) {
	spotifySrv := spotifyStub(t)
	defer spotifySrv.Close()
	songkickSrv := songkickStub(t)
	defer songkickSrv.Close()

	tokenRepo := newFakeTokenRepo()
	runRepo := &fakeRunRepo{}
	controller := newTestController(spotifySrv.URL, songkickSrv.URL, tokenRepo, runRepo)

	user := &User{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}, Email: "test@example.com"}
	require.NoError(t, tokenRepo.Save(context.Background(), user.ID, "access-token", time.Hour))

	result, err := controller.GetConcertRecs(context.Background(), user, "sk:26330")
	require.NoError(t, err)

	// Seed a2's related lookup failed; its contribution is skipped
	assert.Equal(t, 1, result.FailedSeeds)

	require.Len(t, result.Candidates, 2)
	assert.Equal(t, "Daft Punk", result.Candidates[0].ArtistName)
	assert.Equal(t, "Justice", result.Candidates[1].ArtistName)
	require.NotNil(t, result.Candidates[0].Source)
	assert.Equal(t, "Phoenix", *result.Candidates[0].Source)

	require.Len(t, result.Concerts, 1)
	concert := result.Concerts[0]
	assert.Equal(t, int64(11129128), concert.SongkickID)
	assert.Equal(t, "Daft Punk", concert.Artist)
	assert.Equal(t, "r1", concert.SpotifyID)
	require.NotNil(t, concert.StartDatetime)
	assert.Equal(t, time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC), *concert.StartDatetime)

	// The run is recorded for diagnostics
	require.Len(t, runRepo.runs, 1)
	run := runRepo.runs[0]
	assert.Equal(t, user.ID, run.UserID)
	assert.Equal(t, "sk:26330", run.LocationID)
	assert.Equal(t, 2, run.CandidateCount)
	assert.Equal(t, 1, run.FailedSeeds)
	assert.Equal(t, 1, run.ConcertCount)
}

func TestGetConcertRecsWithoutSpotifyToken(t *testing.T) {
	spotifySrv := spotifyStub(t)
	defer spotifySrv.Close()
	songkickSrv := songkickStub(t)
	defer songkickSrv.Close()

	controller := newTestController(
		spotifySrv.URL, songkickSrv.URL, newFakeTokenRepo(), &fakeRunRepo{},
	)

	user := &User{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}}
	_, err := controller.GetConcertRecs(context.Background(), user, "sk:26330")
	assert.Error(t, err)
}

func TestGetArtistRecs(t *testing.T) {
	spotifySrv := spotifyStub(t)
	defer spotifySrv.Close()
	songkickSrv := songkickStub(t)
	defer songkickSrv.Close()

	controller := newTestController(
		spotifySrv.URL, songkickSrv.URL, newFakeTokenRepo(), &fakeRunRepo{},
	)

	seeds := []ArtistCandidate{
		{SpotifyID: "a1", ArtistName: "Phoenix"},
		{SpotifyID: "a2", ArtistName: "M83"},
	}

	candidates, failedSeeds, err := controller.GetArtistRecs(
		context.Background(), "access-token", seeds,
	)
	require.NoError(t, err)
	assert.Equal(t, 1, failedSeeds)
	require.Len(t, candidates, 2)

	for _, candidate := range candidates {
		require.NotNil(t, candidate.Source)
		assert.Equal(t, "Phoenix", *candidate.Source)
	}
}

func TestGetArtistEvents(t *testing.T) {
	songkickSrv := songkickStub(t)
	defer songkickSrv.Close()

	controller := newTestController(
		"http://unused.invalid", songkickSrv.URL, newFakeTokenRepo(), &fakeRunRepo{},
	)

	t.Run("returns shaped concerts", func(t *testing.T) {
		concerts, err := controller.GetArtistEvents(
			context.Background(),
			ArtistCandidate{SpotifyID: "r1", ArtistName: "Daft Punk"},
			"sk:26330",
		)
		require.NoError(t, err)
		require.Len(t, concerts, 1)
		assert.Equal(t, "Daft Punk", concerts[0].Artist)
	})

	t.Run("no upcoming events is an empty list, not an error", func(t *testing.T) {
		concerts, err := controller.GetArtistEvents(
			context.Background(),
			ArtistCandidate{SpotifyID: "r9", ArtistName: "Unknown Artist"},
			"sk:26330",
		)
		require.NoError(t, err)
		assert.Empty(t, concerts)
	})

	t.Run("requires id and name", func(t *testing.T) {
		_, err := controller.GetArtistEvents(
			context.Background(),
			ArtistCandidate{ArtistName: "Daft Punk"},
			"sk:26330",
		)
		assert.Error(t, err)
	})
}
