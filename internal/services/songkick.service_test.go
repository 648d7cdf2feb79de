package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"consa/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSongkickService(baseURL string) *SongkickService {
	return NewSongkickService(config.Config{
		SongkickAPIURL: baseURL,
		SongkickAPIKey: "test-key",
	}, nil)
}

func TestSearchEvents(t *testing.T) {
	t.Run("unwraps the results page envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/events.json", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
			assert.Equal(t, "Phoenix", r.URL.Query().Get("artist_name"))
			assert.Equal(t, "sk:26330", r.URL.Query().Get("location"))

			fmt.Fprint(w, `{"resultsPage": {"status": "ok", "results": {"event": [
				{"id": 1, "displayName": "Phoenix at Fox Theater", "type": "Concert",
				 "start": {"date": "2026-09-12"}},
				{"id": 2, "displayName": "Phoenix at The Independent", "type": "Concert",
				 "start": {"date": "2026-09-13"}}
			]}}}`)
		}))
		defer server.Close()

		events, err := newTestSongkickService(server.URL).
			SearchEvents(context.Background(), "Phoenix", "sk:26330")

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, int64(1), events[0].ID)
		assert.Equal(t, "Phoenix at Fox Theater", events[0].DisplayName)
	})

	t.Run("missing event list yields an empty result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"resultsPage": {"status": "ok", "results": {}}}`)
		}))
		defer server.Close()

		events, err := newTestSongkickService(server.URL).
			SearchEvents(context.Background(), "Phoenix", "")

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("rejects an empty artist name", func(t *testing.T) {
		_, err := newTestSongkickService("http://unused.invalid").
			SearchEvents(context.Background(), "", "sk:26330")
		assert.Error(t, err)
	})

	t.Run("surfaces upstream errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := newTestSongkickService(server.URL).
			SearchEvents(context.Background(), "Phoenix", "")
		assert.Error(t, err)
	})
}

func TestSearchLocations(t *testing.T) {
	t.Run("unwraps location results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search/locations.json", r.URL.Path)
			assert.Equal(t, "Oakland", r.URL.Query().Get("query"))

			fmt.Fprint(w, `{"resultsPage": {"status": "ok", "results": {"location": [
				{"city": {"city": "Oakland"},
				 "metroArea": {"id": 26330, "displayName": "SF Bay Area",
				               "country": {"displayName": "US"}}}
			]}}}`)
		}))
		defer server.Close()

		results, err := newTestSongkickService(server.URL).
			SearchLocations(context.Background(), "Oakland")

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, int64(26330), results[0].MetroArea.ID)
		assert.Equal(t, "SF Bay Area", results[0].MetroArea.DisplayName)
	})

	t.Run("rejects an empty search term", func(t *testing.T) {
		_, err := newTestSongkickService("http://unused.invalid").
			SearchLocations(context.Background(), "")
		assert.Error(t, err)
	})
}
