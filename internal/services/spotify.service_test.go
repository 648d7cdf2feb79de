package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"consa/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpotifyService(apiURL, accountsURL string) *SpotifyService {
	return NewSpotifyService(config.Config{
		SpotifyAPIURL:       apiURL,
		SpotifyAccountsURL:  accountsURL,
		SpotifyClientID:     "client-id",
		SpotifyClientSecret: "client-secret",
		SpotifyRedirectURI:  "http://localhost:3000/callback",
	})
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, newTestSpotifyService("", "").IsConfigured())
	assert.False(t, NewSpotifyService(config.Config{}).IsConfigured())
}

func TestGetAuthorizeURL(t *testing.T) {
	service := newTestSpotifyService("", "https://accounts.example")

	authURL := service.GetAuthorizeURL("state-123")

	assert.Contains(t, authURL, "https://accounts.example/authorize?")
	assert.Contains(t, authURL, "client_id=client-id")
	assert.Contains(t, authURL, "response_type=code")
	assert.Contains(t, authURL, "scope=user-top-read")
	assert.Contains(t, authURL, "state=state-123")
}

func TestExchangeCode(t *testing.T) {
	t.Run("posts the code with basic auth", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/token", r.URL.Path)

			expected := "Basic " + base64.StdEncoding.EncodeToString(
				[]byte("client-id:client-secret"),
			)
			assert.Equal(t, expected, r.Header.Get("Authorization"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "auth-code", r.PostForm.Get("code"))

			fmt.Fprint(w, `{"access_token": "the-token", "token_type": "Bearer", "expires_in": 3600}`)
		}))
		defer server.Close()

		token, err := newTestSpotifyService("", server.URL).
			ExchangeCode(context.Background(), "auth-code")

		require.NoError(t, err)
		assert.Equal(t, "the-token", token.AccessToken)
		assert.Equal(t, int64(3600), token.ExpiresIn)
	})

	t.Run("rejects an empty code", func(t *testing.T) {
		_, err := newTestSpotifyService("", "http://unused.invalid").
			ExchangeCode(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("surfaces token endpoint errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		_, err := newTestSpotifyService("", server.URL).
			ExchangeCode(context.Background(), "auth-code")
		assert.Error(t, err)
	})
}

func TestGetTopArtists(t *testing.T) {
	t.Run("sends the bearer token and decodes items", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/me/top/artists", r.URL.Path)
			assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
			assert.Equal(t, "3", r.URL.Query().Get("limit"))
			assert.Equal(t, "medium_term", r.URL.Query().Get("time_range"))

			fmt.Fprint(w, `{"items": [
				{"id": "a1", "name": "Phoenix",
				 "images": [{"url": "https://img.example/phoenix.jpg", "height": 640, "width": 640}]}
			]}`)
		}))
		defer server.Close()

		artists, err := newTestSpotifyService(server.URL, "").
			GetTopArtists(context.Background(), "access-token", 3, "medium_term")

		require.NoError(t, err)
		require.Len(t, artists, 1)
		assert.Equal(t, "a1", artists[0].ID)
		assert.Equal(t, "Phoenix", artists[0].Name)
	})

	t.Run("expired token is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestSpotifyService(server.URL, "").
			GetTopArtists(context.Background(), "stale", 3, "medium_term")
		assert.Error(t, err)
	})

	t.Run("empty access token is rejected before the request", func(t *testing.T) {
		_, err := newTestSpotifyService("http://unused.invalid", "").
			GetTopArtists(context.Background(), "", 3, "medium_term")
		assert.Error(t, err)
	})
}

func TestGetRelatedArtists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/artists/a1/related-artists", r.URL.Path)
		fmt.Fprint(w, `{"artists": [{"id": "r1", "name": "Daft Punk"}]}`)
	}))
	defer server.Close()

	service := newTestSpotifyService(server.URL, "")

	artists, err := service.GetRelatedArtists(context.Background(), "access-token", "a1")
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "Daft Punk", artists[0].Name)

	_, err = service.GetRelatedArtists(context.Background(), "access-token", "")
	assert.Error(t, err)
}

func TestSearchArtists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Phoenix", r.URL.Query().Get("q"))
		assert.Equal(t, "artist", r.URL.Query().Get("type"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		fmt.Fprint(w, `{"artists": {"items": [{"id": "a1", "name": "Phoenix"}]}}`)
	}))
	defer server.Close()

	service := newTestSpotifyService(server.URL, "")

	artists, err := service.SearchArtists(context.Background(), "access-token", "Phoenix", 10)
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, "a1", artists[0].ID)

	_, err = service.SearchArtists(context.Background(), "access-token", "", 10)
	assert.Error(t, err)
}
