package recommendationController

import (
	"testing"

	"consa/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func artist(id, name string, imageURLs ...string) services.SpotifyArtist {
	a := services.SpotifyArtist{ID: id, Name: name}
	for _, u := range imageURLs {
		a.Images = append(a.Images, services.SpotifyImage{URL: u, Height: 640, Width: 640})
	}
	return a
}

func TestParseArtistResponse(t *testing.T) {
	t.Run("accumulates artists in input order", func(t *testing.T) {
		set := NewCandidateSet()

		err := ParseArtistResponse([]services.SpotifyArtist{
			artist("a1", "Phoenix", "https://img.example/phoenix.jpg"),
			artist("a2", "M83"),
			artist("a3", "Air"),
		}, set, nil)

		require.NoError(t, err)
		values := set.Values()
		require.Len(t, values, 3)
		assert.Equal(t, "Phoenix", values[0].ArtistName)
		assert.Equal(t, "M83", values[1].ArtistName)
		assert.Equal(t, "Air", values[2].ArtistName)

		require.NotNil(t, values[0].ImageURL)
		assert.Equal(t, "https://img.example/phoenix.jpg", *values[0].ImageURL)
		assert.Nil(t, values[1].ImageURL)
	})

	t.Run("first occurrence wins on duplicate ids", func(t *testing.T) {
		set := NewCandidateSet()
		first := "Phoenix"
		second := "M83"

		require.NoError(t, ParseArtistResponse([]services.SpotifyArtist{
			artist("a1", "Daft Punk"),
		}, set, &first))
		require.NoError(t, ParseArtistResponse([]services.SpotifyArtist{
			artist("a1", "Daft Punk"),
			artist("a2", "Justice"),
		}, set, &second))

		values := set.Values()
		require.Len(t, values, 2)

		// The earlier entry keeps its provenance; only the new one gets the
		// second source.
		require.NotNil(t, values[0].Source)
		assert.Equal(t, "Phoenix", *values[0].Source)
		require.NotNil(t, values[1].Source)
		assert.Equal(t, "M83", *values[1].Source)
	})

	t.Run("parsing the same payload twice changes nothing", func(t *testing.T) {
		payload := []services.SpotifyArtist{
			artist("a1", "Daft Punk"),
			artist("a2", "Justice"),
		}
		source := "Phoenix"

		set := NewCandidateSet()
		require.NoError(t, ParseArtistResponse(payload, set, &source))
		once := set.Values()

		require.NoError(t, ParseArtistResponse(payload, set, &source))
		twice := set.Values()

		assert.Equal(t, once, twice)
	})

	t.Run("nil source leaves provenance empty", func(t *testing.T) {
		set := NewCandidateSet()

		require.NoError(t, ParseArtistResponse([]services.SpotifyArtist{
			artist("a1", "Phoenix"),
		}, set, nil))

		values := set.Values()
		require.Len(t, values, 1)
		assert.Nil(t, values[0].Source)
	})

	t.Run("missing id fails the whole call", func(t *testing.T) {
		set := NewCandidateSet()

		err := ParseArtistResponse([]services.SpotifyArtist{
			artist("a1", "Phoenix"),
			artist("", "Nameless"),
		}, set, nil)

		assert.ErrorIs(t, err, ErrExternalData)
	})

	t.Run("missing name fails the whole call", func(t *testing.T) {
		set := NewCandidateSet()

		err := ParseArtistResponse([]services.SpotifyArtist{
			artist("a1", ""),
		}, set, nil)

		assert.ErrorIs(t, err, ErrExternalData)
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		set := NewCandidateSet()

		require.NoError(t, ParseArtistResponse(nil, set, nil))
		assert.Equal(t, 0, set.Len())
	})
}

func TestFirstImageURL(t *testing.T) {
	assert.Nil(t, firstImageURL(nil))
	assert.Nil(t, firstImageURL([]services.SpotifyImage{{URL: ""}}))

	url := firstImageURL([]services.SpotifyImage{
		{URL: "https://img.example/large.jpg"},
		{URL: "https://img.example/small.jpg"},
	})
	require.NotNil(t, url)
	assert.Equal(t, "https://img.example/large.jpg", *url)
}
