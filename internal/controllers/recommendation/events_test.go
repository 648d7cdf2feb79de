package recommendationController

import (
	"testing"
	"time"

	. "consa/internal/models"
	"consa/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEventDate(t *testing.T) {
	t.Run("datetime takes precedence over date", func(t *testing.T) {
		date, datetime, err := resolveEventDate(services.SongkickDate{
			Date:     "2010-02-16",
			Datetime: "2010-02-16T19:30:00+0000",
			Time:     "19:30:00",
		})

		require.NoError(t, err)
		require.NotNil(t, datetime)
		require.NotNil(t, date)
		assert.Equal(t, time.Date(2010, 2, 16, 19, 30, 0, 0, time.UTC), *datetime)
		assert.Equal(t, time.Date(2010, 2, 16, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("bare date coerces to midnight", func(t *testing.T) {
		date, datetime, err := resolveEventDate(services.SongkickDate{
			Date: "2017-08-11",
		})

		require.NoError(t, err)
		require.NotNil(t, date)
		require.NotNil(t, datetime)
		assert.Equal(t, time.Date(2017, 8, 11, 0, 0, 0, 0, time.UTC), *date)
		assert.Equal(t, *date, *datetime)
	})

	t.Run("neither field present yields nils without error", func(t *testing.T) {
		date, datetime, err := resolveEventDate(services.SongkickDate{})

		require.NoError(t, err)
		assert.Nil(t, date)
		assert.Nil(t, datetime)
	})

	t.Run("malformed datetime errors", func(t *testing.T) {
		_, _, err := resolveEventDate(services.SongkickDate{
			Datetime: "not-a-datetime",
		})
		assert.Error(t, err)
	})

	t.Run("malformed date errors", func(t *testing.T) {
		_, _, err := resolveEventDate(services.SongkickDate{
			Date: "16/02/2010",
		})
		assert.Error(t, err)
	})
}

func TestCreateConcertList(t *testing.T) {
	source := "Phoenix"
	imageURL := "https://img.example/m83.jpg"
	candidate := ArtistCandidate{
		SpotifyID:  "a2",
		ArtistName: "M83",
		ImageURL:   &imageURL,
		Source:     &source,
	}

	lat, lng := 37.8077, -122.2727

	t.Run("shapes a single instant event", func(t *testing.T) {
		concerts := CreateConcertList([]services.SongkickEvent{
			{
				ID:          11129128,
				DisplayName: "M83 at Fox Theater (February 16, 2010)",
				Type:        "Concert",
				URI:         "https://www.songkick.com/concerts/11129128",
				Venue:       services.SongkickVenue{DisplayName: "Fox Theater", Lat: &lat, Lng: &lng},
				Location:    services.SongkickEventLocation{City: "Oakland, CA, US"},
				Start: services.SongkickDate{
					Date:     "2010-02-16",
					Datetime: "2010-02-16T19:30:00+0000",
				},
			},
		}, candidate)

		require.Len(t, concerts, 1)
		concert := concerts[0]
		assert.Equal(t, int64(11129128), concert.SongkickID)
		assert.Equal(t, "M83", concert.Artist)
		assert.Equal(t, "a2", concert.SpotifyID)
		assert.Equal(t, "Fox Theater", concert.VenueName)
		assert.Equal(t, "Oakland, CA, US", concert.City)
		require.NotNil(t, concert.Source)
		assert.Equal(t, "Phoenix", *concert.Source)
		require.NotNil(t, concert.ImageURL)
		assert.Equal(t, imageURL, *concert.ImageURL)

		require.NotNil(t, concert.StartDatetime)
		assert.Equal(t, time.Date(2010, 2, 16, 19, 30, 0, 0, time.UTC), *concert.StartDatetime)
		assert.Nil(t, concert.EndDate)
		assert.Nil(t, concert.EndDatetime)
		assert.False(t, concert.IsMultiDay())
	})

	t.Run("shapes a multi-day festival", func(t *testing.T) {
		concerts := CreateConcertList([]services.SongkickEvent{
			{
				ID:          30173984,
				DisplayName: "Outside Lands 2017",
				Type:        "Festival",
				URI:         "https://www.songkick.com/festivals/30173984",
				Start:       services.SongkickDate{Date: "2017-08-11"},
				End:         &services.SongkickDate{Date: "2017-08-13"},
			},
		}, candidate)

		require.Len(t, concerts, 1)
		concert := concerts[0]
		require.NotNil(t, concert.StartDate)
		require.NotNil(t, concert.EndDate)
		assert.Equal(t, time.Date(2017, 8, 11, 0, 0, 0, 0, time.UTC), *concert.StartDate)
		assert.Equal(t, time.Date(2017, 8, 13, 0, 0, 0, 0, time.UTC), *concert.EndDate)
		assert.True(t, concert.IsMultiDay())
	})

	t.Run("empty input yields an empty list", func(t *testing.T) {
		concerts := CreateConcertList(nil, candidate)
		require.NotNil(t, concerts)
		assert.Empty(t, concerts)
	})

	t.Run("a record with unparseable dates is dropped, the rest survive", func(t *testing.T) {
		concerts := CreateConcertList([]services.SongkickEvent{
			{
				ID:    1,
				Start: services.SongkickDate{Date: "2026-09-12"},
			},
			{
				ID:    2,
				Start: services.SongkickDate{Datetime: "garbage"},
			},
			{
				ID:    3,
				Start: services.SongkickDate{Date: "2026-10-01"},
			},
		}, candidate)

		require.Len(t, concerts, 2)
		assert.Equal(t, int64(1), concerts[0].SongkickID)
		assert.Equal(t, int64(3), concerts[1].SongkickID)
	})

	t.Run("missing dates are tolerated", func(t *testing.T) {
		concerts := CreateConcertList([]services.SongkickEvent{
			{ID: 4, DisplayName: "TBA show"},
		}, candidate)

		require.Len(t, concerts, 1)
		assert.Nil(t, concerts[0].StartDate)
		assert.Nil(t, concerts[0].StartDatetime)
	})

	t.Run("output follows input order", func(t *testing.T) {
		concerts := CreateConcertList([]services.SongkickEvent{
			{ID: 30, Start: services.SongkickDate{Date: "2026-11-01"}},
			{ID: 10, Start: services.SongkickDate{Date: "2026-09-01"}},
			{ID: 20, Start: services.SongkickDate{Date: "2026-10-01"}},
		}, candidate)

		require.Len(t, concerts, 3)
		assert.Equal(t, int64(30), concerts[0].SongkickID)
		assert.Equal(t, int64(10), concerts[1].SongkickID)
		assert.Equal(t, int64(20), concerts[2].SongkickID)
	})
}
