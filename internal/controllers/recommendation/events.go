package recommendationController

import (
	"fmt"
	"time"

	. "consa/internal/models"
	"consa/internal/services"
)

const (
	songkickDatetimeLayout = "2006-01-02T15:04:05"
	songkickDateLayout     = "2006-01-02"

	// Width of the fixed timezone offset suffix Songkick appends to
	// datetime strings ("+0000"), which must be dropped before parsing.
	datetimeOffsetWidth = 5
)

// CreateConcertList shapes raw event objects into concert records, stamping
// the candidate's identity and provenance on each. Records follow the input
// order; an empty or nil input yields an empty list. An event whose date
// strings cannot be parsed is dropped, the rest of the batch survives.
func CreateConcertList(
	rawEvents []services.SongkickEvent,
	candidate ArtistCandidate,
) []Concert {
	concerts := make([]Concert, 0, len(rawEvents))

	for _, event := range rawEvents {
		concert := Concert{
			SongkickID:  event.ID,
			DisplayName: event.DisplayName,
			SongkickURL: event.URI,
			Artist:      candidate.ArtistName,
			SpotifyID:   candidate.SpotifyID,
			ImageURL:    candidate.ImageURL,
			Source:      candidate.Source,
			VenueName:   event.Venue.DisplayName,
			VenueLat:    event.Venue.Lat,
			VenueLng:    event.Venue.Lng,
			City:        event.Location.City,
		}

		startDate, startDatetime, err := resolveEventDate(event.Start)
		if err != nil {
			continue
		}
		concert.StartDate = startDate
		concert.StartDatetime = startDatetime

		// End fields exist only for multi-day events
		if event.End != nil {
			endDate, endDatetime, err := resolveEventDate(*event.End)
			if err != nil {
				continue
			}
			concert.EndDate = endDate
			concert.EndDatetime = endDatetime
		}

		concerts = append(concerts, concert)
	}

	return concerts
}

// resolveEventDate applies the two-tier date resolution: a precise timestamp
// when present (offset suffix trimmed), else the bare calendar date coerced
// to midnight. Neither present is tolerated and yields nil values.
func resolveEventDate(raw services.SongkickDate) (*time.Time, *time.Time, error) {
	if raw.Datetime != "" {
		trimmed := raw.Datetime
		if len(trimmed) > datetimeOffsetWidth {
			trimmed = trimmed[:len(trimmed)-datetimeOffsetWidth]
		}

		parsed, err := time.Parse(songkickDatetimeLayout, trimmed)
		if err != nil {
			return nil, nil, fmt.Errorf("unparseable event datetime %q: %w", raw.Datetime, err)
		}

		date := midnightOf(parsed)
		return &date, &parsed, nil
	}

	if raw.Date != "" {
		parsed, err := time.Parse(songkickDateLayout, raw.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("unparseable event date %q: %w", raw.Date, err)
		}

		return &parsed, &parsed, nil
	}

	return nil, nil, nil
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
