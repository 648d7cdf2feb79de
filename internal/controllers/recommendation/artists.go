package recommendationController

import (
	"errors"
	"fmt"

	. "consa/internal/models"
	"consa/internal/services"
	"consa/internal/utils"
)

// ErrExternalData marks a malformed payload from an upstream API, caught at
// the boundary before it enters the shaping logic.
var ErrExternalData = errors.New("malformed external data")

// CandidateSet is the ordered artist accumulator threaded through parser
// calls during one aggregation run. Spotify IDs are unique across the set;
// insertion order is the order of first appearance.
type CandidateSet = utils.UniqueList[string, ArtistCandidate]

func NewCandidateSet() *CandidateSet {
	return utils.NewUniqueList[string, ArtistCandidate]()
}

// ParseArtistResponse folds raw catalog artist objects into the accumulator.
// Candidates already present keep their original entry untouched, including
// provenance; source is stamped only on entries newly added by this call.
// A raw item missing its identifier or name fails the whole call.
func ParseArtistResponse(
	rawItems []services.SpotifyArtist,
	existing *CandidateSet,
	source *string,
) error {
	for _, item := range rawItems {
		if item.ID == "" {
			return fmt.Errorf("%w: artist item missing id", ErrExternalData)
		}
		if item.Name == "" {
			return fmt.Errorf("%w: artist %q missing name", ErrExternalData, item.ID)
		}

		candidate := ArtistCandidate{
			SpotifyID:  item.ID,
			ArtistName: item.Name,
			ImageURL:   firstImageURL(item.Images),
			Source:     source,
		}

		existing.Add(item.ID, candidate)
	}

	return nil
}

func firstImageURL(images []services.SpotifyImage) *string {
	if len(images) == 0 || images[0].URL == "" {
		return nil
	}
	url := images[0].URL
	return &url
}
