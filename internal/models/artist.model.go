package models

// ArtistCandidate is an artist surfaced during recommendation aggregation.
// Candidates are ephemeral: built fresh per aggregation run from the music
// catalog API and never persisted on their own.
type ArtistCandidate struct {
	SpotifyID  string  `json:"spotifyId"`
	ArtistName string  `json:"artistName"`
	ImageURL   *string `json:"imageUrl,omitempty"`

	// Source names the seed artist whose related-artists lookup surfaced
	// this candidate; nil for directly fetched top artists.
	Source *string `json:"source,omitempty"`
}
