package repositories

import (
	"consa/internal/database"
)

type Repository struct {
	User              UserRepository
	Concert           ConcertRepository
	RecommendationRun RecommendationRunRepository
	SpotifyToken      SpotifyTokenRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:              NewUserRepository(db),
		Concert:           NewConcertRepository(db),
		RecommendationRun: NewRecommendationRunRepository(db),
		SpotifyToken:      NewSpotifyTokenRepository(db),
	}
}
