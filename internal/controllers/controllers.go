package controllers

import (
	"consa/internal/repositories"
	"consa/internal/services"

	authController "consa/internal/controllers/auth"
	concertController "consa/internal/controllers/concerts"
	locationController "consa/internal/controllers/location"
	recommendationController "consa/internal/controllers/recommendation"
	userController "consa/internal/controllers/users"
)

type Controllers struct {
	Auth           authController.AuthControllerInterface
	User           userController.UserControllerInterface
	Location       locationController.LocationControllerInterface
	Recommendation recommendationController.RecommendationControllerInterface
	Concert        concertController.ConcertControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
) Controllers {
	return Controllers{
		Auth:     authController.New(repos.User, services.Session),
		User:     userController.New(repos.User, repos.SpotifyToken, services.Spotify),
		Location: locationController.New(services.Songkick),
		Recommendation: recommendationController.New(
			services.Spotify,
			services.Songkick,
			repos.SpotifyToken,
			repos.RecommendationRun,
		),
		Concert: concertController.New(repos.Concert),
	}
}
