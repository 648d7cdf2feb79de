package userController

import (
	"context"
	"time"

	. "consa/internal/models"
	"consa/internal/repositories"
	"consa/internal/services"
	logger "consa/pkg/logger"

	"github.com/google/uuid"
)

type UserController struct {
	userRepo       repositories.UserRepository
	tokenRepo      repositories.SpotifyTokenRepository
	spotifyService *services.SpotifyService
	log            logger.Logger
}

type UserControllerInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	GetSpotifyAuthURL(user *User) (string, error)
	HandleSpotifyCallback(ctx context.Context, user *User, code string) error
	IsSpotifyConnected(ctx context.Context, userID uuid.UUID) bool
}

func New(
	userRepo repositories.UserRepository,
	tokenRepo repositories.SpotifyTokenRepository,
	spotifyService *services.SpotifyService,
) UserControllerInterface {
	return &UserController{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		spotifyService: spotifyService,
		log:            logger.New("userController"),
	}
}

// GetProfile returns the user's profile with saved concerts ordered by date
func (uc *UserController) GetProfile(
	ctx context.Context,
	userID uuid.UUID,
) (*UserProfile, error) {
	log := uc.log.Function("GetProfile")

	user, err := uc.userRepo.GetWithConcerts(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to load profile", err, "userID", userID)
	}

	profile := user.ToProfile()
	return &profile, nil
}

// GetSpotifyAuthURL returns the authorization URL for connecting Spotify.
// The user ID rides along as OAuth state and is checked on callback.
func (uc *UserController) GetSpotifyAuthURL(user *User) (string, error) {
	log := uc.log.Function("GetSpotifyAuthURL")

	if !uc.spotifyService.IsConfigured() {
		return "", log.ErrMsg("spotify integration is not configured")
	}

	return uc.spotifyService.GetAuthorizeURL(user.ID.String()), nil
}

// HandleSpotifyCallback exchanges the authorization code and caches the
// access token for the token's lifetime.
func (uc *UserController) HandleSpotifyCallback(
	ctx context.Context,
	user *User,
	code string,
) error {
	log := uc.log.Function("HandleSpotifyCallback")

	token, err := uc.spotifyService.ExchangeCode(ctx, code)
	if err != nil {
		return log.Err("failed to exchange authorization code", err, "userID", user.ID)
	}

	ttl := time.Duration(token.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = time.Hour
	}

	if err := uc.tokenRepo.Save(ctx, user.ID, token.AccessToken, ttl); err != nil {
		return log.Err("failed to store spotify token", err, "userID", user.ID)
	}

	log.Info("Spotify account connected", "userID", user.ID)
	return nil
}

// IsSpotifyConnected reports whether a usable access token is cached
func (uc *UserController) IsSpotifyConnected(ctx context.Context, userID uuid.UUID) bool {
	_, found, err := uc.tokenRepo.Get(ctx, userID)
	if err != nil {
		uc.log.Function("IsSpotifyConnected").
			Warn("failed to read spotify token", "userID", userID, "error", err)
		return false
	}
	return found
}
