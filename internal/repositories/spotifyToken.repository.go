package repositories

import (
	"context"
	"time"

	"consa/internal/database"
	logger "consa/pkg/logger"

	"github.com/google/uuid"
)

const SPOTIFY_TOKEN_CACHE_PREFIX = "spotify:token:"

// SpotifyTokenRepository holds per-user Spotify access tokens in the user
// cache. Tokens expire with the upstream TTL; nothing is persisted.
type SpotifyTokenRepository interface {
	Save(ctx context.Context, userID uuid.UUID, accessToken string, ttl time.Duration) error
	Get(ctx context.Context, userID uuid.UUID) (string, bool, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type spotifyTokenRepository struct {
	db  database.DB
	log logger.Logger
}

func NewSpotifyTokenRepository(db database.DB) SpotifyTokenRepository {
	return &spotifyTokenRepository{
		db:  db,
		log: logger.New("spotifyTokenRepository"),
	}
}

func (r *spotifyTokenRepository) Save(
	ctx context.Context,
	userID uuid.UUID,
	accessToken string,
	ttl time.Duration,
) error {
	log := r.log.Function("Save")

	if err := database.NewCacheBuilder(r.db.Cache.User, userID).
		WithPrefix(SPOTIFY_TOKEN_CACHE_PREFIX).
		WithStruct(accessToken).
		WithTTL(ttl).
		WithContext(ctx).
		Set(); err != nil {
		return log.Err("failed to cache spotify token", err, "userID", userID)
	}

	return nil
}

func (r *spotifyTokenRepository) Get(
	ctx context.Context,
	userID uuid.UUID,
) (string, bool, error) {
	log := r.log.Function("Get")

	var token string
	found, err := database.NewCacheBuilder(r.db.Cache.User, userID).
		WithPrefix(SPOTIFY_TOKEN_CACHE_PREFIX).
		WithContext(ctx).
		Get(&token)
	if err != nil {
		return "", false, log.Err("failed to read spotify token", err, "userID", userID)
	}

	return token, found, nil
}

func (r *spotifyTokenRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	log := r.log.Function("Delete")

	if err := database.NewCacheBuilder(r.db.Cache.User, userID).
		WithPrefix(SPOTIFY_TOKEN_CACHE_PREFIX).
		WithContext(ctx).
		Delete(); err != nil {
		return log.Err("failed to delete spotify token", err, "userID", userID)
	}

	return nil
}
