package services

import (
	"context"
	"fmt"
	"time"

	"consa/config"
	"consa/internal/database"
	logger "consa/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	SESSION_CACHE_PREFIX = "session:"
	SESSION_EXPIRY       = 7 * 24 * time.Hour
)

// SessionService issues and validates session tokens. Tokens are HS256 JWTs;
// the token ID is also held in the session cache so logout revokes the
// session server-side before the JWT expires.
type SessionService struct {
	secret []byte
	cache  database.CacheClient
	log    logger.Logger
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

func NewSessionService(config config.Config, cache database.CacheClient) *SessionService {
	return &SessionService{
		secret: []byte(config.SessionSecret),
		cache:  cache,
		log:    logger.New("sessionService"),
	}
}

// CreateSession issues a signed session token for the user
func (s *SessionService) CreateSession(
	ctx context.Context,
	userID uuid.UUID,
) (string, error) {
	log := s.log.Function("CreateSession")

	sessionID := uuid.NewString()
	now := time.Now()

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SESSION_EXPIRY)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", log.Err("failed to sign session token", err, "userID", userID)
	}

	if err := database.NewCacheBuilder(s.cache, sessionID).
		WithPrefix(SESSION_CACHE_PREFIX).
		WithStruct(userID.String()).
		WithTTL(SESSION_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		return "", log.Err("failed to store session", err, "userID", userID)
	}

	return token, nil
}

// ValidateSession verifies the token signature and that the session has not
// been revoked, returning the user ID it was issued for.
func (s *SessionService) ValidateSession(
	ctx context.Context,
	token string,
) (uuid.UUID, error) {
	log := s.log.Function("ValidateSession")

	claims, err := s.parseClaims(token)
	if err != nil {
		return uuid.Nil, err
	}

	var cachedUserID string
	found, err := database.NewCacheBuilder(s.cache, claims.ID).
		WithPrefix(SESSION_CACHE_PREFIX).
		WithContext(ctx).
		Get(&cachedUserID)
	if err != nil {
		return uuid.Nil, log.Err("failed to look up session", err)
	}
	if !found {
		return uuid.Nil, fmt.Errorf("session revoked or expired")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, log.Err("invalid session subject", err)
	}

	if cachedUserID != claims.Subject {
		return uuid.Nil, fmt.Errorf("session does not match user")
	}

	return userID, nil
}

// RevokeSession deletes the session so the token can no longer be used
func (s *SessionService) RevokeSession(ctx context.Context, token string) error {
	log := s.log.Function("RevokeSession")

	claims, err := s.parseClaims(token)
	if err != nil {
		return err
	}

	if err := database.NewCacheBuilder(s.cache, claims.ID).
		WithPrefix(SESSION_CACHE_PREFIX).
		WithContext(ctx).
		Delete(); err != nil {
		return log.Err("failed to delete session", err)
	}

	return nil
}

func (s *SessionService) parseClaims(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	if !parsed.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}
