package authController

import (
	"context"
	"strings"
	"time"

	. "consa/internal/models"
	"consa/internal/repositories"
	"consa/internal/services"
	logger "consa/pkg/logger"
)

const MinPasswordLength = 8

type AuthController struct {
	userRepo       repositories.UserRepository
	sessionService *services.SessionService
	log            logger.Logger
}

type AuthControllerInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
}

// AuthResult carries the authenticated user and their session token
type AuthResult struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

func New(
	userRepo repositories.UserRepository,
	sessionService *services.SessionService,
) AuthControllerInterface {
	return &AuthController{
		userRepo:       userRepo,
		sessionService: sessionService,
		log:            logger.New("authController"),
	}
}

// Register creates a new user account and opens a session
func (ac *AuthController) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResult, error) {
	log := ac.log.Function("Register")

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, log.ErrMsg("a valid email is required")
	}
	if len(req.Password) < MinPasswordLength {
		return nil, log.Error("password too short", "minLength", MinPasswordLength)
	}

	if _, err := ac.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, log.Error("an account with this email already exists", "email", email)
	}

	user := &User{Email: email}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	now := time.Now()
	user.LastLoginAt = &now

	if err := ac.userRepo.Create(ctx, user); err != nil {
		return nil, log.Err("failed to create user", err, "email", email)
	}

	token, err := ac.sessionService.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, log.Err("failed to create session", err, "userID", user.ID)
	}

	log.Info("User registered", "userID", user.ID)
	return &AuthResult{User: user.ToProfile(), Token: token}, nil
}

// Login verifies credentials and opens a session
func (ac *AuthController) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResult, error) {
	log := ac.log.Function("Login")

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := ac.userRepo.GetByEmail(ctx, email)
	if err != nil || !user.CheckPassword(req.Password) {
		// One message for both cases; do not reveal which failed
		return nil, log.Error("invalid email or password")
	}

	if !user.IsActive {
		return nil, log.Error("account is inactive", "userID", user.ID)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := ac.userRepo.Update(ctx, user); err != nil {
		log.Warn("failed to update last login", "userID", user.ID, "error", err)
	}

	token, err := ac.sessionService.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, log.Err("failed to create session", err, "userID", user.ID)
	}

	log.Info("User logged in", "userID", user.ID)
	return &AuthResult{User: user.ToProfile(), Token: token}, nil
}

// Logout revokes the session token
func (ac *AuthController) Logout(ctx context.Context, token string) error {
	log := ac.log.Function("Logout")

	if err := ac.sessionService.RevokeSession(ctx, token); err != nil {
		return log.Err("failed to revoke session", err)
	}

	return nil
}
