package middleware

import (
	"consa/config"
	"consa/internal/repositories"
	"consa/internal/services"
	logger "consa/pkg/logger"
)

type Middleware struct {
	userRepo       repositories.UserRepository
	sessionService *services.SessionService
	Config         config.Config
	log            logger.Logger
}

func New(
	config config.Config,
	repos repositories.Repository,
	sessionService *services.SessionService,
) Middleware {
	return Middleware{
		userRepo:       repos.User,
		sessionService: sessionService,
		Config:         config,
		log:            logger.New("middleware"),
	}
}
