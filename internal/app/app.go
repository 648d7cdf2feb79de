package app

import (
	"context"

	"consa/config"
	"consa/internal/controllers"
	"consa/internal/database"
	"consa/internal/handlers/middleware"
	"consa/internal/jobs"
	"consa/internal/repositories"
	"consa/internal/services"
	logger "consa/pkg/logger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	Services    services.Service
	Repos       repositories.Repository
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	service := services.New(db, config)
	repos := repositories.New(db)
	controllers := controllers.New(service, repos)
	middleware := middleware.New(config, repos, service.Session)

	if config.SchedulerEnabled {
		refreshJob := jobs.NewConcertRefreshJob(repos.Concert, service.Songkick, services.Daily)
		if err := service.Scheduler.AddJob(refreshJob); err != nil {
			return &App{}, log.Err("failed to register concert refresh job", err)
		}

		if err := service.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
	}

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		Services:    service,
		Repos:       repos,
		Controllers: controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Services.Spotify,
		a.Services.Songkick,
		a.Services.Session,
		a.Services.Scheduler,
		a.Repos.User,
		a.Repos.Concert,
		a.Repos.RecommendationRun,
		a.Repos.SpotifyToken,
		a.Controllers.Auth,
		a.Controllers.User,
		a.Controllers.Location,
		a.Controllers.Recommendation,
		a.Controllers.Concert,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
