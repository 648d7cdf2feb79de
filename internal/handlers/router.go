package handlers

import (
	"consa/internal/app"
	"consa/internal/handlers/middleware"
	logger "consa/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) (err error) {
	router.Use(app.Middleware.TraceID())

	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewAuthHandler(*app, api).Register()
	NewUserHandler(*app, api).Register()
	NewLocationHandler(*app, api).Register()
	NewRecommendationHandler(*app, api).Register()
	NewConcertHandler(*app, api).Register()

	return nil
}
