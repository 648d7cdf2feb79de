package handlers

import (
	"consa/internal/app"
	userController "consa/internal/controllers/users"
	"consa/internal/handlers/middleware"
	logger "consa/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Handler
	userController userController.UserControllerInterface
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	log := logger.New("handlers").File("user_handler")
	return &UserHandler{
		userController: app.Controllers.User,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserHandler) Register() {
	users := h.router.Group("/users", h.middleware.RequireAuth())
	users.Get("/me", h.getProfile)

	spotify := h.router.Group("/spotify", h.middleware.RequireAuth())
	spotify.Get("/auth-url", h.getSpotifyAuthURL)
	spotify.Get("/callback", h.handleSpotifyCallback)
}

func (h *UserHandler) getProfile(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	profile, err := h.userController.GetProfile(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load profile",
		})
	}

	return c.JSON(fiber.Map{
		"user":             profile,
		"spotifyConnected": h.userController.IsSpotifyConnected(c.UserContext(), user.ID),
	})
}

func (h *UserHandler) getSpotifyAuthURL(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	authURL, err := h.userController.GetSpotifyAuthURL(user)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"authorizationUrl": authURL,
	})
}

func (h *UserHandler) handleSpotifyCallback(c *fiber.Ctx) error {
	log := h.log.Function("handleSpotifyCallback")
	user := middleware.GetUser(c)

	code := c.Query("code")
	if code == "" {
		log.Info("missing code parameter")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "code parameter is required",
		})
	}

	// State carries the user ID set when the authorize URL was issued
	if state := c.Query("state"); state != "" && state != user.ID.String() {
		log.Info("state mismatch", "userID", user.ID)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "state parameter does not match",
		})
	}

	if err := h.userController.HandleSpotifyCallback(c.UserContext(), user, code); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to connect Spotify account",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Spotify account connected",
	})
}
