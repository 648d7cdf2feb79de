package handlers

import (
	"consa/internal/app"
	locationController "consa/internal/controllers/location"
	logger "consa/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	Handler
	locationController locationController.LocationControllerInterface
}

func NewLocationHandler(app app.App, router fiber.Router) *LocationHandler {
	log := logger.New("handlers").File("location_handler")
	return &LocationHandler{
		locationController: app.Controllers.Location,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *LocationHandler) Register() {
	locations := h.router.Group("/locations", h.middleware.RequireAuth())
	locations.Get("/", h.searchLocations)
}

func (h *LocationHandler) searchLocations(c *fiber.Ctx) error {
	log := h.log.Function("searchLocations")

	query := c.Query("query")
	if query == "" {
		log.Info("missing query parameter")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter is required",
		})
	}

	locations, err := h.locationController.SearchLocations(c.UserContext(), query)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Location search failed",
		})
	}

	return c.JSON(fiber.Map{
		"locations": locations,
	})
}
