package handlers

import (
	"consa/internal/app"
	recommendationController "consa/internal/controllers/recommendation"
	"consa/internal/handlers/middleware"
	"consa/internal/models"
	logger "consa/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type RecommendationHandler struct {
	Handler
	recommendationController recommendationController.RecommendationControllerInterface
}

func NewRecommendationHandler(app app.App, router fiber.Router) *RecommendationHandler {
	log := logger.New("handlers").File("recommendation_handler")
	return &RecommendationHandler{
		recommendationController: app.Controllers.Recommendation,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *RecommendationHandler) Register() {
	protected := h.router.Group("/", h.middleware.RequireAuth())

	protected.Get("/recommendations", h.getConcertRecs)
	protected.Get("/artists/search", h.searchArtists)
	protected.Get("/artists/:id/events", h.getArtistEvents)
}

func (h *RecommendationHandler) getConcertRecs(c *fiber.Ctx) error {
	log := h.log.Function("getConcertRecs")
	user := middleware.GetUser(c)

	locationID := c.Query("locationId")
	if locationID == "" {
		log.Info("missing locationId parameter")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "locationId parameter is required",
		})
	}

	result, err := h.recommendationController.GetConcertRecs(c.UserContext(), user, locationID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

func (h *RecommendationHandler) searchArtists(c *fiber.Ctx) error {
	log := h.log.Function("searchArtists")
	user := middleware.GetUser(c)

	query := c.Query("query")
	if query == "" {
		log.Info("missing query parameter")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter is required",
		})
	}

	artists, err := h.recommendationController.SearchArtists(c.UserContext(), user, query)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"artists": artists,
	})
}

func (h *RecommendationHandler) getArtistEvents(c *fiber.Ctx) error {
	log := h.log.Function("getArtistEvents")

	spotifyID := c.Params("id")
	name := c.Query("name")
	locationID := c.Query("locationId")
	if name == "" || locationID == "" {
		log.Info("missing name or locationId parameter")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and locationId parameters are required",
		})
	}

	candidate := models.ArtistCandidate{
		SpotifyID:  spotifyID,
		ArtistName: name,
	}

	concerts, err := h.recommendationController.GetArtistEvents(c.UserContext(), candidate, locationID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"concerts": concerts,
	})
}
