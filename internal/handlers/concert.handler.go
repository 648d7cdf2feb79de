package handlers

import (
	"strconv"

	"consa/internal/app"
	concertController "consa/internal/controllers/concerts"
	"consa/internal/handlers/middleware"
	"consa/internal/models"
	logger "consa/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type ConcertHandler struct {
	Handler
	concertController concertController.ConcertControllerInterface
}

func NewConcertHandler(app app.App, router fiber.Router) *ConcertHandler {
	log := logger.New("handlers").File("concert_handler")
	return &ConcertHandler{
		concertController: app.Controllers.Concert,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ConcertHandler) Register() {
	concerts := h.router.Group("/concerts", h.middleware.RequireAuth())
	concerts.Get("/", h.getSavedConcerts)
	concerts.Post("/", h.saveConcert)
	concerts.Delete("/:songkickId", h.removeConcert)
}

func (h *ConcertHandler) getSavedConcerts(c *fiber.Ctx) error {
	user := middleware.GetUser(c)

	concerts, err := h.concertController.GetSavedConcerts(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load saved concerts",
		})
	}

	return c.JSON(fiber.Map{
		"concerts": concerts,
	})
}

func (h *ConcertHandler) saveConcert(c *fiber.Ctx) error {
	log := h.log.Function("saveConcert")
	user := middleware.GetUser(c)

	var concert models.Concert
	if err := c.BodyParser(&concert); err != nil {
		log.Info("invalid request body", "error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.concertController.SaveConcert(c.UserContext(), user, concert); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Concert saved",
	})
}

func (h *ConcertHandler) removeConcert(c *fiber.Ctx) error {
	log := h.log.Function("removeConcert")
	user := middleware.GetUser(c)

	songkickID, err := strconv.ParseInt(c.Params("songkickId"), 10, 64)
	if err != nil {
		log.Info("invalid songkick id", "param", c.Params("songkickId"))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid concert id",
		})
	}

	if err := h.concertController.RemoveConcert(c.UserContext(), user, songkickID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Concert removed",
	})
}
