package handlers

import (
	"stylecurator/internal/models"
	"stylecurator/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RecommendationHandler handles outfit generation requests.
type RecommendationHandler struct {
	service *services.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(service *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// RegisterRoutes registers the recommendation routes with the Fiber app.
func (h *RecommendationHandler) RegisterRoutes(router fiber.Router) {
	recRoutes := router.Group("/recommendations")
	recRoutes.Post("/", h.HandleRecommend)
	recRoutes.Get("/options", h.HandleOptions)
}

// HandleRecommend generates outfits for the posted preferences. Fields left
// out of the body keep their defaults.
func (h *RecommendationHandler) HandleRecommend(c *fiber.Ctx) error {
	prefs := models.DefaultPreferences()
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&prefs); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}
	if err := prefs.Validate(); err != nil {
		return validationError(c, "Invalid style preferences", err)
	}

	rec, err := h.service.Recommend(c.UserContext(), prefs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not generate recommendations",
			"error":   err.Error(),
		})
	}
	return c.JSON(rec)
}

// HandleOptions returns the choices the preference pickers offer.
func (h *RecommendationHandler) HandleOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"styles":     models.StyleOptions,
		"occasions":  models.OccasionOptions,
		"colors":     models.ColorOptions,
		"categories": models.CategoryOptions,
		"defaults":   models.DefaultPreferences(),
	})
}
