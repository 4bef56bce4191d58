package handlers

import (
	"stylecurator/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TrendingHandler serves the trending section.
type TrendingHandler struct {
	service *services.TrendingService
}

// NewTrendingHandler creates a new TrendingHandler.
func NewTrendingHandler(service *services.TrendingService) *TrendingHandler {
	return &TrendingHandler{service: service}
}

// RegisterRoutes registers the trending route with the Fiber app.
func (h *TrendingHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/trending", h.HandleTrending)
}

// HandleTrending returns the top products and their aggregates.
func (h *TrendingHandler) HandleTrending(c *fiber.Ctx) error {
	return c.JSON(h.service.Trending(c.UserContext()))
}
