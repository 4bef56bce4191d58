package handlers

import (
	"errors"

	"stylecurator/internal/catalog"
	"stylecurator/internal/models"
	"stylecurator/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product grid, product detail
// and filter pickers.
type ProductHandler struct {
	browse *services.BrowseService
	detail *services.DetailService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(browse *services.BrowseService, detail *services.DetailService) *ProductHandler {
	return &ProductHandler{
		browse: browse,
		detail: detail,
	}
}

// RegisterRoutes registers the product and filter routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/:id/like", h.HandleLikeProduct)

	filterRoutes := router.Group("/filters")
	filterRoutes.Get("/", h.HandleFilterOptions)
	filterRoutes.Get("/defaults", h.HandleDefaultFilters)
}

// FiltersFromQuery reads filter criteria from query parameters. Absent
// parameters keep their defaults; sets are comma separated.
func FiltersFromQuery(c *fiber.Ctx) models.FilterCriteria {
	f := models.DefaultFilters()
	f.Category = c.Query("category")
	f.Brand = c.Query("brand")
	f.Search = c.Query("search")
	f.MinPrice = c.QueryFloat("min_price", models.DefaultMinPrice)
	f.MaxPrice = c.QueryFloat("max_price", models.DefaultMaxPrice)
	f.Sizes = models.ParseStringSet(c.Query("sizes"))
	f.Colors = models.ParseStringSet(c.Query("colors"))
	f.Tags = models.ParseStringSet(c.Query("tags"))
	return f
}

// HandleListProducts returns the product grid for the filters in the query.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filters := FiltersFromQuery(c)
	if err := filters.Validate(); err != nil {
		return validationError(c, "Invalid filters", err)
	}

	query := models.NewListQuery(filters, c.QueryInt("limit", services.DefaultListLimit))
	query.Offset = c.QueryInt("offset", 0)
	if sortBy := c.Query("sort_by"); sortBy != "" {
		query.SortBy = sortBy
	}
	if order := c.Query("sort_order"); order == "asc" || order == "desc" {
		query.SortOrder = order
	}

	return c.JSON(h.browse.Browse(c.UserContext(), query))
}

// HandleGetProduct returns the detail view of one product. The optional
// image, size, color and quantity parameters replay selections made on the page.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	state, err := h.detail.Open(c.UserContext(), productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Product not found",
			"error":   err.Error(),
		})
	}

	state = state.SelectImage(c.QueryInt("image", 0))
	if size := c.Query("size"); size != "" {
		state = state.SelectSize(size)
	}
	if color := c.Query("color"); color != "" {
		state = state.SelectColor(color)
	}
	state = state.SetQuantity(c.QueryInt("quantity", 1))

	return c.JSON(state.View())
}

// HandleLikeProduct registers a like and returns the catalog's trend score.
func (h *ProductHandler) HandleLikeProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	result, err := h.detail.Like(c.UserContext(), services.LikeCommand{ProductID: productID})
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Could not like product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":     "Product liked successfully",
		"product_id":  result.ProductID,
		"trend_score": result.TrendScore,
	})
}

// HandleFilterOptions returns the distinct facet values.
func (h *ProductHandler) HandleFilterOptions(c *fiber.Ctx) error {
	return c.JSON(h.browse.FilterOptions(c.UserContext()))
}

// HandleDefaultFilters returns the criteria a cleared filter panel holds.
func (h *ProductHandler) HandleDefaultFilters(c *fiber.Ctx) error {
	return c.JSON(models.DefaultFilters())
}
