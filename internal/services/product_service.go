// Package services turns catalog data into the views the front-ends render.
// Catalog failures are logged and degrade to safe defaults.
package services

import (
	"context"
	"fmt"
	"time"

	"stylecurator/internal/catalog"
	"stylecurator/internal/logger"
	"stylecurator/internal/models"
	"stylecurator/internal/views"
)

// DefaultListLimit is the page size used when a listing asks for none.
const DefaultListLimit = 50

// NoticeCatalogUnavailable is shown in place of results the catalog failed to return.
const NoticeCatalogUnavailable = "Products are unavailable right now. Please try again later."

// BrowseService serves the filtered product grid.
type BrowseService struct {
	catalog catalog.Catalog
	log     *logger.Logger
}

// NewBrowseService creates a new BrowseService.
func NewBrowseService(c catalog.Catalog, log *logger.Logger) *BrowseService {
	return &BrowseService{catalog: c, log: log.With("component", "browse")}
}

// Browse fetches one page of products for the query. A failed fetch yields an
// empty grid carrying a notice.
func (s *BrowseService) Browse(ctx context.Context, query models.ListQuery) views.GridView {
	if query.Limit <= 0 {
		query.Limit = DefaultListLimit
	}
	products, err := s.catalog.ListProducts(ctx, query)
	if err != nil {
		s.log.Error(err, "failed to fetch products")
		grid := views.NewGridView(query.Filters, nil)
		grid.Notice = NoticeCatalogUnavailable
		return grid
	}
	return views.NewGridView(query.Filters, products)
}

// FilterOptions returns the facet values for the filter pickers, or empty
// lists when the catalog cannot provide them.
func (s *BrowseService) FilterOptions(ctx context.Context) models.FilterOptions {
	opts, err := s.catalog.FilterOptions(ctx)
	if err != nil || opts == nil {
		s.log.Error(err, "failed to fetch filter options")
		return models.FilterOptions{
			Categories: []string{},
			Brands:     []string{},
			Sizes:      []string{},
			Colors:     []string{},
			Tags:       []string{},
		}
	}
	return *opts
}

// LikeCommand asks the catalog to register one like for a product.
type LikeCommand struct {
	ProductID string
}

// DetailService serves a single product and its like action.
type DetailService struct {
	catalog   catalog.Catalog
	publisher EventPublisher
	log       *logger.Logger
}

// NewDetailService creates a new DetailService. publisher may be nil.
func NewDetailService(c catalog.Catalog, publisher EventPublisher, log *logger.Logger) *DetailService {
	return &DetailService{catalog: c, publisher: publisher, log: log.With("component", "detail")}
}

// Open fetches a product and returns its initial selection state.
func (s *DetailService) Open(ctx context.Context, id string) (views.DetailState, error) {
	product, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		s.log.With("product_id", id).Error(err, "failed to fetch product")
		return views.DetailState{}, fmt.Errorf("failed to open product %s: %w", id, err)
	}
	return views.NewDetailState(*product), nil
}

// Like executes cmd and returns the trend score the catalog now holds.
func (s *DetailService) Like(ctx context.Context, cmd LikeCommand) (*models.LikeResult, error) {
	log := s.log.With("product_id", cmd.ProductID)

	result, err := s.catalog.LikeProduct(ctx, cmd.ProductID)
	if err != nil {
		log.Error(err, "failed to like product")
		return nil, fmt.Errorf("failed to like product %s: %w", cmd.ProductID, err)
	}
	log.Debug("product liked")

	publish(ctx, s.publisher, log, InteractionEvent{
		Type:       EventProductLiked,
		ProductID:  result.ProductID,
		TrendScore: result.TrendScore,
		OccurredAt: time.Now().UTC(),
	})
	return result, nil
}

// LikeAndApply likes the product shown by state and reconciles the state to
// the catalog's value. On failure the state is returned unchanged.
func (s *DetailService) LikeAndApply(ctx context.Context, state views.DetailState) (views.DetailState, error) {
	result, err := s.Like(ctx, LikeCommand{ProductID: state.Product.ID})
	if err != nil {
		return state, err
	}
	return state.ApplyLike(*result), nil
}
