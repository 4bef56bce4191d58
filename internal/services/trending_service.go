package services

import (
	"context"

	"stylecurator/internal/catalog"
	"stylecurator/internal/logger"
	"stylecurator/internal/views"
)

// TrendingService serves the trending section. Nothing is cached; every call
// fetches and aggregates again.
type TrendingService struct {
	catalog catalog.Catalog
	log     *logger.Logger
}

// NewTrendingService creates a new TrendingService.
func NewTrendingService(c catalog.Catalog, log *logger.Logger) *TrendingService {
	return &TrendingService{catalog: c, log: log.With("component", "trending")}
}

// Trending returns the top products by trend score with their aggregates.
func (s *TrendingService) Trending(ctx context.Context) views.TrendingView {
	products, err := s.catalog.TrendingProducts(ctx, views.TrendingSize)
	if err != nil {
		s.log.Error(err, "failed to fetch trending products")
		view := views.NewTrendingView(nil)
		view.Notice = NoticeCatalogUnavailable
		return view
	}
	return views.NewTrendingView(products)
}
