package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"stylecurator/internal/catalog"
	"stylecurator/internal/logger"
	"stylecurator/internal/models"
	"stylecurator/internal/recommend"
)

// RecommendationPoolSize is how many products outfits are assembled from.
const RecommendationPoolSize = 12

// RecommendationService fetches a product pool and assembles outfits from it.
type RecommendationService struct {
	catalog   catalog.Catalog
	publisher EventPublisher
	log       *logger.Logger

	mu        sync.Mutex // guards generator
	generator *recommend.Generator
	now       func() time.Time
}

// NewRecommendationService creates a new RecommendationService. publisher may be nil.
func NewRecommendationService(c catalog.Catalog, generator *recommend.Generator, publisher EventPublisher, log *logger.Logger) *RecommendationService {
	if generator == nil {
		generator = recommend.NewGenerator()
	}
	return &RecommendationService{
		catalog:   c,
		publisher: publisher,
		log:       log.With("component", "recommendations"),
		generator: generator,
		now:       time.Now,
	}
}

// Recommend validates prefs and runs one generation. When the product pool
// cannot be fetched the generator is not run and the result has no outfits.
func (s *RecommendationService) Recommend(ctx context.Context, prefs models.StylePreferences) (*models.Recommendation, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	rec := &models.Recommendation{
		ID:          uuid.NewString(),
		Preferences: prefs,
		Outfits:     []models.Outfit{},
		GeneratedAt: s.now().UTC(),
	}
	log := s.log.With("run_id", rec.ID)

	// the pool keeps the catalog's own price range; the budget is applied by the generator
	query := models.NewListQuery(models.FilterCriteria{}, RecommendationPoolSize).WithoutPriceBounds()
	products, err := s.catalog.ListProducts(ctx, query)
	if err != nil {
		log.Error(err, "failed to fetch products for recommendations")
		return rec, nil
	}

	s.mu.Lock()
	rec.Outfits = s.generator.Generate(products, prefs)
	s.mu.Unlock()

	log.WithFields(map[string]any{"products": len(products), "outfits": len(rec.Outfits)}).Debug("outfits generated")

	publish(ctx, s.publisher, log, InteractionEvent{
		Type:       EventOutfitsMade,
		RunID:      rec.ID,
		Outfits:    len(rec.Outfits),
		OccurredAt: rec.GeneratedAt,
	})
	return rec, nil
}
