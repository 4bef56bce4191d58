package views

import "stylecurator/internal/models"

// ProductCard is one tile of the product grid.
type ProductCard struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	Price        Price   `json:"price"`
	RatingText   string  `json:"rating_text"`
	ReviewsCount int     `json:"reviews_count"`
	TrendScore   int     `json:"trend_score"`
	Tags         Preview `json:"tags"`
	Sizes        Preview `json:"sizes"`
	Colors       Preview `json:"colors"`
}

// GridView is the product listing page. Notice is set when the listing could
// not be fetched and Products fell back to empty.
type GridView struct {
	Filters          models.FilterCriteria `json:"filters"`
	HasActiveFilters bool                  `json:"has_active_filters"`
	Products         []ProductCard         `json:"products"`
	Count            int                   `json:"count"`
	Notice           string                `json:"notice,omitempty"`
}

// CardOf derives a grid card from a product.
func CardOf(p models.Product) ProductCard {
	return ProductCard{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Category:     p.Category,
		Image:        ImageAt(p.Images, 0, GridPlaceholderImage),
		Price:        PriceOf(p),
		RatingText:   RatingText(p.Rating),
		ReviewsCount: p.ReviewsCount,
		TrendScore:   p.TrendScore,
		Tags:         PreviewOf(p.Tags, 3),
		Sizes:        PreviewOf(p.Sizes, 4),
		Colors:       PreviewOf(p.Colors, 3),
	}
}

// NewGridView builds the listing page for the given filters.
func NewGridView(filters models.FilterCriteria, products []models.Product) GridView {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, CardOf(p))
	}
	return GridView{
		Filters:          filters,
		HasActiveFilters: filters.HasActive(),
		Products:         cards,
		Count:            len(cards),
	}
}
