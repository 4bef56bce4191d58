package views

import "stylecurator/internal/models"

// TrendingSize is how many products the trending section shows.
const TrendingSize = 6

// highlyRatedThreshold is exclusive.
const highlyRatedThreshold = 4.5

// TrendingCard is one ranked entry of the trending section.
type TrendingCard struct {
	Rank       int     `json:"rank"`
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Image      string  `json:"image"`
	Price      Price   `json:"price"`
	RatingText string  `json:"rating_text"`
	TrendScore int     `json:"trend_score"`
	Tags       Preview `json:"tags"`
}

// TrendingStats are aggregates over the fetched trending set.
type TrendingStats struct {
	TotalTrendScore int `json:"total_trend_score"`
	TotalReviews    int `json:"total_reviews"`
	HighlyRated     int `json:"highly_rated"`
}

// TrendingView is the trending section.
type TrendingView struct {
	Products []TrendingCard `json:"products"`
	Stats    TrendingStats  `json:"stats"`
	Notice   string         `json:"notice,omitempty"`
}

// NewTrendingView ranks products in the order given and computes the stats.
func NewTrendingView(products []models.Product) TrendingView {
	cards := make([]TrendingCard, 0, len(products))
	for i, p := range products {
		cards = append(cards, TrendingCard{
			Rank:       i + 1,
			ID:         p.ID,
			Name:       p.Name,
			Brand:      p.Brand,
			Image:      ImageAt(p.Images, 0, TrendingPlaceholderImage),
			Price:      PriceOf(p),
			RatingText: RatingText(p.Rating),
			TrendScore: p.TrendScore,
			Tags:       PreviewOf(p.Tags, 2),
		})
	}
	return TrendingView{Products: cards, Stats: StatsOf(products)}
}

// StatsOf sums trend scores and reviews and counts products rated above 4.5.
func StatsOf(products []models.Product) TrendingStats {
	var stats TrendingStats
	for _, p := range products {
		stats.TotalTrendScore += p.TrendScore
		stats.TotalReviews += p.ReviewsCount
		if p.Rating != nil && *p.Rating > highlyRatedThreshold {
			stats.HighlyRated++
		}
	}
	return stats
}
