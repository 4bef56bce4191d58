package models

// Product represents a catalog item as served by the remote catalog API.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Description   string   `json:"description,omitempty"`
	Images        []string `json:"images"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Tags          []string `json:"tags"`
	Rating        *float64 `json:"rating,omitempty"` // 0-5, absent when the product has no reviews
	ReviewsCount  int      `json:"reviews_count"`
	Availability  bool     `json:"availability"`
	URL           string   `json:"url,omitempty"`
	TrendScore    int      `json:"trend_score"`
}

// FilterOptions lists the distinct values available for each filter facet.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Sizes      []string `json:"sizes"`
	Colors     []string `json:"colors"`
	Tags       []string `json:"tags"`
}

// Float64 returns a pointer to v. Handy for optional price and rating fields.
func Float64(v float64) *float64 {
	return &v
}

// Normalize replaces nil slices with empty ones and fills the default currency,
// so that records with missing optional fields render safely.
func (p *Product) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
}

// LikeResult is the catalog's authoritative answer to a like.
type LikeResult struct {
	ProductID  string `json:"product_id"`
	TrendScore int    `json:"trend_score"`
}
