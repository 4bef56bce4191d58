// Package views derives the display-only values the product pages render.
package views

import (
	"fmt"
	"math"

	"stylecurator/internal/models"
)

// Placeholder images shown when a product has none.
const (
	GridPlaceholderImage     = "https://via.placeholder.com/300x400?text=No+Image"
	TrendingPlaceholderImage = "https://via.placeholder.com/300x300?text=No+Image"
	DetailPlaceholderImage   = "https://via.placeholder.com/600x600?text=No+Image"
)

// Price is a price with its optional discount indicator.
type Price struct {
	Amount          float64  `json:"amount"`
	Currency        string   `json:"currency"`
	OriginalAmount  *float64 `json:"original_amount,omitempty"`
	DiscountPercent int      `json:"discount_percent,omitempty"`
	DiscountLabel   string   `json:"discount_label,omitempty"`
}

// Preview is the head of a list plus how many entries were left out.
type Preview struct {
	Items     []string `json:"items"`
	Remaining int      `json:"remaining"`
}

// DiscountPercent returns round((1 - price/original) * 100) and true when the
// original price is positive and above the selling price.
func DiscountPercent(price float64, original *float64) (int, bool) {
	if original == nil || *original <= 0 || *original <= price {
		return 0, false
	}
	return int(math.Round((1 - price / *original) * 100)), true
}

// PriceOf builds the price block for a product.
func PriceOf(p models.Product) Price {
	price := Price{Amount: p.Price, Currency: p.Currency}
	if price.Currency == "" {
		price.Currency = "USD"
	}
	if pct, ok := DiscountPercent(p.Price, p.OriginalPrice); ok {
		price.OriginalAmount = p.OriginalPrice
		price.DiscountPercent = pct
		price.DiscountLabel = fmt.Sprintf("%d%% OFF", pct)
	}
	return price
}

// PreviewOf keeps the first n values.
func PreviewOf(values []string, n int) Preview {
	if len(values) <= n {
		items := make([]string, len(values))
		copy(items, values)
		return Preview{Items: items}
	}
	items := make([]string, n)
	copy(items, values[:n])
	return Preview{Items: items, Remaining: len(values) - n}
}

// MoreLabel renders the overflow marker, e.g. "+2 more", or "" when nothing was cut.
func (p Preview) MoreLabel(suffix string) string {
	if p.Remaining == 0 {
		return ""
	}
	if suffix == "" {
		return fmt.Sprintf("+%d", p.Remaining)
	}
	return fmt.Sprintf("+%d %s", p.Remaining, suffix)
}

// RatingText formats a rating with one decimal, or "N/A" when absent.
func RatingText(rating *float64) string {
	if rating == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *rating)
}

// ImageAt returns the image at index i, or the placeholder when out of range.
func ImageAt(images []string, i int, placeholder string) string {
	if i < 0 || i >= len(images) || images[i] == "" {
		return placeholder
	}
	return images[i]
}
