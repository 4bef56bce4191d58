package views

import (
	"slices"

	"stylecurator/internal/models"
)

// DetailState holds the selections made on a product detail page. It starts on
// the first image, the first size and the first color with a quantity of one.
type DetailState struct {
	Product       models.Product `json:"product"`
	ImageIndex    int            `json:"image_index"`
	SelectedSize  string         `json:"selected_size"`
	SelectedColor string         `json:"selected_color"`
	Quantity      int            `json:"quantity"`
}

// DetailView is what the detail page renders for the current state.
type DetailView struct {
	DetailState
	Image      string   `json:"image"`
	Thumbnails []string `json:"thumbnails"`
	Price      Price    `json:"price"`
	RatingText string   `json:"rating_text"`
}

// NewDetailState returns the initial selection for a product.
func NewDetailState(p models.Product) DetailState {
	p.Normalize()
	s := DetailState{Product: p, Quantity: 1}
	if len(p.Sizes) > 0 {
		s.SelectedSize = p.Sizes[0]
	}
	if len(p.Colors) > 0 {
		s.SelectedColor = p.Colors[0]
	}
	return s
}

// SelectImage moves to image i. Out-of-range indexes are ignored.
func (s DetailState) SelectImage(i int) DetailState {
	if i >= 0 && i < len(s.Product.Images) {
		s.ImageIndex = i
	}
	return s
}

// SelectSize picks one of the product's sizes. Unknown sizes are ignored.
func (s DetailState) SelectSize(size string) DetailState {
	if slices.Contains(s.Product.Sizes, size) {
		s.SelectedSize = size
	}
	return s
}

// SelectColor picks one of the product's colors. Unknown colors are ignored.
func (s DetailState) SelectColor(color string) DetailState {
	if slices.Contains(s.Product.Colors, color) {
		s.SelectedColor = color
	}
	return s
}

// SetQuantity sets the quantity, never going below one.
func (s DetailState) SetQuantity(n int) DetailState {
	s.Quantity = max(n, 1)
	return s
}

func (s DetailState) IncrementQuantity() DetailState {
	return s.SetQuantity(s.Quantity + 1)
}

func (s DetailState) DecrementQuantity() DetailState {
	return s.SetQuantity(s.Quantity - 1)
}

// ApplyLike adopts the trend score the catalog reported after a like.
func (s DetailState) ApplyLike(result models.LikeResult) DetailState {
	if result.ProductID == "" || result.ProductID == s.Product.ID {
		s.Product.TrendScore = result.TrendScore
	}
	return s
}

// View derives the rendered page.
func (s DetailState) View() DetailView {
	thumbs := make([]string, len(s.Product.Images))
	copy(thumbs, s.Product.Images)
	return DetailView{
		DetailState: s,
		Image:       ImageAt(s.Product.Images, s.ImageIndex, DetailPlaceholderImage),
		Thumbnails:  thumbs,
		Price:       PriceOf(s.Product),
		RatingText:  RatingText(s.Product.Rating),
	}
}
