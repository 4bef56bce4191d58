package views_test

import (
	"testing"

	"stylecurator/internal/catalog"
	"stylecurator/internal/models"
	"stylecurator/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountPercent(t *testing.T) {
	pct, ok := views.DiscountPercent(80, models.Float64(100))
	assert.True(t, ok)
	assert.Equal(t, 20, pct)

	_, ok = views.DiscountPercent(80, models.Float64(80))
	assert.False(t, ok, "equal prices show no discount")

	_, ok = views.DiscountPercent(80, nil)
	assert.False(t, ok)

	pct, ok = views.DiscountPercent(59.99, models.Float64(89.99))
	assert.True(t, ok)
	assert.Equal(t, 33, pct)

	_, ok = views.DiscountPercent(-5, models.Float64(0))
	assert.False(t, ok, "a zero original price has no discount")
	assert.Empty(t, views.PriceOf(models.Product{Price: -5, OriginalPrice: models.Float64(0)}).DiscountLabel)
}

func TestPriceOf(t *testing.T) {
	price := views.PriceOf(models.Product{Price: 80, OriginalPrice: models.Float64(100)})
	assert.Equal(t, "20% OFF", price.DiscountLabel)
	assert.Equal(t, "USD", price.Currency)
	require.NotNil(t, price.OriginalAmount)
	assert.Equal(t, 100.0, *price.OriginalAmount)

	price = views.PriceOf(models.Product{Price: 80, OriginalPrice: models.Float64(80), Currency: "EUR"})
	assert.Empty(t, price.DiscountLabel)
	assert.Nil(t, price.OriginalAmount)
	assert.Equal(t, "EUR", price.Currency)
}

func TestPreviewOf(t *testing.T) {
	p := views.PreviewOf([]string{"a", "b", "c", "d", "e"}, 3)
	assert.Equal(t, []string{"a", "b", "c"}, p.Items)
	assert.Equal(t, "+2 more", p.MoreLabel("more"))
	assert.Equal(t, "+2", p.MoreLabel(""))

	p = views.PreviewOf([]string{"a"}, 3)
	assert.Equal(t, []string{"a"}, p.Items)
	assert.Empty(t, p.MoreLabel("more"))

	assert.Empty(t, views.PreviewOf(nil, 3).Items)
}

func TestRatingAndImageFallbacks(t *testing.T) {
	assert.Equal(t, "N/A", views.RatingText(nil))
	assert.Equal(t, "4.5", views.RatingText(models.Float64(4.5)))
	assert.Equal(t, "4.0", views.RatingText(models.Float64(4)))

	assert.Equal(t, views.GridPlaceholderImage, views.ImageAt(nil, 0, views.GridPlaceholderImage))
	assert.Equal(t, "b.jpg", views.ImageAt([]string{"a.jpg", "b.jpg"}, 1, views.GridPlaceholderImage))
	assert.Equal(t, "x", views.ImageAt([]string{"a.jpg"}, 3, "x"))
}

func TestCardOf(t *testing.T) {
	card := views.CardOf(models.Product{
		ID:     "p",
		Name:   "Layered Tee",
		Price:  25,
		Tags:   []string{"casual", "summer", "cotton", "basic"},
		Sizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
		Colors: []string{"Red", "Blue"},
	})

	assert.Equal(t, views.GridPlaceholderImage, card.Image)
	assert.Equal(t, "N/A", card.RatingText)
	assert.Equal(t, 1, card.Tags.Remaining)
	assert.Equal(t, []string{"XS", "S", "M", "L"}, card.Sizes.Items)
	assert.Equal(t, 2, card.Sizes.Remaining)
	assert.Zero(t, card.Colors.Remaining)
}

func TestNewGridView(t *testing.T) {
	filters := models.DefaultFilters()
	grid := views.NewGridView(filters, catalog.SeedProducts()[:4])
	assert.Equal(t, 4, grid.Count)
	assert.False(t, grid.HasActiveFilters)

	filters.Colors = filters.Colors.Toggle("Blue")
	grid = views.NewGridView(filters, nil)
	assert.Zero(t, grid.Count)
	assert.NotNil(t, grid.Products)
	assert.True(t, grid.HasActiveFilters)
}

func TestDetailState(t *testing.T) {
	product := models.Product{
		ID:         "1",
		Images:     []string{"front.jpg", "back.jpg"},
		Sizes:      []string{"S", "M", "L"},
		Colors:     []string{"Blue", "Black"},
		TrendScore: 85,
	}

	s := views.NewDetailState(product)
	assert.Equal(t, 0, s.ImageIndex)
	assert.Equal(t, "S", s.SelectedSize)
	assert.Equal(t, "Blue", s.SelectedColor)
	assert.Equal(t, 1, s.Quantity)

	s = s.SelectImage(1).SelectSize("L").SelectColor("Black")
	assert.Equal(t, "back.jpg", s.View().Image)
	assert.Equal(t, "L", s.SelectedSize)
	assert.Equal(t, "Black", s.SelectedColor)

	s = s.SelectImage(7).SelectSize("XXL").SelectColor("Pink")
	assert.Equal(t, 1, s.ImageIndex)
	assert.Equal(t, "L", s.SelectedSize)
	assert.Equal(t, "Black", s.SelectedColor)

	s = s.DecrementQuantity().DecrementQuantity()
	assert.Equal(t, 1, s.Quantity)
	s = s.IncrementQuantity().IncrementQuantity()
	assert.Equal(t, 3, s.Quantity)
	assert.Equal(t, 1, s.SetQuantity(-4).Quantity)
}

func TestDetailState_EmptyProduct(t *testing.T) {
	s := views.NewDetailState(models.Product{ID: "6"})
	assert.Empty(t, s.SelectedSize)
	assert.Empty(t, s.SelectedColor)

	view := s.View()
	assert.Equal(t, views.DetailPlaceholderImage, view.Image)
	assert.Empty(t, view.Thumbnails)
}

func TestDetailState_ApplyLike(t *testing.T) {
	s := views.NewDetailState(models.Product{ID: "1", TrendScore: 85})

	s = s.ApplyLike(models.LikeResult{ProductID: "1", TrendScore: 90})
	assert.Equal(t, 90, s.Product.TrendScore, "server value wins over a local increment")

	s = s.ApplyLike(models.LikeResult{ProductID: "2", TrendScore: 3})
	assert.Equal(t, 90, s.Product.TrendScore)
}

func TestNewTrendingView(t *testing.T) {
	products := []models.Product{
		{ID: "a", TrendScore: 92, ReviewsCount: 89, Rating: models.Float64(4.6), Tags: []string{"x", "y", "z"}},
		{ID: "b", TrendScore: 85, ReviewsCount: 124, Rating: models.Float64(4.5)},
		{ID: "c", TrendScore: 81, ReviewsCount: 0},
	}

	view := views.NewTrendingView(products)
	require.Len(t, view.Products, 3)
	assert.Equal(t, 1, view.Products[0].Rank)
	assert.Equal(t, 3, view.Products[2].Rank)
	assert.Equal(t, []string{"x", "y"}, view.Products[0].Tags.Items)
	assert.Equal(t, views.TrendingPlaceholderImage, view.Products[1].Image)

	assert.Equal(t, views.TrendingStats{TotalTrendScore: 258, TotalReviews: 213, HighlyRated: 1}, view.Stats)
}
