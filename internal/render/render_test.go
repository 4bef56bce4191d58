package render_test

import (
	"testing"

	"stylecurator/internal/catalog"
	"stylecurator/internal/models"
	"stylecurator/internal/recommend"
	"stylecurator/internal/render"
	"stylecurator/internal/views"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	r := render.New()
	out := r.Grid(views.NewGridView(models.DefaultFilters(), catalog.SeedProducts()[:2]))

	assert.Contains(t, out, "Discover Products (2)")
	assert.Contains(t, out, "Classic Denim Jacket")
	assert.Contains(t, out, "25% OFF")
	assert.Contains(t, out, "$89.99")
}

func TestGrid_EmptyAndNotice(t *testing.T) {
	r := render.New()
	assert.Contains(t, r.Grid(views.NewGridView(models.DefaultFilters(), nil)), "No products found")

	grid := views.NewGridView(models.DefaultFilters(), nil)
	grid.Notice = "catalog unavailable"
	assert.Contains(t, r.Grid(grid), "catalog unavailable")
}

func TestDetail(t *testing.T) {
	product := catalog.SeedProducts()[0]
	state := views.NewDetailState(product).SelectColor("Black")

	out := render.New().Detail(state.View())
	assert.Contains(t, out, "LEVI'S")
	assert.Contains(t, out, "[Black]")
	assert.Contains(t, out, "Quantity: 1")
}

func TestTrending(t *testing.T) {
	view := views.NewTrendingView(catalog.SeedProducts()[:3])
	out := render.New().Trending(view)

	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "Streetwear Hoodie")
	assert.Contains(t, out, "Total trend score 255")
}

func TestRecommendation(t *testing.T) {
	gen := recommend.NewGenerator(recommend.WithSource(recommend.NewSeededSource(1)))
	rec := &models.Recommendation{Outfits: gen.Generate(catalog.SeedProducts(), models.DefaultPreferences())}

	out := render.New().Recommendation(rec)
	assert.Contains(t, out, "Casual Look 1")
	assert.Contains(t, out, "match")

	assert.Contains(t, render.New().Recommendation(&models.Recommendation{}), "No outfits could be generated")
}
