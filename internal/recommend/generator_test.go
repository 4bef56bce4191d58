package recommend_test

import (
	"fmt"
	"testing"

	"stylecurator/internal/models"
	"stylecurator/internal/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws, clamped to the requested range.
type scriptedSource struct {
	draws []int
	calls []int
}

func (s *scriptedSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % n
}

func product(id, category string, price float64, colors ...string) models.Product {
	return models.Product{ID: id, Name: "Item " + id, Category: category, Price: price, Colors: colors}
}

func twelveProductCatalog() []models.Product {
	categories := []string{"Tops", "Bottoms", "Shoes", "Jackets"}
	products := make([]models.Product, 0, 12)
	for i := 0; i < 12; i++ {
		products = append(products, product(fmt.Sprint(i+1), categories[i%len(categories)], float64(20+i*10), "Black"))
	}
	return products
}

func TestGenerate_DefaultPreferencesKeepWholeCatalog(t *testing.T) {
	catalog := twelveProductCatalog()
	prefs := models.DefaultPreferences()

	assert.Len(t, recommend.Eligible(catalog, prefs), 12)

	g := recommend.NewGenerator(recommend.WithSource(recommend.NewSeededSource(42)))
	outfits := g.Generate(catalog, prefs)

	require.NotEmpty(t, outfits)
	assert.LessOrEqual(t, len(outfits), recommend.OutfitCount)
	for _, o := range outfits {
		assert.GreaterOrEqual(t, len(o.Products), 1)
		assert.LessOrEqual(t, len(o.Products), 3)

		var sum float64
		seen := map[string]bool{}
		for _, p := range o.Products {
			sum += p.Price
			assert.False(t, seen[p.Category], "categories must be distinct")
			seen[p.Category] = true
		}
		assert.Equal(t, sum, o.TotalPrice)
		assert.GreaterOrEqual(t, o.StyleScore, 70)
		assert.LessOrEqual(t, o.StyleScore, 100)
	}
}

func TestGenerate_ExactCompositionWithScriptedSource(t *testing.T) {
	catalog := []models.Product{
		product("t1", "Tops", 30),
		product("b1", "Bottoms", 50),
		product("t2", "Tops", 40),
		product("s1", "Shoes", 90),
		product("j1", "Jackets", 120),
		product("b2", "Bottoms", 60),
	}
	// Per outfit: score draw, then one draw per category (Tops, Bottoms, Shoes).
	src := &scriptedSource{draws: []int{
		0, 1, 0, 0,
		30, 0, 1, 0,
		15, 1, 1, 0,
		1, 0, 0, 0,
		2, 0, 0, 0,
		3, 0, 0, 0,
	}}
	g := recommend.NewGenerator(recommend.WithSource(src))

	outfits := g.Generate(catalog, models.DefaultPreferences())

	require.Len(t, outfits, 6)

	first := outfits[0]
	assert.Equal(t, "outfit-0", first.ID)
	assert.Equal(t, "Casual Look 1", first.Name)
	assert.Equal(t, 70, first.StyleScore)
	assert.Equal(t, []string{"t2", "b1", "s1"}, ids(first.Products))
	assert.Equal(t, 180.0, first.TotalPrice)

	second := outfits[1]
	assert.Equal(t, 100, second.StyleScore)
	assert.Equal(t, []string{"t1", "b2", "s1"}, ids(second.Products))
	assert.Equal(t, 180.0, second.TotalPrice)

	assert.Equal(t, 85, outfits[2].StyleScore)
	assert.Equal(t, []string{"t2", "b2", "s1"}, ids(outfits[2].Products))

	// Jackets is the fourth category, so it never appears.
	for _, o := range outfits {
		for _, p := range o.Products {
			assert.NotEqual(t, "Jackets", p.Category)
		}
	}

	// 6 outfits x (1 score draw + 3 product draws)
	assert.Len(t, src.calls, 24)
	assert.Equal(t, []int{31, 2, 2, 1}, src.calls[:4])
}

func TestGenerate_FallsBackToFullSetWhenFiltersOverConstrain(t *testing.T) {
	catalog := []models.Product{
		product("1", "Tops", 900, "Red"),
		product("2", "Shoes", 950, "Red"),
	}
	prefs := models.DefaultPreferences().WithBudget(100).ToggleColor("green")

	eligible := recommend.Eligible(catalog, prefs)
	assert.Equal(t, catalog, eligible)

	outfits := recommend.NewGenerator(recommend.WithSource(recommend.NewSeededSource(1))).Generate(catalog, prefs)
	require.Len(t, outfits, 6)
	for _, o := range outfits {
		assert.Equal(t, []string{"1", "2"}, ids(o.Products))
	}
}

func TestEligible_AppliesBudgetColorAndCategory(t *testing.T) {
	catalog := []models.Product{
		product("cheap-black-top", "Tops", 40, "Black", "White"),
		product("pricey-black-top", "Tops", 400, "Black"),
		product("cheap-red-shoe", "Shoes", 60, "Red"),
		product("cheap-navy-dress", "Dresses", 55, "NAVY"),
	}
	prefs := models.DefaultPreferences().WithBudget(100).ToggleColor("black").ToggleColor("navy")

	assert.Equal(t, []string{"cheap-black-top", "cheap-navy-dress"}, ids(recommend.Eligible(catalog, prefs)))

	prefs = prefs.ToggleCategory("Dresses")
	assert.Equal(t, []string{"cheap-navy-dress"}, ids(recommend.Eligible(catalog, prefs)))
}

func TestEligible_BudgetIsInclusive(t *testing.T) {
	catalog := []models.Product{product("edge", "Tops", 500), product("over", "Tops", 500.01)}

	assert.Equal(t, []string{"edge"}, ids(recommend.Eligible(catalog, models.DefaultPreferences())))
}

func TestGenerate_EmptyCatalogYieldsNoOutfits(t *testing.T) {
	g := recommend.NewGenerator(recommend.WithSource(recommend.NewSeededSource(7)))

	assert.Empty(t, g.Generate(nil, models.DefaultPreferences()))
}

func TestGenerate_SingleCategoryOutfitsHaveOnePiece(t *testing.T) {
	catalog := []models.Product{product("a", "Shoes", 10), product("b", "Shoes", 20)}
	outfits := recommend.NewGenerator(recommend.WithSource(recommend.NewSeededSource(3))).Generate(catalog, models.DefaultPreferences())

	require.Len(t, outfits, 6)
	for _, o := range outfits {
		assert.Len(t, o.Products, 1)
		assert.Equal(t, o.Products[0].Price, o.TotalPrice)
	}
}

func TestGenerate_SeededSourcesAreReproducible(t *testing.T) {
	catalog := twelveProductCatalog()
	prefs := models.DefaultPreferences()

	a := recommend.NewGenerator(recommend.WithSource(recommend.NewSeededSource(99))).Generate(catalog, prefs)
	b := recommend.NewGenerator(recommend.WithSource(recommend.NewSeededSource(99))).Generate(catalog, prefs)

	assert.Equal(t, a, b)
}

func TestGenerate_DescriptionLookupAndFallback(t *testing.T) {
	catalog := twelveProductCatalog()
	g := recommend.NewGenerator(recommend.WithSource(recommend.NewSeededSource(5)))

	formalWork := models.DefaultPreferences().WithStyle(models.StyleFormal).WithOccasion(models.OccasionWork)
	outfits := g.Generate(catalog, formalWork)
	require.NotEmpty(t, outfits)
	assert.Equal(t, "Classic business attire for important meetings", outfits[0].Description)
	assert.Equal(t, "Formal Look 1", outfits[0].Name)
	assert.Equal(t, models.OccasionWork, outfits[0].Occasion)

	vintage := models.DefaultPreferences().WithStyle(models.StyleVintage)
	outfits = g.Generate(catalog, vintage)
	require.NotEmpty(t, outfits)
	assert.Equal(t, "Curated outfit based on your style preferences", outfits[0].Description)
}

func TestParseDescriptions(t *testing.T) {
	d, err := recommend.ParseDescriptions([]byte("fallback: generic\nstyles:\n  boho:\n    date: dreamy\n"))
	require.NoError(t, err)
	assert.Equal(t, "dreamy", d.Lookup("boho", "date"))
	assert.Equal(t, "generic", d.Lookup("boho", "work"))

	_, err = recommend.ParseDescriptions([]byte("styles: {}\n"))
	assert.Error(t, err)

	_, err = recommend.ParseDescriptions([]byte("fallback: [unterminated"))
	assert.Error(t, err)
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
