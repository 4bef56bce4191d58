// Package recommend assembles outfit suggestions from an already-fetched set
// of products. Selection is random; the randomness is injected so callers can
// seed it.
package recommend

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"stylecurator/internal/models"
)

const (
	// OutfitCount is how many candidate outfits each run assembles.
	OutfitCount = 6
	// MaxPiecesPerOutfit caps the number of categories an outfit draws from.
	MaxPiecesPerOutfit = 3

	minStyleScore = 70
	maxStyleScore = 100
)

// Source provides uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator builds outfits. It is not safe for concurrent use when its Source is not.
type Generator struct {
	src          Source
	descriptions *Descriptions
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the random source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// WithDescriptions replaces the description table.
func WithDescriptions(d *Descriptions) Option {
	return func(g *Generator) {
		g.descriptions = d
	}
}

// NewGenerator returns a Generator seeded from the clock with the embedded descriptions.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = NewSeededSource(uint64(time.Now().UnixNano()))
	}
	if g.descriptions == nil {
		g.descriptions = DefaultDescriptions()
	}
	return g
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate filters products by the preferences and assembles up to OutfitCount outfits.
// Repeated calls with the same inputs may differ unless the source is seeded.
func (g *Generator) Generate(products []models.Product, prefs models.StylePreferences) []models.Outfit {
	groups := groupByCategory(Eligible(products, prefs))

	styleName := models.StyleName(prefs.StyleType)
	description := g.descriptions.Lookup(prefs.StyleType, prefs.Occasion)

	outfits := make([]models.Outfit, 0, OutfitCount)
	for i := 0; i < OutfitCount; i++ {
		outfit := models.Outfit{
			ID:          fmt.Sprintf("outfit-%d", i),
			Name:        fmt.Sprintf("%s Look %d", styleName, i+1),
			Occasion:    prefs.Occasion,
			StyleType:   prefs.StyleType,
			Products:    []models.Product{},
			StyleScore:  minStyleScore + g.src.IntN(maxStyleScore-minStyleScore+1),
			Description: description,
		}

		for _, group := range groups[:min(MaxPiecesPerOutfit, len(groups))] {
			pick := group.products[g.src.IntN(len(group.products))]
			outfit.Products = append(outfit.Products, pick)
			outfit.TotalPrice += pick.Price
		}

		if len(outfit.Products) > 0 {
			outfits = append(outfits, outfit)
		}
	}
	return outfits
}

// Eligible applies the budget, color and category predicates. When nothing
// survives it returns the input unchanged.
func Eligible(products []models.Product, prefs models.StylePreferences) []models.Product {
	colors := make(map[string]struct{}, prefs.PreferredColors.Len())
	for _, c := range prefs.PreferredColors.Values() {
		colors[strings.ToLower(c)] = struct{}{}
	}

	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Price > prefs.BudgetMax {
			continue
		}
		if len(colors) > 0 && !hasAnyColor(p, colors) {
			continue
		}
		if !prefs.PreferredCategories.IsEmpty() && !prefs.PreferredCategories.Has(p.Category) {
			continue
		}
		kept = append(kept, p)
	}

	if len(kept) == 0 {
		return products
	}
	return kept
}

func hasAnyColor(p models.Product, colors map[string]struct{}) bool {
	for _, c := range p.Colors {
		if _, ok := colors[strings.ToLower(c)]; ok {
			return true
		}
	}
	return false
}

type categoryGroup struct {
	category string
	products []models.Product
}

// groupByCategory partitions products, keeping categories in order of first appearance.
func groupByCategory(products []models.Product) []categoryGroup {
	index := make(map[string]int)
	var groups []categoryGroup
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, categoryGroup{category: p.Category})
		}
		groups[i].products = append(groups[i].products, p)
	}
	return groups
}
