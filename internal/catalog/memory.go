package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"stylecurator/internal/models"

	"github.com/google/uuid"
)

// MemoryCatalog is an in-memory implementation of Catalog used for offline
// browsing and tests. It filters the way the remote catalog does.
type MemoryCatalog struct {
	products map[string]models.Product
	order    []string
	mu       sync.RWMutex
}

// NewMemoryCatalog creates a catalog holding the given products.
func NewMemoryCatalog(products ...models.Product) *MemoryCatalog {
	c := &MemoryCatalog{
		products: make(map[string]models.Product),
	}
	for i := range products {
		c.Add(products[i])
	}
	return c
}

// Add stores a product, generating an ID when it has none.
func (c *MemoryCatalog) Add(product models.Product) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.Normalize()
	if _, exists := c.products[product.ID]; !exists {
		c.order = append(c.order, product.ID)
	}
	c.products[product.ID] = product
	return product
}

// ListProducts returns available products matching the query.
func (c *MemoryCatalog) ListProducts(ctx context.Context, query models.ListQuery) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]models.Product, 0, len(c.order))
	for _, id := range c.order {
		p := c.products[id]
		if p.Availability && matches(p, query) {
			matched = append(matched, p)
		}
	}

	sortProducts(matched, query.SortBy, query.SortOrder)
	return page(matched, query.Offset, query.Limit), nil
}

// GetProduct returns a product by its ID.
func (c *MemoryCatalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// TrendingProducts returns available products by trend score, highest first.
func (c *MemoryCatalog) TrendingProducts(ctx context.Context, limit int) ([]models.Product, error) {
	return c.ListProducts(ctx, models.NewListQuery(models.FilterCriteria{}, limit).WithoutPriceBounds())
}

// LikeProduct increments the trend score by one.
func (c *MemoryCatalog) LikeProduct(ctx context.Context, id string) (*models.LikeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	product, ok := c.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	product.TrendScore++
	c.products[id] = product
	return &models.LikeResult{ProductID: id, TrendScore: product.TrendScore}, nil
}

// FilterOptions returns the sorted distinct facet values across all products.
func (c *MemoryCatalog) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	categories, brands, sizes, colors, tags := set{}, set{}, set{}, set{}, set{}
	for _, p := range c.products {
		categories.add(p.Category)
		brands.add(p.Brand)
		sizes.add(p.Sizes...)
		colors.add(p.Colors...)
		tags.add(p.Tags...)
	}
	return &models.FilterOptions{
		Categories: categories.sorted(),
		Brands:     brands.sorted(),
		Sizes:      sizes.sorted(),
		Colors:     colors.sorted(),
		Tags:       tags.sorted(),
	}, nil
}

// matches mirrors the remote catalog: category, brand and search are
// case-insensitive substring matches, sets match on any member.
func matches(p models.Product, q models.ListQuery) bool {
	f := q.Filters
	if !q.AnyPrice && (p.Price < f.MinPrice || p.Price > f.MaxPrice) {
		return false
	}
	if f.Category != "" && !containsFold(p.Category, f.Category) {
		return false
	}
	if f.Brand != "" && !containsFold(p.Brand, f.Brand) {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	return anyIn(p.Sizes, f.Sizes) && anyIn(p.Colors, f.Colors) && anyIn(p.Tags, f.Tags)
}

func matchesSearch(p models.Product, term string) bool {
	if containsFold(p.Name, term) || containsFold(p.Brand, term) || containsFold(p.Description, term) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func anyIn(values []string, wanted models.StringSet) bool {
	if wanted.IsEmpty() {
		return true
	}
	for _, v := range values {
		if wanted.Has(v) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func sortProducts(products []models.Product, by, order string) {
	less := func(a, b models.Product) bool { return a.TrendScore < b.TrendScore }
	switch by {
	case "price":
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case "rating":
		less = func(a, b models.Product) bool { return ratingOf(a) < ratingOf(b) }
	case "name":
		less = func(a, b models.Product) bool { return a.Name < b.Name }
	}
	sort.SliceStable(products, func(i, j int) bool {
		if order == "asc" {
			return less(products[i], products[j])
		}
		return less(products[j], products[i])
	})
}

func ratingOf(p models.Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

func page(products []models.Product, offset, limit int) []models.Product {
	offset = max(offset, 0)
	if offset >= len(products) {
		return []models.Product{}
	}
	products = products[offset:]
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products
}

type set map[string]struct{}

func (s set) add(values ...string) {
	for _, v := range values {
		if v != "" {
			s[v] = struct{}{}
		}
	}
}

func (s set) sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
