package models

import "github.com/go-playground/validator/v10"

// Default price bounds applied when filters are created or cleared.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 1000
)

var validate = validator.New()

// FilterCriteria is the set of active catalog filters. It is replaced wholesale
// on every edit; the zero value is not the default, use DefaultFilters.
type FilterCriteria struct {
	Category string    `json:"category"`
	Brand    string    `json:"brand"`
	Search   string    `json:"search"`
	MinPrice float64   `json:"min_price" validate:"gte=0"`
	MaxPrice float64   `json:"max_price" validate:"gtefield=MinPrice"`
	Sizes    StringSet `json:"sizes"`
	Colors   StringSet `json:"colors"`
	Tags     StringSet `json:"tags"`
}

// DefaultFilters returns the criteria a fresh session starts with.
func DefaultFilters() FilterCriteria {
	return FilterCriteria{
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// Clear resets every field to its default.
func (f FilterCriteria) Clear() FilterCriteria {
	return DefaultFilters()
}

// HasActive reports whether any field differs from its default.
func (f FilterCriteria) HasActive() bool {
	return f.Category != "" ||
		f.Brand != "" ||
		f.Search != "" ||
		f.MinPrice != DefaultMinPrice ||
		f.MaxPrice != DefaultMaxPrice ||
		!f.Sizes.IsEmpty() ||
		!f.Colors.IsEmpty() ||
		!f.Tags.IsEmpty()
}

// Validate checks the price bounds.
func (f FilterCriteria) Validate() error {
	return validate.Struct(f)
}

// ListQuery couples filters with the paging and ordering the catalog list endpoint accepts.
// With AnyPrice set the filter's price bounds are not applied and the
// catalog's own bounds hold.
type ListQuery struct {
	Filters   FilterCriteria
	AnyPrice  bool
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// NewListQuery returns a query for the given filters ordered by trend score.
func NewListQuery(filters FilterCriteria, limit int) ListQuery {
	return ListQuery{
		Filters:   filters,
		Limit:     limit,
		SortBy:    "trend_score",
		SortOrder: "desc",
	}
}

// WithoutPriceBounds returns a copy of q that ignores the filter's price range.
func (q ListQuery) WithoutPriceBounds() ListQuery {
	q.AnyPrice = true
	return q
}
