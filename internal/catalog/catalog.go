// Package catalog talks to the remote product catalog.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"stylecurator/internal/models"
)

// ErrNotFound is returned when the catalog has no product with the requested ID.
var ErrNotFound = errors.New("product not found")

// StatusError reports an unexpected HTTP status from the catalog.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("catalog %s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

// Catalog defines the read and like operations the front-end needs.
type Catalog interface {
	ListProducts(ctx context.Context, query models.ListQuery) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	TrendingProducts(ctx context.Context, limit int) ([]models.Product, error)
	LikeProduct(ctx context.Context, id string) (*models.LikeResult, error)
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)
}
