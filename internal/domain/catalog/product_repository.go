package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductFilter narrows catalog queries
// Search matches name and description as a case-insensitive substring;
// Category is an exact match. Empty fields match everything.
type ProductFilter struct {
	Search   string
	Category string
}

// ProductRepository defines catalog persistence operations
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
	Save(ctx context.Context, product *Product) error
	Count(ctx context.Context) (int64, error)
}
