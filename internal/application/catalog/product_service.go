package catalog

import (
	"context"

	"github.com/emporium/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService exposes read access to the catalog
// The catalog is seeded at startup and never mutated by storefront traffic.
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListInput contains the optional catalog listing filters
type ListInput struct {
	Search   string
	Category string
}

// List returns products matching the filters, name-ordered
func (s *ProductService) List(ctx context.Context, input ListInput) ([]catalog.Product, error) {
	products, err := s.productRepo.FindAll(ctx, catalog.ProductFilter{
		Search:   input.Search,
		Category: input.Category,
	})
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// Get returns a single product with its reviews
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// Categories returns the distinct category names in the catalog
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}
