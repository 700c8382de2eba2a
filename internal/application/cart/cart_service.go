package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/emporium/backend/internal/domain/cart"
	"github.com/emporium/backend/internal/domain/catalog"
	"github.com/emporium/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RestoredLine is a persisted cart line being replayed into a fresh cart
type RestoredLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartService manages the single active shopping cart.
// The storefront serves one visitor session at a time; a mutex keeps the
// cart consistent under concurrent HTTP handlers.
type CartService struct {
	mu          sync.Mutex
	cart        *cart.Cart
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new cart service with an empty cart
func NewCartService(productRepo catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		cart:        cart.New(),
		productRepo: productRepo,
		logger:      logger,
	}
}

// Add adds a product to the cart, clamping the quantity to available stock
func (s *CartService) Add(ctx context.Context, productID uuid.UUID, quantity int) ([]cart.Line, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(product, quantity)

	s.logger.Debug("Added product to cart",
		zap.String("product_id", productID.String()),
		zap.Int("quantity", quantity),
	)
	return s.cart.Lines(), nil
}

// UpdateQuantity sets the quantity for a product already in the cart.
// Zero or negative removes the line. An unknown product, or one with no
// line in the cart, leaves the cart untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, productID uuid.UUID, quantity int) ([]cart.Line, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.cart.Lines(), nil
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(product, quantity)
	return s.cart.Lines(), nil
}

// Remove deletes a product's line from the cart; absent lines are a no-op
func (s *CartService) Remove(productID uuid.UUID) []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(productID)
	return s.cart.Lines()
}

// Clear empties the cart
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Lines returns a copy of the current cart lines
func (s *CartService) Lines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// IsEmpty reports whether the cart has no lines
func (s *CartService) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

// ItemCount returns the total quantity across all lines
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// Summary returns the cart's subtotal, tax and total
func (s *CartService) Summary() cart.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Summarize()
}

// Restore replays persisted lines into a fresh cart. Products that no
// longer exist are skipped; quantities re-clamp against current stock.
func (s *CartService) Restore(ctx context.Context, lines []RestoredLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				s.logger.Warn("Dropping restored cart line for missing product",
					zap.String("product_id", line.ProductID.String()),
				)
				continue
			}
			return err
		}
		s.cart.Add(product, line.Quantity)
	}
	return nil
}
