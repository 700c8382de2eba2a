package checkout

import (
	"context"

	appidentity "github.com/emporium/backend/internal/application/identity"
	"github.com/emporium/backend/internal/domain/cart"
	"github.com/emporium/backend/internal/domain/identity"
	"github.com/emporium/backend/internal/domain/order"
	"github.com/emporium/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartSource is the slice of the cart service checkout depends on
type CartSource interface {
	Lines() []cart.Line
	IsEmpty() bool
	Clear()
}

// SessionSource resolves the signed-in user placing the order
type SessionSource interface {
	CurrentUser(ctx context.Context) (*identity.User, error)
	Persist() error
}

// NewAddressInput is a delivery address entered during checkout
type NewAddressInput struct {
	Street  string
	City    string
	State   string
	Zip     string
	Country string
}

// PlaceOrderInput collects the three checkout steps: where to deliver,
// when to deliver, and how to pay.
type PlaceOrderInput struct {
	AddressID     uuid.UUID        // an address already in the user's book
	NewAddress    *NewAddressInput // or a new one, saved to the book first
	SlotDate      string
	SlotWindow    string
	PaymentMethod identity.PaymentType
}

// CheckoutService turns the current cart into an immutable order
type CheckoutService struct {
	orderRepo order.Repository
	userRepo  identity.UserRepository
	cart      CartSource
	sessions  SessionSource
	logger    *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	orderRepo order.Repository,
	userRepo identity.UserRepository,
	cartSource CartSource,
	sessions SessionSource,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		cart:      cartSource,
		sessions:  sessions,
		logger:    logger,
	}
}

// PlaceOrder snapshots the cart into a new order and empties the cart.
// Stock levels are not decremented; the catalog is display-only.
func (s *CheckoutService) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*order.Order, error) {
	user, err := s.sessions.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order with an empty cart")
	}

	address, err := s.resolveAddress(ctx, user, input)
	if err != nil {
		return nil, err
	}

	placed, err := order.New(user.ID, lines, *address, order.DeliverySlot{
		Date:   input.SlotDate,
		Window: input.SlotWindow,
	}, input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, placed); err != nil {
		s.logger.Error("Failed to save order", zap.Error(err))
		return nil, err
	}

	s.cart.Clear()
	if err := s.sessions.Persist(); err != nil {
		s.logger.Error("Failed to persist session after checkout", zap.Error(err))
	}

	s.logger.Info("Order placed",
		zap.String("order_id", placed.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("total", placed.Total.String()),
	)
	return placed, nil
}

// ListOrders returns the signed-in user's order history, most recent first
func (s *CheckoutService) ListOrders(ctx context.Context) ([]order.Order, error) {
	user, err := s.sessions.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.FindByUser(ctx, user.ID)
}

// GetOrder returns one of the signed-in user's orders
func (s *CheckoutService) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	user, err := s.sessions.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if placed.UserID != user.ID {
		return nil, shared.ErrNotFound
	}
	return placed, nil
}

// resolveAddress picks the existing address or saves a new one to the
// user's address book before the order snapshots it
func (s *CheckoutService) resolveAddress(ctx context.Context, user *identity.User, input PlaceOrderInput) (*identity.Address, error) {
	if input.NewAddress != nil {
		added, err := user.AddAddress(
			input.NewAddress.Street,
			input.NewAddress.City,
			input.NewAddress.State,
			input.NewAddress.Zip,
			input.NewAddress.Country,
		)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.Save(ctx, user); err != nil {
			return nil, err
		}
		return added, nil
	}

	if input.AddressID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_ADDRESS", "A delivery address is required")
	}
	address := user.FindAddress(input.AddressID)
	if address == nil {
		return nil, shared.NewDomainError("UNKNOWN_ADDRESS", "Address is not in the user's address book")
	}
	return address, nil
}

// Ensure the auth service satisfies SessionSource
var _ SessionSource = (*appidentity.AuthService)(nil)
