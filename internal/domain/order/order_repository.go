package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines order persistence operations
// Orders are append-only: there is no update or delete.
type Repository interface {
	Save(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
}
