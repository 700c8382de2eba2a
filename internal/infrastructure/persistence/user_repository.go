package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/emporium/backend/internal/domain/identity"
	"github.com/emporium/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID with all profile associations loaded
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var user identity.User
	if err := r.preloaded(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email, case-insensitively
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var user identity.User
	if err := r.preloaded(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail checks whether a user with the given email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a user and its profile associations
// The in-memory lists are authoritative: rows removed from a list are
// deleted, not just left behind by the association upsert.
func (r *GormUserRepository) Save(ctx context.Context, user *identity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteOrphans(tx, user.ID, &identity.Address{}, addressIDs(user.Addresses)); err != nil {
			return err
		}
		if err := deleteOrphans(tx, user.ID, &identity.PaymentMethod{}, paymentMethodIDs(user.PaymentMethods)); err != nil {
			return err
		}
		if err := deleteOrphans(tx, user.ID, &identity.ReplenishmentRule{}, ruleIDs(user.AutoReplenishment)); err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(user).Error
	})
}

// deleteOrphans removes the user's owned rows that are no longer in the list
func deleteOrphans(tx *gorm.DB, userID uuid.UUID, model any, keep []uuid.UUID) error {
	query := tx.Where("user_id = ?", userID)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	return query.Delete(model).Error
}

func addressIDs(addresses []identity.Address) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(addresses))
	for _, a := range addresses {
		ids = append(ids, a.ID)
	}
	return ids
}

func paymentMethodIDs(methods []identity.PaymentMethod) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(methods))
	for _, m := range methods {
		ids = append(ids, m.ID)
	}
	return ids
}

func ruleIDs(rules []identity.ReplenishmentRule) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}
	return ids
}

func (r *GormUserRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Addresses").
		Preload("PaymentMethods").
		Preload("AutoReplenishment")
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
