package catalog

import (
	"strings"

	"github.com/emporium/backend/internal/domain/shared"
	"github.com/emporium/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a single catalog item
// The catalog is loaded at startup and treated as read-only for the rest of
// the session; orders never decrement StockQuantity.
type Product struct {
	shared.BaseEntity
	Name          string          `gorm:"type:varchar(200);not null"`
	Category      string          `gorm:"type:varchar(100);not null;index"`
	Price         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StockQuantity int             `gorm:"not null;default:0"`
	Image         string          `gorm:"type:varchar(500)"`
	Description   string          `gorm:"type:text"`
	Rating        float64         `gorm:"not null;default:0"`
	Reviews       []Review        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// Review is a customer review attached to a product
type Review struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Reviewer  string    `gorm:"type:varchar(200);not null"`
	Comment   string    `gorm:"type:text"`
	Rating    int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "product_reviews"
}

// NewProduct creates a new catalog product
func NewProduct(name, category string, price decimal.Decimal, stockQuantity int, image, description string) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(category) == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stockQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	return &Product{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		Category:      category,
		Price:         price,
		StockQuantity: stockQuantity,
		Image:         image,
		Description:   description,
	}, nil
}

// SetRating sets the aggregate star rating shown on listings
func (p *Product) SetRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 0 and 5")
	}
	p.Rating = rating
	p.Touch()
	return nil
}

// AddReview attaches a customer review to the product
func (p *Product) AddReview(reviewer, comment string, rating int) error {
	if strings.TrimSpace(reviewer) == "" {
		return shared.NewDomainError("INVALID_REVIEWER", "Reviewer name cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Review rating must be between 1 and 5")
	}

	p.Reviews = append(p.Reviews, Review{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  p.ID,
		Reviewer:   reviewer,
		Comment:    comment,
		Rating:     rating,
	})
	p.Touch()
	return nil
}

// InStock returns true if the product has remaining stock
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// PriceMoney returns the unit price as a Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
