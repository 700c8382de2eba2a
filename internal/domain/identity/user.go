package identity

import (
	"regexp"
	"strings"

	"github.com/emporium/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultLoyaltyStatus is assigned to every new signup
const DefaultLoyaltyStatus = "Bronze Member"

// ReplenishFrequency is how often an auto-replenishment setting reorders
type ReplenishFrequency string

const (
	ReplenishWeekly    ReplenishFrequency = "weekly"
	ReplenishMonthly   ReplenishFrequency = "monthly"
	ReplenishQuarterly ReplenishFrequency = "quarterly"
)

// PaymentType is the tag identifying how an order is paid
type PaymentType string

const (
	PaymentCreditCard     PaymentType = "Credit Card"
	PaymentDebitCard      PaymentType = "Debit Card"
	PaymentNetBanking     PaymentType = "Net Banking"
	PaymentCashOnDelivery PaymentType = "Cash on Delivery"
)

// IsValidPaymentType reports whether the tag is one of the accepted methods
func IsValidPaymentType(t PaymentType) bool {
	switch t {
	case PaymentCreditCard, PaymentDebitCard, PaymentNetBanking, PaymentCashOnDelivery:
		return true
	}
	return false
}

// User is a storefront customer account
// Authentication is intentionally mock: passwords are stored and compared as
// plain text. Accounts are created at signup and never deleted.
type User struct {
	shared.BaseEntity
	Name              string              `gorm:"type:varchar(200);not null"`
	Email             string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	Password          string              `gorm:"type:varchar(200);not null"`
	LoyaltyStatus     string              `gorm:"type:varchar(50);not null"`
	Addresses         []Address           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PaymentMethods    []PaymentMethod     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AutoReplenishment []ReplenishmentRule `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// Address is a delivery address owned by exactly one user
type Address struct {
	shared.BaseEntity
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Street  string    `gorm:"type:varchar(200);not null" json:"street"`
	City    string    `gorm:"type:varchar(100);not null" json:"city"`
	State   string    `gorm:"type:varchar(100);not null" json:"state"`
	Zip     string    `gorm:"type:varchar(20);not null" json:"zip"`
	Country string    `gorm:"type:varchar(100);not null" json:"country"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "user_addresses"
}

// PaymentMethod is a saved payment option; card detail fields are mock-only
type PaymentMethod struct {
	shared.BaseEntity
	UserID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	Type     PaymentType `gorm:"type:varchar(50);not null" json:"type"`
	Last4    string      `gorm:"type:varchar(4)" json:"last4,omitempty"`
	BankName string      `gorm:"type:varchar(100)" json:"bank_name,omitempty"`
}

// TableName returns the table name for GORM
func (PaymentMethod) TableName() string {
	return "user_payment_methods"
}

// ReplenishmentRule schedules an automatic reorder of one product
type ReplenishmentRule struct {
	shared.BaseEntity
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"-"`
	ProductID uuid.UUID          `gorm:"type:uuid;not null" json:"product_id"`
	Frequency ReplenishFrequency `gorm:"type:varchar(20);not null" json:"frequency"`
	Quantity  int                `gorm:"not null" json:"quantity"`
}

// TableName returns the table name for GORM
func (ReplenishmentRule) TableName() string {
	return "user_replenishment_rules"
}

// NewUser creates a new customer account
func NewUser(name, email, password string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}

	return &User{
		BaseEntity:        shared.NewBaseEntity(),
		Name:              name,
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Password:          password,
		LoyaltyStatus:     DefaultLoyaltyStatus,
		Addresses:         make([]Address, 0),
		PaymentMethods:    make([]PaymentMethod, 0),
		AutoReplenishment: make([]ReplenishmentRule, 0),
	}, nil
}

// VerifyPassword reports whether the supplied password matches
// Plain-text comparison: the storefront models authentication only.
func (u *User) VerifyPassword(password string) bool {
	return u.Password == password
}

// AddAddress appends a delivery address to the user's address book
func (u *User) AddAddress(street, city, state, zip, country string) (*Address, error) {
	if strings.TrimSpace(street) == "" || strings.TrimSpace(city) == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Street and city are required")
	}

	addr := Address{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     u.ID,
		Street:     street,
		City:       city,
		State:      state,
		Zip:        zip,
		Country:    country,
	}
	u.Addresses = append(u.Addresses, addr)
	u.Touch()
	return &u.Addresses[len(u.Addresses)-1], nil
}

// FindAddress returns the address with the given id, or nil
func (u *User) FindAddress(id uuid.UUID) *Address {
	for i := range u.Addresses {
		if u.Addresses[i].ID == id {
			return &u.Addresses[i]
		}
	}
	return nil
}

// SetAddresses replaces the user's address book
func (u *User) SetAddresses(addresses []Address) {
	for i := range addresses {
		if addresses[i].ID == uuid.Nil {
			addresses[i].BaseEntity = shared.NewBaseEntity()
		}
		addresses[i].UserID = u.ID
	}
	u.Addresses = addresses
	u.Touch()
}

// SetPaymentMethods replaces the user's saved payment methods
func (u *User) SetPaymentMethods(methods []PaymentMethod) error {
	for i := range methods {
		if !IsValidPaymentType(methods[i].Type) {
			return shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment method type")
		}
		if methods[i].ID == uuid.Nil {
			methods[i].BaseEntity = shared.NewBaseEntity()
		}
		methods[i].UserID = u.ID
	}
	u.PaymentMethods = methods
	u.Touch()
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
