package order

import (
	"time"

	"github.com/emporium/backend/internal/domain/cart"
	"github.com/emporium/backend/internal/domain/identity"
	"github.com/emporium/backend/internal/domain/shared"
	"github.com/emporium/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the fulfillment state of an order
// Orders start Pending and never transition automatically; there is no
// status-update operation in the storefront.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// DeliveryWindows is the fixed set of selectable delivery time windows
var DeliveryWindows = []string{
	"09:00 AM - 11:00 AM",
	"11:00 AM - 01:00 PM",
	"02:00 PM - 04:00 PM",
	"04:00 PM - 06:00 PM",
}

// IsValidWindow reports whether the window is one of the fixed slots
func IsValidWindow(window string) bool {
	for _, w := range DeliveryWindows {
		if w == window {
			return true
		}
	}
	return false
}

// DeliverySlot is the customer-chosen delivery date and time window
type DeliverySlot struct {
	Date   string `gorm:"type:varchar(10);not null" json:"date"` // yyyy-mm-dd
	Window string `gorm:"type:varchar(50);not null" json:"window"`
}

// Validate checks the slot's date format and window membership
func (s DeliverySlot) Validate() error {
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return shared.NewDomainError("INVALID_SLOT", "Delivery date must be in yyyy-mm-dd format")
	}
	if !IsValidWindow(s.Window) {
		return shared.NewDomainError("INVALID_SLOT", "Unknown delivery time window")
	}
	return nil
}

// DeliveryAddress is a frozen copy of the address chosen at checkout
// It is embedded rather than referenced so later address-book edits do not
// rewrite order history.
type DeliveryAddress struct {
	Street  string `gorm:"type:varchar(200)" json:"street"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	State   string `gorm:"type:varchar(100)" json:"state"`
	Zip     string `gorm:"type:varchar(20)" json:"zip"`
	Country string `gorm:"type:varchar(100)" json:"country"`
}

// Line is a frozen copy of one cart line at the moment the order was placed
type Line struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Name      string          `gorm:"type:varchar(200);not null" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Image     string          `gorm:"type:varchar(500)" json:"image"`
}

// TableName returns the table name for GORM
func (Line) TableName() string {
	return "order_lines"
}

// Order is an immutable record of a completed checkout
// Lines, totals, address and slot are snapshots; nothing on an order changes
// after placement.
type Order struct {
	shared.BaseEntity
	UserID        uuid.UUID            `gorm:"type:uuid;not null;index"`
	Lines         []Line               `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal      decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	Tax           decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	Total         decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	Status        Status               `gorm:"type:varchar(20);not null"`
	OrderDate     string               `gorm:"type:varchar(10);not null"` // yyyy-mm-dd
	Address       DeliveryAddress      `gorm:"embedded;embeddedPrefix:address_"`
	Slot          DeliverySlot         `gorm:"embedded;embeddedPrefix:slot_"`
	PaymentMethod identity.PaymentType `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// New builds an order from the current cart contents
// The cart lines are copied into order lines; subtotal, tax and total are
// computed here so the stored amounts always agree with the snapshot.
// Stock is intentionally not decremented.
func New(userID uuid.UUID, lines []cart.Line, address identity.Address, slot DeliverySlot, payment identity.PaymentType) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order with an empty cart")
	}
	if err := slot.Validate(); err != nil {
		return nil, err
	}
	if !identity.IsValidPaymentType(payment) {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment method type")
	}

	o := &Order{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Status:     StatusPending,
		OrderDate:  time.Now().Format("2006-01-02"),
		Address: DeliveryAddress{
			Street:  address.Street,
			City:    address.City,
			State:   address.State,
			Zip:     address.Zip,
			Country: address.Country,
		},
		Slot:          slot,
		PaymentMethod: payment,
	}

	subtotal := valueobject.ZeroUSD()
	for _, l := range lines {
		o.Lines = append(o.Lines, Line{
			BaseEntity: shared.NewBaseEntity(),
			OrderID:    o.ID,
			ProductID:  l.ProductID,
			Name:       l.Name,
			UnitPrice:  l.UnitPrice,
			Quantity:   l.Quantity,
			Image:      l.Image,
		})
		subtotal = subtotal.Add(l.TotalMoney())
	}

	tax := subtotal.Multiply(cart.TaxRate)
	o.Subtotal = subtotal.Amount()
	o.Tax = tax.Amount()
	o.Total = subtotal.Add(tax).Amount()

	return o, nil
}
