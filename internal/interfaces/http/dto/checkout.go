package dto

import (
	"github.com/emporium/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewAddressRequest is a delivery address entered during checkout
type NewAddressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// PlaceOrderRequest collects the checkout steps. Exactly one of
// address_id and new_address must be supplied.
type PlaceOrderRequest struct {
	AddressID     *uuid.UUID         `json:"address_id"`
	NewAddress    *NewAddressRequest `json:"new_address"`
	SlotDate      string             `json:"slot_date" binding:"required"`
	SlotWindow    string             `json:"slot_window" binding:"required"`
	PaymentMethod string             `json:"payment_method" binding:"required"`
}

// OrderLineResponse is one frozen line of a placed order
type OrderLineResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// DeliverySlotResponse is the chosen delivery date and window
type DeliverySlotResponse struct {
	Date   string `json:"date"`
	Window string `json:"window"`
}

// OrderAddressResponse is the address snapshot frozen into the order
type OrderAddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// OrderResponse is a placed order as returned by the API
type OrderResponse struct {
	ID            uuid.UUID            `json:"id"`
	Lines         []OrderLineResponse  `json:"lines"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Tax           decimal.Decimal      `json:"tax"`
	Total         decimal.Decimal      `json:"total"`
	Status        string               `json:"status"`
	OrderDate     string               `json:"order_date"`
	Address       OrderAddressResponse `json:"address"`
	Slot          DeliverySlotResponse `json:"slot"`
	PaymentMethod string               `json:"payment_method"`
}

// DeliveryWindowsResponse lists the selectable delivery windows
type DeliveryWindowsResponse struct {
	Windows []string `json:"windows"`
}

// ToOrderResponse maps a domain order to its API shape
func ToOrderResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Image:     l.Image,
		})
	}

	return OrderResponse{
		ID:        o.ID,
		Lines:     lines,
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Total:     o.Total,
		Status:    string(o.Status),
		OrderDate: o.OrderDate,
		Address: OrderAddressResponse{
			Street: o.Address.Street, City: o.Address.City,
			State: o.Address.State, Zip: o.Address.Zip, Country: o.Address.Country,
		},
		Slot: DeliverySlotResponse{
			Date:   o.Slot.Date,
			Window: o.Slot.Window,
		},
		PaymentMethod: string(o.PaymentMethod),
	}
}

// ToOrderResponses maps an order slice to its API shape
func ToOrderResponses(orders []order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, ToOrderResponse(&orders[i]))
	}
	return out
}
