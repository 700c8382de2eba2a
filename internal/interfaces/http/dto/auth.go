package dto

import (
	"time"

	appidentity "github.com/emporium/backend/internal/application/identity"
	"github.com/emporium/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// SignupRequest creates a new account
type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest authenticates an existing account
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AddressPayload is an address in requests and responses
type AddressPayload struct {
	ID      uuid.UUID `json:"id,omitempty"`
	Street  string    `json:"street" binding:"required"`
	City    string    `json:"city" binding:"required"`
	State   string    `json:"state"`
	Zip     string    `json:"zip"`
	Country string    `json:"country"`
}

// PaymentMethodPayload is a saved payment method in requests and responses
type PaymentMethodPayload struct {
	ID       uuid.UUID `json:"id,omitempty"`
	Type     string    `json:"type" binding:"required"`
	Last4    string    `json:"last4,omitempty"`
	BankName string    `json:"bank_name,omitempty"`
}

// UpdateAddressesRequest replaces the address book
type UpdateAddressesRequest struct {
	Addresses []AddressPayload `json:"addresses" binding:"required,dive"`
}

// UpdatePaymentMethodsRequest replaces the saved payment methods
type UpdatePaymentMethodsRequest struct {
	PaymentMethods []PaymentMethodPayload `json:"payment_methods" binding:"required,dive"`
}

// ReplenishmentRuleResponse is an auto-replenishment setting
type ReplenishmentRuleResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Frequency string    `json:"frequency"`
	Quantity  int       `json:"quantity"`
}

// UserResponse is the customer profile returned by the API
type UserResponse struct {
	ID                uuid.UUID                   `json:"id"`
	Name              string                      `json:"name"`
	Email             string                      `json:"email"`
	LoyaltyStatus     string                      `json:"loyalty_status"`
	Addresses         []AddressPayload            `json:"addresses"`
	PaymentMethods    []PaymentMethodPayload      `json:"payment_methods"`
	AutoReplenishment []ReplenishmentRuleResponse `json:"auto_replenishment"`
}

// SessionResponse is returned by login, signup and session lookup
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// ToUserResponse maps a domain user to its API shape
func ToUserResponse(u *identity.User) UserResponse {
	addresses := make([]AddressPayload, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		addresses = append(addresses, AddressPayload{
			ID: a.ID, Street: a.Street, City: a.City,
			State: a.State, Zip: a.Zip, Country: a.Country,
		})
	}

	methods := make([]PaymentMethodPayload, 0, len(u.PaymentMethods))
	for _, m := range u.PaymentMethods {
		methods = append(methods, PaymentMethodPayload{
			ID: m.ID, Type: string(m.Type), Last4: m.Last4, BankName: m.BankName,
		})
	}

	rules := make([]ReplenishmentRuleResponse, 0, len(u.AutoReplenishment))
	for _, r := range u.AutoReplenishment {
		rules = append(rules, ReplenishmentRuleResponse{
			ID: r.ID, ProductID: r.ProductID,
			Frequency: string(r.Frequency), Quantity: r.Quantity,
		})
	}

	return UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		LoyaltyStatus:     u.LoyaltyStatus,
		Addresses:         addresses,
		PaymentMethods:    methods,
		AutoReplenishment: rules,
	}
}

// ToSessionResponse maps an auth result to its API shape
func ToSessionResponse(result *appidentity.AuthResult) SessionResponse {
	return SessionResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      ToUserResponse(result.User),
	}
}

// ToDomainAddresses maps address payloads to domain addresses
func ToDomainAddresses(payloads []AddressPayload) []identity.Address {
	addresses := make([]identity.Address, 0, len(payloads))
	for _, p := range payloads {
		addr := identity.Address{
			Street: p.Street, City: p.City,
			State: p.State, Zip: p.Zip, Country: p.Country,
		}
		addr.ID = p.ID
		addresses = append(addresses, addr)
	}
	return addresses
}

// ToDomainPaymentMethods maps payment method payloads to domain methods
func ToDomainPaymentMethods(payloads []PaymentMethodPayload) []identity.PaymentMethod {
	methods := make([]identity.PaymentMethod, 0, len(payloads))
	for _, p := range payloads {
		m := identity.PaymentMethod{
			Type: identity.PaymentType(p.Type), Last4: p.Last4, BankName: p.BankName,
		}
		m.ID = p.ID
		methods = append(methods, m)
	}
	return methods
}
