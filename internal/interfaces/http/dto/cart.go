package dto

import (
	"github.com/emporium/backend/internal/domain/cart"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddToCartRequest adds a quantity of one product to the cart
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest sets the quantity for a product already in the
// cart; zero or negative removes the line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse is one line of the cart
type CartLineResponse struct {
	ProductID     uuid.UUID       `json:"product_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	StockQuantity int             `json:"stock_quantity"`
	Image         string          `json:"image"`
	LineTotal     decimal.Decimal `json:"line_total"`
}

// CartSummaryResponse is the cart's price breakdown
type CartSummaryResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CartResponse is the full cart as returned by the API
type CartResponse struct {
	Lines     []CartLineResponse  `json:"lines"`
	ItemCount int                 `json:"item_count"`
	Summary   CartSummaryResponse `json:"summary"`
}

// ToCartResponse maps cart lines and a summary to the API shape
func ToCartResponse(lines []cart.Line, summary cart.Summary) CartResponse {
	out := make([]CartLineResponse, 0, len(lines))
	count := 0
	for _, l := range lines {
		count += l.Quantity
		out = append(out, CartLineResponse{
			ProductID:     l.ProductID,
			Name:          l.Name,
			UnitPrice:     l.UnitPrice,
			Quantity:      l.Quantity,
			StockQuantity: l.StockQuantity,
			Image:         l.Image,
			LineTotal:     l.Total(),
		})
	}

	return CartResponse{
		Lines:     out,
		ItemCount: count,
		Summary: CartSummaryResponse{
			Subtotal: summary.Subtotal,
			Tax:      summary.Tax,
			Total:    summary.Total,
		},
	}
}
