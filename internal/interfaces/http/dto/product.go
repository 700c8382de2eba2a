package dto

import (
	"github.com/emporium/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductListQuery filters the catalog listing
type ProductListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// ReviewResponse is one customer review
type ReviewResponse struct {
	Reviewer string `json:"reviewer"`
	Comment  string `json:"comment"`
	Rating   int    `json:"rating"`
}

// ProductResponse is a catalog item as returned by the API
type ProductResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	DisplayPrice  string           `json:"display_price"`
	StockQuantity int              `json:"stock_quantity"`
	InStock       bool             `json:"in_stock"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	Rating        float64          `json:"rating"`
	Reviews       []ReviewResponse `json:"reviews,omitempty"`
}

// ToProductResponse maps a domain product to its API shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	reviews := make([]ReviewResponse, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, ReviewResponse{
			Reviewer: r.Reviewer,
			Comment:  r.Comment,
			Rating:   r.Rating,
		})
	}

	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		DisplayPrice:  "$" + p.PriceMoney().StringFixed(2),
		StockQuantity: p.StockQuantity,
		InStock:       p.InStock(),
		Image:         p.Image,
		Description:   p.Description,
		Rating:        p.Rating,
		Reviews:       reviews,
	}
}

// ToProductResponses maps a product slice to its API shape
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}
