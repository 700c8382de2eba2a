package cart

import (
	"github.com/emporium/backend/internal/domain/catalog"
	"github.com/emporium/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied at checkout
var TaxRate = decimal.RequireFromString("0.08")

// Line is one product's entry in the cart: a snapshot of the product plus the
// quantity the customer wants. There is at most one line per product.
type Line struct {
	ProductID     uuid.UUID       `json:"product_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	StockQuantity int             `json:"stock_quantity"`
	Image         string          `json:"image"`
}

// Total returns the line total (unit price times quantity)
func (l Line) Total() decimal.Decimal {
	return l.TotalMoney().Amount()
}

// TotalMoney returns the line total as a Money value
func (l Line) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(l.UnitPrice).MultiplyByInt(int64(l.Quantity))
}

// Summary is the cart's price breakdown
type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Cart holds the current session's shopping cart
// Quantities are clamped, never rejected: a request beyond the product's stock
// silently caps at the stock level. Every mutation replaces the line slice
// wholesale, so callers holding a previous Lines() copy never observe a
// partial update.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{lines: make([]Line, 0)}
}

// Add merges quantity for a product into the cart, clamped to its stock
// An existing line grows to min(existing+qty, stock); a new line starts at
// min(qty, stock).
func (c *Cart) Add(product *catalog.Product, quantity int) {
	next := make([]Line, 0, len(c.lines)+1)
	merged := false
	for _, line := range c.lines {
		if line.ProductID == product.ID {
			line.Quantity = clamp(line.Quantity+quantity, product.StockQuantity)
			line.StockQuantity = product.StockQuantity
			merged = true
		}
		next = append(next, line)
	}
	if !merged {
		next = append(next, Line{
			ProductID:     product.ID,
			Name:          product.Name,
			UnitPrice:     product.Price,
			Quantity:      clamp(quantity, product.StockQuantity),
			StockQuantity: product.StockQuantity,
			Image:         product.Image,
		})
	}
	c.lines = next
}

// SetQuantity replaces the quantity on an existing line
// A quantity of zero or less removes the line. Quantities above the product's
// stock clamp to the stock level. Products without a line are left alone.
func (c *Cart) SetQuantity(product *catalog.Product, quantity int) {
	if quantity <= 0 {
		c.Remove(product.ID)
		return
	}

	next := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		if line.ProductID == product.ID {
			line.Quantity = clamp(quantity, product.StockQuantity)
			line.StockQuantity = product.StockQuantity
		}
		next = append(next, line)
	}
	c.lines = next
}

// Remove drops the line for the given product if present
func (c *Cart) Remove(productID uuid.UUID) {
	next := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		if line.ProductID != productID {
			next = append(next, line)
		}
	}
	c.lines = next
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.lines = make([]Line, 0)
}

// Lines returns a copy of the cart's lines in insertion order
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount returns the total quantity across all lines
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal returns the sum of all line totals
func (c *Cart) Subtotal() decimal.Decimal {
	return c.subtotalMoney().Amount()
}

// Summarize returns the subtotal, flat-rate tax and grand total
func (c *Cart) Summarize() Summary {
	subtotal := c.subtotalMoney()
	tax := subtotal.Multiply(TaxRate)
	return Summary{
		Subtotal: subtotal.Amount(),
		Tax:      tax.Amount(),
		Total:    subtotal.Add(tax).Amount(),
	}
}

func (c *Cart) subtotalMoney() valueobject.Money {
	subtotal := valueobject.ZeroUSD()
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.TotalMoney())
	}
	return subtotal
}

func clamp(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}
