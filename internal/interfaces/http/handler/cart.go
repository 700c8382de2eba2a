package handler

import (
	cartapp "github.com/emporium/backend/internal/application/cart"
	"github.com/emporium/backend/internal/interfaces/http/dto"
	"github.com/emporium/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionPersister flushes the session and cart blob to disk after
// cart mutations
type SessionPersister interface {
	Persist() error
}

// CartHandler handles shopping cart API endpoints
type CartHandler struct {
	BaseHandler
	cartService *cartapp.CartService
	persister   SessionPersister
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.CartService, persister SessionPersister, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		persister:   persister,
		logger:      logger,
	}
}

// Get returns the current cart
func (h *CartHandler) Get(c *gin.Context) {
	h.Success(c, dto.ToCartResponse(h.cartService.Lines(), h.cartService.Summary()))
}

// AddItem adds a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	lines, err := h.cartService.Add(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.persist()
	h.Success(c, dto.ToCartResponse(lines, h.cartService.Summary()))
}

// UpdateItem sets the quantity for one product's line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	productID, err := uuid.Parse(uri.ID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	lines, err := h.cartService.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.persist()
	h.Success(c, dto.ToCartResponse(lines, h.cartService.Summary()))
}

// RemoveItem deletes one product's line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}
	productID, err := uuid.Parse(uri.ID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	lines := h.cartService.Remove(productID)

	h.persist()
	h.Success(c, dto.ToCartResponse(lines, h.cartService.Summary()))
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear()
	h.persist()
	h.NoContent(c)
}

func (h *CartHandler) persist() {
	if err := h.persister.Persist(); err != nil {
		h.logger.Error("Failed to persist cart", zap.Error(err))
	}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:id", h.UpdateItem)
		cart.DELETE("/items/:id", h.RemoveItem)
		cart.DELETE("", h.Clear)
	}
}
