package handler

import (
	checkoutapp "github.com/emporium/backend/internal/application/checkout"
	"github.com/emporium/backend/internal/domain/identity"
	"github.com/emporium/backend/internal/domain/order"
	"github.com/emporium/backend/internal/interfaces/http/dto"
	"github.com/emporium/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CheckoutHandler handles checkout and order history API endpoints
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.CheckoutService
	requireAuth     gin.HandlerFunc
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.CheckoutService, requireAuth gin.HandlerFunc) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		requireAuth:     requireAuth,
	}
}

// DeliveryWindows returns the fixed set of selectable delivery windows
func (h *CheckoutHandler) DeliveryWindows(c *gin.Context) {
	h.Success(c, dto.DeliveryWindowsResponse{Windows: order.DeliveryWindows})
}

// PlaceOrder snapshots the cart into a new order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	input := checkoutapp.PlaceOrderInput{
		SlotDate:      req.SlotDate,
		SlotWindow:    req.SlotWindow,
		PaymentMethod: identity.PaymentType(req.PaymentMethod),
	}
	if req.AddressID != nil {
		input.AddressID = *req.AddressID
	}
	if req.NewAddress != nil {
		input.NewAddress = &checkoutapp.NewAddressInput{
			Street:  req.NewAddress.Street,
			City:    req.NewAddress.City,
			State:   req.NewAddress.State,
			Zip:     req.NewAddress.Zip,
			Country: req.NewAddress.Country,
		}
	}

	placed, err := h.checkoutService.PlaceOrder(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.ToOrderResponse(placed))
}

// ListOrders returns the signed-in user's order history
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	orders, err := h.checkoutService.ListOrders(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToOrderResponses(orders))
}

// GetOrder returns one of the signed-in user's orders
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	placed, err := h.checkoutService.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToOrderResponse(placed))
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	checkout := rg.Group("/checkout")
	{
		checkout.GET("/delivery-windows", h.DeliveryWindows)
		checkout.POST("/orders", h.requireAuth, h.PlaceOrder)
	}

	orders := rg.Group("/orders", h.requireAuth)
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
	}
}
