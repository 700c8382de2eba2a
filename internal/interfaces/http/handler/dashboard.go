package handler

import (
	checkoutapp "github.com/emporium/backend/internal/application/checkout"
	appidentity "github.com/emporium/backend/internal/application/identity"
	"github.com/emporium/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// DashboardResponse bundles everything the account dashboard shows:
// the profile with its address book and payment methods, plus the
// order history.
type DashboardResponse struct {
	User   dto.UserResponse    `json:"user"`
	Orders []dto.OrderResponse `json:"orders"`
}

// DashboardHandler serves the account dashboard endpoint
type DashboardHandler struct {
	BaseHandler
	authService     *appidentity.AuthService
	checkoutService *checkoutapp.CheckoutService
	requireAuth     gin.HandlerFunc
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(
	authService *appidentity.AuthService,
	checkoutService *checkoutapp.CheckoutService,
	requireAuth gin.HandlerFunc,
) *DashboardHandler {
	return &DashboardHandler{
		authService:     authService,
		checkoutService: checkoutService,
		requireAuth:     requireAuth,
	}
}

// Get returns the signed-in user's dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.authService.CurrentUser(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	orders, err := h.checkoutService.ListOrders(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, DashboardResponse{
		User:   dto.ToUserResponse(user),
		Orders: dto.ToOrderResponses(orders),
	})
}

// RegisterRoutes registers the dashboard route
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.requireAuth, h.Get)
}
