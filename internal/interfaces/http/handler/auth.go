package handler

import (
	appidentity "github.com/emporium/backend/internal/application/identity"
	"github.com/emporium/backend/internal/interfaces/http/dto"
	"github.com/emporium/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles session and profile API endpoints
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
	requireAuth gin.HandlerFunc
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *appidentity.AuthService, requireAuth gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		requireAuth: requireAuth,
	}
}

// Signup creates a new account and signs it in
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), appidentity.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dto.ToSessionResponse(result))
}

// Login authenticates and starts a session
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), appidentity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.ToSessionResponse(result))
}

// Logout ends the session and empties the cart
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Session returns the signed-in user's profile
func (h *AuthHandler) Session(c *gin.Context) {
	user, err := h.authService.CurrentUser(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToUserResponse(user))
}

// UpdateAddresses replaces the signed-in user's address book
func (h *AuthHandler) UpdateAddresses(c *gin.Context) {
	var req dto.UpdateAddressesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.authService.UpdateAddresses(c.Request.Context(), dto.ToDomainAddresses(req.Addresses))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToUserResponse(user))
}

// UpdatePaymentMethods replaces the signed-in user's saved payment methods
func (h *AuthHandler) UpdatePaymentMethods(c *gin.Context) {
	var req dto.UpdatePaymentMethodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	user, err := h.authService.UpdatePaymentMethods(c.Request.Context(), dto.ToDomainPaymentMethods(req.PaymentMethods))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToUserResponse(user))
}

// RegisterRoutes registers auth and profile routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.requireAuth, h.Logout)
		auth.GET("/session", h.requireAuth, h.Session)
	}

	profile := rg.Group("/profile", h.requireAuth)
	{
		profile.PUT("/addresses", h.UpdateAddresses)
		profile.PUT("/payment-methods", h.UpdatePaymentMethods)
	}
}
