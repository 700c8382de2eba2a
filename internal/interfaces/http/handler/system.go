package handler

import (
	"github.com/emporium/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping() error
}

// PageResolution is the API shape of a resolved storefront path
type PageResolution struct {
	Page   string            `json:"page"`
	Params map[string]string `json:"params,omitempty"`
}

// SystemHandler serves health and page-resolution endpoints
type SystemHandler struct {
	BaseHandler
	db Pinger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health reports service liveness and database reachability
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	if err := h.db.Ping(); err != nil {
		status = "degraded"
	}
	h.Success(c, gin.H{"status": status})
}

// ResolvePage maps a storefront path to the page that renders it
// Unknown paths resolve to the not-found page, not an HTTP error.
func (h *SystemHandler) ResolvePage(c *gin.Context) {
	path := c.Query("path")
	resolution := router.ResolvePage(path)
	h.Success(c, PageResolution{
		Page:   string(resolution.Page),
		Params: resolution.Params,
	})
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/pages/resolve", h.ResolvePage)
}
