package http

import (
	"advisor-alert-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterInternalRoutes registers the settings routes for other services.
func (h *Handler) RegisterInternalRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	s := r.Group("/settings", mw.InternalKey())
	{
		s.GET("", h.Get)
		s.POST("/reload", h.Reload)
	}
}
