package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the report endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	reports := g.Group("/reports")
	reports.Use(authMiddleware)
	{
		reports.GET("/utilization", h.Utilization)
		reports.GET("/projects", h.Projects)
	}
}
