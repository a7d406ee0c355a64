package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the schedule view.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.GET("/schedule", authMiddleware, h.Get)
}
