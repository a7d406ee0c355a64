package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes and the per-resource calendar feed.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)          // List bookings
		group.GET("/:id", h.Get)       // Get booking details
		group.POST("", h.Create)       // Create booking (capacity checked)
		group.PATCH("/:id", h.Update)  // Update booking (capacity re-checked)
		group.DELETE("/:id", h.Delete) // Delete booking
	}

	g.GET("/resources/:id/calendar.ics", authMiddleware, h.Calendar)
}
