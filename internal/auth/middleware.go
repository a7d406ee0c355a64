package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/teamsched/scheduler-backend/internal/pkg/logger"
)

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>.
// A nil manager disables authentication and every request passes through.
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	if jwtManager == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set(subjectKey, claims.Subject)
		c.Set(nameKey, claims.Name)

		ctx := c.Request.Context()
		entry := logger.FromContext(ctx).WithField("subject", claims.Subject)
		c.Request = c.Request.WithContext(logger.WithContext(ctx, entry))

		c.Next()
	}
}
