package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/teamsched/scheduler-backend/internal/pkg/logger"
	"github.com/ulule/limiter/v3"
)

const requestIDMaxLen = 64

// RequestLogger attaches a request-scoped logrus entry carrying a request id
// and logs the outcome once the handler chain completes. An incoming
// X-Request-ID header is reused when it is short enough.
func RequestLogger(base *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.NewString()
		}
		c.Header("X-Request-ID", rid)

		entry := base.WithFields(log.Fields{
			"request_id": rid,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), entry))

		c.Next()

		fields := log.Fields{
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}
		done := logger.FromContext(c.Request.Context()).WithFields(fields)
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			done.Error("request completed")
		case status >= http.StatusBadRequest:
			done.Warn("request completed")
		default:
			done.Info("request completed")
		}
	}
}

// RateLimit rejects clients exceeding the limiter's rate, keyed by client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		context, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.FromContext(c.Request.Context()).WithError(err).WithField("ip", ip).Error("rate limit check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		if context.Reached {
			logger.FromContext(c.Request.Context()).WithFields(log.Fields{
				"ip":    ip,
				"limit": context.Limit,
			}).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please try again later"})
			return
		}

		c.Next()
	}
}
