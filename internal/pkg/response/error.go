package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamsched/scheduler-backend/internal/pkg/apperror"
	"github.com/teamsched/scheduler-backend/internal/pkg/logger"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it defaults to 500 Internal Server Error.
// Errors implementing apperror.Detailer have their payload attached under "details".
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body := ErrorResponse{Error: appErr.Message}
		var d apperror.Detailer
		if errors.As(err, &d) {
			body.Details = d.ErrorDetails()
		}
		c.JSON(appErr.Code, body)
		return
	}

	logger.FromContext(c.Request.Context()).WithError(err).Error("unhandled error")
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// BadRequest reports a binding or validation failure.
func BadRequest(c *gin.Context, message string, err error) {
	body := ErrorResponse{Error: message}
	if err != nil {
		body.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, body)
}
