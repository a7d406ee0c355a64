package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamsched/scheduler-backend/internal/pkg/response"
	"github.com/teamsched/scheduler-backend/internal/schedule"
)

type Handler struct {
	service      schedule.Service
	maxRangeDays int
}

func NewHandler(service schedule.Service, maxRangeDays int) *Handler {
	return &Handler{service: service, maxRangeDays: maxRangeDays}
}

func (h *Handler) Get(c *gin.Context) {
	var q ScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	start, end, view, err := q.Window(h.maxRangeDays)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows, err := h.service.Get(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewScheduleResponse(start, end, view, rows))
}
