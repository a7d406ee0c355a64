package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
	"github.com/teamsched/scheduler-backend/internal/pkg/response"
	"github.com/teamsched/scheduler-backend/internal/report"
)

type Handler struct {
	service      report.Service
	maxRangeDays int
}

func NewHandler(service report.Service, maxRangeDays int) *Handler {
	return &Handler{service: service, maxRangeDays: maxRangeDays}
}

func (h *Handler) bind(c *gin.Context) (ReportQuery, time.Time, time.Time, bool) {
	var q ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "start and end query parameters are required", err)
		return q, time.Time{}, time.Time{}, false
	}
	start, end, err := q.Parse(h.maxRangeDays)
	if err != nil {
		response.Error(c, err)
		return q, time.Time{}, time.Time{}, false
	}
	return q, start, end, true
}

// export writes a rendered report as a download named after the window.
func export(c *gin.Context, name string, start, end time.Time, format report.Format, data []byte) {
	contentType, ext := report.ContentType(format)
	filename := fmt.Sprintf("%s_%s_%s.%s", name, calendar.FormatDate(start), calendar.FormatDate(end), ext)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

func (h *Handler) Utilization(c *gin.Context) {
	q, start, end, ok := h.bind(c)
	if !ok {
		return
	}

	rows, err := h.service.Utilization(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	if format := q.format(); format != report.FormatJSON {
		data, err := report.RenderUtilization(rows, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		export(c, "utilization", start, end, format, data)
		return
	}

	items := make([]UtilizationResponse, len(rows))
	for i, r := range rows {
		items[i] = NewUtilizationResponse(r)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Projects(c *gin.Context) {
	q, start, end, ok := h.bind(c)
	if !ok {
		return
	}

	rows, err := h.service.Projects(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	if format := q.format(); format != report.FormatJSON {
		data, err := report.RenderProjects(rows, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		export(c, "projects", start, end, format, data)
		return
	}

	items := make([]ProjectReportResponse, len(rows))
	for i, r := range rows {
		items[i] = NewProjectReportResponse(r)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}
