package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamsched/scheduler-backend/internal/pkg/request"
	"github.com/teamsched/scheduler-backend/internal/pkg/response"
	"github.com/teamsched/scheduler-backend/internal/project"
)

type Handler struct {
	service project.Service
}

func NewHandler(service project.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListProjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	projects, err := h.service.List(c.Request.Context(), project.Filter{ActiveOnly: req.Active})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = NewResponse(p)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	start, err := request.ParseDatePtr(body.StartDate)
	if err != nil {
		response.BadRequest(c, "invalid start_date", err)
		return
	}
	end, err := request.ParseDatePtr(body.EndDate)
	if err != nil {
		response.BadRequest(c, "invalid end_date", err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), project.CreateRequest{
		Name:        body.Name,
		ClientName:  body.ClientName,
		Color:       body.Color,
		StartDate:   start,
		EndDate:     end,
		BudgetHours: body.BudgetHours,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewResponse(p))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	var body UpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	start, err := request.ParseOptionalDate(body.StartDate)
	if err != nil {
		response.BadRequest(c, "invalid start_date", err)
		return
	}
	end, err := request.ParseOptionalDate(body.EndDate)
	if err != nil {
		response.BadRequest(c, "invalid end_date", err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), uri.ID, project.UpdateRequest{
		Name:        body.Name,
		ClientName:  body.ClientName,
		Color:       body.Color,
		StartDate:   start,
		EndDate:     end,
		BudgetHours: body.BudgetHours,
		IsActive:    body.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid request", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
