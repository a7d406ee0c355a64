package http

import (
	"time"

	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
	"github.com/teamsched/scheduler-backend/internal/pkg/request"
	"github.com/teamsched/scheduler-backend/internal/project"
)

type ListProjectsRequest struct {
	Active bool `form:"active"`
}

type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClientName  string    `json:"client_name"`
	Color       string    `json:"color"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	BudgetHours *float64  `json:"budget_hours"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := calendar.FormatDate(*t)
	return &s
}

func NewResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		ClientName:  p.ClientName,
		Color:       p.Color,
		StartDate:   formatDatePtr(p.StartDate),
		EndDate:     formatDatePtr(p.EndDate),
		BudgetHours: p.BudgetHours,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type CreateBody struct {
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	ClientName  string   `json:"client_name" binding:"max=200"`
	Color       string   `json:"color" binding:"omitempty,hexcolor"`
	StartDate   *string  `json:"start_date" binding:"omitempty,calendar_date"`
	EndDate     *string  `json:"end_date" binding:"omitempty,calendar_date"`
	BudgetHours *float64 `json:"budget_hours" binding:"omitempty,gte=0"`
}

type UpdateBody struct {
	Name        *string                   `json:"name" binding:"omitempty,min=1,max=200"`
	ClientName  *string                   `json:"client_name" binding:"omitempty,max=200"`
	Color       *string                   `json:"color" binding:"omitempty,hexcolor"`
	StartDate   request.Optional[string]  `json:"start_date"`
	EndDate     request.Optional[string]  `json:"end_date"`
	BudgetHours request.Optional[float64] `json:"budget_hours"`
	IsActive    *bool                     `json:"is_active"`
}
