package http

import (
	"time"

	"github.com/teamsched/scheduler-backend/internal/pkg/request"
	"github.com/teamsched/scheduler-backend/internal/resource"
)

// ListResourcesRequest defines query parameters for listing resources.
type ListResourcesRequest struct {
	Active       bool   `form:"active"`
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
}

type ResourceResponse struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	DepartmentID   *string   `json:"department_id"`
	DepartmentName *string   `json:"department_name"`
	CapacityHours  float64   `json:"capacity_hours"`
	Color          string    `json:"color"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewResponse(r *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:             r.ID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Role:           r.Role,
		DepartmentID:   r.DepartmentID,
		DepartmentName: r.DepartmentName,
		CapacityHours:  r.CapacityHours,
		Color:          r.Color,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

type CreateBody struct {
	FirstName     string   `json:"first_name" binding:"required,min=1,max=100"`
	LastName      string   `json:"last_name" binding:"required,min=1,max=100"`
	Email         string   `json:"email" binding:"required,email"`
	Role          string   `json:"role" binding:"max=100"`
	DepartmentID  *string  `json:"department_id" binding:"omitempty,uuid"`
	CapacityHours *float64 `json:"capacity_hours" binding:"omitempty,gt=0,lte=24"`
	Color         string   `json:"color" binding:"omitempty,hexcolor"`
}

type UpdateBody struct {
	FirstName     *string                  `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName      *string                  `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email         *string                  `json:"email" binding:"omitempty,email"`
	Role          *string                  `json:"role" binding:"omitempty,max=100"`
	DepartmentID  request.Optional[string] `json:"department_id"`
	CapacityHours *float64                 `json:"capacity_hours" binding:"omitempty,gt=0,lte=24"`
	Color         *string                  `json:"color" binding:"omitempty,hexcolor"`
	IsActive      *bool                    `json:"is_active"`
}
