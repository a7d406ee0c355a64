package http

import (
	"time"

	"github.com/teamsched/scheduler-backend/internal/department"
)

type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(d *department.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}

type CreateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
