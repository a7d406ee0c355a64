package project

import (
	"net/http"
	"time"

	"github.com/teamsched/scheduler-backend/internal/pkg/apperror"
)

const DefaultColor = "#8B5CF6"

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "project not found")
	ErrNameRequired  = apperror.New(http.StatusBadRequest, "name is required")
	ErrInvalidDates  = apperror.New(http.StatusBadRequest, "start_date must be before or equal to end_date")
	ErrInvalidBudget = apperror.New(http.StatusBadRequest, "budget_hours must not be negative")
	ErrInUse         = apperror.New(http.StatusConflict, "project still has bookings")
)

// Project is a piece of client work that resources are booked onto.
// BudgetHours is the total over the project's lifetime, not per day.
type Project struct {
	ID          string
	Name        string
	ClientName  string
	Color       string
	StartDate   *time.Time
	EndDate     *time.Time
	BudgetHours *float64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing projects.
type Filter struct {
	ActiveOnly bool
}
