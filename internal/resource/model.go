package resource

import (
	"net/http"
	"time"

	"github.com/teamsched/scheduler-backend/internal/pkg/apperror"
)

const (
	DefaultCapacityHours = 8.0
	DefaultColor         = "#3B82F6"
	MaxCapacityHours     = 24.0
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "resource not found")
	ErrFirstNameRequired  = apperror.New(http.StatusBadRequest, "first_name is required")
	ErrLastNameRequired   = apperror.New(http.StatusBadRequest, "last_name is required")
	ErrInvalidEmail       = apperror.New(http.StatusBadRequest, "email is invalid")
	ErrInvalidCapacity    = apperror.New(http.StatusBadRequest, "capacity_hours must be greater than 0 and at most 24")
	ErrDepartmentNotFound = apperror.New(http.StatusBadRequest, "department not found")
	ErrDuplicateEmail     = apperror.New(http.StatusConflict, "email already in use")
	ErrInUse              = apperror.New(http.StatusConflict, "resource still has bookings")
)

// Resource is a person whose working days can be booked.
// CapacityHours is the hard ceiling of booked hours on any single working day.
type Resource struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Role           string
	DepartmentID   *string
	DepartmentName *string
	CapacityHours  float64
	Color          string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName is the display name used on bookings and reports.
func (r *Resource) FullName() string {
	return r.FirstName + " " + r.LastName
}

// Filter defines parameters for listing resources.
type Filter struct {
	ActiveOnly   bool
	DepartmentID string
}
