package booking

import (
	"net/http"
	"time"

	"github.com/teamsched/scheduler-backend/internal/pkg/apperror"
)

const (
	DefaultHoursPerDay = 8.0
	MinHoursPerDay     = 0.5
	MaxHoursPerDay     = 24.0
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrResourceNotFound = apperror.New(http.StatusNotFound, "resource not found")
	ErrProjectNotFound  = apperror.New(http.StatusNotFound, "project not found")
	ErrInvalidRange     = apperror.New(http.StatusBadRequest, "start_date must be before or equal to end_date")
	ErrInvalidHours     = apperror.New(http.StatusBadRequest, "hours_per_day must be between 0.5 and 24")
	ErrInvalidType      = apperror.New(http.StatusBadRequest, "booking_type must be project or leave")
	ErrInvalidLeaveType = apperror.New(http.StatusBadRequest, "leave_type must be vacation, sick, personal or other")
	ErrProjectRequired  = apperror.New(http.StatusBadRequest, "project_id is required for project bookings")
	ErrOverallocation   = apperror.New(http.StatusConflict, "booking would cause overallocation")
)

type Type string

const (
	TypeProject Type = "project"
	TypeLeave   Type = "leave"
)

func (t Type) Valid() bool {
	return t == TypeProject || t == TypeLeave
}

type LeaveType string

const (
	LeaveVacation LeaveType = "vacation"
	LeaveSick     LeaveType = "sick"
	LeavePersonal LeaveType = "personal"
	LeaveOther    LeaveType = "other"
)

func (l LeaveType) Valid() bool {
	switch l {
	case LeaveVacation, LeaveSick, LeavePersonal, LeaveOther:
		return true
	}
	return false
}

// Booking assigns a resource to a project or a leave category for an inclusive
// range of calendar dates. Exactly one of ProjectID and LeaveType is set,
// matching Type.
type Booking struct {
	ID          string
	ResourceID  string
	ProjectID   *string
	StartDate   time.Time
	EndDate     time.Time
	HoursPerDay float64
	Type        Type
	LeaveType   *LeaveType
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for display; not persisted.
	ResourceName string
	ProjectName  *string
	ProjectColor *string
}

// Filter defines parameters for listing bookings. Start and End select bookings
// overlapping that window; either may be nil.
type Filter struct {
	ResourceID string
	ProjectID  string
	Type       Type
	Start      *time.Time
	End        *time.Time
}
