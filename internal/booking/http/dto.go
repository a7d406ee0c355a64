package http

import (
	"time"

	"github.com/teamsched/scheduler-backend/internal/booking"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
	"github.com/teamsched/scheduler-backend/internal/pkg/request"
)

// ListBookingsRequest defines query parameters for listing bookings.
// Start and End select bookings overlapping that window.
type ListBookingsRequest struct {
	ResourceID  string `form:"resource_id" binding:"omitempty,uuid"`
	ProjectID   string `form:"project_id" binding:"omitempty,uuid"`
	BookingType string `form:"booking_type" binding:"omitempty,oneof=project leave"`
	Start       string `form:"start" binding:"omitempty,calendar_date"`
	End         string `form:"end" binding:"omitempty,calendar_date"`
}

// Filter converts the query into a booking filter, checking the window order.
func (r *ListBookingsRequest) Filter() (booking.Filter, error) {
	f := booking.Filter{
		ResourceID: r.ResourceID,
		ProjectID:  r.ProjectID,
		Type:       booking.Type(r.BookingType),
	}
	var err error
	if f.Start, err = request.ParseDatePtr(optional(r.Start)); err != nil {
		return f, err
	}
	if f.End, err = request.ParseDatePtr(optional(r.End)); err != nil {
		return f, err
	}
	if f.Start != nil && f.End != nil && f.Start.After(*f.End) {
		return f, request.ErrInvalidRange
	}
	return f, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

type BookingResponse struct {
	ID           string    `json:"id"`
	ResourceID   string    `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	ProjectID    *string   `json:"project_id"`
	ProjectName  *string   `json:"project_name"`
	ProjectColor *string   `json:"project_color"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	HoursPerDay  float64   `json:"hours_per_day"`
	BookingType  string    `json:"booking_type"`
	LeaveType    *string   `json:"leave_type"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		ResourceName: b.ResourceName,
		ProjectID:    b.ProjectID,
		ProjectName:  b.ProjectName,
		ProjectColor: b.ProjectColor,
		StartDate:    calendar.FormatDate(b.StartDate),
		EndDate:      calendar.FormatDate(b.EndDate),
		HoursPerDay:  b.HoursPerDay,
		BookingType:  string(b.Type),
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	if b.LeaveType != nil {
		lt := string(*b.LeaveType)
		resp.LeaveType = &lt
	}
	return resp
}

type CreateBookingBody struct {
	ResourceID  string   `json:"resource_id" binding:"required,uuid"`
	ProjectID   *string  `json:"project_id" binding:"omitempty,uuid"`
	StartDate   string   `json:"start_date" binding:"required,calendar_date"`
	EndDate     string   `json:"end_date" binding:"required,calendar_date"`
	HoursPerDay *float64 `json:"hours_per_day" binding:"omitempty,gte=0.5,lte=24"`
	BookingType string   `json:"booking_type" binding:"required,oneof=project leave"`
	LeaveType   *string  `json:"leave_type" binding:"omitempty,oneof=vacation sick personal other"`
	Notes       string   `json:"notes" binding:"max=2000"`
}

// Request converts the body into a service request.
func (b *CreateBookingBody) Request() (booking.CreateRequest, error) {
	start, err := calendar.ParseDate(b.StartDate)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	end, err := calendar.ParseDate(b.EndDate)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	return booking.CreateRequest{
		ResourceID:  b.ResourceID,
		ProjectID:   b.ProjectID,
		StartDate:   start,
		EndDate:     end,
		HoursPerDay: b.HoursPerDay,
		Type:        booking.Type(b.BookingType),
		LeaveType:   leaveType(b.LeaveType),
		Notes:       b.Notes,
	}, nil
}

type UpdateBookingBody struct {
	ResourceID  *string  `json:"resource_id" binding:"omitempty,uuid"`
	ProjectID   *string  `json:"project_id" binding:"omitempty,uuid"`
	StartDate   *string  `json:"start_date" binding:"omitempty,calendar_date"`
	EndDate     *string  `json:"end_date" binding:"omitempty,calendar_date"`
	HoursPerDay *float64 `json:"hours_per_day" binding:"omitempty,gte=0.5,lte=24"`
	BookingType *string  `json:"booking_type" binding:"omitempty,oneof=project leave"`
	LeaveType   *string  `json:"leave_type" binding:"omitempty,oneof=vacation sick personal other"`
	Notes       *string  `json:"notes" binding:"omitempty,max=2000"`
}

// Request converts the body into a partial service request.
func (b *UpdateBookingBody) Request() (booking.UpdateRequest, error) {
	start, err := request.ParseDatePtr(b.StartDate)
	if err != nil {
		return booking.UpdateRequest{}, err
	}
	end, err := request.ParseDatePtr(b.EndDate)
	if err != nil {
		return booking.UpdateRequest{}, err
	}
	req := booking.UpdateRequest{
		ResourceID:  b.ResourceID,
		ProjectID:   b.ProjectID,
		StartDate:   start,
		EndDate:     end,
		HoursPerDay: b.HoursPerDay,
		LeaveType:   leaveType(b.LeaveType),
		Notes:       b.Notes,
	}
	if b.BookingType != nil {
		t := booking.Type(*b.BookingType)
		req.Type = &t
	}
	return req, nil
}

func leaveType(s *string) *booking.LeaveType {
	if s == nil {
		return nil
	}
	lt := booking.LeaveType(*s)
	return &lt
}
