// Package schedule builds the per-resource calendar view of bookings.
package schedule

import (
	"context"
	"time"

	"github.com/teamsched/scheduler-backend/internal/booking"
	"github.com/teamsched/scheduler-backend/internal/pkg/calendar"
	"github.com/teamsched/scheduler-backend/internal/resource"
)

// Entry is a booking positioned inside the requested window.
type Entry struct {
	Booking *booking.Booking
	Span    calendar.Span
}

// Row is one active resource with the bookings overlapping the window,
// in start-date order.
type Row struct {
	Resource *resource.Resource
	Bookings []Entry
}

type ResourceLister interface {
	List(ctx context.Context, filter resource.Filter) ([]*resource.Resource, error)
}

type BookingLister interface {
	List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error)
}

type Service interface {
	Get(ctx context.Context, start, end time.Time) ([]Row, error)
}

type service struct {
	resources ResourceLister
	bookings  BookingLister
}

func NewService(resources ResourceLister, bookings BookingLister) Service {
	return &service{resources: resources, bookings: bookings}
}

// Get lists active resources ordered by first then last name. Bookings of
// inactive resources are left out.
func (s *service) Get(ctx context.Context, start, end time.Time) ([]Row, error) {
	start, end = calendar.Truncate(start), calendar.Truncate(end)

	resources, err := s.resources.List(ctx, resource.Filter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.List(ctx, booking.Filter{Start: &start, End: &end})
	if err != nil {
		return nil, err
	}

	byResource := make(map[string][]Entry, len(resources))
	for _, b := range bookings {
		span, ok := calendar.SpanInRange(b.StartDate, b.EndDate, start, end)
		if !ok {
			continue
		}
		byResource[b.ResourceID] = append(byResource[b.ResourceID], Entry{Booking: b, Span: span})
	}

	rows := make([]Row, len(resources))
	for i, r := range resources {
		rows[i] = Row{Resource: r, Bookings: byResource[r.ID]}
	}
	return rows, nil
}
